package models

// User is the denormalized profile record stored at users/{uid}. The email
// is duplicated from the identity record; sign-in returns the merged view.
type User struct {
	Email     string `json:"email" validate:"required,email"`
	Name      string `json:"name" validate:"required"`
	Role      Role   `json:"role" validate:"required"`
	CreatedAt string `json:"createdAt"`
	LastLogin string `json:"lastLogin,omitempty"`
	SchoolID  string `json:"schoolId,omitempty"`
}

// Identity is the credential record stored at identities/{uid}. It is the
// only place a password hash lives; profiles never carry credentials.
type Identity struct {
	Email        string `json:"email"`
	PasswordHash string `json:"passwordHash"`
	CreatedAt    string `json:"createdAt"`
}
