package models

// Teacher lives in the global teachers collection and is filtered by
// schoolId on read.
type Teacher struct {
	Name      string `json:"name" validate:"required"`
	Email     string `json:"email" validate:"required,email"`
	SchoolID  string `json:"schoolId" validate:"required"`
	AddedBy   string `json:"addedBy"`
	IsActive  bool   `json:"isActive"`
	CreatedAt string `json:"createdAt"`
}

func (t Teacher) Status() TeacherStatus {
	return TeacherStatusFromActive(t.IsActive)
}
