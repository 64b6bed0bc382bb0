package models

// School goes through a binary approval gate: created pending, then
// approved or rejected by an admin. No further transitions exist.
type School struct {
	Name          string       `json:"name" validate:"required"`
	Address       string       `json:"address" validate:"required"`
	City          string       `json:"city" validate:"required"`
	State         string       `json:"state" validate:"required"`
	ZipCode       string       `json:"zipCode" validate:"required"`
	ContactEmail  string       `json:"contactEmail" validate:"required,email"`
	ContactPhone  string       `json:"contactPhone" validate:"required"`
	PrincipalID   string       `json:"principalId"`
	PrincipalName string       `json:"principalName"`
	Status        SchoolStatus `json:"status"`
	CreatedAt     string       `json:"createdAt"`
	ApprovedAt    string       `json:"approvedAt,omitempty"`
	ApprovedBy    string       `json:"approvedBy,omitempty"`
}
