package models

// DonationRequest is a principal's public ask for funding. fulfilledAmount
// is incremented by the donation-processing flow, not by this codebase;
// reads assume fulfilledAmount <= requestedAmount and clamp regardless.
type DonationRequest struct {
	SchoolID        string        `json:"schoolId"`
	SchoolName      string        `json:"schoolName"`
	PrincipalID     string        `json:"principalId"`
	PrincipalName   string        `json:"principalName"`
	MealPlanID      string        `json:"mealPlanId,omitempty"`
	RequestedAmount float64       `json:"requestedAmount" validate:"required,gt=0"`
	FulfilledAmount float64       `json:"fulfilledAmount"`
	Purpose         string        `json:"purpose" validate:"required"`
	Description     string        `json:"description"`
	TargetDate      string        `json:"targetDate" validate:"required"`
	Status          RequestStatus `json:"status"`
	CreatedAt       string        `json:"createdAt"`
}

// Progress reports fulfilment as a percentage, clamped to 100.
func (r DonationRequest) Progress() float64 {
	if r.RequestedAmount <= 0 {
		return 0
	}
	p := r.FulfilledAmount / r.RequestedAmount * 100
	if p > 100 {
		return 100
	}
	return p
}
