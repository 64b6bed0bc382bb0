package models

// Donation is immutable once created; there is deliberately no update
// operation anywhere in the codebase.
type Donation struct {
	DonorID          string         `json:"donorId" validate:"required"`
	DonorName        string         `json:"donorName,omitempty"`
	DonorEmail       string         `json:"donorEmail,omitempty"`
	SchoolID         string         `json:"schoolId,omitempty"`
	MealPlanID       string         `json:"mealPlanId,omitempty"`
	Amount           float64        `json:"amount" validate:"required,gt=0"`
	MealContribution int            `json:"mealContribution" validate:"gte=0"`
	Date             string         `json:"date"`
	Status           DonationStatus `json:"status"`
	DonorMessage     string         `json:"donorMessage"`
}
