package models

// MealPlanItem is one menu line on a plan.
type MealPlanItem struct {
	MealName            string   `json:"mealName" validate:"required"`
	Quantity            int      `json:"quantity" validate:"required,gt=0"`
	Ingredients         []string `json:"ingredients"`
	DietaryRestrictions []string `json:"dietaryRestrictions"`
}

// MealPlan is a principal's draft menu for a serving day.
type MealPlan struct {
	PrincipalID string         `json:"principalId"`
	SchoolID    string         `json:"schoolId"`
	Menu        []MealPlanItem `json:"menu" validate:"required,min=1,dive"`
	Date        string         `json:"date" validate:"required"`
	Status      MealPlanStatus `json:"status"`
	CreatedAt   string         `json:"createdAt"`
	ApprovedAt  string         `json:"approvedAt,omitempty"`
}
