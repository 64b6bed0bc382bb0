package models

// Feedback is a parent's note about a served meal.
type Feedback struct {
	ParentID  string         `json:"parentId"`
	Feedback  string         `json:"feedback" validate:"required"`
	MealDate  string         `json:"mealDate" validate:"required"`
	Status    FeedbackStatus `json:"status"`
	CreatedAt string         `json:"createdAt"`
}
