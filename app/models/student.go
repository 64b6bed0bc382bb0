package models

// StudentProfile is a teacher-owned student record at
// students/{teacherId}/{studentId}.
type StudentProfile struct {
	Name          string `json:"name" validate:"required"`
	Age           int    `json:"age" validate:"required,gt=0"`
	Grade         string `json:"grade" validate:"required"`
	ParentName    string `json:"parentName" validate:"required"`
	ParentContact string `json:"parentContact" validate:"required"`
	ParentEmail   string `json:"parentEmail,omitempty" validate:"omitempty,email"`
	CreatedAt     string `json:"createdAt,omitempty"`
}

// MealEntry is one student's per-day serving record inside a MealTracking
// document. PhotoURL serializes as an explicit null when no photo was
// taken; the optional feedback fields are omitted entirely when unset.
type MealEntry struct {
	Name              string            `json:"name"`
	MealServed        bool              `json:"mealServed"`
	Time              string            `json:"time"`
	PhotoURL          *string           `json:"photoUrl"`
	MealReaction      MealReaction      `json:"mealReaction,omitempty"`
	HealthObservation HealthObservation `json:"healthObservation,omitempty"`
	Notes             string            `json:"notes,omitempty"`
}

// MealTracking is the per-day attendance document at mealTracking/{date}.
type MealTracking struct {
	TeacherID string               `json:"teacherId"`
	Students  map[string]MealEntry `json:"students"`
}
