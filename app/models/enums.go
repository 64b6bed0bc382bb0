package models

// TeacherStatus is the explicit two-state activity flag for teachers.
// Transitions are free in both directions and go through a single entry
// point (database.SetTeacherStatus); there is no terminal state.
type TeacherStatus string

const (
	TeacherActive   TeacherStatus = "active"
	TeacherInactive TeacherStatus = "inactive"
)

func (s TeacherStatus) Valid() bool {
	return s == TeacherActive || s == TeacherInactive
}

func (s TeacherStatus) IsActive() bool {
	return s == TeacherActive
}

// TeacherStatusFromActive maps the stored boolean onto the enum.
func TeacherStatusFromActive(active bool) TeacherStatus {
	if active {
		return TeacherActive
	}
	return TeacherInactive
}

// SchoolStatus tracks the school approval workflow.
type SchoolStatus string

const (
	SchoolPending  SchoolStatus = "pending"
	SchoolApproved SchoolStatus = "approved"
	SchoolRejected SchoolStatus = "rejected"
)

// DonationStatus marks whether a donation has settled.
type DonationStatus string

const (
	DonationCompleted DonationStatus = "completed"
	DonationPending   DonationStatus = "pending"
)

// RequestStatus tracks the lifecycle of a donation request.
type RequestStatus string

const (
	RequestActive    RequestStatus = "active"
	RequestFulfilled RequestStatus = "fulfilled"
	RequestCancelled RequestStatus = "cancelled"
)

// FeedbackStatus tracks parent feedback review.
type FeedbackStatus string

const (
	FeedbackSubmitted FeedbackStatus = "submitted"
	FeedbackReviewed  FeedbackStatus = "reviewed"
)

// MealPlanStatus tracks principal meal plan approval.
type MealPlanStatus string

const (
	MealPlanDraft    MealPlanStatus = "draft"
	MealPlanApproved MealPlanStatus = "approved"
)

// PublishedDonationStatus tracks in-kind donor items.
type PublishedDonationStatus string

const (
	PublishedAvailable PublishedDonationStatus = "available"
	PublishedClaimed   PublishedDonationStatus = "claimed"
)

// MealReaction is the optional per-student reaction recorded with a meal.
type MealReaction string

const (
	ReactionHappy  MealReaction = "happy"
	ReactionLittle MealReaction = "little"
	ReactionNone   MealReaction = "none"
)

// HealthObservation is the optional per-student health note recorded with
// a meal.
type HealthObservation string

const (
	ObservationTired  HealthObservation = "tired"
	ObservationSick   HealthObservation = "sick"
	ObservationActive HealthObservation = "active"
)
