package models

// Report is the nightly roll-up written to reports/{date} by the
// scheduler.
type Report struct {
	GeneratedBy       string  `json:"generatedBy"`
	DateGenerated     string  `json:"dateGenerated"`
	MealsServed       int     `json:"mealsServed"`
	Shortages         int     `json:"shortages"`
	DonationsReceived float64 `json:"donationsReceived"`
	FeedbackSummary   string  `json:"feedbackSummary"`
}
