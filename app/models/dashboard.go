package models

// DashboardStats is the shared dashboard roll-up.
type DashboardStats struct {
	TotalMealsServed int     `json:"totalMealsServed"`
	TodayMeals       int     `json:"todayMeals"`
	TotalDonations   float64 `json:"totalDonations"`
	PendingFeedback  int     `json:"pendingFeedback"`
}

// AdminStats extends the dashboard roll-up with system-wide figures.
// UsersByRole always carries an entry for every role, zero or not.
type AdminStats struct {
	TotalUsers       int          `json:"totalUsers"`
	TotalSchools     int          `json:"totalSchools"`
	PendingSchools   int          `json:"pendingSchools"`
	TotalMealsServed int          `json:"totalMealsServed"`
	TodayMeals       int          `json:"todayMeals"`
	TotalDonations   float64      `json:"totalDonations"`
	PendingRequests  int          `json:"pendingRequests"`
	UsersByRole      map[Role]int `json:"usersByRole"`
}

// DonationRef pairs a donation with its generated id so grouped views can
// link back to the underlying records.
type DonationRef struct {
	ID       string   `json:"id"`
	Donation Donation `json:"donation"`
}

// DonorGroup accumulates one donor's giving history.
type DonorGroup struct {
	DonorName     string        `json:"donorName"`
	DonorEmail    string        `json:"donorEmail"`
	TotalAmount   float64       `json:"totalAmount"`
	TotalMeals    int           `json:"totalMeals"`
	DonationCount int           `json:"donationCount"`
	Donations     []DonationRef `json:"donations"`
}

// DonorSummary is the principal's donor-list view.
type DonorSummary struct {
	TotalDonors int                    `json:"totalDonors"`
	TotalAmount float64                `json:"totalAmount"`
	TotalMeals  int                    `json:"totalMeals"`
	Donors      map[string]*DonorGroup `json:"donors"`
}
