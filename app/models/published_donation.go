package models

// PublishedDonation is an in-kind item a donor has offered, claimable by a
// school.
type PublishedDonation struct {
	DonorID     string                  `json:"donorId"`
	DonorName   string                  `json:"donorName,omitempty"`
	ItemName    string                  `json:"itemName" validate:"required"`
	Description string                  `json:"description"`
	Quantity    int                     `json:"quantity" validate:"required,gt=0"`
	Status      PublishedDonationStatus `json:"status"`
	ClaimedBy   string                  `json:"claimedBy,omitempty"`
	CreatedAt   string                  `json:"createdAt"`
}
