package database

import (
	"fmt"
	"log"

	"mealbridge/app/models"
)

// AddDonation writes a new donation record. Donations are immutable once
// written; no update function exists on purpose.
func AddDonation(store Store, donation models.Donation) (string, error) {
	id := store.PushKey()
	if donation.Date == "" {
		donation.Date = nowISO()
	}
	if donation.Status == "" {
		donation.Status = models.DonationCompleted
	}
	if err := store.Set("donations/"+id, donation); err != nil {
		log.Printf("donations.AddDonation failed: %v (donation=%+v)", err, donation)
		return "", fmt.Errorf("add donation: %w", err)
	}
	return id, nil
}

// GetAllDonations returns every donation keyed by id.
func GetAllDonations(store Store) (map[string]models.Donation, error) {
	raw, err := store.Children("donations")
	if err != nil {
		return nil, fmt.Errorf("list donations: %w", err)
	}
	return decodeChildren[models.Donation]("donations", raw)
}

// GetDonationsBySchoolID filters the collection by receiving school.
func GetDonationsBySchoolID(store Store, schoolID string) (map[string]models.Donation, error) {
	donations, err := GetAllDonations(store)
	if err != nil {
		return nil, err
	}
	filtered := make(map[string]models.Donation)
	for id, donation := range donations {
		if donation.SchoolID == schoolID {
			filtered[id] = donation
		}
	}
	return filtered, nil
}

// GetDonationsByDonorID filters the collection by donor.
func GetDonationsByDonorID(store Store, donorID string) (map[string]models.Donation, error) {
	donations, err := GetAllDonations(store)
	if err != nil {
		return nil, err
	}
	filtered := make(map[string]models.Donation)
	for id, donation := range donations {
		if donation.DonorID == donorID {
			filtered[id] = donation
		}
	}
	return filtered, nil
}
