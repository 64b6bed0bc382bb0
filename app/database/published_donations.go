package database

import (
	"fmt"
	"log"

	"mealbridge/app/models"
)

// AddPublishedDonation offers an in-kind item, available for claiming.
func AddPublishedDonation(store Store, item models.PublishedDonation) (string, error) {
	id := store.PushKey()
	item.Status = models.PublishedAvailable
	item.CreatedAt = nowISO()
	if err := store.Set("publishedDonations/"+id, item); err != nil {
		log.Printf("published.AddPublishedDonation failed: %v (item=%+v)", err, item)
		return "", fmt.Errorf("add published donation: %w", err)
	}
	return id, nil
}

// GetPublishedDonationsByDonorID filters the collection by donor.
func GetPublishedDonationsByDonorID(store Store, donorID string) (map[string]models.PublishedDonation, error) {
	raw, err := store.Children("publishedDonations")
	if err != nil {
		return nil, fmt.Errorf("list published donations: %w", err)
	}
	items, err := decodeChildren[models.PublishedDonation]("publishedDonations", raw)
	if err != nil {
		return nil, err
	}
	mine := make(map[string]models.PublishedDonation)
	for id, item := range items {
		if item.DonorID == donorID {
			mine[id] = item
		}
	}
	return mine, nil
}

// ClaimPublishedDonation marks an available item claimed by a school.
func ClaimPublishedDonation(store Store, itemID, schoolID string) error {
	raw, err := store.Get("publishedDonations/" + itemID)
	if err != nil {
		return fmt.Errorf("load published donation %s: %w", itemID, err)
	}
	if raw == nil {
		return ErrNotFound
	}
	var item models.PublishedDonation
	if err := decodeInto("publishedDonations/"+itemID, raw, &item); err != nil {
		return err
	}
	if item.Status != models.PublishedAvailable {
		return fmt.Errorf("published donation %s already claimed", itemID)
	}
	err = store.Update("publishedDonations/"+itemID, map[string]any{
		"status":    models.PublishedClaimed,
		"claimedBy": schoolID,
	})
	if err != nil {
		log.Printf("published.ClaimPublishedDonation failed: %v (itemId=%s schoolId=%s)", err, itemID, schoolID)
		return fmt.Errorf("claim published donation: %w", err)
	}
	return nil
}
