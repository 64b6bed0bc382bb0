package database

import (
	"fmt"
	"log"

	"mealbridge/app/models"
)

// AddDonationRequest opens a request in the active state with nothing
// fulfilled yet. fulfilledAmount is only ever incremented by the donation
// processing flow, outside this codebase.
func AddDonationRequest(store Store, request models.DonationRequest) (string, error) {
	id := store.PushKey()
	request.Status = models.RequestActive
	request.FulfilledAmount = 0
	request.CreatedAt = nowISO()
	if err := store.Set("donationRequests/"+id, request); err != nil {
		log.Printf("requests.AddDonationRequest failed: %v (request=%+v)", err, request)
		return "", fmt.Errorf("add donation request: %w", err)
	}
	return id, nil
}

// GetAllDonationRequests returns every request keyed by id.
func GetAllDonationRequests(store Store) (map[string]models.DonationRequest, error) {
	raw, err := store.Children("donationRequests")
	if err != nil {
		return nil, fmt.Errorf("list donation requests: %w", err)
	}
	return decodeChildren[models.DonationRequest]("donationRequests", raw)
}

// GetActiveDonationRequests filters to requests still open for giving.
func GetActiveDonationRequests(store Store) (map[string]models.DonationRequest, error) {
	requests, err := GetAllDonationRequests(store)
	if err != nil {
		return nil, err
	}
	active := make(map[string]models.DonationRequest)
	for id, request := range requests {
		if request.Status == models.RequestActive {
			active[id] = request
		}
	}
	return active, nil
}

// GetDonationRequestsByPrincipalID filters the collection by owner.
func GetDonationRequestsByPrincipalID(store Store, principalID string) (map[string]models.DonationRequest, error) {
	requests, err := GetAllDonationRequests(store)
	if err != nil {
		return nil, err
	}
	mine := make(map[string]models.DonationRequest)
	for id, request := range requests {
		if request.PrincipalID == principalID {
			mine[id] = request
		}
	}
	return mine, nil
}

// UpdateDonationRequest merge-patches editable fields (purpose,
// description, targetDate, requestedAmount).
func UpdateDonationRequest(store Store, requestID string, fields map[string]any) error {
	if err := store.Update("donationRequests/"+requestID, fields); err != nil {
		log.Printf("requests.UpdateDonationRequest failed: %v (requestId=%s fields=%v)", err, requestID, fields)
		return fmt.Errorf("update donation request: %w", err)
	}
	return nil
}

// CancelDonationRequest moves an active request to cancelled.
func CancelDonationRequest(store Store, requestID string) error {
	raw, err := store.Get("donationRequests/" + requestID)
	if err != nil {
		return fmt.Errorf("load donation request %s: %w", requestID, err)
	}
	if raw == nil {
		return ErrNotFound
	}
	return UpdateDonationRequest(store, requestID, map[string]any{"status": models.RequestCancelled})
}
