package database

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"mealbridge/app/models"
)

func TestGenerateDailyReport(t *testing.T) {
	store := NewMemoryStore()

	today := Today()
	require.NoError(t, store.Set("mealTracking/"+today, trackingDay("t1", "s1", "s2")))
	_, err := AddDonation(store, models.Donation{DonorID: "u1", Amount: 80, MealContribution: 32})
	require.NoError(t, err)

	// one urgent active request, one comfortably out
	_, err = AddDonationRequest(store, models.DonationRequest{
		SchoolID: "s1", RequestedAmount: 100, Purpose: "Urgent lunches", TargetDate: today,
	})
	require.NoError(t, err)
	_, err = AddDonationRequest(store, models.DonationRequest{
		SchoolID: "s1", RequestedAmount: 100, Purpose: "Next term", TargetDate: "2099-01-01",
	})
	require.NoError(t, err)

	report, err := GenerateDailyReport(store, today)
	require.NoError(t, err)
	assert.Equal(t, "scheduler", report.GeneratedBy)
	assert.Equal(t, 2, report.MealsServed)
	assert.Equal(t, 1, report.Shortages)
	assert.InDelta(t, 80.0, report.DonationsReceived, 1e-9)

	stored, err := GetReportByDate(store, today)
	require.NoError(t, err)
	require.NotNil(t, stored)
	assert.Equal(t, *report, *stored)
}

func TestGetReportByDateAbsent(t *testing.T) {
	store := NewMemoryStore()

	report, err := GetReportByDate(store, "2020-01-01")
	require.NoError(t, err)
	assert.Nil(t, report)
}
