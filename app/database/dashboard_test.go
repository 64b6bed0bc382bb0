package database

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"mealbridge/app/models"
)

func trackingDay(teacherID string, studentIDs ...string) models.MealTracking {
	students := make(map[string]models.MealEntry, len(studentIDs))
	for _, id := range studentIDs {
		students[id] = models.MealEntry{Name: id, MealServed: true, Time: "2026-03-10T12:00:00Z"}
	}
	return models.MealTracking{TeacherID: teacherID, Students: students}
}

func TestComputeMealStats(t *testing.T) {
	tracking := map[string]models.MealTracking{
		"2026-03-08": trackingDay("t1", "s1", "s2"),
		"2026-03-09": trackingDay("t1", "s1"),
		"2026-03-10": trackingDay("t1", "s1", "s2", "s3"),
	}

	total, today := ComputeMealStats(tracking, "2026-03-10")
	assert.Equal(t, 6, total)
	assert.Equal(t, 3, today)
}

func TestComputeMealStatsNoRecordToday(t *testing.T) {
	tracking := map[string]models.MealTracking{
		"2026-03-08": trackingDay("t1", "s1", "s2"),
	}

	total, today := ComputeMealStats(tracking, "2026-03-10")
	assert.Equal(t, 2, total)
	assert.Equal(t, 0, today)
}

func TestSumDonations(t *testing.T) {
	donations := map[string]models.Donation{
		"d1": {DonorID: "u1", Amount: 25.50, MealContribution: 10},
		"d2": {DonorID: "u2", Amount: 100, MealContribution: 40},
		"d3": {DonorID: "u1", Amount: 4.50, MealContribution: 2},
	}

	amount, meals := SumDonations(donations)
	assert.InDelta(t, 130.0, amount, 1e-9)
	assert.Equal(t, 52, meals)
}

func TestGroupDonationsByDonor(t *testing.T) {
	donations := map[string]models.Donation{
		"d1": {DonorID: "u1", DonorName: "Grace", DonorEmail: "g@x.com", Amount: 25, MealContribution: 10},
		"d2": {DonorID: "u2", Amount: 100, MealContribution: 40},
		"d3": {DonorID: "u1", DonorName: "Grace", DonorEmail: "g@x.com", Amount: 5, MealContribution: 2},
	}

	groups := GroupDonationsByDonor(donations)
	require.Len(t, groups, 2, "one group per distinct donor")

	grace := groups["u1"]
	require.NotNil(t, grace)
	assert.Equal(t, "Grace", grace.DonorName)
	assert.InDelta(t, 30.0, grace.TotalAmount, 1e-9)
	assert.Equal(t, 12, grace.TotalMeals)
	assert.Equal(t, 2, grace.DonationCount)
	assert.Len(t, grace.Donations, 2)

	anon := groups["u2"]
	require.NotNil(t, anon)
	assert.Equal(t, "Anonymous", anon.DonorName, "missing donor name falls back")
	assert.Equal(t, "", anon.DonorEmail)

	// grouping preserves totals
	var grouped float64
	for _, g := range groups {
		grouped += g.TotalAmount
	}
	raw, _ := SumDonations(donations)
	assert.InDelta(t, raw, grouped, 1e-9)
}

func TestUrgencyBoundary(t *testing.T) {
	now := time.Date(2026, 3, 10, 0, 0, 0, 0, time.Local)

	twoDays := DaysUntilTarget("2026-03-12", now)
	assert.Equal(t, 2, twoDays)
	assert.True(t, Urgent(twoDays), "exactly two days out is urgent")

	threeDays := DaysUntilTarget("2026-03-13", now)
	assert.Equal(t, 3, threeDays)
	assert.False(t, Urgent(threeDays), "three days out is not urgent")

	assert.True(t, Urgent(DaysUntilTarget("2026-03-09", now)), "past-due stays urgent")
}

func TestDaysUntilTargetUnparseable(t *testing.T) {
	now := time.Date(2026, 3, 10, 0, 0, 0, 0, time.Local)
	assert.Equal(t, 0, DaysUntilTarget("soon", now))
}

func TestGetDashboardStats(t *testing.T) {
	store := NewMemoryStore()

	today := Today()
	require.NoError(t, store.Set("mealTracking/"+today, trackingDay("t1", "s1", "s2")))
	require.NoError(t, store.Set("mealTracking/2020-01-01", trackingDay("t1", "s1")))

	_, err := AddDonation(store, models.Donation{DonorID: "u1", Amount: 40, MealContribution: 16})
	require.NoError(t, err)

	_, err = AddFeedback(store, models.Feedback{ParentID: "p1", Feedback: "Great", MealDate: today})
	require.NoError(t, err)
	reviewedID, err := AddFeedback(store, models.Feedback{ParentID: "p2", Feedback: "Cold", MealDate: today})
	require.NoError(t, err)
	require.NoError(t, MarkFeedbackReviewed(store, reviewedID))

	stats, err := GetDashboardStats(store)
	require.NoError(t, err)
	assert.Equal(t, 3, stats.TotalMealsServed)
	assert.Equal(t, 2, stats.TodayMeals)
	assert.InDelta(t, 40.0, stats.TotalDonations, 1e-9)
	assert.Equal(t, 1, stats.PendingFeedback)
}

func TestGetAdminStats(t *testing.T) {
	store := NewMemoryStore()

	_, _, err := SignUpPrincipal(store, "head@school.org", "s3cretpass", "Ms. Okello")
	require.NoError(t, err)
	_, _, err = SignUpAdmin(store, "admin@meals.org", "s3cretpass", "Root")
	require.NoError(t, err)

	_, err = AddSchool(store, models.School{
		Name: "Hilltop", Address: "1 Hill Rd", City: "Kampala", State: "Central", ZipCode: "000",
		ContactEmail: "info@hilltop.org", ContactPhone: "0700", PrincipalID: "p1", PrincipalName: "Ms. Okello",
	})
	require.NoError(t, err)

	_, err = AddDonationRequest(store, models.DonationRequest{
		SchoolID: "s1", RequestedAmount: 500, Purpose: "Lunches", TargetDate: "2030-01-01",
	})
	require.NoError(t, err)

	stats, err := GetAdminStats(store)
	require.NoError(t, err)
	assert.Equal(t, 2, stats.TotalUsers)
	assert.Equal(t, 1, stats.TotalSchools)
	assert.Equal(t, 1, stats.PendingSchools)
	assert.Equal(t, 1, stats.PendingRequests)

	require.Len(t, stats.UsersByRole, len(models.AllRoles), "every role is present, zero or not")
	assert.Equal(t, 1, stats.UsersByRole[models.RoleAdmin])
	assert.Equal(t, 1, stats.UsersByRole[models.RolePrincipal])
	assert.Equal(t, 0, stats.UsersByRole[models.RoleDonor])
}

func TestGetDonorSummary(t *testing.T) {
	store := NewMemoryStore()

	_, err := AddDonation(store, models.Donation{DonorID: "u1", DonorName: "Grace", SchoolID: "s1", Amount: 30, MealContribution: 12})
	require.NoError(t, err)
	_, err = AddDonation(store, models.Donation{DonorID: "u2", SchoolID: "s1", Amount: 70, MealContribution: 28})
	require.NoError(t, err)
	_, err = AddDonation(store, models.Donation{DonorID: "u3", SchoolID: "other", Amount: 999, MealContribution: 1})
	require.NoError(t, err)

	summary, err := GetDonorSummary(store, "s1")
	require.NoError(t, err)
	assert.Equal(t, 2, summary.TotalDonors)
	assert.InDelta(t, 100.0, summary.TotalAmount, 1e-9)
	assert.Equal(t, 40, summary.TotalMeals)
}
