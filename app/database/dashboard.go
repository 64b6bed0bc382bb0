package database

import (
	"math"
	"time"

	"golang.org/x/sync/errgroup"

	"mealbridge/app/models"
)

// DateLayout is the collection key format for dated records.
const DateLayout = "2006-01-02"

// Today returns the current serving day in the host's local zone. Dated
// records are string-compared against it.
func Today() string {
	return time.Now().Format(DateLayout)
}

// ComputeMealStats folds the tracking collection into a lifetime total
// plus the count for the given day (0 when that day has no record).
func ComputeMealStats(tracking map[string]models.MealTracking, today string) (total, todayMeals int) {
	for date, day := range tracking {
		count := len(day.Students)
		total += count
		if date == today {
			todayMeals = count
		}
	}
	return total, todayMeals
}

// SumDonations linearly sums amounts and meal contributions. Amounts stay
// float64 with no rounding, same as the figures the clients display.
func SumDonations(donations map[string]models.Donation) (amount float64, meals int) {
	for _, donation := range donations {
		amount += donation.Amount
		meals += donation.MealContribution
	}
	return amount, meals
}

// GroupDonationsByDonor folds donations into per-donor giving histories.
// Missing donor names fall back to "Anonymous", missing emails to "".
func GroupDonationsByDonor(donations map[string]models.Donation) map[string]*models.DonorGroup {
	groups := make(map[string]*models.DonorGroup)
	for id, donation := range donations {
		group, ok := groups[donation.DonorID]
		if !ok {
			name := donation.DonorName
			if name == "" {
				name = "Anonymous"
			}
			group = &models.DonorGroup{
				DonorName:  name,
				DonorEmail: donation.DonorEmail,
			}
			groups[donation.DonorID] = group
		}
		group.TotalAmount += donation.Amount
		group.TotalMeals += donation.MealContribution
		group.DonationCount++
		group.Donations = append(group.Donations, models.DonationRef{ID: id, Donation: donation})
	}
	return groups
}

// DaysUntilTarget counts whole days until the target date, rounding up.
// The target parses at local midnight; an unparseable date counts as due
// now.
func DaysUntilTarget(targetDate string, now time.Time) int {
	target, err := time.ParseInLocation(DateLayout, targetDate, time.Local)
	if err != nil {
		return 0
	}
	return int(math.Ceil(target.Sub(now).Hours() / 24))
}

// Urgent classifies a request as urgent within a two-day window. Used for
// display only; sorting stays by target date.
func Urgent(daysUntilTarget int) bool {
	return daysUntilTarget <= 2
}

// GetDashboardStats fetches tracking, donations and feedback in parallel
// and reduces them. Any fetch failure fails the whole load; the caller
// keeps its previous figures.
func GetDashboardStats(store Store) (*models.DashboardStats, error) {
	var (
		tracking  map[string]models.MealTracking
		donations map[string]models.Donation
		feedback  map[string]models.Feedback
	)

	var g errgroup.Group
	g.Go(func() (err error) {
		tracking, err = GetAllMealTracking(store)
		return err
	})
	g.Go(func() (err error) {
		donations, err = GetAllDonations(store)
		return err
	})
	g.Go(func() (err error) {
		feedback, err = GetAllFeedback(store)
		return err
	})
	if err := g.Wait(); err != nil {
		return nil, err
	}

	total, todayMeals := ComputeMealStats(tracking, Today())
	amount, _ := SumDonations(donations)

	pending := 0
	for _, fb := range feedback {
		if fb.Status == models.FeedbackSubmitted {
			pending++
		}
	}

	return &models.DashboardStats{
		TotalMealsServed: total,
		TodayMeals:       todayMeals,
		TotalDonations:   amount,
		PendingFeedback:  pending,
	}, nil
}

// GetSystemStats counts users overall and per role, plus schools. Every
// role appears in the map even at zero.
func GetSystemStats(store Store) (totalUsers int, usersByRole map[models.Role]int, totalSchools int, err error) {
	users, err := GetAllUsers(store)
	if err != nil {
		return 0, nil, 0, err
	}
	schools, err := GetAllSchools(store)
	if err != nil {
		return 0, nil, 0, err
	}

	usersByRole = make(map[models.Role]int, len(models.AllRoles))
	for _, role := range models.AllRoles {
		usersByRole[role] = 0
	}
	for _, user := range users {
		if user.Role.Valid() {
			usersByRole[user.Role]++
		}
	}
	return len(users), usersByRole, len(schools), nil
}

// GetAdminStats assembles the system-wide dashboard. All five collection
// fetches run in parallel; one failure aborts the load.
func GetAdminStats(store Store) (*models.AdminStats, error) {
	var (
		tracking    map[string]models.MealTracking
		donations   map[string]models.Donation
		pending     map[string]models.School
		requests    map[string]models.DonationRequest
		totalUsers  int
		usersByRole map[models.Role]int
		schools     int
	)

	var g errgroup.Group
	g.Go(func() (err error) {
		totalUsers, usersByRole, schools, err = GetSystemStats(store)
		return err
	})
	g.Go(func() (err error) {
		tracking, err = GetAllMealTracking(store)
		return err
	})
	g.Go(func() (err error) {
		donations, err = GetAllDonations(store)
		return err
	})
	g.Go(func() (err error) {
		pending, err = GetPendingSchools(store)
		return err
	})
	g.Go(func() (err error) {
		requests, err = GetActiveDonationRequests(store)
		return err
	})
	if err := g.Wait(); err != nil {
		return nil, err
	}

	total, todayMeals := ComputeMealStats(tracking, Today())
	amount, _ := SumDonations(donations)

	return &models.AdminStats{
		TotalUsers:       totalUsers,
		TotalSchools:     schools,
		PendingSchools:   len(pending),
		TotalMealsServed: total,
		TodayMeals:       todayMeals,
		TotalDonations:   amount,
		PendingRequests:  len(requests),
		UsersByRole:      usersByRole,
	}, nil
}

// GetDonorSummary builds the principal's donor-list view for one school.
func GetDonorSummary(store Store, schoolID string) (*models.DonorSummary, error) {
	donations, err := GetDonationsBySchoolID(store, schoolID)
	if err != nil {
		return nil, err
	}
	groups := GroupDonationsByDonor(donations)

	summary := &models.DonorSummary{
		TotalDonors: len(groups),
		Donors:      groups,
	}
	for _, group := range groups {
		summary.TotalAmount += group.TotalAmount
		summary.TotalMeals += group.TotalMeals
	}
	return summary, nil
}
