package database

import (
	"fmt"
	"log"
	"time"

	"mealbridge/app/models"
)

// GenerateDailyReport rolls today's figures into reports/{date} and
// returns the written report. The scheduler calls this nightly.
func GenerateDailyReport(store Store, date string) (*models.Report, error) {
	stats, err := GetDashboardStats(store)
	if err != nil {
		return nil, err
	}

	requests, err := GetActiveDonationRequests(store)
	if err != nil {
		return nil, err
	}
	shortages := 0
	now := time.Now()
	for _, request := range requests {
		if Urgent(DaysUntilTarget(request.TargetDate, now)) {
			shortages++
		}
	}

	report := models.Report{
		GeneratedBy:       "scheduler",
		DateGenerated:     nowISO(),
		MealsServed:       stats.TodayMeals,
		Shortages:         shortages,
		DonationsReceived: stats.TotalDonations,
		FeedbackSummary:   fmt.Sprintf("%d feedback entries awaiting review", stats.PendingFeedback),
	}

	if err := store.Set("reports/"+date, report); err != nil {
		log.Printf("reports.GenerateDailyReport failed: %v (date=%s)", err, date)
		return nil, fmt.Errorf("write report: %w", err)
	}
	return &report, nil
}

// GetReportByDate returns one day's report, or nil when none was
// generated.
func GetReportByDate(store Store, date string) (*models.Report, error) {
	raw, err := store.Get("reports/" + date)
	if err != nil {
		return nil, fmt.Errorf("load report %s: %w", date, err)
	}
	if raw == nil {
		return nil, nil
	}
	var report models.Report
	if err := decodeInto("reports/"+date, raw, &report); err != nil {
		return nil, err
	}
	return &report, nil
}
