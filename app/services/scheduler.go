package services

import (
	"log"
	"time"

	"mealbridge/app/database"
)

// StartScheduler starts the background task scheduler.
func StartScheduler(store database.Store) {
	go func() {
		log.Println("Scheduler started...")
		ticker := time.NewTicker(1 * time.Minute)
		defer ticker.Stop()

		for range ticker.C {
			now := time.Now()

			// Trigger at 8:05 PM (20:05), after the serving day is over
			if now.Hour() == 20 && now.Minute() == 5 {
				log.Println("Triggering scheduled tasks [20:05]...")

				date := now.Format(database.DateLayout)
				if _, err := database.GenerateDailyReport(store, date); err != nil {
					log.Printf("Error generating daily report for %s: %v", date, err)
				}
			}
		}
	}()
}
