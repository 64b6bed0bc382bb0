package database

import (
	"fmt"
	"log"

	"mealbridge/app/models"
)

// GetAllMealTracking returns every per-day tracking document keyed by
// date string (2006-01-02).
func GetAllMealTracking(store Store) (map[string]models.MealTracking, error) {
	raw, err := store.Children("mealTracking")
	if err != nil {
		return nil, fmt.Errorf("list meal tracking: %w", err)
	}
	return decodeChildren[models.MealTracking]("mealTracking", raw)
}

// GetMealTrackingByDate returns one day's document, or nil when nothing
// was recorded that day.
func GetMealTrackingByDate(store Store, date string) (*models.MealTracking, error) {
	raw, err := store.Get("mealTracking/" + date)
	if err != nil {
		return nil, fmt.Errorf("load meal tracking %s: %w", date, err)
	}
	if raw == nil {
		return nil, nil
	}
	var tracking models.MealTracking
	if err := decodeInto("mealTracking/"+date, raw, &tracking); err != nil {
		return nil, err
	}
	return &tracking, nil
}

// RecordMealServed writes one student's serving entry into the day's
// document, creating the document on first serve. Read-modify-write with
// last-write-wins, like every other write here.
func RecordMealServed(store Store, date, teacherID, studentID string, entry models.MealEntry) error {
	tracking, err := GetMealTrackingByDate(store, date)
	if err != nil {
		return err
	}
	if tracking == nil {
		tracking = &models.MealTracking{Students: make(map[string]models.MealEntry)}
	}
	if tracking.Students == nil {
		tracking.Students = make(map[string]models.MealEntry)
	}
	tracking.TeacherID = teacherID
	tracking.Students[studentID] = entry

	if err := store.Set("mealTracking/"+date, tracking); err != nil {
		log.Printf("meals.RecordMealServed failed: %v (date=%s teacherId=%s studentId=%s)",
			err, date, teacherID, studentID)
		return fmt.Errorf("record meal: %w", err)
	}
	return nil
}

// UpdateMealEntry amends an existing serving entry, typically with the
// optional reaction/health/notes feedback fields.
func UpdateMealEntry(store Store, date, studentID string, entry models.MealEntry) error {
	tracking, err := GetMealTrackingByDate(store, date)
	if err != nil {
		return err
	}
	if tracking == nil {
		return ErrNotFound
	}
	if _, ok := tracking.Students[studentID]; !ok {
		return ErrNotFound
	}
	tracking.Students[studentID] = entry

	if err := store.Set("mealTracking/"+date, tracking); err != nil {
		log.Printf("meals.UpdateMealEntry failed: %v (date=%s studentId=%s)", err, date, studentID)
		return fmt.Errorf("update meal entry: %w", err)
	}
	return nil
}
