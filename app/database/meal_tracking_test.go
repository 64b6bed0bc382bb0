package database

import (
	"encoding/json"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"mealbridge/app/models"
)

func TestRecordMealServedCreatesDay(t *testing.T) {
	store := NewMemoryStore()

	entry := models.MealEntry{Name: "Sam", MealServed: true, Time: "2026-03-10T12:05:00Z"}
	require.NoError(t, RecordMealServed(store, "2026-03-10", "t1", "s1", entry))

	day, err := GetMealTrackingByDate(store, "2026-03-10")
	require.NoError(t, err)
	require.NotNil(t, day)
	assert.Equal(t, "t1", day.TeacherID)
	require.Len(t, day.Students, 1)
	assert.Equal(t, entry, day.Students["s1"])
}

func TestRecordMealServedAccumulatesStudents(t *testing.T) {
	store := NewMemoryStore()

	require.NoError(t, RecordMealServed(store, "2026-03-10", "t1", "s1",
		models.MealEntry{Name: "Sam", MealServed: true, Time: "2026-03-10T12:05:00Z"}))
	require.NoError(t, RecordMealServed(store, "2026-03-10", "t1", "s2",
		models.MealEntry{Name: "Amina", MealServed: true, Time: "2026-03-10T12:06:00Z"}))

	day, err := GetMealTrackingByDate(store, "2026-03-10")
	require.NoError(t, err)
	assert.Len(t, day.Students, 2)
}

func TestUpdateMealEntryAddsFeedback(t *testing.T) {
	store := NewMemoryStore()

	require.NoError(t, RecordMealServed(store, "2026-03-10", "t1", "s1",
		models.MealEntry{Name: "Sam", MealServed: true, Time: "2026-03-10T12:05:00Z"}))

	updated := models.MealEntry{
		Name:              "Sam",
		MealServed:        true,
		Time:              "2026-03-10T12:05:00Z",
		MealReaction:      models.ReactionHappy,
		HealthObservation: models.ObservationActive,
		Notes:             "asked for seconds",
	}
	require.NoError(t, UpdateMealEntry(store, "2026-03-10", "s1", updated))

	day, err := GetMealTrackingByDate(store, "2026-03-10")
	require.NoError(t, err)
	assert.Equal(t, updated, day.Students["s1"])
}

func TestUpdateMealEntryAbsent(t *testing.T) {
	store := NewMemoryStore()

	err := UpdateMealEntry(store, "2026-03-10", "s1", models.MealEntry{Name: "Sam"})
	assert.ErrorIs(t, err, ErrNotFound)

	require.NoError(t, RecordMealServed(store, "2026-03-10", "t1", "s1",
		models.MealEntry{Name: "Sam", MealServed: true, Time: "2026-03-10T12:05:00Z"}))

	err = UpdateMealEntry(store, "2026-03-10", "s2", models.MealEntry{Name: "Amina"})
	assert.ErrorIs(t, err, ErrNotFound)
}

func TestMealEntryPhotoURLSerializesExplicitNull(t *testing.T) {
	entry := models.MealEntry{Name: "Sam", MealServed: true, Time: "2026-03-10T12:05:00Z"}

	raw, err := json.Marshal(entry)
	require.NoError(t, err)

	var doc map[string]any
	require.NoError(t, json.Unmarshal(raw, &doc))
	v, present := doc["photoUrl"]
	require.True(t, present, "photoUrl is always written")
	assert.Nil(t, v, "absent photo is an explicit null")
}

func TestGetMealTrackingByDateAbsent(t *testing.T) {
	store := NewMemoryStore()

	day, err := GetMealTrackingByDate(store, "2026-03-10")
	require.NoError(t, err)
	assert.Nil(t, day)
}
