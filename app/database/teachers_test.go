package database

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"mealbridge/app/models"
)

func TestAddTeacherThenFilterBySchool(t *testing.T) {
	store := NewMemoryStore()

	id, err := AddTeacher(store, models.Teacher{
		Name:     "A",
		Email:    "a@x.com",
		SchoolID: "S1",
		AddedBy:  "U1",
		IsActive: true,
	})
	require.NoError(t, err)
	require.NotEmpty(t, id)

	_, err = AddTeacher(store, models.Teacher{
		Name: "B", Email: "b@x.com", SchoolID: "S2", AddedBy: "U1", IsActive: true,
	})
	require.NoError(t, err)

	bySchool, err := GetTeachersBySchoolID(store, "S1")
	require.NoError(t, err)
	require.Len(t, bySchool, 1)

	got, ok := bySchool[id]
	require.True(t, ok)
	assert.Equal(t, "A", got.Name)
	assert.Equal(t, "a@x.com", got.Email)
	assert.Equal(t, "S1", got.SchoolID)
	assert.Equal(t, "U1", got.AddedBy)
	assert.True(t, got.IsActive)
	assert.NotEmpty(t, got.CreatedAt)
}

func TestGetTeachersEmptyNamespace(t *testing.T) {
	store := NewMemoryStore()

	teachers, err := GetAllTeachers(store)
	require.NoError(t, err)
	require.NotNil(t, teachers)
	assert.Empty(t, teachers)

	bySchool, err := GetTeachersBySchoolID(store, "S1")
	require.NoError(t, err)
	require.NotNil(t, bySchool)
	assert.Empty(t, bySchool)
}

func TestDeactivateThenActivateRoundTrip(t *testing.T) {
	store := NewMemoryStore()

	id, err := AddTeacher(store, models.Teacher{
		Name: "A", Email: "a@x.com", SchoolID: "S1", AddedBy: "U1", IsActive: true,
	})
	require.NoError(t, err)

	before, err := GetTeacherByID(store, id)
	require.NoError(t, err)

	require.NoError(t, SetTeacherStatus(store, id, models.TeacherInactive))

	mid, err := GetTeacherByID(store, id)
	require.NoError(t, err)
	assert.False(t, mid.IsActive)
	assert.Equal(t, models.TeacherInactive, mid.Status())

	require.NoError(t, SetTeacherStatus(store, id, models.TeacherActive))

	after, err := GetTeacherByID(store, id)
	require.NoError(t, err)
	assert.True(t, after.IsActive)
	assert.Equal(t, *before, *after, "round trip must leave every field as it was")
}

func TestSetTeacherStatusRejectsUnknownState(t *testing.T) {
	store := NewMemoryStore()

	err := SetTeacherStatus(store, "t1", models.TeacherStatus("retired"))
	assert.Error(t, err)
}

func TestUpdateTeacherTouchesNamedFieldsOnly(t *testing.T) {
	store := NewMemoryStore()

	id, err := AddTeacher(store, models.Teacher{
		Name: "A", Email: "a@x.com", SchoolID: "S1", AddedBy: "U1", IsActive: true,
	})
	require.NoError(t, err)

	require.NoError(t, UpdateTeacher(store, id, map[string]any{"name": "A. Nakato"}))

	got, err := GetTeacherByID(store, id)
	require.NoError(t, err)
	assert.Equal(t, "A. Nakato", got.Name)
	assert.Equal(t, "a@x.com", got.Email)
	assert.True(t, got.IsActive)
}

func TestGetTeacherByIDAbsent(t *testing.T) {
	store := NewMemoryStore()

	teacher, err := GetTeacherByID(store, "ghost")
	require.NoError(t, err)
	assert.Nil(t, teacher)
}
