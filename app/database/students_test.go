package database

import (
	"encoding/json"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"mealbridge/app/models"
)

func TestGetStudentsEmptyNamespace(t *testing.T) {
	store := NewMemoryStore()

	students, err := GetStudentsByTeacher(store, "t1")
	require.NoError(t, err)
	require.NotNil(t, students)
	assert.Empty(t, students)
}

func TestAddStudentStampsCreatedAt(t *testing.T) {
	store := NewMemoryStore()

	id, err := AddStudent(store, "t1", models.StudentProfile{
		Name:          "Sam",
		Age:           7,
		Grade:         "P2",
		ParentName:    "Jane",
		ParentContact: "0700000000",
	})
	require.NoError(t, err)

	students, err := GetStudentsByTeacher(store, "t1")
	require.NoError(t, err)
	require.Len(t, students, 1)
	assert.Equal(t, "Sam", students[id].Name)
	assert.NotEmpty(t, students[id].CreatedAt)
}

func TestAddStudentOmitsUnsetOptionalFields(t *testing.T) {
	store := NewMemoryStore()

	id, err := AddStudent(store, "t1", models.StudentProfile{
		Name:          "Sam",
		Age:           7,
		Grade:         "P2",
		ParentName:    "Jane",
		ParentContact: "0700000000",
	})
	require.NoError(t, err)

	raw, err := store.Get("students/t1/" + id)
	require.NoError(t, err)

	var doc map[string]any
	require.NoError(t, json.Unmarshal(raw, &doc))
	_, present := doc["parentEmail"]
	assert.False(t, present, "unset optional fields must not be written")
	for k, v := range doc {
		assert.NotNil(t, v, "field %q round-tripped as null", k)
	}
}

func TestUpdateStudentPartialPatch(t *testing.T) {
	store := NewMemoryStore()

	id, err := AddStudent(store, "t1", models.StudentProfile{
		Name: "Sam", Age: 7, Grade: "P2", ParentName: "Jane", ParentContact: "0700000000",
	})
	require.NoError(t, err)

	require.NoError(t, UpdateStudent(store, "t1", id, map[string]any{"grade": "P3"}))

	students, err := GetStudentsByTeacher(store, "t1")
	require.NoError(t, err)
	assert.Equal(t, "P3", students[id].Grade)
	assert.Equal(t, "Sam", students[id].Name)
	assert.Equal(t, 7, students[id].Age)
}

func TestDeleteStudentHardRemoves(t *testing.T) {
	store := NewMemoryStore()

	id, err := AddStudent(store, "t1", models.StudentProfile{
		Name: "Sam", Age: 7, Grade: "P2", ParentName: "Jane", ParentContact: "0700000000",
	})
	require.NoError(t, err)

	require.NoError(t, DeleteStudent(store, "t1", id))

	students, err := GetStudentsByTeacher(store, "t1")
	require.NoError(t, err)
	assert.Empty(t, students)

	raw, err := store.Get("students/t1/" + id)
	require.NoError(t, err)
	assert.Nil(t, raw, "no tombstone is left behind")
}
