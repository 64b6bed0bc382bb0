package database

import (
	"fmt"
	"log"

	"mealbridge/app/models"
)

// AddTeacher stamps createdAt, generates an id and writes the record.
func AddTeacher(store Store, teacher models.Teacher) (string, error) {
	id := store.PushKey()
	teacher.CreatedAt = nowISO()
	if err := store.Set("teachers/"+id, teacher); err != nil {
		log.Printf("teachers.AddTeacher failed: %v (teacher=%+v)", err, teacher)
		return "", fmt.Errorf("add teacher: %w", err)
	}
	return id, nil
}

// GetTeacherByID returns the teacher, or nil when absent.
func GetTeacherByID(store Store, teacherID string) (*models.Teacher, error) {
	raw, err := store.Get("teachers/" + teacherID)
	if err != nil {
		return nil, fmt.Errorf("load teacher %s: %w", teacherID, err)
	}
	if raw == nil {
		return nil, nil
	}
	var teacher models.Teacher
	if err := decodeInto("teachers/"+teacherID, raw, &teacher); err != nil {
		return nil, err
	}
	return &teacher, nil
}

// GetAllTeachers returns the global collection keyed by id.
func GetAllTeachers(store Store) (map[string]models.Teacher, error) {
	raw, err := store.Children("teachers")
	if err != nil {
		return nil, fmt.Errorf("list teachers: %w", err)
	}
	return decodeChildren[models.Teacher]("teachers", raw)
}

// GetTeachersBySchoolID filters the global collection by school. The
// filter runs here, not in the store.
func GetTeachersBySchoolID(store Store, schoolID string) (map[string]models.Teacher, error) {
	teachers, err := GetAllTeachers(store)
	if err != nil {
		return nil, err
	}
	schoolTeachers := make(map[string]models.Teacher)
	for id, teacher := range teachers {
		if teacher.SchoolID == schoolID {
			schoolTeachers[id] = teacher
		}
	}
	return schoolTeachers, nil
}

// UpdateTeacher merge-patches the named fields only.
func UpdateTeacher(store Store, teacherID string, fields map[string]any) error {
	if err := store.Update("teachers/"+teacherID, fields); err != nil {
		log.Printf("teachers.UpdateTeacher failed: %v (teacherId=%s fields=%v)", err, teacherID, fields)
		return fmt.Errorf("update teacher: %w", err)
	}
	return nil
}

// SetTeacherStatus is the single entry point for the active/inactive
// pair; activate and deactivate both route through here.
func SetTeacherStatus(store Store, teacherID string, status models.TeacherStatus) error {
	if !status.Valid() {
		return fmt.Errorf("invalid teacher status %q", status)
	}
	return UpdateTeacher(store, teacherID, map[string]any{"isActive": status.IsActive()})
}
