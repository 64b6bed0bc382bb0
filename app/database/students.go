package database

import (
	"fmt"
	"log"

	"mealbridge/app/models"
)

func studentPath(teacherID, studentID string) string {
	return "students/" + teacherID + "/" + studentID
}

// GetStudentsByTeacher returns a teacher's students keyed by id; an empty
// map when the teacher has none.
func GetStudentsByTeacher(store Store, teacherID string) (map[string]models.StudentProfile, error) {
	raw, err := store.Children("students/" + teacherID)
	if err != nil {
		return nil, fmt.Errorf("list students for %s: %w", teacherID, err)
	}
	return decodeChildren[models.StudentProfile]("students/"+teacherID, raw)
}

// AddStudent stamps createdAt, generates an id and writes the profile.
func AddStudent(store Store, teacherID string, student models.StudentProfile) (string, error) {
	id := store.PushKey()
	student.CreatedAt = nowISO()
	if err := store.Set(studentPath(teacherID, id), student); err != nil {
		log.Printf("students.AddStudent failed: %v (teacherId=%s student=%+v)", err, teacherID, student)
		return "", fmt.Errorf("add student: %w", err)
	}
	return id, nil
}

// UpdateStudent merge-patches the named fields only.
func UpdateStudent(store Store, teacherID, studentID string, fields map[string]any) error {
	if err := store.Update(studentPath(teacherID, studentID), fields); err != nil {
		log.Printf("students.UpdateStudent failed: %v (teacherId=%s studentId=%s fields=%v)",
			err, teacherID, studentID, fields)
		return fmt.Errorf("update student: %w", err)
	}
	return nil
}

// DeleteStudent hard-removes the record. Students are the only entity with
// a delete path; there is no tombstone.
func DeleteStudent(store Store, teacherID, studentID string) error {
	if err := store.Remove(studentPath(teacherID, studentID)); err != nil {
		log.Printf("students.DeleteStudent failed: %v (teacherId=%s studentId=%s)", err, teacherID, studentID)
		return fmt.Errorf("delete student: %w", err)
	}
	return nil
}
