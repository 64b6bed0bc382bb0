package database

import (
	"fmt"
	"log"

	"mealbridge/app/models"
)

// AddSchool registers a school in the pending state.
func AddSchool(store Store, school models.School) (string, error) {
	id := store.PushKey()
	school.Status = models.SchoolPending
	school.CreatedAt = nowISO()
	if err := store.Set("schools/"+id, school); err != nil {
		log.Printf("schools.AddSchool failed: %v (school=%+v)", err, school)
		return "", fmt.Errorf("add school: %w", err)
	}
	return id, nil
}

// GetSchoolByID returns the school, or nil when absent.
func GetSchoolByID(store Store, schoolID string) (*models.School, error) {
	raw, err := store.Get("schools/" + schoolID)
	if err != nil {
		return nil, fmt.Errorf("load school %s: %w", schoolID, err)
	}
	if raw == nil {
		return nil, nil
	}
	var school models.School
	if err := decodeInto("schools/"+schoolID, raw, &school); err != nil {
		return nil, err
	}
	return &school, nil
}

// GetAllSchools returns every school keyed by id.
func GetAllSchools(store Store) (map[string]models.School, error) {
	raw, err := store.Children("schools")
	if err != nil {
		return nil, fmt.Errorf("list schools: %w", err)
	}
	return decodeChildren[models.School]("schools", raw)
}

// GetPendingSchools filters to schools awaiting the approval decision.
func GetPendingSchools(store Store) (map[string]models.School, error) {
	schools, err := GetAllSchools(store)
	if err != nil {
		return nil, err
	}
	pending := make(map[string]models.School)
	for id, school := range schools {
		if school.Status == models.SchoolPending {
			pending[id] = school
		}
	}
	return pending, nil
}

// GetSchoolByPrincipalID returns the principal's school with its id, or
// nil when the principal has not registered one.
func GetSchoolByPrincipalID(store Store, principalID string) (string, *models.School, error) {
	schools, err := GetAllSchools(store)
	if err != nil {
		return "", nil, err
	}
	for id, school := range schools {
		if school.PrincipalID == principalID {
			s := school
			return id, &s, nil
		}
	}
	return "", nil, nil
}

// ApproveSchool flips a pending school to approved, stamping who decided
// and when. The gate is binary: approved and rejected are both terminal.
func ApproveSchool(store Store, schoolID, adminUID string) error {
	return decideSchool(store, schoolID, adminUID, models.SchoolApproved)
}

// RejectSchool flips a pending school to rejected.
func RejectSchool(store Store, schoolID, adminUID string) error {
	return decideSchool(store, schoolID, adminUID, models.SchoolRejected)
}

func decideSchool(store Store, schoolID, adminUID string, status models.SchoolStatus) error {
	school, err := GetSchoolByID(store, schoolID)
	if err != nil {
		return err
	}
	if school == nil {
		return ErrNotFound
	}
	if school.Status != models.SchoolPending {
		return fmt.Errorf("school %s already decided (%s)", schoolID, school.Status)
	}
	err = store.Update("schools/"+schoolID, map[string]any{
		"status":     status,
		"approvedAt": nowISO(),
		"approvedBy": adminUID,
	})
	if err != nil {
		log.Printf("schools.decideSchool failed: %v (schoolId=%s status=%s)", err, schoolID, status)
		return fmt.Errorf("decide school: %w", err)
	}
	return nil
}
