package database

import (
	"fmt"
	"log"

	"mealbridge/app/models"
)

// AddMealPlan files a principal's menu as a draft.
func AddMealPlan(store Store, plan models.MealPlan) (string, error) {
	id := store.PushKey()
	plan.Status = models.MealPlanDraft
	plan.CreatedAt = nowISO()
	if err := store.Set("mealPlans/"+id, plan); err != nil {
		log.Printf("plans.AddMealPlan failed: %v (plan=%+v)", err, plan)
		return "", fmt.Errorf("add meal plan: %w", err)
	}
	return id, nil
}

// GetMealPlansBySchoolID filters the collection by school.
func GetMealPlansBySchoolID(store Store, schoolID string) (map[string]models.MealPlan, error) {
	raw, err := store.Children("mealPlans")
	if err != nil {
		return nil, fmt.Errorf("list meal plans: %w", err)
	}
	plans, err := decodeChildren[models.MealPlan]("mealPlans", raw)
	if err != nil {
		return nil, err
	}
	filtered := make(map[string]models.MealPlan)
	for id, plan := range plans {
		if plan.SchoolID == schoolID {
			filtered[id] = plan
		}
	}
	return filtered, nil
}

// ApproveMealPlan moves a draft plan to approved.
func ApproveMealPlan(store Store, planID string) error {
	raw, err := store.Get("mealPlans/" + planID)
	if err != nil {
		return fmt.Errorf("load meal plan %s: %w", planID, err)
	}
	if raw == nil {
		return ErrNotFound
	}
	err = store.Update("mealPlans/"+planID, map[string]any{
		"status":     models.MealPlanApproved,
		"approvedAt": nowISO(),
	})
	if err != nil {
		log.Printf("plans.ApproveMealPlan failed: %v (planId=%s)", err, planID)
		return fmt.Errorf("approve meal plan: %w", err)
	}
	return nil
}
