package database

import (
	"fmt"
	"log"

	"mealbridge/app/models"
)

// AddFeedback files parent feedback in the submitted state.
func AddFeedback(store Store, feedback models.Feedback) (string, error) {
	id := store.PushKey()
	feedback.Status = models.FeedbackSubmitted
	feedback.CreatedAt = nowISO()
	if err := store.Set("feedback/"+id, feedback); err != nil {
		log.Printf("feedback.AddFeedback failed: %v (feedback=%+v)", err, feedback)
		return "", fmt.Errorf("add feedback: %w", err)
	}
	return id, nil
}

// GetAllFeedback returns every feedback record keyed by id.
func GetAllFeedback(store Store) (map[string]models.Feedback, error) {
	raw, err := store.Children("feedback")
	if err != nil {
		return nil, fmt.Errorf("list feedback: %w", err)
	}
	return decodeChildren[models.Feedback]("feedback", raw)
}

// GetFeedbackByParentID filters the collection by author.
func GetFeedbackByParentID(store Store, parentID string) (map[string]models.Feedback, error) {
	feedback, err := GetAllFeedback(store)
	if err != nil {
		return nil, err
	}
	mine := make(map[string]models.Feedback)
	for id, fb := range feedback {
		if fb.ParentID == parentID {
			mine[id] = fb
		}
	}
	return mine, nil
}

// MarkFeedbackReviewed moves a record from submitted to reviewed.
func MarkFeedbackReviewed(store Store, feedbackID string) error {
	raw, err := store.Get("feedback/" + feedbackID)
	if err != nil {
		return fmt.Errorf("load feedback %s: %w", feedbackID, err)
	}
	if raw == nil {
		return ErrNotFound
	}
	if err := store.Update("feedback/"+feedbackID, map[string]any{"status": models.FeedbackReviewed}); err != nil {
		log.Printf("feedback.MarkFeedbackReviewed failed: %v (feedbackId=%s)", err, feedbackID)
		return fmt.Errorf("mark feedback reviewed: %w", err)
	}
	return nil
}
