package services

import (
	"errors"
	"fmt"

	"workshophub/database"
	"workshophub/models"

	"gorm.io/gorm"
)

var (
	// ErrWorkshopCompleted is returned for any transition attempted on a completed workshop
	ErrWorkshopCompleted = errors.New("workshop is completed")
	// ErrInvalidTransition is returned when a status change is not draft->live or live->completed
	ErrInvalidTransition = errors.New("invalid workshop status transition")
)

// ValidateTransition checks a workshop status change against the state
// machine. Allowed moves are draft->live and live->completed; completed is
// terminal and nothing moves backward.
func ValidateTransition(from string, to string) error {
	if from == models.WorkshopStatusCompleted {
		return ErrWorkshopCompleted
	}
	if from == models.WorkshopStatusDraft && to == models.WorkshopStatusLive {
		return nil
	}
	if from == models.WorkshopStatusLive && to == models.WorkshopStatusCompleted {
		return nil
	}
	return ErrInvalidTransition
}

// StartWorkshop moves a draft workshop live. The status write is the only side effect.
func StartWorkshop(workshop *models.Workshop) error {
	if err := ValidateTransition(workshop.Status, models.WorkshopStatusLive); err != nil {
		return err
	}
	workshop.Status = models.WorkshopStatusLive
	return nil
}

// CompleteWorkshop ends a live workshop: every task is force-ended, then the
// status moves to completed. On error nothing is mutated.
func CompleteWorkshop(workshop *models.Workshop, tasks []*models.Task) error {
	if err := ValidateTransition(workshop.Status, models.WorkshopStatusCompleted); err != nil {
		return err
	}
	for _, task := range tasks {
		task.IsActive = false
		task.IsEnded = true
	}
	workshop.Status = models.WorkshopStatusCompleted
	return nil
}

// StartWorkshopByID loads a workshop and persists the draft->live transition
func StartWorkshopByID(workshopID string) (models.Workshop, error) {
	var workshop models.Workshop
	if err := database.DB.First(&workshop, "id = ?", workshopID).Error; err != nil {
		return workshop, fmt.Errorf("workshop not found: %w", err)
	}
	if err := StartWorkshop(&workshop); err != nil {
		return workshop, err
	}
	if err := database.DB.Model(&workshop).Update("status", workshop.Status).Error; err != nil {
		return workshop, fmt.Errorf("failed to update workshop status: %w", err)
	}
	return workshop, nil
}

// EndWorkshopByID ends a workshop as one unit of work: the task bulk-end and
// the status write commit together or not at all.
func EndWorkshopByID(workshopID string) (models.Workshop, error) {
	var workshop models.Workshop
	err := database.DB.Transaction(func(tx *gorm.DB) error {
		if err := tx.First(&workshop, "id = ?", workshopID).Error; err != nil {
			return fmt.Errorf("workshop not found: %w", err)
		}
		if err := ValidateTransition(workshop.Status, models.WorkshopStatusCompleted); err != nil {
			return err
		}
		if err := tx.Model(&models.Task{}).
			Where("workshop_id = ?", workshopID).
			Updates(map[string]interface{}{"is_active": false, "is_ended": true}).Error; err != nil {
			return fmt.Errorf("failed to end workshop tasks: %w", err)
		}
		workshop.Status = models.WorkshopStatusCompleted
		if err := tx.Model(&workshop).Update("status", workshop.Status).Error; err != nil {
			return fmt.Errorf("failed to update workshop status: %w", err)
		}
		return nil
	})
	return workshop, err
}

// WorkshopExists checks whether a workshop with the given ID exists
func WorkshopExists(workshopID string) bool {
	var count int64
	database.DB.Model(&models.Workshop{}).Where("id = ?", workshopID).Count(&count)
	return count > 0
}
