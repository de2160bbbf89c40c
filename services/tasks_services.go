package services

import (
	"errors"
	"fmt"
	"time"

	"workshophub/database"
	"workshophub/models"

	"gorm.io/gorm"
)

var (
	// ErrTaskEnded is returned when activating a task that has already ended
	ErrTaskEnded = errors.New("task has already ended")
	// ErrAnotherTaskActive is returned when activating a task while a sibling is active
	ErrAnotherTaskActive = errors.New("another task is already active in this workshop")
)

// ActivateTask marks a task as the running one and stamps its start time.
// Fails without mutating the task when it has ended or when another task in
// the same workshop is already active.
func ActivateTask(task *models.Task, siblings []*models.Task, now time.Time) error {
	if task.IsEnded {
		return ErrTaskEnded
	}
	for _, sibling := range siblings {
		if sibling.ID != task.ID && sibling.IsActive {
			return ErrAnotherTaskActive
		}
	}
	task.IsActive = true
	task.StartTime = &now
	return nil
}

// DeactivateTask toggles a task off and clears its start time
func DeactivateTask(task *models.Task) {
	task.IsActive = false
	task.StartTime = nil
}

// EndTask terminally ends a task and activates the next one in the sequence,
// if any. Ending an already-ended task is a no-op. Returns the task that was
// activated, or nil when the sequence halts.
func EndTask(task *models.Task, siblings []*models.Task, now time.Time) *models.Task {
	if task.IsEnded {
		return nil
	}
	task.IsActive = false
	task.IsEnded = true

	next := NextTask(siblings, task.TaskOrder)
	if next != nil {
		next.IsActive = true
		next.StartTime = &now
	}
	return next
}

// NextTask returns the first non-ended task whose order follows endedOrder.
// The list is scanned in creation order, so when two tasks share the same
// task_order the first-created one wins.
func NextTask(tasks []*models.Task, endedOrder int) *models.Task {
	for _, task := range tasks {
		if task.TaskOrder == endedOrder+1 && !task.IsEnded {
			return task
		}
	}
	return nil
}

// ActivateTaskByID loads a task and its siblings and persists the activation
func ActivateTaskByID(taskID string) (models.Task, error) {
	var task models.Task
	err := database.DB.Transaction(func(tx *gorm.DB) error {
		if err := tx.First(&task, "id = ?", taskID).Error; err != nil {
			return fmt.Errorf("task not found: %w", err)
		}
		siblings, err := workshopTasks(tx, task.WorkshopID)
		if err != nil {
			return err
		}
		if err := ActivateTask(&task, siblings, time.Now()); err != nil {
			return err
		}
		if err := tx.Model(&task).Select("is_active", "start_time").Updates(&task).Error; err != nil {
			return fmt.Errorf("failed to update task: %w", err)
		}
		return nil
	})
	return task, err
}

// DeactivateTaskByID toggles a task off and persists the change
func DeactivateTaskByID(taskID string) (models.Task, error) {
	var task models.Task
	if err := database.DB.First(&task, "id = ?", taskID).Error; err != nil {
		return task, fmt.Errorf("task not found: %w", err)
	}
	DeactivateTask(&task)
	if err := database.DB.Model(&task).
		Updates(map[string]interface{}{"is_active": false, "start_time": nil}).Error; err != nil {
		return task, fmt.Errorf("failed to update task: %w", err)
	}
	return task, nil
}

// EndTaskByID ends a task and auto-advances to the next one in the sequence.
// Both writes happen in the same transaction.
func EndTaskByID(taskID string) (models.Task, *models.Task, error) {
	var task models.Task
	var next *models.Task
	err := database.DB.Transaction(func(tx *gorm.DB) error {
		if err := tx.First(&task, "id = ?", taskID).Error; err != nil {
			return fmt.Errorf("task not found: %w", err)
		}
		siblings, err := workshopTasks(tx, task.WorkshopID)
		if err != nil {
			return err
		}
		next = EndTask(&task, siblings, time.Now())
		if err := tx.Model(&task).
			Updates(map[string]interface{}{"is_active": false, "is_ended": true}).Error; err != nil {
			return fmt.Errorf("failed to end task: %w", err)
		}
		if next != nil {
			if err := tx.Model(next).Select("is_active", "start_time").Updates(next).Error; err != nil {
				return fmt.Errorf("failed to activate next task: %w", err)
			}
		}
		return nil
	})
	return task, next, err
}

func workshopTasks(tx *gorm.DB, workshopID string) ([]*models.Task, error) {
	var tasks []*models.Task
	if err := tx.Where("workshop_id = ?", workshopID).
		Order("created_at ASC").
		Find(&tasks).Error; err != nil {
		return nil, fmt.Errorf("failed to fetch workshop tasks: %w", err)
	}
	return tasks, nil
}
