package services

import (
	"testing"

	"workshophub/models"

	"github.com/stretchr/testify/assert"
)

func TestValidateTransition(t *testing.T) {
	assert.NoError(t, ValidateTransition(models.WorkshopStatusDraft, models.WorkshopStatusLive))
	assert.NoError(t, ValidateTransition(models.WorkshopStatusLive, models.WorkshopStatusCompleted))

	// No backward or skipping transitions
	assert.ErrorIs(t, ValidateTransition(models.WorkshopStatusLive, models.WorkshopStatusDraft), ErrInvalidTransition)
	assert.ErrorIs(t, ValidateTransition(models.WorkshopStatusDraft, models.WorkshopStatusCompleted), ErrInvalidTransition)

	// Completed is terminal
	assert.ErrorIs(t, ValidateTransition(models.WorkshopStatusCompleted, models.WorkshopStatusLive), ErrWorkshopCompleted)
	assert.ErrorIs(t, ValidateTransition(models.WorkshopStatusCompleted, models.WorkshopStatusDraft), ErrWorkshopCompleted)
}

func TestStartWorkshop(t *testing.T) {
	workshop := &models.Workshop{Status: models.WorkshopStatusDraft}

	assert.NoError(t, StartWorkshop(workshop))
	assert.Equal(t, models.WorkshopStatusLive, workshop.Status)

	// Starting twice is rejected
	assert.Error(t, StartWorkshop(workshop))
	assert.Equal(t, models.WorkshopStatusLive, workshop.Status)
}

func TestCompleteWorkshop_EndsAllTasks(t *testing.T) {
	workshop := &models.Workshop{Status: models.WorkshopStatusLive}
	tasks := makeSequence(1, 2, 3)
	tasks[0].IsActive = true
	tasks[1].IsActive = true

	assert.NoError(t, CompleteWorkshop(workshop, tasks))
	assert.Equal(t, models.WorkshopStatusCompleted, workshop.Status)
	for _, task := range tasks {
		assert.False(t, task.IsActive)
		assert.True(t, task.IsEnded)
	}
}

func TestCompleteWorkshop_TerminalStatusRejectsRestart(t *testing.T) {
	workshop := &models.Workshop{Status: models.WorkshopStatusLive}

	assert.NoError(t, CompleteWorkshop(workshop, nil))
	assert.ErrorIs(t, StartWorkshop(workshop), ErrWorkshopCompleted)
	assert.Equal(t, models.WorkshopStatusCompleted, workshop.Status)
}

func TestCompleteWorkshop_DraftRejectedWithoutMutation(t *testing.T) {
	workshop := &models.Workshop{Status: models.WorkshopStatusDraft}
	tasks := makeSequence(1, 2)

	assert.ErrorIs(t, CompleteWorkshop(workshop, tasks), ErrInvalidTransition)
	assert.Equal(t, models.WorkshopStatusDraft, workshop.Status)
	for _, task := range tasks {
		assert.False(t, task.IsEnded)
	}
}
