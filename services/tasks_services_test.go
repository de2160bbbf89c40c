package services

import (
	"testing"
	"time"

	"workshophub/models"

	"github.com/stretchr/testify/assert"
)

func makeSequence(orders ...int) []*models.Task {
	tasks := make([]*models.Task, 0, len(orders))
	for i, order := range orders {
		tasks = append(tasks, &models.Task{
			ID:         string(rune('a' + i)),
			WorkshopID: "workshop-1",
			TaskOrder:  order,
			CreatedAt:  time.Now().Add(time.Duration(i) * time.Second),
		})
	}
	return tasks
}

func TestActivateTask(t *testing.T) {
	now := time.Now()
	tasks := makeSequence(1, 2, 3)

	err := ActivateTask(tasks[0], tasks, now)
	assert.NoError(t, err)
	assert.True(t, tasks[0].IsActive)
	assert.NotNil(t, tasks[0].StartTime)
	assert.Equal(t, now, *tasks[0].StartTime)
}

func TestActivateTask_EndedTaskFailsWithoutMutation(t *testing.T) {
	now := time.Now()
	tasks := makeSequence(1, 2)
	tasks[0].IsEnded = true

	err := ActivateTask(tasks[0], tasks, now)
	assert.ErrorIs(t, err, ErrTaskEnded)
	assert.False(t, tasks[0].IsActive)
	assert.Nil(t, tasks[0].StartTime)
}

func TestActivateTask_RejectedWhileSiblingActive(t *testing.T) {
	now := time.Now()
	tasks := makeSequence(1, 2)
	tasks[0].IsActive = true

	err := ActivateTask(tasks[1], tasks, now)
	assert.ErrorIs(t, err, ErrAnotherTaskActive)
	assert.False(t, tasks[1].IsActive)
	assert.Nil(t, tasks[1].StartTime)
}

func TestActivateTask_ReactivatingSelfIsAllowed(t *testing.T) {
	now := time.Now()
	tasks := makeSequence(1, 2)
	tasks[0].IsActive = true

	err := ActivateTask(tasks[0], tasks, now)
	assert.NoError(t, err)
	assert.True(t, tasks[0].IsActive)
}

func TestDeactivateTask_ClearsStartTime(t *testing.T) {
	now := time.Now()
	task := &models.Task{IsActive: true, StartTime: &now}

	DeactivateTask(task)
	assert.False(t, task.IsActive)
	assert.Nil(t, task.StartTime)
}

func TestEndTask_AdvancesToNextOrder(t *testing.T) {
	now := time.Now()
	tasks := makeSequence(1, 2, 3)
	tasks[0].IsActive = true

	next := EndTask(tasks[0], tasks, now)

	assert.False(t, tasks[0].IsActive)
	assert.True(t, tasks[0].IsEnded)
	assert.Same(t, tasks[1], next)
	assert.True(t, tasks[1].IsActive)
	assert.NotNil(t, tasks[1].StartTime)
}

func TestEndTask_LastTaskHaltsSequence(t *testing.T) {
	now := time.Now()
	tasks := makeSequence(1, 2, 3)

	next := EndTask(tasks[2], tasks, now)

	assert.Nil(t, next)
	assert.True(t, tasks[2].IsEnded)
	assert.False(t, tasks[0].IsActive)
	assert.False(t, tasks[1].IsActive)
}

func TestEndTask_SkipsEndedSuccessor(t *testing.T) {
	now := time.Now()
	tasks := makeSequence(1, 2, 3)
	tasks[1].IsEnded = true

	next := EndTask(tasks[0], tasks, now)

	// Order 2 already ended, order 3 does not follow order 1: sequence halts
	assert.Nil(t, next)
}

func TestEndTask_IsIdempotent(t *testing.T) {
	now := time.Now()
	tasks := makeSequence(1, 2)

	EndTask(tasks[0], tasks, now)
	assert.True(t, tasks[0].IsEnded)
	assert.False(t, tasks[0].IsActive)
	firstStart := tasks[1].StartTime

	next := EndTask(tasks[0], tasks, now.Add(time.Minute))
	assert.Nil(t, next)
	assert.True(t, tasks[0].IsEnded)
	assert.False(t, tasks[0].IsActive)
	// The second call must not re-advance the sequence
	assert.Equal(t, firstStart, tasks[1].StartTime)
}

func TestNextTask_DuplicateOrderFirstCreatedWins(t *testing.T) {
	tasks := makeSequence(1, 2, 2)

	next := NextTask(tasks, 1)
	assert.Same(t, tasks[1], next)
}

func TestNextTask_NoSuccessor(t *testing.T) {
	tasks := makeSequence(1, 3)

	assert.Nil(t, NextTask(tasks, 3))
	// A gap in the sequence also halts the advance
	assert.Nil(t, NextTask(tasks, 1))
	assert.Same(t, tasks[1], NextTask(tasks, 2))
}
