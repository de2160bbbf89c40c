package tasks

// Constants for error messages
const (
	ErrTaskNotFound        = "Task not found"
	ErrWorkshopNotFound    = "Workshop not found"
	ErrInvalidRequest      = "Invalid request data"
	ErrFailedFetchTasks    = "Failed to fetch tasks"
	ErrFailedCreateTask    = "Failed to create task"
	ErrFailedUpdateTask    = "Failed to update task"
	ErrFailedDeleteTask    = "Failed to delete task"
	ErrTaskAlreadyEnded    = "Task has already ended"
	ErrAnotherTaskActive   = "Another task is already active in this workshop"
	ErrFailedActivateTask  = "Failed to activate task"
	ErrFailedEndTask       = "Failed to end task"
)

// CreateTaskRequest model for creating a task
type CreateTaskRequest struct {
	Title       string `json:"title" binding:"required"`
	Description string `json:"description"`
	TaskOrder   int    `json:"task_order" binding:"required,min=1"`
}

// UpdateTaskRequest model for updating a task
type UpdateTaskRequest struct {
	Title       string `json:"title"`
	Description string `json:"description"`
	TaskOrder   *int   `json:"task_order"`
}
