package domain

import "time"

type TaskStatus string

const (
	TaskStatusTodo       TaskStatus = "TO_DO"
	TaskStatusInProgress TaskStatus = "IN_PROGRESS"
	TaskStatusDone       TaskStatus = "DONE"
)

func (s TaskStatus) Valid() bool {
	switch s {
	case TaskStatusTodo, TaskStatusInProgress, TaskStatusDone:
		return true
	}
	return false
}

// Task is the task aggregate. UserID is a weak reference to a User: nothing
// in the store keeps it consistent, user deletion clears it explicitly.
type Task struct {
	ID           string
	Title        string
	Description  string
	CreationDate time.Time
	Status       TaskStatus
	UserID       *string
}

// AssignedTo reports whether the task is currently owned by userID.
func (t Task) AssignedTo(userID string) bool {
	return t.UserID != nil && *t.UserID == userID
}

type CreateTaskInput struct {
	Title       string
	Description string
}

type UpdateTaskInput struct {
	Title       string
	Description string
	Status      TaskStatus
}

// UpdateResult carries the matched/modified counters of a bulk update.
type UpdateResult struct {
	Matched  int64
	Modified int64
}
