// Package service defines the backend-agnostic interface for task operations.
package service

import "context"

// Service defines the interface for task backend operations.
// Views and commands only talk to this interface; the GraphQL client stays
// behind it.
type Service interface {
	// ListTasks returns every task in backend order, completed ones included.
	ListTasks(ctx context.Context) ([]Task, error)

	// CreateTask creates a new open task and returns it.
	CreateTask(ctx context.Context, title string) (Task, error)

	// CompleteTask marks a task as completed.
	CompleteTask(ctx context.Context, taskID string) error

	// DeleteTask deletes a task.
	DeleteTask(ctx context.Context, taskID string) error
}
