package views

import (
	"context"
	"strings"

	"todo/internal/service"
)

// TaskInput submits new tasks.
type TaskInput struct {
	svc service.Service
}

// NewTaskInput mounts a task input on svc.
func NewTaskInput(svc service.Service) *TaskInput {
	return &TaskInput{svc: svc}
}

// Service returns the handle the input is mounted on.
func (v *TaskInput) Service() service.Service { return v.svc }

// Submit creates a task from title. Surrounding whitespace is trimmed.
func (v *TaskInput) Submit(ctx context.Context, title string) (service.Task, error) {
	if v.svc == nil {
		return service.Task{}, ErrNotMounted
	}
	title = strings.TrimSpace(title)
	if title == "" {
		return service.Task{}, ErrTitleRequired
	}
	return v.svc.CreateTask(ctx, title)
}
