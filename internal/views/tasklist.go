package views

import (
	"context"
	"io"

	"todo/internal/output"
	"todo/internal/service"
)

// TaskList displays the current tasks.
type TaskList struct {
	svc service.Service

	// ShowCompleted includes completed tasks in Tasks and Render.
	ShowCompleted bool
}

// NewTaskList mounts a task list on svc.
func NewTaskList(svc service.Service) *TaskList {
	return &TaskList{svc: svc}
}

// Service returns the handle the list is mounted on.
func (v *TaskList) Service() service.Service { return v.svc }

// Tasks fetches the tasks the list displays, in backend order.
func (v *TaskList) Tasks(ctx context.Context) ([]service.Task, error) {
	if v.svc == nil {
		return nil, ErrNotMounted
	}
	all, err := v.svc.ListTasks(ctx)
	if err != nil {
		return nil, err
	}
	if v.ShowCompleted {
		return all, nil
	}

	open := make([]service.Task, 0, len(all))
	for _, t := range all {
		if !t.Completed {
			open = append(open, t)
		}
	}
	return open, nil
}

// Render writes one numbered line per task and returns how many it wrote.
func (v *TaskList) Render(ctx context.Context, w io.Writer) (int, error) {
	tasks, err := v.Tasks(ctx)
	if err != nil {
		return 0, err
	}
	for i, task := range tasks {
		output.FormatTask(w, i+1, task)
	}
	return len(tasks), nil
}
