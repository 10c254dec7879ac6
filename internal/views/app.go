package views

import (
	"context"
	"io"

	"todo/internal/output"
	"todo/internal/service"
)

// AppTitle is the header text.
const AppTitle = "ToDo App"

// App is the top-level layout: a header, the input, and the list.
type App struct {
	Title string
	Input *TaskInput
	List  *TaskList

	svc service.Service
}

// Mount binds svc to a new App and both of its views.
func Mount(svc service.Service) *App {
	return &App{
		Title: AppTitle,
		Input: NewTaskInput(svc),
		List:  NewTaskList(svc),
		svc:   svc,
	}
}

// Service returns the handle shared by the App's views.
func (a *App) Service() service.Service { return a.svc }

// Render writes the header followed by the task list and returns the number
// of tasks shown.
func (a *App) Render(ctx context.Context, w io.Writer) (int, error) {
	if a.svc == nil {
		return 0, ErrNotMounted
	}
	tasks, err := a.List.Tasks(ctx)
	if err != nil {
		return 0, err
	}

	output.FormatHeader(w, a.Title)
	for i, task := range tasks {
		output.FormatTask(w, i+1, task)
	}
	return len(tasks), nil
}
