// Package gqltasks implements the service.Service interface over a GraphQL endpoint.
package gqltasks

import (
	"context"
	"errors"
	"fmt"

	"todo/internal/config"
	"todo/internal/gqlclient"
	"todo/internal/service"
)

// ErrNoTask is returned when a mutation response carries no task.
var ErrNoTask = errors.New("response contained no task")

// Client implements service.Service using a shared gqlclient.Client.
type Client struct {
	gql  *gqlclient.Client
	docs config.Documents
}

type taskNode struct {
	ID        string `json:"id"`
	Title     string `json:"title"`
	Completed bool   `json:"completed"`
}

func (n taskNode) toTask() service.Task {
	return service.Task{ID: n.ID, Title: n.Title, Completed: n.Completed}
}

type tasksData struct {
	Tasks []taskNode `json:"tasks"`
}

type taskData struct {
	Task *taskNode `json:"task"`
}

// New creates a task backend on top of gql. Empty documents use the defaults.
func New(gql *gqlclient.Client, docs config.Documents) *Client {
	return &Client{
		gql:  gql,
		docs: withDefaults(docs),
	}
}

// GraphQL returns the underlying client handle.
func (c *Client) GraphQL() *gqlclient.Client {
	return c.gql
}

// ListTasks returns all tasks in backend order.
func (c *Client) ListTasks(ctx context.Context) ([]service.Task, error) {
	var data tasksData
	if err := c.gql.Query(ctx, c.docs.Tasks, nil, &data); err != nil {
		return nil, err
	}

	result := make([]service.Task, 0, len(data.Tasks))
	for _, n := range data.Tasks {
		result = append(result, n.toTask())
	}
	return result, nil
}

// CreateTask creates a new task with the given title.
func (c *Client) CreateTask(ctx context.Context, title string) (service.Task, error) {
	var data taskData
	if err := c.gql.Mutate(ctx, c.docs.AddTask, map[string]any{"title": title}, &data); err != nil {
		return service.Task{}, err
	}
	if data.Task == nil {
		return service.Task{}, fmt.Errorf("add task: %w", ErrNoTask)
	}
	return data.Task.toTask(), nil
}

// CompleteTask marks a task as completed.
func (c *Client) CompleteTask(ctx context.Context, taskID string) error {
	var data taskData
	if err := c.gql.Mutate(ctx, c.docs.CompleteTask, map[string]any{"id": taskID}, &data); err != nil {
		return err
	}
	if data.Task == nil {
		return fmt.Errorf("complete task %s: %w", taskID, ErrNoTask)
	}
	return nil
}

// DeleteTask deletes a task.
func (c *Client) DeleteTask(ctx context.Context, taskID string) error {
	var data taskData
	if err := c.gql.Mutate(ctx, c.docs.DeleteTask, map[string]any{"id": taskID}, &data); err != nil {
		return err
	}
	if data.Task == nil {
		return fmt.Errorf("delete task %s: %w", taskID, ErrNoTask)
	}
	return nil
}
