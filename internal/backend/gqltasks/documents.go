package gqltasks

import "todo/internal/config"

// Default documents. List results are read from the field aliased "tasks";
// mutation results from the field aliased "task". Overrides supplied through
// config must keep those aliases.
const (
	DefaultTasksDocument = `query Tasks {
  tasks {
    id
    title
    completed
  }
}`

	DefaultAddTaskDocument = `mutation AddTask($title: String!) {
  task: addTask(title: $title) {
    id
    title
    completed
  }
}`

	DefaultCompleteTaskDocument = `mutation CompleteTask($id: ID!) {
  task: completeTask(id: $id) {
    id
    title
    completed
  }
}`

	DefaultDeleteTaskDocument = `mutation DeleteTask($id: ID!) {
  task: deleteTask(id: $id) {
    id
  }
}`
)

// withDefaults fills empty documents with the defaults.
func withDefaults(docs config.Documents) config.Documents {
	if docs.Tasks == "" {
		docs.Tasks = DefaultTasksDocument
	}
	if docs.AddTask == "" {
		docs.AddTask = DefaultAddTaskDocument
	}
	if docs.CompleteTask == "" {
		docs.CompleteTask = DefaultCompleteTaskDocument
	}
	if docs.DeleteTask == "" {
		docs.DeleteTask = DefaultDeleteTaskDocument
	}
	return docs
}
