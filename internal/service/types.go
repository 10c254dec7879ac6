package service

// Task represents a single to-do item.
type Task struct {
	ID        string
	Title     string
	Completed bool
}
