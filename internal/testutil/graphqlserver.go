package testutil

import (
	"encoding/json"
	"fmt"
	"net/http"
	"net/http/httptest"
	"strings"
	"sync"
	"testing"
)

// GraphQLServer is an httptest server speaking the default task documents.
// Operations are recognised by the root field they call.
type GraphQLServer struct {
	*httptest.Server

	mu       sync.Mutex
	tasks    []taskJSON
	nextID   int
	requests int
}

type taskJSON struct {
	ID        string `json:"id"`
	Title     string `json:"title"`
	Completed bool   `json:"completed"`
}

type gqlRequest struct {
	Query     string         `json:"query"`
	Variables map[string]any `json:"variables"`
}

// NewGraphQLServer starts a server that is closed when the test ends.
func NewGraphQLServer(t *testing.T) *GraphQLServer {
	t.Helper()
	s := &GraphQLServer{}
	s.Server = httptest.NewServer(http.HandlerFunc(s.handle))
	t.Cleanup(s.Close)
	return s
}

// AddTask seeds a task and returns its ID.
func (s *GraphQLServer) AddTask(title string, completed bool) string {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.insert(title, completed).ID
}

// Requests returns how many requests reached the server.
func (s *GraphQLServer) Requests() int {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.requests
}

// Titles returns the stored task titles in order.
func (s *GraphQLServer) Titles() []string {
	s.mu.Lock()
	defer s.mu.Unlock()
	titles := make([]string, 0, len(s.tasks))
	for _, t := range s.tasks {
		titles = append(titles, t.Title)
	}
	return titles
}

func (s *GraphQLServer) insert(title string, completed bool) taskJSON {
	s.nextID++
	task := taskJSON{ID: fmt.Sprintf("t%d", s.nextID), Title: title, Completed: completed}
	s.tasks = append(s.tasks, task)
	return task
}

func (s *GraphQLServer) handle(w http.ResponseWriter, r *http.Request) {
	var req gqlRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		http.Error(w, err.Error(), http.StatusBadRequest)
		return
	}

	s.mu.Lock()
	defer s.mu.Unlock()
	s.requests++

	var data any
	switch {
	case strings.Contains(req.Query, "addTask"):
		title, _ := req.Variables["title"].(string)
		data = map[string]any{"task": s.insert(title, false)}
	case strings.Contains(req.Query, "completeTask"):
		id, _ := req.Variables["id"].(string)
		data = map[string]any{"task": s.update(id, func(t *taskJSON) { t.Completed = true })}
	case strings.Contains(req.Query, "deleteTask"):
		id, _ := req.Variables["id"].(string)
		data = map[string]any{"task": s.remove(id)}
	default:
		tasks := make([]taskJSON, len(s.tasks))
		copy(tasks, s.tasks)
		data = map[string]any{"tasks": tasks}
	}

	w.Header().Set("Content-Type", "application/json")
	_ = json.NewEncoder(w).Encode(map[string]any{"data": data})
}

func (s *GraphQLServer) update(id string, fn func(*taskJSON)) *taskJSON {
	for i := range s.tasks {
		if s.tasks[i].ID == id {
			fn(&s.tasks[i])
			t := s.tasks[i]
			return &t
		}
	}
	return nil
}

func (s *GraphQLServer) remove(id string) *taskJSON {
	for i, t := range s.tasks {
		if t.ID == id {
			s.tasks = append(s.tasks[:i], s.tasks[i+1:]...)
			return &t
		}
	}
	return nil
}
