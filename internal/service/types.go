// Package service defines the backend-agnostic interface for task operations.
package service

import "fmt"

// Task represents a single task item.
type Task struct {
	ID          string // assigned by the service, may be empty
	Title       string
	Description string
}

// Key returns a value identifying the task within a rendered list.
// The service-assigned ID is preferred; tasks from services that don't
// assign IDs fall back to title+description, which collides for duplicates.
func (t Task) Key() string {
	if t.ID != "" {
		return t.ID
	}
	return t.Title + t.Description
}

// StatusError reports a response whose status code is not the one the
// operation expects.
type StatusError struct {
	Op   string // "list" or "create"
	Code int
}

func (e *StatusError) Error() string {
	return fmt.Sprintf("%s: unexpected status %d", e.Op, e.Code)
}
