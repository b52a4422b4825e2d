// Package service defines the backend-agnostic interface for task operations.
package service

import "context"

// Service defines the interface for task backend operations.
// The application root and the commands only talk to a backend
// through this interface; they never import a backend package.
type Service interface {
	// ListTasks returns every task in service order.
	ListTasks(ctx context.Context) ([]Task, error)

	// CreateTask creates a task from its title and description.
	// Any identifier on the argument is ignored; the service assigns one.
	CreateTask(ctx context.Context, task Task) error
}
