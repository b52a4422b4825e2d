// Package api defines the JSON wire format shared by the task service and
// its HTTP client.
package api

import "todo/internal/service"

// ContentType is the media type of every request and response body.
const ContentType = "application/json"

// Task is the JSON representation of a task.
type Task struct {
	ID          string `json:"id,omitempty"`
	Title       string `json:"title"`
	Description string `json:"description"`
}

// CreateRequest is the body of POST /.
type CreateRequest struct {
	Title       string `json:"title"`
	Description string `json:"description"`
}

// ErrorResponse is the body of a 4xx/5xx response.
type ErrorResponse struct {
	Error string `json:"error"`
}

// FromService converts a service task to its wire form.
func FromService(t service.Task) Task {
	return Task{ID: t.ID, Title: t.Title, Description: t.Description}
}

// ToService converts a wire task to a service task.
func (t Task) ToService() service.Task {
	return service.Task{ID: t.ID, Title: t.Title, Description: t.Description}
}

// ToServiceList converts a slice of wire tasks. It never returns nil.
func ToServiceList(in []Task) []service.Task {
	out := make([]service.Task, 0, len(in))
	for _, t := range in {
		out = append(out, t.ToService())
	}
	return out
}

// FromServiceList converts a slice of service tasks. It never returns nil,
// so an empty collection encodes as [] rather than null.
func FromServiceList(in []service.Task) []Task {
	out := make([]Task, 0, len(in))
	for _, t := range in {
		out = append(out, FromService(t))
	}
	return out
}
