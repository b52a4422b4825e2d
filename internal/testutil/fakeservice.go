// Package testutil provides testing utilities.
package testutil

import (
	"context"
	"fmt"
	"sync"

	"todo/internal/service"
)

// FakeService is an in-memory implementation of service.Service for testing.
type FakeService struct {
	mu      sync.Mutex
	tasks   []service.Task
	created []service.Task
	nextID  int

	listCalls   int
	createCalls int

	// Error injection for testing
	ListTasksErr  error
	CreateTaskErr error

	// ListHook, when set, runs before ListTasks returns and may block to
	// stage out-of-order responses. n is the 1-based call number.
	ListHook func(ctx context.Context, n int)
}

// NewFakeService creates a new FakeService with no tasks.
func NewFakeService() *FakeService {
	return &FakeService{}
}

// AddTask adds a task as if another client had created it.
func (f *FakeService) AddTask(title, description string) {
	f.mu.Lock()
	defer f.mu.Unlock()
	f.nextID++
	f.tasks = append(f.tasks, service.Task{
		ID:          fmt.Sprintf("t%d", f.nextID),
		Title:       title,
		Description: description,
	})
}

// ListCalls returns how many times ListTasks was called.
func (f *FakeService) ListCalls() int {
	f.mu.Lock()
	defer f.mu.Unlock()
	return f.listCalls
}

// CreateCalls returns how many times CreateTask was called.
func (f *FakeService) CreateCalls() int {
	f.mu.Lock()
	defer f.mu.Unlock()
	return f.createCalls
}

// Created returns the arguments of every successful CreateTask call.
func (f *FakeService) Created() []service.Task {
	f.mu.Lock()
	defer f.mu.Unlock()
	return append([]service.Task(nil), f.created...)
}

// ListTasks implements service.Service.
func (f *FakeService) ListTasks(ctx context.Context) ([]service.Task, error) {
	f.mu.Lock()
	f.listCalls++
	n := f.listCalls
	hook := f.ListHook
	err := f.ListTasksErr
	result := make([]service.Task, len(f.tasks))
	copy(result, f.tasks)
	f.mu.Unlock()

	if hook != nil {
		hook(ctx, n)
	}
	if err != nil {
		return nil, err
	}
	return result, nil
}

// CreateTask implements service.Service.
func (f *FakeService) CreateTask(ctx context.Context, task service.Task) error {
	f.mu.Lock()
	defer f.mu.Unlock()
	f.createCalls++
	if f.CreateTaskErr != nil {
		return f.CreateTaskErr
	}

	f.nextID++
	task.ID = fmt.Sprintf("t%d", f.nextID)
	f.tasks = append(f.tasks, task)
	f.created = append(f.created, task)
	return nil
}

// SetListTasksErr changes the injected ListTasks error while tests are
// running concurrently with the service.
func (f *FakeService) SetListTasksErr(err error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	f.ListTasksErr = err
}
