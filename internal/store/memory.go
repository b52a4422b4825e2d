package store

import (
	"context"
	"sync"

	"todo/internal/service"
)

// Memory keeps tasks in a slice for the lifetime of the process.
type Memory struct {
	mu    sync.RWMutex
	tasks []service.Task
}

// NewMemory returns an empty in-memory store.
func NewMemory() *Memory {
	return &Memory{tasks: make([]service.Task, 0)}
}

func (m *Memory) All(ctx context.Context) ([]service.Task, error) {
	m.mu.RLock()
	defer m.mu.RUnlock()
	out := make([]service.Task, len(m.tasks))
	copy(out, m.tasks)
	return out, nil
}

func (m *Memory) Create(ctx context.Context, task service.Task) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.tasks = append(m.tasks, task)
	return nil
}

func (m *Memory) Close() error { return nil }
