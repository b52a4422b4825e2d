// Package app is the application root: it owns the fetched task collection
// and the form fields, and performs the read-all and create-one calls.
// Front ends (the TUI and the CLI commands) drive an App and render State.
package app

import (
	"context"
	"errors"
	"fmt"
	"strings"
	"sync"

	"todo/internal/service"
)

// TitleRequiredMessage is the alert shown for a blank title.
const TitleRequiredMessage = "Title is required!"

// ErrTitleRequired is returned by HandleSubmit when the title is blank.
var ErrTitleRequired = errors.New("title is required")

// Logger receives diagnostics. *logging.Logger satisfies it.
type Logger interface {
	Printf(format string, args ...any)
	Debugf(format string, args ...any)
}

// Alerter surfaces validation failures to the user.
type Alerter interface {
	Alert(msg string)
}

// AlertFunc adapts a function to Alerter.
type AlertFunc func(msg string)

// Alert calls f(msg).
func (f AlertFunc) Alert(msg string) { f(msg) }

// State is a snapshot of everything the view renders.
type State struct {
	Tasks       []service.Task
	Title       string
	Description string
}

// App owns State and mediates every change to it.
// It is safe for concurrent use; network calls run outside the lock.
type App struct {
	svc   service.Service
	log   Logger
	alert Alerter

	mu      sync.Mutex
	state   State
	issued  uint64 // generation of the most recently started fetch
	applied uint64 // generation of the fetch whose result is in state
}

// Option configures an App.
type Option func(*App)

// WithLogger sets the diagnostic logger.
func WithLogger(l Logger) Option {
	return func(a *App) { a.log = l }
}

// WithAlerter sets where validation alerts go.
func WithAlerter(al Alerter) Option {
	return func(a *App) { a.alert = al }
}

// New creates an App backed by svc with an empty collection and form.
func New(svc service.Service, opts ...Option) *App {
	a := &App{
		svc:   svc,
		log:   nopLogger{},
		alert: AlertFunc(func(string) {}),
	}
	for _, opt := range opts {
		opt(a)
	}
	return a
}

// State returns a copy of the current state.
func (a *App) State() State {
	a.mu.Lock()
	defer a.mu.Unlock()
	s := a.state
	s.Tasks = append([]service.Task(nil), a.state.Tasks...)
	return s
}

// SetTitle binds the title field.
func (a *App) SetTitle(title string) {
	a.mu.Lock()
	a.state.Title = title
	a.mu.Unlock()
}

// SetDescription binds the description field.
func (a *App) SetDescription(description string) {
	a.mu.Lock()
	a.state.Description = description
	a.mu.Unlock()
}

// Mount performs the initial fetch.
func (a *App) Mount(ctx context.Context) error {
	return a.FetchTasks(ctx)
}

// FetchTasks reads every task and replaces the collection with the result.
// On failure the collection is left as it was and the error is logged and
// returned. A response is dropped if a fetch started later has already been
// applied.
func (a *App) FetchTasks(ctx context.Context) error {
	a.mu.Lock()
	a.issued++
	gen := a.issued
	a.mu.Unlock()

	tasks, err := a.svc.ListTasks(ctx)
	if err != nil {
		var se *service.StatusError
		if errors.As(err, &se) {
			a.log.Printf("error fetching tasks: %v", err)
		} else {
			a.log.Printf("could not connect to server. Ensure it is running. %v", err)
		}
		return fmt.Errorf("fetch tasks: %w", err)
	}
	if tasks == nil {
		tasks = []service.Task{}
	}

	a.mu.Lock()
	defer a.mu.Unlock()
	if gen <= a.applied {
		a.log.Debugf("discarding stale fetch %d (applied %d)", gen, a.applied)
		return nil
	}
	a.applied = gen
	a.state.Tasks = tasks
	return nil
}

// HandleSubmit validates the form and creates a task from it.
// A blank title alerts and returns ErrTitleRequired without any request.
// On success both fields are cleared and the collection is refreshed; a
// failed refresh is logged but does not fail the submission. On failure the
// fields keep their values.
func (a *App) HandleSubmit(ctx context.Context) error {
	a.mu.Lock()
	task := service.Task{Title: a.state.Title, Description: a.state.Description}
	a.mu.Unlock()

	if strings.TrimSpace(task.Title) == "" {
		a.alert.Alert(TitleRequiredMessage)
		return ErrTitleRequired
	}

	if err := a.svc.CreateTask(ctx, task); err != nil {
		var se *service.StatusError
		if errors.As(err, &se) {
			a.log.Printf("error adding task: %v", err)
		} else {
			a.log.Printf("error submitting task: %v", err)
		}
		return fmt.Errorf("create task: %w", err)
	}

	a.mu.Lock()
	a.state.Title = ""
	a.state.Description = ""
	a.mu.Unlock()

	_ = a.FetchTasks(ctx)
	return nil
}

type nopLogger struct{}

func (nopLogger) Printf(string, ...any) {}
func (nopLogger) Debugf(string, ...any) {}
