// Package exitcode defines the process exit codes of the todo CLI.
package exitcode

const (
	// Success indicates successful completion.
	Success = 0

	// UserError indicates bad arguments, a blank title or an unusable config.
	UserError = 1

	// AuthError indicates a missing or rejected Google login.
	AuthError = 2

	// BackendError indicates a task service, store or network failure.
	BackendError = 3
)
