// Package exitcode defines exit codes for the CLI.
package exitcode

const (
	// Success indicates successful completion.
	Success = 0

	// UserError indicates a user error (bad args, out-of-range reference).
	UserError = 1

	// ConfigError indicates unreadable configuration or an invalid endpoint.
	ConfigError = 2

	// BackendError indicates a GraphQL or network error.
	BackendError = 3
)
