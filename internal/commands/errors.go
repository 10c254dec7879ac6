package commands

import (
	"errors"
	"fmt"
	"io"

	"todo/internal/config"
	"todo/internal/exitcode"
	"todo/internal/views"
)

// reportBackendError prints err and returns the matching exit code.
// With the placeholder endpoint still configured it also says how to fix it.
func reportBackendError(cfg *config.Config, errOut io.Writer, err error) int {
	if errors.Is(err, views.ErrNotMounted) {
		fmt.Fprintf(errOut, "error: %v\n", err)
		return exitcode.ConfigError
	}

	fmt.Fprintf(errOut, "error: backend error: %v\n", err)
	if cfg.IsPlaceholder() {
		fmt.Fprintf(errOut, "hint: endpoint is not configured (set %s_ENDPOINT or endpoint in %s)\n", config.EnvPrefix, cfg.Path())
	}
	return exitcode.BackendError
}
