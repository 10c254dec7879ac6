package commands

import (
	"context"
	"errors"
	"flag"
	"fmt"
	"io"
	"strings"

	"todo/internal/config"
	"todo/internal/exitcode"
	"todo/internal/service"
	"todo/internal/views"
)

func init() {
	Register(&AppCmd{})
}

// AppCmd renders the whole app: the header, then the list.
// With a title it first submits it through the input view.
// `todo` with no args dispatches here.
type AppCmd struct{}

func (c *AppCmd) Name() string      { return "app" }
func (c *AppCmd) Aliases() []string { return nil }
func (c *AppCmd) Synopsis() string  { return "Show the app (optionally adding a task first)" }
func (c *AppCmd) Usage() string     { return "todo app [title...]" }
func (c *AppCmd) NeedsClient() bool { return true }

func (c *AppCmd) RegisterFlags(fs *flag.FlagSet) {}

func (c *AppCmd) Run(ctx context.Context, cfg *config.Config, svc service.Service, args []string, out, errOut io.Writer) int {
	app := views.Mount(svc)

	if len(args) > 0 {
		if _, err := app.Input.Submit(ctx, strings.Join(args, " ")); err != nil {
			if errors.Is(err, views.ErrTitleRequired) {
				fmt.Fprintln(errOut, "error: title required")
				return exitcode.UserError
			}
			return reportBackendError(cfg, errOut, err)
		}
	}

	n, err := app.Render(ctx, out)
	if err != nil {
		return reportBackendError(cfg, errOut, err)
	}
	if n == 0 && !cfg.Quiet {
		fmt.Fprintln(out, "no tasks found")
	}
	return exitcode.Success
}
