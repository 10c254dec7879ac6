package commands

import (
	"context"
	"flag"
	"fmt"
	"io"

	"gopkg.in/yaml.v3"

	"todo/internal/config"
	"todo/internal/exitcode"
	"todo/internal/service"
)

func init() {
	Register(&ConfigCmd{})
}

// ConfigCmd prints the effective configuration, or validates the endpoint
// with --check.
type ConfigCmd struct {
	check bool
}

// SetCheck sets the check flag (for testing).
func (c *ConfigCmd) SetCheck(check bool) {
	c.check = check
}

func (c *ConfigCmd) Name() string      { return "config" }
func (c *ConfigCmd) Aliases() []string { return nil }
func (c *ConfigCmd) Synopsis() string  { return "Print or check the configuration" }
func (c *ConfigCmd) Usage() string     { return "todo config [--check]" }
func (c *ConfigCmd) NeedsClient() bool { return false }

func (c *ConfigCmd) RegisterFlags(fs *flag.FlagSet) {
	fs.BoolVar(&c.check, "check", false, "")
}

func (c *ConfigCmd) Run(ctx context.Context, cfg *config.Config, svc service.Service, args []string, out, errOut io.Writer) int {
	if c.check {
		if err := config.ValidateEndpoint(cfg.Endpoint); err != nil {
			fmt.Fprintf(errOut, "error: %v\n", err)
			return exitcode.ConfigError
		}
		if !cfg.Quiet {
			fmt.Fprintln(out, "ok")
		}
		return exitcode.Success
	}

	data, err := yaml.Marshal(cfg)
	if err != nil {
		fmt.Fprintf(errOut, "error: %v\n", err)
		return exitcode.ConfigError
	}
	fmt.Fprintf(out, "# %s\n", cfg.Path())
	fmt.Fprint(out, string(data))
	return exitcode.Success
}
