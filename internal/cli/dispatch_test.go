package cli_test

import (
	"bytes"
	"context"
	"errors"
	"strings"
	"testing"

	"todo/internal/cli"
	"todo/internal/commands"
	"todo/internal/config"
	"todo/internal/exitcode"
	"todo/internal/gqlclient"
	"todo/internal/provider"
	"todo/internal/service"
	"todo/internal/testutil"
)

// testFactory creates a service factory that returns svc and counts calls.
func testFactory(svc service.Service, calls *int) cli.ServiceFactory {
	return func(ctx context.Context, cfg *config.Config) (service.Service, error) {
		*calls++
		return svc, nil
	}
}

// run dispatches args with an isolated config directory.
func run(t *testing.T, d *cli.Dispatcher, args ...string) (stdout, stderr string, code int) {
	t.Helper()
	t.Setenv("TODO_ENDPOINT", "")
	t.Setenv("XDG_CONFIG_HOME", t.TempDir())

	var outBuf, errBuf bytes.Buffer
	code = d.Run(context.Background(), args, &outBuf, &errBuf)
	return outBuf.String(), errBuf.String(), code
}

func TestDispatcher_UnknownCommand(t *testing.T) {
	var calls int
	dispatcher := cli.NewDispatcher(commands.DefaultRegistry, testFactory(testutil.NewFakeService(), &calls))

	_, stderr, code := run(t, dispatcher, "unknowncmd")

	if code != exitcode.UserError {
		t.Errorf("expected exit code %d, got %d", exitcode.UserError, code)
	}
	expected := "error: unknown command: unknowncmd\n"
	if stderr != expected {
		t.Errorf("expected %q, got %q", expected, stderr)
	}
}

func TestDispatcher_FlagBeforeCommand(t *testing.T) {
	var calls int
	dispatcher := cli.NewDispatcher(commands.DefaultRegistry, testFactory(testutil.NewFakeService(), &calls))

	_, stderr, code := run(t, dispatcher, "--quiet")

	if code != exitcode.UserError {
		t.Errorf("expected exit code %d, got %d", exitcode.UserError, code)
	}
	expected := "error: unknown command: --quiet\n"
	if stderr != expected {
		t.Errorf("expected %q, got %q", expected, stderr)
	}
}

func TestDispatcher_HelpDoesNotBuildClient(t *testing.T) {
	var calls int
	dispatcher := cli.NewDispatcher(commands.DefaultRegistry, testFactory(testutil.NewFakeService(), &calls))

	stdout, stderr, code := run(t, dispatcher, "help")

	if code != exitcode.Success {
		t.Errorf("expected exit code %d, got %d", exitcode.Success, code)
	}
	if stderr != "" {
		t.Errorf("expected no stderr, got %q", stderr)
	}
	if !strings.Contains(stdout, "Usage:") {
		t.Error("expected help output to contain 'Usage:'")
	}
	if calls != 0 {
		t.Errorf("expected no client for help, factory called %d times", calls)
	}
}

func TestDispatcher_VersionCommand(t *testing.T) {
	var calls int
	dispatcher := cli.NewDispatcher(commands.DefaultRegistry, testFactory(testutil.NewFakeService(), &calls))

	stdout, _, code := run(t, dispatcher, "version")

	if code != exitcode.Success {
		t.Errorf("expected exit code %d, got %d", exitcode.Success, code)
	}
	if stdout != "todo 0.1.0\n" {
		t.Errorf("expected 'todo 0.1.0\\n', got %q", stdout)
	}
}

func TestDispatcher_UnknownFlag(t *testing.T) {
	var calls int
	dispatcher := cli.NewDispatcher(commands.DefaultRegistry, testFactory(testutil.NewFakeService(), &calls))

	_, stderr, code := run(t, dispatcher, "help", "--unknown")

	if code != exitcode.UserError {
		t.Errorf("expected exit code %d, got %d", exitcode.UserError, code)
	}
	expected := "error: unknown flag: -unknown\n"
	if stderr != expected {
		t.Errorf("expected %q, got %q", expected, stderr)
	}
}

func TestDispatcher_FlagNeedsArgument(t *testing.T) {
	var calls int
	dispatcher := cli.NewDispatcher(commands.DefaultRegistry, testFactory(testutil.NewFakeService(), &calls))

	_, stderr, code := run(t, dispatcher, "list", "--endpoint")

	if code != exitcode.UserError {
		t.Errorf("expected exit code %d, got %d", exitcode.UserError, code)
	}
	expected := "error: flag needs an argument: -endpoint\n"
	if stderr != expected {
		t.Errorf("expected %q, got %q", expected, stderr)
	}
}

func TestDispatcher_NoArgsRunsApp(t *testing.T) {
	svc := testutil.NewFakeService()
	svc.AddTask("task1", "Buy milk")
	var calls int
	dispatcher := cli.NewDispatcher(commands.DefaultRegistry, testFactory(svc, &calls))

	stdout, stderr, code := run(t, dispatcher)

	if code != exitcode.Success {
		t.Errorf("expected exit code %d, got %d", exitcode.Success, code)
	}
	if stderr != "" {
		t.Errorf("expected no stderr, got %q", stderr)
	}
	expected := "------------\nToDo App\n------------\n   1  Buy milk\n"
	if stdout != expected {
		t.Errorf("expected %q, got %q", expected, stdout)
	}
	if calls != 1 {
		t.Errorf("expected exactly one client, factory called %d times", calls)
	}
}

func TestDispatcher_FactoryError(t *testing.T) {
	dispatcher := cli.NewDispatcher(commands.DefaultRegistry, func(ctx context.Context, cfg *config.Config) (service.Service, error) {
		return nil, errors.New("dial failed")
	})

	_, stderr, code := run(t, dispatcher, "list")

	if code != exitcode.BackendError {
		t.Errorf("expected exit code %d, got %d", exitcode.BackendError, code)
	}
	if stderr != "error: backend error: dial failed\n" {
		t.Errorf("unexpected stderr %q", stderr)
	}
}

func TestDispatcher_NoFactory(t *testing.T) {
	dispatcher := cli.NewDispatcher(commands.DefaultRegistry, nil)

	_, _, code := run(t, dispatcher, "list")

	if code != exitcode.ConfigError {
		t.Errorf("expected exit code %d, got %d", exitcode.ConfigError, code)
	}
}

func TestDispatcher_EndpointFlagOverridesConfig(t *testing.T) {
	var seen string
	dispatcher := cli.NewDispatcher(commands.DefaultRegistry, func(ctx context.Context, cfg *config.Config) (service.Service, error) {
		seen = cfg.Endpoint
		return testutil.NewFakeService(), nil
	})

	_, _, code := run(t, dispatcher, "list", "--endpoint", "https://api.example.com/graphql", "--quiet")

	if code != exitcode.Success {
		t.Errorf("expected exit code %d, got %d", exitcode.Success, code)
	}
	if seen != "https://api.example.com/graphql" {
		t.Errorf("expected endpoint override, got %q", seen)
	}
}

func TestDispatcher_DebugLogsToStderr(t *testing.T) {
	var calls int
	dispatcher := cli.NewDispatcher(commands.DefaultRegistry, testFactory(testutil.NewFakeService(), &calls))

	_, stderr, code := run(t, dispatcher, "list", "--debug", "--quiet")

	if code != exitcode.Success {
		t.Errorf("expected exit code %d, got %d", exitcode.Success, code)
	}
	if !strings.Contains(stderr, "dispatch") || !strings.Contains(stderr, "command=list") {
		t.Errorf("expected debug log on stderr, got %q", stderr)
	}
}

// The real provider with the shipped placeholder: building the client
// succeeds and the first request fails at the network layer.
func TestDispatcher_PlaceholderEndpoint(t *testing.T) {
	var calls int
	dispatcher := cli.NewDispatcher(commands.DefaultRegistry, func(ctx context.Context, cfg *config.Config) (service.Service, error) {
		calls++
		return provider.New(cfg, gqlclient.NewInMemoryCache()).Service(), nil
	})

	stdout, stderr, code := run(t, dispatcher, "list")

	if code != exitcode.BackendError {
		t.Errorf("expected exit code %d, got %d", exitcode.BackendError, code)
	}
	if stdout != "" {
		t.Errorf("expected no stdout, got %q", stdout)
	}
	if !strings.Contains(stderr, "network error") || !strings.Contains(stderr, "hint: endpoint is not configured") {
		t.Errorf("unexpected stderr %q", stderr)
	}
	if calls != 1 {
		t.Errorf("expected one provider, got %d", calls)
	}
}

func TestDispatcher_EndToEndAgainstServer(t *testing.T) {
	srv := testutil.NewGraphQLServer(t)
	var calls int
	dispatcher := cli.NewDispatcher(commands.DefaultRegistry, func(ctx context.Context, cfg *config.Config) (service.Service, error) {
		calls++
		return provider.New(cfg, gqlclient.NewInMemoryCache()).Service(), nil
	})

	stdout, stderr, code := run(t, dispatcher, "app", "--endpoint", srv.URL, "Buy", "milk")

	if code != exitcode.Success {
		t.Fatalf("expected exit code %d, got %d (stderr %q)", exitcode.Success, code, stderr)
	}
	expected := "------------\nToDo App\n------------\n   1  Buy milk\n"
	if stdout != expected {
		t.Errorf("expected %q, got %q", expected, stdout)
	}
	if calls != 1 {
		t.Errorf("expected one provider, got %d", calls)
	}
	if got := srv.Titles(); len(got) != 1 || got[0] != "Buy milk" {
		t.Errorf("expected server to hold 'Buy milk', got %v", got)
	}
}
