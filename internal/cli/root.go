// Package cli implements the nextrip command-line interface.
package cli

import (
	"context"
	"errors"
	"fmt"
	"io"
	"net/http"
	"os"
	"time"

	"github.com/spf13/cobra"
	"go.uber.org/zap"

	"github.com/mesh-intelligence/nextrip/internal/config"
	"github.com/mesh-intelligence/nextrip/internal/logging"
	"github.com/mesh-intelligence/nextrip/internal/paths"
	"github.com/mesh-intelligence/nextrip/internal/provider"
	"github.com/mesh-intelligence/nextrip/internal/resolver"
	"github.com/mesh-intelligence/nextrip/pkg/nextrip"
)

// Exit codes.
const (
	exitSuccess   = 0
	exitUserError = 1
	exitSysError  = 2
)

// rootFlags holds global flag values accessible to all subcommands.
type rootFlags struct {
	configDir string
	baseURL   string
	timeout   time.Duration
	verbose   bool
	details   bool
}

// app carries everything a command needs. Commands call load before
// touching log or resolver.
type app struct {
	flags  rootFlags
	stdout io.Writer
	stderr io.Writer

	now        func() time.Time
	httpClient *http.Client

	log      *zap.Logger
	resolver *resolver.Resolver
}

// Option customizes the CLI, mostly for tests.
type Option func(*app)

// WithClock replaces the clock the departure countdown is computed from.
func WithClock(now func() time.Time) Option {
	return func(a *app) { a.now = now }
}

// WithHTTPClient replaces the HTTP client used for provider requests.
func WithHTTPClient(c *http.Client) Option {
	return func(a *app) { a.httpClient = c }
}

// setupError marks failures to load configuration or logging, which exit
// with exitSysError rather than exitUserError.
type setupError struct{ err error }

func (e *setupError) Error() string { return e.err.Error() }
func (e *setupError) Unwrap() error { return e.err }

func newApp(stdout, stderr io.Writer, opts ...Option) *app {
	a := &app{stdout: stdout, stderr: stderr, now: time.Now}
	for _, opt := range opts {
		opt(a)
	}
	return a
}

// rootCmd creates the top-level "nextrip" command with global flags and
// all subcommands registered.
func (a *app) rootCmd() *cobra.Command {
	root := &cobra.Command{
		Use:   "nextrip <route> <stop> <direction>",
		Short: "Minutes until the next departure at a transit stop",
		Long: `nextrip looks up a route, direction and stop by partial, case-insensitive
name and prints the minutes until the next scheduled departure.

Directions may be given as north, south, east or west.`,
		Example: `  nextrip "METRO Blue Line" "Target Field Station Platform 1" north
  nextrip "blue line" "target field" North`,
		Args:    cobra.ExactArgs(3),
		Version: nextrip.Version,
		RunE:    a.runNext,
		// Errors are reported by Run, not by cobra.
		SilenceUsage:  true,
		SilenceErrors: true,
	}
	root.SetOut(a.stdout)
	root.SetErr(a.stderr)
	root.SetVersionTemplate("nextrip v{{.Version}}\n")

	pf := root.PersistentFlags()
	pf.StringVar(&a.flags.configDir, "config-dir", "", "configuration directory (default: $XDG_CONFIG_HOME/nextrip)")
	pf.StringVar(&a.flags.baseURL, "base-url", "", "provider base URL (default: "+provider.DefaultBaseURL+")")
	pf.DurationVar(&a.flags.timeout, "timeout", 0, "per-request timeout, 0 for none")
	pf.BoolVarP(&a.flags.verbose, "verbose", "v", false, "log provider requests to stderr")

	root.Flags().BoolVar(&a.flags.details, "details", false, "also print the provider's departure text and description")

	root.AddCommand(a.routesCmd())
	root.AddCommand(a.directionsCmd())
	root.AddCommand(a.stopsCmd())
	root.AddCommand(a.initCmd())
	root.AddCommand(a.versionCmd())

	return root
}

// load resolves configuration and builds the logger and resolver. It is
// called lazily so that init, version and --version never read config.yaml.
func (a *app) load(cmd *cobra.Command) error {
	if a.resolver != nil {
		return nil
	}

	// config.yaml is optional. Without an explicit directory and without a
	// usable default (HOME unset under cron or a bare container) the run
	// proceeds on defaults, env and flags.
	configDir, dirErr := paths.ResolveConfigDir(a.flags.configDir)
	if dirErr != nil {
		if a.flags.configDir != "" || os.Getenv(paths.EnvConfigDir) != "" {
			return &setupError{fmt.Errorf("resolve config dir: %w", dirErr)}
		}
		configDir = ""
	}

	cfg, err := config.Load(configDir, cmd.Flags())
	if err != nil {
		return &setupError{fmt.Errorf("load config: %w", err)}
	}
	if a.flags.verbose {
		cfg.LogLevel = "debug"
	}

	log, err := logging.New(logging.Options{
		Level:   cfg.LogLevel,
		Console: a.stderr,
		File:    cfg.LogFile,
	})
	if err != nil {
		return &setupError{fmt.Errorf("init logging: %w", err)}
	}
	if dirErr != nil {
		log.Debug("no config directory, skipping config.yaml", zap.Error(dirErr))
	}
	log.Debug("config loaded",
		zap.String("config_dir", configDir),
		zap.String("base_url", cfg.BaseURL),
		zap.Duration("timeout", cfg.Timeout),
	)

	client := provider.NewClient(provider.Options{
		BaseURL:    cfg.BaseURL,
		Timeout:    cfg.Timeout,
		HTTPClient: a.httpClient,
		Logger:     log.Named("provider"),
	})

	a.log = log
	a.resolver = resolver.New(client,
		resolver.WithLogger(log.Named("resolver")),
		resolver.WithClock(a.now),
	)
	return nil
}

// Run executes the CLI with args and returns the process exit code. All
// error reporting happens here.
func Run(ctx context.Context, args []string, stdout, stderr io.Writer, opts ...Option) int {
	a := newApp(stdout, stderr, opts...)
	root := a.rootCmd()
	root.SetArgs(args)

	err := root.ExecuteContext(ctx)
	if a.log != nil {
		_ = a.log.Sync()
	}
	return a.report(root, err)
}

// Execute runs the CLI against the process arguments and exits.
func Execute() {
	os.Exit(Run(context.Background(), os.Args[1:], os.Stdout, os.Stderr))
}

// report prints err and selects the exit code. Resolution failures go to
// stdout; everything else goes to stderr.
func (a *app) report(root *cobra.Command, err error) int {
	if err == nil {
		return exitSuccess
	}

	if msg, ok := stageMessage(err); ok {
		fmt.Fprintln(a.stdout, msg)
		return exitUserError
	}

	fmt.Fprintln(a.stderr, "Error:", err)

	var se *setupError
	if errors.As(err, &se) {
		return exitSysError
	}
	fmt.Fprintf(a.stderr, "Run '%s --help' for usage.\n", root.CommandPath())
	return exitUserError
}
