package cli

import (
	"context"
	"fmt"
	"io"
	"log/slog"
	"os"
	"time"

	"day-planner/internal/api"
	"day-planner/internal/config"
	"day-planner/internal/logging"
)

// timeNow is a variable that can be replaced in tests
var timeNow = time.Now

// App holds what the session commands share: the API, configuration and
// the writer that command output goes to.
type App struct {
	api      api.API
	config   *config.Config
	out      io.Writer
	logger   *slog.Logger
	errors   *ErrorHandler
	registry *CommandRegistry
}

// NewApp creates a new CLI application instance with default configuration
func NewApp(apiInstance api.API) *App {
	return NewAppWithConfig(apiInstance, config.NewConfig())
}

// NewAppWithConfig creates a new CLI application instance
func NewAppWithConfig(apiInstance api.API, cfg *config.Config) *App {
	if cfg == nil {
		cfg = config.NewConfig()
	}
	app := &App{
		api:    apiInstance,
		config: cfg,
		out:    os.Stdout,
		logger: logging.Discard(),
		errors: NewErrorHandler(),
	}
	app.registry = NewCommandRegistry(app)
	return app
}

// SetOutput redirects command output
func (a *App) SetOutput(w io.Writer) {
	if w != nil {
		a.out = w
	}
}

// SetLogger sets the structured logger
func (a *App) SetLogger(logger *slog.Logger) {
	if logger != nil {
		a.logger = logger
	}
}

// Run executes one command line that has already been split into words
func (a *App) Run(ctx context.Context, args []string) error {
	if len(args) == 0 {
		return fmt.Errorf("%s", a.registry.GetUsage())
	}

	ctx, cancel := context.WithTimeout(ctx, a.config.Application.Timeout)
	defer cancel()

	return a.registry.Execute(ctx, args[0], args[1:])
}

func (a *App) printf(format string, args ...interface{}) {
	fmt.Fprintf(a.out, format, args...)
}
