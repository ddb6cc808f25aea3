package cli

import (
	"time"

	"github.com/spf13/cobra"
	"github.com/spf13/pflag"

	"day-planner/internal/api"
	"day-planner/internal/config"
	"day-planner/internal/logging"
	"day-planner/internal/validation"
)

// RootCommand represents the base command when called without any subcommands
type RootCommand struct {
	cmd *cobra.Command
	app *App
}

// NewRootCommand creates the root cobra command with global flags
func NewRootCommand() *RootCommand {
	root := &RootCommand{}

	root.cmd = &cobra.Command{
		Use:   "dp",
		Short: "A command-line day planner",
		Long: `Day Planner (dp) keeps a list of tasks for each calendar day.

Running dp without a subcommand starts a session that reads commands from
standard input, one per line. Tasks live for the length of the session.

SESSION COMMANDS:
  add <date> <time> <name> [description...]   Add a task to a day
  list [date]                                  Show a day's tasks (default today)
  days                                         List every day that has tasks
  key <date>                                   Show the day a date falls on
  help                                         Show the command list
  exit | quit                                  End the session

DATES:
  2024-03-01, 2024-03-01T09:00:00+01:00, today, tomorrow, yesterday

EXAMPLES:
  dp                                           # Start an interactive session
  dp < plan.txt                                # Run the commands in plan.txt
  dp key 2024-03-01T23:30:00-05:00             # Print the day a timestamp falls on
  dp --timezone Europe/Berlin --store sqlite   # Group days in Berlin, keep tasks in SQLite

CONFIGURATION:
  Configuration follows this priority order: command-line flags > environment variables > YAML file > defaults

  DP_CONFIG                                    YAML configuration file
  DP_TIMEZONE                                  Reference timezone (default: Local)
  DP_STORE_BACKEND                             memory or sqlite (default: memory)
  DP_STORE_QUERY_TIMEOUT                       Store query timeout (default: 10s)
  DP_STORE_WRITE_TIMEOUT                       Store write timeout (default: 5s)
  DP_VALIDATION_TASK_NAME_MIN                  Min task name length (default: 1)
  DP_VALIDATION_TASK_NAME_MAX                  Max task name length (default: 255)
  DP_VALIDATION_DESCRIPTION_MAX                Max description length (default: 1024)
  DP_DISPLAY_TIME_FORMAT                       Time format (default: 15:04)
  DP_DISPLAY_PROMPT                            Session prompt (default: "dp> ")
  DP_APP_TIMEOUT                               Per-command timeout (default: 30s)
  DP_APP_VERBOSE                               Enable verbose logging (default: false)`,
		SilenceUsage:  true,
		SilenceErrors: true,
		Args:          cobra.NoArgs,
		PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
			return root.setup(cmd)
		},
		PersistentPostRunE: func(cmd *cobra.Command, args []string) error {
			return root.teardown()
		},
		RunE: func(cmd *cobra.Command, args []string) error {
			return root.runSession(cmd)
		},
	}

	root.addGlobalFlags()
	root.addSubcommands()

	return root
}

// Command returns the underlying cobra command
func (r *RootCommand) Command() *cobra.Command {
	return r.cmd
}

// Execute runs the root command and closes the store, whether or not the
// command failed.
func (r *RootCommand) Execute() error {
	err := r.cmd.Execute()
	if closeErr := r.teardown(); err == nil {
		err = closeErr
	}
	return err
}

// addGlobalFlags adds global configuration flags
func (r *RootCommand) addGlobalFlags() {
	flags := r.cmd.PersistentFlags()

	flags.String("config", "", "YAML configuration file (overrides DP_CONFIG)")

	// Calendar configuration
	flags.String("timezone", "", "Reference timezone for grouping days (overrides DP_TIMEZONE)")

	// Store configuration
	flags.String("store", "", "Task store backend, memory or sqlite (overrides DP_STORE_BACKEND)")
	flags.Duration("store-query-timeout", 0, "Store query timeout (overrides DP_STORE_QUERY_TIMEOUT)")
	flags.Duration("store-write-timeout", 0, "Store write timeout (overrides DP_STORE_WRITE_TIMEOUT)")

	// Validation configuration
	flags.Int("task-name-min-length", 0, "Minimum task name length (overrides DP_VALIDATION_TASK_NAME_MIN)")
	flags.Int("task-name-max-length", 0, "Maximum task name length (overrides DP_VALIDATION_TASK_NAME_MAX)")
	flags.Int("description-max-length", 0, "Maximum description length (overrides DP_VALIDATION_DESCRIPTION_MAX)")

	// Display configuration
	flags.String("time-format", "", "Time display format (overrides DP_DISPLAY_TIME_FORMAT)")
	flags.String("prompt", "", "Session prompt (overrides DP_DISPLAY_PROMPT)")

	// Application configuration
	flags.Duration("app-timeout", 0, "Per-command timeout (overrides DP_APP_TIMEOUT)")
	flags.Bool("verbose", false, "Enable verbose logging (overrides DP_APP_VERBOSE)")
}

// addSubcommands adds all CLI subcommands to the root command
func (r *RootCommand) addSubcommands() {
	sessionCmd := &cobra.Command{
		Use:   "session",
		Short: "Read planner commands from standard input",
		Long: `Start a session that reads one command per line from standard input.

Blank lines and lines starting with # are ignored. Words are split the way a
shell would, so quote names and descriptions that contain spaces:

  add 2024-03-01 09:00 "Team standup" daily sync`,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			return r.runSession(cmd)
		},
	}

	keyCmd := &cobra.Command{
		Use:   "key <date>",
		Short: "Print the day a date falls on",
		Long: `Print the YYYY-MM-DD key a date or timestamp is filed under in the
reference timezone.

Examples:
  dp key 2024-03-01T23:30:00-05:00
  dp --timezone UTC key 2024-03-01T23:30:00-05:00`,
		Args: cobra.MinimumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			return r.runCommand(cmd, "key", args)
		},
	}

	r.cmd.AddCommand(sessionCmd, keyCmd)
}

// setup loads configuration and builds the App the subcommands share
func (r *RootCommand) setup(cmd *cobra.Command) error {
	flags := cmd.Flags()

	path, err := flags.GetString("config")
	if err != nil {
		return err
	}
	overrides, err := overridesFromFlags(flags)
	if err != nil {
		return err
	}

	cfg, err := config.NewLoader().WithFile(path).LoadWithOverrides(overrides)
	if err != nil {
		return err
	}

	normalizer, err := cfg.NewNormalizer()
	if err != nil {
		return err
	}
	taskStore, err := config.CreateStore(cfg, normalizer)
	if err != nil {
		return err
	}

	logger := logging.NewLoggerTo(cmd.ErrOrStderr(), cfg.Application.Verbose)
	apiInstance := api.New(taskStore, normalizer,
		api.WithLogger(logger),
		api.WithTaskValidator(validation.NewTaskValidatorWithConfig(cfg)),
	)

	r.app = NewAppWithConfig(apiInstance, cfg)
	r.app.SetOutput(cmd.OutOrStdout())
	r.app.SetLogger(logger)
	logger.Debug("planner ready", "timezone", normalizer.Location().String(), "store", cfg.Store.Backend)
	return nil
}

// teardown closes the API once; later calls are no-ops.
func (r *RootCommand) teardown() error {
	if r.app == nil {
		return nil
	}
	err := r.app.api.Close()
	r.app = nil
	return err
}

func (r *RootCommand) runSession(cmd *cobra.Command) error {
	return NewSession(r.app, cmd.InOrStdin()).Run(cmd.Context())
}

func (r *RootCommand) runCommand(cmd *cobra.Command, name string, args []string) error {
	if err := r.app.Run(cmd.Context(), append([]string{name}, args...)); err != nil {
		return r.app.errors.HandleSimple(err)
	}
	return nil
}

// overridesFromFlags collects the flags the user actually set.
// Unset flags leave the loaded configuration untouched.
func overridesFromFlags(flags *pflag.FlagSet) (*config.ConfigOverrides, error) {
	overrides := &config.ConfigOverrides{}
	var err error

	stringFlag := func(name string, dst **string) {
		if err != nil || !flags.Changed(name) {
			return
		}
		var v string
		if v, err = flags.GetString(name); err == nil {
			*dst = &v
		}
	}
	intFlag := func(name string, dst **int) {
		if err != nil || !flags.Changed(name) {
			return
		}
		var v int
		if v, err = flags.GetInt(name); err == nil {
			*dst = &v
		}
	}

	stringFlag("timezone", &overrides.Timezone)
	stringFlag("store", &overrides.StoreBackend)
	stringFlag("time-format", &overrides.TimeFormat)
	stringFlag("prompt", &overrides.Prompt)
	intFlag("task-name-min-length", &overrides.TaskNameMinLength)
	intFlag("task-name-max-length", &overrides.TaskNameMaxLength)
	intFlag("description-max-length", &overrides.DescriptionMaxLength)

	for name, dst := range map[string]**time.Duration{
		"store-query-timeout": &overrides.StoreQueryTimeout,
		"store-write-timeout": &overrides.StoreWriteTimeout,
		"app-timeout":         &overrides.Timeout,
	} {
		if err != nil || !flags.Changed(name) {
			continue
		}
		var v time.Duration
		if v, err = flags.GetDuration(name); err == nil {
			*dst = &v
		}
	}

	if err == nil && flags.Changed("verbose") {
		var v bool
		if v, err = flags.GetBool("verbose"); err == nil {
			overrides.Verbose = &v
		}
	}

	if err != nil {
		return nil, err
	}
	return overrides, nil
}
