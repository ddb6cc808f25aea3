package cli

import (
	"context"
	"fmt"
	"sort"
	"strings"

	"day-planner/internal/errors"
)

// Command represents a session command
type Command interface {
	Execute(ctx context.Context, args []string) error
}

// Described is implemented by commands that document themselves in help
type Described interface {
	Usage() string
	Summary() string
}

// CommandRegistry manages all available commands
type CommandRegistry struct {
	commands map[string]Command
}

// NewCommandRegistry creates a new command registry
func NewCommandRegistry(app *App) *CommandRegistry {
	registry := &CommandRegistry{
		commands: make(map[string]Command),
	}

	registry.Register("add", NewAddCommand(app))
	registry.Register("list", NewListCommand(app))
	registry.Register("days", NewDaysCommand(app))
	registry.Register("key", NewKeyCommand(app))
	registry.Register("help", NewHelpCommand(app, registry))

	return registry
}

// Register adds a command to the registry
func (r *CommandRegistry) Register(name string, command Command) {
	r.commands[name] = command
}

// Lookup returns the command registered under name
func (r *CommandRegistry) Lookup(name string) (Command, bool) {
	command, ok := r.commands[name]
	return command, ok
}

// Names returns the registered command names, sorted
func (r *CommandRegistry) Names() []string {
	names := make([]string, 0, len(r.commands))
	for name := range r.commands {
		names = append(names, name)
	}
	sort.Strings(names)
	return names
}

// Execute runs the specified command with the given arguments
func (r *CommandRegistry) Execute(ctx context.Context, commandName string, args []string) error {
	command, exists := r.commands[strings.ToLower(commandName)]
	if !exists {
		return errors.NewInvalidInputError("command", commandName, "unknown command, type help for a list")
	}
	return command.Execute(ctx, args)
}

// GetUsage returns one usage line per documented command
func (r *CommandRegistry) GetUsage() string {
	var b strings.Builder
	b.WriteString("Commands:\n")
	for _, name := range r.Names() {
		if d, ok := r.commands[name].(Described); ok {
			fmt.Fprintf(&b, "  %-40s %s\n", d.Usage(), d.Summary())
		}
	}
	fmt.Fprintf(&b, "  %-40s %s\n", "exit | quit", "End the session")
	return b.String()
}
