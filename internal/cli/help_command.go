package cli

import (
	"context"
)

// HelpCommand prints the session command list
type HelpCommand struct {
	app      *App
	registry *CommandRegistry
}

// NewHelpCommand creates a new help command handler
func NewHelpCommand(app *App, registry *CommandRegistry) *HelpCommand {
	return &HelpCommand{app: app, registry: registry}
}

func (c *HelpCommand) Usage() string {
	return "help"
}

func (c *HelpCommand) Summary() string {
	return "Show this list"
}

// Execute runs the help command
func (c *HelpCommand) Execute(ctx context.Context, args []string) error {
	c.app.printf("%s", c.registry.GetUsage())
	return nil
}
