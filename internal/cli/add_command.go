package cli

import (
	"context"
	"strings"

	"day-planner/internal/api"
	"day-planner/internal/errors"
)

// AddCommand handles the add command
type AddCommand struct {
	app *App
}

// NewAddCommand creates a new add command handler
func NewAddCommand(app *App) *AddCommand {
	return &AddCommand{app: app}
}

func (c *AddCommand) Usage() string {
	return "add <date> <time> <name> [description...]"
}

func (c *AddCommand) Summary() string {
	return "Add a task to a day"
}

// Execute runs the add command
func (c *AddCommand) Execute(ctx context.Context, args []string) error {
	if len(args) < 3 {
		return errors.NewInvalidInputError("arguments", strings.Join(args, " "), "usage: "+c.Usage())
	}

	added, err := c.app.api.AddTaskFromInput(ctx, api.TaskInput{
		Date:        args[0],
		Time:        args[1],
		Name:        args[2],
		Description: strings.Join(args[3:], " "),
	})
	if err != nil {
		return err
	}

	at := added.Task.Time.In(c.app.api.Normalizer().Location())
	c.app.printf("Added %q on %s at %s\n", added.Task.Name, added.Key, at.Format(c.app.config.Display.TimeFormat))
	return nil
}
