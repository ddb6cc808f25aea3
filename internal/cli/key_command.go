package cli

import (
	"context"
	"strings"

	"day-planner/internal/errors"
)

// KeyCommand prints the date key a date input normalizes to
type KeyCommand struct {
	app *App
}

// NewKeyCommand creates a new key command handler
func NewKeyCommand(app *App) *KeyCommand {
	return &KeyCommand{app: app}
}

func (c *KeyCommand) Usage() string {
	return "key <date>"
}

func (c *KeyCommand) Summary() string {
	return "Show the day a date falls on"
}

// Execute runs the key command
func (c *KeyCommand) Execute(ctx context.Context, args []string) error {
	if len(args) == 0 {
		return errors.NewInvalidInputError("arguments", "", "usage: "+c.Usage())
	}

	key, err := c.app.api.DateKeyFor(strings.Join(args, " "))
	if err != nil {
		return err
	}

	c.app.printf("%s\n", key)
	return nil
}
