package cli

import (
	"context"
	"strings"

	"day-planner/internal/domain"
)

// ListCommand handles the list command
type ListCommand struct {
	app *App
}

// NewListCommand creates a new list command handler
func NewListCommand(app *App) *ListCommand {
	return &ListCommand{app: app}
}

func (c *ListCommand) Usage() string {
	return "list [date]"
}

func (c *ListCommand) Summary() string {
	return "Show a day's tasks in the order they were added (default today)"
}

// Execute runs the list command
func (c *ListCommand) Execute(ctx context.Context, args []string) error {
	dateInput := "today"
	if len(args) > 0 {
		dateInput = strings.Join(args, " ")
	}

	day, err := c.app.api.TasksForInput(ctx, dateInput)
	if err != nil {
		return err
	}

	if len(day.Tasks) == 0 {
		c.app.printf("No tasks for %s\n", day.Key)
		return nil
	}

	c.app.printf("Tasks for %s (%s):\n", day.Key, day.Day.Weekday())
	for _, task := range day.Tasks {
		c.app.printf("%s\n", c.formatTask(task))
	}
	return nil
}

// formatTask renders one task line: two spaces, the clock time, two spaces,
// the name and, when present, an em dash and the description.
func (c *ListCommand) formatTask(task domain.Task) string {
	at := task.Time.In(c.app.api.Normalizer().Location())
	line := "  " + at.Format(c.app.config.Display.TimeFormat) + "  " + task.Name
	if task.Description != "" {
		line += " — " + task.Description
	}
	return line
}
