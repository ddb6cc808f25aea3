package cli

import (
	"context"
	"time"

	"github.com/dustin/go-humanize"

	"day-planner/internal/domain"
)

// DaysCommand handles the days command
type DaysCommand struct {
	app *App
}

// NewDaysCommand creates a new days command handler
func NewDaysCommand(app *App) *DaysCommand {
	return &DaysCommand{app: app}
}

func (c *DaysCommand) Usage() string {
	return "days"
}

func (c *DaysCommand) Summary() string {
	return "List every day that has tasks"
}

// Execute runs the days command
func (c *DaysCommand) Execute(ctx context.Context, args []string) error {
	days, err := c.app.api.ListDays(ctx)
	if err != nil {
		return err
	}

	if len(days) == 0 {
		c.app.printf("No tasks yet\n")
		return nil
	}

	today := c.app.api.Normalizer().Key(timeNow())
	for _, day := range days {
		c.app.printf("%s (%-9s)  %s  %s\n", day.Key, day.Day.Weekday(), taskCount(day.Count), relativeDay(day.Key, today))
	}
	return nil
}

func taskCount(n int) string {
	if n == 1 {
		return "1 task"
	}
	return humanize.Comma(int64(n)) + " tasks"
}

// relativeDay describes key relative to today in whole calendar days.
func relativeDay(key, today domain.DateKey) string {
	if key == today {
		return "today"
	}
	// Both keys are read in UTC so DST changes cannot shorten a day.
	day, err := time.Parse(domain.DateKeyLayout, key.String())
	if err != nil {
		return ""
	}
	ref, err := time.Parse(domain.DateKeyLayout, today.String())
	if err != nil {
		return ""
	}
	return humanize.RelTime(day, ref, "ago", "from now")
}
