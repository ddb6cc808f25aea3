// Package api is the consumer contract of the day planner. It normalizes
// dates, validates raw user input and forwards to a store.Store.
package api

import (
	"context"
	"log/slog"
	"strings"
	"time"

	"day-planner/internal/domain"
	"day-planner/internal/errors"
	"day-planner/internal/logging"
	"day-planner/internal/store"
	"day-planner/internal/validation"
)

// timeNow is a variable that can be replaced in tests
var timeNow = time.Now

// API defines the operations available to a presentation layer.
type API interface {
	// Registry contract
	AddTask(ctx context.Context, date time.Time, task domain.Task) error
	GetTasksForDate(ctx context.Context, date time.Time) ([]domain.Task, error)

	// Input-level operations
	AddTaskFromInput(ctx context.Context, input TaskInput) (*AddedTask, error)
	TasksForInput(ctx context.Context, dateInput string) (*DayTasks, error)
	ListDays(ctx context.Context) ([]DaySummary, error)
	DateKeyFor(dateInput string) (domain.DateKey, error)

	Normalizer() *domain.Normalizer
	Close() error
}

// TaskInput is a task as typed by a user.
type TaskInput struct {
	// Date is any form accepted by Normalizer.ParseDate.
	Date string
	// Time is a clock time; empty keeps the clock time of Date.
	Time        string
	Name        string
	Description string
}

// AddedTask reports a stored task and the day it was filed under.
type AddedTask struct {
	Key  domain.DateKey
	Task domain.Task
}

// DayTasks holds one day's tasks in insertion order.
type DayTasks struct {
	Key   domain.DateKey
	Day   time.Time
	Tasks []domain.Task
}

// DaySummary describes a day that has tasks.
type DaySummary struct {
	Key   domain.DateKey
	Day   time.Time
	Count int
}

type apiImpl struct {
	store         store.Store
	normalizer    *domain.Normalizer
	taskValidator *validation.TaskValidator
	logger        *slog.Logger
	now           func() time.Time
}

// Option customizes an API instance.
type Option func(*apiImpl)

// WithTaskValidator replaces the default task validator.
func WithTaskValidator(v *validation.TaskValidator) Option {
	return func(a *apiImpl) {
		if v != nil {
			a.taskValidator = v
		}
	}
}

// WithLogger sets the structured logger.
func WithLogger(logger *slog.Logger) Option {
	return func(a *apiImpl) {
		if logger != nil {
			a.logger = logger
		}
	}
}

// WithClock sets the source of the current time used for today, tomorrow
// and yesterday.
func WithClock(now func() time.Time) Option {
	return func(a *apiImpl) {
		if now != nil {
			a.now = now
		}
	}
}

// New creates a new API instance over s. Dates are normalized with n; a nil
// n normalizes in time.Local.
func New(s store.Store, n *domain.Normalizer, opts ...Option) API {
	if n == nil {
		n = domain.NewNormalizer(nil)
	}
	a := &apiImpl{
		store:         s,
		normalizer:    n,
		taskValidator: validation.NewTaskValidator(),
		logger:        logging.Discard(),
		now:           func() time.Time { return timeNow() },
	}
	for _, opt := range opts {
		opt(a)
	}
	return a
}

func (a *apiImpl) Normalizer() *domain.Normalizer {
	return a.normalizer
}

func (a *apiImpl) Close() error {
	return a.store.Close()
}

// AddTask files task under the calendar day of date. The task fields are
// stored as given; only date and task.Time must lie within years 0000-9999.
func (a *apiImpl) AddTask(ctx context.Context, date time.Time, task domain.Task) error {
	if err := a.normalizer.CheckRange("date", date); err != nil {
		return errors.NewInvalidDateError(date.Format(time.RFC3339Nano), err)
	}
	if err := a.normalizer.CheckRange("time", task.Time); err != nil {
		return errors.NewInvalidDateError(task.Time.Format(time.RFC3339Nano), err)
	}

	key := a.normalizer.Key(date)
	if err := a.store.Append(ctx, key, task); err != nil {
		return a.fail("add task", err)
	}
	a.logger.Debug("task added", "key", key.String(), "name", task.Name)
	return nil
}

// GetTasksForDate returns the tasks of date's calendar day, never nil.
func (a *apiImpl) GetTasksForDate(ctx context.Context, date time.Time) ([]domain.Task, error) {
	tasks, err := a.store.List(ctx, a.normalizer.Key(date))
	if err != nil {
		return nil, a.fail("get tasks", err)
	}
	return tasks, nil
}

// AddTaskFromInput validates and parses input, then adds the task.
func (a *apiImpl) AddTaskFromInput(ctx context.Context, input TaskInput) (*AddedTask, error) {
	if err := a.taskValidator.ValidateTaskFields(input.Name, input.Description); err != nil {
		return nil, wrapValidation(err)
	}

	date, err := a.parseDate(input.Date)
	if err != nil {
		return nil, err
	}

	at := date.In(a.normalizer.Location())
	if strings.TrimSpace(input.Time) != "" {
		at, err = a.normalizer.ParseTimeOfDay(date, input.Time)
		if err != nil {
			return nil, errors.NewInvalidDateError(input.Time, err)
		}
	}

	name, err := a.taskValidator.GetValidTaskName(input.Name)
	if err != nil {
		return nil, wrapValidation(err)
	}
	description, err := a.taskValidator.GetValidDescription(input.Description)
	if err != nil {
		return nil, wrapValidation(err)
	}
	task := domain.NewTask(name, at, description)

	if err := a.AddTask(ctx, at, task); err != nil {
		return nil, err
	}
	return &AddedTask{Key: a.normalizer.Key(at), Task: task}, nil
}

// TasksForInput parses dateInput and returns that day's tasks.
func (a *apiImpl) TasksForInput(ctx context.Context, dateInput string) (*DayTasks, error) {
	date, err := a.parseDate(dateInput)
	if err != nil {
		return nil, err
	}

	tasks, err := a.GetTasksForDate(ctx, date)
	if err != nil {
		return nil, err
	}

	key := a.normalizer.Key(date)
	day, _ := a.normalizer.Day(key)
	return &DayTasks{Key: key, Day: day, Tasks: tasks}, nil
}

// ListDays returns every day with tasks, oldest first.
func (a *apiImpl) ListDays(ctx context.Context) ([]DaySummary, error) {
	keys, err := a.store.Keys(ctx)
	if err != nil {
		return nil, a.fail("list days", err)
	}

	days := make([]DaySummary, 0, len(keys))
	for _, key := range keys {
		tasks, err := a.store.List(ctx, key)
		if err != nil {
			return nil, a.fail("list days", err)
		}
		day, err := a.normalizer.Day(key)
		if err != nil {
			return nil, errors.NewInvalidDateError(key.String(), err)
		}
		days = append(days, DaySummary{Key: key, Day: day, Count: len(tasks)})
	}
	return days, nil
}

// DateKeyFor parses dateInput and returns its key.
func (a *apiImpl) DateKeyFor(dateInput string) (domain.DateKey, error) {
	date, err := a.parseDate(dateInput)
	if err != nil {
		return "", err
	}
	return a.normalizer.Key(date), nil
}

func (a *apiImpl) parseDate(input string) (time.Time, error) {
	date, err := a.normalizer.ParseDate(input, a.now())
	if err != nil {
		return time.Time{}, errors.NewInvalidDateError(input, err)
	}
	return date, nil
}

// fail logs store failures that indicate a system problem and passes err on.
func (a *apiImpl) fail(operation string, err error) error {
	if errors.IsDeadline(err) && !errors.IsAppError(err) {
		timeoutErr := errors.NewTimeoutError(operation, nil)
		timeoutErr.Cause = err
		err = timeoutErr
	}
	if errors.ShouldLogError(err) {
		a.logger.Error("store operation failed", "operation", operation, "code", errors.GetErrorCode(err), "error", err)
	}
	return err
}

func wrapValidation(err error) error {
	var message string
	if ve, ok := validation.AsValidationError(err); ok {
		message = ve.GetUserFriendlyMessage()
	} else {
		message = err.Error()
	}
	return errors.NewValidationError(message, err)
}
