package service

import (
	"context"
	"errors"

	"github.com/jackc/pgx/v5"
	"github.com/rs/zerolog"

	"github.com/planora/backend/internal/errs"
	"github.com/planora/backend/internal/model"
	"github.com/planora/backend/internal/sqlerr"
	"github.com/planora/backend/internal/validation"
)

// TasksRepository is the persistence surface TaskService needs.
type TasksRepository interface {
	Create(ctx context.Context, task *model.Task) (*model.Task, error)
	ListByUser(ctx context.Context, userID int64) ([]model.Task, error)
	Delete(ctx context.Context, taskID int64) error
	Update(ctx context.Context, task *model.Task) error
}

// TaskFields carries the validated mutable fields of a task as they
// arrive on the wire: due date "2006-01-02", due time "15:04" or
// "15:04:05".
type TaskFields struct {
	Title       string
	Description *string
	Frequency   string
	DueDate     string
	DueTime     string
}

// TaskService handles task creation, listing, update, and deletion.
type TaskService struct {
	tasks TasksRepository
	log   *zerolog.Logger
}

// NewTaskService constructs a TaskService.
func NewTaskService(tasks TasksRepository, log *zerolog.Logger) *TaskService {
	return &TaskService{
		tasks: tasks,
		log:   log,
	}
}

// Create inserts a new task owned by userID. A nonexistent owner
// surfaces as a foreign key violation and maps to 400.
func (s *TaskService) Create(ctx context.Context, userID int64, fields TaskFields) (*model.Task, error) {
	task, err := buildTask(fields)
	if err != nil {
		return nil, err
	}
	task.UserID = userID

	created, err := s.tasks.Create(ctx, task)
	if err != nil {
		return nil, sqlerr.HandleError(err)
	}

	s.log.Info().Int64("task_id", created.ID).Int64("user_id", userID).Msg("task created")

	return created, nil
}

// List returns all tasks owned by userID. A user without tasks gets an
// empty listing, not an error.
func (s *TaskService) List(ctx context.Context, userID int64) ([]model.Task, error) {
	tasks, err := s.tasks.ListByUser(ctx, userID)
	if err != nil {
		return nil, sqlerr.HandleError(err)
	}
	return tasks, nil
}

// Delete removes the task with the given identifier, or reports 404
// when it does not exist.
func (s *TaskService) Delete(ctx context.Context, taskID int64) error {
	if err := s.tasks.Delete(ctx, taskID); err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return errs.NewNotFoundError("Task not found", nil)
		}
		return sqlerr.HandleError(err)
	}

	s.log.Info().Int64("task_id", taskID).Msg("task deleted")

	return nil
}

// Update replaces all five mutable fields of the task with the given
// identifier, or reports 404 when it does not exist. Nothing is mutated
// on the not-found path.
func (s *TaskService) Update(ctx context.Context, taskID int64, fields TaskFields) error {
	task, err := buildTask(fields)
	if err != nil {
		return err
	}
	task.ID = taskID

	if err := s.tasks.Update(ctx, task); err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return errs.NewNotFoundError("Task not found", nil)
		}
		return sqlerr.HandleError(err)
	}

	s.log.Info().Int64("task_id", taskID).Msg("task updated")

	return nil
}

// buildTask converts wire-format temporal fields into their typed
// representations. A parse failure maps to 400 with a field error.
func buildTask(fields TaskFields) (*model.Task, error) {
	dueDate, err := model.NewDate(fields.DueDate)
	if err != nil {
		return nil, errs.NewBadRequestError("Validation failed", nil, []errs.FieldError{
			{Field: "due_date", Error: "must match the format " + model.DateLayout},
		})
	}

	clock, err := validation.ParseClockTime(fields.DueTime)
	if err != nil {
		return nil, errs.NewBadRequestError("Validation failed", nil, []errs.FieldError{
			{Field: "due_time", Error: "must be a valid time of day"},
		})
	}

	return &model.Task{
		Title:       fields.Title,
		Description: fields.Description,
		Frequency:   fields.Frequency,
		DueDate:     dueDate,
		DueTime:     model.NewClockTime(clock),
	}, nil
}
