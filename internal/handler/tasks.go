package handler

import (
	"github.com/labstack/echo/v4"

	"github.com/planora/backend/internal/model"
	"github.com/planora/backend/internal/server"
	"github.com/planora/backend/internal/service"
	"github.com/planora/backend/internal/validation"
)

// TaskHandler serves the task CRUD endpoints.
type TaskHandler struct {
	Handler
	tasks *service.TaskService
}

// NewTaskHandler constructs a TaskHandler.
func NewTaskHandler(s *server.Server, tasks *service.TaskService) *TaskHandler {
	return &TaskHandler{
		Handler: NewHandler(s),
		tasks:   tasks,
	}
}

// CreateTaskRequest is the payload for POST /tasks. The web client
// sends due_date/due_time; date/time are accepted as fallback keys for
// older callers. Description is optional.
type CreateTaskRequest struct {
	UserID      int64   `json:"user_id"`
	Title       string  `json:"title"`
	Description *string `json:"description"`
	Frequency   string  `json:"frequency"`
	DueDate     string  `json:"due_date"`
	DueTime     string  `json:"due_time"`
	AltDate     string  `json:"date"`
	AltTime     string  `json:"time"`
}

func (r *CreateTaskRequest) Validate() error {
	if r.DueDate == "" {
		r.DueDate = r.AltDate
	}
	if r.DueTime == "" {
		r.DueTime = r.AltTime
	}

	var verrs validation.CustomValidationErrors
	if r.UserID <= 0 {
		verrs = append(verrs, validation.CustomValidationError{Field: "user_id", Message: "is required"})
	}
	if r.Title == "" {
		verrs = append(verrs, validation.CustomValidationError{Field: "title", Message: "is required"})
	}
	if r.Frequency == "" {
		verrs = append(verrs, validation.CustomValidationError{Field: "frequency", Message: "is required"})
	}
	verrs = append(verrs, validateDueFields(r.DueDate, r.DueTime)...)

	if len(verrs) > 0 {
		return verrs
	}
	return nil
}

// UpdateTaskRequest is the payload for PUT /update_task/:task_id. All
// five mutable fields must be present, description included.
type UpdateTaskRequest struct {
	TaskID      int64  `param:"task_id"`
	Title       string `json:"title"`
	Description string `json:"description"`
	Frequency   string `json:"frequency"`
	DueDate     string `json:"due_date"`
	DueTime     string `json:"due_time"`
}

func (r *UpdateTaskRequest) Validate() error {
	var verrs validation.CustomValidationErrors
	if r.Title == "" {
		verrs = append(verrs, validation.CustomValidationError{Field: "title", Message: "is required"})
	}
	if r.Description == "" {
		verrs = append(verrs, validation.CustomValidationError{Field: "description", Message: "is required"})
	}
	if r.Frequency == "" {
		verrs = append(verrs, validation.CustomValidationError{Field: "frequency", Message: "is required"})
	}
	verrs = append(verrs, validateDueFields(r.DueDate, r.DueTime)...)

	if len(verrs) > 0 {
		return verrs
	}
	return nil
}

// ListTasksRequest binds the user identifier from the path.
type ListTasksRequest struct {
	UserID int64 `param:"user_id"`
}

func (r *ListTasksRequest) Validate() error {
	if r.UserID <= 0 {
		return validation.CustomValidationErrors{
			{Field: "user_id", Message: "must be a positive integer"},
		}
	}
	return nil
}

// DeleteTaskRequest binds the task identifier from the path.
type DeleteTaskRequest struct {
	TaskID int64 `param:"task_id"`
}

func (r *DeleteTaskRequest) Validate() error {
	if r.TaskID <= 0 {
		return validation.CustomValidationErrors{
			{Field: "task_id", Message: "must be a positive integer"},
		}
	}
	return nil
}

// validateDueFields checks presence and wire format of the due date and
// due time fields, which both create and update require.
func validateDueFields(dueDate, dueTime string) validation.CustomValidationErrors {
	var verrs validation.CustomValidationErrors

	switch {
	case dueDate == "":
		verrs = append(verrs, validation.CustomValidationError{Field: "due_date", Message: "is required"})
	case !validation.IsValidDate(dueDate):
		verrs = append(verrs, validation.CustomValidationError{Field: "due_date", Message: "must match the format " + model.DateLayout})
	}

	switch {
	case dueTime == "":
		verrs = append(verrs, validation.CustomValidationError{Field: "due_time", Message: "is required"})
	case !validation.IsValidClockTime(dueTime):
		verrs = append(verrs, validation.CustomValidationError{Field: "due_time", Message: "must be a valid time of day"})
	}

	return verrs
}

// TasksResponse is the body for GET /tasks/:user_id.
type TasksResponse struct {
	Tasks []model.TaskJSON `json:"tasks"`
}

// CreateTask inserts a new task owned by the given user.
func (h *TaskHandler) CreateTask(c echo.Context, req *CreateTaskRequest) (MessageResponse, error) {
	fields := service.TaskFields{
		Title:       req.Title,
		Description: req.Description,
		Frequency:   req.Frequency,
		DueDate:     req.DueDate,
		DueTime:     req.DueTime,
	}

	_, err := h.tasks.Create(c.Request().Context(), req.UserID, fields)
	if err != nil {
		return MessageResponse{}, err
	}

	return MessageResponse{Message: "Task created successfully"}, nil
}

// ListTasks returns all tasks owned by the given user, with temporal
// fields serialized to text.
func (h *TaskHandler) ListTasks(c echo.Context, req *ListTasksRequest) (TasksResponse, error) {
	tasks, err := h.tasks.List(c.Request().Context(), req.UserID)
	if err != nil {
		return TasksResponse{}, err
	}

	return TasksResponse{Tasks: model.SerializeTasks(tasks)}, nil
}

// DeleteTask removes the task with the given identifier.
func (h *TaskHandler) DeleteTask(c echo.Context, req *DeleteTaskRequest) (MessageResponse, error) {
	if err := h.tasks.Delete(c.Request().Context(), req.TaskID); err != nil {
		return MessageResponse{}, err
	}

	return MessageResponse{Message: "Task deleted successfully"}, nil
}

// UpdateTask replaces all five mutable fields of the task with the
// given identifier.
func (h *TaskHandler) UpdateTask(c echo.Context, req *UpdateTaskRequest) (MessageResponse, error) {
	fields := service.TaskFields{
		Title:       req.Title,
		Description: &req.Description,
		Frequency:   req.Frequency,
		DueDate:     req.DueDate,
		DueTime:     req.DueTime,
	}

	if err := h.tasks.Update(c.Request().Context(), req.TaskID, fields); err != nil {
		return MessageResponse{}, err
	}

	return MessageResponse{Message: "Task updated successfully"}, nil
}
