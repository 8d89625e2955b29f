package router

import (
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
	"time"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgtype"
	"github.com/labstack/echo/v4"
	"github.com/rs/zerolog"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"golang.org/x/crypto/bcrypt"

	"github.com/planora/backend/internal/config"
	"github.com/planora/backend/internal/handler"
	"github.com/planora/backend/internal/middleware"
	"github.com/planora/backend/internal/model"
	"github.com/planora/backend/internal/server"
	"github.com/planora/backend/internal/service"
)

// -------- test fakes --------

type fakeUsersRepo struct {
	byEmail map[string]*model.User
	nextID  int64
}

func newFakeUsersRepo() *fakeUsersRepo {
	return &fakeUsersRepo{byEmail: map[string]*model.User{}, nextID: 1}
}

func (f *fakeUsersRepo) Create(ctx context.Context, user *model.User) (*model.User, error) {
	user.ID = f.nextID
	user.CreatedAt = time.Now()
	f.nextID++
	f.byEmail[user.Email] = user
	return user, nil
}

func (f *fakeUsersRepo) GetByEmail(ctx context.Context, email string) (*model.User, error) {
	user, ok := f.byEmail[email]
	if !ok {
		return nil, fmt.Errorf("selecting user by email: %w", pgx.ErrNoRows)
	}
	return user, nil
}

type fakeTasksRepo struct {
	byID   map[int64]*model.Task
	nextID int64
}

func newFakeTasksRepo() *fakeTasksRepo {
	return &fakeTasksRepo{byID: map[int64]*model.Task{}, nextID: 1}
}

func (f *fakeTasksRepo) Create(ctx context.Context, task *model.Task) (*model.Task, error) {
	task.ID = f.nextID
	task.CreatedAt = time.Date(2025, 6, 1, 12, 0, 0, 0, time.UTC)
	f.nextID++
	f.byID[task.ID] = task
	return task, nil
}

func (f *fakeTasksRepo) ListByUser(ctx context.Context, userID int64) ([]model.Task, error) {
	var tasks []model.Task
	for id := int64(1); id < f.nextID; id++ {
		if t, ok := f.byID[id]; ok && t.UserID == userID {
			tasks = append(tasks, *t)
		}
	}
	return tasks, nil
}

func (f *fakeTasksRepo) Delete(ctx context.Context, taskID int64) error {
	if _, ok := f.byID[taskID]; !ok {
		return fmt.Errorf("deleting task: %w", pgx.ErrNoRows)
	}
	delete(f.byID, taskID)
	return nil
}

func (f *fakeTasksRepo) Update(ctx context.Context, task *model.Task) error {
	existing, ok := f.byID[task.ID]
	if !ok {
		return fmt.Errorf("updating task: %w", pgx.ErrNoRows)
	}
	task.UserID = existing.UserID
	task.CreatedAt = existing.CreatedAt
	f.byID[task.ID] = task
	return nil
}

// -------- harness --------

type testAPI struct {
	router *echo.Echo
	users  *fakeUsersRepo
	tasks  *fakeTasksRepo
}

func newTestAPI(t *testing.T) *testAPI {
	t.Helper()

	log := zerolog.Nop()
	cfg := &config.Config{
		Primary: config.Primary{Env: "test", LogLevel: "info"},
		Server:  config.ServerConfig{Port: "5000", CORSAllowedOrigins: "*"},
	}
	s := &server.Server{Config: cfg, Logger: &log}

	users := newFakeUsersRepo()
	tasks := newFakeTasksRepo()

	h := &handler.Handlers{
		Auth:   handler.NewAuthHandler(s, service.NewAuthService(users, &log)),
		Tasks:  handler.NewTaskHandler(s, service.NewTaskService(tasks, &log)),
		Health: handler.NewHealthHandler(s),
	}

	return &testAPI{
		router: New(middleware.NewMiddlewares(s), h),
		users:  users,
		tasks:  tasks,
	}
}

func (a *testAPI) do(method, path, body string) *httptest.ResponseRecorder {
	var req *http.Request
	if body != "" {
		req = httptest.NewRequest(method, path, strings.NewReader(body))
		req.Header.Set(echo.HeaderContentType, echo.MIMEApplicationJSON)
	} else {
		req = httptest.NewRequest(method, path, nil)
	}
	rec := httptest.NewRecorder()
	a.router.ServeHTTP(rec, req)
	return rec
}

func decode(t *testing.T, rec *httptest.ResponseRecorder) map[string]any {
	t.Helper()
	var out map[string]any
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &out))
	return out
}

func (a *testAPI) registerUser(t *testing.T, username, email, password string) {
	t.Helper()
	rec := a.do(http.MethodPost, "/register",
		fmt.Sprintf(`{"username":%q,"email":%q,"password":%q}`, username, email, password))
	require.Equal(t, http.StatusCreated, rec.Code)
}

func (a *testAPI) seedTask(t *testing.T, userID int64, title string) int64 {
	t.Helper()
	desc := "notes"
	task, err := a.tasks.Create(context.Background(), &model.Task{
		UserID:      userID,
		Title:       title,
		Description: &desc,
		Frequency:   "daily",
		DueDate:     pgtype.Date{Time: time.Date(2025, 7, 1, 0, 0, 0, 0, time.UTC), Valid: true},
		DueTime:     pgtype.Time{Microseconds: (18*3600 + 30*60) * 1_000_000, Valid: true},
	})
	require.NoError(t, err)
	return task.ID
}

// -------- liveness --------

func TestLiveness(t *testing.T) {
	api := newTestAPI(t)

	rec := api.do(http.MethodGet, "/", "")

	assert.Equal(t, http.StatusOK, rec.Code)
	assert.Equal(t, "Planora API is running", rec.Body.String())
}

func TestUnknownRoute(t *testing.T) {
	api := newTestAPI(t)

	rec := api.do(http.MethodGet, "/nope", "")

	assert.Equal(t, http.StatusNotFound, rec.Code)
	body := decode(t, rec)
	assert.Equal(t, "Route not found", body["message"])
}

// -------- register --------

func TestRegister(t *testing.T) {
	api := newTestAPI(t)

	rec := api.do(http.MethodPost, "/register",
		`{"username":"a","email":"a@b.c","password":"pw"}`)

	assert.Equal(t, http.StatusCreated, rec.Code)
	body := decode(t, rec)
	assert.Equal(t, "User registered successfully", body["message"])

	stored := api.users.byEmail["a@b.c"]
	require.NotNil(t, stored)
	assert.NoError(t, bcrypt.CompareHashAndPassword([]byte(stored.PasswordHash), []byte("pw")))
}

func TestRegisterMissingField(t *testing.T) {
	api := newTestAPI(t)

	rec := api.do(http.MethodPost, "/register", `{"username":"a","email":"a@b.c"}`)

	assert.Equal(t, http.StatusBadRequest, rec.Code)
	body := decode(t, rec)
	assert.Equal(t, "Validation failed", body["message"])

	errorsList, ok := body["errors"].([]any)
	require.True(t, ok)
	require.Len(t, errorsList, 1)
	fieldErr := errorsList[0].(map[string]any)
	assert.Equal(t, "password", fieldErr["field"])
}

func TestRegisterMalformedBody(t *testing.T) {
	api := newTestAPI(t)

	rec := api.do(http.MethodPost, "/register", `{"username":`)

	assert.Equal(t, http.StatusBadRequest, rec.Code)
	body := decode(t, rec)
	assert.Equal(t, "Invalid request body", body["message"])
}

func TestRegisterDuplicateEmail(t *testing.T) {
	api := newTestAPI(t)
	api.registerUser(t, "a", "a@b.c", "pw")

	rec := api.do(http.MethodPost, "/register",
		`{"username":"other","email":"a@b.c","password":"pw2"}`)

	assert.Equal(t, http.StatusConflict, rec.Code)
	body := decode(t, rec)
	assert.Equal(t, "Email already registered", body["message"])
}

// -------- login --------

func TestLogin(t *testing.T) {
	api := newTestAPI(t)
	api.registerUser(t, "a", "a@b.c", "pw")

	rec := api.do(http.MethodPost, "/login", `{"email":"a@b.c","password":"pw"}`)

	assert.Equal(t, http.StatusOK, rec.Code)
	body := decode(t, rec)
	assert.Equal(t, "Login successful", body["message"])

	user, ok := body["user"].(map[string]any)
	require.True(t, ok)
	assert.Equal(t, "a", user["username"])
	assert.Equal(t, float64(1), user["id"])
	assert.NotContains(t, user, "password")
	assert.NotContains(t, user, "email")
}

func TestLoginUnknownEmail(t *testing.T) {
	api := newTestAPI(t)

	rec := api.do(http.MethodPost, "/login", `{"email":"missing@b.c","password":"pw"}`)

	assert.Equal(t, http.StatusUnauthorized, rec.Code)
	body := decode(t, rec)
	assert.Equal(t, "Invalid email or password", body["message"])
}

func TestLoginWrongPassword(t *testing.T) {
	api := newTestAPI(t)
	api.registerUser(t, "a", "a@b.c", "pw")

	rec := api.do(http.MethodPost, "/login", `{"email":"a@b.c","password":"wrong"}`)

	assert.Equal(t, http.StatusUnauthorized, rec.Code)
	body := decode(t, rec)
	assert.Equal(t, "Invalid email or password", body["message"])
}

// -------- tasks --------

func TestCreateTask(t *testing.T) {
	api := newTestAPI(t)

	rec := api.do(http.MethodPost, "/tasks",
		`{"user_id":3,"title":"Standup","description":"daily sync","frequency":"daily","due_date":"2025-06-01","due_time":"09:30"}`)

	assert.Equal(t, http.StatusCreated, rec.Code)
	body := decode(t, rec)
	assert.Equal(t, "Task created successfully", body["message"])

	stored := api.tasks.byID[1]
	require.NotNil(t, stored)
	assert.Equal(t, int64(3), stored.UserID)
	assert.Equal(t, "Standup", stored.Title)
}

func TestCreateTaskLegacyKeys(t *testing.T) {
	api := newTestAPI(t)

	rec := api.do(http.MethodPost, "/tasks",
		`{"user_id":3,"title":"Standup","frequency":"daily","date":"2025-06-01","time":"09:30"}`)

	assert.Equal(t, http.StatusCreated, rec.Code)

	stored := api.tasks.byID[1]
	require.NotNil(t, stored)
	assert.Equal(t, time.Date(2025, 6, 1, 0, 0, 0, 0, time.UTC), stored.DueDate.Time)
}

func TestCreateTaskMissingTitle(t *testing.T) {
	api := newTestAPI(t)

	rec := api.do(http.MethodPost, "/tasks",
		`{"user_id":3,"frequency":"daily","due_date":"2025-06-01","due_time":"09:30"}`)

	assert.Equal(t, http.StatusBadRequest, rec.Code)
	body := decode(t, rec)
	assert.Equal(t, "Validation failed", body["message"])
}

func TestCreateTaskBadDate(t *testing.T) {
	api := newTestAPI(t)

	rec := api.do(http.MethodPost, "/tasks",
		`{"user_id":3,"title":"t","frequency":"daily","due_date":"06/01/2025","due_time":"09:30"}`)

	assert.Equal(t, http.StatusBadRequest, rec.Code)
}

func TestListTasks(t *testing.T) {
	api := newTestAPI(t)
	api.seedTask(t, 3, "First")
	api.seedTask(t, 3, "Second")
	api.seedTask(t, 4, "Other user")

	rec := api.do(http.MethodGet, "/tasks/3", "")

	assert.Equal(t, http.StatusOK, rec.Code)
	body := decode(t, rec)

	tasks, ok := body["tasks"].([]any)
	require.True(t, ok)
	require.Len(t, tasks, 2)

	first := tasks[0].(map[string]any)
	assert.Equal(t, "First", first["title"])
	assert.Equal(t, "2025-07-01", first["due_date"])
	assert.Equal(t, "18:30:00", first["due_time"])
	assert.Equal(t, "2025-06-01T12:00:00Z", first["created_at"])
}

func TestListTasksEmpty(t *testing.T) {
	api := newTestAPI(t)

	rec := api.do(http.MethodGet, "/tasks/42", "")

	assert.Equal(t, http.StatusOK, rec.Code)
	assert.JSONEq(t, `{"tasks":[]}`, rec.Body.String())
}

func TestListTasksBadUserID(t *testing.T) {
	api := newTestAPI(t)

	rec := api.do(http.MethodGet, "/tasks/abc", "")

	assert.Equal(t, http.StatusBadRequest, rec.Code)
}

func TestDeleteTask(t *testing.T) {
	api := newTestAPI(t)
	id := api.seedTask(t, 3, "Doomed")

	rec := api.do(http.MethodDelete, fmt.Sprintf("/delete_task/%d", id), "")

	assert.Equal(t, http.StatusOK, rec.Code)
	body := decode(t, rec)
	assert.Equal(t, "Task deleted successfully", body["message"])
	assert.NotContains(t, api.tasks.byID, id)
}

func TestDeleteTaskNotFound(t *testing.T) {
	api := newTestAPI(t)

	rec := api.do(http.MethodDelete, "/delete_task/404", "")

	assert.Equal(t, http.StatusNotFound, rec.Code)
	body := decode(t, rec)
	assert.Equal(t, "Task not found", body["message"])
}

func TestUpdateTask(t *testing.T) {
	api := newTestAPI(t)
	id := api.seedTask(t, 3, "Old title")

	rec := api.do(http.MethodPut, fmt.Sprintf("/update_task/%d", id),
		`{"title":"New title","description":"changed","frequency":"weekly","due_date":"2025-08-01","due_time":"10:00"}`)

	assert.Equal(t, http.StatusOK, rec.Code)
	body := decode(t, rec)
	assert.Equal(t, "Task updated successfully", body["message"])

	stored := api.tasks.byID[id]
	require.NotNil(t, stored)
	assert.Equal(t, "New title", stored.Title)
	assert.Equal(t, "weekly", stored.Frequency)
}

func TestUpdateTaskNotFound(t *testing.T) {
	api := newTestAPI(t)

	rec := api.do(http.MethodPut, "/update_task/404",
		`{"title":"t","description":"d","frequency":"daily","due_date":"2025-08-01","due_time":"10:00"}`)

	assert.Equal(t, http.StatusNotFound, rec.Code)
	body := decode(t, rec)
	assert.Equal(t, "Task not found", body["message"])
}

func TestUpdateTaskMissingDescription(t *testing.T) {
	api := newTestAPI(t)
	id := api.seedTask(t, 3, "Old title")

	rec := api.do(http.MethodPut, fmt.Sprintf("/update_task/%d", id),
		`{"title":"t","frequency":"daily","due_date":"2025-08-01","due_time":"10:00"}`)

	assert.Equal(t, http.StatusBadRequest, rec.Code)
	body := decode(t, rec)
	assert.Equal(t, "Validation failed", body["message"])
}
