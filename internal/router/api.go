package router

import (
	"net/http"

	"github.com/labstack/echo/v4"

	"github.com/planora/backend/internal/handler"
)

// registerAPIRoutes registers the business endpoints. Paths and status
// codes are part of the public contract consumed by the web client.
func registerAPIRoutes(r *echo.Echo, h *handler.Handlers) {
	r.POST("/register", handler.Handle(h.Auth.Handler, h.Auth.Register, http.StatusCreated,
		func() *handler.RegisterRequest { return &handler.RegisterRequest{} }))

	r.POST("/login", handler.Handle(h.Auth.Handler, h.Auth.Login, http.StatusOK,
		func() *handler.LoginRequest { return &handler.LoginRequest{} }))

	r.POST("/tasks", handler.Handle(h.Tasks.Handler, h.Tasks.CreateTask, http.StatusCreated,
		func() *handler.CreateTaskRequest { return &handler.CreateTaskRequest{} }))

	r.GET("/tasks/:user_id", handler.Handle(h.Tasks.Handler, h.Tasks.ListTasks, http.StatusOK,
		func() *handler.ListTasksRequest { return &handler.ListTasksRequest{} }))

	r.DELETE("/delete_task/:task_id", handler.Handle(h.Tasks.Handler, h.Tasks.DeleteTask, http.StatusOK,
		func() *handler.DeleteTaskRequest { return &handler.DeleteTaskRequest{} }))

	r.PUT("/update_task/:task_id", handler.Handle(h.Tasks.Handler, h.Tasks.UpdateTask, http.StatusOK,
		func() *handler.UpdateTaskRequest { return &handler.UpdateTaskRequest{} }))
}
