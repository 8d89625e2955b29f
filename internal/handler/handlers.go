package handler

import (
	"github.com/planora/backend/internal/server"
	"github.com/planora/backend/internal/service"
)

// Handlers is a container that groups all HTTP handlers, so router
// setup receives one object instead of many.
type Handlers struct {
	Auth   *AuthHandler
	Tasks  *TaskHandler
	Health *HealthHandler
}

// NewHandlers constructs the handler container.
func NewHandlers(s *server.Server, services *service.Services) *Handlers {
	return &Handlers{
		Auth:   NewAuthHandler(s, services.Auth),
		Tasks:  NewTaskHandler(s, services.Tasks),
		Health: NewHealthHandler(s),
	}
}
