package service

import (
	"github.com/planora/backend/internal/repository"
	"github.com/planora/backend/internal/server"
)

// Services is a container that groups all business-logic services.
type Services struct {
	Auth  *AuthService
	Tasks *TaskService
}

// NewServices constructs the service container from the application
// container and the wired repositories.
func NewServices(s *server.Server, repos *repository.Repositories) *Services {
	return &Services{
		Auth:  NewAuthService(repos.Users, s.Logger),
		Tasks: NewTaskService(repos.Tasks, s.Logger),
	}
}
