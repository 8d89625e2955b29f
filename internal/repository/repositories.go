package repository

import (
	"github.com/planora/backend/internal/server"
)

// Repositories is a container for all repository instances, wired once
// at startup and handed to the service layer.
type Repositories struct {
	Users *UsersRepository
	Tasks *TasksRepository
}

// NewRepositories constructs the repository container from the shared
// application resources.
func NewRepositories(s *server.Server) *Repositories {
	return &Repositories{
		Users: NewUsersRepository(s.DB.Pool),
		Tasks: NewTasksRepository(s.DB.Pool),
	}
}
