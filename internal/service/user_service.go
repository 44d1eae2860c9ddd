package service

import (
	"github.com/christainc3213/Intex-II-V3/internal/models"
	"github.com/christainc3213/Intex-II-V3/internal/repository"
)

// UserService serves read-only viewer profiles.
type UserService struct {
	repo *repository.UserRepository
}

// NewUserService creates a new UserService.
func NewUserService(repo *repository.UserRepository) *UserService {
	return &UserService{repo: repo}
}

// List returns all viewer profiles.
func (s *UserService) List() ([]models.User, error) {
	return s.repo.List()
}

// Get returns one viewer profile.
func (s *UserService) Get(userID int) (*models.User, error) {
	return s.repo.Get(userID)
}
