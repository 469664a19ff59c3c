package services

import (
	"errors"

	"github.com/handmadefactory/backend/internal/domain"
	"github.com/handmadefactory/backend/internal/helper"
	"github.com/handmadefactory/backend/internal/repository"
	"gorm.io/gorm"
)

type AuthService interface {
	// Login verifies credentials and returns the matching user. Unknown
	// email and wrong password both come back as ErrInvalidCredentials.
	Login(email, password string) (*domain.User, error)

	// CurrentUser resolves a token subject to an active user and its role
	// names. Missing or inactive users come back as ErrUnauthorized.
	CurrentUser(email string) (*domain.User, []string, error)
}

type authService struct {
	userRepo     repository.UserRepository
	userRoleRepo repository.UserRoleRepository
}

func NewAuthService(userRepo repository.UserRepository, userRoleRepo repository.UserRoleRepository) AuthService {
	return &authService{
		userRepo:     userRepo,
		userRoleRepo: userRoleRepo,
	}
}

// Login matches the email exactly as stored; no case folding.
func (s *authService) Login(email, password string) (*domain.User, error) {
	user, err := s.userRepo.FindUserByEmail(email)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrInvalidCredentials
		}
		return nil, err
	}

	ok, err := helper.VerifyPassword(password, user.PasswordHash)
	if err != nil {
		// malformed stored digest, not a credential mismatch
		return nil, err
	}
	if !ok {
		return nil, ErrInvalidCredentials
	}
	return user, nil
}

func (s *authService) CurrentUser(email string) (*domain.User, []string, error) {
	user, err := s.userRepo.FindUserByEmail(email)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, nil, ErrUnauthorized
		}
		return nil, nil, err
	}
	if !user.IsActive {
		return nil, nil, ErrUnauthorized
	}

	roles, err := s.userRoleRepo.GetRoleNamesByUserID(user.ID)
	if err != nil {
		return nil, nil, err
	}
	return user, roles, nil
}
