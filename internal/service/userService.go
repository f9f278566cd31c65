package service

import (
	"context"
	"errors"
	"fmt"

	"github.com/google/uuid"

	repository "github.com/scxttalex/areabooker/internal/database/postgres"
	"github.com/scxttalex/areabooker/internal/entity"
)

type userService struct {
	userRepo repository.UserRepository
}

func NewUserService(userRepo repository.UserRepository) UserService {
	return &userService{userRepo: userRepo}
}

func (s *userService) RegisterUser(ctx context.Context, req *RegisterUserRequest) (*entity.User, error) {
	if req.Email != "" {
		_, err := s.userRepo.GetByEmail(ctx, req.Email)
		if err == nil {
			return nil, entity.ErrUserAlreadyExists
		}
		if !errors.Is(err, entity.ErrUserNotFound) {
			return nil, fmt.Errorf("failed to check email: %w", err)
		}
	}

	user := &entity.User{
		ID:       uuid.NewString(),
		Username: req.Username,
		Email:    req.Email,
		IsGuest:  req.IsGuest,
	}

	if err := s.userRepo.Create(ctx, user); err != nil {
		return nil, fmt.Errorf("failed to create user: %w", err)
	}
	return user, nil
}

func (s *userService) GetUser(ctx context.Context, id string) (*entity.User, error) {
	user, err := s.userRepo.GetByID(ctx, id)
	if err != nil {
		return nil, fmt.Errorf("failed to get user: %w", err)
	}
	return user, nil
}

func (s *userService) GetAllUsers(ctx context.Context) ([]*entity.User, error) {
	users, err := s.userRepo.GetAll(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to list users: %w", err)
	}
	return users, nil
}

func (s *userService) DeleteUser(ctx context.Context, id string) error {
	if err := s.userRepo.Delete(ctx, id); err != nil {
		return fmt.Errorf("failed to delete user: %w", err)
	}
	return nil
}
