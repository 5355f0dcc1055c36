package services

import (
	"context"
	"fmt"

	"linkvault/internal/application/command"
	"linkvault/internal/application/interfaces"
	"linkvault/internal/application/mapper"
	"linkvault/internal/domain/entities"
	"linkvault/internal/domain/repositories"
	"linkvault/internal/infrastructure"
)

type UserService struct {
	userRepo   repositories.UserRepository
	jwtService *infrastructure.JWTService
}

func NewUserService(userRepo repositories.UserRepository, jwtService *infrastructure.JWTService) interfaces.UserService {
	return &UserService{
		userRepo:   userRepo,
		jwtService: jwtService,
	}
}

// Signup upserts the user keyed by username. A repeated signup with the same
// username overwrites the row rather than failing on the unique index; that
// last-write-wins behavior is the documented contract of the route.
func (s *UserService) Signup(ctx context.Context, cmd *command.SignupUserCommand) (*command.SignupUserCommandResult, error) {
	user := entities.NewUser(cmd.Firstname, cmd.Lastname, cmd.Username, cmd.Password)
	if err := user.Validate(); err != nil {
		return nil, fmt.Errorf("%w: %v", ErrValidation, err)
	}

	if err := user.HashPassword(); err != nil {
		return nil, err
	}

	storedUser, err := s.userRepo.Upsert(ctx, user)
	if err != nil {
		return nil, err
	}

	return &command.SignupUserCommandResult{
		Result: mapper.NewUserResultFromEntity(storedUser),
	}, nil
}

// Login is a guarded early-return flow: validate, look up, compare, and only
// then issue a token. No path reaches token issuance without a matched user.
func (s *UserService) Login(ctx context.Context, cmd *command.LoginUserCommand) (*command.LoginUserCommandResult, error) {
	if len(cmd.Username) < 2 || len(cmd.Password) < 2 {
		return nil, fmt.Errorf("%w: username and password are required", ErrValidation)
	}

	user, err := s.userRepo.FindByUsername(ctx, cmd.Username)
	if err != nil {
		return nil, err
	}
	if user == nil {
		return nil, ErrInvalidCredentials
	}

	if err := user.CheckPassword(cmd.Password); err != nil {
		return nil, ErrInvalidCredentials
	}

	token, err := s.jwtService.GenerateToken(user.ID)
	if err != nil {
		return nil, err
	}

	return &command.LoginUserCommandResult{Token: token}, nil
}
