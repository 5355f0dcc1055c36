package interfaces

import (
	"context"

	"linkvault/internal/application/command"
)

type UserService interface {
	Signup(ctx context.Context, cmd *command.SignupUserCommand) (*command.SignupUserCommandResult, error)
	Login(ctx context.Context, cmd *command.LoginUserCommand) (*command.LoginUserCommandResult, error)
}
