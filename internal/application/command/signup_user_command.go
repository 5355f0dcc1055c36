package command

import "linkvault/internal/application/common"

type SignupUserCommand struct {
	Firstname string `json:"firstname"`
	Lastname  string `json:"lastname"`
	Username  string `json:"username"`
	Password  string `json:"password"`
}

type SignupUserCommandResult struct {
	Result *common.UserResult `json:"user"`
}
