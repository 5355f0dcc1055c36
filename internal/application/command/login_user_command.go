package command

type LoginUserCommand struct {
	Username string `json:"username"`
	Password string `json:"password"`
}

type LoginUserCommandResult struct {
	Token string `json:"token"`
}
