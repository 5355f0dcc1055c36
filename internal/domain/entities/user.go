package entities

import (
	"errors"
	"time"

	"golang.org/x/crypto/bcrypt"
)

type User struct {
	ID        uint
	CreatedAt time.Time
	Username  string
	Password  string
	Firstname string
	Lastname  string
}

func NewUser(firstname, lastname, username, password string) *User {
	return &User{
		CreatedAt: time.Now(),
		Username:  username,
		Password:  password,
		Firstname: firstname,
		Lastname:  lastname,
	}
}

// Validate checks the signup field minimums. It must run before HashPassword:
// the password length limits apply to the cleartext, not the hash.
func (u *User) Validate() error {
	if len(u.Firstname) < 2 {
		return errors.New("firstname must be at least 2 characters")
	}
	if len(u.Lastname) < 3 {
		return errors.New("lastname must be at least 3 characters")
	}
	if len(u.Username) < 3 {
		return errors.New("username must be at least 3 characters")
	}
	if len(u.Password) < 4 || len(u.Password) > 15 {
		return errors.New("password must be between 4 and 15 characters")
	}
	return nil
}

func (u *User) HashPassword() error {
	hashedPassword, err := bcrypt.GenerateFromPassword([]byte(u.Password), bcrypt.DefaultCost)
	if err != nil {
		return err
	}
	u.Password = string(hashedPassword)
	return nil
}

func (u *User) CheckPassword(password string) error {
	return bcrypt.CompareHashAndPassword([]byte(u.Password), []byte(password))
}
