package handler

import (
	"errors"
	"log"
	"net/http"

	"github.com/labstack/echo/v4"

	"linkvault/internal/application/command"
	"linkvault/internal/application/interfaces"
	"linkvault/internal/application/services"
)

type UserHandler struct {
	svc interfaces.UserService
}

func NewUserHandler(svc interfaces.UserService) *UserHandler {
	return &UserHandler{svc: svc}
}

func (h *UserHandler) Signup(c echo.Context) error {
	var cmd command.SignupUserCommand
	if err := c.Bind(&cmd); err != nil {
		return c.JSON(http.StatusBadRequest, echo.Map{
			"message": "please enter correct credentials",
		})
	}

	result, err := h.svc.Signup(c.Request().Context(), &cmd)
	if err != nil {
		if errors.Is(err, services.ErrValidation) {
			return c.JSON(http.StatusBadRequest, echo.Map{
				"message": "please enter correct credentials",
			})
		}
		log.Println("signup failed:", err)
		return c.JSON(http.StatusInternalServerError, echo.Map{
			"message": "internal server error",
		})
	}

	return c.JSON(http.StatusOK, echo.Map{
		"message": "User created or updated successfully",
		"user":    result.Result,
	})
}

func (h *UserHandler) Login(c echo.Context) error {
	var cmd command.LoginUserCommand
	if err := c.Bind(&cmd); err != nil {
		return c.JSON(http.StatusBadRequest, echo.Map{
			"message": "enter valid data",
		})
	}

	result, err := h.svc.Login(c.Request().Context(), &cmd)
	if err != nil {
		if errors.Is(err, services.ErrValidation) {
			return c.JSON(http.StatusBadRequest, echo.Map{
				"message": "enter valid data",
			})
		}
		if errors.Is(err, services.ErrInvalidCredentials) {
			return c.JSON(http.StatusUnauthorized, echo.Map{
				"message": "User doesn't exist please sign up first",
			})
		}
		log.Println("login failed:", err)
		return c.JSON(http.StatusInternalServerError, echo.Map{
			"message": "internal server error",
		})
	}

	return c.JSON(http.StatusOK, echo.Map{
		"message": "successfully login",
		"token":   result.Token,
	})
}
