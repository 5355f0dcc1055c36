package handler

import (
	"errors"
	"net/http"
	"strconv"

	"github.com/labstack/echo/v4"

	"linkvault/internal/application/command"
	"linkvault/internal/application/interfaces"
	"linkvault/internal/application/services"
	"linkvault/internal/delivery/middleware"
)

type BookmarkHandler struct {
	svc interfaces.BookmarkService
}

func NewBookmarkHandler(svc interfaces.BookmarkService) *BookmarkHandler {
	return &BookmarkHandler{svc: svc}
}

func (h *BookmarkHandler) AddData(c echo.Context) error {
	var cmd command.SaveBookmarkCommand
	if err := c.Bind(&cmd); err != nil {
		return c.JSON(http.StatusBadRequest, echo.Map{
			"message": "please enter correct credentials",
		})
	}

	if err := h.svc.Save(c.Request().Context(), middleware.BoundUserID(c), &cmd); err != nil {
		if errors.Is(err, services.ErrValidation) {
			return c.JSON(http.StatusBadRequest, echo.Map{
				"message": "please enter correct credentials",
			})
		}
		return c.JSON(http.StatusBadRequest, echo.Map{
			"message": "error while storing data",
		})
	}

	return c.JSON(http.StatusOK, echo.Map{
		"message": "data has been stored",
	})
}

func (h *BookmarkHandler) GetData(c echo.Context) error {
	results, err := h.svc.List(c.Request().Context(), middleware.BoundUserID(c))
	if err != nil {
		return c.JSON(http.StatusBadRequest, echo.Map{
			"message": "error. please try again",
		})
	}

	return c.JSON(http.StatusOK, echo.Map{
		"message": "your all data",
		"result":  results,
	})
}

func (h *BookmarkHandler) Update(c echo.Context) error {
	id, err := strconv.Atoi(c.Param("id"))
	if err != nil || id < 0 {
		return c.JSON(http.StatusBadRequest, echo.Map{
			"message": "invalid id",
		})
	}

	var cmd command.SaveBookmarkCommand
	if err := c.Bind(&cmd); err != nil {
		return c.JSON(http.StatusBadRequest, echo.Map{
			"message": "please enter correct credentials",
		})
	}

	result, err := h.svc.Update(c.Request().Context(), middleware.BoundUserID(c), uint(id), &cmd)
	if err != nil {
		if errors.Is(err, services.ErrValidation) {
			return c.JSON(http.StatusBadRequest, echo.Map{
				"message": "please enter correct credentials",
			})
		}
		return c.JSON(http.StatusBadRequest, echo.Map{
			"message": "error while updating",
		})
	}

	return c.JSON(http.StatusOK, echo.Map{
		"message": "data has been updated",
		"result":  result,
	})
}

func (h *BookmarkHandler) DeleteData(c echo.Context) error {
	id, err := strconv.Atoi(c.Param("id"))
	if err != nil || id < 0 {
		return c.JSON(http.StatusBadRequest, echo.Map{
			"message": "invalid id",
		})
	}

	result, err := h.svc.Delete(c.Request().Context(), middleware.BoundUserID(c), uint(id))
	if err != nil {
		return c.JSON(http.StatusBadRequest, echo.Map{
			"message": "error while deleting. Try again",
		})
	}

	return c.JSON(http.StatusOK, echo.Map{
		"message": "deleted",
		"result":  result,
	})
}
