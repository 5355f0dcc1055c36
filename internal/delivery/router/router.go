package router

import (
	"github.com/labstack/echo/v4"

	"linkvault/internal/delivery/handler"
	"linkvault/internal/delivery/middleware"
	"linkvault/internal/infrastructure"
)

// Register mounts the identity routes openly and the content routes behind
// the auth gate.
func Register(e *echo.Echo, userHandler *handler.UserHandler, bookmarkHandler *handler.BookmarkHandler, jwtService *infrastructure.JWTService) {
	user := e.Group("/login/v1")
	user.POST("/signup", userHandler.Signup)
	user.POST("/login", userHandler.Login)

	content := e.Group("/content/v2", middleware.Auth(jwtService))
	content.POST("/adddata", bookmarkHandler.AddData)
	content.GET("/getdata", bookmarkHandler.GetData)
	content.PUT("/update/:id", bookmarkHandler.Update)
	content.DELETE("/deletedata/:id", bookmarkHandler.DeleteData)
}
