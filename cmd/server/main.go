package main

import (
	"log"

	"github.com/google/uuid"
	"github.com/joho/godotenv"
	"github.com/labstack/echo/v4"
	echomiddleware "github.com/labstack/echo/v4/middleware"

	"linkvault/internal/application/services"
	"linkvault/internal/config"
	"linkvault/internal/delivery/handler"
	"linkvault/internal/delivery/router"
	"linkvault/internal/infrastructure"
	"linkvault/internal/infrastructure/db/postgres"
)

func main() {
	if err := godotenv.Load(); err != nil {
		log.Println("no .env file, using process environment")
	}

	cfg, err := config.Load()
	if err != nil {
		log.Fatal("invalid configuration: ", err)
	}

	db, err := postgres.Connect(cfg.DatabaseURL)
	if err != nil {
		log.Fatal("failed to connect to database: ", err)
	}

	jwtService := infrastructure.NewJWTService(cfg.JWTSecret)
	userService := services.NewUserService(postgres.NewUserRepository(db), jwtService)
	bookmarkService := services.NewBookmarkService(postgres.NewBookmarkRepository(db))

	e := echo.New()
	e.HideBanner = true
	e.Use(echomiddleware.Logger())
	e.Use(echomiddleware.Recover())
	e.Use(echomiddleware.CORS())
	e.Use(echomiddleware.RequestIDWithConfig(echomiddleware.RequestIDConfig{
		Generator: uuid.NewString,
	}))

	router.Register(e, handler.NewUserHandler(userService), handler.NewBookmarkHandler(bookmarkService), jwtService)

	log.Println("server is running on :" + cfg.Port)
	log.Fatal(e.Start(":" + cfg.Port))
}
