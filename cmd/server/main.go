package main

import (
	"context"
	"log"

	"github.com/Rosanadeaibes/my-notes/config"
	"github.com/Rosanadeaibes/my-notes/db"
	authhandler "github.com/Rosanadeaibes/my-notes/internal/auth/handler"
	authrepo "github.com/Rosanadeaibes/my-notes/internal/auth/repository/postgres"
	authservice "github.com/Rosanadeaibes/my-notes/internal/auth/service"
	"github.com/Rosanadeaibes/my-notes/internal/middleware"
	notehandler "github.com/Rosanadeaibes/my-notes/internal/note/handler"
	noterepo "github.com/Rosanadeaibes/my-notes/internal/note/repository/postgres"
	noteservice "github.com/Rosanadeaibes/my-notes/internal/note/service"
	"github.com/Rosanadeaibes/my-notes/internal/response"
	"github.com/gofiber/fiber/v2"
	"github.com/gofiber/fiber/v2/middleware/cors"
	"github.com/gofiber/fiber/v2/middleware/logger"
	"github.com/gofiber/fiber/v2/middleware/recover"
)

func main() {
	cfg := config.Load()

	dbPool, err := db.NewPostgresPool(context.Background(), cfg.DBURL)
	if err != nil {
		log.Fatalf("failed to set up database pool: %v", err)
	}
	defer dbPool.Close()

	tokenService := authservice.NewTokenService(cfg.AccessTokenSecret, cfg.RefreshTokenSecret, cfg.AccessExpiryMin, cfg.RefreshExpiryMin)

	userRepo := authrepo.NewPostgresUserRepository(dbPool)
	userService := authservice.NewUserService(userRepo, tokenService)
	authHandler := authhandler.NewAuthHandler(userService)

	noteRepo := noterepo.NewPostgresNoteRepository(dbPool)
	noteService := noteservice.NewNoteService(noteRepo)
	noteHandler := notehandler.NewNoteHandler(noteService)

	app := fiber.New(fiber.Config{
		ErrorHandler: response.ErrorHandler,
	})
	app.Use(recover.New())
	app.Use(logger.New())
	app.Use(cors.New(cors.Config{
		AllowOrigins:     cfg.ClientOrigin,
		AllowCredentials: true,
	}))

	authhandler.RegisterRoutes(app, authHandler)
	notehandler.RegisterRoutes(app, noteHandler, middleware.RequireAuth(tokenService))

	log.Printf("Server is running on port %s", cfg.Port)
	if err := app.Listen(":" + cfg.Port); err != nil {
		log.Fatalf("server stopped: %v", err)
	}
}
