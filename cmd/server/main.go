package main

import (
	"context"
	"log"
	"log/slog"
	"os"

	"movieapp_backend/internal/app/router"
	authadapters "movieapp_backend/internal/feature/auth/adapters"
	authhandler "movieapp_backend/internal/feature/auth/transport/handler"
	authusecase "movieapp_backend/internal/feature/auth/usecase"
	infradb "movieapp_backend/internal/platform/db"
)

func main() {
	// db
	db := infradb.OpenDB()

	// Repository
	accountRepo := authadapters.NewAccountMySQL(db)

	// Schema bootstrap is best effort: a failure here leaves the service
	// running degraded and surfaces on the first store operation instead.
	if err := accountRepo.EnsureSchema(context.Background()); err != nil {
		slog.Warn("schema bootstrap failed, running degraded", "error", err)
	} else {
		slog.Info("database table initialized successfully")
	}

	// Usecase
	authUC := authusecase.NewAuthUsecase(accountRepo)

	// Handler
	authH := authhandler.NewAuthHandler(authUC)

	r := router.NewRouter(authH)

	port := os.Getenv("PORT")
	if port == "" {
		port = "8080"
	}
	slog.Info("server starting", "addr", ":"+port)
	if err := r.Run(":" + port); err != nil {
		log.Fatal(err)
	}
}
