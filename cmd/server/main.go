package main

import (
	"context"
	"database/sql"
	"errors"
	"log/slog"
	stdhttp "net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	_ "github.com/lib/pq"

	"github.com/Mtar786/votingApp/internal/adapters/handler/http"
	"github.com/Mtar786/votingApp/internal/adapters/repository/postgres"
	"github.com/Mtar786/votingApp/internal/config"
	"github.com/Mtar786/votingApp/internal/core/services"
)

func main() {
	config.LoadEnv()

	db, err := sql.Open("postgres", config.DBConnString())
	if err != nil {
		slog.Error("database connection failed", "error", err)
		os.Exit(1)
	}
	defer db.Close()

	if err := db.Ping(); err != nil {
		slog.Error("database ping failed", "error", err)
		os.Exit(1)
	}

	pollRepo := postgres.NewPollRepository(db)
	userRepo := postgres.NewUserRepository(db)

	pollService := services.NewPollService(pollRepo)
	authService := services.NewAuthService(userRepo, config.MustGet("JWT_SECRET"))

	pollHandler := http.NewPollHandler(pollService)
	voteHandler := http.NewVoteHandler(pollService)
	authHandler := http.NewAuthHandler(authService)
	handler := http.NewHandler(pollHandler, voteHandler, authHandler, authService)

	addr := "0.0.0.0:" + config.Get("PORT", "8080")
	server := &stdhttp.Server{
		Addr:         addr,
		Handler:      handler,
		ReadTimeout:  10 * time.Second,
		WriteTimeout: 30 * time.Second,
	}

	ctx, stop := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer stop()

	go func() {
		slog.Info("server listening", "addr", addr)
		if err := server.ListenAndServe(); err != nil && !errors.Is(err, stdhttp.ErrServerClosed) {
			slog.Error("server failed", "error", err)
			os.Exit(1)
		}
	}()

	<-ctx.Done()
	slog.Info("gracefully shutting down")

	shutdownCtx, cancel := context.WithTimeout(context.Background(), 30*time.Second)
	defer cancel()

	if err := server.Shutdown(shutdownCtx); err != nil {
		slog.Error("shutdown failed", "error", err)
		os.Exit(1)
	}
}
