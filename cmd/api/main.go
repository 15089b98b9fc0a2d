package main

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/joho/godotenv"

	"github.com/MrJamesThe3rd/lendbook/internal/auth"
	"github.com/MrJamesThe3rd/lendbook/internal/config"
	"github.com/MrJamesThe3rd/lendbook/internal/credit"
	creditStore "github.com/MrJamesThe3rd/lendbook/internal/credit/store"
	"github.com/MrJamesThe3rd/lendbook/internal/database"
	"github.com/MrJamesThe3rd/lendbook/internal/guarantor"
	guarantorStore "github.com/MrJamesThe3rd/lendbook/internal/guarantor/store"
	lendbookHttp "github.com/MrJamesThe3rd/lendbook/internal/http"
	creditHandler "github.com/MrJamesThe3rd/lendbook/internal/http/credit"
	guarantorHandler "github.com/MrJamesThe3rd/lendbook/internal/http/guarantor"
	importHandler "github.com/MrJamesThe3rd/lendbook/internal/http/importcsv"
	loanHandler "github.com/MrJamesThe3rd/lendbook/internal/http/loan"
	"github.com/MrJamesThe3rd/lendbook/internal/importer"
	"github.com/MrJamesThe3rd/lendbook/internal/loan"
	loanStore "github.com/MrJamesThe3rd/lendbook/internal/loan/store"
	"github.com/MrJamesThe3rd/lendbook/internal/statement"
)

func main() {
	_ = godotenv.Load()

	cfg, err := config.Load()
	if err != nil {
		slog.Error("failed to load config", "error", err)
		os.Exit(1)
	}

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	db, err := database.New(ctx, cfg.ConnectionString(), database.Pool{
		MaxOpenConns:    cfg.DB.MaxOpenConns,
		MaxIdleConns:    cfg.DB.MaxIdleConns,
		ConnMaxLifetime: cfg.DB.ConnMaxLifetime,
	})
	if err != nil {
		slog.Error("failed to connect to database", "error", err)
		os.Exit(1)
	}
	defer db.Close()

	var (
		loanService      = loan.NewService(loanStore.New(db))
		creditService    = credit.NewService(creditStore.New(db))
		guarantorService = guarantor.NewService(guarantorStore.New(db), cfg.Guarantor)
		importService    = importer.NewService(loanService)
		statementService = statement.NewService(loanService)
	)

	var (
		loanH      = loanHandler.NewHandler(loanService, statementService)
		creditH    = creditHandler.NewHandler(creditService)
		guarantorH = guarantorHandler.NewHandler(guarantorService, loanService)
		importH    = importHandler.NewHandler(importService)
	)

	router := lendbookHttp.New(lendbookHttp.Options{
		Authenticator:  auth.NewAuthenticator(cfg.Auth.JWTSecret),
		AllowedOrigins: cfg.CORS.AllowedOrigins,
		Timeout:        cfg.Server.Timeout,
	}, loanH, creditH, guarantorH, importH)

	srv := &http.Server{
		Addr:         fmt.Sprintf(":%d", cfg.App.Port),
		Handler:      router,
		ReadTimeout:  cfg.Server.ReadTimeout,
		WriteTimeout: cfg.Server.WriteTimeout,
		IdleTimeout:  cfg.Server.IdleTimeout,
	}

	go func() {
		<-ctx.Done()

		shutdownCtx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
		defer cancel()

		if err := srv.Shutdown(shutdownCtx); err != nil {
			slog.Error("shutdown failed", "error", err)
		}
	}()

	slog.Info("starting server", "app", cfg.App.Name, "addr", srv.Addr)

	if err := srv.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
		slog.Error("server failed", "error", err)
		os.Exit(1)
	}
}
