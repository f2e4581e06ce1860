package main

import (
	"context"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/go-chi/chi/v5"
	chimw "github.com/go-chi/chi/v5/middleware"
	"github.com/rs/zerolog/log"

	"github.com/campuscard/mealcard-api/internal/config"
	"github.com/campuscard/mealcard-api/internal/domain/admin"
	"github.com/campuscard/mealcard-api/internal/domain/auth"
	"github.com/campuscard/mealcard-api/internal/domain/card"
	"github.com/campuscard/mealcard-api/internal/domain/menu"
	"github.com/campuscard/mealcard-api/internal/domain/recharge"
	"github.com/campuscard/mealcard-api/internal/domain/stats"
	"github.com/campuscard/mealcard-api/internal/middleware"
	"github.com/campuscard/mealcard-api/internal/pkg/jwt"
	"github.com/campuscard/mealcard-api/internal/pkg/logger"
	pkgresponse "github.com/campuscard/mealcard-api/internal/pkg/response"
	"github.com/campuscard/mealcard-api/internal/store"
)

func main() {
	cfg := config.Load()
	logger.Init(logger.Config{Level: cfg.LogLevel, Environment: cfg.Env})

	log.Info().
		Str("env", cfg.Env).
		Str("port", cfg.Port).
		Msg("Starting Campus Card API")

	// The ledger store lives for the lifetime of the process; it is seeded
	// here and torn down with it. There is no durable persistence.
	ledger := store.New()
	if cfg.SeedDemo {
		if err := ledger.Seed(); err != nil {
			log.Fatal().Err(err).Msg("Failed to seed demo data")
		}
		log.Info().Msg("Demo data seeded")
	}

	jwtService := jwt.NewService(cfg.JWTSecret, cfg.JWTAccessTTL)

	// ---------- Services ----------
	authService := auth.NewService(ledger, jwtService)
	cardService := card.NewService(ledger)
	rechargeService := recharge.NewService(ledger)
	statsService := stats.NewService(ledger)

	// ---------- Handlers ----------
	authHandler := auth.NewHandler(authService)
	cardHandler := card.NewHandler(cardService)
	rechargeHandler := recharge.NewHandler(rechargeService)
	menuHandler := menu.NewHandler(ledger)
	statsHandler := stats.NewHandler(statsService)
	adminHandler := admin.NewHandler(ledger)

	authMiddleware := middleware.Auth(jwtService)

	// ---------- Router ----------
	r := chi.NewRouter()

	r.Use(chimw.RealIP)
	r.Use(middleware.RequestID)
	r.Use(middleware.Logger)
	r.Use(middleware.Recover)
	r.Use(middleware.CORSHandler(cfg.AllowedOrigins))

	r.Get("/health", func(w http.ResponseWriter, r *http.Request) {
		pkgresponse.OK(w, map[string]string{
			"status":  "ok",
			"version": "1.0.0",
		})
	})

	r.Route("/api/v1", func(r chi.Router) {
		r.Mount("/auth", authHandler.Routes())
		r.Mount("/recharges", rechargeHandler.Routes(authMiddleware))

		r.Route("/students", func(r chi.Router) {
			r.Use(authMiddleware)
			r.Use(middleware.RequireStudent())
			r.Get("/me/dashboard", cardHandler.Dashboard)
		})

		r.Group(func(r chi.Router) {
			r.Use(authMiddleware)
			r.Use(middleware.RequireCashier())
			r.Get("/meals", menuHandler.ListActive)
			r.Get("/cards/lookup", cardHandler.Lookup)
			r.Post("/purchases", cardHandler.Charge)
		})

		r.Mount("/admin/stats", statsHandler.Routes(authMiddleware, middleware.RequireAdmin()))
		r.Mount("/admin", adminHandler.Routes(authMiddleware, middleware.RequireAdmin()))
	})

	server := &http.Server{
		Addr:         ":" + cfg.Port,
		Handler:      r,
		ReadTimeout:  15 * time.Second,
		WriteTimeout: 15 * time.Second,
		IdleTimeout:  60 * time.Second,
	}

	go func() {
		log.Info().Str("addr", server.Addr).Msg("HTTP server listening")
		if err := server.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			log.Fatal().Err(err).Msg("HTTP server error")
		}
	}()

	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit

	log.Info().Msg("Shutting down server...")

	ctx, cancel := context.WithTimeout(context.Background(), 30*time.Second)
	defer cancel()

	if err := server.Shutdown(ctx); err != nil {
		log.Fatal().Err(err).Msg("Server forced to shutdown")
	}

	log.Info().Msg("Server exited properly")
}
