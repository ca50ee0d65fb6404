package main

import (
	"context"
	"errors"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/pinora-app/pinora-backend/api/middleware"
	"github.com/pinora-app/pinora-backend/api/route"
	"github.com/pinora-app/pinora-backend/bootstrap"
	"github.com/pinora-app/pinora-backend/logging"
	"github.com/pinora-app/pinora-backend/mongo"
)

func main() {
	app, err := bootstrap.App()
	if err != nil {
		logging.Fatal().Err(err).Msg("failed to start application")
	}
	defer app.CloseDBConnection()

	env := app.Env
	db := app.Database()
	mongo.CreateIndexes(db)

	timeout := time.Duration(env.ContextTimeout) * time.Second

	if !env.IsDevelopment() {
		gin.SetMode(gin.ReleaseMode)
	}
	engine := gin.New()
	engine.Use(gin.Recovery())

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	limiter := middleware.NewRateLimiter(env.RateLimitRPS, env.RateLimitBurst)
	go limiter.Cleanup(ctx, 10*time.Minute)

	route.Setup(env, timeout, db, app.MediaHost, limiter, engine)

	srv := &http.Server{
		Addr:              env.ServerAddress,
		Handler:           engine,
		ReadHeaderTimeout: 10 * time.Second,
	}

	go func() {
		logging.Info().Str("addr", env.ServerAddress).Str("ranking_mode", env.RelatedRankingMode).Msg("server listening")
		if err := srv.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			logging.Error().Err(err).Msg("server stopped unexpectedly")
			stop()
		}
	}()

	<-ctx.Done()
	logging.Info().Msg("shutting down")

	shutdownCtx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()
	if err := srv.Shutdown(shutdownCtx); err != nil {
		logging.Error().Err(err).Msg("graceful shutdown failed")
	}
}
