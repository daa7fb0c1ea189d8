package main

import (
	"context"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/gin-gonic/gin"

	"sayarti/internal/auth"
	intconfig "sayarti/internal/config"
	"sayarti/internal/fonts"
	router "sayarti/internal/http"
	"sayarti/internal/http/handlers"
)

func main() {
	env := intconfig.LoadEnv()
	log := intconfig.ConfigureLogger(env)

	if env.GinMode != "" {
		gin.SetMode(env.GinMode)
	}

	if _, err := intconfig.ConnectDB(env.DBDSN); err != nil {
		log.WithError(err).Fatal("failed to connect to database")
	}
	defer intconfig.CloseDB()

	// resolved once before any request is served, then shared read-only
	font := fonts.Resolve(log, env.FontDir)

	api := &handlers.API{
		Env:  env,
		Auth: auth.NewService(env.JWTSecret),
		Font: font,
		Log:  log,
	}
	r := router.NewRouter(api, log)

	srv := &http.Server{
		Addr:              env.AppAddr,
		Handler:           r,
		ReadHeaderTimeout: 10 * time.Second,
		ReadTimeout:       20 * time.Second,
		WriteTimeout:      60 * time.Second,
		IdleTimeout:       60 * time.Second,
	}

	go func() {
		log.Infof("server listening on %s", env.AppAddr)
		if err := srv.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			log.WithError(err).Fatal("server failed")
		}
	}()

	quit := make(chan os.Signal, 1)
	signal.Notify(quit, os.Interrupt, syscall.SIGTERM)
	<-quit

	log.Info("shutting down server...")

	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()

	if err := srv.Shutdown(ctx); err != nil {
		log.WithError(err).Fatal("server shutdown failed")
	}

	log.Info("server stopped cleanly")
}
