// Package main initializes and starts the signup service HTTP server,
// setting up configuration, logging, the database connection, the
// credential repository, the auth service and the form handlers.
package main

import (
	"cmp"
	"fmt"

	nethttp "net/http"

	"go.uber.org/zap"

	"github.com/ashakirin/signup-service/internal/config"
	"github.com/ashakirin/signup-service/internal/db"
	"github.com/ashakirin/signup-service/internal/logger"
	"github.com/ashakirin/signup-service/internal/repository"
	"github.com/ashakirin/signup-service/internal/server/handler/http"
	"github.com/ashakirin/signup-service/internal/service"
)

var (
	// version holds the build version set via ldflags.
	version string
	// buildDate holds the build timestamp set via ldflags.
	buildDate string
)

func main() {
	// Parse command-line and environment configuration.
	options := config.Parse()

	// Print build metadata (or "N/A" if unset).
	fmt.Printf("Build version: %s\n", cmp.Or(version, "N/A"))
	fmt.Printf("Build date: %s\n", cmp.Or(buildDate, "N/A"))

	// Initialize structured logging.
	log := logger.New()
	defer func() { _ = log.Log.Sync() }()
	if err := log.Init(options.LogLevel); err != nil {
		log.Log.Fatal("failed to init logger", zap.Error(err))
	}
	zapLogger := log.Log

	// Initialize PostgreSQL connection and the users table.
	postgresDB, err := db.InitPostgres(options.DatabaseDSN)
	if err != nil {
		zapLogger.Fatal("cannot init database", zap.Error(err))
	}

	// Initialize the credential repository and the auth service.
	credRepo := repository.NewPostgresCredentialRepository(postgresDB)
	authService := service.NewAuthService(credRepo)

	// Create the form handlers and build the router.
	authHandler := &http.AuthHandler{AuthService: authService, Logger: zapLogger}
	router := http.NewRouter(authHandler, zapLogger)

	server := &nethttp.Server{
		Addr:    options.Address,
		Handler: router,
	}

	zapLogger.Info("starting HTTP server", zap.String("addr", options.Address))
	if err := server.ListenAndServe(); err != nil {
		zapLogger.Fatal("failed to start HTTP server", zap.Error(err))
	}
}
