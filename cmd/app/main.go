package main

import (
	"context"
	"errors"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"
	"todos-go-backend/config"
	"todos-go-backend/pkg/adapter/resolver"
	"todos-go-backend/pkg/infrastructure/datastore"
	"todos-go-backend/pkg/infrastructure/graphql"
	"todos-go-backend/pkg/infrastructure/logger"
	"todos-go-backend/pkg/infrastructure/router"
	"todos-go-backend/pkg/infrastructure/router/middleware"
	"todos-go-backend/pkg/registry"

	entsql "entgo.io/ent/dialect/sql"
	"github.com/hashicorp/go-multierror"
	"go.uber.org/zap"
)

func main() {
	config.ReadConfig(config.ReadConfigOption{})

	l := logger.New(config.C.AppEnv, config.C.Log.Level)
	defer func() { _ = l.Sync() }()

	client := newDBClient(l)
	initDatabase(client, l)

	r := registry.New(datastore.WithDebug(client, l), l)

	srv, err := graphql.NewServer(resolver.NewSchema(r.NewController(), l), l)
	if err != nil {
		l.Fatal("Failed to build graphql schema", zap.Error(err))
	}

	e := router.New(srv, router.Options{
		Logger:         l,
		AllowedOrigins: config.C.Cors.AllowedOrigins,
		Metrics:        middleware.NewMetrics(config.C.AppName, client.DB()),
		Ping:           client.DB().PingContext,
	})

	go func() {
		l.Info("Starting server", zap.String("address", ":"+config.C.Server.Address))
		if err := e.Start(":" + config.C.Server.Address); err != nil && !errors.Is(err, http.ErrServerClosed) {
			l.Fatal("Failed to start server", zap.Error(err))
		}
	}()

	quit := make(chan os.Signal, 1)
	signal.Notify(quit, os.Interrupt, syscall.SIGTERM)
	<-quit

	timeout := time.Duration(config.C.Server.ShutdownTimeout) * time.Second
	ctx, cancel := context.WithTimeout(context.Background(), timeout)
	defer cancel()

	var result *multierror.Error
	if err := e.Shutdown(ctx); err != nil {
		result = multierror.Append(result, err)
	}
	if err := client.Close(); err != nil {
		result = multierror.Append(result, err)
	}
	if err := result.ErrorOrNil(); err != nil {
		l.Error("Failed to shut down cleanly", zap.Error(err))
		return
	}
	l.Info("Server stopped")
}

func newDBClient(l *zap.Logger) *entsql.Driver {
	client, err := datastore.NewClient()
	if err != nil {
		l.Fatal("Failed to open db connection", zap.Error(err))
	}
	return client
}

// initDatabase applies the schema and fills an empty store with example todos.
func initDatabase(client *entsql.Driver, l *zap.Logger) {
	ctx := context.Background()

	l.Info("Applying database schema")
	if err := datastore.Migrate(ctx, client); err != nil {
		l.Fatal("Failed to apply database schema", zap.Error(err))
	}

	if !config.C.Seed.Enabled {
		return
	}
	n, err := registry.New(client, l).NewSeeder().Seed(ctx)
	if err != nil {
		l.Fatal("Failed to seed database", zap.Error(err))
	}
	l.Info("Database initialized", zap.Int("seeded", n))
}
