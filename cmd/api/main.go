package main

import (
	"context"
	"errors"
	"net/http"
	"os"

	_ "github.com/membercore/rbac-member-system/docs"
	"github.com/membercore/rbac-member-system/internal/api"
	"github.com/membercore/rbac-member-system/internal/core/service"
	"github.com/membercore/rbac-member-system/internal/infrastructure/config"
	mongostore "github.com/membercore/rbac-member-system/internal/infrastructure/db/mongo"
	"github.com/membercore/rbac-member-system/pkg/logger"
)

// @title        RBAC Member System API
// @version      1.0
// @description  Credential issuance and role-based access control API.
// @BasePath     /
//
// @securityDefinitions.apikey  BearerAuth
// @in                          header
// @name                        Authorization
func main() {
	log := logger.Init(logger.Options{
		Level:  os.Getenv("LOG_LEVEL"),
		Pretty: os.Getenv("ENV") != "production",
	})

	ctx := context.Background()

	cfg, err := config.Load(ctx)
	if err != nil {
		log.Fatal().Err(err).Msg("failed to load configuration")
	}

	client, db, err := mongostore.Connect(ctx, mongostore.Config{
		URI:      cfg.Mongo.URI,
		Database: cfg.Mongo.Database,
	})
	if err != nil {
		log.Fatal().Err(err).Msg("failed to connect to mongodb")
	}
	defer func() {
		_ = client.Disconnect(ctx)
	}()

	if err := mongostore.EnsureIndexes(ctx, db); err != nil {
		log.Fatal().Err(err).Msg("failed to create indexes")
	}

	if err := service.SeedRoles(ctx, mongostore.NewRoleRepository(db), log); err != nil {
		log.Fatal().Err(err).Msg("failed to seed roles")
	}

	e := api.NewRouter(db, cfg, log)

	log.Info().Str("port", cfg.Port).Str("env", cfg.Env).Msg("starting server")
	if err := e.Start(":" + cfg.Port); err != nil && !errors.Is(err, http.ErrServerClosed) {
		log.Fatal().Err(err).Msg("server stopped")
	}
}
