package main

import (
	"fmt"

	"sellos/internal/config"
	"sellos/internal/database"
	"sellos/internal/logger"
	"sellos/internal/repository"
	"sellos/internal/service"
)

type services struct {
	catalog service.CatalogService
	stamps  service.StampService
}

// logPublisher stands in for the websocket hub; nobody subscribes to a CLI run.
type logPublisher struct{}

func (logPublisher) Publish(event string, _ interface{}) {
	log := logger.WithComponent("cli")
	log.Debug().Str("event", event).Msg("event not broadcast")
}

func openServices() (*services, error) {
	cfg, err := config.Load()
	if err != nil {
		return nil, fmt.Errorf("failed to load config: %w", err)
	}
	if err := logger.Setup(logger.LogConfig{Level: cfg.Log.Level, Format: cfg.Log.Format, Output: "stderr"}); err != nil {
		return nil, fmt.Errorf("failed to set up logger: %w", err)
	}

	db, err := database.NewConnection(cfg.DB.DSN(), database.PoolConfig{MaxOpen: 2, MaxIdle: 1})
	if err != nil {
		return nil, fmt.Errorf("failed to connect to database: %w", err)
	}

	clientRepo := repository.NewClientRepository(db)
	audit := service.NewAuditService(repository.NewAuditRepository(db))
	catalog := service.NewCatalogService(repository.NewCatalogRepository(db), clientRepo, audit)

	return &services{
		catalog: catalog,
		stamps: service.NewStampService(
			repository.NewTransactionManager(db),
			repository.NewStampRecordRepository(db),
			clientRepo,
			catalog,
			service.NewPartyService(clientRepo),
			audit,
			logPublisher{},
			nil,
			service.StampServiceConfig{Location: cfg.Form.Location()},
		),
	}, nil
}
