package main

import (
	"fmt"

	"github.com/juninatt/trader-journal/internal/config"
	"github.com/juninatt/trader-journal/internal/database"
	"github.com/juninatt/trader-journal/internal/repository"
	"github.com/juninatt/trader-journal/internal/services"
)

// app holds what the commands need. Fields left nil are filled from the
// environment on first use.
type app struct {
	cfg     *config.Config
	manager *database.Manager
	entries services.JournalEntryServicer
	audit   services.AuditServicer
}

func (a *app) config() (*config.Config, error) {
	if a.cfg != nil {
		return a.cfg, nil
	}
	cfg, err := config.Load()
	if err != nil {
		return nil, fmt.Errorf("load configuration: %w", err)
	}
	a.cfg = cfg
	return cfg, nil
}

func (a *app) database() (*database.Manager, error) {
	if a.manager != nil {
		return a.manager, nil
	}
	cfg, err := a.config()
	if err != nil {
		return nil, err
	}
	manager, err := database.NewManager(database.NewConfig(cfg))
	if err != nil {
		return nil, fmt.Errorf("open database: %w", err)
	}
	a.manager = manager
	return manager, nil
}

func (a *app) journal() (services.JournalEntryServicer, error) {
	if a.entries != nil {
		return a.entries, nil
	}
	manager, err := a.database()
	if err != nil {
		return nil, err
	}
	if err := manager.Migrate(); err != nil {
		return nil, fmt.Errorf("migrate database: %w", err)
	}
	db := manager.DB()
	a.audit = services.NewAuditService(db)
	a.entries = services.NewJournalEntryService(repository.NewJournalEntryRepository(db), a.audit)
	return a.entries, nil
}

func (a *app) auditTrail() (services.AuditServicer, error) {
	if a.audit == nil {
		if _, err := a.journal(); err != nil {
			return nil, err
		}
	}
	return a.audit, nil
}

func (a *app) close() error {
	if a.manager == nil {
		return nil
	}
	return a.manager.Close()
}
