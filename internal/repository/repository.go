// Package repository persists journal aggregates with GORM. Lookups report a
// miss as (nil, false, nil); only storage failures are errors.
package repository

import (
	"strings"
	"time"

	"github.com/juninatt/trader-journal/internal/models"
	"github.com/juninatt/trader-journal/internal/pagination"
)

// JournalEntryRepository stores whole journal entry aggregates: the entry,
// the trades it references, its snapshots and their sales.
type JournalEntryRepository interface {
	Save(entry *models.JournalEntry) error
	FindByID(id string) (*models.JournalEntry, bool, error)
	FindByDate(date time.Time) (*models.JournalEntry, bool, error)
	FindAll() ([]*models.JournalEntry, error)
	FindPage(page pagination.PageRequest) (*pagination.PageResponse[*models.JournalEntry], error)
	FindLatestEntry() (*models.JournalEntry, bool, error)
	Remove(entry *models.JournalEntry) (bool, error)
}

// TradeRepository loads and removes trades with their full snapshot history.
// Save writes only the trade row; snapshots are saved with their entry.
type TradeRepository interface {
	Save(trade *models.Trade) error
	FindByID(id string) (*models.Trade, bool, error)
	Remove(trade *models.Trade) (bool, error)
}

// AssetRepository stores shared asset reference data.
type AssetRepository interface {
	Create(asset *models.Asset) error
	Update(asset *models.Asset) error
	FindByID(id string) (*models.Asset, bool, error)
	FindByISIN(isin string) (*models.Asset, bool, error)
	FindAll() ([]*models.Asset, error)
}

func isUniqueConstraintError(err error) bool {
	msg := err.Error()
	return strings.Contains(msg, "UNIQUE constraint failed") || // SQLite
		strings.Contains(msg, "duplicate key value violates unique constraint") // PostgreSQL
}
