package services

import (
	"testing"

	"github.com/shopspring/decimal"
	"gorm.io/gorm"

	"github.com/juninatt/trader-journal/internal/logger"
	"github.com/juninatt/trader-journal/internal/models"
	"github.com/juninatt/trader-journal/internal/repository"
	"github.com/juninatt/trader-journal/internal/testutil"
)

type testServices struct {
	db      *gorm.DB
	entries JournalEntryServicer
	trades  TradeServicer
	assets  AssetServicer
}

func setupServices(t *testing.T) *testServices {
	t.Helper()
	logger.Init("test")
	db := testutil.SetupTestDB(t)
	t.Cleanup(func() { testutil.TeardownTestDB(t, db) })

	audit := NewAuditService(db)
	entryRepo := repository.NewJournalEntryRepository(db)
	tradeRepo := repository.NewTradeRepository(db)
	assetRepo := repository.NewAssetRepository(db)
	return &testServices{
		db:      db,
		entries: NewJournalEntryService(entryRepo, audit),
		trades:  NewTradeService(entryRepo, tradeRepo, assetRepo, audit),
		assets:  NewAssetService(assetRepo, audit),
	}
}

func decPtr(s string) *decimal.Decimal {
	d := decimal.RequireFromString(s)
	return &d
}

func intPtr(n int) *int { return &n }

func (ts *testServices) createEntry(t *testing.T, input JournalEntryInput) *models.JournalEntry {
	t.Helper()
	entry, err := ts.entries.CreateEntry(input)
	testutil.AssertNoError(t, err)
	return entry
}

func (ts *testServices) auditCount(resourceType, action string) int64 {
	var count int64
	ts.db.Model(&models.AuditLog{}).Where("resource_type = ? AND action = ?", resourceType, action).Count(&count)
	return count
}
