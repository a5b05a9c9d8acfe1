package testutil_test

import (
	"testing"
	"time"

	"github.com/juninatt/trader-journal/internal/models"
	"github.com/juninatt/trader-journal/internal/testutil"
)

func TestSetupTestDB(t *testing.T) {
	db := testutil.SetupTestDB(t)
	defer testutil.TeardownTestDB(t, db)

	// Verify all tables exist by doing a simple count query on each model.
	var count int64
	for _, table := range []string{"assets", "trades", "journal_entries", "trade_snapshots", "executed_sales", "audit_logs"} {
		if err := db.Table(table).Count(&count).Error; err != nil {
			t.Errorf("table %q should exist after migration: %v", table, err)
		}
	}
}

func TestSetupTestDBIsolated(t *testing.T) {
	first := testutil.SetupTestDB(t)
	defer testutil.TeardownTestDB(t, first)
	testutil.CreateTestAsset(t, first)

	second := testutil.SetupTestDB(t)
	defer testutil.TeardownTestDB(t, second)

	var count int64
	second.Model(&models.Asset{}).Count(&count)
	if count != 0 {
		t.Errorf("expected a fresh database, found %d assets", count)
	}
}

func TestFixtures(t *testing.T) {
	db := testutil.SetupTestDB(t)
	defer testutil.TeardownTestDB(t, db)

	asset := testutil.CreateTestAsset(t, db)
	if asset.ID == "" {
		t.Fatal("asset should have an ID")
	}
	if len(asset.ISIN) != 12 {
		t.Errorf("expected a 12 character ISIN, got %q", asset.ISIN)
	}

	entry := models.NewJournalEntry(testutil.Day(2024, time.March, 1), "fixture")
	trade, snap := testutil.NewOpenTrade(t, entry, 10, "100", "105")
	if snap.TradeID != trade.ID || snap.JournalEntryID != entry.ID {
		t.Error("snapshot should reference both its trade and its entry")
	}

	sale := testutil.AddTestSale(t, snap, 4, "105", models.At(15, 30))
	testutil.AssertDecimal(t, "gross gain", sale.GrossGain, "420")
}
