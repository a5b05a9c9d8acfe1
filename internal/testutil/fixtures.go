package testutil

import (
	"fmt"
	"sync/atomic"
	"testing"
	"time"

	"github.com/shopspring/decimal"
	"gorm.io/gorm"

	"github.com/juninatt/trader-journal/internal/models"
)

// counter provides unique values across fixtures within a test run.
var counter atomic.Int64

func nextID() int64 {
	return counter.Add(1)
}

// Dec parses a decimal literal, panicking on malformed input.
func Dec(s string) decimal.Decimal {
	return decimal.RequireFromString(s)
}

// Day returns midnight UTC of the given calendar day.
func Day(year int, month time.Month, day int) time.Time {
	return time.Date(year, month, day, 0, 0, 0, 0, time.UTC)
}

// NewTestAsset builds an unsaved stock listed on NASDAQ with a unique ISIN.
func NewTestAsset() *models.Asset {
	n := nextID()
	return models.NewAsset(
		fmt.Sprintf("Test Corp %d", n),
		fmt.Sprintf("TC%d", n),
		fmt.Sprintf("US%010d", n),
		models.AssetClassStock,
		"USD",
		models.ExchangeNasdaq,
	)
}

// CreateTestAsset persists a NewTestAsset.
func CreateTestAsset(t *testing.T, db *gorm.DB) *models.Asset {
	t.Helper()

	asset := NewTestAsset()
	if err := db.Create(asset).Error; err != nil {
		t.Fatalf("failed to create test asset: %v", err)
	}
	return asset
}

// NewOpenTrade builds a trade of quantity units bought at price, with one
// snapshot on entry opened at price and closed at closePrice ("" for none).
func NewOpenTrade(t *testing.T, entry *models.JournalEntry, quantity int, price, closePrice string) (*models.Trade, *models.TradeSnapshot) {
	t.Helper()

	trade := models.NewTrade(quantity, Dec(price), decimal.Zero)
	snap := AddTestSnapshot(t, entry, trade, quantity, price, closePrice)
	return trade, snap
}

// AddTestSnapshot records a snapshot of trade on entry.
func AddTestSnapshot(t *testing.T, entry *models.JournalEntry, trade *models.Trade, remaining int, open, closePrice string) *models.TradeSnapshot {
	t.Helper()

	snap := models.NewTradeSnapshot(remaining, Dec(open))
	if closePrice != "" {
		snap.SetClosePrice(Dec(closePrice))
	}
	if err := trade.AddSnapshot(snap); err != nil {
		t.Fatalf("failed to attach snapshot to trade: %v", err)
	}
	if err := entry.AddTradeSnapshot(snap); err != nil {
		t.Fatalf("failed to attach snapshot to entry: %v", err)
	}
	return snap
}

// AddTestSale executes a fee-free sale on snap and lowers its remaining
// quantity by the units sold.
func AddTestSale(t *testing.T, snap *models.TradeSnapshot, quantity int, price string, at *models.TimeOfDay) *models.ExecutedSale {
	t.Helper()

	sale := models.NewExecutedSale(quantity, Dec(price), decimal.Zero, at)
	if err := snap.AddSale(sale); err != nil {
		t.Fatalf("failed to add sale: %v", err)
	}
	snap.RemainingQuantity = max(snap.RemainingQuantity-quantity, 0)
	return sale
}
