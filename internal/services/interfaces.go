package services

import (
	"time"

	"github.com/shopspring/decimal"

	"github.com/juninatt/trader-journal/internal/analysis"
	"github.com/juninatt/trader-journal/internal/models"
	"github.com/juninatt/trader-journal/internal/pagination"
)

// JournalEntryInput holds the editable fields of a journal entry.
type JournalEntryInput struct {
	Date            time.Time
	Comment         string
	Notes           string
	CashBalance     decimal.Decimal
	InvestedCapital *decimal.Decimal
}

// JournalEntryServicer defines the contract for journal entry business logic.
type JournalEntryServicer interface {
	CreateEntry(input JournalEntryInput) (*models.JournalEntry, error)
	UpdateEntry(id string, input JournalEntryInput) (*models.JournalEntry, error)
	GetEntry(id string) (*models.JournalEntry, error)
	GetLatestEntry() (*models.JournalEntry, error)
	ListEntries(page pagination.PageRequest) (*pagination.PageResponse[*models.JournalEntry], error)
	ListAllEntries() ([]*models.JournalEntry, error)
	DeleteEntry(id string) error
	GetTotalChangeForEntry(id string) (decimal.Decimal, error)
	AnalyzeEntry(id string) (*analysis.Summary, error)
}

// OpenTradeInput describes a new position and its first snapshot.
// OpenPrice defaults to EntryPrice and RemainingQuantity to Quantity.
type OpenTradeInput struct {
	AssetID           *string
	Label             string
	Quantity          int
	EntryPrice        decimal.Decimal
	BuyFee            decimal.Decimal
	EntryTime         *models.TimeOfDay
	Notes             string
	OpenPrice         *decimal.Decimal
	ClosePrice        *decimal.Decimal
	RemainingQuantity *int
}

// SnapshotInput records a day's state of an existing trade.
type SnapshotInput struct {
	TradeID           string
	RemainingQuantity int
	OpenPrice         decimal.Decimal
	ClosePrice        *decimal.Decimal
	Notes             string
}

// SaleInput records an executed sale. When RemainingQuantity is nil the
// snapshot's remaining quantity drops by the units sold.
type SaleInput struct {
	Quantity          int
	SellPrice         decimal.Decimal
	SellFee           decimal.Decimal
	SellTime          *models.TimeOfDay
	RemainingQuantity *int
}

// TradeServicer defines the contract for trade ledger business logic.
type TradeServicer interface {
	OpenTrade(entryID string, input OpenTradeInput) (*models.Trade, error)
	RecordSnapshot(entryID string, input SnapshotInput) (*models.TradeSnapshot, error)
	RecordSale(entryID, snapshotID string, input SaleInput) (*models.ExecutedSale, error)
	RemoveSnapshot(entryID, snapshotID string) error
	GetTrade(id string) (*models.Trade, error)
	DeleteTrade(id string) error
}

// AssetInput holds the editable fields of an asset.
type AssetInput struct {
	Name                string
	Ticker              string
	ISIN                string
	AssetClass          models.AssetClass
	Currency            string
	Exchange            models.Exchange
	LeverageRatio       *decimal.Decimal
	IsInvestmentCompany bool
	DividendYield       *decimal.Decimal
	Sectors             []models.Sector
	Industries          []models.Industry
}

// AssetServicer defines the contract for asset reference data.
type AssetServicer interface {
	CreateAsset(input AssetInput) (*models.Asset, error)
	UpdateAsset(id string, input AssetInput) (*models.Asset, error)
	GetAsset(id string) (*models.Asset, error)
	ListAssets() ([]*models.Asset, error)
}

// AuditFilter narrows an audit history query. Empty fields match everything.
type AuditFilter struct {
	ResourceType string
	ResourceID   string
	Limit        int
}

// AuditServicer records and reads back the journal's change history.
type AuditServicer interface {
	Log(action, resourceType, resourceID string, changes map[string]any)
	History(filter AuditFilter) ([]models.AuditLog, error)
}
