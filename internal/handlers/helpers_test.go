package handlers

import (
	"encoding/json"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/gin-gonic/gin"
	"github.com/shopspring/decimal"

	"github.com/juninatt/trader-journal/internal/analysis"
	"github.com/juninatt/trader-journal/internal/logger"
	"github.com/juninatt/trader-journal/internal/models"
	"github.com/juninatt/trader-journal/internal/pagination"
	"github.com/juninatt/trader-journal/internal/services"
	"github.com/juninatt/trader-journal/internal/validator"
)

// --- mock services ---

type mockEntryService struct {
	createEntryFn    func(input services.JournalEntryInput) (*models.JournalEntry, error)
	updateEntryFn    func(id string, input services.JournalEntryInput) (*models.JournalEntry, error)
	getEntryFn       func(id string) (*models.JournalEntry, error)
	getLatestEntryFn func() (*models.JournalEntry, error)
	listEntriesFn    func(page pagination.PageRequest) (*pagination.PageResponse[*models.JournalEntry], error)
	deleteEntryFn    func(id string) error
	analyzeEntryFn   func(id string) (*analysis.Summary, error)
}

func (m *mockEntryService) CreateEntry(input services.JournalEntryInput) (*models.JournalEntry, error) {
	if m.createEntryFn != nil {
		return m.createEntryFn(input)
	}
	return models.NewJournalEntry(input.Date, input.Comment), nil
}

func (m *mockEntryService) UpdateEntry(id string, input services.JournalEntryInput) (*models.JournalEntry, error) {
	if m.updateEntryFn != nil {
		return m.updateEntryFn(id, input)
	}
	return models.NewJournalEntry(input.Date, input.Comment), nil
}

func (m *mockEntryService) GetEntry(id string) (*models.JournalEntry, error) {
	if m.getEntryFn != nil {
		return m.getEntryFn(id)
	}
	return &models.JournalEntry{}, nil
}

func (m *mockEntryService) GetLatestEntry() (*models.JournalEntry, error) {
	if m.getLatestEntryFn != nil {
		return m.getLatestEntryFn()
	}
	return &models.JournalEntry{}, nil
}

func (m *mockEntryService) ListEntries(page pagination.PageRequest) (*pagination.PageResponse[*models.JournalEntry], error) {
	if m.listEntriesFn != nil {
		return m.listEntriesFn(page)
	}
	resp := pagination.NewPageResponse([]*models.JournalEntry{}, pagination.PageRequest{Page: 1, PageSize: 20}, 0)
	return &resp, nil
}

func (m *mockEntryService) ListAllEntries() ([]*models.JournalEntry, error) {
	return []*models.JournalEntry{}, nil
}

func (m *mockEntryService) DeleteEntry(id string) error {
	if m.deleteEntryFn != nil {
		return m.deleteEntryFn(id)
	}
	return nil
}

func (m *mockEntryService) GetTotalChangeForEntry(_ string) (decimal.Decimal, error) {
	return decimal.Zero, nil
}

func (m *mockEntryService) AnalyzeEntry(id string) (*analysis.Summary, error) {
	if m.analyzeEntryFn != nil {
		return m.analyzeEntryFn(id)
	}
	return &analysis.Summary{JournalEntryID: id}, nil
}

var _ services.JournalEntryServicer = (*mockEntryService)(nil)

type mockTradeService struct {
	openTradeFn      func(entryID string, input services.OpenTradeInput) (*models.Trade, error)
	recordSnapshotFn func(entryID string, input services.SnapshotInput) (*models.TradeSnapshot, error)
	recordSaleFn     func(entryID, snapshotID string, input services.SaleInput) (*models.ExecutedSale, error)
	removeSnapshotFn func(entryID, snapshotID string) error
	getTradeFn       func(id string) (*models.Trade, error)
	deleteTradeFn    func(id string) error
}

func (m *mockTradeService) OpenTrade(entryID string, input services.OpenTradeInput) (*models.Trade, error) {
	if m.openTradeFn != nil {
		return m.openTradeFn(entryID, input)
	}
	return models.NewTrade(input.Quantity, input.EntryPrice, input.BuyFee), nil
}

func (m *mockTradeService) RecordSnapshot(entryID string, input services.SnapshotInput) (*models.TradeSnapshot, error) {
	if m.recordSnapshotFn != nil {
		return m.recordSnapshotFn(entryID, input)
	}
	return models.NewTradeSnapshot(input.RemainingQuantity, input.OpenPrice), nil
}

func (m *mockTradeService) RecordSale(entryID, snapshotID string, input services.SaleInput) (*models.ExecutedSale, error) {
	if m.recordSaleFn != nil {
		return m.recordSaleFn(entryID, snapshotID, input)
	}
	return models.NewExecutedSale(input.Quantity, input.SellPrice, input.SellFee, input.SellTime), nil
}

func (m *mockTradeService) RemoveSnapshot(entryID, snapshotID string) error {
	if m.removeSnapshotFn != nil {
		return m.removeSnapshotFn(entryID, snapshotID)
	}
	return nil
}

func (m *mockTradeService) GetTrade(id string) (*models.Trade, error) {
	if m.getTradeFn != nil {
		return m.getTradeFn(id)
	}
	return &models.Trade{}, nil
}

func (m *mockTradeService) DeleteTrade(id string) error {
	if m.deleteTradeFn != nil {
		return m.deleteTradeFn(id)
	}
	return nil
}

var _ services.TradeServicer = (*mockTradeService)(nil)

type mockAssetService struct {
	createAssetFn func(input services.AssetInput) (*models.Asset, error)
	updateAssetFn func(id string, input services.AssetInput) (*models.Asset, error)
	getAssetFn    func(id string) (*models.Asset, error)
	listAssetsFn  func() ([]*models.Asset, error)
}

func (m *mockAssetService) CreateAsset(input services.AssetInput) (*models.Asset, error) {
	if m.createAssetFn != nil {
		return m.createAssetFn(input)
	}
	return models.NewAsset(input.Name, input.Ticker, input.ISIN, input.AssetClass, input.Currency, input.Exchange), nil
}

func (m *mockAssetService) UpdateAsset(id string, input services.AssetInput) (*models.Asset, error) {
	if m.updateAssetFn != nil {
		return m.updateAssetFn(id, input)
	}
	return &models.Asset{}, nil
}

func (m *mockAssetService) GetAsset(id string) (*models.Asset, error) {
	if m.getAssetFn != nil {
		return m.getAssetFn(id)
	}
	return &models.Asset{}, nil
}

func (m *mockAssetService) ListAssets() ([]*models.Asset, error) {
	if m.listAssetsFn != nil {
		return m.listAssetsFn()
	}
	return nil, nil
}

var _ services.AssetServicer = (*mockAssetService)(nil)

// --- test helpers ---

func init() {
	gin.SetMode(gin.TestMode)
	logger.Init("test")
	validator.Register()
}

func doRequest(r *gin.Engine, method, path, body string) *httptest.ResponseRecorder {
	req := httptest.NewRequest(method, path, strings.NewReader(body))
	req.Header.Set("Content-Type", "application/json")
	rec := httptest.NewRecorder()
	r.ServeHTTP(rec, req)
	return rec
}

func parseJSON(t *testing.T, rec *httptest.ResponseRecorder) map[string]any {
	t.Helper()
	var result map[string]any
	if err := json.Unmarshal(rec.Body.Bytes(), &result); err != nil {
		t.Fatalf("failed to parse JSON response: %v\nbody: %s", err, rec.Body.String())
	}
	return result
}

func assertErrorCode(t *testing.T, result map[string]any, code string) {
	t.Helper()
	errObj, ok := result["error"].(map[string]any)
	if !ok {
		t.Fatalf("expected error object in response, got: %v", result)
	}
	if errObj["code"] != code {
		t.Errorf("expected error code %q, got %q", code, errObj["code"])
	}
}

func assertStatus(t *testing.T, rec *httptest.ResponseRecorder, want int) {
	t.Helper()
	if rec.Code != want {
		t.Fatalf("expected status %d, got %d: %s", want, rec.Code, rec.Body.String())
	}
}
