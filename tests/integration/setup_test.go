package integration

import (
	"encoding/json"
	"fmt"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
	"time"

	"github.com/gin-gonic/gin"
	"gorm.io/gorm"

	"github.com/juninatt/trader-journal/internal/config"
	"github.com/juninatt/trader-journal/internal/handlers"
	"github.com/juninatt/trader-journal/internal/logger"
	"github.com/juninatt/trader-journal/internal/middleware"
	"github.com/juninatt/trader-journal/internal/repository"
	"github.com/juninatt/trader-journal/internal/services"
	"github.com/juninatt/trader-journal/internal/testutil"
	"github.com/juninatt/trader-journal/internal/validator"
)

// testApp holds the full application stack for integration tests.
type testApp struct {
	DB     *gorm.DB
	Router *gin.Engine
	Token  string
}

func init() {
	gin.SetMode(gin.TestMode)
	logger.Init("test")
	validator.Register()
}

// setupApp creates the application stack over an isolated in-memory SQLite
// database, along with a valid owner token.
func setupApp(t *testing.T) *testApp {
	t.Helper()

	db := testutil.SetupTestDB(t)
	t.Cleanup(func() { testutil.TeardownTestDB(t, db) })

	cfg := &config.Config{
		Env:              "test",
		JWTSecret:        "integration-secret",
		JWTExpirationDur: time.Hour,
	}
	token, err := middleware.GenerateToken(cfg, 0)
	if err != nil {
		t.Fatalf("failed to sign token: %v", err)
	}

	entryRepo := repository.NewJournalEntryRepository(db)
	tradeRepo := repository.NewTradeRepository(db)
	assetRepo := repository.NewAssetRepository(db)
	audit := services.NewAuditService(db)

	router := gin.New()
	router.Use(gin.Recovery())
	router.Use(middleware.ErrorHandler())

	handlers.RegisterRoutes(router, handlers.Handlers{
		Entries: handlers.NewJournalEntryHandler(services.NewJournalEntryService(entryRepo, audit)),
		Trades:  handlers.NewTradeHandler(services.NewTradeService(entryRepo, tradeRepo, assetRepo, audit)),
		Assets:  handlers.NewAssetHandler(services.NewAssetService(assetRepo, audit)),
		Health:  handlers.NewHealthHandler(db),
	}, middleware.AuthMiddleware(cfg))

	return &testApp{DB: db, Router: router, Token: token}
}

// request makes an HTTP request to the test router and returns the recorder.
func (app *testApp) request(method, path, body, token string) *httptest.ResponseRecorder {
	req := httptest.NewRequest(method, path, strings.NewReader(body))
	req.Header.Set("Content-Type", "application/json")
	if token != "" {
		req.Header.Set("Authorization", "Bearer "+token)
	}
	rec := httptest.NewRecorder()
	app.Router.ServeHTTP(rec, req)
	return rec
}

// mustRequest performs an authorised request and fails unless the status matches.
func (app *testApp) mustRequest(t *testing.T, method, path, body string, status int) map[string]any {
	t.Helper()
	rec := app.request(method, path, body, app.Token)
	if rec.Code != status {
		t.Fatalf("%s %s: expected %d, got %d: %s", method, path, status, rec.Code, rec.Body.String())
	}
	return parseJSON(t, rec)
}

// parseJSON parses the response body into a map.
func parseJSON(t *testing.T, rec *httptest.ResponseRecorder) map[string]any {
	t.Helper()
	var result map[string]any
	if err := json.Unmarshal(rec.Body.Bytes(), &result); err != nil {
		t.Fatalf("failed to parse JSON: %v\nbody: %s", err, rec.Body.String())
	}
	return result
}

// createEntry opens the journal for date and returns the entry ID.
func (app *testApp) createEntry(t *testing.T, date string) string {
	t.Helper()
	result := app.mustRequest(t, http.MethodPost, "/api/v1/journal-entries",
		fmt.Sprintf(`{"date":%q,"cash_balance":"1000"}`, date), http.StatusCreated)
	return result["journal_entry"].(map[string]any)["id"].(string)
}

func errorCode(t *testing.T, rec *httptest.ResponseRecorder) string {
	t.Helper()
	body := parseJSON(t, rec)
	errObj, ok := body["error"].(map[string]any)
	if !ok {
		t.Fatalf("expected error object, got %s", rec.Body.String())
	}
	return errObj["code"].(string)
}
