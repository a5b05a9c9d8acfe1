package main

import (
	"bytes"
	"encoding/json"
	"strings"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/juninatt/trader-journal/internal/config"
	"github.com/juninatt/trader-journal/internal/logger"
	"github.com/juninatt/trader-journal/internal/middleware"
	"github.com/juninatt/trader-journal/internal/models"
	"github.com/juninatt/trader-journal/internal/repository"
	"github.com/juninatt/trader-journal/internal/services"
	"github.com/juninatt/trader-journal/internal/testutil"
)

func init() {
	logger.Init("test")
}

func testConfig() *config.Config {
	return &config.Config{
		Env:              "test",
		JWTSecret:        "cli-test-secret",
		JWTExpirationDur: time.Hour,
	}
}

// seededApp returns an app over a fresh database holding one entry on
// 2024-03-08 with a ten unit trade bought at 20 and closed at 22.
func seededApp(t *testing.T) (*app, *models.JournalEntry) {
	t.Helper()

	db := testutil.SetupTestDB(t)
	t.Cleanup(func() { testutil.TeardownTestDB(t, db) })

	repo := repository.NewJournalEntryRepository(db)
	entry := models.NewJournalEntry(testutil.Day(2024, time.March, 8), "breakout day")
	entry.CashBalance = testutil.Dec("1000")
	trade, _ := testutil.NewOpenTrade(t, entry, 10, "20", "22")
	trade.Label = "ACME"
	require.NoError(t, repo.Save(entry))

	audit := services.NewAuditService(db)
	return &app{
		cfg:     testConfig(),
		entries: services.NewJournalEntryService(repo, audit),
		audit:   audit,
	}, entry
}

func execute(t *testing.T, a *app, args ...string) (string, error) {
	t.Helper()

	root := newRootCmd(a)
	var out bytes.Buffer
	root.SetOut(&out)
	root.SetErr(&out)
	root.SetArgs(args)
	err := root.Execute()
	return out.String(), err
}

func TestListCommand(t *testing.T) {
	a, entry := seededApp(t)

	out, err := execute(t, a, "list")
	require.NoError(t, err)
	assert.Contains(t, out, "2024-03-08")
	assert.Contains(t, out, entry.ID)
	assert.Contains(t, out, "20.00")
	assert.Contains(t, out, "page 1 of 1 (1 entries)")
}

func TestShowCommand(t *testing.T) {
	a, entry := seededApp(t)

	t.Run("existing", func(t *testing.T) {
		out, err := execute(t, a, "show", entry.ID)
		require.NoError(t, err)
		assert.Contains(t, out, "comment: breakout day")
		assert.Contains(t, out, "cash balance: 1000.00")
		assert.Contains(t, out, "ACME")
		assert.Contains(t, out, "total change: 20.00")
	})

	t.Run("missing", func(t *testing.T) {
		_, err := execute(t, a, "show", "0190b8a4-0000-7000-8000-000000000000")
		require.Error(t, err)
		assert.Contains(t, err.Error(), "Journal entry not found")
	})

	t.Run("requires_id", func(t *testing.T) {
		_, err := execute(t, a, "show")
		assert.Error(t, err)
	})
}

func TestLatestCommand(t *testing.T) {
	a, entry := seededApp(t)

	out, err := execute(t, a, "latest")
	require.NoError(t, err)
	assert.True(t, strings.HasPrefix(out, "2024-03-08  "+entry.ID))
}

func TestAnalyzeCommand(t *testing.T) {
	a, entry := seededApp(t)

	t.Run("table", func(t *testing.T) {
		out, err := execute(t, a, "analyze", entry.ID)
		require.NoError(t, err)
		assert.Contains(t, out, "total change")
		assert.Contains(t, out, "closed / open snapshots")
		assert.Contains(t, out, "ACME")
	})

	t.Run("json", func(t *testing.T) {
		out, err := execute(t, a, "analyze", entry.ID, "--json")
		require.NoError(t, err)

		var body map[string]any
		require.NoError(t, json.Unmarshal([]byte(out), &body))
		assert.Equal(t, entry.ID, body["journal_entry_id"])
		assert.Equal(t, "20", body["total_change"])
		assert.Equal(t, float64(0), body["closed_snapshots"])
		assert.Equal(t, float64(1), body["open_snapshots"])
	})
}

func TestRemoveCommand(t *testing.T) {
	a, entry := seededApp(t)

	out, err := execute(t, a, "remove", entry.ID)
	require.NoError(t, err)
	assert.Contains(t, out, "removed journal entry "+entry.ID)

	_, err = execute(t, a, "show", entry.ID)
	assert.Error(t, err)
}

func TestHistoryCommand(t *testing.T) {
	a, entry := seededApp(t)

	_, err := execute(t, a, "remove", entry.ID)
	require.NoError(t, err)

	out, err := execute(t, a, "history", "--type", "journal_entry")
	require.NoError(t, err)
	assert.Contains(t, out, "delete")
	assert.Contains(t, out, entry.ID)
	assert.Contains(t, out, `"snapshots":1`)
}

func TestTokenCommand(t *testing.T) {
	a := &app{cfg: testConfig()}

	out, err := execute(t, a, "token", "--ttl", "10m")
	require.NoError(t, err)

	claims, err := middleware.ParseToken(a.cfg, strings.TrimSpace(out))
	require.NoError(t, err)
	assert.Equal(t, middleware.OwnerSubject, claims.Subject)
	assert.WithinDuration(t, time.Now().Add(10*time.Minute), claims.ExpiresAt.Time, time.Minute)
}
