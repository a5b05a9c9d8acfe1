package services

import (
	"encoding/json"
	"testing"

	"github.com/juninatt/trader-journal/internal/models"
	"github.com/juninatt/trader-journal/internal/testutil"
)

func TestAuditService(t *testing.T) {
	db := testutil.SetupTestDB(t)
	t.Cleanup(func() { testutil.TeardownTestDB(t, db) })
	audit := NewAuditService(db)

	entryID := "0190b8a4-0000-7000-8000-000000000001"
	tradeID := "0190b8a4-0000-7000-8000-000000000002"
	audit.Log(models.AuditActionCreate, "journal_entry", entryID, map[string]any{"date": "2024-03-08"})
	audit.Log(models.AuditActionCreate, "trade", tradeID, map[string]any{"quantity": 10})
	audit.Log(models.AuditActionDelete, "trade", tradeID, nil)

	t.Run("records_actor_and_figures", func(t *testing.T) {
		records, err := audit.History(AuditFilter{ResourceType: "journal_entry"})
		testutil.AssertNoError(t, err)
		if len(records) != 1 {
			t.Fatalf("expected 1 record, got %d", len(records))
		}
		if records[0].Actor != "owner" {
			t.Errorf("expected actor owner, got %q", records[0].Actor)
		}
		var figures map[string]any
		if err := json.Unmarshal(records[0].Changes, &figures); err != nil {
			t.Fatalf("failed to decode figures: %v", err)
		}
		if figures["date"] != "2024-03-08" {
			t.Errorf("expected date figure, got %v", figures)
		}
	})

	t.Run("filters_by_resource", func(t *testing.T) {
		records, err := audit.History(AuditFilter{ResourceID: tradeID})
		testutil.AssertNoError(t, err)
		if len(records) != 2 {
			t.Fatalf("expected 2 records, got %d", len(records))
		}
	})

	t.Run("limit", func(t *testing.T) {
		records, err := audit.History(AuditFilter{Limit: 1})
		testutil.AssertNoError(t, err)
		if len(records) != 1 {
			t.Fatalf("expected 1 record, got %d", len(records))
		}
	})

	t.Run("write_failure_is_swallowed", func(t *testing.T) {
		broken := testutil.SetupTestDB(t)
		testutil.TeardownTestDB(t, broken)
		NewAuditService(broken).Log(models.AuditActionUpdate, "asset", entryID, map[string]any{"bad": make(chan int)})
	})
}
