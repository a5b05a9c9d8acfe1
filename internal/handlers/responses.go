package handlers

import (
	"github.com/shopspring/decimal"

	"github.com/juninatt/trader-journal/internal/analysis"
	"github.com/juninatt/trader-journal/internal/models"
)

// SnapshotResponse is a trade snapshot with its sales and daily change.
type SnapshotResponse struct {
	*models.TradeSnapshot
	Sales            []*models.ExecutedSale `json:"sales"`
	ChangeAmount     decimal.Decimal        `json:"change_amount"`
	ChangePercentage decimal.Decimal        `json:"change_percentage"`
}

// JournalEntryResponse is a journal entry with the snapshots recorded that day.
type JournalEntryResponse struct {
	*models.JournalEntry
	Snapshots   []SnapshotResponse `json:"snapshots"`
	TotalChange decimal.Decimal    `json:"total_change"`
}

// TradeResponse is a trade with its full history and ledger figures.
type TradeResponse struct {
	*models.Trade
	Asset     *models.Asset         `json:"asset,omitempty"`
	Snapshots []SnapshotResponse    `json:"snapshots"`
	Summary   analysis.TradeSummary `json:"summary"`
}

func newSnapshotResponse(s *models.TradeSnapshot) SnapshotResponse {
	return SnapshotResponse{
		TradeSnapshot:    s,
		Sales:            s.Sales(),
		ChangeAmount:     analysis.ChangeAmount(s),
		ChangePercentage: analysis.ChangePercentage(s),
	}
}

func snapshotResponses(snapshots []*models.TradeSnapshot) []SnapshotResponse {
	out := make([]SnapshotResponse, 0, len(snapshots))
	for _, s := range snapshots {
		out = append(out, newSnapshotResponse(s))
	}
	return out
}

func newJournalEntryResponse(e *models.JournalEntry) JournalEntryResponse {
	return JournalEntryResponse{
		JournalEntry: e,
		Snapshots:    snapshotResponses(e.Snapshots()),
		TotalChange:  analysis.TotalChange(e),
	}
}

func journalEntryResponses(entries []*models.JournalEntry) []JournalEntryResponse {
	out := make([]JournalEntryResponse, 0, len(entries))
	for _, e := range entries {
		out = append(out, newJournalEntryResponse(e))
	}
	return out
}

func newTradeResponse(t *models.Trade) TradeResponse {
	return TradeResponse{
		Trade:     t,
		Asset:     t.Asset(),
		Snapshots: snapshotResponses(t.SnapshotsByDate()),
		Summary:   analysis.SummarizeTrade(t),
	}
}
