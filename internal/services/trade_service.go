package services

import (
	apperrors "github.com/juninatt/trader-journal/internal/errors"
	"github.com/juninatt/trader-journal/internal/logger"
	"github.com/juninatt/trader-journal/internal/models"
	"github.com/juninatt/trader-journal/internal/repository"
)

// tradeService handles the trade ledger: opening positions, daily
// snapshots and executed sales. Every change is saved through the owning
// journal entry so the aggregate is written as a whole.
type tradeService struct {
	entries repository.JournalEntryRepository
	trades  repository.TradeRepository
	assets  repository.AssetRepository
	audit   AuditServicer
}

// NewTradeService creates a new TradeServicer.
func NewTradeService(
	entries repository.JournalEntryRepository,
	trades repository.TradeRepository,
	assets repository.AssetRepository,
	audit AuditServicer,
) TradeServicer {
	return &tradeService{entries: entries, trades: trades, assets: assets, audit: audit}
}

// OpenTrade creates a trade with its first snapshot on the given entry.
func (s *tradeService) OpenTrade(entryID string, input OpenTradeInput) (*models.Trade, error) {
	entry, err := s.loadEntry(entryID)
	if err != nil {
		return nil, err
	}

	trade := models.NewTrade(input.Quantity, input.EntryPrice, input.BuyFee)
	trade.Label = input.Label
	trade.EntryTime = input.EntryTime
	trade.Notes = input.Notes

	if input.AssetID != nil {
		asset, found, err := s.assets.FindByID(*input.AssetID)
		if err != nil {
			return nil, err
		}
		if !found {
			return nil, apperrors.ErrAssetNotFound
		}
		trade.SetAsset(asset)
	}

	remaining := input.Quantity
	if input.RemainingQuantity != nil {
		remaining = *input.RemainingQuantity
	}
	openPrice := input.EntryPrice
	if input.OpenPrice != nil {
		openPrice = *input.OpenPrice
	}
	snapshot := models.NewTradeSnapshot(remaining, openPrice)
	if input.ClosePrice != nil {
		snapshot.SetClosePrice(*input.ClosePrice)
	}

	if err := trade.AddSnapshot(snapshot); err != nil {
		return nil, err
	}
	if err := entry.AddTrade(trade); err != nil {
		return nil, err
	}
	if err := s.entries.Save(entry); err != nil {
		return nil, err
	}

	logger.Get().Infow("trade opened", "trade_id", trade.ID, "journal_entry_id", entry.ID, "quantity", trade.Quantity)
	s.audit.Log(models.AuditActionCreate, "trade", trade.ID, map[string]any{
		"quantity":    trade.Quantity,
		"entry_price": trade.EntryPrice.String(),
		"buy_fee":     trade.BuyFee.String(),
	})
	return trade, nil
}

// RecordSnapshot records a day's state of an existing trade on the entry.
func (s *tradeService) RecordSnapshot(entryID string, input SnapshotInput) (*models.TradeSnapshot, error) {
	entry, err := s.loadEntry(entryID)
	if err != nil {
		return nil, err
	}

	trade, err := s.tradeFor(entry, input.TradeID)
	if err != nil {
		return nil, err
	}
	for _, existing := range entry.Snapshots() {
		if existing.TradeID == trade.ID {
			return nil, apperrors.WithMessage(apperrors.ErrInvalidInput, "Trade already has a snapshot on this day")
		}
	}

	snapshot := models.NewTradeSnapshot(input.RemainingQuantity, input.OpenPrice)
	snapshot.Notes = input.Notes
	if input.ClosePrice != nil {
		snapshot.SetClosePrice(*input.ClosePrice)
	}

	if err := trade.AddSnapshot(snapshot); err != nil {
		return nil, err
	}
	if err := entry.AddTradeSnapshot(snapshot); err != nil {
		return nil, err
	}
	if err := s.entries.Save(entry); err != nil {
		return nil, err
	}

	s.audit.Log(models.AuditActionCreate, "trade_snapshot", snapshot.ID, map[string]any{
		"trade_id":           trade.ID,
		"remaining_quantity": snapshot.RemainingQuantity,
	})
	return snapshot, nil
}

// tradeFor prefers the instance already in the entry's graph so both
// sides of the aggregate stay consistent.
func (s *tradeService) tradeFor(entry *models.JournalEntry, tradeID string) (*models.Trade, error) {
	for _, t := range entry.Trades() {
		if t.ID == tradeID {
			return t, nil
		}
	}
	trade, found, err := s.trades.FindByID(tradeID)
	if err != nil {
		return nil, err
	}
	if !found {
		return nil, apperrors.ErrTradeNotFound
	}
	return trade, nil
}

// RecordSale executes a sale on one of the entry's snapshots.
func (s *tradeService) RecordSale(entryID, snapshotID string, input SaleInput) (*models.ExecutedSale, error) {
	entry, err := s.loadEntry(entryID)
	if err != nil {
		return nil, err
	}
	snapshot, err := findSnapshot(entry, snapshotID)
	if err != nil {
		return nil, err
	}

	sale := models.NewExecutedSale(input.Quantity, input.SellPrice, input.SellFee, input.SellTime)
	if err := snapshot.AddSale(sale); err != nil {
		return nil, err
	}

	held := snapshot.RemainingQuantity
	if input.RemainingQuantity != nil {
		snapshot.RemainingQuantity = *input.RemainingQuantity
	} else {
		snapshot.RemainingQuantity = max(held-input.Quantity, 0)
	}

	// An explicit remaining quantity may not keep sold units on the books.
	trade := snapshot.Trade()
	if err := trade.Validate(); err != nil {
		snapshot.RemoveSale(sale)
		snapshot.RemainingQuantity = held
		return nil, err
	}

	if err := s.entries.Save(entry); err != nil {
		return nil, err
	}

	logger.Get().Infow("sale recorded",
		"trade_id", trade.ID,
		"quantity", sale.QuantitySold,
		"net_gain", sale.NetGain.String(),
		"trade_closed", trade.IsClosed(),
	)
	s.audit.Log(models.AuditActionCreate, "executed_sale", sale.ID, map[string]any{
		"trade_id":      trade.ID,
		"quantity_sold": sale.QuantitySold,
		"net_gain":      sale.NetGain.String(),
	})
	return sale, nil
}

// RemoveSnapshot deletes a snapshot with its sales. A trade left without
// any snapshot is deleted too; otherwise its exit is saved again.
func (s *tradeService) RemoveSnapshot(entryID, snapshotID string) error {
	entry, err := s.loadEntry(entryID)
	if err != nil {
		return err
	}
	snapshot, err := findSnapshot(entry, snapshotID)
	if err != nil {
		return err
	}

	trade := snapshot.Trade()
	entry.RemoveSnapshot(snapshot)
	if trade != nil {
		trade.RemoveSnapshot(snapshot)
	}
	if err := s.entries.Save(entry); err != nil {
		return err
	}

	switch {
	case trade == nil:
	case len(trade.Snapshots()) == 0:
		if _, err := s.trades.Remove(trade); err != nil {
			return err
		}
		logger.Get().Infow("trade deleted with its last snapshot", "trade_id", trade.ID)
	default:
		// The entry no longer shows the trade, so its rederived exit is
		// written here.
		if err := s.trades.Save(trade); err != nil {
			return err
		}
	}

	s.audit.Log(models.AuditActionDelete, "trade_snapshot", snapshotID, map[string]any{
		"journal_entry_id": entryID,
	})
	return nil
}

// GetTrade returns a trade with its full snapshot history.
func (s *tradeService) GetTrade(id string) (*models.Trade, error) {
	trade, found, err := s.trades.FindByID(id)
	if err != nil {
		return nil, err
	}
	if !found {
		return nil, apperrors.ErrTradeNotFound
	}
	return trade, nil
}

// DeleteTrade removes a trade with all of its snapshots and sales.
func (s *tradeService) DeleteTrade(id string) error {
	trade, err := s.GetTrade(id)
	if err != nil {
		return err
	}

	removed, err := s.trades.Remove(trade)
	if err != nil {
		return err
	}
	if !removed {
		return apperrors.ErrTradeNotFound
	}

	logger.Get().Infow("trade deleted", "trade_id", id)
	s.audit.Log(models.AuditActionDelete, "trade", id, map[string]any{
		"net_gain": trade.CalculateNetGain().String(),
	})
	return nil
}

func (s *tradeService) loadEntry(id string) (*models.JournalEntry, error) {
	entry, found, err := s.entries.FindByID(id)
	if err != nil {
		return nil, err
	}
	if !found {
		return nil, apperrors.ErrJournalEntryNotFound
	}
	return entry, nil
}

func findSnapshot(entry *models.JournalEntry, id string) (*models.TradeSnapshot, error) {
	for _, snapshot := range entry.Snapshots() {
		if snapshot.ID == id {
			return snapshot, nil
		}
	}
	return nil, apperrors.ErrSnapshotNotFound
}
