package repository

import (
	"fmt"

	"gorm.io/gorm"

	"github.com/juninatt/trader-journal/internal/models"
)

// loadGraph completes the given entries for analysis. Each entry gets its
// snapshots, each referenced trade gets its asset and every snapshot it has
// on any day, and every snapshot gets its sales. Entries in one batch share
// trade instances.
func loadGraph(db *gorm.DB, entries []*models.JournalEntry) error {
	if len(entries) == 0 {
		return nil
	}

	entryIDs := make([]string, 0, len(entries))
	entriesByID := make(map[string]*models.JournalEntry, len(entries))
	for _, e := range entries {
		entryIDs = append(entryIDs, e.ID)
		entriesByID[e.ID] = e
	}

	var owned []*models.TradeSnapshot
	if err := db.Where("journal_entry_id IN ?", entryIDs).
		Order("created_at ASC, id ASC").Find(&owned).Error; err != nil {
		return err
	}
	if len(owned) == 0 {
		return nil
	}

	tradeIDs := distinct(owned, func(s *models.TradeSnapshot) string { return s.TradeID })
	var trades []*models.Trade
	if err := db.Where("id IN ?", tradeIDs).Find(&trades).Error; err != nil {
		return err
	}

	var history []*models.TradeSnapshot
	if err := db.Where("trade_id IN ? AND journal_entry_id NOT IN ?", tradeIDs, entryIDs).
		Order("recorded_on ASC, created_at ASC").Find(&history).Error; err != nil {
		return err
	}

	tradesByID, err := wireTrades(db, trades, append(history, owned...))
	if err != nil {
		return err
	}

	for _, s := range owned {
		if _, ok := tradesByID[s.TradeID]; !ok {
			return fmt.Errorf("snapshot %s references missing trade %s", s.ID, s.TradeID)
		}
		if err := entriesByID[s.JournalEntryID].AddTradeSnapshot(s); err != nil {
			return err
		}
	}
	return nil
}

// wireTrades attaches assets, sales and snapshots to trades and returns the
// trades keyed by ID.
func wireTrades(db *gorm.DB, trades []*models.Trade, snapshots []*models.TradeSnapshot) (map[string]*models.Trade, error) {
	tradesByID := make(map[string]*models.Trade, len(trades))
	for _, t := range trades {
		tradesByID[t.ID] = t
	}

	if err := wireAssets(db, trades); err != nil {
		return nil, err
	}
	if err := wireSales(db, snapshots); err != nil {
		return nil, err
	}

	for _, s := range snapshots {
		t, ok := tradesByID[s.TradeID]
		if !ok {
			continue
		}
		if err := t.AddSnapshot(s); err != nil {
			return nil, err
		}
	}
	return tradesByID, nil
}

func wireAssets(db *gorm.DB, trades []*models.Trade) error {
	var assetIDs []string
	seen := make(map[string]bool)
	for _, t := range trades {
		if t.AssetID != nil && !seen[*t.AssetID] {
			seen[*t.AssetID] = true
			assetIDs = append(assetIDs, *t.AssetID)
		}
	}
	if len(assetIDs) == 0 {
		return nil
	}

	var assets []*models.Asset
	if err := db.Where("id IN ?", assetIDs).Find(&assets).Error; err != nil {
		return err
	}
	byID := make(map[string]*models.Asset, len(assets))
	for _, a := range assets {
		byID[a.ID] = a
	}
	for _, t := range trades {
		if t.AssetID == nil {
			continue
		}
		if a, ok := byID[*t.AssetID]; ok {
			t.SetAsset(a)
		}
	}
	return nil
}

// wireSales attaches sales to still-detached snapshots, so no quantity check
// against a partially wired trade can fire.
func wireSales(db *gorm.DB, snapshots []*models.TradeSnapshot) error {
	if len(snapshots) == 0 {
		return nil
	}
	byID := make(map[string]*models.TradeSnapshot, len(snapshots))
	ids := make([]string, 0, len(snapshots))
	for _, s := range snapshots {
		byID[s.ID] = s
		ids = append(ids, s.ID)
	}

	var sales []*models.ExecutedSale
	if err := db.Where("trade_snapshot_id IN ?", ids).
		Order("created_at ASC, id ASC").Find(&sales).Error; err != nil {
		return err
	}
	for _, sale := range sales {
		if err := byID[sale.TradeSnapshotID].AddSale(sale); err != nil {
			return err
		}
	}
	return nil
}

func distinct[T any](items []T, key func(T) string) []string {
	seen := make(map[string]bool, len(items))
	var keys []string
	for _, item := range items {
		k := key(item)
		if !seen[k] {
			seen[k] = true
			keys = append(keys, k)
		}
	}
	return keys
}
