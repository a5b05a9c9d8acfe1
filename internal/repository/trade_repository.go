package repository

import (
	"errors"

	"gorm.io/gorm"

	apperrors "github.com/juninatt/trader-journal/internal/errors"
	"github.com/juninatt/trader-journal/internal/logger"
	"github.com/juninatt/trader-journal/internal/models"
)

// tradeRepository loads, saves and removes trades.
type tradeRepository struct {
	db *gorm.DB
}

// NewTradeRepository creates a new TradeRepository.
func NewTradeRepository(db *gorm.DB) TradeRepository {
	return &tradeRepository{db: db}
}

// Save validates the trade and writes its row, including the exit derived
// from its sales.
func (r *tradeRepository) Save(trade *models.Trade) error {
	if trade == nil {
		return apperrors.WithMessage(apperrors.ErrInvalidInput, "Trade is required")
	}
	if err := trade.Validate(); err != nil {
		return err
	}
	if err := r.db.Save(trade).Error; err != nil {
		logger.Named("repository").Errorw("failed to save trade", "trade_id", trade.ID, "error", err)
		return apperrors.Wrap(apperrors.ErrInternalServer, err)
	}
	return nil
}

// FindByID loads a trade with its asset, every snapshot and every sale.
// Snapshots carry their RecordedOn date but not their journal entry.
func (r *tradeRepository) FindByID(id string) (*models.Trade, bool, error) {
	var trade models.Trade
	if err := r.db.Where("id = ?", id).First(&trade).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, false, nil
		}
		return nil, false, apperrors.Wrap(apperrors.ErrInternalServer, err)
	}

	var snapshots []*models.TradeSnapshot
	if err := r.db.Where("trade_id = ?", trade.ID).
		Order("recorded_on ASC, created_at ASC").Find(&snapshots).Error; err != nil {
		return nil, false, apperrors.Wrap(apperrors.ErrInternalServer, err)
	}
	if _, err := wireTrades(r.db, []*models.Trade{&trade}, snapshots); err != nil {
		logger.Named("repository").Errorw("failed to load trade history", "trade_id", id, "error", err)
		return nil, false, apperrors.Wrap(apperrors.ErrInternalServer, err)
	}
	return &trade, true, nil
}

// Remove deletes the trade with all of its snapshots and their sales. It
// reports false when the trade was not stored.
func (r *tradeRepository) Remove(trade *models.Trade) (bool, error) {
	if trade == nil || trade.ID == "" {
		return false, nil
	}

	removed := false
	err := r.db.Transaction(func(tx *gorm.DB) error {
		res := tx.Where("id = ?", trade.ID).Delete(&models.Trade{})
		if res.Error != nil {
			return res.Error
		}
		if res.RowsAffected == 0 {
			return nil
		}
		removed = true

		snapshots := tx.Model(&models.TradeSnapshot{}).Select("id").Where("trade_id = ?", trade.ID)
		if err := tx.Where("trade_snapshot_id IN (?)", snapshots).Delete(&models.ExecutedSale{}).Error; err != nil {
			return err
		}
		return tx.Where("trade_id = ?", trade.ID).Delete(&models.TradeSnapshot{}).Error
	})
	if err != nil {
		logger.Named("repository").Errorw("failed to remove trade", "trade_id", trade.ID, "error", err)
		return false, apperrors.Wrap(apperrors.ErrInternalServer, err)
	}
	return removed, nil
}
