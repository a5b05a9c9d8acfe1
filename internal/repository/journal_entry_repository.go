package repository

import (
	"errors"
	"time"

	"gorm.io/gorm"

	apperrors "github.com/juninatt/trader-journal/internal/errors"
	"github.com/juninatt/trader-journal/internal/logger"
	"github.com/juninatt/trader-journal/internal/models"
	"github.com/juninatt/trader-journal/internal/pagination"
)

// journalEntryRepository persists journal entry aggregates.
type journalEntryRepository struct {
	db *gorm.DB
}

// NewJournalEntryRepository creates a new JournalEntryRepository.
func NewJournalEntryRepository(db *gorm.DB) JournalEntryRepository {
	return &journalEntryRepository{db: db}
}

// Save validates the aggregate and writes it in one transaction: the entry,
// each trade it shows, its snapshots and their sales. Snapshots and sales
// that were detached since the last save are deleted.
func (r *journalEntryRepository) Save(entry *models.JournalEntry) error {
	if entry == nil {
		return apperrors.WithMessage(apperrors.ErrInvalidInput, "Journal entry is required")
	}
	if err := entry.Validate(); err != nil {
		return err
	}

	err := r.db.Transaction(func(tx *gorm.DB) error {
		var clashes int64
		if err := tx.Model(&models.JournalEntry{}).
			Where("date = ? AND id <> ?", entry.Date, entry.ID).
			Count(&clashes).Error; err != nil {
			return err
		}
		if clashes > 0 {
			return apperrors.ErrDuplicateJournalDate
		}

		if err := tx.Save(entry).Error; err != nil {
			return err
		}
		for _, t := range entry.Trades() {
			if err := tx.Save(t).Error; err != nil {
				return err
			}
		}

		snapshots := entry.Snapshots()
		snapshotIDs := make([]string, 0, len(snapshots))
		for _, s := range snapshots {
			s.RecordedOn = entry.Date
			if err := tx.Save(s).Error; err != nil {
				return err
			}
			snapshotIDs = append(snapshotIDs, s.ID)

			sales := s.Sales()
			saleIDs := make([]string, 0, len(sales))
			for _, sale := range sales {
				if err := tx.Save(sale).Error; err != nil {
					return err
				}
				saleIDs = append(saleIDs, sale.ID)
			}
			if err := deleteDetachedSales(tx, s.ID, saleIDs); err != nil {
				return err
			}
		}

		return deleteDetachedSnapshots(tx, entry.ID, snapshotIDs)
	})
	if err != nil {
		var appErr *apperrors.AppError
		if errors.As(err, &appErr) {
			return err
		}
		if isUniqueConstraintError(err) {
			return apperrors.ErrDuplicateJournalDate
		}
		logger.Named("repository").Errorw("failed to save journal entry",
			"journal_entry_id", entry.ID,
			"date", entry.Date.Format(time.DateOnly),
			"error", err,
		)
		return apperrors.Wrap(apperrors.ErrInternalServer, err)
	}
	return nil
}

func deleteDetachedSales(tx *gorm.DB, snapshotID string, keep []string) error {
	q := tx.Where("trade_snapshot_id = ?", snapshotID)
	if len(keep) > 0 {
		q = q.Where("id NOT IN ?", keep)
	}
	return q.Delete(&models.ExecutedSale{}).Error
}

func deleteDetachedSnapshots(tx *gorm.DB, entryID string, keep []string) error {
	stale := tx.Model(&models.TradeSnapshot{}).Select("id").Where("journal_entry_id = ?", entryID)
	if len(keep) > 0 {
		stale = stale.Where("id NOT IN ?", keep)
	}
	if err := tx.Where("trade_snapshot_id IN (?)", stale).Delete(&models.ExecutedSale{}).Error; err != nil {
		return err
	}

	q := tx.Where("journal_entry_id = ?", entryID)
	if len(keep) > 0 {
		q = q.Where("id NOT IN ?", keep)
	}
	return q.Delete(&models.TradeSnapshot{}).Error
}

// FindByID loads the complete aggregate for id.
func (r *journalEntryRepository) FindByID(id string) (*models.JournalEntry, bool, error) {
	return r.findOne(r.db.Where("id = ?", id))
}

// FindByDate loads the complete aggregate recorded on the day of date.
func (r *journalEntryRepository) FindByDate(date time.Time) (*models.JournalEntry, bool, error) {
	return r.findOne(r.db.Where("date = ?", models.DateOf(date)))
}

// FindLatestEntry loads the entry with the most recent date.
func (r *journalEntryRepository) FindLatestEntry() (*models.JournalEntry, bool, error) {
	return r.findOne(r.db.Order("date DESC"))
}

func (r *journalEntryRepository) findOne(q *gorm.DB) (*models.JournalEntry, bool, error) {
	var entry models.JournalEntry
	if err := q.First(&entry).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, false, nil
		}
		return nil, false, apperrors.Wrap(apperrors.ErrInternalServer, err)
	}
	if err := loadGraph(r.db, []*models.JournalEntry{&entry}); err != nil {
		return nil, false, r.loadFailed(err)
	}
	return &entry, true, nil
}

// FindAll loads every entry, most recent date first.
func (r *journalEntryRepository) FindAll() ([]*models.JournalEntry, error) {
	var entries []*models.JournalEntry
	if err := r.db.Order("date DESC").Find(&entries).Error; err != nil {
		return nil, apperrors.Wrap(apperrors.ErrInternalServer, err)
	}
	if err := loadGraph(r.db, entries); err != nil {
		return nil, r.loadFailed(err)
	}
	return entries, nil
}

// FindPage loads one page of entries, most recent date first.
func (r *journalEntryRepository) FindPage(page pagination.PageRequest) (*pagination.PageResponse[*models.JournalEntry], error) {
	page.Defaults()

	var totalItems int64
	if err := r.db.Model(&models.JournalEntry{}).Count(&totalItems).Error; err != nil {
		return nil, apperrors.Wrap(apperrors.ErrInternalServer, err)
	}

	var entries []*models.JournalEntry
	if err := r.db.Order("date DESC").Scopes(pagination.Paginate(page)).Find(&entries).Error; err != nil {
		return nil, apperrors.Wrap(apperrors.ErrInternalServer, err)
	}
	if err := loadGraph(r.db, entries); err != nil {
		return nil, r.loadFailed(err)
	}

	result := pagination.NewPageResponse(entries, page, totalItems)
	return &result, nil
}

// Remove deletes the entry with its snapshots and their sales, then every
// trade left without snapshots. It reports false when the entry was not
// stored.
func (r *journalEntryRepository) Remove(entry *models.JournalEntry) (bool, error) {
	if entry == nil || entry.ID == "" {
		return false, nil
	}

	removed := false
	err := r.db.Transaction(func(tx *gorm.DB) error {
		res := tx.Where("id = ?", entry.ID).Delete(&models.JournalEntry{})
		if res.Error != nil {
			return res.Error
		}
		if res.RowsAffected == 0 {
			return nil
		}
		removed = true

		var tradeIDs []string
		if err := tx.Model(&models.TradeSnapshot{}).
			Where("journal_entry_id = ?", entry.ID).
			Distinct().Pluck("trade_id", &tradeIDs).Error; err != nil {
			return err
		}
		if err := deleteDetachedSnapshots(tx, entry.ID, nil); err != nil {
			return err
		}
		if len(tradeIDs) == 0 {
			return nil
		}
		// A trade with no snapshot left has no history to value.
		held := tx.Model(&models.TradeSnapshot{}).Select("trade_id")
		return tx.Where("id IN ? AND id NOT IN (?)", tradeIDs, held).Delete(&models.Trade{}).Error
	})
	if err != nil {
		logger.Named("repository").Errorw("failed to remove journal entry",
			"journal_entry_id", entry.ID,
			"error", err,
		)
		return false, apperrors.Wrap(apperrors.ErrInternalServer, err)
	}
	return removed, nil
}

func (r *journalEntryRepository) loadFailed(err error) error {
	logger.Named("repository").Errorw("failed to load journal graph", "error", err)
	var appErr *apperrors.AppError
	if errors.As(err, &appErr) {
		return err
	}
	return apperrors.Wrap(apperrors.ErrInternalServer, err)
}
