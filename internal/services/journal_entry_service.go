package services

import (
	"time"

	"github.com/shopspring/decimal"

	"github.com/juninatt/trader-journal/internal/analysis"
	apperrors "github.com/juninatt/trader-journal/internal/errors"
	"github.com/juninatt/trader-journal/internal/logger"
	"github.com/juninatt/trader-journal/internal/models"
	"github.com/juninatt/trader-journal/internal/pagination"
	"github.com/juninatt/trader-journal/internal/repository"
)

// journalEntryService handles journal entry business logic.
type journalEntryService struct {
	entries repository.JournalEntryRepository
	audit   AuditServicer
}

// NewJournalEntryService creates a new JournalEntryServicer.
func NewJournalEntryService(entries repository.JournalEntryRepository, audit AuditServicer) JournalEntryServicer {
	return &journalEntryService{entries: entries, audit: audit}
}

// CreateEntry opens the journal for a new day.
func (s *journalEntryService) CreateEntry(input JournalEntryInput) (*models.JournalEntry, error) {
	if input.Date.IsZero() {
		return nil, apperrors.WithMessage(apperrors.ErrInvalidInput, "Date is required")
	}

	entry := models.NewJournalEntry(input.Date, input.Comment)
	applyEntryInput(entry, input)

	if err := s.entries.Save(entry); err != nil {
		return nil, err
	}

	logger.Get().Infow("journal entry created", "journal_entry_id", entry.ID, "date", entry.Date.Format(time.DateOnly))
	s.audit.Log(models.AuditActionCreate, "journal_entry", entry.ID, map[string]any{
		"date": entry.Date.Format(time.DateOnly),
	})
	return entry, nil
}

// UpdateEntry edits the entry's own fields. Moving the date restamps the
// entry's snapshots.
func (s *journalEntryService) UpdateEntry(id string, input JournalEntryInput) (*models.JournalEntry, error) {
	entry, err := s.GetEntry(id)
	if err != nil {
		return nil, err
	}

	if !input.Date.IsZero() {
		entry.SetDate(input.Date)
	}
	entry.Comment = input.Comment
	applyEntryInput(entry, input)

	if err := s.entries.Save(entry); err != nil {
		return nil, err
	}

	s.audit.Log(models.AuditActionUpdate, "journal_entry", entry.ID, map[string]any{
		"date":         entry.Date.Format(time.DateOnly),
		"cash_balance": entry.CashBalance.String(),
	})
	return entry, nil
}

func applyEntryInput(entry *models.JournalEntry, input JournalEntryInput) {
	entry.Notes = input.Notes
	entry.CashBalance = input.CashBalance
	if input.InvestedCapital != nil {
		entry.InvestedCapital = decimal.NewNullDecimal(*input.InvestedCapital)
	} else {
		entry.InvestedCapital = decimal.NullDecimal{}
	}
}

// GetEntry returns the fully loaded entry with id.
func (s *journalEntryService) GetEntry(id string) (*models.JournalEntry, error) {
	entry, found, err := s.entries.FindByID(id)
	if err != nil {
		return nil, err
	}
	if !found {
		return nil, apperrors.ErrJournalEntryNotFound
	}
	return entry, nil
}

// GetLatestEntry returns the most recent entry.
func (s *journalEntryService) GetLatestEntry() (*models.JournalEntry, error) {
	entry, found, err := s.entries.FindLatestEntry()
	if err != nil {
		return nil, err
	}
	if !found {
		return nil, apperrors.ErrJournalEntryNotFound
	}
	return entry, nil
}

// ListEntries returns a page of entries, most recent first.
func (s *journalEntryService) ListEntries(page pagination.PageRequest) (*pagination.PageResponse[*models.JournalEntry], error) {
	return s.entries.FindPage(page)
}

// ListAllEntries returns every entry, most recent first.
func (s *journalEntryService) ListAllEntries() ([]*models.JournalEntry, error) {
	return s.entries.FindAll()
}

// DeleteEntry removes the entry with its snapshots and their sales. Trades
// recorded only on this entry go with it.
func (s *journalEntryService) DeleteEntry(id string) error {
	entry, err := s.GetEntry(id)
	if err != nil {
		return err
	}

	removed, err := s.entries.Remove(entry)
	if err != nil {
		return err
	}
	if !removed {
		return apperrors.ErrJournalEntryNotFound
	}

	logger.Get().Infow("journal entry deleted", "journal_entry_id", id)
	s.audit.Log(models.AuditActionDelete, "journal_entry", id, map[string]any{
		"date":      entry.Date.Format(time.DateOnly),
		"snapshots": len(entry.Snapshots()),
	})
	return nil
}

// GetTotalChangeForEntry returns the summed change amount of the entry's
// snapshots.
func (s *journalEntryService) GetTotalChangeForEntry(id string) (decimal.Decimal, error) {
	entry, err := s.GetEntry(id)
	if err != nil {
		return decimal.Zero, err
	}
	return analysis.TotalChange(entry), nil
}

// AnalyzeEntry computes every journal-level figure for the entry.
func (s *journalEntryService) AnalyzeEntry(id string) (*analysis.Summary, error) {
	entry, err := s.GetEntry(id)
	if err != nil {
		return nil, err
	}
	summary := analysis.Summarize(entry)
	return &summary, nil
}
