package models

import (
	"fmt"
	"slices"
	"time"

	"github.com/shopspring/decimal"

	apperrors "github.com/juninatt/trader-journal/internal/errors"
	"github.com/juninatt/trader-journal/internal/validator"
)

// JournalEntry is the aggregation root for one calendar day of trading. It
// owns the snapshots recorded that day; the trades it shows are derived from
// those snapshots on every call.
type JournalEntry struct {
	Base
	Date            time.Time           `gorm:"type:date;not null;uniqueIndex" json:"date" validate:"required"`
	Comment         string              `json:"comment"`
	Notes           string              `json:"notes"`
	CashBalance     decimal.Decimal     `gorm:"type:decimal(20,8);not null;default:0" json:"cash_balance"`
	InvestedCapital decimal.NullDecimal `gorm:"type:decimal(20,8)" json:"invested_capital" validate:"omitempty,decimal_gte=0"`

	snapshots []*TradeSnapshot
}

// DateOf truncates t to midnight UTC of its calendar day.
func DateOf(t time.Time) time.Time {
	y, m, d := t.Date()
	return time.Date(y, m, d, 0, 0, 0, 0, time.UTC)
}

// NewJournalEntry creates an entry for the day of date.
func NewJournalEntry(date time.Time, comment string) *JournalEntry {
	e := &JournalEntry{Date: DateOf(date), Comment: comment}
	e.ensureID()
	return e
}

// SetDate moves the entry to another day and restamps its snapshots.
func (e *JournalEntry) SetDate(date time.Time) {
	e.Date = DateOf(date)
	for _, s := range e.snapshots {
		s.RecordedOn = e.Date
	}
}

// Snapshots returns a copy of the owned snapshots in attach order.
func (e *JournalEntry) Snapshots() []*TradeSnapshot {
	return slices.Clone(e.snapshots)
}

// AddTradeSnapshot attaches s to this entry. A snapshot owned by another
// entry is rejected with ErrOwnershipConflict and neither entry changes.
func (e *JournalEntry) AddTradeSnapshot(s *TradeSnapshot) error {
	if s == nil {
		return nil
	}
	if err := e.checkOwner(s); err != nil {
		return err
	}
	if slices.Contains(e.snapshots, s) {
		return nil
	}
	e.attach(s)
	return nil
}

// AddTrade attaches every snapshot of t that has no entry yet. It fails when
// t has no snapshots, or when all of them belong to other entries.
func (e *JournalEntry) AddTrade(t *Trade) error {
	if t == nil {
		return nil
	}
	if len(t.snapshots) == 0 {
		return validator.Failure("trade %s has no snapshots to record", t.ID)
	}

	id := e.ensureID()
	var pending []*TradeSnapshot
	owned := false
	for _, s := range t.snapshots {
		switch s.JournalEntryID {
		case "":
			pending = append(pending, s)
		case id:
			owned = true
		}
	}
	if len(pending) == 0 && !owned {
		return apperrors.WithMessage(apperrors.ErrOwnershipConflict,
			fmt.Sprintf("every snapshot of trade %s belongs to another journal entry", t.ID))
	}

	for _, s := range pending {
		e.attach(s)
	}
	// Snapshots assigned by ID but loaded without their entry.
	for _, s := range t.snapshots {
		if s.JournalEntryID == id && !slices.Contains(e.snapshots, s) {
			e.attach(s)
		}
	}
	return nil
}

// RemoveSnapshot detaches s, reporting whether it was attached here.
func (e *JournalEntry) RemoveSnapshot(s *TradeSnapshot) bool {
	if s == nil {
		return false
	}
	i := slices.Index(e.snapshots, s)
	if i < 0 {
		return false
	}
	e.snapshots = slices.Delete(e.snapshots, i, i+1)
	s.JournalEntryID = ""
	s.entry = nil
	return true
}

// RemoveTrade detaches every snapshot of t owned by this entry, reporting
// whether any was removed.
func (e *JournalEntry) RemoveTrade(t *Trade) bool {
	if t == nil {
		return false
	}
	removed := false
	for _, s := range slices.Clone(e.snapshots) {
		if s.trade == t {
			removed = e.RemoveSnapshot(s) || removed
		}
	}
	return removed
}

// Trades projects the distinct trades referenced by the owned snapshots,
// in order of first appearance.
func (e *JournalEntry) Trades() []*Trade {
	seen := make(map[*Trade]struct{}, len(e.snapshots))
	trades := make([]*Trade, 0, len(e.snapshots))
	for _, s := range e.snapshots {
		if s.trade == nil {
			continue
		}
		if _, ok := seen[s.trade]; ok {
			continue
		}
		seen[s.trade] = struct{}{}
		trades = append(trades, s.trade)
	}
	return trades
}

// Sales lists the sales executed on this entry's snapshots.
func (e *JournalEntry) Sales() []*ExecutedSale {
	var sales []*ExecutedSale
	for _, s := range e.snapshots {
		sales = append(sales, s.sales...)
	}
	return sales
}

// Validate checks the entry and the full graph under it.
func (e *JournalEntry) Validate() error {
	if err := validator.Struct(e); err != nil {
		return err
	}
	for _, s := range e.snapshots {
		if s.trade == nil {
			return validator.Failure("snapshot %s has no trade", s.ID)
		}
	}
	for _, t := range e.Trades() {
		if err := t.Validate(); err != nil {
			return err
		}
	}
	return nil
}

func (e *JournalEntry) checkOwner(s *TradeSnapshot) error {
	id := e.ensureID()
	if s.JournalEntryID != "" && s.JournalEntryID != id {
		return apperrors.WithMessage(apperrors.ErrOwnershipConflict,
			fmt.Sprintf("snapshot %s already belongs to journal entry %s", s.ID, s.JournalEntryID))
	}
	return nil
}

func (e *JournalEntry) attach(s *TradeSnapshot) {
	s.ensureID()
	s.JournalEntryID = e.ID
	s.entry = e
	s.RecordedOn = e.Date
	e.snapshots = append(e.snapshots, s)
}
