package models

import (
	"fmt"
	"slices"
	"time"

	"github.com/shopspring/decimal"

	apperrors "github.com/juninatt/trader-journal/internal/errors"
	"github.com/juninatt/trader-journal/internal/validator"
)

// TradeSnapshot is a trade's recorded state on one calendar day. It belongs
// to one trade and one journal entry, referenced by ID, and owns the sales
// executed that day.
type TradeSnapshot struct {
	Base
	TradeID           string              `gorm:"type:uuid;not null;index" json:"trade_id" validate:"required"`
	JournalEntryID    string              `gorm:"type:uuid;not null;index" json:"journal_entry_id" validate:"required"`
	RecordedOn        time.Time           `gorm:"type:date;not null;index" json:"recorded_on"`
	RemainingQuantity int                 `gorm:"not null" json:"remaining_quantity" validate:"gte=0"`
	OpenPrice         decimal.Decimal     `gorm:"type:decimal(20,8);not null" json:"open_price" validate:"decimal_gt=0"`
	ClosePrice        decimal.NullDecimal `gorm:"type:decimal(20,8)" json:"close_price" validate:"omitempty,decimal_gte=0"`
	Notes             string              `json:"notes"`

	trade *Trade
	entry *JournalEntry
	sales []*ExecutedSale
}

// NewTradeSnapshot creates a detached snapshot with a fresh ID.
func NewTradeSnapshot(remaining int, openPrice decimal.Decimal) *TradeSnapshot {
	s := &TradeSnapshot{RemainingQuantity: remaining, OpenPrice: openPrice}
	s.ensureID()
	return s
}

// SetClosePrice records the day's close.
func (s *TradeSnapshot) SetClosePrice(price decimal.Decimal) {
	s.ClosePrice = decimal.NewNullDecimal(price)
}

// Trade returns the owning trade, or nil when detached.
func (s *TradeSnapshot) Trade() *Trade { return s.trade }

// JournalEntry returns the owning entry. Snapshots loaded only to complete a
// trade's history have no entry attached.
func (s *TradeSnapshot) JournalEntry() *JournalEntry { return s.entry }

// Date is the calendar day the snapshot was recorded on.
func (s *TradeSnapshot) Date() time.Time {
	if s.entry != nil {
		return s.entry.Date
	}
	return s.RecordedOn
}

// Sales returns a copy of the snapshot's executed sales.
func (s *TradeSnapshot) Sales() []*ExecutedSale {
	return slices.Clone(s.sales)
}

// IsClosed reports whether at least one sale was executed on this snapshot.
func (s *TradeSnapshot) IsClosed() bool { return len(s.sales) > 0 }

// SoldQuantity sums the units sold on this snapshot.
func (s *TradeSnapshot) SoldQuantity() int {
	total := 0
	for _, sale := range s.sales {
		total += sale.QuantitySold
	}
	return total
}

// AddSale attaches sale to the snapshot. The trade's total sold quantity may
// not exceed its purchased quantity. On failure the snapshot is unchanged.
//
// AddSale leaves RemainingQuantity alone, since stored sales are re-attached
// when a snapshot is loaded. Callers recording a new sale lower it themselves;
// Trade.Validate rejects units counted as both sold and held.
func (s *TradeSnapshot) AddSale(sale *ExecutedSale) error {
	if sale == nil {
		return nil
	}
	id := s.ensureID()
	if sale.TradeSnapshotID != "" && sale.TradeSnapshotID != id {
		return apperrors.WithMessage(apperrors.ErrOwnershipConflict,
			fmt.Sprintf("sale %s already belongs to snapshot %s", sale.ID, sale.TradeSnapshotID))
	}
	if slices.Contains(s.sales, sale) {
		return nil
	}
	if s.trade != nil && s.trade.SoldQuantity()+sale.QuantitySold > s.trade.Quantity {
		return apperrors.WithMessage(apperrors.ErrQuantityExceeded,
			fmt.Sprintf("selling %d would exceed the %d units bought (%d already sold)",
				sale.QuantitySold, s.trade.Quantity, s.trade.SoldQuantity()))
	}

	sale.ensureID()
	sale.TradeSnapshotID = id
	sale.snapshot = s
	s.sales = append(s.sales, sale)
	if s.trade != nil {
		s.trade.deriveExit()
	}
	return nil
}

// RemoveSale detaches sale, reporting whether it was attached here.
func (s *TradeSnapshot) RemoveSale(sale *ExecutedSale) bool {
	if sale == nil {
		return false
	}
	i := slices.Index(s.sales, sale)
	if i < 0 {
		return false
	}
	s.sales = slices.Delete(s.sales, i, i+1)
	sale.TradeSnapshotID = ""
	sale.snapshot = nil
	if s.trade != nil {
		s.trade.deriveExit()
	}
	return true
}

// Validate checks the snapshot and each of its sales.
func (s *TradeSnapshot) Validate() error {
	if err := validator.Struct(s); err != nil {
		return err
	}
	for _, sale := range s.sales {
		if err := sale.Validate(); err != nil {
			return err
		}
	}
	return nil
}
