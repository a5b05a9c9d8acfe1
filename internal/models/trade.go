package models

import (
	"fmt"
	"slices"
	"sort"

	"github.com/shopspring/decimal"

	apperrors "github.com/juninatt/trader-journal/internal/errors"
	"github.com/juninatt/trader-journal/internal/validator"
)

var hundred = decimal.NewFromInt(100)

// Trade is one buy-to-sell lifecycle for an asset. It owns its daily
// snapshots; the snapshot set is unordered and SnapshotsByDate rebuilds the
// chronology from the owning journal entries.
type Trade struct {
	Base
	AssetID    *string             `gorm:"type:uuid;index" json:"asset_id,omitempty"`
	Label      string              `json:"label"`
	Quantity   int                 `gorm:"not null" json:"quantity" validate:"gt=0"`
	BuyFee     decimal.Decimal     `gorm:"type:decimal(20,8);not null" json:"buy_fee" validate:"decimal_gte=0"`
	EntryPrice decimal.Decimal     `gorm:"type:decimal(20,8);not null" json:"entry_price" validate:"decimal_gt=0"`
	ExitPrice  decimal.NullDecimal `gorm:"type:decimal(20,8)" json:"exit_price" validate:"omitempty,decimal_gte=0"`
	EntryTime  *TimeOfDay          `gorm:"type:varchar(8)" json:"entry_time,omitempty"`
	ExitTime   *TimeOfDay          `gorm:"type:varchar(8)" json:"exit_time,omitempty"`
	Notes      string              `json:"notes"`

	asset     *Asset
	snapshots []*TradeSnapshot
}

// NewTrade opens a trade with a fresh ID.
func NewTrade(quantity int, entryPrice, buyFee decimal.Decimal) *Trade {
	t := &Trade{Quantity: quantity, EntryPrice: entryPrice, BuyFee: buyFee}
	t.ensureID()
	return t
}

// Asset returns the referenced asset if it was loaded or set.
func (t *Trade) Asset() *Asset { return t.asset }

// SetAsset points the trade at a, or clears the reference when a is nil.
func (t *Trade) SetAsset(a *Asset) {
	t.asset = a
	if a == nil {
		t.AssetID = nil
		return
	}
	id := a.ensureID()
	t.AssetID = &id
}

// SetQuantity sets the purchased quantity. It is fixed once the trade has
// snapshots.
func (t *Trade) SetQuantity(quantity int) error {
	if len(t.snapshots) > 0 {
		return apperrors.ErrQuantityLocked
	}
	if quantity <= 0 {
		return validator.Failure("quantity must be greater than 0")
	}
	t.Quantity = quantity
	return nil
}

// Snapshots returns a copy of the owned snapshot set.
func (t *Trade) Snapshots() []*TradeSnapshot {
	return slices.Clone(t.snapshots)
}

// SnapshotsByDate returns the snapshots in ascending date order. Snapshots on
// the same date keep their attach order.
func (t *Trade) SnapshotsByDate() []*TradeSnapshot {
	sorted := slices.Clone(t.snapshots)
	sort.SliceStable(sorted, func(i, j int) bool {
		return sorted[i].Date().Before(sorted[j].Date())
	})
	return sorted
}

// AddSnapshot attaches s to this trade. A snapshot owned by another trade is
// rejected with ErrOwnershipConflict and neither trade changes.
func (t *Trade) AddSnapshot(s *TradeSnapshot) error {
	if s == nil {
		return nil
	}
	id := t.ensureID()
	if s.TradeID != "" && s.TradeID != id {
		return apperrors.WithMessage(apperrors.ErrOwnershipConflict,
			fmt.Sprintf("snapshot %s already belongs to trade %s", s.ID, s.TradeID))
	}
	if slices.Contains(t.snapshots, s) {
		return nil
	}
	if sold := t.SoldQuantity() + s.SoldQuantity(); sold > t.Quantity {
		return apperrors.WithMessage(apperrors.ErrQuantityExceeded,
			fmt.Sprintf("snapshot sales bring the sold total to %d of %d units", sold, t.Quantity))
	}

	s.ensureID()
	s.TradeID = id
	s.trade = t
	t.snapshots = append(t.snapshots, s)
	t.deriveExit()
	return nil
}

// RemoveSnapshot detaches s, reporting whether it was attached here.
func (t *Trade) RemoveSnapshot(s *TradeSnapshot) bool {
	if s == nil {
		return false
	}
	i := slices.Index(t.snapshots, s)
	if i < 0 {
		return false
	}
	t.snapshots = slices.Delete(t.snapshots, i, i+1)
	s.TradeID = ""
	s.trade = nil
	t.deriveExit()
	return true
}

// Sales lists every executed sale across the trade's snapshots in date order.
func (t *Trade) Sales() []*ExecutedSale {
	var sales []*ExecutedSale
	for _, s := range t.SnapshotsByDate() {
		sales = append(sales, s.sales...)
	}
	return sales
}

// InitialInvestment is the cost basis: entry price × quantity + buy fee.
func (t *Trade) InitialInvestment() decimal.Decimal {
	return t.EntryPrice.Mul(decimal.NewFromInt(int64(t.Quantity))).Add(t.BuyFee)
}

// CalculateCurrentValue sums close price × remaining quantity over snapshots
// with a recorded close. Snapshots without a close contribute nothing.
func (t *Trade) CalculateCurrentValue() decimal.Decimal {
	total := decimal.Zero
	for _, s := range t.snapshots {
		if !s.ClosePrice.Valid {
			continue
		}
		total = total.Add(s.ClosePrice.Decimal.Mul(decimal.NewFromInt(int64(s.RemainingQuantity))))
	}
	return total
}

// RealizedGain sums the net gain of every executed sale.
func (t *Trade) RealizedGain() decimal.Decimal {
	total := decimal.Zero
	for _, s := range t.snapshots {
		for _, sale := range s.sales {
			total = total.Add(sale.NetGain)
		}
	}
	return total
}

// CalculateNetGain combines realized sale proceeds with the value of the
// remaining units, net of the cost basis.
func (t *Trade) CalculateNetGain() decimal.Decimal {
	return t.RealizedGain().Add(t.CalculateCurrentValue()).Sub(t.InitialInvestment())
}

// CalculateNetGainPercentage returns net gain over cost basis in percent,
// rounded half-up to 2 decimals from a 4-decimal ratio. A zero cost basis
// has no meaningful percentage and yields zero.
func (t *Trade) CalculateNetGainPercentage() decimal.Decimal {
	initial := t.InitialInvestment()
	if initial.IsZero() {
		return decimal.Zero
	}
	return t.CalculateNetGain().DivRound(initial, 4).Mul(hundred).Round(2)
}

// RemainingQuantity sums the remaining quantity across all snapshots.
func (t *Trade) RemainingQuantity() int {
	total := 0
	for _, s := range t.snapshots {
		total += s.RemainingQuantity
	}
	return total
}

// SoldQuantity sums the units sold across all snapshots.
func (t *Trade) SoldQuantity() int {
	total := 0
	for _, s := range t.snapshots {
		total += s.SoldQuantity()
	}
	return total
}

// IsClosed reports whether the full quantity has been sold.
func (t *Trade) IsClosed() bool {
	return t.Quantity > 0 && t.SoldQuantity() >= t.Quantity
}

// deriveExit sets the exit price and time from the last sale once the trade
// is fully sold, and clears them otherwise.
func (t *Trade) deriveExit() {
	if !t.IsClosed() {
		t.ExitPrice = decimal.NullDecimal{}
		t.ExitTime = nil
		return
	}

	var last *ExecutedSale
	for _, s := range t.SnapshotsByDate() {
		for _, sale := range s.sales {
			if last == nil || last.snapshot.Date().Before(s.Date()) || !sellsBefore(sale, last) {
				last = sale
			}
		}
	}
	if last == nil {
		return
	}
	t.ExitPrice = decimal.NewNullDecimal(last.SellPrice)
	t.ExitTime = last.SellTime
}

// sellsBefore orders sales on the same day. Sales without a time sort first.
func sellsBefore(a, b *ExecutedSale) bool {
	switch {
	case a.SellTime == nil:
		return b.SellTime != nil
	case b.SellTime == nil:
		return false
	}
	return a.SellTime.Before(*b.SellTime)
}

// Validate checks the trade's fields, its snapshots and sales, and the
// quantity rules that span them.
func (t *Trade) Validate() error {
	if err := validator.Struct(t); err != nil {
		return err
	}

	previous, sold := -1, 0
	for _, s := range t.SnapshotsByDate() {
		if err := s.Validate(); err != nil {
			return err
		}
		day := s.Date().Format("2006-01-02")
		if s.RemainingQuantity > t.Quantity {
			return validator.Failure("remaining_quantity %d exceeds trade quantity %d on %s",
				s.RemainingQuantity, t.Quantity, day)
		}
		if previous >= 0 && s.RemainingQuantity > previous {
			return validator.Failure("remaining_quantity increases from %d to %d on %s",
				previous, s.RemainingQuantity, day)
		}
		previous = s.RemainingQuantity

		// Units sold so far cannot still be held.
		sold += s.SoldQuantity()
		if s.RemainingQuantity+sold > t.Quantity {
			return apperrors.WithMessage(apperrors.ErrQuantityExceeded,
				fmt.Sprintf("%d units held and %d sold of %d bought on %s",
					s.RemainingQuantity, sold, t.Quantity, day))
		}
	}

	if sold := t.SoldQuantity(); sold > t.Quantity {
		return apperrors.WithMessage(apperrors.ErrQuantityExceeded,
			fmt.Sprintf("%d units sold of %d bought", sold, t.Quantity))
	}
	return nil
}
