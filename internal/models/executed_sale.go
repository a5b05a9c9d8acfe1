package models

import (
	"github.com/shopspring/decimal"
	"gorm.io/gorm"

	"github.com/juninatt/trader-journal/internal/validator"
)

// ExecutedSale is a partial or full disposal of units on the day of its
// snapshot. GrossGain and NetGain are derived and never set directly.
type ExecutedSale struct {
	Base
	TradeSnapshotID string          `gorm:"type:uuid;not null;index" json:"trade_snapshot_id" validate:"required"`
	QuantitySold    int             `gorm:"not null" json:"quantity_sold" validate:"gt=0"`
	SellPrice       decimal.Decimal `gorm:"type:decimal(20,8);not null" json:"sell_price" validate:"decimal_gt=0"`
	SellFee         decimal.Decimal `gorm:"type:decimal(20,8);not null" json:"sell_fee" validate:"decimal_gte=0"`
	GrossGain       decimal.Decimal `gorm:"type:decimal(20,8);not null" json:"gross_gain"`
	NetGain         decimal.Decimal `gorm:"type:decimal(20,8);not null" json:"net_gain"`
	SellTime        *TimeOfDay      `gorm:"type:varchar(8)" json:"sell_time,omitempty"`

	snapshot *TradeSnapshot
}

// NewExecutedSale creates a detached sale with its gains computed.
func NewExecutedSale(quantity int, price, fee decimal.Decimal, at *TimeOfDay) *ExecutedSale {
	s := &ExecutedSale{
		QuantitySold: quantity,
		SellPrice:    price,
		SellFee:      fee,
		SellTime:     at,
	}
	s.ensureID()
	s.Recalculate()
	return s
}

// Recalculate derives GrossGain = quantity × price and NetGain = gross − fee.
func (s *ExecutedSale) Recalculate() {
	s.GrossGain = s.SellPrice.Mul(decimal.NewFromInt(int64(s.QuantitySold)))
	s.NetGain = s.GrossGain.Sub(s.SellFee)
}

// Snapshot returns the owning snapshot, or nil when detached.
func (s *ExecutedSale) Snapshot() *TradeSnapshot { return s.snapshot }

// Validate checks the sale's own field constraints.
func (s *ExecutedSale) Validate() error {
	return validator.Struct(s)
}

// BeforeSave keeps the derived gains in step with the inputs.
func (s *ExecutedSale) BeforeSave(tx *gorm.DB) error {
	s.Recalculate()
	return nil
}
