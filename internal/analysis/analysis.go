// Package analysis derives performance figures from a loaded journal entry.
// Every function is pure. Items missing an optional input (no close price,
// no buy or sell time) are left out of a figure rather than counted as zero.
package analysis

import (
	"time"

	"github.com/shopspring/decimal"

	"github.com/juninatt/trader-journal/internal/models"
)

var (
	hundred = decimal.NewFromInt(100)

	// MorningCutoff is exclusive: a buy at exactly 11:00 is not a morning buy.
	MorningCutoff = models.TimeOfDay{Hour: 11}
	// EveningCutoff is inclusive: a sale at exactly 15:00 is an evening sell.
	EveningCutoff = models.TimeOfDay{Hour: 15}
)

// ChangeAmount is (close − open) × remaining quantity for one snapshot.
// A snapshot without a close price contributes zero.
func ChangeAmount(s *models.TradeSnapshot) decimal.Decimal {
	if s == nil || !s.ClosePrice.Valid {
		return decimal.Zero
	}
	return s.ClosePrice.Decimal.Sub(s.OpenPrice).Mul(decimal.NewFromInt(int64(s.RemainingQuantity)))
}

// ChangePercentage is (close − open) / open × 100, with a 4-decimal ratio.
// A missing close or a zero open price yields zero.
func ChangePercentage(s *models.TradeSnapshot) decimal.Decimal {
	pct, ok := changePercentage(s)
	if !ok {
		return decimal.Zero
	}
	return pct
}

func changePercentage(s *models.TradeSnapshot) (decimal.Decimal, bool) {
	if s == nil || !s.ClosePrice.Valid || s.OpenPrice.IsZero() {
		return decimal.Zero, false
	}
	ratio := s.ClosePrice.Decimal.Sub(s.OpenPrice).DivRound(s.OpenPrice, 4)
	return ratio.Mul(hundred), true
}

// TotalChange sums ChangeAmount over the snapshots recorded on the entry.
func TotalChange(entry *models.JournalEntry) decimal.Decimal {
	total := decimal.Zero
	if entry == nil {
		return total
	}
	for _, s := range entry.Snapshots() {
		total = total.Add(ChangeAmount(s))
	}
	return total
}

// AverageChangePercentage is the mean ChangePercentage over snapshots with
// both prices, rounded half-up to 2 decimals. No such snapshot yields zero.
func AverageChangePercentage(entry *models.JournalEntry) decimal.Decimal {
	if entry == nil {
		return decimal.Zero
	}
	sum := decimal.Zero
	n := 0
	for _, s := range entry.Snapshots() {
		pct, ok := changePercentage(s)
		if !ok {
			continue
		}
		sum = sum.Add(pct)
		n++
	}
	if n == 0 {
		return decimal.Zero
	}
	return sum.DivRound(decimal.NewFromInt(int64(n)), 2)
}

// CountClosedSnapshots counts snapshots with at least one executed sale.
func CountClosedSnapshots(entry *models.JournalEntry) int {
	if entry == nil {
		return 0
	}
	n := 0
	for _, s := range entry.Snapshots() {
		if s.IsClosed() {
			n++
		}
	}
	return n
}

// CountOpenSnapshots counts snapshots without any executed sale.
func CountOpenSnapshots(entry *models.JournalEntry) int {
	if entry == nil {
		return 0
	}
	return len(entry.Snapshots()) - CountClosedSnapshots(entry)
}

// MorningBuyCount counts the entry's trades bought strictly before 11:00.
func MorningBuyCount(entry *models.JournalEntry) int {
	if entry == nil {
		return 0
	}
	n := 0
	for _, t := range entry.Trades() {
		if t.EntryTime != nil && t.EntryTime.Before(MorningCutoff) {
			n++
		}
	}
	return n
}

// EveningSellCount counts sales on the entry executed at or after 15:00.
func EveningSellCount(entry *models.JournalEntry) int {
	if entry == nil {
		return 0
	}
	n := 0
	for _, sale := range entry.Sales() {
		if sale.SellTime != nil && !sale.SellTime.Before(EveningCutoff) {
			n++
		}
	}
	return n
}

// ContainsHeldOverWeekendTrades reports whether any trade on the entry was
// held across a Saturday or Sunday.
func ContainsHeldOverWeekendTrades(entry *models.JournalEntry) bool {
	if entry == nil {
		return false
	}
	for _, t := range entry.Trades() {
		if CrossesWeekend(t) {
			return true
		}
	}
	return false
}

// CrossesWeekend walks each day after the trade's first snapshot date up to
// and including its last, and reports whether any is a Saturday or Sunday.
// Fewer than two snapshots never span a weekend.
func CrossesWeekend(t *models.Trade) bool {
	if t == nil {
		return false
	}
	snapshots := t.SnapshotsByDate()
	if len(snapshots) < 2 {
		return false
	}
	start := models.DateOf(snapshots[0].Date())
	end := models.DateOf(snapshots[len(snapshots)-1].Date())
	for day := start.AddDate(0, 0, 1); !day.After(end); day = day.AddDate(0, 0, 1) {
		if wd := day.Weekday(); wd == time.Saturday || wd == time.Sunday {
			return true
		}
	}
	return false
}
