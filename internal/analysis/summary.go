package analysis

import (
	"time"

	"github.com/shopspring/decimal"

	"github.com/juninatt/trader-journal/internal/models"
)

// TradeSummary holds the ledger figures of one trade.
type TradeSummary struct {
	TradeID           string          `json:"trade_id"`
	Label             string          `json:"label,omitempty"`
	Ticker            string          `json:"ticker,omitempty"`
	Quantity          int             `json:"quantity"`
	RemainingQuantity int             `json:"remaining_quantity"`
	SoldQuantity      int             `json:"sold_quantity"`
	InitialInvestment decimal.Decimal `json:"initial_investment"`
	CurrentValue      decimal.Decimal `json:"current_value"`
	RealizedGain      decimal.Decimal `json:"realized_gain"`
	NetGain           decimal.Decimal `json:"net_gain"`
	NetGainPercentage decimal.Decimal `json:"net_gain_percentage"`
	Closed            bool            `json:"closed"`
	CrossesWeekend    bool            `json:"crosses_weekend"`
}

// Summary bundles every journal-level figure for one entry.
type Summary struct {
	JournalEntryID          string          `json:"journal_entry_id"`
	Date                    time.Time       `json:"date"`
	TotalChange             decimal.Decimal `json:"total_change"`
	AverageChangePercentage decimal.Decimal `json:"average_change_percentage"`
	ClosedSnapshots         int             `json:"closed_snapshots"`
	OpenSnapshots           int             `json:"open_snapshots"`
	MorningBuys             int             `json:"morning_buys"`
	EveningSells            int             `json:"evening_sells"`
	HeldOverWeekend         bool            `json:"held_over_weekend"`
	Trades                  []TradeSummary  `json:"trades"`
}

// SummarizeTrade computes the ledger figures of t.
func SummarizeTrade(t *models.Trade) TradeSummary {
	ts := TradeSummary{
		TradeID:           t.ID,
		Label:             t.Label,
		Quantity:          t.Quantity,
		RemainingQuantity: t.RemainingQuantity(),
		SoldQuantity:      t.SoldQuantity(),
		InitialInvestment: t.InitialInvestment(),
		CurrentValue:      t.CalculateCurrentValue(),
		RealizedGain:      t.RealizedGain(),
		NetGain:           t.CalculateNetGain(),
		NetGainPercentage: t.CalculateNetGainPercentage(),
		Closed:            t.IsClosed(),
		CrossesWeekend:    CrossesWeekend(t),
	}
	if a := t.Asset(); a != nil {
		ts.Ticker = a.Ticker
	}
	return ts
}

// Summarize computes every journal-level figure for entry.
func Summarize(entry *models.JournalEntry) Summary {
	trades := entry.Trades()
	s := Summary{
		JournalEntryID:          entry.ID,
		Date:                    entry.Date,
		TotalChange:             TotalChange(entry),
		AverageChangePercentage: AverageChangePercentage(entry),
		ClosedSnapshots:         CountClosedSnapshots(entry),
		OpenSnapshots:           CountOpenSnapshots(entry),
		MorningBuys:             MorningBuyCount(entry),
		EveningSells:            EveningSellCount(entry),
		HeldOverWeekend:         ContainsHeldOverWeekendTrades(entry),
		Trades:                  make([]TradeSummary, 0, len(trades)),
	}
	for _, t := range trades {
		s.Trades = append(s.Trades, SummarizeTrade(t))
	}
	return s
}
