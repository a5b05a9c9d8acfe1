package models

import (
	"errors"
	"strings"
	"testing"
	"time"

	"github.com/shopspring/decimal"

	apperrors "github.com/juninatt/trader-journal/internal/errors"
)

func dec(s string) decimal.Decimal { return decimal.RequireFromString(s) }

func day(d int) time.Time { return time.Date(2024, time.January, d, 0, 0, 0, 0, time.UTC) }

func assertDec(t *testing.T, name string, got decimal.Decimal, want string) {
	t.Helper()
	if !got.Equal(dec(want)) {
		t.Errorf("expected %s %s, got %s", name, want, got)
	}
}

func assertCode(t *testing.T, err error, code string) {
	t.Helper()
	var appErr *apperrors.AppError
	if !errors.As(err, &appErr) {
		t.Fatalf("expected *AppError with code %s, got %v", code, err)
	}
	if appErr.Code != code {
		t.Errorf("expected error code %s, got %s (%s)", code, appErr.Code, appErr.Message)
	}
}

func snapshotOn(t *testing.T, entry *JournalEntry, trade *Trade, remaining int, open, closePrice string) *TradeSnapshot {
	t.Helper()
	s := NewTradeSnapshot(remaining, dec(open))
	if closePrice != "" {
		s.SetClosePrice(dec(closePrice))
	}
	if err := trade.AddSnapshot(s); err != nil {
		t.Fatalf("AddSnapshot: %v", err)
	}
	if entry != nil {
		if err := entry.AddTradeSnapshot(s); err != nil {
			t.Fatalf("AddTradeSnapshot: %v", err)
		}
	}
	return s
}

func TestTradeAddSnapshot(t *testing.T) {
	t.Run("sets_back_reference", func(t *testing.T) {
		trade := NewTrade(10, dec("100"), decimal.Zero)
		s := NewTradeSnapshot(10, dec("100"))

		if err := trade.AddSnapshot(s); err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if s.TradeID != trade.ID || s.Trade() != trade {
			t.Error("snapshot should point back at its trade")
		}
		if len(trade.Snapshots()) != 1 {
			t.Errorf("expected 1 snapshot, got %d", len(trade.Snapshots()))
		}
	})

	t.Run("nil_is_noop", func(t *testing.T) {
		trade := NewTrade(10, dec("100"), decimal.Zero)
		if err := trade.AddSnapshot(nil); err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if len(trade.Snapshots()) != 0 {
			t.Error("nil snapshot should not be attached")
		}
	})

	t.Run("same_owner_is_idempotent", func(t *testing.T) {
		trade := NewTrade(10, dec("100"), decimal.Zero)
		s := NewTradeSnapshot(10, dec("100"))
		_ = trade.AddSnapshot(s)

		if err := trade.AddSnapshot(s); err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if len(trade.Snapshots()) != 1 {
			t.Errorf("expected 1 snapshot after re-attach, got %d", len(trade.Snapshots()))
		}
	})

	t.Run("other_owner_conflicts", func(t *testing.T) {
		first := NewTrade(10, dec("100"), decimal.Zero)
		second := NewTrade(5, dec("50"), decimal.Zero)
		s := NewTradeSnapshot(10, dec("100"))
		_ = first.AddSnapshot(s)

		err := second.AddSnapshot(s)
		assertCode(t, err, "OWNERSHIP_CONFLICT")
		if !errors.Is(err, apperrors.ErrOwnershipConflict) {
			t.Error("errors.Is should match the ownership sentinel")
		}
		if len(first.Snapshots()) != 1 || len(second.Snapshots()) != 0 {
			t.Error("both trades should be unchanged after a conflict")
		}
		if s.Trade() != first {
			t.Error("snapshot should still belong to the first trade")
		}
	})

	t.Run("rejects_oversold_snapshot", func(t *testing.T) {
		trade := NewTrade(5, dec("100"), decimal.Zero)
		s := NewTradeSnapshot(0, dec("100"))
		if err := s.AddSale(NewExecutedSale(6, dec("110"), decimal.Zero, nil)); err != nil {
			t.Fatalf("detached snapshot should accept the sale: %v", err)
		}

		assertCode(t, trade.AddSnapshot(s), "QUANTITY_EXCEEDED")
		if len(trade.Snapshots()) != 0 {
			t.Error("oversold snapshot should not be attached")
		}
	})
}

func TestTradeRemoveSnapshot(t *testing.T) {
	trade := NewTrade(10, dec("100"), decimal.Zero)
	s := NewTradeSnapshot(10, dec("100"))
	_ = trade.AddSnapshot(s)

	if !trade.RemoveSnapshot(s) {
		t.Fatal("expected removal to report true")
	}
	if s.TradeID != "" || s.Trade() != nil {
		t.Error("back-reference should be cleared")
	}
	if trade.RemoveSnapshot(s) {
		t.Error("second removal should report false")
	}
	if trade.RemoveSnapshot(nil) {
		t.Error("removing nil should report false")
	}

	// Detached snapshot can now join another trade.
	other := NewTrade(10, dec("100"), decimal.Zero)
	if err := other.AddSnapshot(s); err != nil {
		t.Errorf("expected re-attach to succeed, got %v", err)
	}
}

func TestTradeLedger(t *testing.T) {
	t.Run("no_snapshots", func(t *testing.T) {
		trade := NewTrade(3, dec("100"), dec("1"))
		assertDec(t, "current value", trade.CalculateCurrentValue(), "0")
		if trade.RemainingQuantity() != 0 {
			t.Errorf("expected remaining 0, got %d", trade.RemainingQuantity())
		}
		assertDec(t, "net gain", trade.CalculateNetGain(), "-301")
	})

	t.Run("unrealized_gain", func(t *testing.T) {
		entry := NewJournalEntry(day(2), "")
		trade := NewTrade(1, dec("100"), decimal.Zero)
		snapshotOn(t, entry, trade, 1, "100", "110")

		assertDec(t, "net gain", trade.CalculateNetGain(), "10.00")
		assertDec(t, "net gain %", trade.CalculateNetGainPercentage(), "10.00")
	})

	t.Run("missing_close_contributes_zero", func(t *testing.T) {
		entry := NewJournalEntry(day(2), "")
		trade := NewTrade(2, dec("100"), decimal.Zero)
		snapshotOn(t, entry, trade, 2, "100", "")

		assertDec(t, "current value", trade.CalculateCurrentValue(), "0")
		if trade.RemainingQuantity() != 2 {
			t.Errorf("expected remaining 2, got %d", trade.RemainingQuantity())
		}
	})

	t.Run("partial_sale_with_fees", func(t *testing.T) {
		monday := NewJournalEntry(day(8), "")
		tuesday := NewJournalEntry(day(9), "")
		trade := NewTrade(10, dec("50"), dec("5"))

		snapshotOn(t, monday, trade, 10, "50", "52")
		second := snapshotOn(t, tuesday, trade, 6, "52", "55")
		if err := second.AddSale(NewExecutedSale(4, dec("54"), dec("2"), At(10, 15))); err != nil {
			t.Fatalf("AddSale: %v", err)
		}

		// value: 52*10 + 55*6 = 850; realized: 216-2 = 214; cost: 505
		assertDec(t, "current value", trade.CalculateCurrentValue(), "850")
		assertDec(t, "realized", trade.RealizedGain(), "214")
		assertDec(t, "net gain", trade.CalculateNetGain(), "559")
		// 559/505 = 1.10693... -> 1.1069 -> 110.69
		assertDec(t, "net gain %", trade.CalculateNetGainPercentage(), "110.69")
		if trade.RemainingQuantity() != 16 {
			t.Errorf("expected remaining 16, got %d", trade.RemainingQuantity())
		}
		if trade.IsClosed() || trade.ExitPrice.Valid {
			t.Error("partially sold trade should stay open")
		}
	})

	t.Run("zero_cost_basis_percentage", func(t *testing.T) {
		trade := &Trade{Quantity: 0, EntryPrice: decimal.Zero, BuyFee: decimal.Zero}
		assertDec(t, "net gain %", trade.CalculateNetGainPercentage(), "0")
	})

	t.Run("percentage_rounds_half_up", func(t *testing.T) {
		entry := NewJournalEntry(day(2), "")
		trade := NewTrade(3, dec("1"), decimal.Zero)
		// net = 3*1.33335 - 3 = 1.00005 -> 0.33335 -> 0.3334 (4dp) -> 33.34
		snapshotOn(t, entry, trade, 3, "1", "1.33335")
		assertDec(t, "net gain %", trade.CalculateNetGainPercentage(), "33.34")
	})
}

func TestTradeSetQuantity(t *testing.T) {
	trade := &Trade{}
	if err := trade.SetQuantity(5); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	assertCode(t, trade.SetQuantity(0), "VALIDATION_FAILED")

	_ = trade.AddSnapshot(NewTradeSnapshot(5, dec("10")))
	assertCode(t, trade.SetQuantity(7), "QUANTITY_LOCKED")
	if trade.Quantity != 5 {
		t.Errorf("quantity should stay 5, got %d", trade.Quantity)
	}
}

func TestTradeExitDerivation(t *testing.T) {
	monday := NewJournalEntry(day(8), "")
	tuesday := NewJournalEntry(day(9), "")
	trade := NewTrade(10, dec("20"), decimal.Zero)
	first := snapshotOn(t, monday, trade, 10, "20", "21")
	second := snapshotOn(t, tuesday, trade, 4, "21", "22")

	_ = second.AddSale(NewExecutedSale(3, dec("23"), decimal.Zero, At(14, 0)))
	_ = first.AddSale(NewExecutedSale(3, dec("21.5"), decimal.Zero, At(16, 0)))
	if trade.IsClosed() {
		t.Fatal("trade with 4 units left should not be closed")
	}

	last := NewExecutedSale(4, dec("22.5"), decimal.Zero, At(15, 45))
	if err := second.AddSale(last); err != nil {
		t.Fatalf("AddSale: %v", err)
	}
	if !trade.IsClosed() {
		t.Fatal("fully sold trade should be closed")
	}
	assertDec(t, "exit price", trade.ExitPrice.Decimal, "22.5")
	if trade.ExitTime == nil || trade.ExitTime.String() != "15:45:00" {
		t.Errorf("expected exit time 15:45:00, got %v", trade.ExitTime)
	}

	second.RemoveSale(last)
	if trade.ExitPrice.Valid || trade.ExitTime != nil {
		t.Error("exit should be cleared once the trade reopens")
	}
}

func TestTradeValidate(t *testing.T) {
	t.Run("valid", func(t *testing.T) {
		entry := NewJournalEntry(day(2), "")
		trade := NewTrade(10, dec("100"), dec("1"))
		snapshotOn(t, entry, trade, 10, "100", "101")
		if err := trade.Validate(); err != nil {
			t.Errorf("unexpected error: %v", err)
		}
	})

	t.Run("field_constraints", func(t *testing.T) {
		trade := NewTrade(0, dec("-1"), dec("-2"))
		err := trade.Validate()
		assertCode(t, err, "VALIDATION_FAILED")
		for _, field := range []string{"quantity", "entry_price", "buy_fee"} {
			if !strings.Contains(err.Error(), field) {
				t.Errorf("expected message to mention %s, got %q", field, err.Error())
			}
		}
	})

	t.Run("snapshot_without_entry", func(t *testing.T) {
		trade := NewTrade(10, dec("100"), decimal.Zero)
		_ = trade.AddSnapshot(NewTradeSnapshot(10, dec("100")))
		assertCode(t, trade.Validate(), "VALIDATION_FAILED")
	})

	t.Run("remaining_exceeds_quantity", func(t *testing.T) {
		entry := NewJournalEntry(day(2), "")
		trade := NewTrade(10, dec("100"), decimal.Zero)
		snapshotOn(t, entry, trade, 11, "100", "")
		assertCode(t, trade.Validate(), "VALIDATION_FAILED")
	})

	t.Run("remaining_increases", func(t *testing.T) {
		trade := NewTrade(10, dec("100"), decimal.Zero)
		snapshotOn(t, NewJournalEntry(day(2), ""), trade, 5, "100", "")
		snapshotOn(t, NewJournalEntry(day(3), ""), trade, 8, "100", "")
		assertCode(t, trade.Validate(), "VALIDATION_FAILED")
	})

	t.Run("negative_close_price", func(t *testing.T) {
		trade := NewTrade(10, dec("100"), decimal.Zero)
		snapshotOn(t, NewJournalEntry(day(2), ""), trade, 10, "100", "-1")
		assertCode(t, trade.Validate(), "VALIDATION_FAILED")
	})
}

func TestTradeValidateSoldAndHeld(t *testing.T) {
	t.Run("sold_units_still_held", func(t *testing.T) {
		trade := NewTrade(10, dec("20"), decimal.Zero)
		s := snapshotOn(t, NewJournalEntry(day(2), ""), trade, 10, "20", "21")
		if err := s.AddSale(NewExecutedSale(10, dec("25"), decimal.Zero, nil)); err != nil {
			t.Fatalf("AddSale: %v", err)
		}

		err := trade.Validate()
		assertCode(t, err, "QUANTITY_EXCEEDED")
		if !errors.Is(err, apperrors.ErrQuantityExceeded) {
			t.Error("errors.Is should match the quantity sentinel")
		}
	})

	t.Run("sold_units_released", func(t *testing.T) {
		trade := NewTrade(10, dec("20"), decimal.Zero)
		s := snapshotOn(t, NewJournalEntry(day(2), ""), trade, 10, "20", "21")
		if err := s.AddSale(NewExecutedSale(10, dec("25"), decimal.Zero, nil)); err != nil {
			t.Fatalf("AddSale: %v", err)
		}
		s.RemainingQuantity = 0

		if err := trade.Validate(); err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		assertDec(t, "net gain", trade.CalculateNetGain(), "50")
		assertDec(t, "net gain %", trade.CalculateNetGainPercentage(), "25")
	})

	t.Run("sold_on_earlier_day", func(t *testing.T) {
		trade := NewTrade(10, dec("20"), decimal.Zero)
		first := snapshotOn(t, NewJournalEntry(day(2), ""), trade, 6, "20", "21")
		if err := first.AddSale(NewExecutedSale(4, dec("21"), decimal.Zero, nil)); err != nil {
			t.Fatalf("AddSale: %v", err)
		}
		second := snapshotOn(t, NewJournalEntry(day(3), ""), trade, 6, "21", "22")
		if err := second.AddSale(NewExecutedSale(2, dec("22"), decimal.Zero, nil)); err != nil {
			t.Fatalf("AddSale: %v", err)
		}
		assertCode(t, trade.Validate(), "QUANTITY_EXCEEDED")

		second.RemainingQuantity = 4
		if err := trade.Validate(); err != nil {
			t.Errorf("unexpected error once the sold units are released: %v", err)
		}
	})
}
