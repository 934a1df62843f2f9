package seating

import (
	"testing"

	"github.com/iliyamo/cinema-booking-core/internal/outcome"
)

func TestNewSeat(t *testing.T) {
	t.Parallel()

	t.Run("normalizes column before validating", func(t *testing.T) {
		seat, ok := NewSeat(" c ", 5, false).Value()
		if !ok {
			t.Fatalf("expected success")
		}
		if seat.Column() != "C" || seat.Row() != 5 || seat.Preferential() {
			t.Fatalf("unexpected seat: %+v", seat)
		}
		if seat.Identifier() != "C5" {
			t.Fatalf("expected identifier C5, got %s", seat.Identifier())
		}
	})

	t.Run("multi-letter column is a format error", func(t *testing.T) {
		o := NewSeat("AA", 5, false)
		if !o.IsFailure() || o.Errors()[0].Code != outcome.InvalidColumnFormat {
			t.Fatalf("expected InvalidColumnFormat, got %+v", o.Errors())
		}
	})

	t.Run("non-letter column is a format error", func(t *testing.T) {
		o := NewSeat("7", 5, false)
		if !o.IsFailure() || o.Errors()[0].Code != outcome.InvalidColumnFormat {
			t.Fatalf("expected InvalidColumnFormat, got %+v", o.Errors())
		}
	})

	t.Run("blank column is missing data", func(t *testing.T) {
		o := NewSeat("   ", 5, false)
		if !o.IsFailure() || o.Errors()[0].Code != outcome.MissingRequiredData {
			t.Fatalf("expected MissingRequiredData, got %+v", o.Errors())
		}
	})

	t.Run("row above the ceiling is out of range", func(t *testing.T) {
		o := NewSeat("L", 251, false)
		if !o.IsFailure() || o.Errors()[0].Code != outcome.ValueOutOfRange {
			t.Fatalf("expected ValueOutOfRange, got %+v", o.Errors())
		}
	})

	t.Run("row at the ceiling is accepted", func(t *testing.T) {
		if o := NewSeat("L", 250, false); !o.IsSuccess() {
			t.Fatalf("row 250 must be valid: %+v", o.Errors())
		}
	})

	t.Run("zero row is not positive", func(t *testing.T) {
		o := NewSeat("L", 0, false)
		if !o.IsFailure() || o.Errors()[0].Code != outcome.ValueNotPositive {
			t.Fatalf("expected ValueNotPositive, got %+v", o.Errors())
		}
	})

	t.Run("fractional row has its own code", func(t *testing.T) {
		o := NewSeat("L", 1.5, false)
		if !o.IsFailure() || o.Errors()[0].Code != outcome.ValueNotInteger {
			t.Fatalf("expected ValueNotInteger, got %+v", o.Errors())
		}
	})

	t.Run("bad column and bad row report together", func(t *testing.T) {
		o := NewSeat("AA", -2, false)
		errs := o.Errors()
		if len(errs) != 2 {
			t.Fatalf("expected both violations, got %+v", errs)
		}
		if errs[0].Code != outcome.InvalidColumnFormat || errs[1].Code != outcome.ValueNotPositive {
			t.Fatalf("unexpected codes: %+v", errs)
		}
	})
}

func TestSeatEquality(t *testing.T) {
	t.Parallel()

	a := NewSeat("C", 12, true).MustValue()
	b := NewSeat(" c ", 12, true).MustValue()
	c := NewSeat("C", 12, false).MustValue()

	if !a.Equal(b) {
		t.Fatalf("normalized seats at the same position must be equal")
	}
	if a.Equal(c) {
		t.Fatalf("preferential flag must participate in equality")
	}
}
