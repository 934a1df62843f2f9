package schedule

import (
	"testing"
	"time"

	"github.com/iliyamo/cinema-booking-core/internal/outcome"
)

var base = time.Date(2025, 3, 10, 18, 0, 0, 0, time.UTC)

func mustInterval(t *testing.T, start, end time.Time) Interval {
	t.Helper()
	iv, ok := NewInterval(start, end).Value()
	if !ok {
		t.Fatalf("expected valid interval %v..%v", start, end)
	}
	return iv
}

func TestNewInterval(t *testing.T) {
	t.Parallel()

	t.Run("start before end succeeds", func(t *testing.T) {
		iv := mustInterval(t, base, base.Add(2*time.Hour))
		if !iv.Start().Equal(base) || !iv.End().Equal(base.Add(2*time.Hour)) {
			t.Fatalf("bounds not preserved: %v..%v", iv.Start(), iv.End())
		}
	})

	t.Run("end equal to start is rejected", func(t *testing.T) {
		o := NewInterval(base, base)
		if !o.IsFailure() || o.Errors()[0].Code != outcome.InvalidSequence {
			t.Fatalf("expected InvalidSequence, got %+v", o.Errors())
		}
	})

	t.Run("end before start is rejected", func(t *testing.T) {
		o := NewInterval(base, base.Add(-time.Minute))
		if !o.IsFailure() || o.Errors()[0].Code != outcome.InvalidSequence {
			t.Fatalf("expected InvalidSequence, got %+v", o.Errors())
		}
	})

	t.Run("zero bounds are missing data", func(t *testing.T) {
		o := NewInterval(time.Time{}, base)
		if !o.IsFailure() || o.Errors()[0].Code != outcome.MissingRequiredData {
			t.Fatalf("expected MissingRequiredData, got %+v", o.Errors())
		}
	})
}

func TestOverlaps(t *testing.T) {
	t.Parallel()

	a := mustInterval(t, base, base.Add(2*time.Hour))

	cases := []struct {
		name string
		b    Interval
		want bool
	}{
		{"identical", mustInterval(t, base, base.Add(2*time.Hour)), true},
		{"partial overlap", mustInterval(t, base.Add(time.Hour), base.Add(3*time.Hour)), true},
		{"contained", mustInterval(t, base.Add(30*time.Minute), base.Add(time.Hour)), true},
		{"containing", mustInterval(t, base.Add(-time.Hour), base.Add(4*time.Hour)), true},
		{"touching at end", mustInterval(t, base.Add(2*time.Hour), base.Add(3*time.Hour)), false},
		{"touching at start", mustInterval(t, base.Add(-time.Hour), base), false},
		{"disjoint after", mustInterval(t, base.Add(5*time.Hour), base.Add(6*time.Hour)), false},
		{"disjoint before", mustInterval(t, base.Add(-3*time.Hour), base.Add(-2*time.Hour)), false},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			if got := a.Overlaps(tc.b); got != tc.want {
				t.Fatalf("a.Overlaps(b) = %v, want %v", got, tc.want)
			}
			// Overlap is symmetric.
			if got := tc.b.Overlaps(a); got != tc.want {
				t.Fatalf("b.Overlaps(a) = %v, want %v", got, tc.want)
			}
		})
	}
}

func TestContains(t *testing.T) {
	t.Parallel()

	iv := mustInterval(t, base, base.Add(time.Hour))

	if !iv.Contains(base) {
		t.Fatalf("start bound must be contained")
	}
	if !iv.Contains(base.Add(time.Hour)) {
		t.Fatalf("end bound must be contained")
	}
	if !iv.Contains(base.Add(30 * time.Minute)) {
		t.Fatalf("midpoint must be contained")
	}
	if iv.Contains(base.Add(-time.Second)) || iv.Contains(base.Add(time.Hour+time.Second)) {
		t.Fatalf("instants outside the bounds must not be contained")
	}
}

func TestHydrateInterval(t *testing.T) {
	t.Parallel()

	iv := HydrateInterval(base, base.Add(time.Hour))
	if !iv.Start().Equal(base) {
		t.Fatalf("hydration must keep bounds")
	}

	defer func() {
		if recover() == nil {
			t.Fatalf("expected panic for inverted persisted bounds")
		}
	}()
	HydrateInterval(base, base)
}
