package outcome

import (
	"context"
	"errors"
	"strconv"
	"testing"
)

func TestOutcomeBranches(t *testing.T) {
	t.Parallel()

	t.Run("success carries value and no errors", func(t *testing.T) {
		o := Success(42)
		if !o.IsSuccess() || o.IsFailure() {
			t.Fatalf("expected success")
		}
		v, ok := o.Value()
		if !ok || v != 42 {
			t.Fatalf("expected value 42, got %d (ok=%v)", v, ok)
		}
		if o.Errors() != nil {
			t.Fatalf("success must not carry errors")
		}
	})

	t.Run("failure carries records and no value", func(t *testing.T) {
		o := Failure[int](NewFailure(ValueNotPositive, "value", -1))
		if !o.IsFailure() || o.IsSuccess() {
			t.Fatalf("expected failure")
		}
		if _, ok := o.Value(); ok {
			t.Fatalf("failure must not expose a value")
		}
		errs := o.Errors()
		if len(errs) != 1 || errs[0].Code != ValueNotPositive {
			t.Fatalf("unexpected records: %+v", errs)
		}
		if errs[0].Details["value"] != -1 {
			t.Fatalf("expected detail value -1, got %v", errs[0].Details["value"])
		}
	})

	t.Run("empty failure panics", func(t *testing.T) {
		defer func() {
			if recover() == nil {
				t.Fatalf("expected panic for Failure with no records")
			}
		}()
		Failure[int]()
	})

	t.Run("must value panics on failure", func(t *testing.T) {
		defer func() {
			if recover() == nil {
				t.Fatalf("expected panic")
			}
		}()
		Failure[int](NewFailure(MissingRequiredData)).MustValue()
	})
}

func TestTransforms(t *testing.T) {
	t.Parallel()

	t.Run("map transforms success", func(t *testing.T) {
		o := Map(Success(7), strconv.Itoa)
		if v := o.MustValue(); v != "7" {
			t.Fatalf("expected %q, got %q", "7", v)
		}
	})

	t.Run("map passes failure through", func(t *testing.T) {
		o := Map(Failure[int](NewFailure(ValueOutOfRange)), strconv.Itoa)
		if !o.IsFailure() || o.Errors()[0].Code != ValueOutOfRange {
			t.Fatalf("expected passthrough failure, got %+v", o.Errors())
		}
	})

	t.Run("flat map chains and short-circuits", func(t *testing.T) {
		called := false
		o := FlatMap(Failure[int](NewFailure(InvalidSequence)), func(int) Outcome[string] {
			called = true
			return Success("never")
		})
		if called {
			t.Fatalf("transform must not run on failure")
		}
		if o.Errors()[0].Code != InvalidSequence {
			t.Fatalf("expected InvalidSequence, got %+v", o.Errors())
		}

		o2 := FlatMap(Success(3), func(n int) Outcome[string] { return Success(strconv.Itoa(n * 2)) })
		if o2.MustValue() != "6" {
			t.Fatalf("expected 6, got %q", o2.MustValue())
		}
	})

	t.Run("fold collapses both branches", func(t *testing.T) {
		got := Fold(Success(5), strconv.Itoa, func([]FailureRecord) string { return "failed" })
		if got != "5" {
			t.Fatalf("expected 5, got %q", got)
		}
		got = Fold(Failure[int](NewFailure(BookingConflict)), strconv.Itoa, func(errs []FailureRecord) string {
			return string(errs[0].Code)
		})
		if got != string(BookingConflict) {
			t.Fatalf("expected conflict code, got %q", got)
		}
	})

	t.Run("tap runs on success only and returns the outcome", func(t *testing.T) {
		seen := 0
		o := Success(9).Tap(func(v int) { seen = v })
		if seen != 9 || o.MustValue() != 9 {
			t.Fatalf("tap must observe and preserve the value")
		}
		Failure[int](NewFailure(MissingRequiredData)).Tap(func(int) { seen = -1 })
		if seen == -1 {
			t.Fatalf("tap must not run on failure")
		}
	})
}

func TestCtxVariants(t *testing.T) {
	t.Parallel()
	ctx := context.Background()

	t.Run("map ctx rewraps on success", func(t *testing.T) {
		o, err := MapCtx(ctx, Success(4), func(_ context.Context, n int) (string, error) {
			return strconv.Itoa(n), nil
		})
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if o.MustValue() != "4" {
			t.Fatalf("expected 4, got %q", o.MustValue())
		}
	})

	t.Run("transform errors reach the caller, not the outcome", func(t *testing.T) {
		boom := errors.New("boom")
		_, err := MapCtx(ctx, Success(1), func(context.Context, int) (string, error) {
			return "", boom
		})
		if !errors.Is(err, boom) {
			t.Fatalf("expected boom, got %v", err)
		}
	})

	t.Run("failure skips the transform", func(t *testing.T) {
		o, err := FlatMapCtx(ctx, Failure[int](NewFailure(DateCannotBePast)), func(context.Context, int) (Outcome[string], error) {
			t.Fatalf("must not run")
			return Success(""), nil
		})
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if o.Errors()[0].Code != DateCannotBePast {
			t.Fatalf("expected passthrough, got %+v", o.Errors())
		}
	})
}

func TestCombine(t *testing.T) {
	t.Parallel()

	t.Run("all successes yield ordered values", func(t *testing.T) {
		o := Combine([]Outcome[int]{Success(1), Success(2), Success(3)})
		vs := o.MustValue()
		if len(vs) != 3 || vs[0] != 1 || vs[1] != 2 || vs[2] != 3 {
			t.Fatalf("unexpected values: %v", vs)
		}
	})

	t.Run("failures aggregate in input order", func(t *testing.T) {
		o := Combine([]Outcome[int]{
			Failure[int](NewFailure(ValueNotPositive), NewFailure(ValueNotInteger)),
			Success(2),
			Failure[int](NewFailure(ValueOutOfRange)),
		})
		errs := o.Errors()
		want := []Code{ValueNotPositive, ValueNotInteger, ValueOutOfRange}
		if len(errs) != len(want) {
			t.Fatalf("expected %d records, got %d", len(want), len(errs))
		}
		for i, c := range want {
			if errs[i].Code != c {
				t.Fatalf("record %d: expected %s, got %s", i, c, errs[i].Code)
			}
		}
	})

	t.Run("combine2 applies the combiner and aggregates", func(t *testing.T) {
		o := Combine2(Success(2), Success("x"), func(n int, s string) string {
			return strconv.Itoa(n) + s
		})
		if o.MustValue() != "2x" {
			t.Fatalf("expected 2x, got %q", o.MustValue())
		}

		bad := Combine2(Failure[int](NewFailure(MissingRequiredData)), Failure[string](NewFailure(InvalidSequence)), func(int, string) string { return "" })
		errs := bad.Errors()
		if len(errs) != 2 || errs[0].Code != MissingRequiredData || errs[1].Code != InvalidSequence {
			t.Fatalf("unexpected aggregation: %+v", errs)
		}
	})

	t.Run("combine3 aggregates across all three", func(t *testing.T) {
		bad := Combine3(
			Success(1),
			Failure[string](NewFailure(InvalidColumnFormat)),
			Failure[bool](NewFailure(ValueOutOfRange)),
			func(int, string, bool) int { return 0 },
		)
		errs := bad.Errors()
		if len(errs) != 2 || errs[0].Code != InvalidColumnFormat || errs[1].Code != ValueOutOfRange {
			t.Fatalf("unexpected aggregation: %+v", errs)
		}
	})
}
