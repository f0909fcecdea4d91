package stats

import (
	"testing"

	"github.com/skillsenselab/statkit/errors"
)

func TestPercentile_NearestRank_Table(t *testing.T) {
	ten := []float64{1, 2, 3, 4, 5, 6, 7, 8, 9, 10}

	tests := []struct {
		name string
		p    float64
		xs   []float64
		want float64
	}{
		// The nearest-rank rule: sorted[ceil(p/100*n)-1].
		{"p10 of 1..10", 10, ten, 1},
		{"p90 of 1..10", 90, ten, 9},
		{"p50 of 1..10", 50, ten, 5},
		{"p100 of 1..10", 100, ten, 10},
		{"p0 clamps to minimum", 0, ten, 1},
		{"p55 rounds up to 6th value", 55, ten, 6},
		{"unsorted input", 50, []float64{9, 1, 5}, 5},
		{"single element", 75, []float64{42}, 42},
		{"result is always an element", 33, []float64{1, 2, 3}, 1},
	}
	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			got, err := Percentile(tc.p, tc.xs)
			if err != nil {
				t.Fatalf("Percentile(%v) returned error: %v", tc.p, err)
			}
			if got != tc.want {
				t.Errorf("Percentile(%v, %v) = %v, want %v", tc.p, tc.xs, got, tc.want)
			}
		})
	}
}

func TestPercentile_Empty(t *testing.T) {
	_, err := Percentile(50, nil)
	if err == nil {
		t.Fatal("expected error for empty input")
	}
	appErr, ok := errors.AsAppError(err)
	if !ok {
		t.Fatal("expected an AppError")
	}
	if appErr.Code != errors.ErrCodeInvalidInput {
		t.Errorf("expected INVALID_INPUT, got %s", appErr.Code)
	}
}

func TestPercentile_RankOutOfRange(t *testing.T) {
	for _, p := range []float64{-1, 100.5, 200} {
		if _, err := Percentile(p, []float64{1, 2, 3}); err == nil {
			t.Errorf("expected error for rank %v", p)
		}
	}
}

func TestPercentile_DoesNotModifyInput(t *testing.T) {
	xs := []float64{3, 1, 2}
	if _, err := Percentile(50, xs); err != nil {
		t.Fatal(err)
	}
	if xs[0] != 3 || xs[1] != 1 || xs[2] != 2 {
		t.Errorf("Percentile modified its input: %v", xs)
	}
}

func TestQuantile_LinearInterpolation(t *testing.T) {
	// Linear interpolation yields values between order statistics, unlike
	// the nearest-rank rule.
	xs := []float64{1, 2, 3, 4}
	got, err := Quantile(0.5, xs)
	if err != nil {
		t.Fatalf("Quantile returned error: %v", err)
	}
	if got < 2 || got > 3 {
		t.Errorf("Quantile(0.5) = %v, want a value in [2, 3]", got)
	}
}

func TestQuantile_Bounds(t *testing.T) {
	xs := []float64{5, 1, 3}
	lo, err := Quantile(0, xs)
	if err != nil {
		t.Fatal(err)
	}
	hi, err := Quantile(1, xs)
	if err != nil {
		t.Fatal(err)
	}
	if lo != 1 {
		t.Errorf("Quantile(0) = %v, want minimum 1", lo)
	}
	if hi != 5 {
		t.Errorf("Quantile(1) = %v, want maximum 5", hi)
	}
}

func TestQuantile_Invalid(t *testing.T) {
	if _, err := Quantile(0.5, nil); err == nil {
		t.Error("expected error for empty input")
	}
	if _, err := Quantile(1.5, []float64{1}); err == nil {
		t.Error("expected error for out-of-range quantile")
	}
}
