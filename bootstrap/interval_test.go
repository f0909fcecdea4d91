package bootstrap

import (
	"context"
	"testing"

	"github.com/skillsenselab/statkit/errors"
	"github.com/skillsenselab/statkit/stats"
)

func TestConfidenceInterval_NearestRank80(t *testing.T) {
	// c=80 over [1..10]: pLow=10, pHigh=90; nearest-rank gives (1, 9).
	dist := Distribution{1, 2, 3, 4, 5, 6, 7, 8, 9, 10}
	ci, err := ConfidenceInterval(dist, 80)
	if err != nil {
		t.Fatalf("ConfidenceInterval returned error: %v", err)
	}
	if ci.Low != 1 {
		t.Errorf("Low = %v, want 1", ci.Low)
	}
	if ci.High != 9 {
		t.Errorf("High = %v, want 9", ci.High)
	}
	if ci.Level != 80 {
		t.Errorf("Level = %v, want 80", ci.Level)
	}
}

func TestConfidenceInterval_BoundsOrdered(t *testing.T) {
	dist := Distribution{5, 3, 8, 1, 9, 2, 7, 4, 6, 10}
	for _, level := range []float64{0.5, 10, 50, 90, 95, 99, 99.9} {
		ci, err := ConfidenceInterval(dist, level)
		if err != nil {
			t.Fatalf("level %v: %v", level, err)
		}
		if ci.Low > ci.High {
			t.Errorf("level %v: Low %v > High %v", level, ci.Low, ci.High)
		}
	}
}

func TestConfidenceInterval_UnsortedInput(t *testing.T) {
	dist := Distribution{10, 1, 9, 2, 8, 3, 7, 4, 6, 5}
	ci, err := ConfidenceInterval(dist, 80)
	if err != nil {
		t.Fatal(err)
	}
	if ci.Low != 1 || ci.High != 9 {
		t.Errorf("interval = (%v, %v), want (1, 9)", ci.Low, ci.High)
	}
}

func TestConfidenceInterval_LevelOutOfRange(t *testing.T) {
	dist := Distribution{1, 2, 3}
	for _, level := range []float64{0, -5, 100, 150} {
		_, err := ConfidenceInterval(dist, level)
		if err == nil {
			t.Errorf("expected error for level %v", level)
			continue
		}
		appErr, ok := errors.AsAppError(err)
		if !ok {
			t.Fatal("expected an AppError")
		}
		if appErr.Code != errors.ErrCodeOutOfRange {
			t.Errorf("level %v: expected OUT_OF_RANGE, got %s", level, appErr.Code)
		}
	}
}

func TestConfidenceInterval_EmptyDistribution(t *testing.T) {
	_, err := ConfidenceInterval(nil, 95)
	if err == nil {
		t.Fatal("expected error for empty distribution")
	}
	appErr, ok := errors.AsAppError(err)
	if !ok {
		t.Fatal("expected an AppError")
	}
	if appErr.Code != errors.ErrCodeInvalidInput {
		t.Errorf("expected INVALID_INPUT, got %s", appErr.Code)
	}
}

func TestConfidenceInterval_CoversSampleMean(t *testing.T) {
	// End-to-end: a seeded 95% interval over bootstrap means of [1..5]
	// should contain the observed mean 3.0.
	est, err := New(WithRepetitions(2000), WithSeed(13))
	if err != nil {
		t.Fatal(err)
	}
	dist, err := est.Run(context.Background(), []float64{1, 2, 3, 4, 5}, stats.Mean)
	if err != nil {
		t.Fatal(err)
	}
	ci, err := ConfidenceInterval(dist, 95)
	if err != nil {
		t.Fatal(err)
	}
	if ci.Low > 3.0 || ci.High < 3.0 {
		t.Errorf("95%% interval (%v, %v) does not cover 3.0", ci.Low, ci.High)
	}
}
