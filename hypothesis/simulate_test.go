package hypothesis

import (
	"context"
	"testing"
)

func TestSimulator_Run_MatchingSampleNotSignificant(t *testing.T) {
	// An observed sample with exactly the model's proportions has TVD 0, so
	// every simulated distance is at least as extreme.
	sim, err := New([]float64{0.5, 0.5}, 100, WithRepetitions(500), WithSeed(1))
	if err != nil {
		t.Fatal(err)
	}
	res, err := sim.Run(context.Background(), []float64{50, 50})
	if err != nil {
		t.Fatalf("Run returned error: %v", err)
	}
	if res.Observed != 0 {
		t.Errorf("Observed = %v, want 0", res.Observed)
	}
	if res.PValue != 1 {
		t.Errorf("PValue = %v, want 1", res.PValue)
	}
}

func TestSimulator_Run_BiasedSampleSignificant(t *testing.T) {
	// Model expects 26% in the first category; observing 10% in 100 draws is
	// far out in the null distribution.
	sim, err := New([]float64{0.26, 0.74}, 100, WithRepetitions(2000), WithSeed(2))
	if err != nil {
		t.Fatal(err)
	}
	res, err := sim.Run(context.Background(), []float64{10, 90})
	if err != nil {
		t.Fatal(err)
	}
	if res.PValue > 0.01 {
		t.Errorf("PValue = %v, want < 0.01 for a biased sample", res.PValue)
	}
}

func TestSimulator_Run_NoObservedSample(t *testing.T) {
	sim, err := New([]float64{0.3, 0.7}, 50, WithRepetitions(200), WithSeed(3))
	if err != nil {
		t.Fatal(err)
	}
	res, err := sim.Run(context.Background(), nil)
	if err != nil {
		t.Fatal(err)
	}
	if len(res.Null) != 200 {
		t.Errorf("len(Null) = %d, want 200", len(res.Null))
	}
	if res.PValue != 0 || res.Observed != 0 {
		t.Errorf("expected zero Observed/PValue without an observed sample, got %v / %v", res.Observed, res.PValue)
	}
}

func TestSimulator_Run_Deterministic(t *testing.T) {
	run := func() Result {
		sim, err := New([]float64{0.2, 0.3, 0.5}, 60, WithRepetitions(300), WithSeed(7))
		if err != nil {
			t.Fatal(err)
		}
		res, err := sim.Run(context.Background(), []float64{15, 20, 25})
		if err != nil {
			t.Fatal(err)
		}
		return res
	}

	r1, r2 := run(), run()
	if r1.PValue != r2.PValue {
		t.Errorf("same seed produced different p-values: %v vs %v", r1.PValue, r2.PValue)
	}
	for i := range r1.Null {
		if r1.Null[i] != r2.Null[i] {
			t.Fatalf("same seed produced different null distributions at %d", i)
		}
	}
}

func TestSimulator_Run_CancelledContext(t *testing.T) {
	sim, err := New([]float64{0.5, 0.5}, 10, WithSeed(1))
	if err != nil {
		t.Fatal(err)
	}
	ctx, cancel := context.WithCancel(context.Background())
	cancel()
	if _, err := sim.Run(ctx, nil); err == nil {
		t.Error("expected error for cancelled context")
	}
}

func TestSimulator_Run_MismatchedObservedLength(t *testing.T) {
	sim, err := New([]float64{0.5, 0.5}, 10, WithRepetitions(10), WithSeed(1))
	if err != nil {
		t.Fatal(err)
	}
	if _, err := sim.Run(context.Background(), []float64{1, 2, 3}); err == nil {
		t.Error("expected error for observed counts not matching model categories")
	}
}

func TestNew_InvalidModels(t *testing.T) {
	tests := []struct {
		name  string
		model []float64
		draws int
		opts  []Option
	}{
		{"single category", []float64{1}, 10, nil},
		{"negative proportion", []float64{0.5, -0.5}, 10, nil},
		{"zero sum", []float64{0, 0}, 10, nil},
		{"zero draws", []float64{0.5, 0.5}, 0, nil},
		{"zero repetitions", []float64{0.5, 0.5}, 10, []Option{WithRepetitions(0)}},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if _, err := New(tt.model, tt.draws, tt.opts...); err == nil {
				t.Error("expected error")
			}
		})
	}
}

func TestNew_NormalizesModel(t *testing.T) {
	// Counts work as a model; they are normalized to proportions.
	sim, err := New([]float64{26, 74}, 100, WithRepetitions(100), WithSeed(5))
	if err != nil {
		t.Fatal(err)
	}
	res, err := sim.Run(context.Background(), []float64{26, 74})
	if err != nil {
		t.Fatal(err)
	}
	if res.Observed != 0 {
		t.Errorf("Observed = %v, want 0 for counts matching the model", res.Observed)
	}
}
