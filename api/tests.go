package api

import (
	"time"

	"github.com/gin-gonic/gin"

	"github.com/skillsenselab/statkit/abtest"
	"github.com/skillsenselab/statkit/hypothesis"
	"github.com/skillsenselab/statkit/observability"
	"github.com/skillsenselab/statkit/server"
	"github.com/skillsenselab/statkit/validation"
)

// PermutationRequest is the body of POST /api/v1/tests/permutation.
type PermutationRequest struct {
	GroupA      []float64 `json:"group_a" validate:"required,min=1"`
	GroupB      []float64 `json:"group_b" validate:"required,min=1"`
	Repetitions int       `json:"repetitions" validate:"omitempty,gt=0"`
	Seed        *uint64   `json:"seed,omitempty"`
	// Alternative selects the counted tail: two_sided (default), greater, less.
	Alternative string `json:"alternative" validate:"omitempty,oneof=two_sided greater less"`
	// IncludeNull returns the simulated null distribution.
	IncludeNull bool `json:"include_null"`
}

// PermutationResponse is the result of a permutation test.
type PermutationResponse struct {
	Observed    float64   `json:"observed"`
	PValue      float64   `json:"p_value"`
	Repetitions int       `json:"repetitions"`
	Alternative string    `json:"alternative"`
	Null        []float64 `json:"null,omitempty"`
}

// PermutationTest runs an A/B permutation test on the difference of means.
func (a *API) PermutationTest(c *gin.Context) {
	var req PermutationRequest
	if err := bindAndValidate(c, &req); err != nil {
		server.RespondWithError(c, err)
		return
	}
	if req.Repetitions == 0 {
		req.Repetitions = a.cfg.DefaultRepetitions
	}
	if req.Alternative == "" {
		req.Alternative = string(abtest.TwoSided)
	}

	v := validation.New().
		Finite("group_a", req.GroupA).
		Finite("group_b", req.GroupB)
	if appErr := v.Validate(); appErr != nil {
		server.RespondWithError(c, appErr)
		return
	}
	limits := map[string]int{"group_a": len(req.GroupA), "group_b": len(req.GroupB)}
	if err := a.checkLimits(req.Repetitions, limits); err != nil {
		server.RespondWithError(c, err)
		return
	}

	opts := []abtest.Option{
		abtest.WithRepetitions(req.Repetitions),
		abtest.WithAlternative(abtest.Alternative(req.Alternative)),
		abtest.WithLogger(a.log),
	}
	if req.Seed != nil {
		opts = append(opts, abtest.WithSeed(*req.Seed))
	}
	tester, err := abtest.New(opts...)
	if err != nil {
		server.RespondWithError(c, err)
		return
	}

	ctx, span := observability.StartSpan(c.Request.Context(), observability.SpanPermutationTest)
	defer span.End()
	observability.SetSpanAttribute(ctx, observability.AttrRepetitions, req.Repetitions)

	if a.metrics != nil {
		a.metrics.RecordEstimationStart(ctx)
	}
	start := time.Now()

	res, err := tester.Run(ctx, req.GroupA, req.GroupB)
	if err != nil {
		a.finishEstimation(ctx, "permutation", "error", req.Repetitions, start)
		observability.SetSpanError(ctx, err)
		server.RespondWithError(c, err)
		return
	}
	a.finishEstimation(ctx, "permutation", "ok", req.Repetitions, start)

	resp := PermutationResponse{
		Observed:    res.Observed,
		PValue:      res.PValue,
		Repetitions: res.Repetitions,
		Alternative: req.Alternative,
	}
	if req.IncludeNull {
		resp.Null = res.Null
	}
	server.RespondOK(c, resp)
}

// ZTestRequest is the body of POST /api/v1/tests/z.
type ZTestRequest struct {
	GroupA []float64 `json:"group_a" validate:"required,min=2"`
	GroupB []float64 `json:"group_b" validate:"required,min=2"`
}

// ZTest runs a two-sample z-test on the difference of means.
func (a *API) ZTest(c *gin.Context) {
	var req ZTestRequest
	if err := bindAndValidate(c, &req); err != nil {
		server.RespondWithError(c, err)
		return
	}

	v := validation.New().
		Finite("group_a", req.GroupA).
		Finite("group_b", req.GroupB)
	if appErr := v.Validate(); appErr != nil {
		server.RespondWithError(c, appErr)
		return
	}
	limits := map[string]int{"group_a": len(req.GroupA), "group_b": len(req.GroupB)}
	if err := a.checkLimits(0, limits); err != nil {
		server.RespondWithError(c, err)
		return
	}

	ctx, span := observability.StartSpan(c.Request.Context(), observability.SpanZTest)
	defer span.End()

	res, err := abtest.ZTest(req.GroupA, req.GroupB)
	if err != nil {
		observability.SetSpanError(ctx, err)
		server.RespondWithError(c, err)
		return
	}
	server.RespondOK(c, res)
}

// NullModelRequest is the body of POST /api/v1/tests/null-model.
type NullModelRequest struct {
	// Model gives the null proportions (or counts) per category.
	Model []float64 `json:"model" validate:"required,min=2"`
	// Draws is the number of observations per simulated sample.
	Draws int `json:"draws" validate:"required,gt=0"`
	// ObservedCounts, when present, must have one count per model category;
	// the response then includes the observed TVD and its p-value.
	ObservedCounts []float64 `json:"observed_counts" validate:"omitempty,min=1"`
	Repetitions    int       `json:"repetitions" validate:"omitempty,gt=0"`
	Seed           *uint64   `json:"seed,omitempty"`
	// IncludeNull returns the simulated null distribution.
	IncludeNull bool `json:"include_null"`
}

// NullModelResponse is the result of a null-model simulation.
type NullModelResponse struct {
	Observed    float64   `json:"observed,omitempty"`
	PValue      float64   `json:"p_value,omitempty"`
	Repetitions int       `json:"repetitions"`
	Null        []float64 `json:"null,omitempty"`
}

// NullModelTest simulates a category null model and reports where an
// observed total variation distance falls in the simulated distribution.
func (a *API) NullModelTest(c *gin.Context) {
	var req NullModelRequest
	if err := bindAndValidate(c, &req); err != nil {
		server.RespondWithError(c, err)
		return
	}
	if req.Repetitions == 0 {
		req.Repetitions = a.cfg.DefaultRepetitions
	}
	if err := a.checkLimits(req.Repetitions, map[string]int{"draws": req.Draws}); err != nil {
		server.RespondWithError(c, err)
		return
	}

	opts := []hypothesis.Option{
		hypothesis.WithRepetitions(req.Repetitions),
		hypothesis.WithLogger(a.log),
	}
	if req.Seed != nil {
		opts = append(opts, hypothesis.WithSeed(*req.Seed))
	}
	sim, err := hypothesis.New(req.Model, req.Draws, opts...)
	if err != nil {
		server.RespondWithError(c, err)
		return
	}

	ctx, span := observability.StartSpan(c.Request.Context(), observability.SpanNullModel)
	defer span.End()
	observability.SetSpanAttribute(ctx, observability.AttrRepetitions, req.Repetitions)

	if a.metrics != nil {
		a.metrics.RecordEstimationStart(ctx)
	}
	start := time.Now()

	res, err := sim.Run(ctx, req.ObservedCounts)
	if err != nil {
		a.finishEstimation(ctx, "null_model", "error", req.Repetitions, start)
		observability.SetSpanError(ctx, err)
		server.RespondWithError(c, err)
		return
	}
	a.finishEstimation(ctx, "null_model", "ok", req.Repetitions, start)

	resp := NullModelResponse{
		Observed:    res.Observed,
		PValue:      res.PValue,
		Repetitions: res.Repetitions,
	}
	if req.IncludeNull {
		resp.Null = res.Null
	}
	server.RespondOK(c, resp)
}
