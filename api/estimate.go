package api

import (
	"context"
	"time"

	"github.com/gin-gonic/gin"

	"github.com/skillsenselab/statkit/bootstrap"
	"github.com/skillsenselab/statkit/logger"
	"github.com/skillsenselab/statkit/observability"
	"github.com/skillsenselab/statkit/server"
	"github.com/skillsenselab/statkit/validation"
)

// EstimateRequest is the body of POST /api/v1/estimates/bootstrap.
type EstimateRequest struct {
	Sample []float64 `json:"sample" validate:"required,min=1"`
	// Statistic selects the summary function (default "mean").
	Statistic string `json:"statistic" validate:"omitempty,oneof=mean median sum stddev"`
	// Repetitions defaults to the service's configured repetition count.
	Repetitions int `json:"repetitions" validate:"omitempty,gt=0"`
	// Seed makes the run deterministic when set.
	Seed *uint64 `json:"seed,omitempty"`
	// ConfidenceLevel is a percentage in (0, 100); default 95.
	ConfidenceLevel float64 `json:"confidence_level" validate:"omitempty,gt=0,lt=100"`
	// IncludeDistribution returns the full empirical distribution. Off by
	// default since it is repetitions values long.
	IncludeDistribution bool `json:"include_distribution"`
}

// EstimateResponse is the result of a bootstrap estimation.
type EstimateResponse struct {
	Statistic        string             `json:"statistic"`
	PointEstimate    float64            `json:"point_estimate"`
	Repetitions      int                `json:"repetitions"`
	SampleSize       int                `json:"sample_size"`
	Interval         bootstrap.Interval `json:"interval"`
	DistributionMean float64            `json:"distribution_mean"`
	Distribution     []float64          `json:"distribution,omitempty"`
}

// BootstrapEstimate runs a bootstrap estimation and returns the percentile
// confidence interval of the requested statistic.
func (a *API) BootstrapEstimate(c *gin.Context) {
	var req EstimateRequest
	if err := bindAndValidate(c, &req); err != nil {
		server.RespondWithError(c, err)
		return
	}
	if req.Statistic == "" {
		req.Statistic = "mean"
	}
	if req.Repetitions == 0 {
		req.Repetitions = a.cfg.DefaultRepetitions
	}
	if req.ConfidenceLevel == 0 {
		req.ConfidenceLevel = 95
	}

	v := validation.New().Finite("sample", req.Sample)
	if appErr := v.Validate(); appErr != nil {
		server.RespondWithError(c, appErr)
		return
	}
	if err := a.checkLimits(req.Repetitions, map[string]int{"sample": len(req.Sample)}); err != nil {
		server.RespondWithError(c, err)
		return
	}

	stat, err := bootstrap.StatisticByName(req.Statistic)
	if err != nil {
		server.RespondWithError(c, err)
		return
	}

	opts := []bootstrap.Option{
		bootstrap.WithRepetitions(req.Repetitions),
		bootstrap.WithLogger(a.log),
	}
	if req.Seed != nil {
		opts = append(opts, bootstrap.WithSeed(*req.Seed))
	}
	estimator, err := bootstrap.New(opts...)
	if err != nil {
		server.RespondWithError(c, err)
		return
	}

	ctx, span := observability.StartSpan(c.Request.Context(), observability.SpanBootstrapEstimate)
	defer span.End()
	observability.SetSpanAttribute(ctx, observability.AttrStatistic, req.Statistic)
	observability.SetSpanAttribute(ctx, observability.AttrRepetitions, req.Repetitions)
	observability.SetSpanAttribute(ctx, observability.AttrSampleSize, len(req.Sample))

	if a.metrics != nil {
		a.metrics.RecordEstimationStart(ctx)
	}
	start := time.Now()

	dist, err := estimator.Run(ctx, req.Sample, stat)
	if err != nil {
		a.finishEstimation(ctx, "bootstrap", "error", req.Repetitions, start)
		observability.SetSpanError(ctx, err)
		server.RespondWithError(c, err)
		return
	}

	interval, err := bootstrap.ConfidenceInterval(dist, req.ConfidenceLevel)
	if err != nil {
		a.finishEstimation(ctx, "bootstrap", "error", req.Repetitions, start)
		observability.SetSpanError(ctx, err)
		server.RespondWithError(c, err)
		return
	}
	a.finishEstimation(ctx, "bootstrap", "ok", req.Repetitions, start)

	resp := EstimateResponse{
		Statistic:        req.Statistic,
		PointEstimate:    stat(req.Sample),
		Repetitions:      req.Repetitions,
		SampleSize:       len(req.Sample),
		Interval:         interval,
		DistributionMean: dist.Mean(),
	}
	if req.IncludeDistribution {
		resp.Distribution = dist
	}

	a.log.Debug("bootstrap estimate served", logger.Fields(
		logger.FieldStatistic, req.Statistic,
		logger.FieldRepetitions, req.Repetitions,
		logger.FieldSampleSize, len(req.Sample),
	))
	server.RespondOK(c, resp)
}

// finishEstimation records run metrics when instruments are attached.
func (a *API) finishEstimation(ctx context.Context, operation, status string, repetitions int, start time.Time) {
	if a.metrics == nil {
		return
	}
	a.metrics.RecordEstimation(ctx, a.service, operation, status, repetitions, time.Since(start))
}
