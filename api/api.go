package api

import (
	"github.com/gin-gonic/gin"

	"github.com/skillsenselab/statkit/errors"
	"github.com/skillsenselab/statkit/logger"
	"github.com/skillsenselab/statkit/observability"
	"github.com/skillsenselab/statkit/validation"
)

// API holds the HTTP handlers for the estimation service.
type API struct {
	cfg     Config
	service string
	log     *logger.Logger
	metrics *observability.Metrics
}

// Option configures an API.
type Option func(*API)

// WithMetrics attaches metric instruments; when absent, metric recording is
// skipped.
func WithMetrics(m *observability.Metrics) Option {
	return func(a *API) { a.metrics = m }
}

// WithLogger sets the logger used by the handlers.
func WithLogger(log *logger.Logger) Option {
	return func(a *API) { a.log = log }
}

// New creates the API. cfg is defaulted and validated.
func New(serviceName string, cfg Config, opts ...Option) (*API, error) {
	cfg.ApplyDefaults()
	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	a := &API{cfg: cfg, service: serviceName}
	for _, opt := range opts {
		opt(a)
	}
	if a.log == nil {
		a.log = logger.WithComponent("api")
	}
	return a, nil
}

// RegisterRoutes mounts all API routes on the engine.
func (a *API) RegisterRoutes(engine *gin.Engine) {
	v1 := engine.Group("/api/v1")
	v1.POST("/estimates/bootstrap", a.BootstrapEstimate)
	v1.POST("/tests/permutation", a.PermutationTest)
	v1.POST("/tests/z", a.ZTest)
	v1.POST("/tests/null-model", a.NullModelTest)
}

// bindAndValidate decodes the JSON body into req and runs struct validation.
func bindAndValidate(c *gin.Context, req any) error {
	if err := c.ShouldBindJSON(req); err != nil {
		return errors.Validation("request body is not valid JSON").WithCause(err)
	}
	return validation.Validate(req)
}

// checkLimits enforces the service-level caps on a request's repetitions and
// sample sizes. samples maps field name to observation count.
func (a *API) checkLimits(repetitions int, samples map[string]int) error {
	v := validation.New()
	if repetitions > a.cfg.MaxRepetitions {
		v.Max("repetitions", repetitions, a.cfg.MaxRepetitions)
	}
	for field, n := range samples {
		if n > a.cfg.MaxSampleSize {
			v.Max(field, n, a.cfg.MaxSampleSize)
		}
	}
	if appErr := v.Validate(); appErr != nil {
		return appErr
	}
	return nil
}
