// Command statserver serves resampling-based estimation and hypothesis
// testing over HTTP: bootstrap confidence intervals, permutation and z
// tests, and category null-model simulation.
package main

import (
	"context"
	"os"
	"os/signal"
	"syscall"

	"github.com/skillsenselab/statkit/api"
	"github.com/skillsenselab/statkit/auth"
	"github.com/skillsenselab/statkit/config"
	"github.com/skillsenselab/statkit/logger"
	"github.com/skillsenselab/statkit/observability"
	"github.com/skillsenselab/statkit/server"
	"github.com/skillsenselab/statkit/server/middleware"
	"github.com/skillsenselab/statkit/version"
)

const serviceName = "statserver"

// Config is the full configuration of the estimation service.
type Config struct {
	config.ServiceConfig `yaml:",inline" mapstructure:",squash"`

	HTTP          server.Config        `yaml:"http" mapstructure:"http"`
	API           api.Config           `yaml:"api" mapstructure:"api"`
	Auth          auth.Config          `yaml:"auth" mapstructure:"auth"`
	Observability observability.Config `yaml:"observability" mapstructure:"observability"`
}

// ApplyDefaults fills in every unset field.
func (c *Config) ApplyDefaults() {
	if c.Name == "" {
		c.Name = serviceName
	}
	if c.Version == "" {
		c.Version = version.GetShortVersion()
	}
	c.ServiceConfig.ApplyDefaults()
	c.HTTP.ApplyDefaults()
	c.API.ApplyDefaults()
	c.Auth.ApplyDefaults()
	c.Observability.ApplyDefaults()
}

// Validate checks the configuration for invalid values.
func (c *Config) Validate() error {
	if err := c.ServiceConfig.Validate(); err != nil {
		return err
	}
	if err := c.HTTP.Validate(); err != nil {
		return err
	}
	if err := c.API.Validate(); err != nil {
		return err
	}
	return c.Auth.Validate()
}

func main() {
	var cfg Config
	if err := config.LoadConfig(serviceName, &cfg); err != nil {
		logger.Fatal("Failed to load configuration", map[string]interface{}{
			"error": err.Error(),
		})
	}
	cfg.ApplyDefaults()
	if err := cfg.Validate(); err != nil {
		logger.Fatal("Invalid configuration", map[string]interface{}{
			"error": err.Error(),
		})
	}

	logger.Init(cfg.Logging)
	log := logger.GetGlobalLogger()
	log.Info("Starting service", map[string]interface{}{
		"name":        cfg.Name,
		"version":     cfg.Version,
		"environment": cfg.Environment,
	})

	ctx := context.Background()

	if cfg.Observability.Enabled {
		tp, err := observability.InitTracer(ctx, cfg.Observability.TracerConfig(cfg.Name, cfg.Version, cfg.Environment))
		if err != nil {
			log.Fatal("Failed to initialize tracer", map[string]interface{}{
				"error": err.Error(),
			})
		}
		defer func() {
			if err := tp.Shutdown(context.Background()); err != nil {
				log.Error("Tracer shutdown error", map[string]interface{}{
					"error": err.Error(),
				})
			}
		}()

		meterCfg := cfg.Observability.MeterConfig(cfg.Name, cfg.Version, cfg.Environment)
		mp, err := observability.InitMeter(ctx, &meterCfg)
		if err != nil {
			log.Fatal("Failed to initialize meter", map[string]interface{}{
				"error": err.Error(),
			})
		}
		defer func() {
			if err := mp.Shutdown(context.Background()); err != nil {
				log.Error("Meter shutdown error", map[string]interface{}{
					"error": err.Error(),
				})
			}
		}()
	}

	apiOpts := []api.Option{api.WithLogger(logger.WithComponent("api"))}
	if cfg.Observability.Enabled {
		metrics, err := observability.NewMetrics(observability.Meter(cfg.Name))
		if err != nil {
			log.Fatal("Failed to create metric instruments", map[string]interface{}{
				"error": err.Error(),
			})
		}
		apiOpts = append(apiOpts, api.WithMetrics(metrics))
	}
	apiHandlers, err := api.New(cfg.Name, cfg.API, apiOpts...)
	if err != nil {
		log.Fatal("Failed to create API", map[string]interface{}{
			"error": err.Error(),
		})
	}

	srv := server.New(cfg.HTTP, logger.WithComponent("server"))
	srv.ApplyDefaults(cfg.Name, nil)

	if cfg.Auth.Enabled {
		authService, err := auth.NewService(cfg.Auth)
		if err != nil {
			log.Fatal("Failed to create auth service", map[string]interface{}{
				"error": err.Error(),
			})
		}
		srv.GinEngine().Use(middleware.Auth(middleware.AuthConfig{
			TokenValidator: authService.ValidatorFunc(),
			SkipPaths:      cfg.Auth.SkipPaths,
		}))
	}

	apiHandlers.RegisterRoutes(srv.GinEngine())

	if err := srv.Start(ctx); err != nil {
		log.Fatal("Failed to start server", map[string]interface{}{
			"error": err.Error(),
		})
	}

	sigCh := make(chan os.Signal, 1)
	signal.Notify(sigCh, syscall.SIGINT, syscall.SIGTERM)
	sig := <-sigCh
	log.Info("Received shutdown signal", map[string]interface{}{
		"signal": sig.String(),
	})

	if err := srv.Stop(context.Background()); err != nil {
		log.Error("Shutdown completed with errors", map[string]interface{}{
			"error": err.Error(),
		})
		os.Exit(1)
	}
	log.Info("Service stopped")
}
