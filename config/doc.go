// Package config provides configuration loading and validation for statkit
// services.
//
// It uses Viper to load a config.yml, layers environment variables (and an
// optional .env file via godotenv) on top, and unmarshals the result into a
// service config struct. Services embed ServiceConfig and extend it with
// their own sections:
//
//	type Config struct {
//	    config.ServiceConfig `yaml:",inline" mapstructure:",squash"`
//	    HTTP server.Config `yaml:"http" mapstructure:"http"`
//	}
//
// Environment variables map onto nested keys by underscore splitting, so
// HTTP_PORT overrides http.port and LOGGING_LEVEL overrides logging.level.
package config
