package config

import (
	"os"
	"path/filepath"
	"testing"
)

type fakeFileSystem struct {
	files map[string]bool
}

func (f *fakeFileSystem) Exists(path string) bool { return f.files[path] }
func (f *fakeFileSystem) LoadEnv(path string) error {
	return nil
}

type testConfig struct {
	ServiceConfig `yaml:",inline" mapstructure:",squash"`
	HTTP          struct {
		Port int `yaml:"port" mapstructure:"port"`
	} `yaml:"http" mapstructure:"http"`
}

func TestLoadConfig_FromFile(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "config.yml")
	content := []byte("name: statserver\nenvironment: production\nhttp:\n  port: 9090\n")
	if err := os.WriteFile(path, content, 0o644); err != nil {
		t.Fatal(err)
	}

	var cfg testConfig
	if err := LoadConfig("statserver", &cfg, WithConfigFile(path)); err != nil {
		t.Fatalf("LoadConfig returned error: %v", err)
	}
	if cfg.Name != "statserver" {
		t.Errorf("Name = %q, want statserver", cfg.Name)
	}
	if cfg.Environment != "production" {
		t.Errorf("Environment = %q, want production", cfg.Environment)
	}
	if cfg.HTTP.Port != 9090 {
		t.Errorf("HTTP.Port = %d, want 9090", cfg.HTTP.Port)
	}
}

func TestLoadConfig_EnvOverridesFile(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "config.yml")
	if err := os.WriteFile(path, []byte("name: statserver\nhttp:\n  port: 8080\n"), 0o644); err != nil {
		t.Fatal(err)
	}
	t.Setenv("HTTP_PORT", "9999")

	var cfg testConfig
	if err := LoadConfig("statserver", &cfg, WithConfigFile(path)); err != nil {
		t.Fatal(err)
	}
	if cfg.HTTP.Port != 9999 {
		t.Errorf("HTTP.Port = %d, want env override 9999", cfg.HTTP.Port)
	}
}

func TestLoadConfig_MissingFileIsNotAnError(t *testing.T) {
	var cfg testConfig
	fs := &fakeFileSystem{files: map[string]bool{}}
	if err := LoadConfig("statserver", &cfg, WithFileSystem(fs)); err != nil {
		t.Errorf("LoadConfig with no files returned error: %v", err)
	}
}

func TestEnvKeyVariants(t *testing.T) {
	variants := envKeyVariants("HTTP_READ_TIMEOUT")
	want := map[string]bool{
		"http_read_timeout": false,
		"http.read.timeout": false,
		"http.read_timeout": false,
	}
	for _, v := range variants {
		if _, ok := want[v]; ok {
			want[v] = true
		}
	}
	for k, found := range want {
		if !found {
			t.Errorf("variant %q missing from %v", k, variants)
		}
	}
}

func TestServiceConfig_ApplyDefaults(t *testing.T) {
	cfg := ServiceConfig{Name: "statserver"}
	cfg.ApplyDefaults()
	if cfg.Environment != "development" {
		t.Errorf("Environment = %q, want development", cfg.Environment)
	}
	if !cfg.Debug {
		t.Error("Debug should default to true in development")
	}
	if cfg.Logging.Level != "debug" {
		t.Errorf("Logging.Level = %q, want debug", cfg.Logging.Level)
	}
}

func TestServiceConfig_Validate(t *testing.T) {
	tests := []struct {
		name    string
		mutate  func(*ServiceConfig)
		wantErr bool
	}{
		{"valid", func(c *ServiceConfig) {}, false},
		{"missing name", func(c *ServiceConfig) { c.Name = "" }, true},
		{"bad environment", func(c *ServiceConfig) { c.Environment = "qa" }, true},
		{"bad log level", func(c *ServiceConfig) { c.Logging.Level = "verbose" }, true},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			cfg := ServiceConfig{Name: "statserver"}
			cfg.ApplyDefaults()
			tt.mutate(&cfg)
			err := cfg.Validate()
			if (err != nil) != tt.wantErr {
				t.Errorf("Validate() error = %v, wantErr %v", err, tt.wantErr)
			}
		})
	}
}
