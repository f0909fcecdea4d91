package auth

import (
	"strings"
	"testing"
	"time"
)

func newTestService(t *testing.T, mutate func(*Config)) *Service {
	t.Helper()
	cfg := Config{
		Enabled: true,
		Secret:  "test-secret",
		Issuer:  "statkit",
	}
	if mutate != nil {
		mutate(&cfg)
	}
	svc, err := NewService(cfg)
	if err != nil {
		t.Fatal(err)
	}
	return svc
}

func TestService_GenerateAndParse(t *testing.T) {
	svc := newTestService(t, nil)

	token, err := svc.Generate("user-1", "analyst")
	if err != nil {
		t.Fatalf("Generate returned error: %v", err)
	}

	claims, err := svc.Parse(token)
	if err != nil {
		t.Fatalf("Parse returned error: %v", err)
	}
	if claims.Subject != "user-1" {
		t.Errorf("Subject = %q, want user-1", claims.Subject)
	}
	if claims.Role != "analyst" {
		t.Errorf("Role = %q, want analyst", claims.Role)
	}
	if claims.Issuer != "statkit" {
		t.Errorf("Issuer = %q, want statkit", claims.Issuer)
	}
}

func TestService_Parse_WrongSecret(t *testing.T) {
	svc := newTestService(t, nil)
	token, err := svc.Generate("user-1", "")
	if err != nil {
		t.Fatal(err)
	}

	other := newTestService(t, func(c *Config) { c.Secret = "different-secret" })
	if _, err := other.Parse(token); err == nil {
		t.Error("expected error for token signed with a different secret")
	}
}

func TestService_Parse_ExpiredToken(t *testing.T) {
	svc := newTestService(t, func(c *Config) { c.TokenTTL = -time.Minute })
	token, err := svc.Generate("user-1", "")
	if err != nil {
		t.Fatal(err)
	}
	if _, err := svc.Parse(token); err == nil {
		t.Error("expected error for expired token")
	}
}

func TestService_Parse_WrongIssuer(t *testing.T) {
	issued := newTestService(t, func(c *Config) { c.Issuer = "someone-else" })
	token, err := issued.Generate("user-1", "")
	if err != nil {
		t.Fatal(err)
	}

	svc := newTestService(t, nil)
	if _, err := svc.Parse(token); err == nil {
		t.Error("expected error for wrong issuer")
	}
}

func TestService_Parse_Garbage(t *testing.T) {
	svc := newTestService(t, nil)
	if _, err := svc.Parse("not.a.token"); err == nil {
		t.Error("expected error for malformed token")
	}
}

func TestService_ValidatorFunc(t *testing.T) {
	svc := newTestService(t, nil)
	token, err := svc.Generate("user-9", "admin")
	if err != nil {
		t.Fatal(err)
	}

	claims, err := svc.ValidatorFunc()(token)
	if err != nil {
		t.Fatalf("validator returned error: %v", err)
	}
	if claims["sub"] != "user-9" {
		t.Errorf("sub = %v, want user-9", claims["sub"])
	}
	if claims["role"] != "admin" {
		t.Errorf("role = %v, want admin", claims["role"])
	}
}

func TestNewService_RequiresSecretWhenEnabled(t *testing.T) {
	_, err := NewService(Config{Enabled: true})
	if err == nil || !strings.Contains(err.Error(), "secret") {
		t.Errorf("expected secret error, got %v", err)
	}
}

func TestConfig_ApplyDefaults(t *testing.T) {
	cfg := Config{}
	cfg.ApplyDefaults()
	if cfg.TokenTTL != time.Hour {
		t.Errorf("TokenTTL = %v, want 1h", cfg.TokenTTL)
	}
	if len(cfg.SkipPaths) == 0 {
		t.Error("expected default skip paths")
	}
}
