package auth

import (
	"fmt"
	"time"

	gojwt "github.com/golang-jwt/jwt/v5"

	apperrors "github.com/skillsenselab/statkit/errors"
)

// Claims are the token claims issued and validated by the Service.
type Claims struct {
	gojwt.RegisteredClaims
	Role string `json:"role,omitempty"`
}

// Service generates and validates HMAC-signed JWTs.
type Service struct {
	cfg Config
}

// NewService creates a token service from config. Defaults are applied and
// the config is validated.
func NewService(cfg Config) (*Service, error) {
	cfg.ApplyDefaults()
	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	return &Service{cfg: cfg}, nil
}

// Generate creates a signed token for the given subject and role with the
// configured TTL and issuer.
func (s *Service) Generate(subject, role string) (string, error) {
	now := time.Now()
	claims := &Claims{
		RegisteredClaims: gojwt.RegisteredClaims{
			Subject:   subject,
			Issuer:    s.cfg.Issuer,
			IssuedAt:  gojwt.NewNumericDate(now),
			ExpiresAt: gojwt.NewNumericDate(now.Add(s.cfg.TokenTTL)),
		},
		Role: role,
	}
	token := gojwt.NewWithClaims(gojwt.SigningMethodHS256, claims)
	signed, err := token.SignedString([]byte(s.cfg.Secret))
	if err != nil {
		return "", fmt.Errorf("auth: sign token: %w", err)
	}
	return signed, nil
}

// Parse validates a token string and returns its claims. Signature, expiry,
// and issuer (when configured) are all checked.
func (s *Service) Parse(tokenString string) (*Claims, error) {
	opts := []gojwt.ParserOption{
		gojwt.WithValidMethods([]string{gojwt.SigningMethodHS256.Alg()}),
	}
	if s.cfg.Issuer != "" {
		opts = append(opts, gojwt.WithIssuer(s.cfg.Issuer))
	}

	claims := &Claims{}
	token, err := gojwt.ParseWithClaims(tokenString, claims, func(t *gojwt.Token) (interface{}, error) {
		return []byte(s.cfg.Secret), nil
	}, opts...)
	if err != nil {
		return nil, apperrors.Unauthorized("Invalid or expired token.").WithCause(err)
	}
	if !token.Valid {
		return nil, apperrors.Unauthorized("Invalid or expired token.")
	}
	return claims, nil
}

// ValidatorFunc adapts the service to the middleware's TokenValidator shape.
// Validated claims are returned as a map for storage in the request context.
func (s *Service) ValidatorFunc() func(string) (map[string]interface{}, error) {
	return func(token string) (map[string]interface{}, error) {
		claims, err := s.Parse(token)
		if err != nil {
			return nil, err
		}
		out := map[string]interface{}{
			"sub": claims.Subject,
		}
		if claims.Role != "" {
			out["role"] = claims.Role
		}
		return out, nil
	}
}
