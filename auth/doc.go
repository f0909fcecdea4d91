// Package auth provides bearer-token authentication for statkit services
// using HMAC-signed JWTs.
//
// The Service generates and validates tokens; ValidatorFunc bridges it to
// the server's Auth middleware:
//
//	svc, err := auth.NewService(cfg)
//	engine.Use(middleware.Auth(middleware.AuthConfig{
//	    TokenValidator: svc.ValidatorFunc(),
//	    SkipPaths:      cfg.SkipPaths,
//	}))
package auth
