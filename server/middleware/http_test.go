package middleware_test

import (
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/gin-gonic/gin"

	"github.com/skillsenselab/statkit/logger"
	"github.com/skillsenselab/statkit/server/middleware"
)

func ginEngine(mw ...gin.HandlerFunc) *gin.Engine {
	gin.SetMode(gin.TestMode)
	engine := gin.New()
	engine.Use(mw...)
	return engine
}

// ---------------------------------------------------------------------------
// Recovery
// ---------------------------------------------------------------------------

func TestRecovery_NoPanic(t *testing.T) {
	engine := ginEngine(middleware.Recovery())
	engine.GET("/", func(c *gin.Context) { c.String(http.StatusOK, "ok") })

	rr := httptest.NewRecorder()
	engine.ServeHTTP(rr, httptest.NewRequest("GET", "/", http.NoBody))

	if rr.Code != http.StatusOK {
		t.Fatalf("expected 200, got %d", rr.Code)
	}
}

func TestRecovery_Panic(t *testing.T) {
	engine := ginEngine(middleware.Recovery())
	engine.GET("/test", func(c *gin.Context) { panic("test panic") })

	rr := httptest.NewRecorder()
	engine.ServeHTTP(rr, httptest.NewRequest("GET", "/test", http.NoBody))

	if rr.Code != http.StatusInternalServerError {
		t.Fatalf("expected 500, got %d", rr.Code)
	}

	var body map[string]string
	if err := json.Unmarshal(rr.Body.Bytes(), &body); err != nil {
		t.Fatalf("response is not valid JSON: %v", err)
	}
	if body["error"] != "Internal server error" {
		t.Fatalf("unexpected error message: %s", body["error"])
	}
}

// ---------------------------------------------------------------------------
// RequestID
// ---------------------------------------------------------------------------

func TestRequestID_GeneratesID(t *testing.T) {
	engine := ginEngine(middleware.RequestID())
	engine.GET("/", func(c *gin.Context) {
		if c.GetString("request_id") == "" {
			t.Error("expected request_id in context")
		}
		c.Status(http.StatusOK)
	})

	rr := httptest.NewRecorder()
	engine.ServeHTTP(rr, httptest.NewRequest("GET", "/", http.NoBody))

	if rr.Header().Get("X-Request-Id") == "" {
		t.Error("expected X-Request-Id in response headers")
	}
}

func TestRequestID_PreservesExisting(t *testing.T) {
	engine := ginEngine(middleware.RequestID())
	engine.GET("/", func(c *gin.Context) { c.Status(http.StatusOK) })

	rr := httptest.NewRecorder()
	req := httptest.NewRequest("GET", "/", http.NoBody)
	req.Header.Set("X-Request-Id", "custom-id-123")
	engine.ServeHTTP(rr, req)

	if got := rr.Header().Get("X-Request-Id"); got != "custom-id-123" {
		t.Fatalf("expected custom-id-123, got %s", got)
	}
}

// ---------------------------------------------------------------------------
// CORS
// ---------------------------------------------------------------------------

func TestCORS_SetHeaders(t *testing.T) {
	cfg := &middleware.CORSConfig{
		AllowedOrigins: []string{"https://example.com"},
		AllowedMethods: []string{"GET", "POST"},
		AllowedHeaders: []string{"Content-Type", "Authorization"},
	}
	handler := middleware.CORS(cfg)(http.HandlerFunc(func(w http.ResponseWriter, _ *http.Request) {
		w.WriteHeader(http.StatusOK)
	}))

	rr := httptest.NewRecorder()
	req := httptest.NewRequest("GET", "/", http.NoBody)
	req.Header.Set("Origin", "https://example.com")
	handler.ServeHTTP(rr, req)

	if got := rr.Header().Get("Access-Control-Allow-Origin"); got != "https://example.com" {
		t.Fatalf("expected https://example.com, got %s", got)
	}
	if got := rr.Header().Get("Access-Control-Allow-Methods"); got != "GET, POST" {
		t.Fatalf("expected 'GET, POST', got %s", got)
	}
}

func TestCORS_Preflight(t *testing.T) {
	cfg := &middleware.CORSConfig{
		AllowedOrigins: []string{"*"},
		AllowedMethods: []string{"GET", "POST"},
	}
	called := false
	handler := middleware.CORS(cfg)(http.HandlerFunc(func(_ http.ResponseWriter, _ *http.Request) {
		called = true
	}))

	rr := httptest.NewRecorder()
	req := httptest.NewRequest("OPTIONS", "/", http.NoBody)
	req.Header.Set("Origin", "https://anywhere.dev")
	handler.ServeHTTP(rr, req)

	if rr.Code != http.StatusNoContent {
		t.Fatalf("expected 204 for preflight, got %d", rr.Code)
	}
	if called {
		t.Error("preflight request should not reach the handler")
	}
}

func TestCORS_DisallowedOrigin(t *testing.T) {
	cfg := &middleware.CORSConfig{
		AllowedOrigins: []string{"https://example.com"},
	}
	handler := middleware.CORS(cfg)(http.HandlerFunc(func(w http.ResponseWriter, _ *http.Request) {
		w.WriteHeader(http.StatusOK)
	}))

	rr := httptest.NewRecorder()
	req := httptest.NewRequest("GET", "/", http.NoBody)
	req.Header.Set("Origin", "https://evil.test")
	handler.ServeHTTP(rr, req)

	if got := rr.Header().Get("Access-Control-Allow-Origin"); got != "" {
		t.Fatalf("expected no CORS headers for disallowed origin, got %s", got)
	}
}

// ---------------------------------------------------------------------------
// RequestLogger
// ---------------------------------------------------------------------------

func TestRequestLogger_PassesThrough(t *testing.T) {
	log := logger.NewDefault("test")
	handler := middleware.RequestLogger(log)(http.HandlerFunc(func(w http.ResponseWriter, _ *http.Request) {
		w.WriteHeader(http.StatusTeapot)
	}))

	rr := httptest.NewRecorder()
	handler.ServeHTTP(rr, httptest.NewRequest("GET", "/tea", http.NoBody))

	if rr.Code != http.StatusTeapot {
		t.Fatalf("expected 418, got %d", rr.Code)
	}
}

// ---------------------------------------------------------------------------
// BodySizeLimit
// ---------------------------------------------------------------------------

func TestBodySizeLimit_RejectsOversizedBody(t *testing.T) {
	handler := middleware.BodySizeLimit("1KB")(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		buf := make([]byte, 4096)
		if _, err := r.Body.Read(buf); err != nil {
			http.Error(w, err.Error(), http.StatusRequestEntityTooLarge)
			return
		}
		w.WriteHeader(http.StatusOK)
	}))

	rr := httptest.NewRecorder()
	body := strings.NewReader(strings.Repeat("x", 2048))
	handler.ServeHTTP(rr, httptest.NewRequest("POST", "/", body))

	if rr.Code != http.StatusRequestEntityTooLarge {
		t.Fatalf("expected 413, got %d", rr.Code)
	}
}

func TestBodySizeLimit_AllowsSmallBody(t *testing.T) {
	handler := middleware.BodySizeLimit("1KB")(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		buf := make([]byte, 64)
		n, _ := r.Body.Read(buf)
		if n == 0 {
			http.Error(w, "no body", http.StatusBadRequest)
			return
		}
		w.WriteHeader(http.StatusOK)
	}))

	rr := httptest.NewRecorder()
	handler.ServeHTTP(rr, httptest.NewRequest("POST", "/", strings.NewReader("small")))

	if rr.Code != http.StatusOK {
		t.Fatalf("expected 200, got %d", rr.Code)
	}
}

// ---------------------------------------------------------------------------
// Auth
// ---------------------------------------------------------------------------

func TestAuth_ValidToken(t *testing.T) {
	engine := ginEngine(middleware.Auth(middleware.AuthConfig{
		TokenValidator: func(token string) (map[string]interface{}, error) {
			if token != "good-token" {
				t.Fatalf("unexpected token: %s", token)
			}
			return map[string]interface{}{"sub": "user-1"}, nil
		},
	}))
	engine.GET("/secure", func(c *gin.Context) {
		if c.GetString("sub") != "user-1" {
			t.Error("expected claims in context")
		}
		c.Status(http.StatusOK)
	})

	rr := httptest.NewRecorder()
	req := httptest.NewRequest("GET", "/secure", http.NoBody)
	req.Header.Set("Authorization", "Bearer good-token")
	engine.ServeHTTP(rr, req)

	if rr.Code != http.StatusOK {
		t.Fatalf("expected 200, got %d", rr.Code)
	}
}

func TestAuth_MissingHeader(t *testing.T) {
	engine := ginEngine(middleware.Auth(middleware.AuthConfig{
		TokenValidator: func(string) (map[string]interface{}, error) {
			t.Fatal("validator should not be called")
			return nil, nil
		},
	}))
	engine.GET("/secure", func(c *gin.Context) { c.Status(http.StatusOK) })

	rr := httptest.NewRecorder()
	engine.ServeHTTP(rr, httptest.NewRequest("GET", "/secure", http.NoBody))

	if rr.Code != http.StatusUnauthorized {
		t.Fatalf("expected 401, got %d", rr.Code)
	}
}

func TestAuth_SkipPaths(t *testing.T) {
	engine := ginEngine(middleware.Auth(middleware.AuthConfig{
		TokenValidator: func(string) (map[string]interface{}, error) {
			t.Fatal("validator should not be called for skipped paths")
			return nil, nil
		},
		SkipPaths: []string{"/health"},
	}))
	engine.GET("/health", func(c *gin.Context) { c.Status(http.StatusOK) })

	rr := httptest.NewRecorder()
	engine.ServeHTTP(rr, httptest.NewRequest("GET", "/health", http.NoBody))

	if rr.Code != http.StatusOK {
		t.Fatalf("expected 200, got %d", rr.Code)
	}
}
