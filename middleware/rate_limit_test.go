package middleware

import (
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/gin-gonic/gin"

	"github.com/fevooduck/upload-photo/config"
)

func rateLimitedRouter(t *testing.T) *gin.Engine {
	t.Helper()
	gin.SetMode(gin.TestMode)
	r := gin.New()
	r.POST("/upload", RateLimitMiddleware(), func(ctx *gin.Context) {
		ctx.Status(http.StatusOK)
	})
	return r
}

func doUpload(r *gin.Engine, remoteAddr string) *httptest.ResponseRecorder {
	req := httptest.NewRequest(http.MethodPost, "/upload", nil)
	req.RemoteAddr = remoteAddr
	rec := httptest.NewRecorder()
	r.ServeHTTP(rec, req)
	return rec
}

func TestRateLimitBlocksAfterBurst(t *testing.T) {
	t.Setenv("RATE_LIMIT_PER_MINUTE", "1")
	config.Reset()
	t.Cleanup(config.Reset)

	r := rateLimitedRouter(t)

	if rec := doUpload(r, "203.0.113.7:5000"); rec.Code != http.StatusOK {
		t.Fatalf("first request status = %d, want 200", rec.Code)
	}

	rec := doUpload(r, "203.0.113.7:5000")
	if rec.Code != http.StatusTooManyRequests {
		t.Fatalf("second request status = %d, want 429", rec.Code)
	}
	var body map[string]string
	if err := json.Unmarshal(rec.Body.Bytes(), &body); err != nil {
		t.Fatalf("unmarshal: %v", err)
	}
	if body["error"] != "Muitas requisições. Tente novamente em instantes." {
		t.Errorf("error = %q", body["error"])
	}
}

func TestRateLimitIsPerIP(t *testing.T) {
	t.Setenv("RATE_LIMIT_PER_MINUTE", "1")
	config.Reset()
	t.Cleanup(config.Reset)

	r := rateLimitedRouter(t)

	if rec := doUpload(r, "198.51.100.1:6000"); rec.Code != http.StatusOK {
		t.Fatalf("first IP status = %d, want 200", rec.Code)
	}
	if rec := doUpload(r, "198.51.100.1:6000"); rec.Code != http.StatusTooManyRequests {
		t.Fatalf("first IP second request status = %d, want 429", rec.Code)
	}
	if rec := doUpload(r, "198.51.100.2:6000"); rec.Code != http.StatusOK {
		t.Fatalf("second IP must not be affected, status = %d", rec.Code)
	}
}
