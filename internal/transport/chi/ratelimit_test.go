package chi

import (
	"net/http"
	"net/http/httptest"
	"testing"
)

func TestRateLimit_Disabled(t *testing.T) {
	handler := RateLimitMiddleware(0, 0)(okHandler())

	for i := 0; i < 10; i++ {
		rr := httptest.NewRecorder()
		handler.ServeHTTP(rr, httptest.NewRequest("POST", "/api/v1/rank", http.NoBody))
		if rr.Code != http.StatusOK {
			t.Fatalf("request %d: got %d, want %d", i, rr.Code, http.StatusOK)
		}
	}
}

func TestRateLimit_BurstThen429(t *testing.T) {
	// one token every 2s: only the burst passes within the test
	handler := RateLimitMiddleware(0.5, 2)(okHandler())

	codes := make([]int, 3)
	var last *httptest.ResponseRecorder
	for i := range codes {
		last = httptest.NewRecorder()
		handler.ServeHTTP(last, httptest.NewRequest("POST", "/api/v1/rank", http.NoBody))
		codes[i] = last.Code
	}

	if codes[0] != http.StatusOK || codes[1] != http.StatusOK {
		t.Errorf("burst requests: got %v, want first two 200", codes)
	}
	if codes[2] != http.StatusTooManyRequests {
		t.Errorf("third request: got %d, want %d", codes[2], http.StatusTooManyRequests)
	}
	if last.Header().Get("Retry-After") != "2" {
		t.Errorf("Retry-After = %q, want 2", last.Header().Get("Retry-After"))
	}
}

func TestRateLimit_ExemptPaths(t *testing.T) {
	handler := RateLimitMiddleware(0.5, 1)(okHandler())

	for i := 0; i < 3; i++ {
		for _, path := range []string{"/health", "/metrics"} {
			rr := httptest.NewRecorder()
			handler.ServeHTTP(rr, httptest.NewRequest("GET", path, http.NoBody))
			if rr.Code != http.StatusOK {
				t.Errorf("exempt path %s: got %d, want %d", path, rr.Code, http.StatusOK)
			}
		}
	}
}
