package middleware

import (
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
)

func TestCached(t *testing.T) {
	calls := 0
	h := Cached(time.Minute, func(w http.ResponseWriter, r *http.Request) {
		calls++
		if r.URL.Query().Get("fail") != "" {
			w.WriteHeader(http.StatusBadGateway)
			return
		}
		w.Header().Set("Content-Type", "application/json")
		_, _ = w.Write([]byte(`[1]`))
	})

	for i := 0; i < 3; i++ {
		w := httptest.NewRecorder()
		h(w, httptest.NewRequest(http.MethodGet, "/api/market", nil))
		assert.Equal(t, http.StatusOK, w.Code)
		assert.Equal(t, `[1]`, w.Body.String())
		assert.Equal(t, "application/json", w.Header().Get("Content-Type"))
	}
	assert.Equal(t, 1, calls)

	for i := 0; i < 2; i++ {
		w := httptest.NewRecorder()
		h(w, httptest.NewRequest(http.MethodGet, "/api/market?fail=1", nil))
		assert.Equal(t, http.StatusBadGateway, w.Code)
	}
	assert.Equal(t, 3, calls)
}

func TestRateLimiter(t *testing.T) {
	h := NewRateLimiter(0.001, 2).Handler(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {}))

	do := func(ip string) int {
		r := httptest.NewRequest(http.MethodPost, "/v1/ipfs/file", nil)
		r.Header.Set("X-Real-Ip", ip)
		w := httptest.NewRecorder()
		h.ServeHTTP(w, r)
		return w.Code
	}

	assert.Equal(t, http.StatusOK, do("1.1.1.1"))
	assert.Equal(t, http.StatusOK, do("1.1.1.1"))
	assert.Equal(t, http.StatusTooManyRequests, do("1.1.1.1"))
	assert.Equal(t, http.StatusOK, do("2.2.2.2"))
}
