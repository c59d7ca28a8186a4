// Package middleware ...
package middleware

import (
	"net/http"
	"net/http/httptest"
	"time"

	"github.com/hashicorp/golang-lru/v2/expirable"
)

const cacheSize = 1024

type response struct {
	header http.Header
	body   []byte
}

// Cached caches successful responses of handler by request uri for ttl.
func Cached(ttl time.Duration, handler http.HandlerFunc) http.HandlerFunc {
	storage := expirable.NewLRU[string, response](cacheSize, nil, ttl)

	return func(w http.ResponseWriter, r *http.Request) {
		if c, ok := storage.Get(r.RequestURI); ok {
			for k, v := range c.header {
				w.Header()[k] = v
			}
			_, _ = w.Write(c.body)
			return
		}

		c := httptest.NewRecorder()
		handler(c, r)

		for k, v := range c.Header() {
			w.Header()[k] = v
		}

		w.WriteHeader(c.Code)
		content := c.Body.Bytes()

		if c.Code == http.StatusOK {
			storage.Add(r.RequestURI, response{header: c.Header().Clone(), body: content})
		}

		_, _ = w.Write(content)
	}
}
