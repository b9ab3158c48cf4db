package middleware

import (
	"log"
	"net/http"
	"time"
)

// Logging prints one line per request in the service's bracketed style.
func Logging(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		start := time.Now()
		sw := &statusWriter{ResponseWriter: w, status: http.StatusOK}

		next.ServeHTTP(sw, r)

		log.Printf("[API] %s %s %d %s", r.Method, r.URL.Path, sw.status, time.Since(start))
	})
}
