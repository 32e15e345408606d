// Package httpserver constructs the catalog's HTTP server. The API is
// GET-only with small requests, so read timeouts are tight; response time is
// governed by the request-timeout middleware rather than a write deadline.
package httpserver

import (
	"net/http"
	"time"
)

// New builds the server around the given router.
func New(addr string, handler http.Handler) *http.Server {
	return &http.Server{
		Addr:              addr,
		Handler:           handler,
		ReadHeaderTimeout: 5 * time.Second,
		ReadTimeout:       10 * time.Second,
		IdleTimeout:       60 * time.Second,
	}
}
