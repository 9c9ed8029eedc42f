// Package httpserver builds the public listener.
package httpserver

import (
	"net/http"
	"time"

	"museum/internal/platform/config"
)

// headerTimeout bounds slow clients before any handler runs.
const headerTimeout = 5 * time.Second

// New builds the server for cfg. Zero timeouts in cfg leave that limit off.
func New(cfg config.Server, handler http.Handler) *http.Server {
	return &http.Server{
		Addr:              cfg.Addr,
		Handler:           handler,
		ReadHeaderTimeout: headerTimeout,
		ReadTimeout:       cfg.ReadTimeout,
		WriteTimeout:      cfg.WriteTimeout,
		IdleTimeout:       cfg.IdleTimeout,
	}
}
