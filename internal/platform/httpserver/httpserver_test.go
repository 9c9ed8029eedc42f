package httpserver

import (
	"net/http"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"

	"museum/internal/platform/config"
)

func TestNewAppliesConfiguredTimeouts(t *testing.T) {
	h := http.NotFoundHandler()
	srv := New(config.Server{
		Addr:         ":5000",
		ReadTimeout:  10 * time.Second,
		WriteTimeout: 20 * time.Second,
		IdleTimeout:  time.Minute,
	}, h)

	assert.Equal(t, ":5000", srv.Addr)
	assert.Equal(t, headerTimeout, srv.ReadHeaderTimeout)
	assert.Equal(t, 10*time.Second, srv.ReadTimeout)
	assert.Equal(t, 20*time.Second, srv.WriteTimeout)
	assert.Equal(t, time.Minute, srv.IdleTimeout)
}
