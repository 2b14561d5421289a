//go:build unit

package main

import (
	"context"
	"net"
	"net/http"
	"testing"
	"time"

	"payref-console/internal/pkg/config"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNewHTTPServer(t *testing.T) {
	gin.SetMode(gin.TestMode)
	engine := gin.New()
	engine.GET("/health", func(c *gin.Context) { c.Status(http.StatusOK) })

	cfg := config.NewTestConfig()

	t.Run("binds the configured port to the engine", func(t *testing.T) {
		srv := newHTTPServer(cfg, engine)

		assert.Equal(t, ":"+cfg.Server.Port, srv.Addr)
		assert.Same(t, engine, srv.Handler.(*gin.Engine))
	})

	t.Run("shuts down gracefully", func(t *testing.T) {
		srv := newHTTPServer(cfg, engine)

		ln, err := net.Listen("tcp", "127.0.0.1:0")
		require.NoError(t, err)

		served := make(chan error, 1)
		go func() { served <- srv.Serve(ln) }()

		resp, err := http.Get("http://" + ln.Addr().String() + "/health")
		require.NoError(t, err)
		resp.Body.Close()
		assert.Equal(t, http.StatusOK, resp.StatusCode)

		ctx, cancel := context.WithTimeout(context.Background(), time.Second)
		defer cancel()
		require.NoError(t, srv.Shutdown(ctx))
		assert.ErrorIs(t, <-served, http.ErrServerClosed)
	})
}
