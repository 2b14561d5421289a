//go:build unit

package middleware_test

import (
	"net/http"
	"net/http/httptest"
	"testing"

	"payref-console/internal/handler/middleware"
	"payref-console/internal/pkg/errs"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
)

type validatorStub struct {
	err error
}

func (v *validatorStub) Validate() error { return v.err }

func newGuardedRouter(v *validatorStub) *gin.Engine {
	gin.SetMode(gin.TestMode)
	router := gin.New()
	router.Use(middleware.NewAuthMiddleware(v).RequireSession())
	router.GET("/guarded", func(c *gin.Context) {
		c.Status(http.StatusOK)
	})
	return router
}

func TestRequireSession(t *testing.T) {
	t.Run("valid session passes through", func(t *testing.T) {
		router := newGuardedRouter(&validatorStub{})

		rec := httptest.NewRecorder()
		router.ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/guarded", nil))

		assert.Equal(t, http.StatusOK, rec.Code)
	})

	t.Run("missing or expired session is rejected", func(t *testing.T) {
		router := newGuardedRouter(&validatorStub{err: errs.ErrSessionExpired})

		rec := httptest.NewRecorder()
		router.ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/guarded", nil))

		assert.Equal(t, http.StatusUnauthorized, rec.Code)
		assert.JSONEq(t, `{"error": {"message": "Session expired, please log in again"}}`, rec.Body.String())
	})
}
