//go:build unit

package api_test

import (
	"encoding/json"
	"net/http"
	"testing"
	"time"

	"payref-console/internal/domain/notification"
	"payref-console/internal/domain/payment"
	"payref-console/internal/handler/api"
	"payref-console/internal/infra/bus"
	"payref-console/internal/usecase/commands"
	"payref-console/internal/usecase/queries"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newNotificationRouter(b *bus.NotificationBus) *gin.Engine {
	gin.SetMode(gin.TestMode)
	router := gin.New()
	handler := api.NewNotificationHandler(
		commands.NewNotificationCommands(b),
		queries.NewNotificationQueries(b),
	)

	router.GET("/notifications", handler.List)
	router.POST("/notifications/:id/read", handler.MarkRead)
	router.DELETE("/notifications", handler.ClearAll)
	return router
}

func publishSample(b *bus.NotificationBus) {
	now := time.Date(2026, 3, 15, 10, 0, 0, 0, time.UTC)
	b.Publish(notification.NewEvent("REF-A", payment.StatusPending, "Payment reference REF-A created", now))
	b.Publish(notification.NewEvent("REF-A", payment.StatusPaid, "Payment REF-A is now PAID", now.Add(time.Minute)))
}

func TestListNotificationsEndpoint(t *testing.T) {
	t.Run("returns history with unread count, most recent first", func(t *testing.T) {
		b := bus.NewNotificationBus()
		publishSample(b)
		router := newNotificationRouter(b)

		rec := perform(t, router, http.MethodGet, "/notifications", nil)

		require.Equal(t, http.StatusOK, rec.Code)
		var resp struct {
			Notifications []map[string]any `json:"notifications"`
			UnreadCount   int              `json:"unreadCount"`
		}
		require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &resp))

		require.Len(t, resp.Notifications, 2)
		assert.Equal(t, 2, resp.UnreadCount)
		assert.Equal(t, "PAID", resp.Notifications[0]["status"])
		assert.Equal(t, "success", resp.Notifications[0]["severity"])
		assert.Equal(t, "PENDING", resp.Notifications[1]["status"])
	})

	t.Run("empty history", func(t *testing.T) {
		router := newNotificationRouter(bus.NewNotificationBus())

		rec := perform(t, router, http.MethodGet, "/notifications", nil)

		require.Equal(t, http.StatusOK, rec.Code)
		var resp struct {
			Notifications []map[string]any `json:"notifications"`
			UnreadCount   int              `json:"unreadCount"`
		}
		require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &resp))
		assert.Empty(t, resp.Notifications)
		assert.Equal(t, 0, resp.UnreadCount)
	})
}

func TestMarkReadEndpoint(t *testing.T) {
	t.Run("marks one notification read", func(t *testing.T) {
		b := bus.NewNotificationBus()
		publishSample(b)
		router := newNotificationRouter(b)
		target := b.Events()[0].ID

		rec := perform(t, router, http.MethodPost, "/notifications/"+target.String()+"/read", nil)

		require.Equal(t, http.StatusNoContent, rec.Code)
		assert.Equal(t, 1, b.UnreadCount())
	})

	t.Run("malformed id returns 400", func(t *testing.T) {
		router := newNotificationRouter(bus.NewNotificationBus())
		rec := perform(t, router, http.MethodPost, "/notifications/not-a-uuid/read", nil)
		assert.Equal(t, http.StatusBadRequest, rec.Code)
	})

	t.Run("unknown id returns 404", func(t *testing.T) {
		router := newNotificationRouter(bus.NewNotificationBus())
		rec := perform(t, router, http.MethodPost, "/notifications/"+uuid.NewString()+"/read", nil)
		assert.Equal(t, http.StatusNotFound, rec.Code)
	})
}

func TestClearAllEndpoint(t *testing.T) {
	b := bus.NewNotificationBus()
	publishSample(b)
	router := newNotificationRouter(b)

	rec := perform(t, router, http.MethodDelete, "/notifications", nil)

	require.Equal(t, http.StatusNoContent, rec.Code)
	assert.Empty(t, b.Events())
}
