package api

import (
	"errors"
	"net/http"

	resdto "payref-console/internal/handler/dto/response"
	"payref-console/internal/handler/httperr"
	"payref-console/internal/usecase/commands"
	"payref-console/internal/usecase/queries"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
)

type NotificationHandler struct {
	notificationCommands commands.NotificationCommands
	notificationQueries  queries.NotificationQueries
}

func NewNotificationHandler(notificationCommands commands.NotificationCommands, notificationQueries queries.NotificationQueries) *NotificationHandler {
	return &NotificationHandler{
		notificationCommands: notificationCommands,
		notificationQueries:  notificationQueries,
	}
}

// @Summary List notifications
// @Description Session notification history, most recent first
// @Tags notifications
// @Produce json
// @Success 200 {object} resdto.NotificationListResponse
// @Failure 401 {object} map[string]string
// @Router /notifications [get]
func (h *NotificationHandler) List(c *gin.Context) {
	events := h.notificationQueries.List()
	unread := h.notificationQueries.UnreadCount()
	c.JSON(http.StatusOK, resdto.FromEvents(events, unread))
}

// @Summary Mark notification read
// @Tags notifications
// @Param id path string true "Notification ID"
// @Success 204 "No Content"
// @Failure 400 {object} map[string]string
// @Failure 404 {object} map[string]string
// @Router /notifications/{id}/read [post]
func (h *NotificationHandler) MarkRead(c *gin.Context) {
	id, err := uuid.Parse(c.Param("id"))
	if err != nil {
		httperr.AbortWithError(c, http.StatusBadRequest, err, "Invalid notification ID format", nil)
		return
	}

	if err := h.notificationCommands.MarkRead(id); err != nil {
		if errors.Is(err, commands.ErrNotificationNotFound) {
			httperr.AbortWithError(c, http.StatusNotFound, err, "Notification not found", nil)
			return
		}
		httperr.AbortWithError(c, http.StatusInternalServerError, err, "Internal server error", nil)
		return
	}

	c.Status(http.StatusNoContent)
}

// @Summary Clear notifications
// @Tags notifications
// @Success 204 "No Content"
// @Router /notifications [delete]
func (h *NotificationHandler) ClearAll(c *gin.Context) {
	h.notificationCommands.ClearAll()
	c.Status(http.StatusNoContent)
}
