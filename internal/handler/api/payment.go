package api

import (
	"errors"
	"net/http"
	"strconv"
	"time"

	"payref-console/internal/domain/payment"
	reqdto "payref-console/internal/handler/dto/request"
	resdto "payref-console/internal/handler/dto/response"
	"payref-console/internal/handler/httperr"
	"payref-console/internal/pkg/errs"
	"payref-console/internal/usecase/commands"
	"payref-console/internal/usecase/queries"

	"github.com/gin-gonic/gin"
)

type PaymentHandler struct {
	paymentCommands commands.PaymentCommands
	paymentQueries  queries.PaymentQueries
}

func NewPaymentHandler(paymentCommands commands.PaymentCommands, paymentQueries queries.PaymentQueries) *PaymentHandler {
	return &PaymentHandler{
		paymentCommands: paymentCommands,
		paymentQueries:  paymentQueries,
	}
}

// @Summary Create payment reference
// @Description Register a payment request upstream and track it locally
// @Tags payments
// @Accept json
// @Produce json
// @Param request body reqdto.CreatePaymentRequest true "Payment request"
// @Success 201 {object} resdto.PaymentResponse
// @Failure 400 {object} map[string]string
// @Failure 401 {object} map[string]string
// @Failure 503 {object} map[string]string
// @Router /payments [post]
func (h *PaymentHandler) Create(c *gin.Context) {
	var req reqdto.CreatePaymentRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		httperr.AbortWithError(c, http.StatusBadRequest, err, "Invalid request format", nil)
		return
	}

	params, err := req.ToParams()
	if err != nil {
		httperr.AbortWithError(c, http.StatusBadRequest, err, "dueDate must be a YYYY-MM-DD date", nil)
		return
	}

	rec, err := h.paymentCommands.Create(c.Request.Context(), params)
	if err != nil {
		h.renderPaymentError(c, err)
		return
	}

	c.JSON(http.StatusCreated, resdto.FromRecord(*rec))
}

// @Summary List payment references
// @Description List locally known payment references, newest first, with optional filters
// @Tags payments
// @Produce json
// @Param search query string false "Substring match on reference or description"
// @Param status query string false "Exact status (PENDING, PAID, CANCELLED, EXPIRED)"
// @Param from query string false "Creation date lower bound (YYYY-MM-DD)"
// @Param to query string false "Creation date upper bound (YYYY-MM-DD)"
// @Param minAmount query number false "Minimum amount"
// @Param maxAmount query number false "Maximum amount"
// @Success 200 {array} resdto.PaymentResponse
// @Failure 400 {object} map[string]string
// @Failure 401 {object} map[string]string
// @Router /payments [get]
func (h *PaymentHandler) List(c *gin.Context) {
	filter, err := parseListFilter(c)
	if err != nil {
		httperr.AbortWithError(c, http.StatusBadRequest, err, err.Error(), nil)
		return
	}

	records := h.paymentQueries.List(filter)
	c.JSON(http.StatusOK, resdto.FromRecords(records))
}

// @Summary Get payment detail
// @Description Fetch one reference, served from the cache when fresh; refresh=true forces a refetch
// @Tags payments
// @Produce json
// @Param reference path string true "Payment reference"
// @Param paymentId path string true "Payment ID"
// @Param refresh query bool false "Bypass the cache"
// @Success 200 {object} resdto.PaymentResponse
// @Failure 401 {object} map[string]string
// @Failure 404 {object} map[string]string
// @Failure 503 {object} map[string]string
// @Router /payments/{reference}/{paymentId} [get]
func (h *PaymentHandler) Get(c *gin.Context) {
	reference := c.Param("reference")
	paymentID := c.Param("paymentId")
	force := c.Query("refresh") == "true"

	rec, err := h.paymentCommands.Sync(c.Request.Context(), reference, paymentID, force)
	if err != nil {
		h.renderPaymentError(c, err)
		return
	}

	c.JSON(http.StatusOK, resdto.FromRecord(*rec))
}

// @Summary Cancel payment reference
// @Description Cancel a pending reference with a reason
// @Tags payments
// @Accept json
// @Produce json
// @Param reference path string true "Payment reference"
// @Param request body reqdto.CancelPaymentRequest true "Cancellation reason"
// @Success 200 {object} resdto.PaymentResponse
// @Failure 400 {object} map[string]string
// @Failure 401 {object} map[string]string
// @Failure 404 {object} map[string]string
// @Failure 409 {object} map[string]string
// @Failure 503 {object} map[string]string
// @Router /payments/{reference}/cancel [put]
func (h *PaymentHandler) Cancel(c *gin.Context) {
	reference := c.Param("reference")

	var req reqdto.CancelPaymentRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		httperr.AbortWithError(c, http.StatusBadRequest, err, "A cancellation reason is required", nil)
		return
	}

	rec, err := h.paymentCommands.Cancel(c.Request.Context(), reference, req.Reason)
	if err != nil {
		h.renderPaymentError(c, err)
		return
	}

	c.JSON(http.StatusOK, resdto.FromRecord(*rec))
}

func (h *PaymentHandler) renderPaymentError(c *gin.Context, err error) {
	switch {
	case errors.Is(err, errs.ErrValidationFailed):
		httperr.AbortWithError(c, http.StatusBadRequest, err, err.Error(), nil)
	case errors.Is(err, errs.ErrSessionExpired), errors.Is(err, errs.ErrAuthenticationFailed):
		httperr.AbortWithError(c, http.StatusUnauthorized, err, "Session expired, please log in again", nil)
	case errors.Is(err, errs.ErrPaymentNotFound):
		httperr.AbortWithError(c, http.StatusNotFound, err, "Payment not found", nil)
	case errors.Is(err, errs.ErrInvalidStateTransition):
		httperr.AbortWithError(c, http.StatusConflict, err, "Only pending payments can be cancelled", nil)
	case errors.Is(err, errs.ErrTransientUpstream):
		httperr.AbortWithError(c, http.StatusServiceUnavailable, err, "The payment service is unavailable, please try again later", nil)
	default:
		httperr.AbortWithError(c, http.StatusInternalServerError, err, "Internal server error", nil)
	}
}

func parseListFilter(c *gin.Context) (queries.ListFilter, error) {
	var filter queries.ListFilter

	if v := c.Query("search"); v != "" {
		filter.Search = &v
	}
	if v := c.Query("status"); v != "" {
		status, err := payment.ParseStatus(v)
		if err != nil {
			return queries.ListFilter{}, errs.New("status must be one of PENDING, PAID, CANCELLED, EXPIRED")
		}
		filter.Status = &status
	}
	if v := c.Query("from"); v != "" {
		t, err := time.Parse("2006-01-02", v)
		if err != nil {
			return queries.ListFilter{}, errs.New("from must be a YYYY-MM-DD date")
		}
		filter.From = &t
	}
	if v := c.Query("to"); v != "" {
		t, err := time.Parse("2006-01-02", v)
		if err != nil {
			return queries.ListFilter{}, errs.New("to must be a YYYY-MM-DD date")
		}
		// Inclusive upper bound: the whole day counts.
		t = t.Add(24*time.Hour - time.Nanosecond)
		filter.To = &t
	}
	if v := c.Query("minAmount"); v != "" {
		f, err := strconv.ParseFloat(v, 64)
		if err != nil {
			return queries.ListFilter{}, errs.New("minAmount must be a number")
		}
		filter.MinAmount = &f
	}
	if v := c.Query("maxAmount"); v != "" {
		f, err := strconv.ParseFloat(v, 64)
		if err != nil {
			return queries.ListFilter{}, errs.New("maxAmount must be a number")
		}
		filter.MaxAmount = &f
	}

	return filter, nil
}
