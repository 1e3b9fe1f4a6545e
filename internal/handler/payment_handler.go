package handler

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/campora/scs-api/internal/service"
	appErrors "github.com/campora/scs-api/pkg/errors"
	"github.com/campora/scs-api/pkg/response"
)

// PaymentHandler handles payment-intent and payment-record endpoints.
type PaymentHandler struct {
	service *service.PaymentService
}

// NewPaymentHandler creates a new payment handler.
func NewPaymentHandler(svc *service.PaymentService) *PaymentHandler {
	return &PaymentHandler{service: svc}
}

// CreateIntent godoc
// @Summary Create a payment intent
// @Description Converts the price to minor units and returns the client secret
// @Tags Payments
// @Accept json
// @Produce json
// @Param payload body service.CreateIntentRequest true "Price payload"
// @Success 200 {object} response.Envelope
// @Failure 400 {object} response.Envelope
// @Failure 502 {object} response.Envelope
// @Router /student/selected-course/create-payment-intent [post]
func (h *PaymentHandler) CreateIntent(c *gin.Context) {
	var req service.CreateIntentRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.Error(c, appErrors.Wrap(err, appErrors.ErrValidation.Code, http.StatusBadRequest, "invalid payload"))
		return
	}

	intent, err := h.service.CreateIntent(c.Request.Context(), req)
	if err != nil {
		response.Error(c, err)
		return
	}

	response.JSON(c, http.StatusOK, intent)
}

// Record godoc
// @Summary Record a completed payment
// @Tags Payments
// @Accept json
// @Produce json
// @Param payload body service.RecordPaymentRequest true "Payment info"
// @Success 201 {object} response.Envelope
// @Failure 400 {object} response.Envelope
// @Router /student/selected-course/payment-info [post]
func (h *PaymentHandler) Record(c *gin.Context) {
	var req service.RecordPaymentRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.Error(c, appErrors.Wrap(err, appErrors.ErrValidation.Code, http.StatusBadRequest, "invalid payload"))
		return
	}

	result, err := h.service.Record(c.Request.Context(), req)
	if err != nil {
		response.Error(c, err)
		return
	}

	response.Created(c, result)
}

// Enrolled godoc
// @Summary List a student's enrolled courses
// @Tags Payments
// @Produce json
// @Param email path string true "Student email"
// @Success 200 {object} response.Envelope
// @Router /student/enrolled-course/{email} [get]
func (h *PaymentHandler) Enrolled(c *gin.Context) {
	payments, err := h.service.EnrolledCourses(c.Request.Context(), c.Param("email"))
	if err != nil {
		response.Error(c, err)
		return
	}

	response.JSON(c, http.StatusOK, payments)
}

// History godoc
// @Summary List a student's payment history, newest first
// @Tags Payments
// @Produce json
// @Param email path string true "Student email"
// @Success 200 {object} response.Envelope
// @Router /student/payment-history/{email} [get]
func (h *PaymentHandler) History(c *gin.Context) {
	payments, err := h.service.History(c.Request.Context(), c.Param("email"))
	if err != nil {
		response.Error(c, err)
		return
	}

	response.JSON(c, http.StatusOK, payments)
}
