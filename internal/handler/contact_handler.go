package handler

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/campora/scs-api/internal/service"
	appErrors "github.com/campora/scs-api/pkg/errors"
	"github.com/campora/scs-api/pkg/response"
)

// ContactHandler handles the public contact form and the admin inbox.
type ContactHandler struct {
	service *service.ContactService
}

// NewContactHandler creates a new contact handler.
func NewContactHandler(svc *service.ContactService) *ContactHandler {
	return &ContactHandler{service: svc}
}

// Create godoc
// @Summary Send a contact message
// @Tags Contact
// @Accept json
// @Produce json
// @Param payload body service.ContactRequest true "Message payload"
// @Success 201 {object} response.Envelope
// @Failure 400 {object} response.Envelope
// @Router /contact-us/message [post]
func (h *ContactHandler) Create(c *gin.Context) {
	var req service.ContactRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.Error(c, appErrors.Wrap(err, appErrors.ErrValidation.Code, http.StatusBadRequest, "invalid payload"))
		return
	}

	result, err := h.service.Create(c.Request.Context(), req)
	if err != nil {
		response.Error(c, err)
		return
	}

	response.Created(c, result)
}

// List godoc
// @Summary List contact messages, newest first
// @Tags Contact
// @Produce json
// @Success 200 {object} response.Envelope
// @Router /contact-us/all-message [get]
func (h *ContactHandler) List(c *gin.Context) {
	messages, err := h.service.List(c.Request.Context())
	if err != nil {
		response.Error(c, err)
		return
	}

	response.JSON(c, http.StatusOK, messages)
}

// MarkSeen godoc
// @Summary Mark a message as seen
// @Tags Contact
// @Produce json
// @Param id path string true "Message ID"
// @Success 200 {object} response.Envelope
// @Failure 400 {object} response.Envelope
// @Router /contact-us/single-massage-seen/{id} [put]
func (h *ContactHandler) MarkSeen(c *gin.Context) {
	result, err := h.service.MarkSeen(c.Request.Context(), c.Param("id"))
	if err != nil {
		response.Error(c, err)
		return
	}

	response.JSON(c, http.StatusOK, result)
}

// Delete godoc
// @Summary Delete a message
// @Tags Contact
// @Produce json
// @Param id path string true "Message ID"
// @Success 200 {object} response.Envelope
// @Failure 400 {object} response.Envelope
// @Router /contact-us/single-message/delete/{id} [delete]
func (h *ContactHandler) Delete(c *gin.Context) {
	result, err := h.service.Delete(c.Request.Context(), c.Param("id"))
	if err != nil {
		response.Error(c, err)
		return
	}

	response.JSON(c, http.StatusOK, result)
}
