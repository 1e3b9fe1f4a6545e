package handler

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/campora/scs-api/internal/service"
	appErrors "github.com/campora/scs-api/pkg/errors"
	"github.com/campora/scs-api/pkg/response"
)

// SelectionHandler handles checkout selection endpoints.
type SelectionHandler struct {
	service *service.SelectionService
}

// NewSelectionHandler creates a new selection handler.
func NewSelectionHandler(svc *service.SelectionService) *SelectionHandler {
	return &SelectionHandler{service: svc}
}

// Select godoc
// @Summary Add a course to the checkout selection
// @Tags Selections
// @Accept json
// @Produce json
// @Param payload body service.SelectCourseRequest true "Selection payload"
// @Success 201 {object} response.Envelope
// @Failure 400 {object} response.Envelope
// @Router /student/selected-course [post]
func (h *SelectionHandler) Select(c *gin.Context) {
	var req service.SelectCourseRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.Error(c, appErrors.Wrap(err, appErrors.ErrValidation.Code, http.StatusBadRequest, "invalid payload"))
		return
	}

	result, err := h.service.Select(c.Request.Context(), req)
	if err != nil {
		response.Error(c, err)
		return
	}

	response.Created(c, result)
}

// ListByStudent godoc
// @Summary List a student's selections
// @Tags Selections
// @Produce json
// @Param email path string true "Student email"
// @Success 200 {object} response.Envelope
// @Router /student/selected-all-course/{email} [get]
func (h *SelectionHandler) ListByStudent(c *gin.Context) {
	selections, err := h.service.ListByStudent(c.Request.Context(), c.Param("email"))
	if err != nil {
		response.Error(c, err)
		return
	}

	response.JSON(c, http.StatusOK, selections)
}

// Remove godoc
// @Summary Remove a selection
// @Tags Selections
// @Produce json
// @Param id path string true "Selection ID"
// @Success 200 {object} response.Envelope
// @Failure 400 {object} response.Envelope
// @Router /student/delete-selected-course/{id} [delete]
func (h *SelectionHandler) Remove(c *gin.Context) {
	result, err := h.service.Remove(c.Request.Context(), c.Param("id"))
	if err != nil {
		response.Error(c, err)
		return
	}

	response.JSON(c, http.StatusOK, result)
}
