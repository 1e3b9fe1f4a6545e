package handler

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/campora/scs-api/internal/models"
	"github.com/campora/scs-api/internal/service"
	appErrors "github.com/campora/scs-api/pkg/errors"
	"github.com/campora/scs-api/pkg/response"
)

// CourseHandler handles course offering, listing and moderation endpoints.
type CourseHandler struct {
	service *service.CourseService
}

// NewCourseHandler creates a new course handler.
func NewCourseHandler(svc *service.CourseService) *CourseHandler {
	return &CourseHandler{service: svc}
}

// Add godoc
// @Summary Offer a new course
// @Description Creates the course with status pending
// @Tags Courses
// @Accept json
// @Produce json
// @Param payload body service.AddCourseRequest true "Course payload"
// @Success 201 {object} response.Envelope
// @Failure 400 {object} response.Envelope
// @Router /add-course [post]
func (h *CourseHandler) Add(c *gin.Context) {
	var req service.AddCourseRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.Error(c, appErrors.Wrap(err, appErrors.ErrValidation.Code, http.StatusBadRequest, "invalid payload"))
		return
	}

	result, err := h.service.Add(c.Request.Context(), req)
	if err != nil {
		response.Error(c, err)
		return
	}

	response.Created(c, result)
}

// Home godoc
// @Summary Landing-page course list
// @Tags Courses
// @Produce json
// @Success 200 {object} response.Envelope
// @Router /home/course [get]
func (h *CourseHandler) Home(c *gin.Context) {
	courses, err := h.service.HomeCourses(c.Request.Context())
	if err != nil {
		response.Error(c, err)
		return
	}

	response.JSON(c, http.StatusOK, courses)
}

// All godoc
// @Summary All accepted courses
// @Tags Courses
// @Produce json
// @Success 200 {object} response.Envelope
// @Router /all-course [get]
func (h *CourseHandler) All(c *gin.Context) {
	courses, err := h.service.AllCourses(c.Request.Context())
	if err != nil {
		response.Error(c, err)
		return
	}

	response.JSON(c, http.StatusOK, courses)
}

// Mine godoc
// @Summary Courses owned by an instructor
// @Tags Courses
// @Produce json
// @Param email path string true "Instructor email"
// @Success 200 {object} response.Envelope
// @Router /my-course/{email} [get]
func (h *CourseHandler) Mine(c *gin.Context) {
	courses, err := h.service.MyCourses(c.Request.Context(), c.Param("email"))
	if err != nil {
		response.Error(c, err)
		return
	}

	response.JSON(c, http.StatusOK, courses)
}

// Update godoc
// @Summary Update course details
// @Tags Courses
// @Accept json
// @Produce json
// @Param id path string true "Course ID"
// @Param payload body service.UpdateCourseRequest true "Course fields"
// @Success 200 {object} response.Envelope
// @Failure 400 {object} response.Envelope
// @Router /my-course/update-data/{id} [put]
func (h *CourseHandler) Update(c *gin.Context) {
	var req service.UpdateCourseRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.Error(c, appErrors.Wrap(err, appErrors.ErrValidation.Code, http.StatusBadRequest, "invalid payload"))
		return
	}

	result, err := h.service.Update(c.Request.Context(), c.Param("id"), req)
	if err != nil {
		response.Error(c, err)
		return
	}

	response.JSON(c, http.StatusOK, result)
}

// Approve godoc
// @Summary Approve a course
// @Tags Courses
// @Produce json
// @Param id path string true "Course ID"
// @Success 200 {object} response.Envelope
// @Failure 400 {object} response.Envelope
// @Router /admin/approve-course/{id} [patch]
func (h *CourseHandler) Approve(c *gin.Context) {
	h.moderate(c, models.CourseAccepted)
}

// Deny godoc
// @Summary Reject a course
// @Tags Courses
// @Produce json
// @Param id path string true "Course ID"
// @Success 200 {object} response.Envelope
// @Failure 400 {object} response.Envelope
// @Router /admin/deny-course/{id} [patch]
func (h *CourseHandler) Deny(c *gin.Context) {
	h.moderate(c, models.CourseRejected)
}

func (h *CourseHandler) moderate(c *gin.Context, status models.CourseStatus) {
	result, err := h.service.Moderate(c.Request.Context(), c.Param("id"), status)
	if err != nil {
		response.Error(c, err)
		return
	}

	response.JSON(c, http.StatusOK, result)
}

// Feedback godoc
// @Summary Record moderation feedback
// @Tags Courses
// @Accept json
// @Produce json
// @Param id path string true "Course ID"
// @Param payload body service.FeedbackRequest true "Feedback text"
// @Success 200 {object} response.Envelope
// @Failure 400 {object} response.Envelope
// @Router /admin/feedback/{id} [patch]
func (h *CourseHandler) Feedback(c *gin.Context) {
	var req service.FeedbackRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.Error(c, appErrors.Wrap(err, appErrors.ErrValidation.Code, http.StatusBadRequest, "invalid payload"))
		return
	}

	result, err := h.service.SetFeedback(c.Request.Context(), c.Param("id"), req)
	if err != nil {
		response.Error(c, err)
		return
	}

	response.JSON(c, http.StatusOK, result)
}

// Delete godoc
// @Summary Delete course
// @Tags Courses
// @Produce json
// @Param id path string true "Course ID"
// @Success 200 {object} response.Envelope
// @Failure 400 {object} response.Envelope
// @Router /admin/delete-course/{id} [delete]
func (h *CourseHandler) Delete(c *gin.Context) {
	result, err := h.service.Delete(c.Request.Context(), c.Param("id"))
	if err != nil {
		response.Error(c, err)
		return
	}

	response.JSON(c, http.StatusOK, result)
}

// DecrementSeat godoc
// @Summary Decrement available seats after payment
// @Description Writes back the client-supplied seat count minus one
// @Tags Courses
// @Accept json
// @Produce json
// @Param id path string true "Course ID"
// @Param payload body service.SeatDecrementRequest true "Current seat count"
// @Success 200 {object} response.Envelope
// @Failure 400 {object} response.Envelope
// @Router /student/course/available-seat-decrement/{id} [patch]
func (h *CourseHandler) DecrementSeat(c *gin.Context) {
	var req service.SeatDecrementRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.Error(c, appErrors.Wrap(err, appErrors.ErrValidation.Code, http.StatusBadRequest, "invalid payload"))
		return
	}

	result, err := h.service.DecrementSeat(c.Request.Context(), c.Param("id"), req)
	if err != nil {
		response.Error(c, err)
		return
	}

	response.JSON(c, http.StatusOK, result)
}
