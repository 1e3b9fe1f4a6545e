package handler

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/campora/scs-api/internal/models"
	"github.com/campora/scs-api/internal/service"
	appErrors "github.com/campora/scs-api/pkg/errors"
	"github.com/campora/scs-api/pkg/response"
)

// UserHandler handles account endpoints.
type UserHandler struct {
	service *service.UserService
}

// NewUserHandler creates a new user handler.
func NewUserHandler(svc *service.UserService) *UserHandler {
	return &UserHandler{service: svc}
}

// Login godoc
// @Summary Login or register
// @Description Returns the existing user for the email, or registers a new one
// @Tags Users
// @Accept json
// @Produce json
// @Param payload body service.LoginRequest true "Profile payload"
// @Success 200 {object} response.Envelope
// @Failure 400 {object} response.Envelope
// @Router /login-user [post]
func (h *UserHandler) Login(c *gin.Context) {
	var req service.LoginRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.Error(c, appErrors.Wrap(err, appErrors.ErrValidation.Code, http.StatusBadRequest, "invalid payload"))
		return
	}

	result, err := h.service.LoginOrRegister(c.Request.Context(), req)
	if err != nil {
		response.Error(c, err)
		return
	}

	response.JSON(c, http.StatusOK, result)
}

// List godoc
// @Summary List users
// @Tags Users
// @Produce json
// @Success 200 {object} response.Envelope
// @Router /manage-user [get]
func (h *UserHandler) List(c *gin.Context) {
	users, err := h.service.List(c.Request.Context())
	if err != nil {
		response.Error(c, err)
		return
	}

	response.JSON(c, http.StatusOK, users)
}

// MakeAdmin godoc
// @Summary Promote user to admin
// @Tags Users
// @Produce json
// @Param userId path string true "User ID"
// @Success 200 {object} response.Envelope
// @Failure 400 {object} response.Envelope
// @Router /manage-user/update-role-admin/{userId} [patch]
func (h *UserHandler) MakeAdmin(c *gin.Context) {
	h.assignRole(c, models.RoleAdmin)
}

// MakeInstructor godoc
// @Summary Promote user to instructor
// @Tags Users
// @Produce json
// @Param userId path string true "User ID"
// @Success 200 {object} response.Envelope
// @Failure 400 {object} response.Envelope
// @Router /manage-user/update-role-instructor/{userId} [patch]
func (h *UserHandler) MakeInstructor(c *gin.Context) {
	h.assignRole(c, models.RoleInstructor)
}

func (h *UserHandler) assignRole(c *gin.Context, role models.UserRole) {
	result, err := h.service.AssignRole(c.Request.Context(), c.Param("userId"), role)
	if err != nil {
		response.Error(c, err)
		return
	}

	response.JSON(c, http.StatusOK, result)
}

// Delete godoc
// @Summary Delete user
// @Tags Users
// @Produce json
// @Param id path string true "User ID"
// @Success 200 {object} response.Envelope
// @Failure 400 {object} response.Envelope
// @Router /user/delete/{id} [delete]
func (h *UserHandler) Delete(c *gin.Context) {
	result, err := h.service.Delete(c.Request.Context(), c.Param("id"))
	if err != nil {
		response.Error(c, err)
		return
	}

	response.JSON(c, http.StatusOK, result)
}

// HomeInstructors godoc
// @Summary Landing-page instructor list
// @Tags Users
// @Produce json
// @Success 200 {object} response.Envelope
// @Router /home/instructor [get]
func (h *UserHandler) HomeInstructors(c *gin.Context) {
	users, err := h.service.HomeInstructors(c.Request.Context())
	if err != nil {
		response.Error(c, err)
		return
	}

	response.JSON(c, http.StatusOK, users)
}

// AllInstructors godoc
// @Summary Full instructor roster
// @Tags Users
// @Produce json
// @Success 200 {object} response.Envelope
// @Router /all-instructor [get]
func (h *UserHandler) AllInstructors(c *gin.Context) {
	users, err := h.service.AllInstructors(c.Request.Context())
	if err != nil {
		response.Error(c, err)
		return
	}

	response.JSON(c, http.StatusOK, users)
}
