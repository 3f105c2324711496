package http

import (
	"net/http"

	"traders-bloc/internal/entity"
	"traders-bloc/internal/usecase"
	"traders-bloc/pkg/logger"

	"github.com/gin-gonic/gin"
)

type SuperAdminHandler struct {
	superAdminUseCase usecase.SuperAdminUseCase
	logger            *logger.Logger
}

func NewSuperAdminHandler(superAdminUseCase usecase.SuperAdminUseCase, logger *logger.Logger) *SuperAdminHandler {
	return &SuperAdminHandler{
		superAdminUseCase: superAdminUseCase,
		logger:            logger,
	}
}

type CreateAdminRequest struct {
	Email    string `json:"email" binding:"required,email"`
	Name     string `json:"name" binding:"required"`
	Password string `json:"password" binding:"required,min=8"`
}

type UpdateAdminStatusRequest struct {
	Status entity.AdminStatus `json:"status" binding:"required"`
}

type UpdateAdminPermissionsRequest struct {
	Role entity.Role `json:"role" binding:"required"`
}

// CreateAdmin godoc
// @Summary      Create an admin
// @Description  Create a new ADMIN-role staff account
// @Tags         super-admin
// @Accept       json
// @Produce      json
// @Security     BearerAuth
// @Param        request body CreateAdminRequest true "Admin data"
// @Success      201  {object}  entity.Admin
// @Failure      409  {object}  map[string]string
// @Router       /super-admin/admins [post]
func (h *SuperAdminHandler) CreateAdmin(c *gin.Context) {
	if session := admit(c, entity.RoleSuperAdmin); session == nil {
		return
	}

	var req CreateAdminRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	admin, err := h.superAdminUseCase.CreateAdmin(usecase.CreateAdminInput{
		Email:    req.Email,
		Name:     req.Name,
		Password: req.Password,
		Role:     entity.RoleAdmin,
	})
	if err != nil {
		respondError(c, err)
		return
	}

	c.JSON(http.StatusCreated, admin)
}

// UpdateAdminStatus godoc
// @Summary      Activate or suspend an admin
// @Tags         super-admin
// @Accept       json
// @Produce      json
// @Security     BearerAuth
// @Param        id path string true "Admin ID"
// @Param        request body UpdateAdminStatusRequest true "New status"
// @Success      200  {object}  entity.Admin
// @Failure      400  {object}  map[string]string
// @Failure      404  {object}  map[string]string
// @Router       /super-admin/admins/{id}/status [put]
func (h *SuperAdminHandler) UpdateAdminStatus(c *gin.Context) {
	session := admit(c, entity.RoleSuperAdmin)
	if session == nil {
		return
	}

	var req UpdateAdminStatusRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	admin, err := h.superAdminUseCase.UpdateAdmin(session, c.Param("id"), req.Status)
	if err != nil {
		respondError(c, err)
		return
	}

	c.JSON(http.StatusOK, admin)
}

// UpdateAdminPermissions godoc
// @Summary      Change an admin's role
// @Tags         super-admin
// @Accept       json
// @Produce      json
// @Security     BearerAuth
// @Param        id path string true "Admin ID"
// @Param        request body UpdateAdminPermissionsRequest true "New role"
// @Success      200  {object}  entity.Admin
// @Failure      400  {object}  map[string]string
// @Failure      404  {object}  map[string]string
// @Router       /super-admin/admins/{id}/permissions [put]
func (h *SuperAdminHandler) UpdateAdminPermissions(c *gin.Context) {
	if session := admit(c, entity.RoleSuperAdmin); session == nil {
		return
	}

	var req UpdateAdminPermissionsRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	admin, err := h.superAdminUseCase.UpdateAdminPermissions(c.Param("id"), req.Role)
	if err != nil {
		respondError(c, err)
		return
	}

	c.JSON(http.StatusOK, admin)
}

// DeleteAdmin godoc
// @Summary      Delete an admin
// @Tags         super-admin
// @Produce      json
// @Security     BearerAuth
// @Param        id path string true "Admin ID"
// @Success      200  {object}  map[string]string
// @Failure      404  {object}  map[string]string
// @Router       /super-admin/admins/{id} [delete]
func (h *SuperAdminHandler) DeleteAdmin(c *gin.Context) {
	session := admit(c, entity.RoleSuperAdmin)
	if session == nil {
		return
	}

	if err := h.superAdminUseCase.DeleteAdmin(session, c.Param("id")); err != nil {
		respondError(c, err)
		return
	}

	c.JSON(http.StatusOK, gin.H{"message": "Admin deleted successfully"})
}
