package controllers

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"gymgate/internal/models/request_models"
	"gymgate/internal/services"
	"gymgate/pkg/utils"
)

type AdminController struct {
	adminService services.AdminServiceInterface
}

func NewAdminController(adminService services.AdminServiceInterface) *AdminController {
	return &AdminController{
		adminService: adminService,
	}
}

// Login godoc
// @Summary Admin login
// @Description Authenticate an admin, promote the session and return a token
// @Tags Admin
// @Accept json
// @Produce json
// @Param request body request_models.AdminLoginRequest true "Login payload"
// @Success 200 {object} utils.APIResponse
// @Failure 401 {object} utils.APIResponse
// @Router /admin/login [post]
func (a *AdminController) Login(c *gin.Context) {
	var req request_models.AdminLoginRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		utils.RespondError(c, http.StatusBadRequest, "Invalid request format")
		return
	}

	token, err := a.adminService.Login(c.Request.Context(), req)
	if err != nil {
		utils.HandleServiceError(c, err)
		return
	}

	utils.RespondSuccess(c, gin.H{"token": token}, "Login successful")
}

// Logout godoc
// @Summary Admin logout
// @Description Reset the persisted session back to the staff role
// @Tags Admin
// @Produce json
// @Success 200 {object} utils.APIResponse
// @Router /admin/logout [post]
func (a *AdminController) Logout(c *gin.Context) {
	if err := a.adminService.Logout(c.Request.Context()); err != nil {
		utils.HandleServiceError(c, err)
		return
	}

	utils.RespondSuccess(c, nil, "Logged out successfully")
}

// AddAdmin godoc
// @Summary Add an admin user
// @Tags Admin
// @Accept json
// @Produce json
// @Param request body request_models.AddAdminRequest true "New admin payload"
// @Success 200 {object} utils.APIResponse
// @Failure 400 {object} utils.APIResponse
// @Security BearerAuth
// @Router /admin/users [post]
func (a *AdminController) AddAdmin(c *gin.Context) {
	var req request_models.AddAdminRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		utils.RespondError(c, http.StatusBadRequest, "Invalid request format")
		return
	}

	admin, err := a.adminService.AddAdmin(c.Request.Context(), req)
	if err != nil {
		utils.HandleServiceError(c, err)
		return
	}

	utils.RespondSuccess(c, gin.H{"id": admin.ID.String(), "email": admin.Email}, "Admin user created successfully")
}
