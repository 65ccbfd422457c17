package controllers

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"gymgate/internal/models/request_models"
	"gymgate/internal/models/response_models"
	"gymgate/internal/services"
	"gymgate/pkg/utils"
)

type MemberController struct {
	memberService services.MemberServiceInterface
	reportService services.ReportServiceInterface
}

func NewMemberController(memberService services.MemberServiceInterface, reportService services.ReportServiceInterface) *MemberController {
	return &MemberController{
		memberService: memberService,
		reportService: reportService,
	}
}

// Enroll godoc
// @Summary Enroll a new member
// @Description Validate the form, enroll the fingerprint on the scanner and persist the member
// @Tags Members
// @Accept json
// @Produce json
// @Param request body request_models.MemberRequest true "Enrollment payload"
// @Success 200 {object} utils.APIResponse
// @Failure 400 {object} utils.APIResponse
// @Router /members [post]
func (m *MemberController) Enroll(c *gin.Context) {
	var req request_models.MemberRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		utils.RespondError(c, http.StatusBadRequest, "Invalid request format")
		return
	}

	member, err := m.memberService.Enroll(c.Request.Context(), req)
	if err != nil {
		utils.HandleServiceError(c, err)
		return
	}

	utils.RespondSuccess(c, response_models.FromMember(member), "User enrolled successfully")
}

// List godoc
// @Summary List members, or look one up by phone number
// @Description Without query parameters returns every member; with country_code and phone_number returns the single matching member
// @Tags Members
// @Produce json
// @Param country_code query string false "Country calling code"
// @Param phone_number query string false "National number"
// @Success 200 {object} utils.APIResponse
// @Failure 404 {object} utils.APIResponse
// @Router /members [get]
func (m *MemberController) List(c *gin.Context) {
	countryCode := c.Query("country_code")
	phoneNumber := c.Query("phone_number")
	if countryCode != "" || phoneNumber != "" {
		if countryCode == "" || phoneNumber == "" {
			utils.RespondError(c, http.StatusBadRequest, "country_code and phone_number must be supplied together")
			return
		}
		member, err := m.memberService.GetByPhone(c.Request.Context(), countryCode, phoneNumber)
		if err != nil {
			utils.HandleServiceError(c, err)
			return
		}
		utils.RespondSuccess(c, response_models.FromMember(member), "Member fetched successfully")
		return
	}

	members, err := m.memberService.GetAll(c.Request.Context())
	if err != nil {
		utils.HandleServiceError(c, err)
		return
	}

	utils.RespondSuccess(c, response_models.FromMembers(members), "Members fetched successfully")
}

// GetByID godoc
// @Summary Fetch a member by id
// @Tags Members
// @Produce json
// @Param id path string true "Member id"
// @Success 200 {object} utils.APIResponse
// @Failure 404 {object} utils.APIResponse
// @Router /members/{id} [get]
func (m *MemberController) GetByID(c *gin.Context) {
	member, err := m.memberService.GetByID(c.Request.Context(), c.Param("id"))
	if err != nil {
		utils.HandleServiceError(c, err)
		return
	}

	utils.RespondSuccess(c, response_models.FromMember(member), "Member fetched successfully")
}

// Update godoc
// @Summary Update a member
// @Tags Members
// @Accept json
// @Produce json
// @Param id path string true "Member id"
// @Param request body request_models.MemberRequest true "Updated fields"
// @Success 200 {object} utils.APIResponse
// @Failure 400 {object} utils.APIResponse
// @Security BearerAuth
// @Router /members/{id} [put]
func (m *MemberController) Update(c *gin.Context) {
	var req request_models.MemberRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		utils.RespondError(c, http.StatusBadRequest, "Invalid request format")
		return
	}

	member, err := m.memberService.Update(c.Request.Context(), c.Param("id"), req)
	if err != nil {
		utils.HandleServiceError(c, err)
		return
	}

	utils.RespondSuccess(c, response_models.FromMember(member), "User updated successfully")
}

// Delete godoc
// @Summary Delete a member
// @Description Remove the fingerprint from the scanner, then the local record
// @Tags Members
// @Produce json
// @Param id path string true "Member id"
// @Success 200 {object} utils.APIResponse
// @Failure 404 {object} utils.APIResponse
// @Security BearerAuth
// @Router /members/{id} [delete]
func (m *MemberController) Delete(c *gin.Context) {
	if err := m.memberService.Delete(c.Request.Context(), c.Param("id")); err != nil {
		utils.HandleServiceError(c, err)
		return
	}

	utils.RespondSuccess(c, nil, "User deleted successfully")
}

// Report godoc
// @Summary Export all members as an XLSX report
// @Tags Members
// @Produce application/vnd.openxmlformats-officedocument.spreadsheetml.sheet
// @Success 200 {file} binary
// @Security BearerAuth
// @Router /reports/members [get]
func (m *MemberController) Report(c *gin.Context) {
	buf, err := m.reportService.GenerateMemberReport(c.Request.Context())
	if err != nil {
		utils.HandleServiceError(c, err)
		return
	}

	c.Header("Content-Disposition", `attachment; filename="members_report.xlsx"`)
	c.Data(http.StatusOK,
		"application/vnd.openxmlformats-officedocument.spreadsheetml.sheet",
		buf.Bytes())
}
