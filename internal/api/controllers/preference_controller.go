package controllers

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"authhub/internal/models/request_models"
	"authhub/internal/models/response_models"
	"authhub/internal/services"
	"authhub/pkg/utils"
)

type PreferenceController struct {
	preferenceService services.PreferenceServiceInterface
}

func NewPreferenceController(preferenceService services.PreferenceServiceInterface) *PreferenceController {
	return &PreferenceController{
		preferenceService: preferenceService,
	}
}

// GetPreferences godoc
// @Summary Get the authenticated account's preferences
// @Description Always succeeds: a missing row is created with defaults
// @Tags Preferences
// @Produce json
// @Success 200 {object} utils.APIResponse
// @Security BearerAuth
// @Router /preferences [get]
func (p *PreferenceController) GetPreferences(c *gin.Context) {
	pref, err := p.preferenceService.Get(c.Request.Context(), c.GetString("account_id"))
	if err != nil {
		utils.HandleServiceError(c, err)
		return
	}

	utils.RespondSuccess(c, response_models.NewPreferenceResponse(pref), "Preferences fetched successfully")
}

// UpdatePreferences godoc
// @Summary Patch the authenticated account's preferences
// @Tags Preferences
// @Accept json
// @Produce json
// @Param request body request_models.UpdatePreferenceRequest true "Preference patch"
// @Success 200 {object} utils.APIResponse
// @Security BearerAuth
// @Router /preferences [put]
func (p *PreferenceController) UpdatePreferences(c *gin.Context) {
	var req request_models.UpdatePreferenceRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		utils.RespondError(c, http.StatusBadRequest, "Invalid request format")
		return
	}

	pref, err := p.preferenceService.Update(c.Request.Context(), c.GetString("account_id"), req)
	if err != nil {
		utils.HandleServiceError(c, err)
		return
	}

	utils.RespondSuccess(c, response_models.NewPreferenceResponse(pref), "Preferences updated successfully")
}
