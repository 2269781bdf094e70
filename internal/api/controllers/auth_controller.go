package controllers

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"authhub/internal/models/request_models"
	"authhub/internal/models/response_models"
	"authhub/internal/services"
	"authhub/pkg/utils"
)

type AuthController struct {
	accountService services.AccountServiceInterface
	tokenService   services.TokenServiceInterface
}

func NewAuthController(accountService services.AccountServiceInterface, tokenService services.TokenServiceInterface) *AuthController {
	return &AuthController{
		accountService: accountService,
		tokenService:   tokenService,
	}
}

// Register godoc
// @Summary Register a new account
// @Description Create an account with its default preferences and return the first token pair
// @Tags Auth
// @Accept json
// @Produce json
// @Param request body request_models.RegisterRequest true "Registration payload"
// @Success 201 {object} utils.APIResponse
// @Failure 400 {object} utils.APIResponse
// @Router /auth/register [post]
func (a *AuthController) Register(c *gin.Context) {
	var req request_models.RegisterRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		utils.RespondError(c, http.StatusBadRequest, "Invalid request format")
		return
	}

	account, err := a.accountService.Register(c.Request.Context(), req)
	if err != nil {
		utils.HandleServiceError(c, err)
		return
	}

	pair, err := a.tokenService.IssuePair(account)
	if err != nil {
		utils.HandleServiceError(c, err)
		return
	}

	utils.RespondCreated(c, gin.H{
		"access":  pair.Access,
		"refresh": pair.Refresh,
		"account": response_models.NewAccountResponse(account),
	}, "Account created successfully")
}

// Login godoc
// @Summary Login to an account
// @Description Authenticate and return a fresh token pair
// @Tags Auth
// @Accept json
// @Produce json
// @Param request body request_models.LoginRequest true "Login payload"
// @Success 200 {object} utils.APIResponse
// @Failure 401 {object} utils.APIResponse
// @Router /auth/login [post]
func (a *AuthController) Login(c *gin.Context) {
	var req request_models.LoginRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		utils.RespondError(c, http.StatusBadRequest, "Invalid request format")
		return
	}

	account, err := a.accountService.Authenticate(c.Request.Context(), req)
	if err != nil {
		utils.HandleServiceError(c, err)
		return
	}

	pair, err := a.tokenService.IssuePair(account)
	if err != nil {
		utils.HandleServiceError(c, err)
		return
	}

	utils.RespondSuccess(c, gin.H{
		"access":  pair.Access,
		"refresh": pair.Refresh,
		"account": response_models.NewAccountResponse(account),
	}, "Login successful")
}

// Refresh godoc
// @Summary Rotate a refresh token
// @Description Consume the presented refresh token and return a new pair
// @Tags Auth
// @Accept json
// @Produce json
// @Param request body request_models.RefreshRequest true "Refresh payload"
// @Success 200 {object} utils.APIResponse
// @Failure 401 {object} utils.APIResponse
// @Router /auth/token/refresh [post]
func (a *AuthController) Refresh(c *gin.Context) {
	var req request_models.RefreshRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		utils.RespondError(c, http.StatusBadRequest, "Invalid request format")
		return
	}

	pair, err := a.tokenService.Refresh(c.Request.Context(), req.Refresh)
	if err != nil {
		utils.HandleServiceError(c, err)
		return
	}

	utils.RespondSuccess(c, pair, "Token refreshed")
}

// Logout godoc
// @Summary Logout
// @Description Blacklist the caller's refresh token
// @Tags Auth
// @Accept json
// @Produce json
// @Param request body request_models.LogoutRequest true "Logout payload"
// @Success 200 {object} utils.APIResponse
// @Failure 400 {object} utils.APIResponse
// @Security BearerAuth
// @Router /auth/logout [post]
func (a *AuthController) Logout(c *gin.Context) {
	var req request_models.LogoutRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		utils.RespondError(c, http.StatusBadRequest, "Refresh token is required")
		return
	}

	if err := a.tokenService.Revoke(c.Request.Context(), req.Refresh); err != nil {
		// any token defect on logout is a 400, matching the original surface
		utils.RespondError(c, http.StatusBadRequest, err.Error())
		return
	}

	utils.RespondSuccess(c, gin.H{"detail": "Successfully logged out"}, "Successfully logged out")
}
