package controllers

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"authhub/internal/models/request_models"
	"authhub/internal/models/response_models"
	"authhub/internal/policy"
	"authhub/internal/services"
	"authhub/pkg/utils"
)

type UserController struct {
	accountService services.AccountServiceInterface
}

func NewUserController(accountService services.AccountServiceInterface) *UserController {
	return &UserController{
		accountService: accountService,
	}
}

// CallerFromContext rebuilds the caller identity the auth middleware stored.
func CallerFromContext(c *gin.Context) policy.Caller {
	return policy.Caller{
		AccountID: c.GetString("account_id"),
		Role:      c.GetString("role"),
		Staff:     c.GetBool("staff"),
	}
}

// GetProfile godoc
// @Summary Get the authenticated account
// @Tags Users
// @Produce json
// @Success 200 {object} utils.APIResponse
// @Security BearerAuth
// @Router /profile [get]
func (u *UserController) GetProfile(c *gin.Context) {
	account, err := u.accountService.GetById(c.Request.Context(), c.GetString("account_id"))
	if err != nil {
		utils.HandleServiceError(c, err)
		return
	}

	utils.RespondSuccess(c, response_models.NewAccountResponse(account), "Profile fetched successfully")
}

// UpdateProfile godoc
// @Summary Update the authenticated account
// @Tags Users
// @Accept json
// @Produce json
// @Param request body request_models.UpdateProfileRequest true "Profile patch"
// @Success 200 {object} utils.APIResponse
// @Security BearerAuth
// @Router /profile [put]
func (u *UserController) UpdateProfile(c *gin.Context) {
	var req request_models.UpdateProfileRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		utils.RespondError(c, http.StatusBadRequest, "Invalid request format")
		return
	}

	account, err := u.accountService.UpdateProfile(c.Request.Context(), c.GetString("account_id"), req)
	if err != nil {
		utils.HandleServiceError(c, err)
		return
	}

	utils.RespondSuccess(c, response_models.NewAccountResponse(account), "Profile updated successfully")
}

// ChangePassword godoc
// @Summary Change the authenticated account's password
// @Tags Users
// @Accept json
// @Produce json
// @Param request body request_models.ChangePasswordRequest true "Password change payload"
// @Success 200 {object} utils.APIResponse
// @Failure 400 {object} utils.APIResponse
// @Security BearerAuth
// @Router /change-password [put]
func (u *UserController) ChangePassword(c *gin.Context) {
	var req request_models.ChangePasswordRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		utils.RespondError(c, http.StatusBadRequest, "Invalid request format")
		return
	}

	if err := u.accountService.ChangePassword(c.Request.Context(), c.GetString("account_id"), req); err != nil {
		utils.HandleServiceError(c, err)
		return
	}

	utils.RespondSuccess(c, gin.H{"detail": "Password changed successfully"}, "Password changed successfully")
}

// ListUsers godoc
// @Summary List accounts
// @Description Role-gated callers see all accounts; others see only themselves
// @Tags Users
// @Produce json
// @Success 200 {object} utils.APIResponse
// @Security BearerAuth
// @Router /users [get]
func (u *UserController) ListUsers(c *gin.Context) {
	accounts, err := u.accountService.ListAccounts(c.Request.Context(), CallerFromContext(c))
	if err != nil {
		utils.HandleServiceError(c, err)
		return
	}

	responses := make([]response_models.AccountResponse, 0, len(accounts))
	for i := range accounts {
		responses = append(responses, response_models.NewAccountResponse(&accounts[i]))
	}

	utils.RespondSuccess(c, responses, "Accounts fetched successfully")
}

// GetUser godoc
// @Summary Get an account by id
// @Tags Users
// @Produce json
// @Param id path string true "Account ID"
// @Success 200 {object} utils.APIResponse
// @Security BearerAuth
// @Router /users/{id} [get]
func (u *UserController) GetUser(c *gin.Context) {
	account, err := u.accountService.GetAccount(c.Request.Context(), CallerFromContext(c), c.Param("id"))
	if err != nil {
		utils.HandleServiceError(c, err)
		return
	}

	utils.RespondSuccess(c, response_models.NewAccountResponse(account), "Account fetched successfully")
}

// UpdateUser godoc
// @Summary Update an account by id
// @Description Gated by ownership-or-admin; role/active changes need the role gate
// @Tags Users
// @Accept json
// @Produce json
// @Param id path string true "Account ID"
// @Param request body request_models.UpdateAccountRequest true "Account patch"
// @Success 200 {object} utils.APIResponse
// @Failure 403 {object} utils.APIResponse
// @Security BearerAuth
// @Router /users/{id} [put]
func (u *UserController) UpdateUser(c *gin.Context) {
	var req request_models.UpdateAccountRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		utils.RespondError(c, http.StatusBadRequest, "Invalid request format")
		return
	}

	account, err := u.accountService.UpdateAccount(c.Request.Context(), CallerFromContext(c), c.Param("id"), req)
	if err != nil {
		utils.HandleServiceError(c, err)
		return
	}

	utils.RespondSuccess(c, response_models.NewAccountResponse(account), "Account updated successfully")
}

// DeleteUser godoc
// @Summary Delete an account by id
// @Tags Users
// @Param id path string true "Account ID"
// @Success 204
// @Failure 403 {object} utils.APIResponse
// @Security BearerAuth
// @Router /users/{id} [delete]
func (u *UserController) DeleteUser(c *gin.Context) {
	if err := u.accountService.DeleteAccount(c.Request.Context(), CallerFromContext(c), c.Param("id")); err != nil {
		utils.HandleServiceError(c, err)
		return
	}

	utils.RespondNoContent(c)
}
