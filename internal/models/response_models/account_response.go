package response_models

import (
	"gorm.io/datatypes"

	"authhub/internal/models/db_models"
)

type AccountResponse struct {
	ID          string              `json:"id"`
	Email       string              `json:"email"`
	Username    string              `json:"username"`
	FirstName   string              `json:"first_name"`
	LastName    string              `json:"last_name"`
	Name        string              `json:"name"`
	Role        string              `json:"role"`
	Staff       bool                `json:"staff"`
	Active      bool                `json:"active"`
	CreatedAt   int64               `json:"created_at"`
	LastLogin   int64               `json:"last_login,omitempty"`
	Preferences *PreferenceResponse `json:"preferences,omitempty"`
}

type PreferenceResponse struct {
	ID       string            `json:"id"`
	Theme    string            `json:"theme"`
	ViewMode string            `json:"view_mode"`
	Settings datatypes.JSONMap `json:"settings"`
}

func NewAccountResponse(account *db_models.Account) AccountResponse {
	resp := AccountResponse{
		ID:        account.ID.String(),
		Email:     account.Email,
		Username:  account.Username,
		FirstName: account.FirstName,
		LastName:  account.LastName,
		Name:      account.Name(),
		Role:      account.Role,
		Staff:     account.Staff,
		Active:    account.Active,
		CreatedAt: account.CreatedAt,
		LastLogin: account.LastLogin,
	}
	if account.Preference != nil {
		pref := NewPreferenceResponse(account.Preference)
		resp.Preferences = &pref
	}
	return resp
}

func NewPreferenceResponse(pref *db_models.Preference) PreferenceResponse {
	settings := pref.Settings
	if settings == nil {
		settings = datatypes.JSONMap{}
	}
	return PreferenceResponse{
		ID:       pref.ID.String(),
		Theme:    pref.Theme,
		ViewMode: pref.ViewMode,
		Settings: settings,
	}
}
