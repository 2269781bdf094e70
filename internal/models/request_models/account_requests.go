package request_models

// Pointer fields distinguish "absent" from "set to zero value" for
// partial updates.

type UpdateProfileRequest struct {
	Username  *string `json:"username" binding:"omitempty,max=150"`
	FirstName *string `json:"first_name"`
	LastName  *string `json:"last_name"`
}

type UpdateAccountRequest struct {
	Username  *string `json:"username" binding:"omitempty,max=150"`
	FirstName *string `json:"first_name"`
	LastName  *string `json:"last_name"`
	Role      *string `json:"role" binding:"omitempty,oneof=standard admin"`
	Active    *bool   `json:"active"`
}

type UpdatePreferenceRequest struct {
	Theme    *string        `json:"theme"`
	ViewMode *string        `json:"view_mode"`
	Settings map[string]any `json:"settings"`
}
