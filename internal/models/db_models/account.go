package db_models

import "strings"

const (
	RoleStandard = "standard"
	RoleAdmin    = "admin"
)

type Account struct {
	BaseModel
	Email        string `gorm:"uniqueIndex"` // stored lowercased
	Username     string
	FirstName    string
	LastName     string
	PasswordHash string
	Role         string `gorm:"default:standard"`
	Staff        bool   // elevated-access flag, independent of Role
	Active       bool   `gorm:"default:true"`
	LastLogin    int64

	Preference *Preference `gorm:"constraint:OnDelete:CASCADE"`
}

// Name returns "first last" when either part is set, otherwise the username.
func (a *Account) Name() string {
	full := strings.TrimSpace(a.FirstName + " " + a.LastName)
	if full != "" {
		return full
	}
	return a.Username
}
