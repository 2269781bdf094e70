package db_models

import (
	"github.com/google/uuid"
	"gorm.io/datatypes"
)

const (
	DefaultTheme    = "light"
	DefaultViewMode = "list"
)

// Preference is a 1:1 settings row per account. The unique index on
// AccountID is what makes concurrent get-or-create safe.
type Preference struct {
	BaseModel
	AccountID uuid.UUID `gorm:"type:uuid;uniqueIndex"`
	Theme     string    `gorm:"default:light"`
	ViewMode  string    `gorm:"default:list"`
	Settings  datatypes.JSONMap
}

func DefaultPreference(accountID uuid.UUID) *Preference {
	return &Preference{
		AccountID: accountID,
		Theme:     DefaultTheme,
		ViewMode:  DefaultViewMode,
		Settings:  datatypes.JSONMap{},
	}
}
