package repositories

import (
	"context"
	"errors"

	"github.com/google/uuid"
	"gorm.io/gorm"
	"gorm.io/gorm/clause"

	"authhub/internal/models/db_models"
)

type PreferenceRepository interface {
	// GetOrCreate returns the account's preference row, inserting the
	// defaults first if none exists. Safe under concurrent first access:
	// the insert is ON CONFLICT DO NOTHING against the unique account_id
	// index, so duplicate provisioning attempts collapse to one row.
	GetOrCreate(ctx context.Context, accountID uuid.UUID) (*db_models.Preference, error)
	Update(ctx context.Context, pref *db_models.Preference) error
}

type preferenceRepository struct {
	db *gorm.DB
}

func NewPreferenceRepository(db *gorm.DB) PreferenceRepository {
	return &preferenceRepository{
		db: db,
	}
}

func (p *preferenceRepository) GetOrCreate(ctx context.Context, accountID uuid.UUID) (*db_models.Preference, error) {
	defaults := db_models.DefaultPreference(accountID)
	err := p.db.WithContext(ctx).
		Clauses(clause.OnConflict{
			Columns:   []clause.Column{{Name: "account_id"}},
			DoNothing: true,
		}).
		Create(defaults).Error
	if err != nil {
		return nil, err
	}

	// Re-read so the conflicting (pre-existing) row wins over our defaults.
	var pref db_models.Preference
	err = p.db.WithContext(ctx).First(&pref, "account_id = ?", accountID).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, nil
		}
		return nil, err
	}
	return &pref, nil
}

func (p *preferenceRepository) Update(ctx context.Context, pref *db_models.Preference) error {
	return p.db.WithContext(ctx).Save(pref).Error
}
