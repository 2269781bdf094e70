package services

import (
	"context"

	"github.com/google/uuid"
	"gorm.io/datatypes"

	"authhub/internal/models/db_models"
	"authhub/internal/models/request_models"
	"authhub/internal/repositories"
	"authhub/pkg/utils"
)

type PreferenceServiceInterface interface {
	// Provision is the explicit account-created hook: an idempotent
	// get-or-create so retries and duplicate triggers are harmless.
	Provision(ctx context.Context, accountID string) error
	Get(ctx context.Context, accountID string) (*db_models.Preference, error)
	Update(ctx context.Context, accountID string, request request_models.UpdatePreferenceRequest) (*db_models.Preference, error)
}

type PreferenceService struct {
	preferenceRepo repositories.PreferenceRepository
}

func NewPreferenceService(preferenceRepo repositories.PreferenceRepository) PreferenceServiceInterface {
	return &PreferenceService{
		preferenceRepo: preferenceRepo,
	}
}

func (p *PreferenceService) Provision(ctx context.Context, accountID string) error {
	_, err := p.Get(ctx, accountID)
	return err
}

// Get never reports "not found": absence triggers creation with defaults.
func (p *PreferenceService) Get(ctx context.Context, accountID string) (*db_models.Preference, error) {
	id, err := uuid.Parse(accountID)
	if err != nil {
		return nil, utils.ErrNotFound
	}

	pref, err := p.preferenceRepo.GetOrCreate(ctx, id)
	if err != nil || pref == nil {
		return nil, utils.ErrDatabaseError
	}
	return pref, nil
}

// Update applies a partial patch; unset fields keep their current value.
func (p *PreferenceService) Update(ctx context.Context, accountID string, request request_models.UpdatePreferenceRequest) (*db_models.Preference, error) {
	pref, err := p.Get(ctx, accountID)
	if err != nil {
		return nil, err
	}

	if request.Theme != nil {
		pref.Theme = *request.Theme
	}
	if request.ViewMode != nil {
		pref.ViewMode = *request.ViewMode
	}
	if request.Settings != nil {
		pref.Settings = datatypes.JSONMap(request.Settings)
	}

	if err := p.preferenceRepo.Update(ctx, pref); err != nil {
		return nil, utils.ErrDatabaseError
	}
	return pref, nil
}
