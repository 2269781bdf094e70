package preference_fx

import (
	"go.uber.org/fx"
	"gorm.io/gorm"

	"authhub/internal/repositories"
	"authhub/internal/services"
)

var Module = fx.Provide(
	providePreferenceService, providePreferenceRepo)

func providePreferenceRepo(db *gorm.DB) repositories.PreferenceRepository {
	return repositories.NewPreferenceRepository(db)
}

func providePreferenceService(preferenceRepo repositories.PreferenceRepository) services.PreferenceServiceInterface {
	return services.NewPreferenceService(preferenceRepo)
}
