package account_fx

import (
	"go.uber.org/fx"
	"gorm.io/gorm"

	"authhub/internal/config"
	"authhub/internal/repositories"
	"authhub/internal/services"
)

var Module = fx.Provide(
	provideAccountService, provideAccountRepo)

func provideAccountRepo(db *gorm.DB) repositories.AccountRepository {
	return repositories.NewAccountRepository(db)
}

func provideAccountService(accountRepo repositories.AccountRepository, cfg config.Config) services.AccountServiceInterface {
	return services.NewAccountService(accountRepo, cfg)
}
