package token_fx

import (
	"go.uber.org/fx"

	"authhub/internal/config"
	"authhub/internal/repositories"
	"authhub/internal/services"
	"authhub/pkg/blacklist"
)

var Module = fx.Provide(
	provideTokenService)

func provideTokenService(cfg config.Config, ledger blacklist.Ledger, accountRepo repositories.AccountRepository) services.TokenServiceInterface {
	return services.NewTokenService(cfg, ledger, accountRepo)
}
