package redis_fx

import (
	"github.com/redis/go-redis/v9"
	"go.uber.org/fx"

	"authhub/internal/config"
	"authhub/internal/infra"
	"authhub/pkg/blacklist"
)

var Module = fx.Provide(
	provideRedis, provideLedger)

func provideRedis(cfg config.Config) *redis.Client {
	return infra.InitRedis(cfg)
}

func provideLedger(rdb *redis.Client) blacklist.Ledger {
	return blacklist.NewRedisLedger(rdb)
}
