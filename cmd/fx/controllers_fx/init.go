package controllers_fx

import (
	"go.uber.org/fx"

	"authhub/internal/api/controllers"
)

var Module = fx.Options(
	fx.Provide(controllers.NewAuthController),
	fx.Provide(controllers.NewUserController),
	fx.Provide(controllers.NewPreferenceController))
