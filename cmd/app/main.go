package main

import (
	"context"
	"log"

	"github.com/gin-gonic/gin"
	"go.uber.org/fx"

	"authhub/cmd/fx/account_fx"
	"authhub/cmd/fx/config_fx"
	"authhub/cmd/fx/controllers_fx"
	"authhub/cmd/fx/db_fx"
	"authhub/cmd/fx/preference_fx"
	"authhub/cmd/fx/redis_fx"
	"authhub/cmd/fx/token_fx"
	"authhub/internal/api/controllers"
	"authhub/internal/config"
	"authhub/pkg/middleware"
)

func main() {
	app := fx.New(
		config_fx.Module,
		db_fx.Module,
		redis_fx.Module,
		account_fx.Module,
		token_fx.Module,
		preference_fx.Module,
		controllers_fx.Module,

		fx.Provide(ProvideRouter),
		fx.Invoke(StartServer),
	)

	app.Run()
}

func StartServer(lc fx.Lifecycle, engine *gin.Engine, cfg config.Config) {
	lc.Append(fx.Hook{
		OnStart: func(ctx context.Context) error {
			go func() {
				log.Printf("Starting HTTP server at :%s", cfg.Port)
				if err := engine.Run(":" + cfg.Port); err != nil {
					log.Fatalf("Failed to start server: %v", err)
				}
			}()
			return nil
		},
		OnStop: func(ctx context.Context) error {
			log.Println("Stopping HTTP server")
			return nil
		},
	})
}

func ProvideRouter(
	cfg config.Config,
	authController *controllers.AuthController,
	userController *controllers.UserController,
	preferenceController *controllers.PreferenceController) *gin.Engine {

	r := gin.Default()
	r.Use(gin.Logger())
	r.Use(gin.Recovery())
	r.Use(middleware.TraceIDMiddleware())
	r.Use(middleware.CORSMiddleware())

	RegisterRoutes(r, cfg, authController, userController, preferenceController)

	return r
}

func RegisterRoutes(r *gin.Engine,
	cfg config.Config,
	authController *controllers.AuthController,
	userController *controllers.UserController,
	preferenceController *controllers.PreferenceController) {

	secret := []byte(cfg.JWTSecret)

	api := r.Group("/api")

	auth := api.Group("/auth")
	auth.POST("/register", authController.Register)
	auth.POST("/login", authController.Login)
	auth.POST("/token/refresh", authController.Refresh)
	auth.POST("/logout", middleware.JWTAuthMiddleware(secret), authController.Logout)

	protected := api.Group("", middleware.JWTAuthMiddleware(secret))
	protected.GET("/profile", userController.GetProfile)
	protected.PUT("/profile", userController.UpdateProfile)
	protected.GET("/preferences", preferenceController.GetPreferences)
	protected.PUT("/preferences", preferenceController.UpdatePreferences)
	protected.PUT("/change-password", userController.ChangePassword)
	protected.GET("/users", userController.ListUsers)
	protected.GET("/users/:id", userController.GetUser)
	protected.PUT("/users/:id", userController.UpdateUser)
	protected.DELETE("/users/:id", userController.DeleteUser)
}
