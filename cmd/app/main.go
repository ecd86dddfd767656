package main

import (
	"context"
	"log"

	"github.com/gin-gonic/gin"
	"go.uber.org/fx"

	"reviewhub/cmd/fx/auth_fx"
	"reviewhub/cmd/fx/db_fx"
	"reviewhub/cmd/fx/review_fx"
	"reviewhub/internal/api/controllers"
	"reviewhub/internal/config"
	"reviewhub/internal/services"
	"reviewhub/pkg/middleware"
	"reviewhub/pkg/utils"
)

func main() {
	app := fx.New(
		fx.Provide(config.Load),
		db_fx.Module,
		auth_fx.Module,
		review_fx.Module,

		fx.Provide(ProvideRouter),
		fx.Invoke(SeedAdmin),
		fx.Invoke(StartServer),
	)

	app.Run()
}

func SeedAdmin(cfg *config.Config, authService services.AuthServiceInterface) error {
	utils.SetJWTSecret(cfg.JWTSecret)
	return authService.SeedAdmin(context.Background(), cfg.AdminEmail, cfg.AdminPassword)
}

func StartServer(lc fx.Lifecycle, engine *gin.Engine, cfg *config.Config) {
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
	cfg *config.Config,
	reviewController *controllers.ReviewController,
	authController *controllers.AuthController) *gin.Engine {

	r := gin.Default()
	r.Use(gin.Logger())
	r.Use(gin.Recovery())
	r.Use(middleware.CORSMiddleware())
	r.Use(middleware.TraceIDMiddleware())
	r.Use(middleware.IdentityMiddleware())

	RegisterRoutes(r, cfg, reviewController, authController)

	return r
}

func RegisterRoutes(r *gin.Engine,
	cfg *config.Config,
	reviewController *controllers.ReviewController,
	authController *controllers.AuthController) {

	api := r.Group("/api")

	api.GET("/login", authController.LoginRedirect)
	api.POST("/logout", authController.Logout)
	api.POST("/auth/login", authController.Login)
	api.GET("/auth/user", authController.CurrentUser)

	api.GET("/reviews", reviewController.ListReviews)
	api.GET("/reviews/:id", reviewController.GetReviewByID)
	api.POST("/reviews", middleware.RequireAdmin(), reviewController.CreateReview)
	api.PUT("/reviews/:id", middleware.RequireAdmin(), reviewController.UpdateReview)
	api.DELETE("/reviews/:id", middleware.RequireAuthenticated(), reviewController.DeleteReview)

	r.Static("/uploads", cfg.UploadDir)
}
