package auth_fx

import (
	"go.uber.org/fx"
	"gorm.io/gorm"

	"reviewhub/internal/api/controllers"
	"reviewhub/internal/config"
	"reviewhub/internal/repositories"
	"reviewhub/internal/services"
)

var Module = fx.Provide(
	provideUserRepo, provideAuthService, provideAuthController,
)

func provideUserRepo(db *gorm.DB) repositories.UserRepositoryInterface {
	return repositories.NewUserRepository(db)
}

func provideAuthService(userRepo repositories.UserRepositoryInterface) services.AuthServiceInterface {
	return services.NewAuthService(userRepo)
}

func provideAuthController(authService services.AuthServiceInterface, cfg *config.Config) *controllers.AuthController {
	return controllers.NewAuthController(authService, cfg.LoginRedirectURL)
}
