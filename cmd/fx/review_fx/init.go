package review_fx

import (
	"go.uber.org/fx"
	"gorm.io/gorm"

	"reviewhub/internal/api/controllers"
	"reviewhub/internal/config"
	"reviewhub/internal/repositories"
	"reviewhub/internal/services"
)

var Module = fx.Provide(
	provideReviewRepo, provideReviewService, provideReviewController,
)

func provideReviewRepo(db *gorm.DB) repositories.ReviewRepositoryInterface {
	return repositories.NewReviewRepository(db)
}

func provideReviewService(reviewRepo repositories.ReviewRepositoryInterface, cfg *config.Config) services.ReviewServiceInterface {
	return services.NewReviewService(reviewRepo, cfg.UploadDir)
}

func provideReviewController(reviewService services.ReviewServiceInterface) *controllers.ReviewController {
	return controllers.NewReviewController(reviewService)
}
