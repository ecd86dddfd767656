package services

import (
	"context"
	"errors"
	"mime/multipart"

	"reviewhub/internal/models/db_models"
	"reviewhub/internal/models/request_models"
	"reviewhub/internal/repositories"
	"reviewhub/internal/validators"
	"reviewhub/pkg/auth"
	"reviewhub/pkg/utils"
)

type ReviewServiceInterface interface {
	ListReviews(ctx context.Context) ([]db_models.Review, error)
	GetReview(ctx context.Context, id uint) (*db_models.Review, error)
	CreateReview(ctx context.Context, caller auth.Identity, form request_models.ReviewForm, image *multipart.FileHeader) (*db_models.Review, error)
	UpdateReview(ctx context.Context, caller auth.Identity, id uint, form request_models.ReviewForm, image *multipart.FileHeader) (*db_models.Review, error)
	DeleteReview(ctx context.Context, caller auth.Identity, id uint) error
}

type ReviewService struct {
	reviewRepo repositories.ReviewRepositoryInterface
	uploadDir  string
}

func NewReviewService(reviewRepo repositories.ReviewRepositoryInterface, uploadDir string) ReviewServiceInterface {
	return &ReviewService{
		reviewRepo: reviewRepo,
		uploadDir:  uploadDir,
	}
}

// ListReviews returns every review ordered by creation time ascending, ties
// broken by id ascending.
func (s *ReviewService) ListReviews(ctx context.Context) ([]db_models.Review, error) {
	reviews, err := s.reviewRepo.GetAll(ctx)
	if err != nil {
		return nil, utils.ErrDatabaseError
	}
	return reviews, nil
}

func (s *ReviewService) GetReview(ctx context.Context, id uint) (*db_models.Review, error) {
	review, err := s.reviewRepo.GetByID(ctx, id)
	if err != nil {
		return nil, utils.ErrDatabaseError
	}
	if review == nil {
		return nil, utils.ErrReviewNotFound
	}
	return review, nil
}

// CreateReview runs the admin gate, optional image ingestion, validation and
// the insert, in that order. Nothing is written unless every step passes.
func (s *ReviewService) CreateReview(ctx context.Context, caller auth.Identity, form request_models.ReviewForm, image *multipart.FileHeader) (*db_models.Review, error) {
	if err := requireAdmin(caller); err != nil {
		return nil, err
	}

	if err := s.ingestImage(&form, image); err != nil {
		return nil, err
	}

	if fieldErrs := validators.ValidateReview(form, validators.ModeCreate); len(fieldErrs) > 0 {
		return nil, utils.NewValidationFailed(fieldErrs)
	}

	review := &db_models.Review{
		CompanyName: *form.CompanyName,
		ReviewDate:  *form.ReviewDate,
		Content:     *form.Content,
		WebsiteUrl:  *form.WebsiteUrl,
		Rating:      validators.RatingValue(form),
	}
	if form.ImageUrl != nil {
		review.ImageUrl = *form.ImageUrl
	}

	if err := s.reviewRepo.Create(ctx, review); err != nil {
		return nil, utils.ErrDatabaseError
	}
	return review, nil
}

// UpdateReview applies a partial update: only fields present in the form
// change, and id/createdAt are never touched.
func (s *ReviewService) UpdateReview(ctx context.Context, caller auth.Identity, id uint, form request_models.ReviewForm, image *multipart.FileHeader) (*db_models.Review, error) {
	if err := requireAdmin(caller); err != nil {
		return nil, err
	}

	review, err := s.reviewRepo.GetByID(ctx, id)
	if err != nil {
		return nil, utils.ErrDatabaseError
	}
	if review == nil {
		return nil, utils.ErrReviewNotFound
	}

	if err := s.ingestImage(&form, image); err != nil {
		return nil, err
	}

	if fieldErrs := validators.ValidateReview(form, validators.ModePartial); len(fieldErrs) > 0 {
		return nil, utils.NewValidationFailed(fieldErrs)
	}

	if form.CompanyName != nil {
		review.CompanyName = *form.CompanyName
	}
	if form.ReviewDate != nil {
		review.ReviewDate = *form.ReviewDate
	}
	if form.Content != nil {
		review.Content = *form.Content
	}
	if form.WebsiteUrl != nil {
		review.WebsiteUrl = *form.WebsiteUrl
	}
	if form.Rating != nil {
		review.Rating = validators.RatingValue(form)
	}
	if form.ImageUrl != nil {
		review.ImageUrl = *form.ImageUrl
	}

	if err := s.reviewRepo.Update(ctx, review); err != nil {
		return nil, utils.ErrDatabaseError
	}
	return review, nil
}

// DeleteReview requires an authenticated caller but not admin.
func (s *ReviewService) DeleteReview(ctx context.Context, caller auth.Identity, id uint) error {
	if !caller.Authenticated {
		return utils.ErrUnauthorized
	}

	existed, err := s.reviewRepo.Delete(ctx, id)
	if err != nil {
		return utils.ErrDatabaseError
	}
	if !existed {
		return utils.ErrReviewNotFound
	}
	return nil
}

func (s *ReviewService) ingestImage(form *request_models.ReviewForm, image *multipart.FileHeader) error {
	if image == nil {
		return nil
	}

	imageUrl, err := utils.SaveUploadedImage(image, s.uploadDir)
	if errors.Is(err, utils.ErrNotAnImage) {
		return utils.NewValidationFailed([]validators.FieldError{{Field: "image", Reason: "Only image files are allowed"}})
	}
	if errors.Is(err, utils.ErrImageTooLarge) {
		return utils.NewValidationFailed([]validators.FieldError{{Field: "image", Reason: "Image must be 5MB or smaller"}})
	}
	if err != nil {
		return utils.ErrDatabaseError
	}

	form.SetImageUrl(imageUrl)
	return nil
}

func requireAdmin(caller auth.Identity) error {
	if !caller.Authenticated {
		return utils.ErrUnauthorized
	}
	if !caller.IsAdmin() {
		return utils.ErrForbidden
	}
	return nil
}
