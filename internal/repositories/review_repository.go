package repositories

import (
	"context"
	"errors"

	"gorm.io/gorm"

	"reviewhub/internal/models/db_models"
)

type ReviewRepositoryInterface interface {
	// GetAll returns every review ordered by creation time ascending, ties
	// broken by id ascending.
	GetAll(ctx context.Context) ([]db_models.Review, error)
	// GetByID returns nil without error when the id is absent.
	GetByID(ctx context.Context, id uint) (*db_models.Review, error)
	Create(ctx context.Context, review *db_models.Review) error
	Update(ctx context.Context, review *db_models.Review) error
	// Delete reports whether a row existed and was removed.
	Delete(ctx context.Context, id uint) (bool, error)
}

type ReviewRepository struct {
	db *gorm.DB
}

func NewReviewRepository(db *gorm.DB) *ReviewRepository {
	return &ReviewRepository{db: db}
}

func (r *ReviewRepository) GetAll(ctx context.Context) ([]db_models.Review, error) {
	var reviews []db_models.Review
	err := r.db.WithContext(ctx).
		Order("created_at ASC, id ASC").
		Find(&reviews).Error
	return reviews, err
}

func (r *ReviewRepository) GetByID(ctx context.Context, id uint) (*db_models.Review, error) {
	var review db_models.Review
	err := r.db.WithContext(ctx).First(&review, id).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, nil
	}
	if err != nil {
		return nil, err
	}
	return &review, nil
}

func (r *ReviewRepository) Create(ctx context.Context, review *db_models.Review) error {
	return r.db.WithContext(ctx).Create(review).Error
}

func (r *ReviewRepository) Update(ctx context.Context, review *db_models.Review) error {
	return r.db.WithContext(ctx).Save(review).Error
}

func (r *ReviewRepository) Delete(ctx context.Context, id uint) (bool, error) {
	result := r.db.WithContext(ctx).Delete(&db_models.Review{}, id)
	if result.Error != nil {
		return false, result.Error
	}
	return result.RowsAffected > 0, nil
}
