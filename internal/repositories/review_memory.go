package repositories

import (
	"context"
	"sort"
	"sync"
	"time"

	"reviewhub/internal/models/db_models"
)

// InMemoryReviewRepository is a map-backed Record Store used by unit tests and
// local development. It hands out ids and creation timestamps the same way the
// database does.
type InMemoryReviewRepository struct {
	mu      sync.RWMutex
	reviews map[uint]db_models.Review
	nextID  uint
}

func NewInMemoryReviewRepository() *InMemoryReviewRepository {
	return &InMemoryReviewRepository{
		reviews: make(map[uint]db_models.Review),
		nextID:  1,
	}
}

func (r *InMemoryReviewRepository) GetAll(ctx context.Context) ([]db_models.Review, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	reviews := make([]db_models.Review, 0, len(r.reviews))
	for _, review := range r.reviews {
		reviews = append(reviews, review)
	}
	sort.Slice(reviews, func(i, j int) bool {
		if !reviews[i].CreatedAt.Equal(reviews[j].CreatedAt) {
			return reviews[i].CreatedAt.Before(reviews[j].CreatedAt)
		}
		return reviews[i].ID < reviews[j].ID
	})
	return reviews, nil
}

func (r *InMemoryReviewRepository) GetByID(ctx context.Context, id uint) (*db_models.Review, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	review, ok := r.reviews[id]
	if !ok {
		return nil, nil
	}
	return &review, nil
}

func (r *InMemoryReviewRepository) Create(ctx context.Context, review *db_models.Review) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	review.ID = r.nextID
	r.nextID++
	if review.CreatedAt.IsZero() {
		review.CreatedAt = time.Now()
	}
	r.reviews[review.ID] = *review
	return nil
}

func (r *InMemoryReviewRepository) Update(ctx context.Context, review *db_models.Review) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	r.reviews[review.ID] = *review
	return nil
}

func (r *InMemoryReviewRepository) Delete(ctx context.Context, id uint) (bool, error) {
	r.mu.Lock()
	defer r.mu.Unlock()

	if _, ok := r.reviews[id]; !ok {
		return false, nil
	}
	delete(r.reviews, id)
	return true, nil
}
