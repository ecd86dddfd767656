package services

import (
	"context"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"reviewhub/internal/models/request_models"
	"reviewhub/internal/repositories"
	"reviewhub/internal/validators"
	"reviewhub/pkg/auth"
	"reviewhub/pkg/utils"
)

var (
	adminCaller = auth.Identity{UserID: "admin-1", Role: auth.RoleAdmin, Authenticated: true}
	userCaller  = auth.Identity{UserID: "user-1", Role: auth.RoleUser, Authenticated: true}
)

func strPtr(s string) *string { return &s }

func newReviewService(t *testing.T) (ReviewServiceInterface, *repositories.InMemoryReviewRepository) {
	t.Helper()
	repo := repositories.NewInMemoryReviewRepository()
	return NewReviewService(repo, t.TempDir()), repo
}

func validReviewForm() request_models.ReviewForm {
	return request_models.ReviewForm{
		CompanyName: strPtr("Acme Corp"),
		ReviewDate:  strPtr("March 2024"),
		Content:     strPtr(strings.Repeat("a decent place to work ", 10)),
		WebsiteUrl:  strPtr("https://acme.example.com"),
		Rating:      strPtr("4"),
	}
}

func TestCreateReviewRoundTrip(t *testing.T) {
	svc, _ := newReviewService(t)
	ctx := context.Background()

	created, err := svc.CreateReview(ctx, adminCaller, validReviewForm(), nil)
	require.NoError(t, err)
	require.NotNil(t, created)
	assert.NotZero(t, created.ID)
	assert.False(t, created.CreatedAt.IsZero())

	fetched, err := svc.GetReview(ctx, created.ID)
	require.NoError(t, err)
	assert.Equal(t, "Acme Corp", fetched.CompanyName)
	assert.Equal(t, "March 2024", fetched.ReviewDate)
	assert.Equal(t, 4, fetched.Rating)
	assert.Equal(t, "https://acme.example.com", fetched.WebsiteUrl)
}

func TestCreateReviewAccessGate(t *testing.T) {
	svc, repo := newReviewService(t)
	ctx := context.Background()

	t.Run("anonymous caller is unauthorized", func(t *testing.T) {
		_, err := svc.CreateReview(ctx, auth.Anonymous(), validReviewForm(), nil)
		assert.ErrorIs(t, err, utils.ErrUnauthorized)
	})

	t.Run("authenticated non-admin is forbidden", func(t *testing.T) {
		_, err := svc.CreateReview(ctx, userCaller, validReviewForm(), nil)
		assert.ErrorIs(t, err, utils.ErrForbidden)
	})

	t.Run("nothing was persisted", func(t *testing.T) {
		all, err := repo.GetAll(ctx)
		require.NoError(t, err)
		assert.Empty(t, all)
	})
}

func TestCreateReviewValidationFailure(t *testing.T) {
	svc, repo := newReviewService(t)
	ctx := context.Background()

	form := validReviewForm()
	form.Rating = strPtr("6")
	form.Content = strPtr("too short")

	_, err := svc.CreateReview(ctx, adminCaller, form, nil)

	var validationErr *utils.ValidationFailedError
	require.ErrorAs(t, err, &validationErr)
	assert.ElementsMatch(t,
		[]validators.FieldError{
			{Field: "rating", Reason: "Rating must be between 1 and 5"},
			{Field: "content", Reason: "Review content must be at least 100 characters"},
		},
		validationErr.Fields)

	all, err := repo.GetAll(ctx)
	require.NoError(t, err)
	assert.Empty(t, all)
}

func TestUpdateReviewPartial(t *testing.T) {
	svc, _ := newReviewService(t)
	ctx := context.Background()

	created, err := svc.CreateReview(ctx, adminCaller, validReviewForm(), nil)
	require.NoError(t, err)

	updated, err := svc.UpdateReview(ctx, adminCaller, created.ID,
		request_models.ReviewForm{Rating: strPtr("2")}, nil)
	require.NoError(t, err)

	assert.Equal(t, 2, updated.Rating)
	assert.Equal(t, created.CompanyName, updated.CompanyName)
	assert.Equal(t, created.ID, updated.ID)
	assert.Equal(t, created.CreatedAt, updated.CreatedAt)
}

func TestUpdateReviewNotFound(t *testing.T) {
	svc, _ := newReviewService(t)

	_, err := svc.UpdateReview(context.Background(), adminCaller, 404,
		request_models.ReviewForm{Rating: strPtr("2")}, nil)
	assert.ErrorIs(t, err, utils.ErrReviewNotFound)
}

func TestDeleteReview(t *testing.T) {
	svc, repo := newReviewService(t)
	ctx := context.Background()

	created, err := svc.CreateReview(ctx, adminCaller, validReviewForm(), nil)
	require.NoError(t, err)

	t.Run("requires authentication", func(t *testing.T) {
		err := svc.DeleteReview(ctx, auth.Anonymous(), created.ID)
		assert.ErrorIs(t, err, utils.ErrUnauthorized)
	})

	t.Run("non-admin authenticated caller may delete", func(t *testing.T) {
		require.NoError(t, svc.DeleteReview(ctx, userCaller, created.ID))
	})

	t.Run("absent id reports not found and leaves the store unchanged", func(t *testing.T) {
		err := svc.DeleteReview(ctx, userCaller, created.ID)
		assert.ErrorIs(t, err, utils.ErrReviewNotFound)

		all, err := repo.GetAll(ctx)
		require.NoError(t, err)
		assert.Empty(t, all)
	})
}

func TestGetReviewNotFound(t *testing.T) {
	svc, _ := newReviewService(t)

	_, err := svc.GetReview(context.Background(), 12345)
	assert.ErrorIs(t, err, utils.ErrReviewNotFound)
}
