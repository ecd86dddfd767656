package repositories

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/suite"

	"reviewhub/internal/models/db_models"
)

type ReviewMemoryStoreSuite struct {
	suite.Suite
	store *InMemoryReviewRepository
	ctx   context.Context
}

func (s *ReviewMemoryStoreSuite) SetupTest() {
	s.store = NewInMemoryReviewRepository()
	s.ctx = context.Background()
}

func TestReviewMemoryStoreSuite(t *testing.T) {
	suite.Run(t, new(ReviewMemoryStoreSuite))
}

func (s *ReviewMemoryStoreSuite) newReview(company string) *db_models.Review {
	return &db_models.Review{
		CompanyName: company,
		ReviewDate:  "March 2024",
		Content:     "a perfectly ordinary review body",
		WebsiteUrl:  "https://example.com",
		Rating:      4,
	}
}

func (s *ReviewMemoryStoreSuite) TestCreateAssignsServerOwnedFields() {
	review := s.newReview("Acme")
	s.Require().NoError(s.store.Create(s.ctx, review))

	s.NotZero(review.ID)
	s.False(review.CreatedAt.IsZero())

	found, err := s.store.GetByID(s.ctx, review.ID)
	s.Require().NoError(err)
	s.Require().NotNil(found)
	s.Equal("Acme", found.CompanyName)
	s.Equal(review.CreatedAt, found.CreatedAt)
}

func (s *ReviewMemoryStoreSuite) TestGetByIDUnknownReturnsNil() {
	found, err := s.store.GetByID(s.ctx, 42)
	s.Require().NoError(err)
	s.Nil(found)
}

func (s *ReviewMemoryStoreSuite) TestGetAllOrdersByCreationThenID() {
	early := s.newReview("Early")
	early.CreatedAt = time.Date(2024, time.January, 1, 0, 0, 0, 0, time.UTC)
	late := s.newReview("Late")
	late.CreatedAt = time.Date(2024, time.June, 1, 0, 0, 0, 0, time.UTC)
	tied := s.newReview("Tied")
	tied.CreatedAt = early.CreatedAt

	s.Require().NoError(s.store.Create(s.ctx, late))
	s.Require().NoError(s.store.Create(s.ctx, early))
	s.Require().NoError(s.store.Create(s.ctx, tied))

	all, err := s.store.GetAll(s.ctx)
	s.Require().NoError(err)
	s.Require().Len(all, 3)
	s.Equal("Early", all[0].CompanyName)
	s.Equal("Tied", all[1].CompanyName)
	s.Equal("Late", all[2].CompanyName)
}

func (s *ReviewMemoryStoreSuite) TestUpdateReplacesRow() {
	review := s.newReview("Acme")
	s.Require().NoError(s.store.Create(s.ctx, review))

	review.Rating = 1
	s.Require().NoError(s.store.Update(s.ctx, review))

	found, err := s.store.GetByID(s.ctx, review.ID)
	s.Require().NoError(err)
	s.Equal(1, found.Rating)
}

func (s *ReviewMemoryStoreSuite) TestDelete() {
	s.Run("removes an existing row", func() {
		review := s.newReview("Acme")
		s.Require().NoError(s.store.Create(s.ctx, review))

		existed, err := s.store.Delete(s.ctx, review.ID)
		s.Require().NoError(err)
		s.True(existed)

		found, err := s.store.GetByID(s.ctx, review.ID)
		s.Require().NoError(err)
		s.Nil(found)
	})

	s.Run("reports false for an unknown id", func() {
		existed, err := s.store.Delete(s.ctx, 999)
		s.Require().NoError(err)
		s.False(existed)
	})
}

type UserMemoryStoreSuite struct {
	suite.Suite
	store *InMemoryUserRepository
	ctx   context.Context
}

func (s *UserMemoryStoreSuite) SetupTest() {
	s.store = NewInMemoryUserRepository()
	s.ctx = context.Background()
}

func TestUserMemoryStoreSuite(t *testing.T) {
	suite.Run(t, new(UserMemoryStoreSuite))
}

func (s *UserMemoryStoreSuite) TestUpsertInsertsThenUpdates() {
	user := &db_models.User{ID: "u-1", Email: "admin@example.com", Role: "admin"}
	s.Require().NoError(s.store.Upsert(s.ctx, user))
	created := user.CreatedAt
	s.False(created.IsZero())

	user.FirstName = "Ada"
	s.Require().NoError(s.store.Upsert(s.ctx, user))

	found, err := s.store.GetByID(s.ctx, "u-1")
	s.Require().NoError(err)
	s.Require().NotNil(found)
	s.Equal("Ada", found.FirstName)
	s.Equal(created, found.CreatedAt)
}

func (s *UserMemoryStoreSuite) TestGetByEmail() {
	s.Require().NoError(s.store.Upsert(s.ctx, &db_models.User{ID: "u-1", Email: "admin@example.com"}))

	found, err := s.store.GetByEmail(s.ctx, "admin@example.com")
	s.Require().NoError(err)
	s.Require().NotNil(found)
	s.Equal("u-1", found.ID)

	missing, err := s.store.GetByEmail(s.ctx, "nobody@example.com")
	s.Require().NoError(err)
	s.Nil(missing)
}
