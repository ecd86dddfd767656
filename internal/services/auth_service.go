package services

import (
	"context"
	"log"

	"github.com/google/uuid"

	"reviewhub/internal/models/db_models"
	"reviewhub/internal/repositories"
	"reviewhub/pkg/auth"
	"reviewhub/pkg/utils"
)

type AuthServiceInterface interface {
	Login(ctx context.Context, email, password string) (string, error)
	CurrentUser(ctx context.Context, caller auth.Identity) (*db_models.User, error)
	// SeedAdmin upserts the bootstrap admin account from configuration.
	SeedAdmin(ctx context.Context, email, password string) error
}

type AuthService struct {
	userRepo repositories.UserRepositoryInterface
}

func NewAuthService(userRepo repositories.UserRepositoryInterface) AuthServiceInterface {
	return &AuthService{userRepo: userRepo}
}

func (a *AuthService) Login(ctx context.Context, email, password string) (string, error) {
	user, err := a.userRepo.GetByEmail(ctx, email)
	if err != nil {
		return "", utils.ErrDatabaseError
	}
	if user == nil {
		return "", utils.ErrInvalidCredentials
	}

	if err := utils.ComparePasswords(user.PasswordHash, password); err != nil {
		return "", utils.ErrInvalidCredentials
	}

	token, err := utils.CreateToken(user.ID, user.Role)
	if err != nil {
		return "", utils.ErrInvalidCredentials
	}
	return token, nil
}

func (a *AuthService) CurrentUser(ctx context.Context, caller auth.Identity) (*db_models.User, error) {
	if !caller.Authenticated {
		return nil, utils.ErrUnauthorized
	}

	user, err := a.userRepo.GetByID(ctx, caller.UserID)
	if err != nil {
		return nil, utils.ErrDatabaseError
	}
	if user == nil {
		return nil, utils.ErrUserNotFound
	}
	return user, nil
}

func (a *AuthService) SeedAdmin(ctx context.Context, email, password string) error {
	if email == "" || password == "" {
		log.Println("Admin credentials not configured, skipping admin seed")
		return nil
	}

	hashedPassword, err := utils.HashPassword(password)
	if err != nil {
		return err
	}

	// Keep the existing id on re-seed so the upsert updates in place.
	id := uuid.NewString()
	if existing, err := a.userRepo.GetByEmail(ctx, email); err != nil {
		return utils.ErrDatabaseError
	} else if existing != nil {
		id = existing.ID
	}

	admin := &db_models.User{
		ID:           id,
		Email:        email,
		PasswordHash: hashedPassword,
		Role:         auth.RoleAdmin,
	}
	if err := a.userRepo.Upsert(ctx, admin); err != nil {
		return utils.ErrDatabaseError
	}

	log.Printf("Admin account ready for %s", email)
	return nil
}
