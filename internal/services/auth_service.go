package services

import (
	"context"
	"errors"
	"fmt"
	"time"

	"go.uber.org/zap"

	"github.com/luanpessuti/case01furia/domain"
)

// AuthServiceImpl implements domain.AuthService
type AuthServiceImpl struct {
	userRepo    domain.UserRepository
	passwordSvc domain.PasswordService
	tokenSvc    domain.TokenService
	logger      *zap.Logger
}

// NewAuthService creates a new auth service
func NewAuthService(
	userRepo domain.UserRepository,
	passwordSvc domain.PasswordService,
	tokenSvc domain.TokenService,
	logger *zap.Logger,
) domain.AuthService {
	return &AuthServiceImpl{
		userRepo:    userRepo,
		passwordSvc: passwordSvc,
		tokenSvc:    tokenSvc,
		logger:      logger,
	}
}

// Register implements domain.AuthService. The returned token is issued from
// the freshly stored record so the cookie can be set in the same response.
func (s *AuthServiceImpl) Register(ctx context.Context, name, email, password string) (*domain.User, string, error) {
	existing, err := s.userRepo.FindByEmail(ctx, email)
	if err == nil && existing != nil {
		return nil, "", domain.ErrEmailTaken
	}
	if err != nil && !errors.Is(err, domain.ErrUserNotFound) {
		return nil, "", fmt.Errorf("failed to check existing user: %w", err)
	}

	hashedPassword, err := s.passwordSvc.Hash(password)
	if err != nil {
		return nil, "", fmt.Errorf("failed to hash password: %w", err)
	}

	now := time.Now()
	user := &domain.User{
		Name:             name,
		Email:            email,
		PasswordHash:     hashedPassword,
		Verified:         false,
		VerificationStep: 0,
		CreatedAt:        now,
		UpdatedAt:        now,
	}

	if err := s.userRepo.Create(ctx, user); err != nil {
		if errors.Is(err, domain.ErrEmailTaken) {
			return nil, "", domain.ErrEmailTaken
		}
		return nil, "", fmt.Errorf("failed to create user: %w", err)
	}

	token, err := s.tokenSvc.Generate(user.ID, user.Email, user.Name)
	if err != nil {
		return nil, "", fmt.Errorf("failed to generate token: %w", err)
	}

	s.logger.Info("user registered", zap.String("user_id", user.ID))
	return user, token, nil
}

// Login implements domain.AuthService. A nonexistent email and a wrong
// password produce the same error so callers cannot enumerate accounts.
// The token is issued from the stored record, not from request input.
func (s *AuthServiceImpl) Login(ctx context.Context, email, password string) (*domain.User, string, error) {
	user, err := s.userRepo.FindByEmail(ctx, email)
	if err != nil {
		if errors.Is(err, domain.ErrUserNotFound) {
			return nil, "", domain.ErrInvalidCredentials
		}
		return nil, "", fmt.Errorf("failed to find user: %w", err)
	}

	if !s.passwordSvc.Verify(user.PasswordHash, password) {
		return nil, "", domain.ErrInvalidCredentials
	}

	token, err := s.tokenSvc.Generate(user.ID, user.Email, user.Name)
	if err != nil {
		return nil, "", fmt.Errorf("failed to generate token: %w", err)
	}

	s.logger.Info("user logged in", zap.String("user_id", user.ID))
	return user, token, nil
}

// Authenticate implements domain.AuthService. The live record is the source
// of truth: the token only drives the lookup, and the record must still
// match both the embedded identifier and email. The email check guards
// against stale tokens after a rename; comparison is case-sensitive,
// consistent with storage.
func (s *AuthServiceImpl) Authenticate(ctx context.Context, token string) (*domain.User, error) {
	claims, err := s.tokenSvc.Validate(token)
	if err != nil {
		return nil, err
	}

	user, err := s.userRepo.FindByID(ctx, claims.UserID)
	if err != nil {
		return nil, err
	}

	if user.Email != claims.Email {
		return nil, domain.ErrUserNotFound
	}

	return user, nil
}
