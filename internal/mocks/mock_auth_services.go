package mocks

import (
	"context"

	"github.com/luanpessuti/case01furia/domain"
)

// MockPasswordService implements domain.PasswordService for testing
type MockPasswordService struct {
	HashFunc   func(password string) (string, error)
	VerifyFunc func(hashedPassword, password string) bool
}

func NewMockPasswordService() *MockPasswordService {
	return &MockPasswordService{}
}

func (m *MockPasswordService) Hash(password string) (string, error) {
	if m.HashFunc != nil {
		return m.HashFunc(password)
	}
	return "hashed_" + password, nil
}

func (m *MockPasswordService) Verify(hashedPassword, password string) bool {
	if m.VerifyFunc != nil {
		return m.VerifyFunc(hashedPassword, password)
	}
	return hashedPassword == "hashed_"+password
}

var _ domain.PasswordService = (*MockPasswordService)(nil)

// MockTokenService implements domain.TokenService for testing
type MockTokenService struct {
	GenerateFunc func(userID, email, name string) (string, error)
	ValidateFunc func(token string) (*domain.TokenClaims, error)
}

func NewMockTokenService() *MockTokenService {
	return &MockTokenService{}
}

func (m *MockTokenService) Generate(userID, email, name string) (string, error) {
	if m.GenerateFunc != nil {
		return m.GenerateFunc(userID, email, name)
	}
	return "token_" + userID, nil
}

func (m *MockTokenService) Validate(token string) (*domain.TokenClaims, error) {
	if m.ValidateFunc != nil {
		return m.ValidateFunc(token)
	}
	return nil, domain.ErrTokenInvalid
}

var _ domain.TokenService = (*MockTokenService)(nil)

// MockAuthService implements domain.AuthService for testing
type MockAuthService struct {
	RegisterFunc     func(ctx context.Context, name, email, password string) (*domain.User, string, error)
	LoginFunc        func(ctx context.Context, email, password string) (*domain.User, string, error)
	AuthenticateFunc func(ctx context.Context, token string) (*domain.User, error)
}

func NewMockAuthService() *MockAuthService {
	return &MockAuthService{}
}

func (m *MockAuthService) Register(ctx context.Context, name, email, password string) (*domain.User, string, error) {
	if m.RegisterFunc != nil {
		return m.RegisterFunc(ctx, name, email, password)
	}
	return nil, "", domain.ErrEmailTaken
}

func (m *MockAuthService) Login(ctx context.Context, email, password string) (*domain.User, string, error) {
	if m.LoginFunc != nil {
		return m.LoginFunc(ctx, email, password)
	}
	return nil, "", domain.ErrInvalidCredentials
}

func (m *MockAuthService) Authenticate(ctx context.Context, token string) (*domain.User, error) {
	if m.AuthenticateFunc != nil {
		return m.AuthenticateFunc(ctx, token)
	}
	return nil, domain.ErrTokenInvalid
}

var _ domain.AuthService = (*MockAuthService)(nil)

// MockVerificationService implements domain.VerificationService for testing
type MockVerificationService struct {
	VerifyFunc func(ctx context.Context, userID string, socialLinks map[string]string) error
}

func NewMockVerificationService() *MockVerificationService {
	return &MockVerificationService{}
}

func (m *MockVerificationService) Verify(ctx context.Context, userID string, socialLinks map[string]string) error {
	if m.VerifyFunc != nil {
		return m.VerifyFunc(ctx, userID, socialLinks)
	}
	return nil
}

var _ domain.VerificationService = (*MockVerificationService)(nil)
