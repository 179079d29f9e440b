package auth

import (
	"errors"
	"time"

	"github.com/golang-jwt/jwt/v5"

	"github.com/luanpessuti/case01furia/domain"
)

// JWTServiceImpl implements domain.TokenService using HS256-signed,
// self-contained tokens. There is no server-side session table: a token is
// valid for its full lifetime or not at all, and logout only removes the
// client-held cookie.
type JWTServiceImpl struct {
	secretKey []byte
	ttl       time.Duration
}

// NewJWTService creates a new JWT token service
func NewJWTService(secretKey string, ttl time.Duration) domain.TokenService {
	return &JWTServiceImpl{
		secretKey: []byte(secretKey),
		ttl:       ttl,
	}
}

// Generate implements domain.TokenService. Claims carry identity only;
// the name claim is informational and must never be trusted for rendering.
func (j *JWTServiceImpl) Generate(userID, email, name string) (string, error) {
	now := time.Now()
	claims := jwt.MapClaims{
		"userId": userID,
		"email":  email,
		"iat":    now.Unix(),
		"exp":    now.Add(j.ttl).Unix(),
	}
	if name != "" {
		claims["name"] = name
	}

	token := jwt.NewWithClaims(jwt.SigningMethodHS256, claims)
	return token.SignedString(j.secretKey)
}

// Validate implements domain.TokenService
func (j *JWTServiceImpl) Validate(tokenString string) (*domain.TokenClaims, error) {
	token, err := jwt.Parse(tokenString, func(token *jwt.Token) (interface{}, error) {
		if _, ok := token.Method.(*jwt.SigningMethodHMAC); !ok {
			return nil, domain.ErrTokenMalformed
		}
		return j.secretKey, nil
	})

	if err != nil {
		switch {
		case errors.Is(err, jwt.ErrTokenExpired):
			return nil, domain.ErrTokenExpired
		case errors.Is(err, jwt.ErrTokenMalformed):
			return nil, domain.ErrTokenMalformed
		default:
			return nil, domain.ErrTokenInvalid
		}
	}

	if !token.Valid {
		return nil, domain.ErrTokenInvalid
	}

	claims, ok := token.Claims.(jwt.MapClaims)
	if !ok {
		return nil, domain.ErrTokenMalformed
	}

	userID, ok := claims["userId"].(string)
	if !ok {
		return nil, domain.ErrTokenMalformed
	}

	email, ok := claims["email"].(string)
	if !ok {
		return nil, domain.ErrTokenMalformed
	}

	iat, ok := claims["iat"].(float64)
	if !ok {
		return nil, domain.ErrTokenMalformed
	}

	exp, ok := claims["exp"].(float64)
	if !ok {
		return nil, domain.ErrTokenMalformed
	}

	tokenClaims := &domain.TokenClaims{
		UserID:    userID,
		Email:     email,
		IssuedAt:  int64(iat),
		ExpiresAt: int64(exp),
	}

	if name, ok := claims["name"].(string); ok {
		tokenClaims.Name = name
	}

	return tokenClaims, nil
}
