package repositories

import (
	"context"
	"errors"
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"

	"github.com/luanpessuti/case01furia/domain"
)

// UserRepositoryImpl implements domain.UserRepository using GORM
type UserRepositoryImpl struct {
	db *gorm.DB
}

// DBUser represents the database model for User (with GORM tags).
// Email matching is case-sensitive, consistent with how addresses are
// stored at registration.
type DBUser struct {
	ID               string `gorm:"primaryKey;size:36"`
	Name             string `gorm:"size:255"`
	Email            string `gorm:"uniqueIndex;size:255"`
	PasswordHash     string `gorm:"column:password"`
	CPF              string `gorm:"column:cpf;size:14"`
	Verified         bool   `gorm:"index"`
	VerifiedAt       *time.Time
	VerificationStep int
	CreatedAt        time.Time
	UpdatedAt        time.Time
}

// TableName returns the table name for GORM
func (DBUser) TableName() string {
	return "users"
}

// NewUserRepository creates a new user repository
func NewUserRepository(db *gorm.DB) domain.UserRepository {
	return &UserRepositoryImpl{db: db}
}

// Create implements domain.UserRepository. An empty ID is assigned a fresh
// UUID. A duplicate email surfaces as domain.ErrEmailTaken.
func (r *UserRepositoryImpl) Create(ctx context.Context, user *domain.User) error {
	if user.ID == "" {
		user.ID = uuid.NewString()
	}
	dbUser := r.domainToDB(user)
	if err := r.db.WithContext(ctx).Create(dbUser).Error; err != nil {
		if errors.Is(err, gorm.ErrDuplicatedKey) {
			return domain.ErrEmailTaken
		}
		return err
	}
	user.CreatedAt = dbUser.CreatedAt
	user.UpdatedAt = dbUser.UpdatedAt
	return nil
}

// FindByEmail implements domain.UserRepository
func (r *UserRepositoryImpl) FindByEmail(ctx context.Context, email string) (*domain.User, error) {
	var dbUser DBUser
	err := r.db.WithContext(ctx).Where("email = ?", email).First(&dbUser).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, domain.ErrUserNotFound
		}
		return nil, err
	}
	return r.dbToDomain(&dbUser), nil
}

// FindByID implements domain.UserRepository
func (r *UserRepositoryImpl) FindByID(ctx context.Context, id string) (*domain.User, error) {
	var dbUser DBUser
	err := r.db.WithContext(ctx).Where("id = ?", id).First(&dbUser).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, domain.ErrUserNotFound
		}
		return nil, err
	}
	return r.dbToDomain(&dbUser), nil
}

// Update implements domain.UserRepository
func (r *UserRepositoryImpl) Update(ctx context.Context, user *domain.User) error {
	dbUser := r.domainToDB(user)
	return r.db.WithContext(ctx).Save(dbUser).Error
}

// SetVerified implements domain.UserRepository. Relies on per-row atomicity
// of a single UPDATE; no additional locking.
func (r *UserRepositoryImpl) SetVerified(ctx context.Context, userID string, verifiedAt time.Time, step int) error {
	result := r.db.WithContext(ctx).Model(&DBUser{}).Where("id = ?", userID).Updates(map[string]interface{}{
		"verified":          true,
		"verified_at":       verifiedAt,
		"verification_step": step,
	})
	if result.Error != nil {
		return result.Error
	}
	if result.RowsAffected == 0 {
		return domain.ErrUserNotFound
	}
	return nil
}

func (r *UserRepositoryImpl) domainToDB(user *domain.User) *DBUser {
	return &DBUser{
		ID:               user.ID,
		Name:             user.Name,
		Email:            user.Email,
		PasswordHash:     user.PasswordHash,
		CPF:              user.CPF,
		Verified:         user.Verified,
		VerifiedAt:       user.VerifiedAt,
		VerificationStep: user.VerificationStep,
	}
}

func (r *UserRepositoryImpl) dbToDomain(dbUser *DBUser) *domain.User {
	return &domain.User{
		ID:               dbUser.ID,
		Name:             dbUser.Name,
		Email:            dbUser.Email,
		PasswordHash:     dbUser.PasswordHash,
		CPF:              dbUser.CPF,
		Verified:         dbUser.Verified,
		VerifiedAt:       dbUser.VerifiedAt,
		VerificationStep: dbUser.VerificationStep,
		CreatedAt:        dbUser.CreatedAt,
		UpdatedAt:        dbUser.UpdatedAt,
	}
}
