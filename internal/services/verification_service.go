package services

import (
	"context"
	"fmt"
	"time"

	"go.uber.org/zap"

	"github.com/luanpessuti/case01furia/domain"
)

// Verification step markers. Step 1 is the document upload, step 2 the
// social-profile linking; completing both marks the account verified.
const (
	StepNone      = 0
	StepDocument  = 1
	StepCompleted = 2
)

// VerificationServiceImpl implements domain.VerificationService
type VerificationServiceImpl struct {
	userRepo domain.UserRepository
	logger   *zap.Logger
}

// NewVerificationService creates a new verification service
func NewVerificationService(userRepo domain.UserRepository, logger *zap.Logger) domain.VerificationService {
	return &VerificationServiceImpl{
		userRepo: userRepo,
		logger:   logger,
	}
}

// Verify implements domain.VerificationService. Social links are proof of
// submission only; they are logged for audit but not persisted.
func (s *VerificationServiceImpl) Verify(ctx context.Context, userID string, socialLinks map[string]string) error {
	user, err := s.userRepo.FindByID(ctx, userID)
	if err != nil {
		return err
	}

	if user.Verified {
		// Idempotent: re-verifying an already verified account succeeds.
		return nil
	}

	if err := s.userRepo.SetVerified(ctx, user.ID, time.Now(), StepCompleted); err != nil {
		return fmt.Errorf("failed to mark user verified: %w", err)
	}

	s.logger.Info("user verified",
		zap.String("user_id", user.ID),
		zap.Int("social_links", len(socialLinks)),
	)
	return nil
}
