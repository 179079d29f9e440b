package services

import (
	"context"
	"fmt"

	"github.com/luanpessuti/case01furia/domain"
)

// PollServiceImpl implements domain.PollService
type PollServiceImpl struct {
	pollRepo domain.PollRepository
}

// NewPollService creates a new poll service
func NewPollService(pollRepo domain.PollRepository) domain.PollService {
	return &PollServiceImpl{pollRepo: pollRepo}
}

// Get implements domain.PollService
func (s *PollServiceImpl) Get(ctx context.Context, pollID string) (*domain.Poll, error) {
	return s.pollRepo.FindByID(ctx, pollID)
}

// Vote implements domain.PollService and returns the updated tallies
func (s *PollServiceImpl) Vote(ctx context.Context, pollID, optionID, userID string) (*domain.Poll, error) {
	if err := s.pollRepo.Vote(ctx, pollID, optionID, userID); err != nil {
		return nil, err
	}

	poll, err := s.pollRepo.FindByID(ctx, pollID)
	if err != nil {
		return nil, fmt.Errorf("failed to reload poll: %w", err)
	}
	return poll, nil
}

// SeedPolls loads the default match-day poll if it is not present
func SeedPolls(ctx context.Context, repo domain.PollRepository) error {
	if _, err := repo.FindByID(ctx, "destaque"); err == nil {
		return nil
	}

	return repo.Save(ctx, &domain.Poll{
		ID:       "destaque",
		Question: "Quem será o destaque da FURIA na próxima partida?",
		Options: []domain.PollOption{
			{ID: "fallen", Label: "FalleN"},
			{ID: "kscerato", Label: "KSCERATO"},
			{ID: "yuurih", Label: "yuurih"},
			{ID: "chelo", Label: "chelo"},
			{ID: "drop", Label: "drop"},
		},
	})
}
