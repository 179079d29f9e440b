package mocks

import (
	"context"

	"github.com/luanpessuti/case01furia/domain"
)

// MockMatchRepository implements domain.MatchRepository for testing
type MockMatchRepository struct {
	SaveFunc     func(ctx context.Context, match *domain.Match) error
	FindByIDFunc func(ctx context.Context, matchID string) (*domain.Match, error)
	ListFunc     func(ctx context.Context) ([]*domain.Match, error)
}

func NewMockMatchRepository() *MockMatchRepository {
	return &MockMatchRepository{}
}

func (m *MockMatchRepository) Save(ctx context.Context, match *domain.Match) error {
	if m.SaveFunc != nil {
		return m.SaveFunc(ctx, match)
	}
	return nil
}

func (m *MockMatchRepository) FindByID(ctx context.Context, matchID string) (*domain.Match, error) {
	if m.FindByIDFunc != nil {
		return m.FindByIDFunc(ctx, matchID)
	}
	return nil, domain.ErrMatchNotFound
}

func (m *MockMatchRepository) List(ctx context.Context) ([]*domain.Match, error) {
	if m.ListFunc != nil {
		return m.ListFunc(ctx)
	}
	return nil, nil
}

var _ domain.MatchRepository = (*MockMatchRepository)(nil)

// MockPollRepository implements domain.PollRepository for testing
type MockPollRepository struct {
	SaveFunc     func(ctx context.Context, poll *domain.Poll) error
	FindByIDFunc func(ctx context.Context, pollID string) (*domain.Poll, error)
	VoteFunc     func(ctx context.Context, pollID, optionID, userID string) error
}

func NewMockPollRepository() *MockPollRepository {
	return &MockPollRepository{}
}

func (m *MockPollRepository) Save(ctx context.Context, poll *domain.Poll) error {
	if m.SaveFunc != nil {
		return m.SaveFunc(ctx, poll)
	}
	return nil
}

func (m *MockPollRepository) FindByID(ctx context.Context, pollID string) (*domain.Poll, error) {
	if m.FindByIDFunc != nil {
		return m.FindByIDFunc(ctx, pollID)
	}
	return nil, domain.ErrPollNotFound
}

func (m *MockPollRepository) Vote(ctx context.Context, pollID, optionID, userID string) error {
	if m.VoteFunc != nil {
		return m.VoteFunc(ctx, pollID, optionID, userID)
	}
	return nil
}

var _ domain.PollRepository = (*MockPollRepository)(nil)

// MockMatchService implements domain.MatchService for testing
type MockMatchService struct {
	ListFunc func(ctx context.Context) ([]*domain.Match, error)
	GetFunc  func(ctx context.Context, matchID string) (*domain.Match, error)
}

func NewMockMatchService() *MockMatchService {
	return &MockMatchService{}
}

func (m *MockMatchService) List(ctx context.Context) ([]*domain.Match, error) {
	if m.ListFunc != nil {
		return m.ListFunc(ctx)
	}
	return nil, nil
}

func (m *MockMatchService) Get(ctx context.Context, matchID string) (*domain.Match, error) {
	if m.GetFunc != nil {
		return m.GetFunc(ctx, matchID)
	}
	return nil, domain.ErrMatchNotFound
}

var _ domain.MatchService = (*MockMatchService)(nil)

// MockPollService implements domain.PollService for testing
type MockPollService struct {
	GetFunc  func(ctx context.Context, pollID string) (*domain.Poll, error)
	VoteFunc func(ctx context.Context, pollID, optionID, userID string) (*domain.Poll, error)
}

func NewMockPollService() *MockPollService {
	return &MockPollService{}
}

func (m *MockPollService) Get(ctx context.Context, pollID string) (*domain.Poll, error) {
	if m.GetFunc != nil {
		return m.GetFunc(ctx, pollID)
	}
	return nil, domain.ErrPollNotFound
}

func (m *MockPollService) Vote(ctx context.Context, pollID, optionID, userID string) (*domain.Poll, error) {
	if m.VoteFunc != nil {
		return m.VoteFunc(ctx, pollID, optionID, userID)
	}
	return nil, domain.ErrPollNotFound
}

var _ domain.PollService = (*MockPollService)(nil)
