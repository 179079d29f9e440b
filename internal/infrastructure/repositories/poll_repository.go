package repositories

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"

	"github.com/redis/go-redis/v9"

	"github.com/luanpessuti/case01furia/domain"
)

// PollRepositoryImpl implements domain.PollRepository using Redis. The poll
// definition is stored as JSON, tallies live in a hash keyed by option ID,
// and a one-vote-per-user guard uses SETNX.
type PollRepositoryImpl struct {
	client *redis.Client
}

// NewPollRepository creates a new poll repository
func NewPollRepository(client *redis.Client) domain.PollRepository {
	return &PollRepositoryImpl{client: client}
}

func pollKey(id string) string      { return "poll:" + id }
func pollVotesKey(id string) string { return "poll:votes:" + id }
func pollVoterKey(id, userID string) string {
	return fmt.Sprintf("poll:voted:%s:%s", id, userID)
}

// Save implements domain.PollRepository. Only the definition is written;
// tallies accumulate separately so re-seeding never resets votes.
func (r *PollRepositoryImpl) Save(ctx context.Context, poll *domain.Poll) error {
	def := domain.Poll{ID: poll.ID, Question: poll.Question, Options: poll.Options}
	for i := range def.Options {
		def.Options[i].Votes = 0
	}

	data, err := json.Marshal(&def)
	if err != nil {
		return fmt.Errorf("failed to marshal poll: %w", err)
	}
	return r.client.Set(ctx, pollKey(poll.ID), data, 0).Err()
}

// FindByID implements domain.PollRepository, merging current tallies into
// the stored definition.
func (r *PollRepositoryImpl) FindByID(ctx context.Context, pollID string) (*domain.Poll, error) {
	data, err := r.client.Get(ctx, pollKey(pollID)).Result()
	if err != nil {
		if errors.Is(err, redis.Nil) {
			return nil, domain.ErrPollNotFound
		}
		return nil, err
	}

	var poll domain.Poll
	if err := json.Unmarshal([]byte(data), &poll); err != nil {
		return nil, fmt.Errorf("failed to unmarshal poll: %w", err)
	}

	tallies, err := r.client.HGetAll(ctx, pollVotesKey(pollID)).Result()
	if err != nil {
		return nil, err
	}

	poll.TotalVotes = 0
	for i := range poll.Options {
		var votes int64
		fmt.Sscanf(tallies[poll.Options[i].ID], "%d", &votes)
		poll.Options[i].Votes = votes
		poll.TotalVotes += votes
	}
	return &poll, nil
}

// Vote implements domain.PollRepository
func (r *PollRepositoryImpl) Vote(ctx context.Context, pollID, optionID, userID string) error {
	poll, err := r.FindByID(ctx, pollID)
	if err != nil {
		return err
	}

	known := false
	for _, opt := range poll.Options {
		if opt.ID == optionID {
			known = true
			break
		}
	}
	if !known {
		return domain.ErrUnknownOption
	}

	ok, err := r.client.SetNX(ctx, pollVoterKey(pollID, userID), optionID, 0).Result()
	if err != nil {
		return err
	}
	if !ok {
		return domain.ErrAlreadyVoted
	}

	return r.client.HIncrBy(ctx, pollVotesKey(pollID), optionID, 1).Err()
}
