package repositories

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"sort"

	"github.com/redis/go-redis/v9"

	"github.com/luanpessuti/case01furia/domain"
)

// MatchRepositoryImpl implements domain.MatchRepository using Redis.
// Snapshots are whole-value JSON writes; the simulator is the single
// writer per match, handlers only read.
type MatchRepositoryImpl struct {
	client *redis.Client
	prefix string
	setKey string
}

// NewMatchRepository creates a new match repository
func NewMatchRepository(client *redis.Client) domain.MatchRepository {
	return &MatchRepositoryImpl{
		client: client,
		prefix: "match:",
		setKey: "matches",
	}
}

// Save implements domain.MatchRepository
func (r *MatchRepositoryImpl) Save(ctx context.Context, match *domain.Match) error {
	data, err := json.Marshal(match)
	if err != nil {
		return fmt.Errorf("failed to marshal match: %w", err)
	}

	pipe := r.client.TxPipeline()
	pipe.Set(ctx, r.prefix+match.MatchID, data, 0)
	pipe.SAdd(ctx, r.setKey, match.MatchID)
	_, err = pipe.Exec(ctx)
	return err
}

// FindByID implements domain.MatchRepository
func (r *MatchRepositoryImpl) FindByID(ctx context.Context, matchID string) (*domain.Match, error) {
	data, err := r.client.Get(ctx, r.prefix+matchID).Result()
	if err != nil {
		if errors.Is(err, redis.Nil) {
			return nil, domain.ErrMatchNotFound
		}
		return nil, err
	}

	var match domain.Match
	if err := json.Unmarshal([]byte(data), &match); err != nil {
		return nil, fmt.Errorf("failed to unmarshal match: %w", err)
	}
	return &match, nil
}

// List implements domain.MatchRepository. Results are ordered by match ID
// so repeated polls see a stable listing.
func (r *MatchRepositoryImpl) List(ctx context.Context) ([]*domain.Match, error) {
	ids, err := r.client.SMembers(ctx, r.setKey).Result()
	if err != nil {
		return nil, err
	}
	sort.Strings(ids)

	matches := make([]*domain.Match, 0, len(ids))
	for _, id := range ids {
		match, err := r.FindByID(ctx, id)
		if err != nil {
			if errors.Is(err, domain.ErrMatchNotFound) {
				continue
			}
			return nil, err
		}
		matches = append(matches, match)
	}
	return matches, nil
}
