package repositories

import (
	"context"
	"errors"
	"testing"

	"github.com/alicebob/miniredis/v2"
	"github.com/redis/go-redis/v9"

	"github.com/luanpessuti/case01furia/domain"
)

// setupTestRedis creates an in-memory Redis instance for testing
func setupTestRedis(t *testing.T) *redis.Client {
	t.Helper()

	mr, err := miniredis.Run()
	if err != nil {
		t.Fatalf("failed to start miniredis: %v", err)
	}
	t.Cleanup(func() {
		mr.Close()
	})

	return redis.NewClient(&redis.Options{Addr: mr.Addr()})
}

func testMatch(id string) *domain.Match {
	return &domain.Match{
		MatchID: id,
		Teams: domain.MatchTeams{
			Team1: domain.Team{Name: "FURIA", Logo: "/images/furiaLogo.png", Score: 9},
			Team2: domain.Team{Name: "NAVI", Logo: "/images/naviLogo.png", Score: 7},
		},
		Map:           "Mirage",
		Status:        domain.MatchLive,
		CurrentRound:  17,
		TotalRounds:   30,
		TimeRemaining: "1:45",
		LastEvents: []domain.MatchEvent{
			{ID: 1, Text: "FalleN eliminou s1mple com AWP", Timestamp: "0:15"},
		},
	}
}

func TestMatchRepositoryImpl_SaveAndFind(t *testing.T) {
	ctx := context.Background()
	repo := NewMatchRepository(setupTestRedis(t))

	if err := repo.Save(ctx, testMatch("1")); err != nil {
		t.Fatalf("save failed: %v", err)
	}

	found, err := repo.FindByID(ctx, "1")
	if err != nil {
		t.Fatalf("find failed: %v", err)
	}
	if found.Teams.Team1.Name != "FURIA" || found.Teams.Team1.Score != 9 {
		t.Errorf("unexpected team1: %+v", found.Teams.Team1)
	}
	if found.Status != domain.MatchLive {
		t.Errorf("expected live status, got %s", found.Status)
	}
	if len(found.LastEvents) != 1 || found.LastEvents[0].Text != "FalleN eliminou s1mple com AWP" {
		t.Errorf("unexpected events: %+v", found.LastEvents)
	}
}

func TestMatchRepositoryImpl_FindByID_NotFound(t *testing.T) {
	repo := NewMatchRepository(setupTestRedis(t))

	if _, err := repo.FindByID(context.Background(), "missing"); !errors.Is(err, domain.ErrMatchNotFound) {
		t.Errorf("expected ErrMatchNotFound, got %v", err)
	}
}

func TestMatchRepositoryImpl_List(t *testing.T) {
	ctx := context.Background()
	repo := NewMatchRepository(setupTestRedis(t))

	for _, id := range []string{"3", "1", "2"} {
		if err := repo.Save(ctx, testMatch(id)); err != nil {
			t.Fatalf("save failed: %v", err)
		}
	}

	matches, err := repo.List(ctx)
	if err != nil {
		t.Fatalf("list failed: %v", err)
	}
	if len(matches) != 3 {
		t.Fatalf("expected 3 matches, got %d", len(matches))
	}
	for i, want := range []string{"1", "2", "3"} {
		if matches[i].MatchID != want {
			t.Errorf("expected match %s at position %d, got %s", want, i, matches[i].MatchID)
		}
	}
}

func TestMatchRepositoryImpl_SaveOverwrites(t *testing.T) {
	ctx := context.Background()
	repo := NewMatchRepository(setupTestRedis(t))

	match := testMatch("1")
	if err := repo.Save(ctx, match); err != nil {
		t.Fatalf("save failed: %v", err)
	}

	match.Teams.Team1.Score = 10
	match.Status = domain.MatchFinished
	if err := repo.Save(ctx, match); err != nil {
		t.Fatalf("second save failed: %v", err)
	}

	found, err := repo.FindByID(ctx, "1")
	if err != nil {
		t.Fatalf("find failed: %v", err)
	}
	if found.Teams.Team1.Score != 10 {
		t.Errorf("expected score 10, got %d", found.Teams.Team1.Score)
	}
	if found.Status != domain.MatchFinished {
		t.Errorf("expected finished status, got %s", found.Status)
	}

	matches, err := repo.List(ctx)
	if err != nil {
		t.Fatalf("list failed: %v", err)
	}
	if len(matches) != 1 {
		t.Errorf("expected a single match after overwrite, got %d", len(matches))
	}
}
