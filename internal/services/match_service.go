package services

import (
	"context"
	"fmt"
	"math/rand"
	"strings"
	"time"

	"go.uber.org/zap"

	"github.com/luanpessuti/case01furia/domain"
)

// maxFeedEvents bounds the rolling event feed in a match snapshot
const maxFeedEvents = 5

// MatchServiceImpl implements domain.MatchService as a read-through over
// the match repository.
type MatchServiceImpl struct {
	matchRepo domain.MatchRepository
}

// NewMatchService creates a new match service
func NewMatchService(matchRepo domain.MatchRepository) domain.MatchService {
	return &MatchServiceImpl{matchRepo: matchRepo}
}

// List implements domain.MatchService
func (s *MatchServiceImpl) List(ctx context.Context) ([]*domain.Match, error) {
	return s.matchRepo.List(ctx)
}

// Get implements domain.MatchService
func (s *MatchServiceImpl) Get(ctx context.Context, matchID string) (*domain.Match, error) {
	return s.matchRepo.FindByID(ctx, matchID)
}

// Event templates for the simulated live feed
var eventTemplates = []string{
	"FalleN eliminou {opponent} com AWP",
	"KSCERATO eliminou {opponent} com AK-47",
	"yuurih realiza um clutch 1v2!",
	"chelo defende o bomb site B com 3 kills",
	"drop planta a bomba no bomb site A",
	"FURIA vence o round com estratégia rápida",
	"Time CT realiza retake bem sucedido",
	"Bomba explodiu! Ponto para os Terroristas",
	"Time TR executa estratégia no bomb site A",
	"Timeout tático solicitado pela FURIA",
}

var eventOpponents = []string{
	"s1mple", "electronic", "b1t", "perfecto", "Boombl4",
	"nitr0", "EliGE", "NAF", "Stewie2K", "Grim",
}

// MatchSimulator advances live matches on a fixed tick. It is the single
// writer of match snapshots; clients poll them over plain request/response.
type MatchSimulator struct {
	matchRepo domain.MatchRepository
	logger    *zap.Logger
	tick      time.Duration
	rng       *rand.Rand
	nextEvent int
}

// NewMatchSimulator creates a match simulator
func NewMatchSimulator(matchRepo domain.MatchRepository, logger *zap.Logger, tick time.Duration, rng *rand.Rand) *MatchSimulator {
	if rng == nil {
		rng = rand.New(rand.NewSource(time.Now().UnixNano()))
	}
	return &MatchSimulator{
		matchRepo: matchRepo,
		logger:    logger,
		tick:      tick,
		rng:       rng,
		nextEvent: 1,
	}
}

// Run drives the simulation until the context is cancelled
func (m *MatchSimulator) Run(ctx context.Context) {
	ticker := time.NewTicker(m.tick)
	defer ticker.Stop()

	for {
		select {
		case <-ctx.Done():
			return
		case <-ticker.C:
			if err := m.Tick(ctx); err != nil {
				m.logger.Warn("match tick failed", zap.Error(err))
			}
		}
	}
}

// Tick advances every live match by one simulated step
func (m *MatchSimulator) Tick(ctx context.Context) error {
	matches, err := m.matchRepo.List(ctx)
	if err != nil {
		return err
	}

	for _, match := range matches {
		if match.Status != domain.MatchLive {
			continue
		}
		m.advance(match)
		if err := m.matchRepo.Save(ctx, match); err != nil {
			return fmt.Errorf("failed to save match %s: %w", match.MatchID, err)
		}
	}
	return nil
}

func (m *MatchSimulator) advance(match *domain.Match) {
	// Event ids stay monotonic within a feed, including seeded events.
	for _, ev := range match.LastEvents {
		if ev.ID >= m.nextEvent {
			m.nextEvent = ev.ID + 1
		}
	}
	match.LastEvents = append(match.LastEvents, domain.MatchEvent{
		ID:        m.nextEvent,
		Text:      m.randomEvent(),
		Timestamp: m.randomClock(),
	})
	m.nextEvent++
	if len(match.LastEvents) > maxFeedEvents {
		match.LastEvents = match.LastEvents[len(match.LastEvents)-maxFeedEvents:]
	}

	// Roughly every other tick a round concludes and someone scores.
	if m.rng.Intn(2) == 0 {
		if m.rng.Intn(2) == 0 {
			match.Teams.Team1.Score++
		} else {
			match.Teams.Team2.Score++
		}
		match.CurrentRound++
	}
	match.TimeRemaining = m.randomClock()

	if match.TotalRounds > 0 && match.CurrentRound >= match.TotalRounds {
		match.Status = domain.MatchFinished
		match.TimeRemaining = ""
		m.logger.Info("match finished",
			zap.String("match_id", match.MatchID),
			zap.Int("score1", match.Teams.Team1.Score),
			zap.Int("score2", match.Teams.Team2.Score),
		)
	}
}

func (m *MatchSimulator) randomEvent() string {
	tpl := eventTemplates[m.rng.Intn(len(eventTemplates))]
	opp := eventOpponents[m.rng.Intn(len(eventOpponents))]
	return strings.ReplaceAll(tpl, "{opponent}", opp)
}

func (m *MatchSimulator) randomClock() string {
	return fmt.Sprintf("%d:%02d", m.rng.Intn(2), m.rng.Intn(60))
}

// SeedMatches loads the default fixtures if the store is empty
func SeedMatches(ctx context.Context, repo domain.MatchRepository) error {
	existing, err := repo.List(ctx)
	if err != nil {
		return err
	}
	if len(existing) > 0 {
		return nil
	}

	for _, match := range defaultMatches() {
		if err := repo.Save(ctx, match); err != nil {
			return err
		}
	}
	return nil
}

func defaultMatches() []*domain.Match {
	return []*domain.Match{
		{
			MatchID: "1",
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
				{ID: 2, Text: "KSCERATO planta a bomba no B", Timestamp: "0:35"},
				{ID: 3, Text: "FURIA vence o round", Timestamp: "1:20"},
			},
		},
		{
			MatchID: "2",
			Teams: domain.MatchTeams{
				Team1: domain.Team{Name: "FURIA", Logo: "/images/furiaLogo.png"},
				Team2: domain.Team{Name: "LIQUID", Logo: "/images/liquidLogo.png"},
			},
			Map:    "Inferno",
			Status: domain.MatchUpcoming,
		},
		{
			MatchID: "3",
			Teams: domain.MatchTeams{
				Team1: domain.Team{Name: "FURIA", Logo: "/images/furiaLogo.png", Score: 16},
				Team2: domain.Team{Name: "MIBR", Logo: "/images/mibrLogo.png", Score: 14},
			},
			Map:    "Nuke",
			Status: domain.MatchFinished,
		},
	}
}
