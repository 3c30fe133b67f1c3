package service

import (
	"context"
	"fmt"
	"log/slog"
	"sync"

	"github.com/omarshaarawi/fplboard/internal/models"
	"github.com/omarshaarawi/fplboard/internal/repository/memory"
)

// Source is the subset of the FPL API the board reads from.
type Source interface {
	Bootstrap(ctx context.Context) (*models.BootstrapResponse, error)
	Fixtures(ctx context.Context, gw int) ([]models.FixtureResponse, error)
	EventLive(ctx context.Context, gw int) (*models.LiveResponse, error)
	Entry(ctx context.Context, managerID int) (*models.EntryResponse, error)
	EntryPicks(ctx context.Context, managerID, gw int) (*models.PicksResponse, error)
}

type FPLService struct {
	api  Source
	repo *memory.Repository

	bootstrapMu sync.Mutex
	bootstrap   *models.BootstrapResponse
}

func NewFPLService(api Source, repo *memory.Repository) *FPLService {
	return &FPLService{api: api, repo: repo}
}

func (s *FPLService) Repository() *memory.Repository {
	return s.repo
}

// EnsureBootstrap populates the session's team and player indexes. It is
// idempotent: once loaded it returns immediately, and concurrent callers
// wait on the same fetch. A failed fetch leaves the session unloaded so the
// next caller tries again.
func (s *FPLService) EnsureBootstrap(ctx context.Context) error {
	if s.repo.Loaded() {
		return nil
	}

	s.bootstrapMu.Lock()
	defer s.bootstrapMu.Unlock()

	if s.repo.Loaded() {
		return nil
	}

	bootstrap, err := s.api.Bootstrap(ctx)
	if err != nil {
		return err
	}

	teams := BuildTeamIndex(bootstrap)
	players := BuildPlayerIndex(bootstrap)
	s.bootstrap = bootstrap
	s.repo.SaveIndexes(teams, players)
	slog.Info("Loaded bootstrap", "teams", len(teams), "players", len(players))
	return nil
}

// CurrentGameweek returns the gameweek the board targets by default: the
// next unfinished event, else the current one. Zero when the bootstrap has
// no events or is not loaded.
func (s *FPLService) CurrentGameweek() int {
	s.bootstrapMu.Lock()
	defer s.bootstrapMu.Unlock()

	if s.bootstrap == nil {
		return 0
	}
	current := 0
	for _, ev := range s.bootstrap.Events {
		if ev.IsNext {
			return ev.ID
		}
		if ev.IsCurrent {
			current = ev.ID
		}
	}
	return current
}

// UpcomingFixtures fetches fixtures for gw and returns the unfinished ones,
// optionally restricted to teamID. A zero gw targets the next gameweek known
// to the bootstrap, or the whole season when none is known. The bootstrap is
// attempted once per call; when it fails team names degrade to placeholders.
func (s *FPLService) UpcomingFixtures(ctx context.Context, gw, teamID int) ([]models.Fixture, error) {
	if err := s.EnsureBootstrap(ctx); err != nil {
		slog.Error("Continuing without team index", "error", err)
	}
	if gw == 0 && teamID == 0 {
		gw = s.CurrentGameweek()
	}

	raw, err := s.api.Fixtures(ctx, gw)
	if err != nil {
		return nil, fmt.Errorf("error fetching upcoming fixtures: %w", err)
	}

	fixtures := SelectUpcomingFixtures(raw, gw)
	if teamID > 0 {
		fixtures = FixturesForTeam(fixtures, teamID)
	}
	return fixtures, nil
}

func (s *FPLService) BonusTable(ctx context.Context, gw int, playerQuery string) ([]models.PlayerBonusEntry, error) {
	if err := s.EnsureBootstrap(ctx); err != nil {
		slog.Error("Continuing without player index", "error", err)
	}

	live, err := s.api.EventLive(ctx, gw)
	if err != nil {
		return nil, fmt.Errorf("error fetching bonus points: %w", err)
	}

	entries := JoinBonusStats(live, s.repo.Players())
	return FilterBonusByPlayer(entries, playerQuery), nil
}

// ManagerCard fetches the entry summary and, when the entry has a current
// gameweek, its picks. A picks failure degrades to the entry summary.
func (s *FPLService) ManagerCard(ctx context.Context, managerID int) (models.ManagerSummary, error) {
	entry, err := s.api.Entry(ctx, managerID)
	if err != nil {
		return models.ManagerSummary{}, fmt.Errorf("error fetching manager summary: %w", err)
	}

	var picks *models.PicksResponse
	if entry.CurrentEvent > 0 {
		picks, err = s.api.EntryPicks(ctx, managerID, entry.CurrentEvent)
		if err != nil {
			slog.Error("Using entry summary without picks", "manager", managerID, "error", err)
			picks = nil
		}
	}

	return SummarizeManager(entry, picks), nil
}

func (s *FPLService) Teams() map[int]models.Team {
	return s.repo.Teams()
}
