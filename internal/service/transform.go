package service

import (
	"encoding/json"
	"fmt"
	"math"
	"sort"
	"strconv"
	"strings"
	"time"

	"github.com/lithammer/fuzzysearch/fuzzy"
	"github.com/omarshaarawi/fplboard/internal/models"
)

const UnknownPlayer = "Unknown Player"

var (
	ColorDarkGreen = models.Color{Name: "dark-green", Hex: "#257d5a", Text: "#ffffff"}
	ColorGreen     = models.Color{Name: "green", Hex: "#00ff86", Text: "#000000"}
	ColorAmber     = models.Color{Name: "amber", Hex: "#ffbf00", Text: "#000000"}
	ColorOrange    = models.Color{Name: "orange", Hex: "#ff8c00", Text: "#ffffff"}
	ColorDarkRed   = models.Color{Name: "dark-red", Hex: "#80072d", Text: "#ffffff"}
	ColorNeutral   = models.Color{Name: "neutral", Hex: "#e7e7e7", Text: "#000000"}
)

// BuildTeamIndex maps team id to Team. A nil payload or one without teams
// yields an empty index.
func BuildTeamIndex(bootstrap *models.BootstrapResponse) map[int]models.Team {
	index := make(map[int]models.Team)
	if bootstrap == nil {
		return index
	}
	for _, t := range bootstrap.Teams {
		if t.ID <= 0 {
			continue
		}
		index[t.ID] = models.Team{
			ID:        t.ID,
			Name:      t.Name,
			ShortName: t.ShortName,
			Stadium:   t.Stadium,
		}
	}
	return index
}

func BuildPlayerIndex(bootstrap *models.BootstrapResponse) map[int]models.Player {
	index := make(map[int]models.Player)
	if bootstrap == nil {
		return index
	}
	for _, e := range bootstrap.Elements {
		if e.ID <= 0 {
			continue
		}
		index[e.ID] = models.Player{
			ID:         e.ID,
			WebName:    e.WebName,
			FirstName:  e.FirstName,
			SecondName: e.SecondName,
			TeamID:     e.Team,
		}
	}
	return index
}

// TeamName resolves id against the team index, falling back to a
// placeholder when the index has no such team.
func TeamName(teams map[int]models.Team, id int) string {
	if team, ok := teams[id]; ok && team.Name != "" {
		return team.Name
	}
	return fmt.Sprintf("Team ID %d", id)
}

func PlayerName(p models.Player) string {
	if p.WebName != "" {
		return p.WebName
	}
	full := strings.TrimSpace(p.FirstName + " " + p.SecondName)
	if full != "" {
		return full
	}
	return UnknownPlayer
}

func ToFixture(raw models.FixtureResponse) models.Fixture {
	f := models.Fixture{
		ID:             raw.ID,
		HomeTeamID:     raw.TeamH,
		AwayTeamID:     raw.TeamA,
		HomeDifficulty: int(raw.TeamHDifficulty),
		AwayDifficulty: int(raw.TeamADifficulty),
		Finished:       raw.Finished,
	}
	if raw.Event != nil {
		f.GameweekID = *raw.Event
	}
	if raw.Started != nil {
		f.Started = *raw.Started
	}
	if raw.KickoffTime != nil {
		if t, err := time.Parse(time.RFC3339, *raw.KickoffTime); err == nil {
			f.KickoffTime = &t
		}
	}
	return f
}

// SelectUpcomingFixtures keeps unfinished fixtures, restricted to gameweekID
// when it is positive. Results are ordered by gameweek, then kickoff time,
// with unscheduled gameweeks and unknown kickoffs last.
func SelectUpcomingFixtures(fixtures []models.FixtureResponse, gameweekID int) []models.Fixture {
	upcoming := make([]models.Fixture, 0, len(fixtures))
	for _, raw := range fixtures {
		if raw.Finished {
			continue
		}
		f := ToFixture(raw)
		if gameweekID > 0 && f.GameweekID != gameweekID {
			continue
		}
		upcoming = append(upcoming, f)
	}

	sort.SliceStable(upcoming, func(i, j int) bool {
		a, b := upcoming[i], upcoming[j]
		if a.GameweekID != b.GameweekID {
			return gameweekKey(a.GameweekID) < gameweekKey(b.GameweekID)
		}
		switch {
		case a.KickoffTime != nil && b.KickoffTime != nil:
			if !a.KickoffTime.Equal(*b.KickoffTime) {
				return a.KickoffTime.Before(*b.KickoffTime)
			}
		case a.KickoffTime != nil:
			return true
		case b.KickoffTime != nil:
			return false
		}
		return a.ID < b.ID
	})

	return upcoming
}

func gameweekKey(id int) int {
	if id <= 0 {
		return math.MaxInt
	}
	return id
}

// FixturesForTeam keeps the fixtures teamID plays in, preserving order.
func FixturesForTeam(fixtures []models.Fixture, teamID int) []models.Fixture {
	var out []models.Fixture
	for _, f := range fixtures {
		if f.HomeTeamID == teamID || f.AwayTeamID == teamID {
			out = append(out, f)
		}
	}
	return out
}

// ColorForDifficulty buckets a rating: 1 dark green, 2 green, 3 amber,
// 4 orange, 5 and above dark red. Ratings below 1 are out of range.
func ColorForDifficulty(rating int) models.Color {
	switch {
	case rating <= 0:
		return ColorNeutral
	case rating == 1:
		return ColorDarkGreen
	case rating == 2:
		return ColorGreen
	case rating == 3:
		return ColorAmber
	case rating == 4:
		return ColorOrange
	default:
		return ColorDarkRed
	}
}

// ColorForRawDifficulty accepts a loosely typed rating. Anything that is not
// a whole number maps to the neutral color.
func ColorForRawDifficulty(v any) models.Color {
	switch r := v.(type) {
	case int:
		return ColorForDifficulty(r)
	case int64:
		return ColorForDifficulty(int(r))
	case models.Rating:
		return ColorForDifficulty(int(r))
	case float64:
		if math.IsNaN(r) || math.IsInf(r, 0) || r != math.Trunc(r) {
			return ColorNeutral
		}
		return ColorForDifficulty(int(r))
	case json.Number:
		n, err := strconv.Atoi(r.String())
		if err != nil {
			return ColorNeutral
		}
		return ColorForDifficulty(n)
	case string:
		n, err := strconv.Atoi(strings.TrimSpace(r))
		if err != nil {
			return ColorNeutral
		}
		return ColorForDifficulty(n)
	default:
		return ColorNeutral
	}
}

// JoinBonusStats keeps players with bonus points, resolves their names
// through the player index and orders them by bonus then bps, both
// descending.
func JoinBonusStats(live *models.LiveResponse, players map[int]models.Player) []models.PlayerBonusEntry {
	if live == nil {
		return nil
	}

	var entries []models.PlayerBonusEntry
	for _, el := range live.Elements {
		if el.Stats.Bonus <= 0 {
			continue
		}
		entry := models.PlayerBonusEntry{
			PlayerID:    el.ID,
			PlayerName:  UnknownPlayer,
			BonusPoints: el.Stats.Bonus,
			BPS:         el.Stats.BPS,
		}
		if p, ok := players[el.ID]; ok {
			entry.PlayerName = PlayerName(p)
			entry.TeamID = p.TeamID
		}
		entries = append(entries, entry)
	}

	sort.Slice(entries, func(i, j int) bool {
		a, b := entries[i], entries[j]
		if a.BonusPoints != b.BonusPoints {
			return a.BonusPoints > b.BonusPoints
		}
		if a.BPS != b.BPS {
			return a.BPS > b.BPS
		}
		return a.PlayerID < b.PlayerID
	})

	return entries
}

// FilterBonusByPlayer keeps entries whose player name fuzzily contains query.
// An empty query keeps everything.
func FilterBonusByPlayer(entries []models.PlayerBonusEntry, query string) []models.PlayerBonusEntry {
	query = strings.TrimSpace(query)
	if query == "" {
		return entries
	}

	var out []models.PlayerBonusEntry
	for _, e := range entries {
		if fuzzy.MatchNormalizedFold(query, e.PlayerName) {
			out = append(out, e)
		}
	}
	return out
}

// SummarizeManager builds the live rank card. The picks payload, when
// present, supplies the gameweek's points, hits and transfers; otherwise the
// entry summary is used as is.
func SummarizeManager(entry *models.EntryResponse, picks *models.PicksResponse) models.ManagerSummary {
	if entry == nil {
		return models.ManagerSummary{}
	}

	summary := models.ManagerSummary{
		ManagerID:   entry.ID,
		ManagerName: strings.TrimSpace(entry.PlayerFirstName + " " + entry.PlayerLastName),
		TeamName:    entry.Name,
		Gameweek:    entry.CurrentEvent,
		NetPoints:   entry.SummaryEventPoints,
		LiveRank:    entry.SummaryOverallRank,
		Transfers:   entry.TotalTransfers,
	}

	if picks != nil {
		h := picks.EntryHistory
		if h.Event > 0 {
			summary.Gameweek = h.Event
		}
		summary.NetPoints = h.Points - h.EventTransfersCost
		summary.Transfers = h.EventTransfers
		summary.TransferCost = h.EventTransfersCost
		if h.OverallRank > 0 {
			summary.LiveRank = h.OverallRank
		}
	}

	return summary
}
