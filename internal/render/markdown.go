package render

import (
	"fmt"
	"strings"

	"github.com/omarshaarawi/fplboard/internal/models"
	"github.com/omarshaarawi/fplboard/internal/service"
)

var markdownEscaper = strings.NewReplacer("_", "\\_", "*", "\\*", "`", "\\`", "[", "\\[")

func escape(s string) string {
	return markdownEscaper.Replace(s)
}

func FixturesMarkdown(fixtures []models.Fixture, teams map[int]models.Team) string {
	var sb strings.Builder
	sb.WriteString("📅 *Upcoming Fixtures*\n")

	if len(fixtures) == 0 {
		sb.WriteString("\n" + NoFixtures)
		return sb.String()
	}

	gw := -1
	for _, f := range fixtures {
		if f.GameweekID != gw {
			gw = f.GameweekID
			sb.WriteString(fmt.Sprintf("\n*%s*\n", GameweekTitle(gw)))
		}
		sb.WriteString(fmt.Sprintf("%s %s (H) FDR %s v %s (A) FDR %s - %s\n",
			difficultyEmoji(f.HomeDifficulty),
			escape(service.TeamName(teams, f.HomeTeamID)),
			DifficultyLabel(f.HomeDifficulty),
			escape(service.TeamName(teams, f.AwayTeamID)),
			DifficultyLabel(f.AwayDifficulty),
			Kickoff(f),
		))
	}

	return sb.String()
}

func difficultyEmoji(d int) string {
	switch service.ColorForDifficulty(d) {
	case service.ColorDarkGreen:
		return "🟩"
	case service.ColorGreen:
		return "🟢"
	case service.ColorAmber:
		return "🟡"
	case service.ColorOrange:
		return "🟠"
	case service.ColorDarkRed:
		return "🔴"
	default:
		return "⚪"
	}
}

func ManagerCardMarkdown(s models.ManagerSummary) string {
	var sb strings.Builder
	sb.WriteString("📈 *Live Rank*\n━━━━━━━━━━━━━━━━\n")
	for _, f := range cardFields(s) {
		sb.WriteString(fmt.Sprintf("%s: %s\n", cardLabels[f.selector], escape(f.value)))
	}
	return sb.String()
}

var cardLabels = map[string]string{
	ManagerName: "Manager",
	TeamName:    "Team",
	NetPoints:   "Gameweek points",
	LiveRank:    "Live rank",
	Transfers:   "Transfers",
}

func BonusMarkdown(gw int, entries []models.PlayerBonusEntry, teams map[int]models.Team) string {
	var sb strings.Builder
	sb.WriteString(fmt.Sprintf("⭐ *%s Bonus Points*\n\n", GameweekTitle(gw)))

	if len(entries) == 0 {
		sb.WriteString(NoBonus)
		return sb.String()
	}

	for _, e := range entries {
		team := ""
		if e.TeamID > 0 {
			team = fmt.Sprintf(" (%s)", escape(service.TeamName(teams, e.TeamID)))
		}
		sb.WriteString(fmt.Sprintf("%d pts - *%s*%s, %d BPS\n", e.BonusPoints, escape(e.PlayerName), team, e.BPS))
	}

	return sb.String()
}
