package render

import (
	"fmt"
	"html/template"
	"strconv"
	"strings"

	"github.com/omarshaarawi/fplboard/internal/models"
	"github.com/omarshaarawi/fplboard/internal/service"
)

const (
	NoFixtures          = "No upcoming fixtures found"
	FixturesPlaceholder = "Enter a team ID to see its upcoming fixtures"
)

var fixturesTemplate = template.Must(template.New("fixtures").Parse(
	`{{range .}}<section class="gameweek" data-gameweek="{{.ID}}"><h3>{{.Title}}</h3><ul class="fixture-list">` +
		`{{range .Rows}}<li class="fixture" data-fixture-id="{{.ID}}">` +
		`{{template "side" .Home}}<span class="vs">v</span>{{template "side" .Away}}` +
		`<span class="kickoff">{{.Kickoff}}</span>` +
		`<button class="remove-btn" type="button" aria-label="Remove">x</button></li>{{end}}` +
		`</ul></section>{{end}}` +
		`{{define "side"}}<span class="side" data-team-name="{{.Name}}">` +
		`<span class="team">{{.Name}} ({{.Venue}})</span>` +
		`<span class="fdr fdr-{{.Color.Name}}" data-difficulty="{{.Difficulty}}" style="background-color: {{.Color.Hex}}; color: {{.Color.Text}}">{{.Difficulty}}</span>` +
		`</span>{{end}}`,
))

type fixtureGroup struct {
	ID    int
	Title string
	Rows  []fixtureRow
}

type fixtureRow struct {
	ID      int
	Home    fixtureSide
	Away    fixtureSide
	Kickoff string
}

type fixtureSide struct {
	Name       string
	Venue      string
	Difficulty string
	Color      models.Color
}

// FixturesHTML renders fixtures grouped by gameweek, in the order given.
func FixturesHTML(fixtures []models.Fixture, teams map[int]models.Team) (string, error) {
	if len(fixtures) == 0 {
		return fmt.Sprintf(`<p class="empty">%s</p>`, NoFixtures), nil
	}

	var groups []fixtureGroup
	for _, f := range fixtures {
		if len(groups) == 0 || groups[len(groups)-1].ID != f.GameweekID {
			groups = append(groups, fixtureGroup{ID: f.GameweekID, Title: GameweekTitle(f.GameweekID)})
		}
		g := &groups[len(groups)-1]
		g.Rows = append(g.Rows, fixtureRow{
			ID:      f.ID,
			Home:    newSide(teams, f.HomeTeamID, "H", f.HomeDifficulty),
			Away:    newSide(teams, f.AwayTeamID, "A", f.AwayDifficulty),
			Kickoff: Kickoff(f),
		})
	}

	var sb strings.Builder
	if err := fixturesTemplate.Execute(&sb, groups); err != nil {
		return "", fmt.Errorf("error rendering fixtures: %w", err)
	}
	return sb.String(), nil
}

func newSide(teams map[int]models.Team, teamID int, venue string, difficulty int) fixtureSide {
	return fixtureSide{
		Name:       service.TeamName(teams, teamID),
		Venue:      venue,
		Difficulty: DifficultyLabel(difficulty),
		Color:      service.ColorForDifficulty(difficulty),
	}
}

func GameweekTitle(id int) string {
	if id <= 0 {
		return "Unscheduled"
	}
	return fmt.Sprintf("Gameweek %d", id)
}

func DifficultyLabel(d int) string {
	if d <= 0 {
		return "?"
	}
	return strconv.Itoa(d)
}

func Kickoff(f models.Fixture) string {
	if f.KickoffTime == nil {
		return "TBC"
	}
	return f.KickoffTime.UTC().Format("Mon 2 Jan 15:04 MST")
}

func RenderFixtures(page *Page, fixtures []models.Fixture, teams map[int]models.Team) error {
	fragment, err := FixturesHTML(fixtures, teams)
	if err != nil {
		return err
	}
	return page.SetHTML(FixturesContainer, fragment)
}

// ResetFixtures puts the fixtures view back to its empty state.
func ResetFixtures(page *Page) error {
	return page.SetHTML(FixturesContainer, fmt.Sprintf(`<p class="placeholder">%s</p>`, FixturesPlaceholder))
}
