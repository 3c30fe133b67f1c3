package render

import (
	"fmt"
	"html/template"
	"strings"

	"github.com/omarshaarawi/fplboard/internal/models"
	"github.com/omarshaarawi/fplboard/internal/service"
)

const (
	NoBonus          = "No bonus points awarded yet"
	BonusPlaceholder = "Enter a gameweek to load bonus points"
)

var bonusTemplate = template.Must(template.New("bonus").Parse(
	`{{range .}}<tr data-player-id="{{.PlayerID}}"><td class="player">{{.PlayerName}}</td>` +
		`<td class="team">{{.Team}}</td><td class="bonus">{{.BonusPoints}}</td><td class="bps">{{.BPS}}</td></tr>{{end}}`,
))

type bonusRow struct {
	models.PlayerBonusEntry
	Team string
}

func BonusHTML(entries []models.PlayerBonusEntry, teams map[int]models.Team) (string, error) {
	if len(entries) == 0 {
		return messageRow("empty", NoBonus), nil
	}

	rows := make([]bonusRow, len(entries))
	for i, e := range entries {
		team := "-"
		if e.TeamID > 0 {
			team = service.TeamName(teams, e.TeamID)
		}
		rows[i] = bonusRow{PlayerBonusEntry: e, Team: team}
	}

	var sb strings.Builder
	if err := bonusTemplate.Execute(&sb, rows); err != nil {
		return "", fmt.Errorf("error rendering bonus table: %w", err)
	}
	return sb.String(), nil
}

func messageRow(class, text string) string {
	return fmt.Sprintf(`<tr class="%s"><td colspan="4">%s</td></tr>`, class, template.HTMLEscapeString(text))
}

func RenderBonusTable(page *Page, entries []models.PlayerBonusEntry, teams map[int]models.Team) error {
	fragment, err := BonusHTML(entries, teams)
	if err != nil {
		return err
	}
	return page.SetHTML(BonusTableBody, fragment)
}

func ResetBonusTable(page *Page) error {
	return page.SetHTML(BonusTableBody, messageRow("placeholder", BonusPlaceholder))
}
