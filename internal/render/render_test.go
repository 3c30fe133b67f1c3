package render

import (
	"strings"
	"testing"
	"time"

	"github.com/PuerkitoBio/goquery"
	"github.com/omarshaarawi/fplboard/internal/models"
	"github.com/omarshaarawi/fplboard/internal/service"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

var testTeams = map[int]models.Team{
	1: {ID: 1, Name: "Arsenal"},
	2: {ID: 2, Name: "Chelsea"},
}

func newTestPage(t *testing.T) *Page {
	t.Helper()
	page, err := NewPage()
	require.NoError(t, err)
	return page
}

func container(t *testing.T, page *Page, selector string) *goquery.Selection {
	t.Helper()
	inner, err := page.InnerHTML(selector)
	require.NoError(t, err)
	doc, err := goquery.NewDocumentFromReader(strings.NewReader("<table><tbody>" + inner + "</tbody></table>"))
	require.NoError(t, err)
	return doc.Selection
}

func TestNewPageHasControls(t *testing.T) {
	page := newTestPage(t)
	for _, sel := range []string{
		StatusElement, FixturesContainer, TeamIDInput, FixturesGo, FixturesReset,
		ManagerIDInput, RankGo, RankReset, ManagerName, TeamName, NetPoints, LiveRank, Transfers,
		GameweekInput, PlayerSearchInput, BonusGo, BonusReset, BonusTableBody,
	} {
		_, err := page.InnerHTML(sel)
		assert.NoError(t, err, sel)
	}
	assert.Contains(t, page.Text(FixturesContainer), "Loading")
}

func TestRenderFixturesScenario(t *testing.T) {
	page := newTestPage(t)
	fixtures := service.SelectUpcomingFixtures([]models.FixtureResponse{
		{ID: 1, Event: intPtr(5), TeamH: 1, TeamA: 2, TeamHDifficulty: 2, TeamADifficulty: 4},
	}, 0)

	require.NoError(t, RenderFixtures(page, fixtures, testTeams))

	html, err := page.InnerHTML(FixturesContainer)
	require.NoError(t, err)
	doc, err := goquery.NewDocumentFromReader(strings.NewReader(html))
	require.NoError(t, err)

	assert.Equal(t, "Gameweek 5", doc.Find("section.gameweek h3").Text())

	sides := doc.Find("li.fixture .side")
	require.Equal(t, 2, sides.Length())

	home := sides.Eq(0)
	assert.Equal(t, "Arsenal (H)", home.Find(".team").Text())
	assert.Equal(t, "2", home.Find(".fdr").Text())
	assert.True(t, home.Find(".fdr").HasClass("fdr-green"))
	assert.Contains(t, home.Find(".fdr").AttrOr("style", ""), service.ColorGreen.Hex)

	away := sides.Eq(1)
	assert.Equal(t, "Chelsea (A)", away.Find(".team").Text())
	assert.Equal(t, "4", away.Find(".fdr").Text())
	assert.True(t, away.Find(".fdr").HasClass("fdr-orange"))
	assert.Contains(t, away.Find(".fdr").AttrOr("style", ""), service.ColorOrange.Hex)

	assert.Equal(t, "TBC", doc.Find(".kickoff").Text())
}

func TestRenderFixturesUnknownTeam(t *testing.T) {
	html, err := FixturesHTML([]models.Fixture{{ID: 1, GameweekID: 3, HomeTeamID: 1, AwayTeamID: 17}}, testTeams)
	require.NoError(t, err)
	assert.Contains(t, html, "Team ID 17 (A)")
}

func TestRenderFixturesGroupsByGameweek(t *testing.T) {
	kickoff := time.Date(2024, 9, 21, 14, 0, 0, 0, time.UTC)
	html, err := FixturesHTML([]models.Fixture{
		{ID: 1, GameweekID: 5, HomeTeamID: 1, AwayTeamID: 2, KickoffTime: &kickoff},
		{ID: 2, GameweekID: 5, HomeTeamID: 2, AwayTeamID: 1},
		{ID: 3, GameweekID: 6, HomeTeamID: 1, AwayTeamID: 2},
	}, testTeams)
	require.NoError(t, err)

	doc, err := goquery.NewDocumentFromReader(strings.NewReader(html))
	require.NoError(t, err)
	groups := doc.Find("section.gameweek")
	require.Equal(t, 2, groups.Length())
	assert.Equal(t, 2, groups.Eq(0).Find("li.fixture").Length())
	assert.Equal(t, "Gameweek 6", groups.Eq(1).Find("h3").Text())
	assert.Equal(t, "Sat 21 Sep 14:00 UTC", groups.Eq(0).Find(".kickoff").First().Text())
}

func TestRenderFixturesEmpty(t *testing.T) {
	page := newTestPage(t)
	require.NoError(t, RenderFixtures(page, nil, testTeams))
	assert.Equal(t, NoFixtures, page.Text(FixturesContainer))
}

func TestRenderIsIdempotent(t *testing.T) {
	page := newTestPage(t)
	fixtures := []models.Fixture{{ID: 1, GameweekID: 5, HomeTeamID: 1, AwayTeamID: 2, HomeDifficulty: 2, AwayDifficulty: 4}}
	entries := []models.PlayerBonusEntry{{PlayerID: 10, PlayerName: "Saka", TeamID: 1, BonusPoints: 3, BPS: 40}}

	require.NoError(t, RenderFixtures(page, fixtures, testTeams))
	require.NoError(t, RenderBonusTable(page, entries, testTeams))
	first, err := page.HTML()
	require.NoError(t, err)

	require.NoError(t, RenderFixtures(page, fixtures, testTeams))
	require.NoError(t, RenderBonusTable(page, entries, testTeams))
	second, err := page.HTML()
	require.NoError(t, err)

	assert.Equal(t, first, second)
	assert.Equal(t, 1, strings.Count(second, `data-fixture-id="1"`))
}

func TestRemoveFixtureRows(t *testing.T) {
	page := newTestPage(t)
	teams := map[int]models.Team{1: {ID: 1, Name: "Arsenal"}, 2: {ID: 2, Name: "Chelsea"}, 3: {ID: 3, Name: "Fulham"}}
	require.NoError(t, RenderFixtures(page, []models.Fixture{
		{ID: 1, GameweekID: 5, HomeTeamID: 1, AwayTeamID: 2},
		{ID: 2, GameweekID: 5, HomeTeamID: 3, AwayTeamID: 1},
		{ID: 3, GameweekID: 5, HomeTeamID: 2, AwayTeamID: 3},
	}, teams))

	assert.Equal(t, 2, page.RemoveFixtureRows("Arsenal"))
	assert.Equal(t, 0, page.RemoveFixtureRows("Arsenal"))

	html, err := page.InnerHTML(FixturesContainer)
	require.NoError(t, err)
	assert.Contains(t, html, `data-fixture-id="3"`)
	assert.NotContains(t, html, `data-fixture-id="1"`)
}

func TestManagerCard(t *testing.T) {
	page := newTestPage(t)
	require.NoError(t, RenderManagerCard(page, models.ManagerSummary{
		ManagerName: "Jane Doe", TeamName: "Doe FC", NetPoints: 57, LiveRank: 1234567, Transfers: 2, TransferCost: 4,
	}))

	assert.Equal(t, "Jane Doe", page.Text(ManagerName))
	assert.Equal(t, "Doe FC", page.Text(TeamName))
	assert.Equal(t, "57", page.Text(NetPoints))
	assert.Equal(t, "1,234,567", page.Text(LiveRank))
	assert.Equal(t, "2 (-4)", page.Text(Transfers))

	require.NoError(t, ResetManagerCard(page))
	for _, sel := range []string{ManagerName, TeamName, NetPoints, LiveRank, Transfers} {
		assert.Equal(t, Placeholder, page.Text(sel))
	}
}

func TestRenderBonusTable(t *testing.T) {
	page := newTestPage(t)
	require.NoError(t, RenderBonusTable(page, []models.PlayerBonusEntry{
		{PlayerID: 10, PlayerName: "Saka", TeamID: 1, BonusPoints: 3, BPS: 40},
		{PlayerID: 99, PlayerName: service.UnknownPlayer, BonusPoints: 1, BPS: 12},
	}, testTeams))

	body := container(t, page, BonusTableBody)
	rows := body.Find("tbody tr")
	require.Equal(t, 2, rows.Length())
	assert.Equal(t, "Saka", rows.Eq(0).Find(".player").Text())
	assert.Equal(t, "Arsenal", rows.Eq(0).Find(".team").Text())
	assert.Equal(t, "3", rows.Eq(0).Find(".bonus").Text())
	assert.Equal(t, "-", rows.Eq(1).Find(".team").Text())

	require.NoError(t, RenderBonusTable(page, nil, testTeams))
	assert.Equal(t, NoBonus, page.Text(BonusTableBody))

	require.NoError(t, ResetBonusTable(page))
	assert.Equal(t, BonusPlaceholder, page.Text(BonusTableBody))
}

func TestControlState(t *testing.T) {
	page := newTestPage(t)
	assert.False(t, page.Disabled(RankGo))
	require.NoError(t, page.SetDisabled(RankGo, true))
	assert.True(t, page.Disabled(RankGo))
	require.NoError(t, page.SetDisabled(RankGo, false))
	assert.False(t, page.Disabled(RankGo))

	require.NoError(t, page.SetValue(ManagerIDInput, "12345"))
	assert.Equal(t, "12345", page.Value(ManagerIDInput))

	assert.Error(t, page.SetText("#missing", "x"))
}

func TestMarkdown(t *testing.T) {
	md := FixturesMarkdown([]models.Fixture{{ID: 1, GameweekID: 5, HomeTeamID: 1, AwayTeamID: 2, HomeDifficulty: 2, AwayDifficulty: 4}}, testTeams)
	assert.Contains(t, md, "*Gameweek 5*")
	assert.Contains(t, md, "Arsenal (H) FDR 2 v Chelsea (A) FDR 4")
	assert.Contains(t, FixturesMarkdown(nil, testTeams), NoFixtures)

	card := ManagerCardMarkdown(models.ManagerSummary{ManagerName: "Jane_Doe", LiveRank: 1000})
	assert.Contains(t, card, "Manager: Jane\\_Doe")
	assert.Contains(t, card, "Live rank: 1,000")

	bonus := BonusMarkdown(5, []models.PlayerBonusEntry{{PlayerName: "Saka", TeamID: 1, BonusPoints: 3, BPS: 40}}, testTeams)
	assert.Contains(t, bonus, "3 pts - *Saka* (Arsenal), 40 BPS")
	assert.Contains(t, BonusMarkdown(5, nil, testTeams), NoBonus)
}

func intPtr(v int) *int { return &v }
