package render

import (
	"bytes"
	_ "embed"
	"fmt"
	"sync"

	"github.com/PuerkitoBio/goquery"
)

//go:embed page.html
var pageHTML []byte

const (
	StatusElement = "#status"

	FixturesContainer = "#fixtures-container"
	TeamIDInput       = "#team-id"
	FixturesGo        = "#fixtures-go"
	FixturesReset     = "#fixtures-reset"

	ManagerIDInput = "#manager-id"
	RankGo         = "#rank-go"
	RankReset      = "#rank-reset"
	ManagerName    = "#manager-name"
	TeamName       = "#team-name"
	NetPoints      = "#net-points"
	LiveRank       = "#live-rank-value"
	Transfers      = "#transfers"

	GameweekInput     = "#gameweek-id"
	PlayerSearchInput = "#player-search"
	BonusGo           = "#bonus-go"
	BonusReset        = "#bonus-reset"
	BonusTableBody    = "#bonus-table-body"

	Placeholder = "--"
)

// Page is the board's document. It is the only type that touches
// presentation state; every mutation replaces an element's content whole.
type Page struct {
	doc *goquery.Document
	mu  sync.Mutex
}

func NewPage() (*Page, error) {
	doc, err := goquery.NewDocumentFromReader(bytes.NewReader(pageHTML))
	if err != nil {
		return nil, fmt.Errorf("error parsing page: %w", err)
	}
	return &Page{doc: doc}, nil
}

func (p *Page) find(selector string) (*goquery.Selection, error) {
	sel := p.doc.Find(selector)
	if sel.Length() == 0 {
		return nil, fmt.Errorf("element %q not found", selector)
	}
	return sel, nil
}

// SetHTML replaces the content of selector with fragment.
func (p *Page) SetHTML(selector, fragment string) error {
	p.mu.Lock()
	defer p.mu.Unlock()
	sel, err := p.find(selector)
	if err != nil {
		return err
	}
	sel.SetHtml(fragment)
	return nil
}

func (p *Page) SetText(selector, text string) error {
	p.mu.Lock()
	defer p.mu.Unlock()
	sel, err := p.find(selector)
	if err != nil {
		return err
	}
	sel.SetText(text)
	return nil
}

func (p *Page) Text(selector string) string {
	p.mu.Lock()
	defer p.mu.Unlock()
	return p.doc.Find(selector).Text()
}

func (p *Page) InnerHTML(selector string) (string, error) {
	p.mu.Lock()
	defer p.mu.Unlock()
	sel, err := p.find(selector)
	if err != nil {
		return "", err
	}
	return sel.Html()
}

func (p *Page) SetValue(selector, value string) error {
	p.mu.Lock()
	defer p.mu.Unlock()
	sel, err := p.find(selector)
	if err != nil {
		return err
	}
	sel.SetAttr("value", value)
	return nil
}

func (p *Page) Value(selector string) string {
	p.mu.Lock()
	defer p.mu.Unlock()
	return p.doc.Find(selector).AttrOr("value", "")
}

func (p *Page) SetDisabled(selector string, disabled bool) error {
	p.mu.Lock()
	defer p.mu.Unlock()
	sel, err := p.find(selector)
	if err != nil {
		return err
	}
	if disabled {
		sel.SetAttr("disabled", "disabled")
	} else {
		sel.RemoveAttr("disabled")
	}
	return nil
}

func (p *Page) Disabled(selector string) bool {
	p.mu.Lock()
	defer p.mu.Unlock()
	_, ok := p.doc.Find(selector).Attr("disabled")
	return ok
}

func (p *Page) SetStatus(text string) error {
	return p.SetText(StatusElement, text)
}

// RemoveFixtureRows drops every fixture row in which teamName plays and
// returns how many rows were removed.
func (p *Page) RemoveFixtureRows(teamName string) int {
	p.mu.Lock()
	defer p.mu.Unlock()
	rows := p.doc.Find(FixturesContainer + " li.fixture").FilterFunction(func(_ int, row *goquery.Selection) bool {
		return row.Find("[data-team-name]").FilterFunction(func(_ int, team *goquery.Selection) bool {
			return team.AttrOr("data-team-name", "") == teamName
		}).Length() > 0
	})
	n := rows.Length()
	rows.Remove()
	return n
}

// HTML serializes the whole document.
func (p *Page) HTML() (string, error) {
	p.mu.Lock()
	defer p.mu.Unlock()
	return goquery.OuterHtml(p.doc.Selection)
}
