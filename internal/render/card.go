package render

import (
	"fmt"

	"github.com/omarshaarawi/fplboard/internal/models"
	"golang.org/x/text/language"
	"golang.org/x/text/message"
)

var numbers = message.NewPrinter(language.English)

type cardField struct {
	selector string
	value    string
}

func cardFields(s models.ManagerSummary) []cardField {
	transfers := fmt.Sprintf("%d", s.Transfers)
	if s.TransferCost > 0 {
		transfers = fmt.Sprintf("%d (-%d)", s.Transfers, s.TransferCost)
	}
	rank := Placeholder
	if s.LiveRank > 0 {
		rank = numbers.Sprintf("%d", s.LiveRank)
	}
	return []cardField{
		{ManagerName, orPlaceholder(s.ManagerName)},
		{TeamName, orPlaceholder(s.TeamName)},
		{NetPoints, fmt.Sprintf("%d", s.NetPoints)},
		{LiveRank, rank},
		{Transfers, transfers},
	}
}

func orPlaceholder(s string) string {
	if s == "" {
		return Placeholder
	}
	return s
}

// RenderManagerCard fills every labeled field of the live rank card.
func RenderManagerCard(page *Page, s models.ManagerSummary) error {
	for _, f := range cardFields(s) {
		if err := page.SetText(f.selector, f.value); err != nil {
			return err
		}
	}
	return nil
}

// ResetManagerCard returns every card field to its placeholder.
func ResetManagerCard(page *Page) error {
	for _, sel := range []string{ManagerName, TeamName, NetPoints, LiveRank, Transfers} {
		if err := page.SetText(sel, Placeholder); err != nil {
			return err
		}
	}
	return nil
}
