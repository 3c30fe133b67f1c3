package controller

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"strconv"

	"github.com/omarshaarawi/fplboard/internal/render"
	"github.com/omarshaarawi/fplboard/internal/service"
)

// resetState leaves an in-flight action alone: its result still lands when
// it completes.
func (f *feature) resetState() {
	f.mu.Lock()
	defer f.mu.Unlock()
	if f.state != Loading {
		f.state = Idle
	}
}

type Fixtures struct {
	*feature
	svc *service.FPLService
}

func NewFixtures(svc *service.FPLService, page *render.Page, alerter Alerter) *Fixtures {
	return &Fixtures{
		feature: newFeature("fixtures", page, alerter, render.FixturesGo),
		svc:     svc,
	}
}

// Load renders every upcoming fixture of gw. A zero gw targets the next
// gameweek known to the bootstrap, or the whole season when none is known.
func (c *Fixtures) Load(ctx context.Context, gw int) error {
	if gw < 0 || gw > MaxGameweek {
		return c.reject(&InputError{
			Field:  "gameweek",
			Value:  strconv.Itoa(gw),
			Reason: fmt.Sprintf("Gameweek must be between 1 and %d.", MaxGameweek),
		})
	}

	return c.run(ctx, func(ctx context.Context) error {
		fixtures, err := c.svc.UpcomingFixtures(ctx, gw, 0)
		if err != nil {
			return err
		}
		return render.RenderFixtures(c.page, fixtures, c.svc.Teams())
	}, c.clear)
}

// Submit renders the remaining fixtures of the team id entered in the team
// field.
func (c *Fixtures) Submit(ctx context.Context) error {
	teamID, err := ParseID("team ID", c.page.Value(render.TeamIDInput), 1, MaxTeamID)
	if err != nil {
		return c.reject(err)
	}

	return c.run(ctx, func(ctx context.Context) error {
		fixtures, err := c.svc.UpcomingFixtures(ctx, 0, teamID)
		if err != nil {
			return err
		}
		return render.RenderFixtures(c.page, fixtures, c.svc.Teams())
	}, c.clear)
}

// RemoveTeam drops the rendered rows of teamName from the fixtures list.
func (c *Fixtures) RemoveTeam(teamName string) int {
	n := c.page.RemoveFixtureRows(teamName)
	slog.Info("Removing team", "team", teamName, "rows", n)
	return n
}

func (c *Fixtures) clear() error {
	return render.ResetFixtures(c.page)
}

func (c *Fixtures) Reset() error {
	c.resetState()
	return errors.Join(
		c.page.SetValue(render.TeamIDInput, ""),
		c.page.SetStatus(""),
		c.clear(),
	)
}

type LiveRank struct {
	*feature
	svc *service.FPLService
}

func NewLiveRank(svc *service.FPLService, page *render.Page, alerter Alerter) *LiveRank {
	return &LiveRank{
		feature: newFeature("live-rank", page, alerter, render.RankGo),
		svc:     svc,
	}
}

func (c *LiveRank) Submit(ctx context.Context) error {
	managerID, err := ParseID("manager ID", c.page.Value(render.ManagerIDInput), 1, MaxManagerID)
	if err != nil {
		return c.reject(err)
	}

	return c.run(ctx, func(ctx context.Context) error {
		summary, err := c.svc.ManagerCard(ctx, managerID)
		if err != nil {
			return err
		}
		return render.RenderManagerCard(c.page, summary)
	}, c.clear)
}

func (c *LiveRank) clear() error {
	return render.ResetManagerCard(c.page)
}

func (c *LiveRank) Reset() error {
	c.resetState()
	return errors.Join(
		c.page.SetValue(render.ManagerIDInput, ""),
		c.page.SetStatus(""),
		c.clear(),
	)
}

type Bonus struct {
	*feature
	svc *service.FPLService
}

func NewBonus(svc *service.FPLService, page *render.Page, alerter Alerter) *Bonus {
	return &Bonus{
		feature: newFeature("bonus", page, alerter, render.BonusGo),
		svc:     svc,
	}
}

// Submit renders the bonus table for the gameweek field, filtered by the
// player search field.
func (c *Bonus) Submit(ctx context.Context) error {
	gw, err := ParseID("gameweek", c.page.Value(render.GameweekInput), 1, MaxGameweek)
	if err != nil {
		return c.reject(err)
	}
	query := c.page.Value(render.PlayerSearchInput)

	return c.run(ctx, func(ctx context.Context) error {
		entries, err := c.svc.BonusTable(ctx, gw, query)
		if err != nil {
			return err
		}
		return render.RenderBonusTable(c.page, entries, c.svc.Teams())
	}, c.clear)
}

func (c *Bonus) clear() error {
	return render.ResetBonusTable(c.page)
}

func (c *Bonus) Reset() error {
	c.resetState()
	return errors.Join(
		c.page.SetValue(render.GameweekInput, ""),
		c.page.SetValue(render.PlayerSearchInput, ""),
		c.page.SetStatus(""),
		c.clear(),
	)
}
