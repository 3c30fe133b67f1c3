package fpl

import (
	"context"
	"fmt"
	"strconv"

	"github.com/omarshaarawi/fplboard/internal/models"
)

type API struct {
	client *Client
}

func NewAPI(client *Client) *API {
	return &API{client: client}
}

// /bootstrap-static/
func (a *API) Bootstrap(ctx context.Context) (*models.BootstrapResponse, error) {
	var resp models.BootstrapResponse
	if err := a.client.Get(ctx, "/bootstrap-static/", nil, &resp); err != nil {
		return nil, fmt.Errorf("fetching bootstrap: %w", err)
	}
	return &resp, nil
}

// /fixtures/?event={gw}; gw 0 fetches the whole season.
func (a *API) Fixtures(ctx context.Context, gw int) ([]models.FixtureResponse, error) {
	var params map[string]string
	if gw > 0 {
		params = map[string]string{"event": strconv.Itoa(gw)}
	}

	var resp []models.FixtureResponse
	if err := a.client.Get(ctx, "/fixtures/", params, &resp); err != nil {
		return nil, fmt.Errorf("fetching fixtures: %w", err)
	}
	return resp, nil
}

// /event/{gw}/live/
func (a *API) EventLive(ctx context.Context, gw int) (*models.LiveResponse, error) {
	var resp models.LiveResponse
	if err := a.client.Get(ctx, fmt.Sprintf("/event/%d/live/", gw), nil, &resp); err != nil {
		return nil, fmt.Errorf("fetching live gameweek %d: %w", gw, err)
	}
	return &resp, nil
}

// /entry/{id}/
func (a *API) Entry(ctx context.Context, managerID int) (*models.EntryResponse, error) {
	var resp models.EntryResponse
	if err := a.client.Get(ctx, fmt.Sprintf("/entry/%d/", managerID), nil, &resp); err != nil {
		return nil, fmt.Errorf("fetching entry %d: %w", managerID, err)
	}
	return &resp, nil
}

// /entry/{id}/event/{gw}/picks/
func (a *API) EntryPicks(ctx context.Context, managerID, gw int) (*models.PicksResponse, error) {
	var resp models.PicksResponse
	if err := a.client.Get(ctx, fmt.Sprintf("/entry/%d/event/%d/picks/", managerID, gw), nil, &resp); err != nil {
		return nil, fmt.Errorf("fetching picks for entry %d gameweek %d: %w", managerID, gw, err)
	}
	return &resp, nil
}
