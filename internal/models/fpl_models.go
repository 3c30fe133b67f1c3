package models

import (
	"bytes"
	"encoding/json"
	"sort"
	"strconv"
)

type BootstrapResponse struct {
	Teams    []TeamResponse    `json:"teams"`
	Elements []ElementResponse `json:"elements"`
	Events   []EventResponse   `json:"events"`
}

type TeamResponse struct {
	ID        int    `json:"id"`
	Name      string `json:"name"`
	ShortName string `json:"short_name"`
	Stadium   string `json:"stadium"`
}

type ElementResponse struct {
	ID         int    `json:"id"`
	WebName    string `json:"web_name"`
	FirstName  string `json:"first_name"`
	SecondName string `json:"second_name"`
	Team       int    `json:"team"`
}

type EventResponse struct {
	ID           int    `json:"id"`
	Name         string `json:"name"`
	DeadlineTime string `json:"deadline_time"`
	Finished     bool   `json:"finished"`
	IsCurrent    bool   `json:"is_current"`
	IsNext       bool   `json:"is_next"`
}

type FixtureResponse struct {
	ID              int     `json:"id"`
	Event           *int    `json:"event"`
	TeamH           int     `json:"team_h"`
	TeamA           int     `json:"team_a"`
	TeamHDifficulty Rating  `json:"team_h_difficulty"`
	TeamADifficulty Rating  `json:"team_a_difficulty"`
	KickoffTime     *string `json:"kickoff_time"`
	Finished        bool    `json:"finished"`
	Started         *bool   `json:"started"`
}

// Rating is a difficulty value as sent by the API. Anything that is not a
// whole number decodes to 0.
type Rating int

func (r *Rating) UnmarshalJSON(data []byte) error {
	*r = 0
	data = bytes.Trim(bytes.TrimSpace(data), `"`)
	n, err := strconv.Atoi(string(data))
	if err == nil {
		*r = Rating(n)
	}
	return nil
}

type LiveResponse struct {
	Elements LiveElements `json:"elements"`
}

type LiveElement struct {
	ID    int       `json:"id"`
	Stats LiveStats `json:"stats"`
}

type LiveStats struct {
	Minutes     int `json:"minutes"`
	TotalPoints int `json:"total_points"`
	Bonus       int `json:"bonus"`
	BPS         int `json:"bps"`
}

// LiveElements accepts both the list form of the live payload and the
// object form keyed by element id.
type LiveElements []LiveElement

func (l *LiveElements) UnmarshalJSON(data []byte) error {
	data = bytes.TrimSpace(data)
	if len(data) == 0 || bytes.Equal(data, []byte("null")) {
		*l = nil
		return nil
	}

	if data[0] == '[' {
		var list []LiveElement
		if err := json.Unmarshal(data, &list); err != nil {
			return err
		}
		*l = list
		return nil
	}

	var keyed map[string]LiveElement
	if err := json.Unmarshal(data, &keyed); err != nil {
		return err
	}
	list := make([]LiveElement, 0, len(keyed))
	for key, element := range keyed {
		if element.ID == 0 {
			id, err := strconv.Atoi(key)
			if err != nil {
				continue
			}
			element.ID = id
		}
		list = append(list, element)
	}
	sort.Slice(list, func(i, j int) bool {
		return list[i].ID < list[j].ID
	})
	*l = list
	return nil
}

type EntryResponse struct {
	ID                 int    `json:"id"`
	PlayerFirstName    string `json:"player_first_name"`
	PlayerLastName     string `json:"player_last_name"`
	Name               string `json:"name"`
	CurrentEvent       int    `json:"current_event"`
	SummaryEventPoints int    `json:"summary_event_points"`
	SummaryOverallRank int    `json:"summary_overall_rank"`
	TotalTransfers     int    `json:"last_deadline_total_transfers"`
}

type PicksResponse struct {
	EntryHistory EntryHistory `json:"entry_history"`
}

type EntryHistory struct {
	Event              int `json:"event"`
	Points             int `json:"points"`
	TotalPoints        int `json:"total_points"`
	OverallRank        int `json:"overall_rank"`
	EventTransfers     int `json:"event_transfers"`
	EventTransfersCost int `json:"event_transfers_cost"`
}
