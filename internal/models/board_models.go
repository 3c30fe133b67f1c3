package models

import "time"

type Team struct {
	ID        int
	Name      string
	ShortName string
	Stadium   string
}

type Player struct {
	ID         int
	WebName    string
	FirstName  string
	SecondName string
	TeamID     int
}

type Fixture struct {
	ID             int
	GameweekID     int
	HomeTeamID     int
	AwayTeamID     int
	HomeDifficulty int
	AwayDifficulty int
	KickoffTime    *time.Time
	Finished       bool
	Started        bool
}

type PlayerBonusEntry struct {
	PlayerID    int
	PlayerName  string
	TeamID      int
	BonusPoints int
	BPS         int
}

type ManagerSummary struct {
	ManagerID    int
	ManagerName  string
	TeamName     string
	Gameweek     int
	NetPoints    int
	LiveRank     int
	Transfers    int
	TransferCost int
}

// Color is the presentation token for a difficulty rating.
type Color struct {
	Name string
	Hex  string
	Text string
}
