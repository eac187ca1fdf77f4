package models

import "time"

// Match represents a scheduled fixture between two clubs. ScoutingClubs
// lists the clubs actively scouting this match; the ids are plain
// references and are not validated against the club collection.
type Match struct {
	ID            uint      `json:"id" gorm:"primaryKey;autoIncrement"`
	HomeTeamID    uint      `json:"homeTeamId" validate:"required"`
	AwayTeamID    uint      `json:"awayTeamId" validate:"required"`
	Date          time.Time `json:"date" validate:"required"`
	Venue         string    `json:"venue" validate:"required,max=200"`
	League        string    `json:"league" validate:"required,max=100"`
	ScoutingClubs []uint    `json:"scoutingClubs" gorm:"serializer:json"`
	CreatedAt     time.Time `json:"createdAt"`
}

// MatchDetail is the read-side view of a match with team and scouting
// club references resolved to full records. Ids that do not resolve are
// dropped from ScoutingClubs rather than reported as errors.
type MatchDetail struct {
	Match
	HomeTeam      *Club  `json:"homeTeam,omitempty"`
	AwayTeam      *Club  `json:"awayTeam,omitempty"`
	ScoutingClubs []Club `json:"scoutingClubs"`
}
