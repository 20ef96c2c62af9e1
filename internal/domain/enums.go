package domain

import "strings"

// Difficulty is the user's self-assessed recall difficulty for a card.
type Difficulty string

const (
	DifficultyEasy   Difficulty = "EASY"
	DifficultyMedium Difficulty = "MEDIUM"
	DifficultyHard   Difficulty = "HARD"
)

func (d Difficulty) String() string { return string(d) }

func (d Difficulty) IsValid() bool {
	switch d {
	case DifficultyEasy, DifficultyMedium, DifficultyHard:
		return true
	}
	return false
}

// ParseDifficulty accepts a difficulty name in any case ("easy", "Medium", "HARD").
// The result is not validated; callers decide how to treat unknown values.
func ParseDifficulty(s string) Difficulty {
	return Difficulty(strings.ToUpper(strings.TrimSpace(s)))
}

// SessionState is the lifecycle state of a study session.
type SessionState string

const (
	SessionStateActive   SessionState = "ACTIVE"
	SessionStatePaused   SessionState = "PAUSED"
	SessionStateComplete SessionState = "COMPLETE"
)

func (s SessionState) String() string { return string(s) }

func (s SessionState) IsValid() bool {
	switch s {
	case SessionStateActive, SessionStatePaused, SessionStateComplete:
		return true
	}
	return false
}

// Direction is a manual navigation step inside a study session.
type Direction string

const (
	DirectionPrevious Direction = "PREVIOUS"
	DirectionNext     Direction = "NEXT"
)

func (d Direction) String() string { return string(d) }

// ParseDirection accepts a direction name in any case. The result is not validated.
func ParseDirection(s string) Direction {
	return Direction(strings.ToUpper(strings.TrimSpace(s)))
}

func (d Direction) IsValid() bool {
	switch d {
	case DirectionPrevious, DirectionNext:
		return true
	}
	return false
}

// StoreDriver selects the Card Store implementation.
type StoreDriver string

const (
	StoreDriverPostgres StoreDriver = "postgres"
	StoreDriverSQLite   StoreDriver = "sqlite"
)

func (d StoreDriver) IsValid() bool {
	switch d {
	case StoreDriverPostgres, StoreDriverSQLite:
		return true
	}
	return false
}
