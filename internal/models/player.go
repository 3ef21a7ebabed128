package models

import (
	"fmt"
	"strings"
)

// Position is the closed set of draftable roster positions.
type Position string

const (
	PositionQB  Position = "QB"
	PositionRB  Position = "RB"
	PositionWR  Position = "WR"
	PositionTE  Position = "TE"
	PositionK   Position = "K"
	PositionDST Position = "DST"
)

// AllPositions lists every position in a fixed order, used wherever
// per-position tables need exhaustive iteration.
var AllPositions = []Position{
	PositionQB, PositionRB, PositionWR, PositionTE, PositionK, PositionDST,
}

// ParsePosition normalizes and validates a position string.
func ParsePosition(s string) (Position, error) {
	p := Position(strings.ToUpper(strings.TrimSpace(s)))
	switch p {
	case PositionQB, PositionRB, PositionWR, PositionTE, PositionK, PositionDST:
		return p, nil
	}
	return "", fmt.Errorf("unknown position %q", s)
}

// Valid reports whether p is one of the six draftable positions.
func (p Position) Valid() bool {
	_, err := ParsePosition(string(p))
	return err == nil
}

// IsFlexEligible reports whether the position can fill a FLEX slot.
func (p Position) IsFlexEligible() bool {
	return p == PositionRB || p == PositionWR || p == PositionTE
}

// Player is a draft candidate or rostered player. Immutable during a
// scoring pass.
type Player struct {
	ID                 uint     `gorm:"primaryKey" json:"id,omitempty"`
	Name               string   `gorm:"not null;index" json:"name"`
	Position           Position `gorm:"not null;index" json:"position"`
	Team               string   `gorm:"not null" json:"team"`
	ADP                int      `gorm:"column:adp;not null" json:"adp"`
	Tier               int      `gorm:"not null" json:"tier"`
	Age                int      `json:"age,omitempty"`
	Experience         int      `json:"experience,omitempty"`
	StrengthOfSchedule float64  `json:"strength_of_schedule,omitempty"`
	InjuryHistory      bool     `json:"injury_history,omitempty"`
	ByeWeek            int      `json:"bye_week,omitempty"`
}

// TableName specifies the table name for GORM
func (Player) TableName() string {
	return "players"
}

// Validate checks the fields a candidate must carry to be scored at
// all. Soft attributes (tier out of range, missing age) degrade the
// value estimate instead of failing validation.
func (p Player) Validate() error {
	if strings.TrimSpace(p.Name) == "" {
		return fmt.Errorf("player missing name")
	}
	if !p.Position.Valid() {
		return fmt.Errorf("player %s: unknown position %q", p.Name, p.Position)
	}
	if p.ADP <= 0 {
		return fmt.Errorf("player %s: ADP must be positive, got %d", p.Name, p.ADP)
	}
	return nil
}
