package engine

import (
	"github.com/tsmith4014/gridiron-guru-ai/internal/models"
)

// Starter minimums per position. A roster below one of these has a
// critical need there.
var criticalThresholds = map[models.Position]int{
	models.PositionQB:  1,
	models.PositionRB:  2,
	models.PositionWR:  2,
	models.PositionTE:  1,
	models.PositionK:   1,
	models.PositionDST: 1,
}

// Desired totals per position including bench depth. Positions below
// these (but above the critical threshold) are depth needs. K/DST
// never carry depth targets.
var depthTargets = map[models.Position]int{
	models.PositionRB: 4,
	models.PositionWR: 4,
	models.PositionTE: 2,
	models.PositionQB: 2,
}

// eligibilityRule gates drafting a position: always allowed below
// baseCount, and additionally allowed from lateRound on while below
// lateCount.
type eligibilityRule struct {
	baseCount int
	lateRound int
	lateCount int
}

var eligibilityRules = map[models.Position]eligibilityRule{
	models.PositionQB: {baseCount: 1, lateRound: 8, lateCount: 2},
	models.PositionRB: {baseCount: 2, lateRound: 6, lateCount: 5},
	models.PositionWR: {baseCount: 2, lateRound: 6, lateCount: 5},
	models.PositionTE: {baseCount: 1, lateRound: 10, lateCount: 2},
	// K and DST are late-round-only picks, never draftable before 14.
	models.PositionK:   {baseCount: 0, lateRound: 14, lateCount: 1},
	models.PositionDST: {baseCount: 0, lateRound: 14, lateCount: 1},
}

// AnalyzeRoster derives positional counts from the rostered players.
// Players failing validation are ignored rather than failing the pass.
func AnalyzeRoster(roster []models.Player) models.RosterCounts {
	var counts models.RosterCounts
	for _, p := range roster {
		if !p.Position.Valid() {
			continue
		}
		counts.Add(p.Position)
	}
	counts.Normalize()
	return counts
}

// CriticalNeeds returns the positions below their starter minimums.
func CriticalNeeds(counts models.RosterCounts) []models.Position {
	var needs []models.Position
	for _, pos := range models.AllPositions {
		if counts.Count(pos) < criticalThresholds[pos] {
			needs = append(needs, pos)
		}
	}
	return needs
}

// DepthNeeds returns the positions below their desired bench depth.
func DepthNeeds(counts models.RosterCounts) []models.Position {
	var needs []models.Position
	for _, pos := range models.AllPositions {
		target, ok := depthTargets[pos]
		if ok && counts.Count(pos) < target {
			needs = append(needs, pos)
		}
	}
	return needs
}

// IsCriticalNeed reports whether pos is currently a critical need.
func IsCriticalNeed(pos models.Position, counts models.RosterCounts) bool {
	return counts.Count(pos) < criticalThresholds[pos]
}

// IsDepthNeed reports whether pos is currently a depth need.
func IsDepthNeed(pos models.Position, counts models.RosterCounts) bool {
	target, ok := depthTargets[pos]
	return ok && counts.Count(pos) < target
}

// CanDraftPosition is the hard eligibility gate: candidates whose
// position fails it are excluded from the round's recommendation set
// entirely.
func CanDraftPosition(pos models.Position, round int, counts models.RosterCounts) bool {
	rule, ok := eligibilityRules[pos]
	if !ok {
		return false
	}
	count := counts.Count(pos)
	if count < rule.baseCount {
		return true
	}
	return round >= rule.lateRound && count < rule.lateCount
}
