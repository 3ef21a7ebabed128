package engine

import (
	"github.com/tsmith4014/gridiron-guru-ai/internal/models"
)

// ValueEstimator maps a player's static attributes to a baseline
// desirability score, typically 0-300. Implementations must never
// fail: a broken model degrades to a cheaper estimate instead.
type ValueEstimator interface {
	Estimate(p models.Player) float64
}

// Early-round desirability multipliers by position. K/DST are heavily
// discounted because their week-to-week output barely varies.
var positionMultipliers = map[models.Position]float64{
	models.PositionQB:  0.9,
	models.PositionRB:  1.0,
	models.PositionWR:  1.0,
	models.PositionTE:  0.95,
	models.PositionK:   0.3,
	models.PositionDST: 0.3,
}

const (
	formulaBaseScore  = 200.0
	formulaADPWeight  = 0.8
	formulaTierWeight = 15.0
	formulaMaxScore   = 300.0
)

// FormulaEstimator is the deterministic fallback strategy. It is
// always available and is the floor every learned strategy degrades
// to.
type FormulaEstimator struct{}

// Estimate scores a player from ADP, tier, and position alone.
// Malformed tiers degrade further to a minimal ADP-only estimate.
func (FormulaEstimator) Estimate(p models.Player) float64 {
	if p.ADP <= 0 {
		return 0
	}
	if p.Tier < 1 || p.Tier > 6 {
		return minimalEstimate(p)
	}
	mult, ok := positionMultipliers[p.Position]
	if !ok {
		return minimalEstimate(p)
	}

	score := (formulaBaseScore - formulaADPWeight*float64(p.ADP) +
		formulaTierWeight*float64(6-p.Tier)) * mult
	return clamp(score, 0, formulaMaxScore)
}

// minimalEstimate is the last-resort estimate when inputs are too
// malformed even for the formula.
func minimalEstimate(p models.Player) float64 {
	score := formulaBaseScore - float64(p.ADP)
	if score < 0 {
		return 0
	}
	return score
}

func clamp(v, lo, hi float64) float64 {
	if v < lo {
		return lo
	}
	if v > hi {
		return hi
	}
	return v
}
