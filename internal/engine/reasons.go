package engine

import (
	"fmt"

	"github.com/tsmith4014/gridiron-guru-ai/internal/models"
)

// buildReasoning templates the human-readable explanation from the
// sub-scores that crossed their thresholds. Order is stable so output
// is deterministic.
func buildReasoning(p models.Player, sub models.SubScores, counts models.RosterCounts, byeConflict bool) []string {
	reasons := make([]string, 0, 6)

	switch {
	case sub.Value > 180:
		reasons = append(reasons, "Elite value projection")
	case sub.Value > 150:
		reasons = append(reasons, "High projected value")
	case sub.Value > 100:
		reasons = append(reasons, "Good projected value")
	}

	switch {
	case IsCriticalNeed(p.Position, counts):
		reasons = append(reasons, fmt.Sprintf("Critical roster need at %s", p.Position))
	case IsDepthNeed(p.Position, counts):
		reasons = append(reasons, fmt.Sprintf("Builds roster depth at %s", p.Position))
	case sub.Need > 50:
		reasons = append(reasons, "Fills positional need")
	}

	if sub.Risk > 70 {
		reasons = append(reasons, "Low risk option")
	} else if sub.Risk < 30 {
		reasons = append(reasons, "Higher risk pick")
	}

	if sub.Handcuff > 30 {
		reasons = append(reasons, "Premium handcuff to a rostered back")
	} else if sub.Handcuff > 0 {
		reasons = append(reasons, "Handcuff value")
	}

	if sub.Round >= 25 {
		reasons = append(reasons, "Value fell well past your pick")
	} else if sub.Round > 15 {
		reasons = append(reasons, "Good value for the round")
	}

	if p.ADP <= 20 {
		reasons = append(reasons, "Elite ADP")
	} else if p.ADP <= 50 {
		reasons = append(reasons, "Strong ADP")
	}

	if p.Tier == 1 {
		reasons = append(reasons, "Tier 1 talent")
	} else if p.Tier == 2 {
		reasons = append(reasons, "Tier 2 talent")
	}

	if byeConflict {
		reasons = append(reasons, "Bye week overlaps with multiple rostered players")
	}

	return reasons
}

// DeterminePriority buckets a recommendation from its combined score,
// confidence and risk factor.
func DeterminePriority(score, confidence, riskFactor float64) models.PriorityLabel {
	switch {
	case score > 180 && confidence > 0.8 && riskFactor < 0.3:
		return models.PriorityTopPick
	case score > 150 && confidence > 0.7 && riskFactor < 0.4:
		return models.PriorityHighPriority
	case score > 120 && confidence > 0.6:
		return models.PriorityGoodValue
	case score > 90:
		return models.PriorityConsider
	default:
		return models.PriorityLowPriority
	}
}

// Confidence estimates how certain the engine is in the pick, from
// round and ADP/tier alignment.
func Confidence(p models.Player, round int) float64 {
	confidence := 0.7
	if round <= 3 && p.ADP <= 30 {
		confidence += 0.2
	}
	if p.Tier == 1 {
		confidence += 0.1
	}
	if (p.Position == models.PositionK || p.Position == models.PositionDST) && round < 10 {
		confidence -= 0.3
	}
	return clamp(confidence, 0, 1)
}

// RiskFactor estimates bust risk from durability and experience.
func RiskFactor(p models.Player) float64 {
	risk := 0.5
	if p.InjuryHistory {
		risk += 0.2
	}
	if p.Experience > 3 {
		risk -= 0.1
	}
	if p.Age > 0 && p.Age < 23 {
		risk += 0.1
	}
	return clamp(risk, 0, 1)
}

// UpsidePotential estimates ceiling from youth and draft capital.
func UpsidePotential(p models.Player) float64 {
	upside := 0.6
	if p.Age > 0 && p.Age < 25 {
		upside += 0.2
	}
	if p.ADP <= 20 {
		upside += 0.1
	}
	if p.Tier == 1 {
		upside += 0.1
	}
	return clamp(upside, 0, 1)
}
