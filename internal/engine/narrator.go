package engine

import (
	"fmt"
	"strings"

	"github.com/tsmith4014/gridiron-guru-ai/internal/models"
)

// Strategy summarizes what the team should be doing this round given
// its remaining needs.
func Strategy(round int, counts models.RosterCounts) string {
	critical := joinPositions(CriticalNeeds(counts))
	depth := joinPositions(DepthNeeds(counts))

	switch PhaseForRound(round) {
	case PhaseEarly:
		if critical != "" {
			return fmt.Sprintf("Early rounds: critical needs - must draft: %s", critical)
		}
		return "Early rounds: focus on best available player"
	case PhaseMid:
		if critical != "" {
			return fmt.Sprintf("Mid rounds: critical needs - must draft: %s", critical)
		}
		if depth != "" {
			return fmt.Sprintf("Mid rounds: build depth at: %s", depth)
		}
		return "Mid rounds: build roster depth and value"
	case PhaseLateMid:
		if critical != "" {
			return fmt.Sprintf("Late-mid rounds: critical needs remaining: %s", critical)
		}
		return "Late-mid rounds: focus on depth, value picks, and handcuffs"
	default:
		if critical != "" {
			return fmt.Sprintf("Late rounds: must fill: %s", critical)
		}
		return "Late rounds: fill remaining needs and optimize bench"
	}
}

// Insights describes the depth of the remaining candidate pool per
// position.
func Insights(available []models.Player) []string {
	if len(available) == 0 {
		return []string{"No candidates remaining in the pool"}
	}

	poolCounts := make(map[models.Position]int)
	for _, p := range available {
		if p.Position.Valid() {
			poolCounts[p.Position]++
		}
	}

	insights := make([]string, 0, len(models.AllPositions))
	for _, pos := range models.AllPositions {
		count, ok := poolCounts[pos]
		if !ok {
			continue
		}
		switch {
		case count < 5:
			insights = append(insights, fmt.Sprintf("Only %d %s players remaining", count, pos))
		case count < 10:
			insights = append(insights, fmt.Sprintf("%s depth is thinning", pos))
		case count > 30:
			insights = append(insights, fmt.Sprintf("Strong %s depth available", pos))
		}
	}
	return insights
}

// NextRoundFocus suggests what to target next, keyed purely off the
// round phase.
func NextRoundFocus(round int) string {
	switch PhaseForRound(round) {
	case PhaseEarly:
		return "Best available player regardless of position"
	case PhaseMid:
		return "Balance positional needs with value"
	case PhaseLateMid:
		return "Build roster depth and consider handcuffs"
	default:
		return "Fill remaining needs and target K/DST"
	}
}

// RiskAssessment characterizes the remaining pool by the share of
// late-board (ADP > 100) players.
func RiskAssessment(available []models.Player) string {
	if len(available) == 0 {
		return "No candidates remaining to assess"
	}

	lateBoard := 0
	for _, p := range available {
		if p.ADP > 100 {
			lateBoard++
		}
	}
	pct := float64(lateBoard) / float64(len(available)) * 100

	switch {
	case pct > 70:
		return "High risk - many late-round players available"
	case pct > 40:
		return "Moderate risk - mixed player quality"
	default:
		return "Low risk - many quality players available"
	}
}

func joinPositions(positions []models.Position) string {
	if len(positions) == 0 {
		return ""
	}
	names := make([]string, len(positions))
	for i, pos := range positions {
		names[i] = string(pos)
	}
	return strings.Join(names, ", ")
}
