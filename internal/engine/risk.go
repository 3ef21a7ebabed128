package engine

import (
	"github.com/tsmith4014/gridiron-guru-ai/internal/models"
)

const (
	riskBaseScore = 50.0

	// Reach detection inside the risk score uses a rough expected
	// pick of round*10 plus this margin.
	riskReachMargin = 30

	// Round score thresholds for steals and reaches against the exact
	// snake-draft expected pick.
	roundValueMargin = 20
)

// RiskScore rates how safe a pick is for the round. Higher is safer.
// Floored at zero.
func RiskScore(p models.Player, round int) float64 {
	score := riskBaseScore

	switch {
	case round <= 3:
		// Early rounds tolerate no ADP slippage.
		if p.ADP > 50 {
			score -= 40
		}
		if p.ADP > 100 {
			score -= 60
		}
	case round <= 7:
		if p.ADP > 100 {
			score -= 30
		}
	case round >= 12:
		if p.ADP <= 100 {
			score += 20
		}
	}

	if (p.Position == models.PositionK || p.Position == models.PositionDST) && round < 12 {
		score -= 50
	}

	if p.Tier >= 1 && p.Tier <= 6 {
		score += float64(6-p.Tier) * 8
	}

	// Reach detection against a round-scaled pick estimate.
	expected := round * 10
	if p.ADP > expected+riskReachMargin {
		score -= 25
	}

	if score < 0 {
		return 0
	}
	return score
}

// RoundScore rewards value that fell past the team's expected pick and
// penalizes reaches, with a late-round scarcity bonus for K/DST.
func RoundScore(p models.Player, ctx models.DraftContext) float64 {
	score := 0.0
	expected := ctx.ExpectedPick()

	if p.ADP < expected-roundValueMargin {
		score += 25 // value fell to you
	} else if p.ADP > expected+roundValueMargin {
		score -= 15 // reach
	}

	if ctx.Round >= 8 && (p.Position == models.PositionK || p.Position == models.PositionDST) {
		score += 20
	}

	return score
}
