package engine

import (
	"github.com/tsmith4014/gridiron-guru-ai/internal/models"
)

// Critical-need scores dominate the combiner so that an open starter
// slot is filled ahead of raw value.
var criticalNeedScores = map[models.Position]float64{
	models.PositionQB:  500,
	models.PositionRB:  400,
	models.PositionWR:  400,
	models.PositionTE:  350,
	models.PositionK:   300,
	models.PositionDST: 300,
}

// depthStep is one rung of a graduated depth schedule: the score
// awarded while the positional count is still below the threshold.
type depthStep struct {
	below int
	score float64
}

// Depth schedules shrink as the count approaches the target; the last
// entry is the residual once the target is met.
var depthSchedules = map[models.Position][]depthStep{
	models.PositionRB: {{below: 3, score: 120}, {below: 4, score: 80}, {score: 20}},
	models.PositionWR: {{below: 3, score: 120}, {below: 4, score: 80}, {score: 20}},
	models.PositionTE: {{below: 2, score: 100}, {score: 15}},
	models.PositionQB: {{below: 2, score: 80}, {score: 10}},
}

// kdstNeedRound is the round from which an unfilled K/DST slot starts
// scoring at all outside the critical path.
const kdstNeedRound = 14

// NeedScore weighs how much the roster wants pos in the given round.
func NeedScore(pos models.Position, counts models.RosterCounts, round int) float64 {
	if IsCriticalNeed(pos, counts) {
		return criticalNeedScores[pos]
	}

	if IsDepthNeed(pos, counts) {
		count := counts.Count(pos)
		for _, step := range depthSchedules[pos] {
			if step.below == 0 || count < step.below {
				return step.score
			}
		}
	}

	// Position not needed. K/DST are worthless early no matter what.
	if (pos == models.PositionK || pos == models.PositionDST) && round < kdstNeedRound {
		return 0
	}
	return 5
}
