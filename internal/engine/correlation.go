package engine

import (
	"github.com/tsmith4014/gridiron-guru-ai/internal/models"
)

// Handcuff bonus tiers keyed by the rostered starter's ADP: insuring
// an elite back is worth more than insuring a depth back.
const (
	eliteHandcuffADP   = 20
	eliteHandcuffBonus = 40
	goodHandcuffADP    = 50
	goodHandcuffBonus  = 30
	depthHandcuffBonus = 20
)

// byeOverlapPenalty applies when a candidate shares a bye week with
// two or more rostered players.
const byeOverlapPenalty = 15.0

// HandcuffScore awards a bonus to RB candidates backing up an RB
// already on the roster. Zero for non-RBs and for no team match.
func HandcuffScore(p models.Player, roster []models.Player) float64 {
	if p.Position != models.PositionRB {
		return 0
	}
	for _, rostered := range roster {
		if rostered.Position != models.PositionRB || rostered.Team != p.Team {
			continue
		}
		switch {
		case rostered.ADP <= eliteHandcuffADP:
			return eliteHandcuffBonus
		case rostered.ADP <= goodHandcuffADP:
			return goodHandcuffBonus
		default:
			return depthHandcuffBonus
		}
	}
	return 0
}

// ByeWeekConflict reports whether the candidate's bye week collides
// with at least two rostered players' byes.
func ByeWeekConflict(p models.Player, roster []models.Player) bool {
	if p.ByeWeek == 0 {
		return false
	}
	overlap := 0
	for _, rostered := range roster {
		if rostered.ByeWeek != 0 && rostered.ByeWeek == p.ByeWeek {
			overlap++
		}
	}
	return overlap >= 2
}
