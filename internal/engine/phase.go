package engine

// RoundPhase labels the stage of the draft. It is derived solely from
// the round number and is non-decreasing as the draft progresses.
type RoundPhase int

const (
	PhaseEarly RoundPhase = iota // rounds 1-3
	PhaseMid                     // rounds 4-7
	PhaseLateMid                 // rounds 8-11
	PhaseLate                    // rounds 12+
)

// PhaseForRound maps a round number to its phase.
func PhaseForRound(round int) RoundPhase {
	switch {
	case round <= 3:
		return PhaseEarly
	case round <= 7:
		return PhaseMid
	case round <= 11:
		return PhaseLateMid
	default:
		return PhaseLate
	}
}

func (p RoundPhase) String() string {
	switch p {
	case PhaseEarly:
		return "early"
	case PhaseMid:
		return "mid"
	case PhaseLateMid:
		return "late_mid"
	default:
		return "late"
	}
}
