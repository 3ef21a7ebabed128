package models

// Starter slots for a standard lineup: 1 QB, 2 RB, 2 WR, 1 TE, 1 K,
// 1 DST plus one FLEX filled from RB/WR/TE overflow.
const FixedStarterCount = 8

// RosterCounts tracks how many players a team has drafted at each
// position, plus the derived FLEX and bench usage.
type RosterCounts struct {
	QB    int `json:"QB"`
	RB    int `json:"RB"`
	WR    int `json:"WR"`
	TE    int `json:"TE"`
	K     int `json:"K"`
	DST   int `json:"DST"`
	Flex  int `json:"FLEX"`
	Bench int `json:"BENCH"`
}

// Count returns the number of rostered players at pos.
func (rc RosterCounts) Count(pos Position) int {
	switch pos {
	case PositionQB:
		return rc.QB
	case PositionRB:
		return rc.RB
	case PositionWR:
		return rc.WR
	case PositionTE:
		return rc.TE
	case PositionK:
		return rc.K
	case PositionDST:
		return rc.DST
	}
	return 0
}

// Add increments the count for pos.
func (rc *RosterCounts) Add(pos Position) {
	switch pos {
	case PositionQB:
		rc.QB++
	case PositionRB:
		rc.RB++
	case PositionWR:
		rc.WR++
	case PositionTE:
		rc.TE++
	case PositionK:
		rc.K++
	case PositionDST:
		rc.DST++
	}
}

// TotalPlayers returns the number of players on the roster.
func (rc RosterCounts) TotalPlayers() int {
	return rc.QB + rc.RB + rc.WR + rc.TE + rc.K + rc.DST
}

// FlexEligible returns how many RB/WR/TE beyond their starter slots
// can fill the FLEX position.
func (rc RosterCounts) FlexEligible() int {
	n := (rc.RB - 2) + (rc.WR - 2) + (rc.TE - 1)
	if n < 0 {
		return 0
	}
	return n
}

// BenchUsed returns how many bench spots the roster consumes.
func (rc RosterCounts) BenchUsed() int {
	n := rc.TotalPlayers() - FixedStarterCount - rc.FlexEligible()
	if n < 0 {
		return 0
	}
	return n
}

// Normalize recomputes the derived FLEX and bench fields from the
// positional counts.
func (rc *RosterCounts) Normalize() {
	rc.Flex = rc.FlexEligible()
	rc.Bench = rc.BenchUsed()
}
