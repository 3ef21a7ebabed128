package models

// DraftContext locates the team's next pick inside a snake draft.
type DraftContext struct {
	Round int `json:"round"`
	Slot  int `json:"draft_slot"`
	Teams int `json:"teams"`
}

// ExpectedPick returns the overall pick number this context implies.
// Odd rounds run slot-ascending, even rounds reverse (snake order).
func (dc DraftContext) ExpectedPick() int {
	if dc.Round%2 == 1 {
		return (dc.Round-1)*dc.Teams + dc.Slot
	}
	return dc.Round*dc.Teams - dc.Slot + 1
}

// PriorityLabel buckets a recommendation by how strongly the engine
// endorses it.
type PriorityLabel string

const (
	PriorityTopPick      PriorityLabel = "top_pick"
	PriorityHighPriority PriorityLabel = "high_priority"
	PriorityGoodValue    PriorityLabel = "good_value"
	PriorityConsider     PriorityLabel = "consider"
	PriorityLowPriority  PriorityLabel = "low_priority"
)

// SubScores retains each pipeline stage's contribution for audit.
type SubScores struct {
	Value    float64 `json:"value_score"`
	Need     float64 `json:"need_score"`
	Risk     float64 `json:"risk_score"`
	Handcuff float64 `json:"handcuff_score"`
	Round    float64 `json:"round_score"`
}

// Recommendation is one scored, explained draft candidate. Created
// fresh per scoring pass and never mutated after sorting.
type Recommendation struct {
	Player          Player        `json:"player"`
	Score           float64       `json:"score"`
	Reasoning       []string      `json:"reasoning"`
	Priority        PriorityLabel `json:"priority"`
	Confidence      float64       `json:"confidence"`
	RiskFactor      float64       `json:"risk_factor"`
	UpsidePotential float64       `json:"upside_potential"`
	SubScores       SubScores     `json:"sub_scores"`
}

// DraftRequest is the typed boundary payload for a recommendation
// pass. RosterCounts may be supplied precomputed; when nil the engine
// derives it from CurrentRoster.
type DraftRequest struct {
	AvailablePlayers []Player      `json:"available_players" binding:"required"`
	CurrentRoster    []Player      `json:"current_roster"`
	CurrentRound     int           `json:"current_round" binding:"required,min=1"`
	DraftSlot        int           `json:"draft_slot" binding:"required,min=1"`
	Teams            int           `json:"teams" binding:"required,min=2"`
	RosterCounts     *RosterCounts `json:"roster_counts,omitempty"`
}

// Context returns the request's draft context.
func (r DraftRequest) Context() DraftContext {
	return DraftContext{Round: r.CurrentRound, Slot: r.DraftSlot, Teams: r.Teams}
}

// DraftResponse carries the ranked recommendations plus the narrator
// strings the UI renders alongside them.
type DraftResponse struct {
	Recommendations []Recommendation `json:"recommendations"`
	Strategy        string           `json:"strategy"`
	Insights        []string         `json:"insights"`
	NextRoundFocus  string           `json:"next_round_focus"`
	RiskAssessment  string           `json:"risk_assessment"`
	SkippedPlayers  int              `json:"skipped_players"`
}
