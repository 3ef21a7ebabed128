package engine

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/tsmith4014/gridiron-guru-ai/internal/models"
)

func newTestEngine() *Engine {
	return New(FormulaEstimator{}, DefaultWeights(), testLogger())
}

func TestRecommend_Deterministic(t *testing.T) {
	e := newTestEngine()
	req := models.DraftRequest{
		AvailablePlayers: []models.Player{
			{Name: "RB A", Position: models.PositionRB, Team: "SF", ADP: 3, Tier: 1},
			{Name: "WR A", Position: models.PositionWR, Team: "DAL", ADP: 8, Tier: 1},
			{Name: "TE A", Position: models.PositionTE, Team: "KC", ADP: 15, Tier: 1},
		},
		CurrentRound: 1,
		DraftSlot:    3,
		Teams:        10,
	}

	first := e.Recommend(req)
	second := e.Recommend(req)

	assert.Equal(t, first, second, "same inputs must produce byte-identical output")
}

func TestRecommend_EarlyRoundADPGuard(t *testing.T) {
	e := newTestEngine()
	req := models.DraftRequest{
		AvailablePlayers: []models.Player{
			{Name: "Deep Sleeper", Position: models.PositionRB, Team: "CAR", ADP: 190, Tier: 1},
			{Name: "Consensus One", Position: models.PositionRB, Team: "SF", ADP: 1, Tier: 1},
		},
		CurrentRound: 1,
		DraftSlot:    1,
		Teams:        10,
	}

	resp := e.Recommend(req)
	require.Len(t, resp.Recommendations, 2)

	assert.Equal(t, "Consensus One", resp.Recommendations[0].Player.Name)
	assert.InDelta(t, 557.36, resp.Recommendations[0].Score, 0.01)
	assert.InDelta(t, 250.14, resp.Recommendations[1].Score, 0.01)
}

func TestRecommend_CriticalNeedGateRound5(t *testing.T) {
	// With three WRs rostered a fourth is blocked until round 6, so
	// only the RB survives the gate.
	e := newTestEngine()
	req := models.DraftRequest{
		AvailablePlayers: []models.Player{
			{Name: "WR Four", Position: models.PositionWR, Team: "MIA", ADP: 50, Tier: 3},
			{Name: "RB One", Position: models.PositionRB, Team: "DET", ADP: 50, Tier: 3},
		},
		CurrentRoster: []models.Player{
			{Name: "WR A", Position: models.PositionWR, Team: "DAL", ADP: 10, Tier: 1},
			{Name: "WR B", Position: models.PositionWR, Team: "CIN", ADP: 20, Tier: 1},
			{Name: "WR C", Position: models.PositionWR, Team: "MIN", ADP: 30, Tier: 2},
		},
		CurrentRound: 5,
		DraftSlot:    5,
		Teams:        10,
	}

	resp := e.Recommend(req)
	require.Len(t, resp.Recommendations, 1)
	assert.Equal(t, "RB One", resp.Recommendations[0].Player.Name)
	assert.InDelta(t, 498.8, resp.Recommendations[0].Score, 0.01)
}

func TestRecommend_CriticalNeedDominatesDepth(t *testing.T) {
	// Round 6 admits the fourth WR, but the open RB slots still double
	// the RB's combined score far past it.
	e := newTestEngine()
	req := models.DraftRequest{
		AvailablePlayers: []models.Player{
			{Name: "WR Four", Position: models.PositionWR, Team: "MIA", ADP: 50, Tier: 3},
			{Name: "RB One", Position: models.PositionRB, Team: "DET", ADP: 50, Tier: 3},
		},
		CurrentRoster: []models.Player{
			{Name: "WR A", Position: models.PositionWR, Team: "DAL", ADP: 10, Tier: 1},
			{Name: "WR B", Position: models.PositionWR, Team: "CIN", ADP: 20, Tier: 1},
			{Name: "WR C", Position: models.PositionWR, Team: "MIN", ADP: 30, Tier: 2},
		},
		CurrentRound: 6,
		DraftSlot:    5,
		Teams:        10,
	}

	resp := e.Recommend(req)
	require.Len(t, resp.Recommendations, 2)

	assert.Equal(t, "RB One", resp.Recommendations[0].Player.Name)
	assert.Equal(t, "WR Four", resp.Recommendations[1].Player.Name)
	assert.InDelta(t, 498.8, resp.Recommendations[0].Score, 0.01)
	assert.InDelta(t, 121.4, resp.Recommendations[1].Score, 0.01)
}

func TestRecommend_WRNeedAfterTwoRBs(t *testing.T) {
	e := newTestEngine()
	req := models.DraftRequest{
		AvailablePlayers: []models.Player{
			{Name: "WR Star", Position: models.PositionWR, Team: "DAL", ADP: 4, Tier: 1},
			{Name: "RB Three", Position: models.PositionRB, Team: "KC", ADP: 5, Tier: 1},
			{Name: "WR Solid", Position: models.PositionWR, Team: "CIN", ADP: 40, Tier: 2},
		},
		CurrentRoster: []models.Player{
			{Name: "RB A", Position: models.PositionRB, Team: "SF", ADP: 4, Tier: 1},
			{Name: "RB B", Position: models.PositionRB, Team: "DET", ADP: 30, Tier: 2},
		},
		CurrentRound: 3,
		DraftSlot:    1,
		Teams:        10,
	}

	resp := e.Recommend(req)
	require.Len(t, resp.Recommendations, 2, "third RB must not pass the gate in round 3")

	assert.Equal(t, "WR Star", resp.Recommendations[0].Player.Name)
	for _, rec := range resp.Recommendations {
		assert.NotEqual(t, models.PositionRB, rec.Player.Position)
	}
}

func TestRecommend_KDSTSuppressedEarly(t *testing.T) {
	e := newTestEngine()
	req := models.DraftRequest{
		AvailablePlayers: []models.Player{
			{Name: "Top K", Position: models.PositionK, Team: "BAL", ADP: 130, Tier: 1},
			{Name: "Top DST", Position: models.PositionDST, Team: "SF", ADP: 125, Tier: 1},
			{Name: "WR A", Position: models.PositionWR, Team: "DAL", ADP: 45, Tier: 2},
		},
		CurrentRound: 5,
		DraftSlot:    2,
		Teams:        12,
	}

	resp := e.Recommend(req)
	require.Len(t, resp.Recommendations, 1)
	assert.Equal(t, models.PositionWR, resp.Recommendations[0].Player.Position)
}

func TestRecommend_Round16KickerBeatsBackupQB(t *testing.T) {
	e := newTestEngine()
	req := models.DraftRequest{
		AvailablePlayers: []models.Player{
			{Name: "Backup QB", Position: models.PositionQB, Team: "NE", ADP: 118, Tier: 5},
			{Name: "Late Kicker", Position: models.PositionK, Team: "BAL", ADP: 200, Tier: 6},
		},
		CurrentRoster: []models.Player{
			{Name: "QB A", Position: models.PositionQB, Team: "BUF", ADP: 25, Tier: 1},
			{Name: "RB A", Position: models.PositionRB, Team: "SF", ADP: 3, Tier: 1},
			{Name: "RB B", Position: models.PositionRB, Team: "DET", ADP: 28, Tier: 2},
			{Name: "WR A", Position: models.PositionWR, Team: "DAL", ADP: 9, Tier: 1},
			{Name: "WR B", Position: models.PositionWR, Team: "CIN", ADP: 33, Tier: 2},
			{Name: "TE A", Position: models.PositionTE, Team: "KC", ADP: 20, Tier: 1},
			{Name: "DST A", Position: models.PositionDST, Team: "NYJ", ADP: 160, Tier: 3},
		},
		CurrentRound: 16,
		DraftSlot:    5,
		Teams:        10,
	}

	resp := e.Recommend(req)
	require.Len(t, resp.Recommendations, 2)

	assert.Equal(t, "Late Kicker", resp.Recommendations[0].Player.Name)
	assert.InDelta(t, 255.1, resp.Recommendations[0].Score, 0.01)
	assert.InDelta(t, 82.47, resp.Recommendations[1].Score, 0.01)
}

func TestRecommend_EmptyPool(t *testing.T) {
	e := newTestEngine()
	req := models.DraftRequest{
		AvailablePlayers: []models.Player{},
		CurrentRound:     4,
		DraftSlot:        7,
		Teams:            12,
	}

	resp := e.Recommend(req)

	assert.Empty(t, resp.Recommendations)
	assert.Zero(t, resp.SkippedPlayers)
	assert.NotEmpty(t, resp.Strategy)
	assert.Equal(t, []string{"No candidates remaining in the pool"}, resp.Insights)
	assert.Equal(t, "No candidates remaining to assess", resp.RiskAssessment)
}

func TestRecommend_MalformedCandidatesSkipped(t *testing.T) {
	e := newTestEngine()
	req := models.DraftRequest{
		AvailablePlayers: []models.Player{
			{Name: "", Position: models.PositionRB, ADP: 10, Tier: 1},
			{Name: "Bad Pos", Position: "XX", ADP: 10, Tier: 1},
			{Name: "Bad ADP", Position: models.PositionWR, ADP: 0, Tier: 1},
			{Name: "Fine", Position: models.PositionWR, Team: "DAL", ADP: 12, Tier: 1},
		},
		CurrentRound: 1,
		DraftSlot:    1,
		Teams:        10,
	}

	resp := e.Recommend(req)

	assert.Equal(t, 3, resp.SkippedPlayers)
	require.Len(t, resp.Recommendations, 1)
	assert.Equal(t, "Fine", resp.Recommendations[0].Player.Name)
}

func TestRecommend_CapsAtTen(t *testing.T) {
	e := newTestEngine()
	pool := make([]models.Player, 0, 15)
	for i := 0; i < 15; i++ {
		pool = append(pool, models.Player{
			Name:     "WR " + string(rune('A'+i)),
			Position: models.PositionWR,
			Team:     "DAL",
			ADP:      5 + i,
			Tier:     1 + i/4,
		})
	}
	req := models.DraftRequest{
		AvailablePlayers: pool,
		CurrentRound:     1,
		DraftSlot:        1,
		Teams:            10,
	}

	resp := e.Recommend(req)
	require.Len(t, resp.Recommendations, MaxRecommendations)

	for i := 1; i < len(resp.Recommendations); i++ {
		assert.GreaterOrEqual(t,
			resp.Recommendations[i-1].Score,
			resp.Recommendations[i].Score,
			"recommendations must be sorted descending")
	}
}

func TestRecommend_StableTieOrder(t *testing.T) {
	e := newTestEngine()
	req := models.DraftRequest{
		AvailablePlayers: []models.Player{
			{Name: "First Listed", Position: models.PositionWR, Team: "DAL", ADP: 25, Tier: 2},
			{Name: "Second Listed", Position: models.PositionWR, Team: "CIN", ADP: 25, Tier: 2},
		},
		CurrentRound: 2,
		DraftSlot:    4,
		Teams:        10,
	}

	resp := e.Recommend(req)
	require.Len(t, resp.Recommendations, 2)

	assert.Equal(t, resp.Recommendations[0].Score, resp.Recommendations[1].Score)
	assert.Equal(t, "First Listed", resp.Recommendations[0].Player.Name)
	assert.Equal(t, "Second Listed", resp.Recommendations[1].Player.Name)
}

func TestRecommend_EligibilityInvariant(t *testing.T) {
	e := newTestEngine()
	pool := []models.Player{
		{Name: "QB X", Position: models.PositionQB, Team: "BUF", ADP: 30, Tier: 1},
		{Name: "RB X", Position: models.PositionRB, Team: "SF", ADP: 20, Tier: 1},
		{Name: "WR X", Position: models.PositionWR, Team: "DAL", ADP: 18, Tier: 1},
		{Name: "TE X", Position: models.PositionTE, Team: "KC", ADP: 40, Tier: 2},
		{Name: "K X", Position: models.PositionK, Team: "BAL", ADP: 150, Tier: 2},
		{Name: "DST X", Position: models.PositionDST, Team: "NYJ", ADP: 145, Tier: 2},
	}
	roster := []models.Player{
		{Name: "QB A", Position: models.PositionQB, Team: "PHI", ADP: 35, Tier: 2},
		{Name: "RB A", Position: models.PositionRB, Team: "DET", ADP: 10, Tier: 1},
		{Name: "RB B", Position: models.PositionRB, Team: "ATL", ADP: 40, Tier: 2},
		{Name: "WR A", Position: models.PositionWR, Team: "CIN", ADP: 12, Tier: 1},
	}

	for _, round := range []int{1, 4, 6, 9, 12, 14, 16} {
		req := models.DraftRequest{
			AvailablePlayers: pool,
			CurrentRoster:    roster,
			CurrentRound:     round,
			DraftSlot:        6,
			Teams:            12,
		}
		counts := AnalyzeRoster(roster)

		resp := e.Recommend(req)
		for _, rec := range resp.Recommendations {
			assert.True(t, CanDraftPosition(rec.Player.Position, round, counts),
				"round %d recommended ineligible %s", round, rec.Player.Position)
		}
	}
}

func TestRecommend_ByeWeekOverlapPenalty(t *testing.T) {
	e := newTestEngine()
	req := models.DraftRequest{
		AvailablePlayers: []models.Player{
			{Name: "Conflicted WR", Position: models.PositionWR, Team: "MIA", ADP: 45, Tier: 3, ByeWeek: 9},
			{Name: "Clean WR", Position: models.PositionWR, Team: "LAC", ADP: 45, Tier: 3, ByeWeek: 5},
		},
		CurrentRoster: []models.Player{
			{Name: "RB A", Position: models.PositionRB, Team: "SF", ADP: 3, Tier: 1, ByeWeek: 9},
			{Name: "TE A", Position: models.PositionTE, Team: "KC", ADP: 20, Tier: 1, ByeWeek: 9},
		},
		CurrentRound: 4,
		DraftSlot:    5,
		Teams:        10,
	}

	resp := e.Recommend(req)
	require.Len(t, resp.Recommendations, 2)

	clean := resp.Recommendations[0]
	conflicted := resp.Recommendations[1]
	assert.Equal(t, "Clean WR", clean.Player.Name)
	assert.InDelta(t, 15, clean.Score-conflicted.Score, 1e-9)
	assert.Contains(t, conflicted.Reasoning, "Bye week overlaps with multiple rostered players")
}

func TestRecommend_PrecomputedRosterCounts(t *testing.T) {
	// Supplied counts take precedence over the roster list; derived
	// FLEX/bench fields get recomputed either way.
	e := newTestEngine()
	counts := &models.RosterCounts{QB: 1, RB: 2, WR: 2, TE: 1}
	req := models.DraftRequest{
		AvailablePlayers: []models.Player{
			{Name: "RB Three", Position: models.PositionRB, Team: "KC", ADP: 55, Tier: 3},
			{Name: "QB Two", Position: models.PositionQB, Team: "NE", ADP: 70, Tier: 3},
		},
		CurrentRound: 4,
		DraftSlot:    5,
		Teams:        10,
		RosterCounts: counts,
	}

	resp := e.Recommend(req)

	// RB blocked at two before round 6, QB blocked at one before
	// round 8: nothing should survive.
	assert.Empty(t, resp.Recommendations)
}

func TestNew_NilDefaults(t *testing.T) {
	e := New(nil, DefaultWeights(), nil)
	require.NotNil(t, e)

	resp := e.Recommend(models.DraftRequest{
		AvailablePlayers: []models.Player{
			{Name: "RB A", Position: models.PositionRB, Team: "SF", ADP: 3, Tier: 1},
		},
		CurrentRound: 1,
		DraftSlot:    1,
		Teams:        10,
	})
	assert.Len(t, resp.Recommendations, 1)
}
