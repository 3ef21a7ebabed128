package engine

import (
	"sort"

	"github.com/google/uuid"
	"github.com/sirupsen/logrus"

	"github.com/tsmith4014/gridiron-guru-ai/internal/models"
)

// MaxRecommendations caps the ranked output per scoring pass.
const MaxRecommendations = 10

// criticalNeedMultiplier doubles the combined score of a candidate
// filling an open starter slot, applied before the ADP sanity bands.
const criticalNeedMultiplier = 2.0

// Weights combines the five sub-scores into the final ranking score.
// The defaults are tunable via configuration, not load-bearing
// invariants.
type Weights struct {
	Value    float64
	Need     float64
	Risk     float64
	Handcuff float64
	Round    float64
}

// DefaultWeights returns the published scoring weights.
func DefaultWeights() Weights {
	return Weights{
		Value:    0.4,
		Need:     0.4,
		Risk:     0.1,
		Handcuff: 0.05,
		Round:    0.05,
	}
}

// Engine is the recommendation scoring pipeline. It holds no mutable
// state across calls beyond the injected estimator, so concurrent
// passes need no coordination.
type Engine struct {
	estimator ValueEstimator
	weights   Weights
	log       *logrus.Logger
}

// New constructs an engine around the given value estimator. A nil
// estimator falls back to the deterministic formula.
func New(estimator ValueEstimator, weights Weights, log *logrus.Logger) *Engine {
	if estimator == nil {
		estimator = FormulaEstimator{}
	}
	if log == nil {
		log = logrus.New()
	}
	return &Engine{estimator: estimator, weights: weights, log: log}
}

// Recommend runs one full scoring pass: gate, score, combine, explain
// and rank the candidate pool against the current roster. Malformed
// candidates are skipped and counted, never fatal.
func (e *Engine) Recommend(req models.DraftRequest) models.DraftResponse {
	runID := uuid.New().String()
	ctx := req.Context()
	log := e.log.WithFields(logrus.Fields{
		"scoring_run_id": runID,
		"round":          ctx.Round,
		"draft_slot":     ctx.Slot,
		"teams":          ctx.Teams,
		"pool_size":      len(req.AvailablePlayers),
		"roster_size":    len(req.CurrentRoster),
	})

	counts := e.rosterCounts(req)
	log.WithFields(logrus.Fields{
		"critical_needs": CriticalNeeds(counts),
		"depth_needs":    DepthNeeds(counts),
		"phase":          PhaseForRound(ctx.Round).String(),
	}).Debug("Starting scoring pass")

	recs := make([]models.Recommendation, 0, len(req.AvailablePlayers))
	skipped := 0

	for _, player := range req.AvailablePlayers {
		if err := player.Validate(); err != nil {
			skipped++
			log.WithError(err).Debug("Skipping malformed candidate")
			continue
		}
		if !CanDraftPosition(player.Position, ctx.Round, counts) {
			continue
		}
		recs = append(recs, e.score(player, req.CurrentRoster, counts, ctx))
	}

	// Stable sort keeps input order on exact score ties.
	sort.SliceStable(recs, func(i, j int) bool {
		return recs[i].Score > recs[j].Score
	})
	if len(recs) > MaxRecommendations {
		recs = recs[:MaxRecommendations]
	}

	log.WithFields(logrus.Fields{
		"recommendations": len(recs),
		"skipped":         skipped,
	}).Info("Scoring pass completed")

	return models.DraftResponse{
		Recommendations: recs,
		Strategy:        Strategy(ctx.Round, counts),
		Insights:        Insights(req.AvailablePlayers),
		NextRoundFocus:  NextRoundFocus(ctx.Round),
		RiskAssessment:  RiskAssessment(req.AvailablePlayers),
		SkippedPlayers:  skipped,
	}
}

// rosterCounts uses the caller's precomputed counts when supplied,
// otherwise derives them from the roster. Derived fields are always
// recomputed.
func (e *Engine) rosterCounts(req models.DraftRequest) models.RosterCounts {
	if req.RosterCounts != nil {
		counts := *req.RosterCounts
		counts.Normalize()
		return counts
	}
	return AnalyzeRoster(req.CurrentRoster)
}

// score computes every sub-score for one eligible candidate and
// assembles the explained recommendation.
func (e *Engine) score(p models.Player, roster []models.Player, counts models.RosterCounts, ctx models.DraftContext) models.Recommendation {
	sub := models.SubScores{
		Value:    e.estimator.Estimate(p),
		Need:     NeedScore(p.Position, counts, ctx.Round),
		Risk:     RiskScore(p, ctx.Round),
		Handcuff: HandcuffScore(p, roster),
		Round:    RoundScore(p, ctx),
	}

	total := sub.Value*e.weights.Value +
		sub.Need*e.weights.Need +
		sub.Risk*e.weights.Risk +
		sub.Handcuff*e.weights.Handcuff +
		sub.Round*e.weights.Round

	critical := IsCriticalNeed(p.Position, counts)
	if critical {
		total *= criticalNeedMultiplier
	}
	total *= adpSanityMultiplier(ctx.Round, p.ADP)

	byeConflict := ByeWeekConflict(p, roster)
	if byeConflict {
		total -= byeOverlapPenalty
	}

	confidence := Confidence(p, ctx.Round)
	riskFactor := RiskFactor(p)

	return models.Recommendation{
		Player:          p,
		Score:           total,
		Reasoning:       buildReasoning(p, sub, counts, byeConflict),
		Priority:        DeterminePriority(total, confidence, riskFactor),
		Confidence:      confidence,
		RiskFactor:      riskFactor,
		UpsidePotential: UpsidePotential(p),
		SubScores:       sub,
	}
}

// adpSanityMultiplier shrinks scores for players whose ADP is
// implausibly high for the round. Applied after the critical-need
// doubling, so extreme reaches are dampened but critical needs rarely
// fall out of contention.
func adpSanityMultiplier(round, adp int) float64 {
	switch {
	case round <= 3:
		if adp > 50 {
			return 0.6
		}
		if adp > 30 {
			return 0.8
		}
	case round <= 5:
		if adp > 80 {
			return 0.7
		}
	case round <= 8:
		if adp > 120 {
			return 0.8
		}
	}
	return 1.0
}
