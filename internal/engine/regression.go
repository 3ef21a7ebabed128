package engine

import (
	"encoding/json"
	"fmt"
	"math"
	"math/rand"
	"os"
	"path/filepath"
	"sync"
	"time"

	"github.com/sirupsen/logrus"
	"gonum.org/v1/gonum/mat"
	"gonum.org/v1/gonum/stat"

	"github.com/tsmith4014/gridiron-guru-ai/internal/models"
)

// Feature vector layout for the regression: intercept, ADP, tier,
// age, experience, strength of schedule.
const featureCount = 6

// Defaults substituted for optional attributes, matching the league
// averages the models are trained against.
const (
	defaultAge        = 25.0
	defaultExperience = 3.0
	defaultSOS        = 1.0
)

// ModelBundle is the persisted form of the learned strategy: one
// coefficient vector per position. The format is opaque to callers.
type ModelBundle struct {
	Version   string                        `json:"version"`
	TrainedAt time.Time                     `json:"trained_at"`
	Models    map[models.Position][]float64 `json:"models"`
	RSquared  map[models.Position]float64   `json:"r_squared,omitempty"`
}

// RegressionEstimator is the learned value strategy: a per-position
// least-squares fit of realized fantasy output against static player
// attributes. Any failure (missing bundle, malformed coefficients,
// degenerate prediction) degrades to the deterministic formula, never
// to an error.
type RegressionEstimator struct {
	mu       sync.RWMutex
	bundle   *ModelBundle
	fallback FormulaEstimator
	log      *logrus.Logger
}

// NewRegressionEstimator creates an untrained estimator. Until a
// bundle is loaded or trained it behaves exactly like the formula.
func NewRegressionEstimator(log *logrus.Logger) *RegressionEstimator {
	return &RegressionEstimator{log: log}
}

// Estimate predicts the player's baseline value from the learned
// model, degrading through the formula to the minimal estimate as
// inputs get worse.
func (e *RegressionEstimator) Estimate(p models.Player) float64 {
	e.mu.RLock()
	bundle := e.bundle
	e.mu.RUnlock()

	if bundle == nil {
		return e.fallback.Estimate(p)
	}
	coefs, ok := bundle.Models[p.Position]
	if !ok || len(coefs) != featureCount {
		return e.fallback.Estimate(p)
	}
	if p.ADP <= 0 || p.Tier < 1 || p.Tier > 6 {
		return e.fallback.Estimate(p)
	}

	features := featureVector(p)
	pred := 0.0
	for i, c := range coefs {
		pred += c * features[i]
	}
	if math.IsNaN(pred) || math.IsInf(pred, 0) {
		return e.fallback.Estimate(p)
	}
	return clamp(pred, 0, formulaMaxScore)
}

// LoadOrTrain loads a persisted bundle from path, or trains and saves
// a fresh one when none is usable. It never returns an error that
// leaves the estimator unusable; the formula fallback always remains.
func (e *RegressionEstimator) LoadOrTrain(path string) error {
	if path != "" {
		if err := e.Load(path); err == nil {
			e.log.WithField("path", path).Info("Loaded value estimator bundle")
			return nil
		} else {
			e.log.WithError(err).WithField("path", path).
				Warn("Could not load estimator bundle, training a new one")
		}
	}

	if err := e.Train(); err != nil {
		e.log.WithError(err).Warn("Estimator training failed, using formula fallback")
		return err
	}
	if path != "" {
		if err := e.Save(path); err != nil {
			e.log.WithError(err).WithField("path", path).Warn("Could not persist estimator bundle")
		}
	}
	return nil
}

// Train fits per-position coefficient vectors on a deterministic
// synthetic sample and swaps them in atomically. Concurrent Estimate
// calls keep reading the previous bundle until the swap.
func (e *RegressionEstimator) Train() error {
	rng := rand.New(rand.NewSource(42))

	bundle := &ModelBundle{
		Version:   "1.0",
		TrainedAt: time.Now().UTC(),
		Models:    make(map[models.Position][]float64, len(models.AllPositions)),
		RSquared:  make(map[models.Position]float64, len(models.AllPositions)),
	}

	for _, pos := range models.AllPositions {
		features, labels := syntheticSample(pos, rng)
		coefs, r2, err := fitLeastSquares(features, labels)
		if err != nil {
			return fmt.Errorf("fitting %s model: %w", pos, err)
		}
		bundle.Models[pos] = coefs
		bundle.RSquared[pos] = r2

		e.log.WithFields(logrus.Fields{
			"position":  pos,
			"samples":   len(labels),
			"r_squared": r2,
		}).Debug("Fitted position model")
	}

	e.mu.Lock()
	e.bundle = bundle
	e.mu.Unlock()

	e.log.WithField("positions", len(bundle.Models)).Info("Value estimator trained")
	return nil
}

// Load reads a persisted bundle and swaps it in.
func (e *RegressionEstimator) Load(path string) error {
	data, err := os.ReadFile(path)
	if err != nil {
		return fmt.Errorf("reading bundle: %w", err)
	}
	var bundle ModelBundle
	if err := json.Unmarshal(data, &bundle); err != nil {
		return fmt.Errorf("decoding bundle: %w", err)
	}
	if len(bundle.Models) == 0 {
		return fmt.Errorf("bundle at %s contains no models", path)
	}
	for pos, coefs := range bundle.Models {
		if len(coefs) != featureCount {
			return fmt.Errorf("bundle model %s has %d coefficients, want %d", pos, len(coefs), featureCount)
		}
	}

	e.mu.Lock()
	e.bundle = &bundle
	e.mu.Unlock()
	return nil
}

// Save persists the current bundle as JSON.
func (e *RegressionEstimator) Save(path string) error {
	e.mu.RLock()
	bundle := e.bundle
	e.mu.RUnlock()

	if bundle == nil {
		return fmt.Errorf("no trained bundle to save")
	}
	data, err := json.MarshalIndent(bundle, "", "  ")
	if err != nil {
		return fmt.Errorf("encoding bundle: %w", err)
	}
	if dir := filepath.Dir(path); dir != "." {
		if err := os.MkdirAll(dir, 0o755); err != nil {
			return fmt.Errorf("creating bundle dir: %w", err)
		}
	}
	if err := os.WriteFile(path, data, 0o644); err != nil {
		return fmt.Errorf("writing bundle: %w", err)
	}
	return nil
}

// IsTrained reports whether a learned bundle is active.
func (e *RegressionEstimator) IsTrained() bool {
	e.mu.RLock()
	defer e.mu.RUnlock()
	return e.bundle != nil
}

func featureVector(p models.Player) [featureCount]float64 {
	age := float64(p.Age)
	if age == 0 {
		age = defaultAge
	}
	exp := float64(p.Experience)
	if exp == 0 {
		exp = defaultExperience
	}
	sos := p.StrengthOfSchedule
	if sos == 0 {
		sos = defaultSOS
	}
	return [featureCount]float64{1, float64(p.ADP), float64(p.Tier), age, exp, sos}
}

// fitLeastSquares solves an ordinary least-squares fit via QR
// factorization and reports the coefficient vector plus training R².
func fitLeastSquares(features [][featureCount]float64, labels []float64) ([]float64, float64, error) {
	n := len(labels)
	if n < featureCount {
		return nil, 0, fmt.Errorf("need at least %d samples, got %d", featureCount, n)
	}

	flat := make([]float64, 0, n*featureCount)
	for _, row := range features {
		flat = append(flat, row[:]...)
	}
	x := mat.NewDense(n, featureCount, flat)
	y := mat.NewDense(n, 1, labels)

	var qr mat.QR
	qr.Factorize(x)

	var beta mat.Dense
	if err := qr.SolveTo(&beta, false, y); err != nil {
		return nil, 0, fmt.Errorf("solving least squares: %w", err)
	}

	coefs := make([]float64, featureCount)
	for i := range coefs {
		coefs[i] = beta.At(i, 0)
	}

	estimates := make([]float64, n)
	for i, row := range features {
		for j, c := range coefs {
			estimates[i] += c * row[j]
		}
	}
	r2 := stat.RSquaredFrom(estimates, labels, nil)

	return coefs, r2, nil
}

// Per-position baselines for the synthetic training sample, mirroring
// observed season-long fantasy output.
var syntheticBasePoints = map[models.Position]float64{
	models.PositionQB:  300,
	models.PositionRB:  180,
	models.PositionWR:  160,
	models.PositionTE:  120,
	models.PositionK:   140,
	models.PositionDST: 100,
}

// syntheticSample generates training rows for one position. The ADP
// penalty is cubic so value drops off sharply down the board.
func syntheticSample(pos models.Position, rng *rand.Rand) ([][featureCount]float64, []float64) {
	samples := 100
	if pos == models.PositionRB || pos == models.PositionWR {
		samples = 200
	}

	features := make([][featureCount]float64, 0, samples)
	labels := make([]float64, 0, samples)

	for i := 0; i < samples; i++ {
		adp := float64(rng.Intn(200) + 1)
		tier := float64(rng.Intn(6) + 1)

		var age, experience float64
		if pos == models.PositionDST {
			age = float64(rng.Intn(9) + 1)
			experience = float64(rng.Intn(9) + 1)
		} else {
			age = float64(rng.Intn(14) + 21)
			experience = float64(rng.Intn(15))
		}
		sos := 0.5 + rng.Float64()

		adpPenalty := math.Pow(adp/200, 3)
		tierBonus := (6 - tier) * 0.15
		points := syntheticBasePoints[pos] *
			(1 - adpPenalty) *
			(1 + tierBonus) *
			positionMultipliers[pos] *
			(1 + rng.NormFloat64()*0.15)
		if points < 0 {
			points = 0
		}

		features = append(features, [featureCount]float64{1, adp, tier, age, experience, sos})
		labels = append(labels, points)
	}

	return features, labels
}
