// Package artifact holds the optional pre-fitted model artifacts the engine
// consumes as black boxes. Each capability is independently optional: an
// unavailable artifact selects the engine's deterministic fallback, never an
// error on the request path.
package artifact

import (
	"errors"
	"math"
)

var ErrDimensionMismatch = errors.New("artifact: feature dimension mismatch")

// Encoder maps text phrases to embedding vectors. Implementations wrap
// whatever semantic model is deployed alongside the service.
type Encoder interface {
	Encode(phrases []string) ([][]float64, error)
}

// Semantic bundles the text encoder with the reference embedding per skill
// dimension (same order as the dimension set).
type Semantic struct {
	Encoder    Encoder
	DimVectors [][]float64
}

func (s *Semantic) Available() bool {
	return s != nil && s.Encoder != nil && len(s.DimVectors) > 0
}

// Scaler is the feature scaler fitted alongside the re-ranker.
type Scaler struct {
	Mean  []float64 `json:"mean"`
	Scale []float64 `json:"scale"`
}

func (s *Scaler) Transform(features []float64) ([]float64, error) {
	if len(s.Mean) != len(features) || len(s.Scale) != len(features) {
		return nil, ErrDimensionMismatch
	}
	out := make([]float64, len(features))
	for i, v := range features {
		sc := s.Scale[i]
		if sc == 0 {
			sc = 1
		}
		out[i] = (v - s.Mean[i]) / sc
	}
	return out, nil
}

// Logistic is a fitted binary classifier; PredictProba returns the
// positive-class probability.
type Logistic struct {
	Coef      []float64 `json:"coef"`
	Intercept float64   `json:"intercept"`
}

func (m *Logistic) PredictProba(features []float64) (float64, error) {
	if len(m.Coef) != len(features) {
		return 0, ErrDimensionMismatch
	}
	z := m.Intercept
	for i, v := range features {
		z += m.Coef[i] * v
	}
	return 1.0 / (1.0 + math.Exp(-z)), nil
}

// Ranker is the learned occupation re-ranker with its paired scaler.
type Ranker struct {
	Model  *Logistic
	Scaler *Scaler
}

func (r *Ranker) Available() bool {
	return r != nil && r.Model != nil && r.Scaler != nil
}

// Score returns the re-ranker probability for one occupation requirement
// vector. Any failure is reported to the caller, which keeps the un-blended
// score instead.
func (r *Ranker) Score(requirements []float64) (float64, error) {
	if !r.Available() {
		return 0, errors.New("artifact: ranker unavailable")
	}
	scaled, err := r.Scaler.Transform(requirements)
	if err != nil {
		return 0, err
	}
	return r.Model.PredictProba(scaled)
}
