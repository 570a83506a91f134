package artifact

import (
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"
)

// Artifact file names inside the artifacts directory. Every file is
// optional; a missing file leaves the capability unavailable.
const (
	RankerFile     = "career_ranker.json"
	DimVectorsFile = "skill_dim_vectors.json"
)

type rankerFile struct {
	Coef      []float64 `json:"coef"`
	Intercept float64   `json:"intercept"`
	Mean      []float64 `json:"mean"`
	Scale     []float64 `json:"scale"`
}

// LoadRanker reads the fitted re-ranker + scaler bundle from dir. Returns
// (nil, nil) when the file does not exist.
func LoadRanker(dir string) (*Ranker, error) {
	if dir == "" {
		return nil, nil
	}
	b, err := os.ReadFile(filepath.Join(dir, RankerFile))
	if err != nil {
		if os.IsNotExist(err) {
			return nil, nil
		}
		return nil, fmt.Errorf("read ranker artifact: %w", err)
	}

	var f rankerFile
	if err := json.Unmarshal(b, &f); err != nil {
		return nil, fmt.Errorf("decode ranker artifact: %w", err)
	}
	if len(f.Coef) == 0 || len(f.Mean) != len(f.Coef) || len(f.Scale) != len(f.Coef) {
		return nil, fmt.Errorf("decode ranker artifact: inconsistent shapes")
	}

	return &Ranker{
		Model:  &Logistic{Coef: f.Coef, Intercept: f.Intercept},
		Scaler: &Scaler{Mean: f.Mean, Scale: f.Scale},
	}, nil
}

// LoadDimVectors reads the reference embedding per skill dimension from dir.
// Returns (nil, nil) when the file does not exist.
func LoadDimVectors(dir string) ([][]float64, error) {
	if dir == "" {
		return nil, nil
	}
	b, err := os.ReadFile(filepath.Join(dir, DimVectorsFile))
	if err != nil {
		if os.IsNotExist(err) {
			return nil, nil
		}
		return nil, fmt.Errorf("read dim vectors artifact: %w", err)
	}

	var vecs [][]float64
	if err := json.Unmarshal(b, &vecs); err != nil {
		return nil, fmt.Errorf("decode dim vectors artifact: %w", err)
	}
	return vecs, nil
}
