package ctrlstyle

import (
	"fmt"
	"math"
)

// Scaler derives platform sizes from base sizes with one fixed factor.
type Scaler struct {
	factor float64
}

// NewScaler returns a Scaler for factor, which must be positive and finite.
func NewScaler(factor float64) (Scaler, error) {
	if !(factor > 0) || math.IsInf(factor, 1) {
		return Scaler{}, fmt.Errorf("scale factor must be positive and finite, got %v", factor)
	}
	return Scaler{factor: factor}, nil
}

// Factor returns the configured factor.
func (s Scaler) Factor() float64 { return s.factor }

// Scale returns base * factor with no rounding.
func (s Scaler) Scale(base float64) float64 {
	return base * s.factor
}
