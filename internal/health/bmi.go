// Package health computes body metrics from a member's height and weight.
package health

import (
	"math"

	"github.com/jonathan/fitness-roadmap/internal/types"
)

// WHO adult BMI band boundaries
const (
	normalLowerBound     = 18.5
	overweightLowerBound = 25.0
	obeseLowerBound      = 30.0
)

// Calculate returns the BMI and its category, or nil when either measurement
// is missing, non-positive or not finite. A nil result means the metrics are
// unavailable; no placeholder value is ever produced.
func Calculate(heightCM, weightKG *float64) *types.HealthMetrics {
	if !usable(heightCM) || !usable(weightKG) {
		return nil
	}

	heightM := *heightCM / 100
	bmi := round2(*weightKG / (heightM * heightM))

	return &types.HealthMetrics{
		BMI:      bmi,
		Category: Classify(bmi),
	}
}

// Classify maps a BMI value onto its WHO band.
func Classify(bmi float64) types.BMICategory {
	switch {
	case bmi < normalLowerBound:
		return types.BMIUnderweight
	case bmi < overweightLowerBound:
		return types.BMINormal
	case bmi < obeseLowerBound:
		return types.BMIOverweight
	default:
		return types.BMIObese
	}
}

// Status reports whether metrics are available.
func Status(m *types.HealthMetrics) types.HealthStatus {
	if m == nil {
		return types.HealthUnavailable
	}
	return types.HealthAvailable
}

func usable(v *float64) bool {
	return v != nil && *v > 0 && !math.IsInf(*v, 0) && !math.IsNaN(*v)
}

func round2(v float64) float64 {
	return math.Round(v*100) / 100
}
