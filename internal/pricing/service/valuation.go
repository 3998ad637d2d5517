package service

import (
	"math"
	"strings"

	"leadgen_backend/internal/pricing/rates"
	"leadgen_backend/internal/pricing/transport"
)

const (
	defaultSqft = 1800
	minSqft     = 600

	// A supplied property condition narrows the confidence band.
	bandKnownCondition   = 0.05
	bandUnknownCondition = 0.08
)

var conditionAdjustments = map[string]float64{
	"needs work": -0.10,
	"average":    0.0,
	"updated":    0.05,
	"renovated":  0.10,
}

// computeEstimate prices a property descriptor against a merged ZIP rate
// snapshot. It is total: absent or out-of-domain fields fall back to
// defaults, so every input produces a best-effort number.
func computeEstimate(req transport.ValuationRequest, snapshot map[string]float64) transport.ValuationResult {
	ppsf := resolvePpsf(req, snapshot)
	sqft := resolveSqft(req.Sqft)

	adjustment := 1.0 + bedsAdjustment(req.Beds) + bathsAdjustment(req.Baths)
	conditionAdj, conditionKnown := conditionAdjustment(req.Condition)
	adjustment += conditionAdj

	// math.Round: nearest integer, halves away from zero.
	estimate := int64(math.Round(ppsf * float64(sqft) * adjustment))

	band := bandUnknownCondition
	if conditionKnown {
		band = bandKnownCondition
	}

	// int64 conversion truncates toward zero, matching the band bounds the
	// admin tooling has always displayed.
	low := int64(float64(estimate) * (1 - band))
	high := int64(float64(estimate) * (1 + band))

	return transport.ValuationResult{
		Estimate:   estimate,
		Low:        low,
		High:       high,
		PpsfUsed:   ppsf,
		SqftUsed:   sqft,
		Adjustment: round3(adjustment),
		Band:       band,
	}
}

// resolvePpsf applies the rate precedence: exact-ZIP entry in the merged
// snapshot first, then the county-multiplied default.
func resolvePpsf(req transport.ValuationRequest, snapshot map[string]float64) float64 {
	if req.ZipCode != nil {
		if rate, ok := snapshot[strings.TrimSpace(*req.ZipCode)]; ok {
			return rate
		}
	}

	county := ""
	if req.County != nil {
		county = *req.County
	}
	return rates.DefaultPricePerSqft * rates.CountyMultiplier(county)
}

// resolveSqft clamps square footage to a floor of 600 and defaults absent or
// non-positive values to 1800.
func resolveSqft(sqft *int) int {
	resolved := defaultSqft
	if sqft != nil && *sqft > 0 {
		resolved = *sqft
	}
	if resolved < minSqft {
		return minSqft
	}
	return resolved
}

func bedsAdjustment(beds *int) float64 {
	if beds == nil {
		return 0
	}
	switch {
	case *beds >= 5:
		return 0.08
	case *beds == 4:
		return 0.05
	case *beds == 3:
		return 0.02
	default:
		return 0
	}
}

func bathsAdjustment(baths *float64) float64 {
	if baths == nil {
		return 0
	}
	switch {
	case *baths >= 3:
		return 0.05
	case *baths >= 2:
		return 0.03
	default:
		return 0
	}
}

func conditionAdjustment(condition *string) (float64, bool) {
	if condition == nil {
		return 0, false
	}
	adj, ok := conditionAdjustments[strings.ToLower(strings.TrimSpace(*condition))]
	if !ok {
		return 0, false
	}
	return adj, true
}

func round3(v float64) float64 {
	return math.Round(v*1000) / 1000
}
