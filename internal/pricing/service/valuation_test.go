package service

import (
	"testing"

	"leadgen_backend/internal/pricing/rates"
	"leadgen_backend/internal/pricing/transport"
)

func strPtr(s string) *string    { return &s }
func intPtr(i int) *int          { return &i }
func floatPtr(f float64) *float64 { return &f }

func TestComputeEstimateDefaults(t *testing.T) {
	// No zip, no county, no sqft: national default rate, default sqft,
	// neutral adjustment, wide band. math.Round rounds halves away from
	// zero; 220*1800 is exact so no tie is involved here.
	result := computeEstimate(transport.ValuationRequest{}, rates.SeedTable())

	if result.PpsfUsed != 220.0 {
		t.Fatalf("expected ppsf 220.0, got %v", result.PpsfUsed)
	}
	if result.SqftUsed != 1800 {
		t.Fatalf("expected sqft 1800, got %d", result.SqftUsed)
	}
	if result.Adjustment != 1.0 {
		t.Fatalf("expected adjustment 1.0, got %v", result.Adjustment)
	}
	if result.Estimate != 396000 {
		t.Fatalf("expected estimate 396000, got %d", result.Estimate)
	}
	if result.Band != 0.08 {
		t.Fatalf("expected band 0.08, got %v", result.Band)
	}
	if result.Low != 364320 || result.High != 427680 {
		t.Fatalf("expected bounds 364320/427680, got %d/%d", result.Low, result.High)
	}
}

func TestComputeEstimateOverridePrecedence(t *testing.T) {
	snapshot := rates.SeedTable()
	if seed := snapshot["20774"]; seed != 268 {
		t.Fatalf("expected seed rate 268 for 20774, got %v", seed)
	}
	snapshot["20774"] = 300

	result := computeEstimate(transport.ValuationRequest{
		ZipCode: strPtr("20774"),
		Sqft:    intPtr(2000),
	}, snapshot)

	if result.PpsfUsed != 300 {
		t.Fatalf("expected override rate 300, got %v", result.PpsfUsed)
	}
	if result.SqftUsed != 2000 {
		t.Fatalf("expected sqft 2000, got %d", result.SqftUsed)
	}
}

func TestComputeEstimateZipTrimmedBeforeLookup(t *testing.T) {
	result := computeEstimate(transport.ValuationRequest{
		ZipCode: strPtr("  20774 "),
	}, rates.SeedTable())

	if result.PpsfUsed != 268 {
		t.Fatalf("expected seed rate 268 after trimming, got %v", result.PpsfUsed)
	}
}

func TestComputeEstimateCountyFallback(t *testing.T) {
	result := computeEstimate(transport.ValuationRequest{
		ZipCode: strPtr("00000"),
		County:  strPtr("Montgomery"),
	}, rates.SeedTable())

	if result.PpsfUsed != 319.0 {
		t.Fatalf("expected 220*1.45 = 319.0, got %v", result.PpsfUsed)
	}
}

func TestComputeEstimateUnknownCountyUsesDefaultRate(t *testing.T) {
	result := computeEstimate(transport.ValuationRequest{
		County: strPtr("Nowhere"),
	}, rates.SeedTable())

	if result.PpsfUsed != 220.0 {
		t.Fatalf("expected default rate 220.0 for unknown county, got %v", result.PpsfUsed)
	}
}

func TestComputeEstimateSqftFloor(t *testing.T) {
	result := computeEstimate(transport.ValuationRequest{
		Sqft: intPtr(100),
	}, rates.SeedTable())

	if result.SqftUsed != 600 {
		t.Fatalf("expected floor 600, got %d", result.SqftUsed)
	}
}

func TestComputeEstimateNonPositiveSqftTreatedAsAbsent(t *testing.T) {
	result := computeEstimate(transport.ValuationRequest{
		Sqft: intPtr(-50),
	}, rates.SeedTable())

	if result.SqftUsed != 1800 {
		t.Fatalf("expected default 1800 for non-positive sqft, got %d", result.SqftUsed)
	}
}

func TestComputeEstimateConditionNarrowsBand(t *testing.T) {
	withCondition := computeEstimate(transport.ValuationRequest{
		Condition: strPtr("Average"),
	}, rates.SeedTable())
	withoutCondition := computeEstimate(transport.ValuationRequest{}, rates.SeedTable())

	if withCondition.Band != 0.05 {
		t.Fatalf("expected band 0.05 with condition, got %v", withCondition.Band)
	}
	if withoutCondition.Band != 0.08 {
		t.Fatalf("expected band 0.08 without condition, got %v", withoutCondition.Band)
	}
	if withCondition.Estimate != withoutCondition.Estimate {
		t.Fatalf("Average condition must not move the point estimate: %d vs %d",
			withCondition.Estimate, withoutCondition.Estimate)
	}
}

func TestComputeEstimateUnrecognizedConditionIgnored(t *testing.T) {
	result := computeEstimate(transport.ValuationRequest{
		Condition: strPtr("Gorgeous"),
	}, rates.SeedTable())

	if result.Band != 0.08 {
		t.Fatalf("expected wide band for unrecognized condition, got %v", result.Band)
	}
	if result.Adjustment != 1.0 {
		t.Fatalf("expected neutral adjustment, got %v", result.Adjustment)
	}
}

func TestComputeEstimateAdjustmentStacking(t *testing.T) {
	result := computeEstimate(transport.ValuationRequest{
		Beds:      intPtr(5),
		Baths:     floatPtr(3),
		Condition: strPtr("Renovated"),
	}, rates.SeedTable())

	if result.Adjustment != 1.23 {
		t.Fatalf("expected adjustment 1.23 (1.0+0.08+0.05+0.10), got %v", result.Adjustment)
	}
}

func TestComputeEstimateBedsTiers(t *testing.T) {
	cases := []struct {
		beds *int
		want float64
	}{
		{nil, 1.0},
		{intPtr(0), 1.0},
		{intPtr(2), 1.0},
		{intPtr(3), 1.02},
		{intPtr(4), 1.05},
		{intPtr(5), 1.08},
		{intPtr(7), 1.08},
	}
	for _, tc := range cases {
		result := computeEstimate(transport.ValuationRequest{Beds: tc.beds}, rates.SeedTable())
		if result.Adjustment != tc.want {
			t.Fatalf("beds %v: expected adjustment %v, got %v", tc.beds, tc.want, result.Adjustment)
		}
	}
}

func TestComputeEstimateBathsTiers(t *testing.T) {
	cases := []struct {
		baths *float64
		want  float64
	}{
		{nil, 1.0},
		{floatPtr(1.5), 1.0},
		{floatPtr(2), 1.03},
		{floatPtr(2.5), 1.03},
		{floatPtr(3), 1.05},
		{floatPtr(4), 1.05},
	}
	for _, tc := range cases {
		result := computeEstimate(transport.ValuationRequest{Baths: tc.baths}, rates.SeedTable())
		if result.Adjustment != tc.want {
			t.Fatalf("baths %v: expected adjustment %v, got %v", tc.baths, tc.want, result.Adjustment)
		}
	}
}

func TestComputeEstimateNeedsWorkDiscount(t *testing.T) {
	result := computeEstimate(transport.ValuationRequest{
		Condition: strPtr("Needs work"),
	}, rates.SeedTable())

	if result.Adjustment != 0.9 {
		t.Fatalf("expected adjustment 0.9, got %v", result.Adjustment)
	}
	if result.Band != 0.05 {
		t.Fatalf("expected narrow band, got %v", result.Band)
	}
}

func TestComputeEstimateDeterministic(t *testing.T) {
	req := transport.ValuationRequest{
		ZipCode:   strPtr("20770"),
		Beds:      intPtr(4),
		Baths:     floatPtr(2.5),
		Sqft:      intPtr(2150),
		Condition: strPtr("Updated"),
	}
	snapshot := rates.SeedTable()

	first := computeEstimate(req, snapshot)
	for i := 0; i < 10; i++ {
		if again := computeEstimate(req, snapshot); again != first {
			t.Fatalf("estimate not deterministic: %+v vs %+v", first, again)
		}
	}
}
