package service

import (
	"encoding/json"
	"math"
	"testing"

	"leadgen_backend/internal/pricing/transport"
)

func TestValidateOverride(t *testing.T) {
	cases := []struct {
		name   string
		zip    string
		ppsf   float64
		wantOK bool
	}{
		{"valid", "20774", 268, true},
		{"short zip", "1", 10, false},
		{"long zip", "207741", 10, false},
		{"non-numeric zip", "2077a", 10, false},
		{"empty zip", "", 10, false},
		{"zero price", "20774", 0, false},
		{"negative price", "20774", -5, false},
		{"nan price", "20774", math.NaN(), false},
		{"inf price", "20774", math.Inf(1), false},
	}

	for _, tc := range cases {
		err := validateOverride(tc.zip, tc.ppsf)
		if tc.wantOK && err != nil {
			t.Fatalf("%s: expected valid, got %v", tc.name, err)
		}
		if !tc.wantOK && err == nil {
			t.Fatalf("%s: expected validation error", tc.name)
		}
	}
}

func TestNormalizeBulkEntriesSkipsInvalidRows(t *testing.T) {
	payload := `[
		{"zip":"20774","ppsf":300},
		{"zip":"1","ppsf":10},
		{"zip":"20777","ppsf":"bad"}
	]`

	var entries []transport.BulkZipRateEntry
	if err := json.Unmarshal([]byte(payload), &entries); err != nil {
		t.Fatalf("unmarshal bulk payload: %v", err)
	}

	accepted := normalizeBulkEntries(entries)
	if len(accepted) != 1 {
		t.Fatalf("expected 1 accepted row, got %d", len(accepted))
	}
	if accepted["20774"] != 300 {
		t.Fatalf("expected 20774 => 300, got %v", accepted["20774"])
	}
}

func TestNormalizeBulkEntriesLastWriteWinsPerZip(t *testing.T) {
	payload := `[
		{"zip":"20774","ppsf":275},
		{"zip":"20774","ppsf":290}
	]`

	var entries []transport.BulkZipRateEntry
	if err := json.Unmarshal([]byte(payload), &entries); err != nil {
		t.Fatalf("unmarshal bulk payload: %v", err)
	}

	accepted := normalizeBulkEntries(entries)
	if len(accepted) != 1 {
		t.Fatalf("expected duplicate zip to count once, got %d rows", len(accepted))
	}
	if accepted["20774"] != 290 {
		t.Fatalf("expected last value 290 to win, got %v", accepted["20774"])
	}
}

func TestNormalizeBulkEntriesCoercesLooseTypes(t *testing.T) {
	// Numeric zip and string rate both show up in pasted JSON.
	payload := `[{"zip":20774,"ppsf":"275"}]`

	var entries []transport.BulkZipRateEntry
	if err := json.Unmarshal([]byte(payload), &entries); err != nil {
		t.Fatalf("unmarshal bulk payload: %v", err)
	}

	accepted := normalizeBulkEntries(entries)
	if accepted["20774"] != 275 {
		t.Fatalf("expected coerced row 20774 => 275, got %v", accepted)
	}
}
