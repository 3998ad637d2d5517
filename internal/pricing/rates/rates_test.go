package rates

import "testing"

func TestBaseRate(t *testing.T) {
	rate, ok := BaseRate("20774")
	if !ok || rate != 268 {
		t.Fatalf("expected 20774 => 268, got %v (ok=%v)", rate, ok)
	}

	if _, ok := BaseRate("00000"); ok {
		t.Fatal("expected unknown zip to be absent")
	}
}

func TestCountyMultiplier(t *testing.T) {
	if got := CountyMultiplier("Montgomery"); got != 1.45 {
		t.Fatalf("expected Montgomery => 1.45, got %v", got)
	}
	if got := CountyMultiplier("montgomery "); got != 1.45 {
		t.Fatalf("expected case-insensitive trimmed match, got %v", got)
	}
	// Some clients send the curly apostrophe variant.
	if got := CountyMultiplier("Prince George’s"); got != 1.0 {
		t.Fatalf("expected Prince George’s => 1.0, got %v", got)
	}
	if got := CountyMultiplier("Atlantis"); got != 1.0 {
		t.Fatalf("expected unknown county => 1.0, got %v", got)
	}
	if got := CountyMultiplier(""); got != 1.0 {
		t.Fatalf("expected absent county => 1.0, got %v", got)
	}
}

func TestSeedTableReturnsCopy(t *testing.T) {
	table := SeedTable()
	table["20774"] = 1

	if rate, _ := BaseRate("20774"); rate != 268 {
		t.Fatalf("seed table mutated through copy: %v", rate)
	}
}
