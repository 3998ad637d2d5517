package service

import (
	"context"
	"testing"

	"leadgen_backend/internal/pricing/rates"
	"leadgen_backend/internal/pricing/transport"
	platformevents "leadgen_backend/platform/events"
	"leadgen_backend/platform/logger"
)

type fakeOverrideStore struct {
	overrides map[string]float64
}

func newFakeOverrideStore() *fakeOverrideStore {
	return &fakeOverrideStore{overrides: make(map[string]float64)}
}

func (s *fakeOverrideStore) Get(ctx context.Context, zip string) (float64, bool, error) {
	rate, ok := s.overrides[zip]
	return rate, ok, nil
}

func (s *fakeOverrideStore) Upsert(ctx context.Context, zip string, pricePerSqft float64) error {
	s.overrides[zip] = pricePerSqft
	return nil
}

func (s *fakeOverrideStore) List(ctx context.Context) (map[string]float64, error) {
	out := make(map[string]float64, len(s.overrides))
	for zip, rate := range s.overrides {
		out[zip] = rate
	}
	return out, nil
}

func newTestService(store OverrideStore) *Service {
	log := logger.New("development")
	return New(store, platformevents.NewInMemoryBus(log), log)
}

func TestEstimateUsesStoredOverride(t *testing.T) {
	store := newFakeOverrideStore()
	store.overrides["20774"] = 300
	svc := newTestService(store)

	result, err := svc.Estimate(context.Background(), transport.ValuationRequest{
		ZipCode: strPtr("20774"),
	})
	if err != nil {
		t.Fatalf("estimate: %v", err)
	}

	if result.PpsfUsed != 300 {
		t.Fatalf("expected stored override 300 to win over seed, got %v", result.PpsfUsed)
	}
	if result.Estimate != 540000 {
		t.Fatalf("expected estimate 540000, got %d", result.Estimate)
	}
}

func TestEstimateRereadsOverridesOnEveryCall(t *testing.T) {
	store := newFakeOverrideStore()
	svc := newTestService(store)
	req := transport.ValuationRequest{ZipCode: strPtr("20774")}

	before, err := svc.Estimate(context.Background(), req)
	if err != nil {
		t.Fatalf("estimate: %v", err)
	}
	if before.PpsfUsed != 268 {
		t.Fatalf("expected seed rate 268 before override, got %v", before.PpsfUsed)
	}

	if err := svc.SetOverride(context.Background(), "20774", 300); err != nil {
		t.Fatalf("set override: %v", err)
	}

	after, err := svc.Estimate(context.Background(), req)
	if err != nil {
		t.Fatalf("estimate: %v", err)
	}
	if after.PpsfUsed != 300 {
		t.Fatalf("expected next estimate to pick up the override, got %v", after.PpsfUsed)
	}
}

func TestMergedSnapshotOverlaysSeedTable(t *testing.T) {
	store := newFakeOverrideStore()
	store.overrides["20774"] = 300
	store.overrides["99999"] = 150
	svc := newTestService(store)

	merged, err := svc.MergedSnapshot(context.Background())
	if err != nil {
		t.Fatalf("merged snapshot: %v", err)
	}

	if merged["20774"] != 300 {
		t.Fatalf("expected override to replace seed value, got %v", merged["20774"])
	}
	if merged["99999"] != 150 {
		t.Fatalf("expected off-seed override to be present, got %v", merged["99999"])
	}

	seed := rates.SeedTable()
	if len(merged) != len(seed)+1 {
		t.Fatalf("expected seed table plus one new zip, got %d entries", len(merged))
	}
	for zip, rate := range seed {
		if zip == "20774" {
			continue
		}
		if merged[zip] != rate {
			t.Fatalf("expected untouched seed zip %s to keep rate %v, got %v", zip, rate, merged[zip])
		}
	}
}

func TestGetOverrideTrimsZip(t *testing.T) {
	store := newFakeOverrideStore()
	store.overrides["20774"] = 300
	svc := newTestService(store)

	rate, ok, err := svc.GetOverride(context.Background(), " 20774 ")
	if err != nil {
		t.Fatalf("get override: %v", err)
	}
	if !ok || rate != 300 {
		t.Fatalf("expected trimmed lookup to find 300, got %v (ok=%v)", rate, ok)
	}

	if _, ok, _ := svc.GetOverride(context.Background(), "20601"); ok {
		t.Fatal("expected missing zip to report absent")
	}
}
