// Package service implements the pricing core: the valuation engine and the
// admin-managed ZIP override store on top of the static rate table.
package service

import (
	"context"
	"math"
	"regexp"
	"sort"
	"strings"

	"leadgen_backend/internal/events"
	"leadgen_backend/internal/pricing/rates"
	"leadgen_backend/internal/pricing/transport"
	"leadgen_backend/platform/apperr"
	"leadgen_backend/platform/logger"
)

var zipPattern = regexp.MustCompile(`^[0-9]{5}$`)

// OverrideStore is the persistence contract for ZIP rate overrides.
type OverrideStore interface {
	Get(ctx context.Context, zip string) (float64, bool, error)
	Upsert(ctx context.Context, zip string, pricePerSqft float64) error
	List(ctx context.Context) (map[string]float64, error)
}

type Service struct {
	store OverrideStore
	bus   events.Bus
	log   *logger.Logger
}

func New(store OverrideStore, bus events.Bus, log *logger.Logger) *Service {
	return &Service{store: store, bus: bus, log: log}
}

// Estimate prices a property descriptor. The override snapshot is re-read
// from storage on every call so admin edits take effect on the next estimate.
func (s *Service) Estimate(ctx context.Context, req transport.ValuationRequest) (transport.ValuationResult, error) {
	snapshot, err := s.MergedSnapshot(ctx)
	if err != nil {
		s.log.DatabaseError("pricing.snapshot", err)
		return transport.ValuationResult{}, err
	}
	return computeEstimate(req, snapshot), nil
}

// MergedSnapshot returns the full seed table with every override applied on
// top (override wins).
func (s *Service) MergedSnapshot(ctx context.Context) (map[string]float64, error) {
	overrides, err := s.store.List(ctx)
	if err != nil {
		return nil, err
	}

	merged := rates.SeedTable()
	for zip, rate := range overrides {
		merged[zip] = rate
	}
	return merged, nil
}

// GetOverride returns the stored override for a ZIP, if any.
func (s *Service) GetOverride(ctx context.Context, zip string) (float64, bool, error) {
	return s.store.Get(ctx, strings.TrimSpace(zip))
}

// SetOverride validates and writes a single ZIP override.
func (s *Service) SetOverride(ctx context.Context, zip string, pricePerSqft float64) error {
	zip = strings.TrimSpace(zip)
	if err := validateOverride(zip, pricePerSqft); err != nil {
		return err
	}

	if err := s.store.Upsert(ctx, zip, pricePerSqft); err != nil {
		s.log.DatabaseError("pricing.set_override", err)
		return err
	}

	s.bus.Publish(ctx, events.ZipRateSaved{
		BaseEvent:    events.NewBaseEvent(),
		ZipCode:      zip,
		PricePerSqft: pricePerSqft,
	})
	return nil
}

// SetOverridesBulk validates each entry independently, skipping invalid rows,
// and writes the survivors with last-write-wins semantics per ZIP within the
// batch. It returns the number of ZIP codes written.
func (s *Service) SetOverridesBulk(ctx context.Context, entries []transport.BulkZipRateEntry) (int, error) {
	accepted := normalizeBulkEntries(entries)

	zips := make([]string, 0, len(accepted))
	for zip := range accepted {
		zips = append(zips, zip)
	}
	sort.Strings(zips)

	written := 0
	for _, zip := range zips {
		if err := s.store.Upsert(ctx, zip, accepted[zip]); err != nil {
			s.log.DatabaseError("pricing.set_overrides_bulk", err)
			return written, err
		}
		written++
		s.bus.Publish(ctx, events.ZipRateSaved{
			BaseEvent:    events.NewBaseEvent(),
			ZipCode:      zip,
			PricePerSqft: accepted[zip],
		})
	}

	return written, nil
}

// normalizeBulkEntries drops invalid rows and collapses duplicate ZIPs to the
// last value in the batch.
func normalizeBulkEntries(entries []transport.BulkZipRateEntry) map[string]float64 {
	accepted := make(map[string]float64)
	for _, entry := range entries {
		zip := strings.TrimSpace(string(entry.Zip))
		if !entry.Ppsf.Valid {
			continue
		}
		if validateOverride(zip, entry.Ppsf.Value) != nil {
			continue
		}
		accepted[zip] = entry.Ppsf.Value
	}
	return accepted
}

func validateOverride(zip string, pricePerSqft float64) error {
	if !zipPattern.MatchString(zip) {
		return apperr.Validation("zip must be exactly 5 digits")
	}
	if math.IsNaN(pricePerSqft) || math.IsInf(pricePerSqft, 0) || pricePerSqft <= 0 {
		return apperr.Validation("ppsf must be a positive number")
	}
	return nil
}
