// Package service implements the leads business logic: intake, admin edits,
// and the derived priority score.
package service

import (
	"context"
	"errors"
	"strings"

	"github.com/google/uuid"

	"leadgen_backend/internal/events"
	"leadgen_backend/internal/leads/domain"
	"leadgen_backend/internal/leads/repository"
	"leadgen_backend/internal/leads/scoring"
	"leadgen_backend/internal/leads/transport"
	"leadgen_backend/platform/apperr"
	"leadgen_backend/platform/logger"
	"leadgen_backend/platform/phone"
)

// Store is the persistence contract for leads.
type Store interface {
	Create(ctx context.Context, lead repository.Lead) (repository.Lead, error)
	GetByID(ctx context.Context, id uuid.UUID) (repository.Lead, error)
	Update(ctx context.Context, lead repository.Lead) (repository.Lead, error)
	List(ctx context.Context, filter repository.ListFilter) ([]repository.Lead, error)
}

type Service struct {
	store Store
	bus   events.Bus
	log   *logger.Logger
}

func New(store Store, bus events.Bus, log *logger.Logger) *Service {
	return &Service{store: store, bus: bus, log: log}
}

// Create captures an intake submission. The phone number is normalized to
// E.164, the stage starts at New and the score is derived before the insert.
func (s *Service) Create(ctx context.Context, req transport.CreateLeadRequest) (repository.Lead, error) {
	lead := newLead(req)
	lead.Score = scoring.Score(lead)

	created, err := s.store.Create(ctx, lead)
	if err != nil {
		s.log.DatabaseError("leads.create", err)
		return repository.Lead{}, err
	}

	s.bus.Publish(ctx, events.LeadCaptured{
		BaseEvent: events.NewBaseEvent(),
		LeadID:    created.ID,
		Role:      created.Role,
		FirstName: deref(created.FirstName),
		LastName:  deref(created.LastName),
		Email:     deref(created.Email),
		Phone:     deref(created.Phone),
		ZipCode:   deref(created.ZipCode),
		Timeline:  deref(created.Timeline),
		Score:     created.Score,
	})

	return created, nil
}

// GetByID fetches a lead for the admin detail view.
func (s *Service) GetByID(ctx context.Context, id uuid.UUID) (repository.Lead, error) {
	lead, err := s.store.GetByID(ctx, id)
	if errors.Is(err, repository.ErrNotFound) {
		return repository.Lead{}, apperr.NotFound("lead not found")
	}
	if err != nil {
		s.log.DatabaseError("leads.get", err)
		return repository.Lead{}, err
	}
	return lead, nil
}

// Update applies a partial admin edit and recomputes the score. Fields absent
// from the request are left as stored.
func (s *Service) Update(ctx context.Context, id uuid.UUID, req transport.UpdateLeadRequest) (repository.Lead, error) {
	lead, err := s.GetByID(ctx, id)
	if err != nil {
		return repository.Lead{}, err
	}

	lead = applyUpdate(lead, req)
	lead.Score = scoring.Score(lead)

	updated, err := s.store.Update(ctx, lead)
	if errors.Is(err, repository.ErrNotFound) {
		return repository.Lead{}, apperr.NotFound("lead not found")
	}
	if err != nil {
		s.log.DatabaseError("leads.update", err)
		return repository.Lead{}, err
	}

	s.bus.Publish(ctx, events.LeadUpdated{
		BaseEvent: events.NewBaseEvent(),
		LeadID:    updated.ID,
		Stage:     updated.Stage,
		Score:     updated.Score,
	})

	return updated, nil
}

// List returns leads matching the filter, hottest first.
func (s *Service) List(ctx context.Context, filter repository.ListFilter) ([]repository.Lead, error) {
	leads, err := s.store.List(ctx, filter)
	if err != nil {
		s.log.DatabaseError("leads.list", err)
		return nil, err
	}
	return leads, nil
}

// newLead maps an intake request to a storable lead with defaults applied.
func newLead(req transport.CreateLeadRequest) repository.Lead {
	lead := repository.Lead{
		Role:         req.Role,
		FirstName:    req.FirstName,
		LastName:     req.LastName,
		Email:        req.Email,
		Phone:        normalizedPhone(req.Phone),
		Address:      req.Address,
		ZipCode:      req.ZipCode,
		Beds:         req.Beds,
		Baths:        req.Baths,
		Sqft:         req.Sqft,
		PriceMin:     req.PriceMin,
		PriceMax:     req.PriceMax,
		Timeline:     req.Timeline,
		Tags:         req.Tags,
		Stage:        domain.StageNew,
		ConsentSMS:   req.ConsentSMS != nil && *req.ConsentSMS,
		ConsentEmail: req.ConsentEmail != nil && *req.ConsentEmail,
	}
	return lead
}

// applyUpdate overlays the non-nil request fields onto the stored lead.
func applyUpdate(lead repository.Lead, req transport.UpdateLeadRequest) repository.Lead {
	if req.Role != nil {
		lead.Role = *req.Role
	}
	if req.FirstName != nil {
		lead.FirstName = req.FirstName
	}
	if req.LastName != nil {
		lead.LastName = req.LastName
	}
	if req.Email != nil {
		lead.Email = req.Email
	}
	if req.Phone != nil {
		lead.Phone = normalizedPhone(req.Phone)
	}
	if req.Address != nil {
		lead.Address = req.Address
	}
	if req.ZipCode != nil {
		lead.ZipCode = req.ZipCode
	}
	if req.Beds != nil {
		lead.Beds = req.Beds
	}
	if req.Baths != nil {
		lead.Baths = req.Baths
	}
	if req.Sqft != nil {
		lead.Sqft = req.Sqft
	}
	if req.PriceMin != nil {
		lead.PriceMin = req.PriceMin
	}
	if req.PriceMax != nil {
		lead.PriceMax = req.PriceMax
	}
	if req.Timeline != nil {
		lead.Timeline = req.Timeline
	}
	if req.Tags != nil {
		lead.Tags = req.Tags
	}
	if req.Stage != nil {
		lead.Stage = *req.Stage
	}
	if req.ConsentSMS != nil {
		lead.ConsentSMS = *req.ConsentSMS
	}
	if req.ConsentEmail != nil {
		lead.ConsentEmail = *req.ConsentEmail
	}
	return lead
}

func normalizedPhone(value *string) *string {
	if value == nil {
		return nil
	}
	normalized := phone.NormalizeE164(*value)
	if strings.TrimSpace(normalized) == "" {
		return nil
	}
	return &normalized
}

func deref(value *string) string {
	if value == nil {
		return ""
	}
	return *value
}
