// Package leads provides the lead-capture bounded context module: public
// intake plus the admin CRM listing and editing endpoints.
package leads

import (
	"leadgen_backend/internal/events"
	apphttp "leadgen_backend/internal/http"
	"leadgen_backend/internal/leads/domain"
	"leadgen_backend/internal/leads/handler"
	"leadgen_backend/internal/leads/repository"
	"leadgen_backend/internal/leads/service"
	"leadgen_backend/platform/logger"
	"leadgen_backend/platform/validator"

	govalidator "github.com/go-playground/validator/v10"
	"github.com/jackc/pgx/v5/pgxpool"
)

// Module is the leads bounded context module implementing http.Module.
type Module struct {
	handler *handler.Handler
	service *service.Service
}

// NewModule creates and initializes the leads module with all its dependencies.
// It registers the "stage" validation rule used by the transport DTOs.
func NewModule(pool *pgxpool.Pool, eventBus events.Bus, val *validator.Validator, log *logger.Logger) (*Module, error) {
	if err := val.RegisterValidation("stage", validStage); err != nil {
		return nil, err
	}

	repo := repository.New(pool)
	svc := service.New(repo, eventBus, log)
	h := handler.New(svc, val)

	return &Module{
		handler: h,
		service: svc,
	}, nil
}

func validStage(fl govalidator.FieldLevel) bool {
	return domain.IsKnownStage(fl.Field().String())
}

// Name returns the module identifier.
func (m *Module) Name() string {
	return "leads"
}

// Service returns the leads service for external use.
func (m *Module) Service() *service.Service {
	return m.service
}

// RegisterRoutes mounts leads routes on the provided router context.
func (m *Module) RegisterRoutes(ctx *apphttp.RouterContext) {
	m.handler.RegisterPublicRoutes(ctx.V1.Group("/leads"))
	m.handler.RegisterAdminRoutes(ctx.Admin.Group("/leads"))
}

// Compile-time check that Module implements http.Module
var _ apphttp.Module = (*Module)(nil)
