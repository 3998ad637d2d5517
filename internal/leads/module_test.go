package leads

import (
	"testing"

	"leadgen_backend/internal/leads/domain"
	"leadgen_backend/internal/leads/transport"
	platformevents "leadgen_backend/platform/events"
	"leadgen_backend/platform/logger"
	"leadgen_backend/platform/validator"
)

func strPtr(s string) *string { return &s }

func TestModuleRegistersStageValidation(t *testing.T) {
	log := logger.New("development")
	val := validator.New()

	if _, err := NewModule(nil, platformevents.NewInMemoryBus(log), val, log); err != nil {
		t.Fatalf("new module: %v", err)
	}

	for _, stage := range []string{
		domain.StageNew,
		domain.StageContacted,
		domain.StageQualified,
		domain.StageAppointment,
		domain.StageAgreement,
		domain.StageClosedLost,
	} {
		req := transport.UpdateLeadRequest{Stage: strPtr(stage)}
		if err := val.Struct(req); err != nil {
			t.Fatalf("expected stage %q to validate, got %v", stage, err)
		}
	}

	bogus := transport.UpdateLeadRequest{Stage: strPtr("Archived")}
	if err := val.Struct(bogus); err == nil {
		t.Fatal("expected unknown stage to fail validation")
	}

	filter := transport.ListLeadsRequest{Stage: strPtr("closed/lost")}
	if err := val.Struct(filter); err == nil {
		t.Fatal("expected stage matching to be case-sensitive")
	}
}
