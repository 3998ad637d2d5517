package scoring

import (
	"testing"

	"leadgen_backend/internal/leads/domain"
	"leadgen_backend/internal/leads/repository"
)

func strPtr(s string) *string { return &s }

func TestScoreEmptyLead(t *testing.T) {
	if got := Score(repository.Lead{Role: domain.RoleBuyer, Stage: domain.StageNew}); got != 0 {
		t.Fatalf("expected empty buyer lead to score 0, got %d", got)
	}
}

func TestScoreContactability(t *testing.T) {
	base := repository.Lead{Role: domain.RoleBuyer, Stage: domain.StageNew}

	withPhone := base
	withPhone.Phone = strPtr("+13015550100")
	if got := Score(withPhone); got != 15 {
		t.Fatalf("expected phone to add 15, got %d", got)
	}

	withEmail := base
	withEmail.Email = strPtr("lead@example.com")
	if got := Score(withEmail); got != 10 {
		t.Fatalf("expected email to add 10, got %d", got)
	}

	blankPhone := base
	blankPhone.Phone = strPtr("   ")
	if got := Score(blankPhone); got != 0 {
		t.Fatalf("expected blank phone to add nothing, got %d", got)
	}
}

func TestScoreTimelineUrgency(t *testing.T) {
	base := repository.Lead{Role: domain.RoleBuyer, Stage: domain.StageNew}

	cases := []struct {
		timeline string
		want     int
	}{
		{domain.TimelineImmediate, 15},
		{domain.TimelineSoon, 15},
		{domain.TimelineLater, 0},
		{domain.TimelineSomeday, 0},
	}
	for _, tc := range cases {
		lead := base
		lead.Timeline = strPtr(tc.timeline)
		if got := Score(lead); got != tc.want {
			t.Fatalf("timeline %q: expected %d, got %d", tc.timeline, tc.want, got)
		}
	}
}

func TestScoreSellerWithAddress(t *testing.T) {
	seller := repository.Lead{
		Role:    domain.RoleSeller,
		Stage:   domain.StageNew,
		Address: strPtr("123 Main St"),
	}
	if got := Score(seller); got != 20 {
		t.Fatalf("expected seller with address to score 20, got %d", got)
	}

	buyer := seller
	buyer.Role = domain.RoleBuyer
	if got := Score(buyer); got != 0 {
		t.Fatalf("expected buyer with address to score 0, got %d", got)
	}

	sellerNoAddress := seller
	sellerNoAddress.Address = nil
	if got := Score(sellerNoAddress); got != 0 {
		t.Fatalf("expected seller without address to score 0, got %d", got)
	}
}

func TestScoreConsent(t *testing.T) {
	lead := repository.Lead{
		Role:         domain.RoleBuyer,
		Stage:        domain.StageNew,
		ConsentSMS:   true,
		ConsentEmail: true,
	}
	if got := Score(lead); got != 15 {
		t.Fatalf("expected sms+email consent to score 15, got %d", got)
	}
}

func TestScoreStageProgressionIsMonotonic(t *testing.T) {
	stageScore := func(stage string) int {
		return Score(repository.Lead{Role: domain.RoleBuyer, Stage: stage})
	}

	funnel := []string{
		domain.StageNew,
		domain.StageContacted,
		domain.StageQualified,
		domain.StageAppointment,
		domain.StageAgreement,
	}
	for i := 1; i < len(funnel); i++ {
		if stageScore(funnel[i]) <= stageScore(funnel[i-1]) {
			t.Fatalf("expected %s to outscore %s", funnel[i], funnel[i-1])
		}
	}

	if stageScore(domain.StageClosedLost) != stageScore(domain.StageNew) {
		t.Fatal("expected Closed/Lost to reset stage points to zero")
	}
}

func TestScoreFullyQualifiedSeller(t *testing.T) {
	lead := repository.Lead{
		Role:         domain.RoleSeller,
		Stage:        domain.StageAgreement,
		Phone:        strPtr("+13015550100"),
		Email:        strPtr("seller@example.com"),
		Address:      strPtr("123 Main St, Upper Marlboro"),
		Timeline:     strPtr(domain.TimelineImmediate),
		ConsentSMS:   true,
		ConsentEmail: true,
	}
	// 15 + 10 + 15 + 20 + 10 + 5 + 30
	if got := Score(lead); got != 105 {
		t.Fatalf("expected fully qualified seller to score 105, got %d", got)
	}
}
