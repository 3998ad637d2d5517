// Package scoring assigns a triage priority score to a lead.
//
// The score is a derived value: it is recomputed from the lead's other
// fields on every create and update, never set by a caller. Contactability,
// urgency, consent and pipeline stage each contribute independent points;
// stage is the dominant signal after the seller-with-address bonus.
package scoring

import (
	"strings"

	"leadgen_backend/internal/leads/domain"
	"leadgen_backend/internal/leads/repository"
)

const (
	pointsPhone             = 15
	pointsEmail             = 10
	pointsUrgentTimeline    = 15
	pointsSellerWithAddress = 20
	pointsConsentSMS        = 10
	pointsConsentEmail      = 5
)

// stagePoints rewards pipeline progress; a closed-lost lead drops back to the
// bottom of the triage list.
var stagePoints = map[string]int{
	domain.StageNew:         0,
	domain.StageContacted:   5,
	domain.StageQualified:   10,
	domain.StageAppointment: 20,
	domain.StageAgreement:   30,
	domain.StageClosedLost:  0,
}

// Score computes the priority score for a lead. Pure and total: any lead,
// however sparse, gets a number.
func Score(lead repository.Lead) int {
	score := 0

	if hasText(lead.Phone) {
		score += pointsPhone
	}
	if hasText(lead.Email) {
		score += pointsEmail
	}
	if isUrgentTimeline(lead.Timeline) {
		score += pointsUrgentTimeline
	}
	if lead.Role == domain.RoleSeller && hasText(lead.Address) {
		score += pointsSellerWithAddress
	}
	if lead.ConsentSMS {
		score += pointsConsentSMS
	}
	if lead.ConsentEmail {
		score += pointsConsentEmail
	}

	score += stagePoints[lead.Stage]

	return score
}

func hasText(value *string) bool {
	return value != nil && strings.TrimSpace(*value) != ""
}

func isUrgentTimeline(timeline *string) bool {
	if timeline == nil {
		return false
	}
	return *timeline == domain.TimelineImmediate || *timeline == domain.TimelineSoon
}
