// Package domain holds the leads vocabulary shared across layers.
package domain

// Lead roles.
const (
	RoleSeller = "seller"
	RoleBuyer  = "buyer"
)

// Pipeline stages, in funnel order.
const (
	StageNew         = "New"
	StageContacted   = "Contacted"
	StageQualified   = "Qualified"
	StageAppointment = "Appointment"
	StageAgreement   = "Agreement"
	StageClosedLost  = "Closed/Lost"
)

// Timelines a lead can pick on intake (months until they act).
const (
	TimelineImmediate = "0-3"
	TimelineSoon      = "3-6"
	TimelineLater     = "6-12"
	TimelineSomeday   = "12+"
)

var knownStages = map[string]struct{}{
	StageNew:         {},
	StageContacted:   {},
	StageQualified:   {},
	StageAppointment: {},
	StageAgreement:   {},
	StageClosedLost:  {},
}

// IsKnownStage reports whether the value is a recognized pipeline stage.
func IsKnownStage(stage string) bool {
	_, ok := knownStages[stage]
	return ok
}
