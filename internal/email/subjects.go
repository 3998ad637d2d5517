package email

const (
	subjectNewLeadFmt = "New %s lead: %s (score %d)"
)
