package form

import "github.com/fadilmartias/skillsyncer/internal/dto"

var allowedEligibility = map[string]bool{
	"Freshers Only":    true,
	"Experienced Only": true,
	"Both":             true,
}

// InternshipDetailsFor maps a posting onto the internship details stored with
// an application. Unknown enum values fall back to defaults instead of failing.
func InternshipDetailsFor(p dto.Posting) dto.InternshipDetails {
	kind := "Paid"
	if p.Stipend.Type == "Unpaid" {
		kind = "Unpaid"
	}

	workMode := p.Mode
	switch p.Mode {
	case "Online":
		workMode = "Remote"
	case "Offline":
		workMode = "Onsite"
	}

	eligibility := p.Eligibility
	if !allowedEligibility[eligibility] {
		eligibility = "Both"
	}

	return dto.InternshipDetails{
		Title:       p.Title,
		Type:        kind,
		Duration:    p.Duration,
		StartDate:   p.StartDate,
		WorkMode:    workMode,
		Eligibility: eligibility,
	}
}

// NormalizeApplication builds the wire payload for a draft applied to posting.
func NormalizeApplication(d dto.ApplicationDraft, p dto.Posting) dto.ApplicationPayload {
	return dto.ApplicationPayload{
		ApplicationDraft:  d.Clone(),
		InternshipDetails: InternshipDetailsFor(p),
	}
}
