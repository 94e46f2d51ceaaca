package scoring

import (
	"strings"

	"github.com/fadilmartias/skillsyncer/internal/dto"
)

const (
	maxSkills     = 30
	maxEducation  = 25
	maxResume     = 25
	maxInternship = 20

	PriorityHigh   = "high"
	PriorityMedium = "medium"
)

// ProfileRecord is the read-only profile input of Score.
type ProfileRecord struct {
	Skills            []string
	Education         []dto.EducationEntry
	ResumeURL         string
	InternshipTitle   string
	InternshipType    string
	PreferredLocation string
}

type Result struct {
	Score       int
	Breakdown   dto.ScoreBreakdown
	Suggestions []dto.Suggestion
}

// RecordFromProfile adapts the profile read model.
func RecordFromProfile(p dto.ProfileDTO) ProfileRecord {
	return ProfileRecord{
		Skills:            p.Skills,
		Education:         p.Education,
		ResumeURL:         p.ResumeURL,
		InternshipTitle:   p.InternshipTitle,
		InternshipType:    p.InternshipType,
		PreferredLocation: p.PreferredLocation,
	}
}

// Score rates how complete a profile is for automated screening. Each
// component is capped and the caps sum to 100.
func Score(p ProfileRecord) Result {
	b := dto.ScoreBreakdown{
		Skills:     min(maxSkills, 5*len(p.Skills)),
		Education:  min(maxEducation, 8*len(p.Education)),
		Internship: internshipScore(p),
	}
	if present(p.ResumeURL) {
		b.Resume = maxResume
	}

	return Result{
		Score:       b.Skills + b.Education + b.Resume + b.Internship,
		Breakdown:   b,
		Suggestions: suggestions(p, b),
	}
}

func internshipScore(p ProfileRecord) int {
	score := 0
	if present(p.InternshipTitle) {
		score += 10
	}
	if present(p.InternshipType) {
		score += 5
	}
	if present(p.PreferredLocation) {
		score += 5
	}
	return score
}

// suggestions are ordered skills, education, resume, internship details.
func suggestions(p ProfileRecord, b dto.ScoreBreakdown) []dto.Suggestion {
	out := []dto.Suggestion{}

	switch {
	case b.Skills == 0:
		out = append(out, dto.Suggestion{
			Category: "skills", Priority: PriorityHigh, Action: "add-skills",
			Message: "Add your technical skills to improve your ATS score",
		})
	case b.Skills < maxSkills:
		out = append(out, dto.Suggestion{
			Category: "skills", Priority: PriorityMedium, Action: "add-skills",
			Message: "Add more technical skills to improve your ATS score",
		})
	}

	switch {
	case b.Education == 0:
		out = append(out, dto.Suggestion{
			Category: "education", Priority: PriorityHigh, Action: "add-education",
			Message: "Add your educational background",
		})
	case b.Education < maxEducation:
		out = append(out, dto.Suggestion{
			Category: "education", Priority: PriorityMedium, Action: "add-education",
			Message: "Add more education entries such as certifications or diplomas",
		})
	}

	if b.Resume == 0 {
		out = append(out, dto.Suggestion{
			Category: "resume", Priority: PriorityHigh, Action: "upload-resume",
			Message: "Upload your resume to significantly improve your ATS score",
		})
	}

	switch {
	case b.Internship == 0:
		out = append(out, dto.Suggestion{
			Category: "internship", Priority: PriorityHigh, Action: "add-internship-details",
			Message: "Specify your desired internship title, type and preferred location",
		})
	case b.Internship < maxInternship:
		out = append(out, dto.Suggestion{
			Category: "internship", Priority: PriorityMedium, Action: "add-internship-details",
			Message: "Complete your internship preferences: " + strings.Join(missingInternshipFields(p), ", "),
		})
	}

	return out
}

func missingInternshipFields(p ProfileRecord) []string {
	var missing []string
	if !present(p.InternshipTitle) {
		missing = append(missing, "internship title")
	}
	if !present(p.InternshipType) {
		missing = append(missing, "internship type")
	}
	if !present(p.PreferredLocation) {
		missing = append(missing, "preferred location")
	}
	return missing
}

func present(s string) bool { return strings.TrimSpace(s) != "" }
