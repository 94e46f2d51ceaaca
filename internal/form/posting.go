package form

import (
	"strings"
	"time"
	"unicode/utf8"

	"github.com/fadilmartias/skillsyncer/internal/dto"
)

const DateLayout = "2006-01-02"

// ValidatePosting checks an employer posting form. Keys are the posting's
// JSON field names. Dates must satisfy now < lastDateToApply < startDate.
func ValidatePosting(d dto.PostingDraft, now time.Time) ValidationErrors {
	errs := ValidationErrors{}

	if blank(d.Title) {
		errs["title"] = "Internship title is required"
	} else if utf8.RuneCountInString(strings.TrimSpace(d.Title)) > 100 {
		errs["title"] = "Title cannot exceed 100 characters"
	}
	if blank(d.Location) {
		errs["location"] = "Location is required"
	}
	if blank(d.StartDate) {
		errs["startDate"] = "Start date is required"
	}
	if blank(d.LastDateToApply) {
		errs["lastDateToApply"] = "Last date to apply is required"
	}
	if blank(d.Description) {
		errs["description"] = "Description is required"
	} else if utf8.RuneCountInString(strings.TrimSpace(d.Description)) > 2000 {
		errs["description"] = "Description cannot exceed 2000 characters"
	}
	if len(compact(d.SkillsRequired)) == 0 {
		errs["skillsRequired"] = "At least one skill is required"
	}
	if blank(d.Eligibility) {
		errs["eligibility"] = "Eligibility criteria is required"
	}
	if d.TotalSeats < 1 {
		errs["totalSeats"] = "At least 1 seat must be available"
	}
	if d.Stipend.Amount < 0 {
		errs["stipend.amount"] = "Stipend amount cannot be negative"
	}

	if blank(d.StartDate) || blank(d.LastDateToApply) {
		return errs
	}
	start, startErr := time.Parse(DateLayout, strings.TrimSpace(d.StartDate))
	last, lastErr := time.Parse(DateLayout, strings.TrimSpace(d.LastDateToApply))
	if startErr != nil {
		errs["startDate"] = "Start date must be a valid date"
	}
	if lastErr != nil {
		errs["lastDateToApply"] = "Last date to apply must be a valid date"
	}
	if startErr != nil || lastErr != nil {
		return errs
	}
	if !last.After(now) {
		errs["lastDateToApply"] = "Last date to apply must be in the future"
	}
	if !start.After(last) {
		errs["startDate"] = "Start date must be after last date to apply"
	}
	return errs
}

// NormalizePosting trims the form, drops blank and repeated list entries and
// fills the documented defaults. Unparseable dates become zero values; call
// ValidatePosting first.
func NormalizePosting(d dto.PostingDraft) dto.PostingPayload {
	start, _ := time.Parse(DateLayout, strings.TrimSpace(d.StartDate))
	last, _ := time.Parse(DateLayout, strings.TrimSpace(d.LastDateToApply))

	stipend := d.Stipend
	stipend.Currency = orDefault(stipend.Currency, "INR")
	stipend.Type = orDefault(stipend.Type, "Fixed")
	if stipend.Type == "Unpaid" {
		stipend.Amount = 0
	}

	return dto.PostingPayload{
		Title:           strings.TrimSpace(d.Title),
		Industry:        orDefault(d.Industry, "IT/Technology"),
		Location:        strings.TrimSpace(d.Location),
		Mode:            orDefault(d.Mode, "Offline"),
		StartDate:       start,
		LastDateToApply: last,
		Duration:        orDefault(d.Duration, "3 months"),
		TotalSeats:      d.TotalSeats,
		Description:     strings.TrimSpace(d.Description),
		SkillsRequired:  compact(d.SkillsRequired),
		Eligibility:     strings.TrimSpace(d.Eligibility),
		Stipend:         stipend,
		Benefits:        compact(d.Benefits),
		Certifications:  compact(d.Certifications),
		Tags:            compact(d.Tags),
	}
}

func orDefault(v, def string) string {
	if v = strings.TrimSpace(v); v == "" {
		return def
	}
	return v
}

// compact trims entries and removes blanks and exact repeats, keeping order.
func compact(in []string) []string {
	out := make([]string, 0, len(in))
	seen := make(map[string]bool, len(in))
	for _, s := range in {
		s = strings.TrimSpace(s)
		if s == "" || seen[s] {
			continue
		}
		seen[s] = true
		out = append(out, s)
	}
	return out
}
