package form

import (
	"strings"
	"testing"
	"time"

	"github.com/fadilmartias/skillsyncer/internal/dto"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

var postingNow = time.Date(2026, 10, 1, 9, 0, 0, 0, time.UTC)

func validPostingDraft() dto.PostingDraft {
	return dto.PostingDraft{
		Title:           "Data Analyst Intern",
		Location:        "Bengaluru",
		StartDate:       "2026-11-15",
		LastDateToApply: "2026-10-30",
		TotalSeats:      5,
		Description:     "Work with the analytics team.",
		SkillsRequired:  []string{"SQL", "Excel"},
		Eligibility:     "Final year students",
		Stipend:         dto.Stipend{Amount: 15000},
	}
}

func TestValidatePosting_Valid(t *testing.T) {
	assert.Empty(t, ValidatePosting(validPostingDraft(), postingNow))
}

func TestValidatePosting_Rules(t *testing.T) {
	tests := []struct {
		name   string
		mutate func(d *dto.PostingDraft)
		key    string
		msg    string
	}{
		{"missing title", func(d *dto.PostingDraft) { d.Title = "" }, "title", "Internship title is required"},
		{"long title", func(d *dto.PostingDraft) { d.Title = strings.Repeat("a", 101) }, "title", "Title cannot exceed 100 characters"},
		{"long multibyte title", func(d *dto.PostingDraft) { d.Title = strings.Repeat("डे", 51) }, "title", "Title cannot exceed 100 characters"},
		{"missing location", func(d *dto.PostingDraft) { d.Location = " " }, "location", "Location is required"},
		{"long description", func(d *dto.PostingDraft) { d.Description = strings.Repeat("d", 2001) }, "description", "Description cannot exceed 2000 characters"},
		{"blank skills", func(d *dto.PostingDraft) { d.SkillsRequired = []string{" ", ""} }, "skillsRequired", "At least one skill is required"},
		{"no seats", func(d *dto.PostingDraft) { d.TotalSeats = 0 }, "totalSeats", "At least 1 seat must be available"},
		{"negative stipend", func(d *dto.PostingDraft) { d.Stipend.Amount = -1 }, "stipend.amount", "Stipend amount cannot be negative"},
		{"deadline passed", func(d *dto.PostingDraft) { d.LastDateToApply = "2026-09-30" }, "lastDateToApply", "Last date to apply must be in the future"},
		{"start before deadline", func(d *dto.PostingDraft) { d.StartDate = "2026-10-20" }, "startDate", "Start date must be after last date to apply"},
		{"start equals deadline", func(d *dto.PostingDraft) { d.StartDate = "2026-10-30" }, "startDate", "Start date must be after last date to apply"},
		{"bad date", func(d *dto.PostingDraft) { d.StartDate = "15/11/2026" }, "startDate", "Start date must be a valid date"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			d := validPostingDraft()
			tt.mutate(&d)

			errs := ValidatePosting(d, postingNow)
			assert.Equal(t, tt.msg, errs[tt.key])
		})
	}
}

func TestValidatePosting_CountsCharactersNotBytes(t *testing.T) {
	d := validPostingDraft()
	d.Title = strings.Repeat("डे", 30)
	d.Description = strings.Repeat("विवरण", 200)

	errs := ValidatePosting(d, postingNow)

	assert.NotContains(t, errs, "title")
	assert.NotContains(t, errs, "description")

	d.Description = strings.Repeat("ज", 2001)
	errs = ValidatePosting(d, postingNow)
	assert.Equal(t, "Description cannot exceed 2000 characters", errs["description"])
}

func TestNormalizePosting_Defaults(t *testing.T) {
	d := validPostingDraft()
	d.Title = "  Data Analyst Intern "
	d.SkillsRequired = []string{"SQL", " SQL ", "", "Excel"}
	d.Benefits = []string{"Certificate", " "}

	p := NormalizePosting(d)

	assert.Equal(t, "Data Analyst Intern", p.Title)
	assert.Equal(t, "IT/Technology", p.Industry)
	assert.Equal(t, "Offline", p.Mode)
	assert.Equal(t, "3 months", p.Duration)
	assert.Equal(t, "INR", p.Stipend.Currency)
	assert.Equal(t, "Fixed", p.Stipend.Type)
	assert.Equal(t, []string{"SQL", "Excel"}, p.SkillsRequired)
	assert.Equal(t, []string{"Certificate"}, p.Benefits)
	assert.Empty(t, p.Tags)
	require.False(t, p.StartDate.IsZero())
	assert.Equal(t, time.Date(2026, 11, 15, 0, 0, 0, 0, time.UTC), p.StartDate)
}

func TestNormalizePosting_UnpaidZeroesAmount(t *testing.T) {
	d := validPostingDraft()
	d.Stipend = dto.Stipend{Amount: 5000, Type: "Unpaid", Currency: "USD"}

	p := NormalizePosting(d)

	assert.Equal(t, dto.Stipend{Amount: 0, Type: "Unpaid", Currency: "USD"}, p.Stipend)
}
