package form

import (
	"testing"
	"time"

	"github.com/fadilmartias/skillsyncer/internal/dto"
	"github.com/stretchr/testify/assert"
)

func samplePosting() dto.Posting {
	return dto.Posting{
		ID:          "b7c3",
		Title:       "Backend Intern",
		Mode:        "Online",
		Duration:    "3 months",
		StartDate:   time.Date(2026, 12, 1, 0, 0, 0, 0, time.UTC),
		Eligibility: "Part-time",
		Stipend:     dto.Stipend{Type: "Unpaid"},
	}
}

func TestInternshipDetailsFor_MapsEnums(t *testing.T) {
	got := InternshipDetailsFor(samplePosting())

	assert.Equal(t, dto.InternshipDetails{
		Title:       "Backend Intern",
		Type:        "Unpaid",
		Duration:    "3 months",
		StartDate:   time.Date(2026, 12, 1, 0, 0, 0, 0, time.UTC),
		WorkMode:    "Remote",
		Eligibility: "Both",
	}, got)
}

func TestInternshipDetailsFor_Table(t *testing.T) {
	tests := []struct {
		name        string
		stipendType string
		mode        string
		eligibility string
		wantType    string
		wantMode    string
		wantElig    string
	}{
		{"fixed offline freshers", "Fixed", "Offline", "Freshers Only", "Paid", "Onsite", "Freshers Only"},
		{"negotiable hybrid", "Negotiable", "Hybrid", "Experienced Only", "Paid", "Hybrid", "Experienced Only"},
		{"empty stipend type", "", "Remote", "Both", "Paid", "Remote", "Both"},
		{"free text eligibility", "Performance-based", "Online", "B.Tech students", "Paid", "Remote", "Both"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			p := samplePosting()
			p.Stipend.Type = tt.stipendType
			p.Mode = tt.mode
			p.Eligibility = tt.eligibility

			got := InternshipDetailsFor(p)
			assert.Equal(t, tt.wantType, got.Type)
			assert.Equal(t, tt.wantMode, got.WorkMode)
			assert.Equal(t, tt.wantElig, got.Eligibility)
		})
	}
}

func TestNormalizeApplication_IsPure(t *testing.T) {
	d := completeDraft()
	p := samplePosting()

	first := NormalizeApplication(d, p)
	second := NormalizeApplication(d, p)
	assert.Equal(t, first, second)

	first.Skills.TechnicalSkills[0] = "Changed"
	assert.Equal(t, "Go", d.Skills.TechnicalSkills[0])
	assert.Equal(t, "Go", second.Skills.TechnicalSkills[0])
}

func TestNormalizeApplication_CarriesDraft(t *testing.T) {
	d := completeDraft()
	got := NormalizeApplication(d, samplePosting())

	assert.Equal(t, d.PersonalDetails, got.PersonalDetails)
	assert.Equal(t, d.Declarations, got.Declarations)
	assert.Equal(t, "Backend Intern", got.InternshipDetails.Title)
}
