package form

import "github.com/fadilmartias/skillsyncer/internal/dto"

func completeDraft() dto.ApplicationDraft {
	d := dto.NewApplicationDraft()
	d.PersonalDetails = dto.PersonalDetails{
		FullName:      "Asha Verma",
		DateOfBirth:   "2002-04-18",
		Gender:        "Female",
		ContactNumber: "+91 98765 43210",
		EmailAddress:  "asha@example.com",
	}
	d.EducationDetails = dto.EducationDetails{
		HighestQualification: "B.Tech",
		InstitutionName:      "NIT Trichy",
		YearOfGraduation:     "2024",
		CgpaPercentage:       "8.4",
	}
	d.Skills.TechnicalSkills = []string{"Go", "PostgreSQL"}
	d.AdditionalInfo = dto.AdditionalInfo{
		WhyJoinInternship: "I want to build backend systems.",
		ResumeURL:         "https://cdn.example.com/resumes/asha.pdf",
	}
	d.Declarations = dto.Declarations{InformationTruthful: true, ConsentToShare: true}
	return d
}
