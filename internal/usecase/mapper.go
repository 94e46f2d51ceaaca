package usecase

import (
	"github.com/fadilmartias/skillsyncer/internal/dto"
	"github.com/fadilmartias/skillsyncer/internal/model"
)

func toPostingDTO(p *model.InternshipPosting) dto.Posting {
	return dto.Posting{
		ID:                p.ID.String(),
		EmployerID:        p.EmployerID.String(),
		CompanyName:       p.CompanyName,
		Title:             p.Title,
		Industry:          p.Industry,
		Location:          p.Location,
		Mode:              p.Mode,
		StartDate:         p.StartDate,
		LastDateToApply:   p.LastDateToApply,
		Duration:          p.Duration,
		TotalSeats:        p.TotalSeats,
		AvailableSeats:    p.AvailableSeats,
		Description:       p.Description,
		SkillsRequired:    nonNil(p.SkillsRequired),
		Eligibility:       p.Eligibility,
		Stipend:           p.Stipend,
		Benefits:          nonNil(p.Benefits),
		Certifications:    nonNil(p.Certifications),
		Tags:              p.Tags,
		Status:            p.Status,
		ApplicationsCount: p.ApplicationsCount,
		PostedAt:          p.PostedAt,
	}
}

func toPostingDTOs(in []model.InternshipPosting) []dto.Posting {
	out := make([]dto.Posting, len(in))
	for i := range in {
		out[i] = toPostingDTO(&in[i])
	}
	return out
}

// applyPayload copies the editable posting fields onto p.
func applyPayload(p *model.InternshipPosting, in dto.PostingPayload) {
	p.Title = in.Title
	p.Industry = in.Industry
	p.Location = in.Location
	p.Mode = in.Mode
	p.StartDate = in.StartDate
	p.LastDateToApply = in.LastDateToApply
	p.Duration = in.Duration
	p.TotalSeats = in.TotalSeats
	p.Description = in.Description
	p.SkillsRequired = nonNil(in.SkillsRequired)
	p.Eligibility = in.Eligibility
	p.Stipend = in.Stipend
	p.Benefits = nonNil(in.Benefits)
	p.Certifications = nonNil(in.Certifications)
	p.Tags = in.Tags
}

func toApplicationDTO(a *model.InternshipApplication) dto.ApplicationDTO {
	return dto.ApplicationDTO{
		ID:                a.ID.String(),
		InternshipID:      a.InternshipID.String(),
		JobseekerID:       a.JobseekerID.String(),
		EmployerID:        a.EmployerID.String(),
		Status:            a.Status,
		MatchScore:        a.MatchScore,
		Matching:          a.Matching,
		Decision:          a.Decision,
		Summary:           a.Summary,
		EmployerNotes:     a.EmployerNotes,
		InternshipDetails: a.InternshipDetails,
		PersonalDetails:   a.PersonalDetails,
		EducationDetails:  a.EducationDetails,
		WorkExperience:    a.WorkExperience,
		Skills:            a.Skills,
		Projects:          a.Projects,
		AdditionalInfo:    a.AdditionalInfo,
		AppliedAt:         a.AppliedAt,
		ReviewedAt:        a.ReviewedAt,
		UpdatedAt:         a.UpdatedAt,
	}
}

func toApplicationDTOs(in []model.InternshipApplication) []dto.ApplicationDTO {
	out := make([]dto.ApplicationDTO, len(in))
	for i := range in {
		out[i] = toApplicationDTO(&in[i])
	}
	return out
}

func toUserDTO(u *model.User) dto.UserDTO {
	return dto.UserDTO{
		ID:          u.ID.String(),
		Name:        u.Name,
		Email:       u.Email,
		Role:        u.Role,
		Phone:       u.Phone,
		SocialLinks: u.SocialLinks,
		Portfolio:   u.Portfolio,
	}
}

func toProfileDTO(p *model.JobseekerProfile) dto.ProfileDTO {
	return dto.ProfileDTO{
		Education:                  nonNilEducation(p.Education),
		Skills:                     nonNil(p.Skills),
		ExtractedSkills:            p.ExtractedSkills,
		ResumeURL:                  p.ResumeURL,
		InternshipTitle:            p.InternshipTitle,
		InternshipType:             p.InternshipType,
		PreferredLocation:          p.PreferredLocation,
		ReadyToWorkAfterInternship: p.ReadyToWorkAfterInternship,
		ATSScore:                   p.ATSScore,
	}
}

func nonNil(in []string) []string {
	if in == nil {
		return []string{}
	}
	return in
}

func nonNilEducation(in []dto.EducationEntry) []dto.EducationEntry {
	if in == nil {
		return []dto.EducationEntry{}
	}
	return in
}
