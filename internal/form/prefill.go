package form

import "github.com/fadilmartias/skillsyncer/internal/dto"

// PrefillFromProfile seeds a new draft from the jobseeker's stored profile.
// Only the first education entry is used.
func PrefillFromProfile(v dto.ProfileView) dto.ApplicationDraft {
	d := dto.NewApplicationDraft()

	d.PersonalDetails.FullName = v.User.Name
	d.PersonalDetails.EmailAddress = v.User.Email
	d.PersonalDetails.ContactNumber = v.User.Phone
	d.PersonalDetails.LinkedinProfile = v.User.SocialLinks.Linkedin
	d.PersonalDetails.GithubPortfolio = v.User.SocialLinks.Github

	if len(v.Profile.Education) > 0 {
		edu := v.Profile.Education[0]
		d.EducationDetails.HighestQualification = edu.Degree
		d.EducationDetails.InstitutionName = edu.Institution
		d.EducationDetails.YearOfGraduation = edu.Year
		d.EducationDetails.CgpaPercentage = edu.GPA
	}

	if len(v.Profile.Skills) > 0 {
		d.Skills.TechnicalSkills = append([]string{}, v.Profile.Skills...)
	}

	d.AdditionalInfo.ResumeURL = v.ResumeURL
	if d.AdditionalInfo.ResumeURL == "" {
		d.AdditionalInfo.ResumeURL = v.Profile.ResumeURL
	}
	d.AdditionalInfo.PortfolioURL = v.User.Portfolio
	return d
}
