package dto

import "time"

type PersonalDetails struct {
	FullName        string `json:"fullName" yaml:"fullName" validate:"required,max=100"`
	DateOfBirth     string `json:"dateOfBirth" yaml:"dateOfBirth" validate:"required,datetime=2006-01-02"`
	Gender          string `json:"gender" yaml:"gender" validate:"required,oneof=Male Female Other"`
	ContactNumber   string `json:"contactNumber" yaml:"contactNumber" validate:"required,max=20"`
	EmailAddress    string `json:"emailAddress" yaml:"emailAddress" validate:"required,email"`
	LinkedinProfile string `json:"linkedinProfile,omitempty" yaml:"linkedinProfile" validate:"omitempty,url"`
	GithubPortfolio string `json:"githubPortfolio,omitempty" yaml:"githubPortfolio" validate:"omitempty,url"`
}

type EducationDetails struct {
	HighestQualification string `json:"highestQualification" yaml:"highestQualification" validate:"required"`
	InstitutionName      string `json:"institutionName" yaml:"institutionName" validate:"required"`
	YearOfGraduation     string `json:"yearOfGraduation" yaml:"yearOfGraduation" validate:"required,numeric,len=4"`
	CgpaPercentage       string `json:"cgpaPercentage" yaml:"cgpaPercentage" validate:"required"`
}

type WorkExperience struct {
	TotalYearsExperience          int    `json:"totalYearsExperience" yaml:"totalYearsExperience" validate:"gte=0"`
	CurrentLastCompany            string `json:"currentLastCompany,omitempty" yaml:"currentLastCompany"`
	CurrentLastDesignation        string `json:"currentLastDesignation,omitempty" yaml:"currentLastDesignation"`
	RelevantExperienceDescription string `json:"relevantExperienceDescription,omitempty" yaml:"relevantExperienceDescription" validate:"max=1000"`
}

type Skills struct {
	TechnicalSkills []string `json:"technicalSkills" yaml:"technicalSkills" validate:"min=1,dive,required"`
	SoftSkills      []string `json:"softSkills" yaml:"softSkills"`
}

type Project struct {
	ProjectName      string   `json:"projectName,omitempty" yaml:"projectName"`
	Role             string   `json:"role,omitempty" yaml:"role"`
	Duration         string   `json:"duration,omitempty" yaml:"duration"`
	TechnologiesUsed []string `json:"technologiesUsed" yaml:"technologiesUsed"`
	Description      string   `json:"description,omitempty" yaml:"description" validate:"max=500"`
}

type AdditionalInfo struct {
	WhyJoinInternship          string `json:"whyJoinInternship" yaml:"whyJoinInternship" validate:"required,max=1000"`
	AchievementsCertifications string `json:"achievementsCertifications,omitempty" yaml:"achievementsCertifications" validate:"max=1000"`
	ResumeURL                  string `json:"resumeUrl" yaml:"resumeUrl" validate:"required"`
	PortfolioURL               string `json:"portfolioUrl,omitempty" yaml:"portfolioUrl" validate:"omitempty,url"`
}

type Declarations struct {
	InformationTruthful bool `json:"informationTruthful" yaml:"informationTruthful" validate:"required"`
	ConsentToShare      bool `json:"consentToShare" yaml:"consentToShare" validate:"required"`
}

// ApplicationDraft is the in-progress internship application, one section per
// wizard step except projects which may hold several slots.
type ApplicationDraft struct {
	PersonalDetails  PersonalDetails  `json:"personalDetails" yaml:"personalDetails"`
	EducationDetails EducationDetails `json:"educationDetails" yaml:"educationDetails"`
	WorkExperience   WorkExperience   `json:"workExperience" yaml:"workExperience"`
	Skills           Skills           `json:"skills" yaml:"skills"`
	Projects         []Project        `json:"projects" yaml:"projects" validate:"min=1,dive"`
	AdditionalInfo   AdditionalInfo   `json:"additionalInfo" yaml:"additionalInfo"`
	Declarations     Declarations     `json:"declarations" yaml:"declarations"`
}

// NewApplicationDraft returns an empty draft with the single mandatory project slot.
func NewApplicationDraft() ApplicationDraft {
	return ApplicationDraft{
		Skills:   Skills{TechnicalSkills: []string{}, SoftSkills: []string{}},
		Projects: []Project{{TechnologiesUsed: []string{}}},
	}
}

// Clone returns a deep copy so callers never share slices with the original.
func (d ApplicationDraft) Clone() ApplicationDraft {
	out := d
	out.Skills.TechnicalSkills = cloneStrings(d.Skills.TechnicalSkills)
	out.Skills.SoftSkills = cloneStrings(d.Skills.SoftSkills)
	out.Projects = make([]Project, len(d.Projects))
	for i, p := range d.Projects {
		p.TechnologiesUsed = cloneStrings(p.TechnologiesUsed)
		out.Projects[i] = p
	}
	return out
}

func cloneStrings(in []string) []string {
	out := make([]string, len(in))
	copy(out, in)
	return out
}

// InternshipDetails is synthesized from the posting being applied to, never
// from user input.
type InternshipDetails struct {
	Title       string    `json:"title"`
	Type        string    `json:"type" validate:"oneof=Paid Unpaid"`
	Duration    string    `json:"duration"`
	StartDate   time.Time `json:"startDate"`
	WorkMode    string    `json:"workMode" validate:"oneof=Remote Onsite Hybrid"`
	Eligibility string    `json:"eligibility" validate:"oneof='Freshers Only' 'Experienced Only' Both"`
}

// ApplicationPayload is the wire body of POST /api/jobseeker/internships/:id/apply-detailed.
type ApplicationPayload struct {
	ApplicationDraft
	InternshipDetails InternshipDetails `json:"internshipDetails"`
}

type ApplicationStatusRequest struct {
	Status string `json:"status" validate:"required,oneof=pending reviewed shortlisted rejected accepted"`
	Notes  string `json:"notes" validate:"max=2000"`
}

type Matching struct {
	Matched   []string `json:"matched"`
	Unmatched []string `json:"unmatched"`
}

// ApplicationDTO is the read model of a stored application.
type ApplicationDTO struct {
	ID                string            `json:"id"`
	InternshipID      string            `json:"internshipId"`
	JobseekerID       string            `json:"jobseekerId"`
	EmployerID        string            `json:"employerId"`
	Status            string            `json:"status"`
	MatchScore        int               `json:"matchScore"`
	Matching          Matching          `json:"matching"`
	Decision          string            `json:"decision,omitempty"`
	Summary           string            `json:"summary,omitempty"`
	EmployerNotes     string            `json:"employerNotes,omitempty"`
	InternshipDetails InternshipDetails `json:"internshipDetails"`
	PersonalDetails   PersonalDetails   `json:"personalDetails"`
	EducationDetails  EducationDetails  `json:"educationDetails"`
	WorkExperience    WorkExperience    `json:"workExperience"`
	Skills            Skills            `json:"skills"`
	Projects          []Project         `json:"projects"`
	AdditionalInfo    AdditionalInfo    `json:"additionalInfo"`
	AppliedAt         time.Time         `json:"appliedAt"`
	ReviewedAt        *time.Time        `json:"reviewedAt,omitempty"`
	UpdatedAt         time.Time         `json:"updatedAt"`
}

type ApplicationStatusDTO struct {
	ApplicationID string    `json:"applicationId"`
	Status        string    `json:"status"`
	UpdatedAt     time.Time `json:"updatedAt"`
}
