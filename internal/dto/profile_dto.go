package dto

type EducationEntry struct {
	Degree         string `json:"degree"`
	Specialization string `json:"specialization,omitempty"`
	Institution    string `json:"institution"`
	Year           string `json:"year,omitempty"`
	GPA            string `json:"gpa,omitempty"`
}

type SocialLinks struct {
	Linkedin string `json:"linkedin,omitempty"`
	Github   string `json:"github,omitempty"`
}

type UserDTO struct {
	ID          string      `json:"id"`
	Name        string      `json:"name"`
	Email       string      `json:"email"`
	Role        string      `json:"role"`
	Phone       string      `json:"phone,omitempty"`
	SocialLinks SocialLinks `json:"socialLinks"`
	Portfolio   string      `json:"portfolio,omitempty"`
}

type ProfileDTO struct {
	Education                  []EducationEntry `json:"education"`
	Skills                     []string         `json:"skills"`
	ExtractedSkills            []string         `json:"extractedSkills,omitempty"`
	ResumeURL                  string           `json:"resumeUrl,omitempty"`
	InternshipTitle            string           `json:"internshipTitle,omitempty"`
	InternshipType             string           `json:"internshipType,omitempty"`
	PreferredLocation          string           `json:"preferredLocation,omitempty"`
	ReadyToWorkAfterInternship bool             `json:"readyToWorkAfterInternship"`
	ATSScore                   int              `json:"atsScore"`
}

// ProfileView is the data object of GET /api/jobseeker/profile.
type ProfileView struct {
	User              UserDTO    `json:"user"`
	Profile           ProfileDTO `json:"profile"`
	ResumeURL         string     `json:"resumeUrl,omitempty"`
	ProfileCompletion int        `json:"profileCompletion"`
}

type UpdateProfileRequest struct {
	Name                       *string          `json:"name" validate:"omitempty,max=100"`
	Phone                      *string          `json:"phone" validate:"omitempty,max=20"`
	SocialLinks                *SocialLinks     `json:"socialLinks"`
	Portfolio                  *string          `json:"portfolio" validate:"omitempty,url"`
	Education                  []EducationEntry `json:"education"`
	Skills                     []string         `json:"skills"`
	ResumeURL                  *string          `json:"resumeUrl"`
	InternshipTitle            *string          `json:"internshipTitle"`
	InternshipType             *string          `json:"internshipType" validate:"omitempty,oneof='15 days' '1 month' '3 months' '6 months' '1 year' 'Full day' 'Half day'"`
	PreferredLocation          *string          `json:"preferredLocation"`
	ReadyToWorkAfterInternship *bool            `json:"readyToWorkAfterInternship"`
}

type Suggestion struct {
	Category string `json:"category"`
	Priority string `json:"priority"`
	Message  string `json:"message"`
	Action   string `json:"action"`
}

type ScoreBreakdown struct {
	Skills     int `json:"skills"`
	Education  int `json:"education"`
	Resume     int `json:"resume"`
	Internship int `json:"internship"`
}

type ProfileSuggestionsDTO struct {
	ATSScore         int            `json:"atsScore"`
	Breakdown        ScoreBreakdown `json:"breakdown"`
	Suggestions      []Suggestion   `json:"suggestions"`
	TotalSuggestions int            `json:"totalSuggestions"`
}

type ResumeUploadDTO struct {
	ResumeURL string `json:"resumeUrl"`
}
