package dto

import "time"

type Stipend struct {
	Amount   float64 `json:"amount" yaml:"amount" validate:"gte=0"`
	Currency string  `json:"currency" yaml:"currency"`
	Type     string  `json:"type" yaml:"type" validate:"omitempty,oneof=Fixed Performance-based Negotiable Unpaid"`
}

// PostingDraft is the employer-side form for creating or editing an
// internship posting. Dates use the form's YYYY-MM-DD layout.
type PostingDraft struct {
	Title           string   `json:"title" yaml:"title" validate:"required,max=100"`
	Industry        string   `json:"industry" yaml:"industry" validate:"omitempty,oneof='IT/Technology' Banking Healthcare Education Retail Manufacturing Consulting Media 'Real Estate' Automotive 'Food & Beverage' Non-Profit Government Other"`
	Location        string   `json:"location" yaml:"location" validate:"required"`
	Mode            string   `json:"mode" yaml:"mode" validate:"omitempty,oneof=Online Offline Remote Hybrid"`
	StartDate       string   `json:"startDate" yaml:"startDate" validate:"required,datetime=2006-01-02"`
	LastDateToApply string   `json:"lastDateToApply" yaml:"lastDateToApply" validate:"required,datetime=2006-01-02"`
	Duration        string   `json:"duration" yaml:"duration" validate:"omitempty,oneof='15 days' '1 month' '3 months' '6 months' '1 year' 'Full day' 'Half day'"`
	TotalSeats      int      `json:"totalSeats" yaml:"totalSeats" validate:"gte=1,lte=1000"`
	Description     string   `json:"description" yaml:"description" validate:"required,max=2000"`
	SkillsRequired  []string `json:"skillsRequired" yaml:"skillsRequired" validate:"min=1,dive,required"`
	Eligibility     string   `json:"eligibility" yaml:"eligibility" validate:"required,max=1000"`
	Stipend         Stipend  `json:"stipend" yaml:"stipend"`
	Benefits        []string `json:"benefits" yaml:"benefits"`
	Certifications  []string `json:"certifications" yaml:"certifications"`
	Tags            []string `json:"tags,omitempty" yaml:"tags"`
}

// PostingPayload is the normalized wire body of the posting create/update calls.
type PostingPayload struct {
	Title           string    `json:"title" validate:"required,max=100"`
	Industry        string    `json:"industry"`
	Location        string    `json:"location" validate:"required"`
	Mode            string    `json:"mode" validate:"omitempty,oneof=Online Offline Remote Hybrid"`
	StartDate       time.Time `json:"startDate" validate:"required"`
	LastDateToApply time.Time `json:"lastDateToApply" validate:"required"`
	Duration        string    `json:"duration"`
	TotalSeats      int       `json:"totalSeats" validate:"gte=1,lte=1000"`
	Description     string    `json:"description" validate:"required,max=2000"`
	SkillsRequired  []string  `json:"skillsRequired" validate:"min=1,dive,required"`
	Eligibility     string    `json:"eligibility" validate:"required,max=1000"`
	Stipend         Stipend   `json:"stipend"`
	Benefits        []string  `json:"benefits"`
	Certifications  []string  `json:"certifications"`
	Tags            []string  `json:"tags,omitempty"`
}

// Posting is the read model of an internship posting as served by the API.
type Posting struct {
	ID                string    `json:"id"`
	EmployerID        string    `json:"employerId"`
	CompanyName       string    `json:"companyName"`
	Title             string    `json:"title"`
	Industry          string    `json:"industry"`
	Location          string    `json:"location"`
	Mode              string    `json:"mode"`
	StartDate         time.Time `json:"startDate"`
	LastDateToApply   time.Time `json:"lastDateToApply"`
	Duration          string    `json:"duration"`
	TotalSeats        int       `json:"totalSeats"`
	AvailableSeats    int       `json:"availableSeats"`
	Description       string    `json:"description"`
	SkillsRequired    []string  `json:"skillsRequired"`
	Eligibility       string    `json:"eligibility"`
	Stipend           Stipend   `json:"stipend"`
	Benefits          []string  `json:"benefits"`
	Certifications    []string  `json:"certifications"`
	Tags              []string  `json:"tags,omitempty"`
	Status            string    `json:"status"`
	ApplicationsCount int       `json:"applicationsCount"`
	PostedAt          time.Time `json:"postedAt"`
}

type PostingFilter struct {
	Industry string
	Location string
	Mode     string
	Skills   []string
}
