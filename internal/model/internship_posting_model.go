package model

import (
	"time"

	"github.com/fadilmartias/skillsyncer/internal/dto"
	"github.com/google/uuid"
	"github.com/pgvector/pgvector-go"
	"gorm.io/gorm"
)

// EmbeddingDimensions is the length of posting embedding vectors.
const EmbeddingDimensions = 768

const (
	PostingActive = "active"
	PostingClosed = "closed"
)

type InternshipPosting struct {
	ID                uuid.UUID        `gorm:"type:uuid;default:uuid_generate_v4();primaryKey" json:"id"`
	EmployerID        uuid.UUID        `gorm:"type:uuid;index;not null" json:"employer_id"`
	CompanyName       string           `gorm:"size:200" json:"company_name"`
	Title             string           `gorm:"size:100;not null" json:"title"`
	Industry          string           `gorm:"size:50;index" json:"industry"`
	Location          string           `gorm:"size:100;index" json:"location"`
	Mode              string           `gorm:"size:20;index" json:"mode"`
	StartDate         time.Time        `json:"start_date"`
	LastDateToApply   time.Time        `gorm:"index" json:"last_date_to_apply"`
	Duration          string           `gorm:"size:20" json:"duration"`
	TotalSeats        int              `json:"total_seats"`
	AvailableSeats    int              `json:"available_seats"`
	Description       string           `gorm:"type:text" json:"description"`
	SkillsRequired    []string         `gorm:"serializer:json;type:jsonb" json:"skills_required"`
	Eligibility       string           `gorm:"type:text" json:"eligibility"`
	Stipend           dto.Stipend      `gorm:"embedded;embeddedPrefix:stipend_" json:"stipend"`
	Benefits          []string         `gorm:"serializer:json;type:jsonb" json:"benefits"`
	Certifications    []string         `gorm:"serializer:json;type:jsonb" json:"certifications"`
	Tags              []string         `gorm:"serializer:json;type:jsonb" json:"tags"`
	Status            string           `gorm:"type:varchar(20);default:active;index" json:"status"`
	ApplicationsCount int              `json:"applications_count"`
	Embedding         *pgvector.Vector `gorm:"type:vector(768)" json:"-"`
	PostedAt          time.Time        `json:"posted_at"`
	CreatedAt         time.Time        `json:"created_at"`
	UpdatedAt         time.Time        `json:"updated_at"`
	DeletedAt         gorm.DeletedAt   `gorm:"index" json:"-"`
}

func (p *InternshipPosting) TableName() string {
	return "internship_postings"
}

// IsAcceptingApplications reports whether a new application may be filed at
// now. The last date to apply is inclusive.
func (p *InternshipPosting) IsAcceptingApplications(now time.Time) bool {
	if p.Status != PostingActive || p.AvailableSeats <= 0 {
		return false
	}
	y, m, d := p.LastDateToApply.Date()
	endOfDay := time.Date(y, m, d, 23, 59, 59, 0, p.LastDateToApply.Location())
	return !now.After(endOfDay)
}

// EmbeddingText is the text embedded for similarity search.
func (p *InternshipPosting) EmbeddingText() string {
	text := p.Title + "\n" + p.Description
	for _, s := range p.SkillsRequired {
		text += "\n" + s
	}
	return text
}
