package model

import (
	"time"

	"github.com/fadilmartias/skillsyncer/internal/dto"
	"github.com/google/uuid"
)

type JobseekerProfile struct {
	ID                         uuid.UUID            `gorm:"type:uuid;default:uuid_generate_v4();primaryKey" json:"id"`
	UserID                     uuid.UUID            `gorm:"type:uuid;uniqueIndex;not null" json:"user_id"`
	Education                  []dto.EducationEntry `gorm:"serializer:json;type:jsonb" json:"education"`
	Skills                     []string             `gorm:"serializer:json;type:jsonb" json:"skills"`
	ExtractedSkills            []string             `gorm:"serializer:json;type:jsonb" json:"extracted_skills"`
	ResumeURL                  string               `json:"resume_url"`
	ResumeText                 string               `gorm:"type:text" json:"-"`
	InternshipTitle            string               `gorm:"size:100" json:"internship_title"`
	InternshipType             string               `gorm:"size:20" json:"internship_type"`
	PreferredLocation          string               `gorm:"size:100" json:"preferred_location"`
	ReadyToWorkAfterInternship bool                 `json:"ready_to_work_after_internship"`
	ATSScore                   int                  `json:"ats_score"`
	CreatedAt                  time.Time            `json:"created_at"`
	UpdatedAt                  time.Time            `json:"updated_at"`
}
