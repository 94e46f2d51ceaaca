package model

import (
	"time"

	"github.com/fadilmartias/skillsyncer/internal/dto"
	"github.com/google/uuid"
)

const (
	StatusPending     = "pending"
	StatusReviewed    = "reviewed"
	StatusShortlisted = "shortlisted"
	StatusRejected    = "rejected"
	StatusAccepted    = "accepted"
)

// InternshipApplication stores one detailed application. A jobseeker can
// apply to a posting once.
type InternshipApplication struct {
	ID                uuid.UUID             `gorm:"type:uuid;default:uuid_generate_v4();primaryKey" json:"id"`
	InternshipID      uuid.UUID             `gorm:"type:uuid;not null;uniqueIndex:idx_application_once,priority:1" json:"internship_id"`
	JobseekerID       uuid.UUID             `gorm:"type:uuid;not null;uniqueIndex:idx_application_once,priority:2;index" json:"jobseeker_id"`
	EmployerID        uuid.UUID             `gorm:"type:uuid;not null;index" json:"employer_id"`
	Status            string                `gorm:"type:varchar(20);default:pending;index" json:"status"`
	InternshipDetails dto.InternshipDetails `gorm:"serializer:json;type:jsonb" json:"internship_details"`
	PersonalDetails   dto.PersonalDetails   `gorm:"serializer:json;type:jsonb" json:"personal_details"`
	EducationDetails  dto.EducationDetails  `gorm:"serializer:json;type:jsonb" json:"education_details"`
	WorkExperience    dto.WorkExperience    `gorm:"serializer:json;type:jsonb" json:"work_experience"`
	Skills            dto.Skills            `gorm:"serializer:json;type:jsonb" json:"skills"`
	Projects          []dto.Project         `gorm:"serializer:json;type:jsonb" json:"projects"`
	AdditionalInfo    dto.AdditionalInfo    `gorm:"serializer:json;type:jsonb" json:"additional_info"`
	Declarations      dto.Declarations      `gorm:"serializer:json;type:jsonb" json:"declarations"`
	MatchScore        int                   `gorm:"index" json:"match_score"`
	Matching          dto.Matching          `gorm:"serializer:json;type:jsonb" json:"matching"`
	Decision          string                `gorm:"size:40" json:"decision"`
	Summary           string                `gorm:"type:text" json:"summary"`
	EmployerNotes     string                `gorm:"type:text" json:"employer_notes"`
	ReviewedAt        *time.Time            `json:"reviewed_at"`
	ReviewedBy        *uuid.UUID            `gorm:"type:uuid" json:"reviewed_by"`
	AppliedAt         time.Time             `json:"applied_at"`
	CreatedAt         time.Time             `json:"created_at"`
	UpdatedAt         time.Time             `json:"updated_at"`
}
