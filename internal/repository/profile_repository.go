package repository

import (
	"context"

	"github.com/fadilmartias/skillsyncer/internal/model"
	"gorm.io/gorm"
)

type ProfileRepository struct {
	db *gorm.DB
}

func NewProfileRepository(db *gorm.DB) *ProfileRepository {
	return &ProfileRepository{db}
}

func (r *ProfileRepository) FindByUserID(ctx context.Context, userID string) (*model.JobseekerProfile, error) {
	var p model.JobseekerProfile
	err := r.db.WithContext(ctx).First(&p, "user_id = ?", userID).Error
	return &p, err
}

// Save inserts or updates the profile.
func (r *ProfileRepository) Save(ctx context.Context, p *model.JobseekerProfile) error {
	return r.db.WithContext(ctx).Save(p).Error
}

// UpdateResumeText stores text extracted from the resume and the skills
// found in it.
func (r *ProfileRepository) UpdateResumeText(ctx context.Context, userID, text string, skills []string) error {
	return r.db.WithContext(ctx).
		Model(&model.JobseekerProfile{}).
		Where("user_id = ?", userID).
		Select("resume_text", "extracted_skills").
		Updates(&model.JobseekerProfile{ResumeText: text, ExtractedSkills: skills}).Error
}
