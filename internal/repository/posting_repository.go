package repository

import (
	"context"
	"encoding/json"
	"strings"

	"github.com/fadilmartias/skillsyncer/internal/dto"
	"github.com/fadilmartias/skillsyncer/internal/model"
	"github.com/pgvector/pgvector-go"
	"gorm.io/gorm"
)

type PostingRepository struct {
	db *gorm.DB
}

func NewPostingRepository(db *gorm.DB) *PostingRepository {
	return &PostingRepository{db}
}

func (r *PostingRepository) Create(ctx context.Context, p *model.InternshipPosting) error {
	return r.db.WithContext(ctx).Create(p).Error
}

func (r *PostingRepository) Update(ctx context.Context, p *model.InternshipPosting) error {
	return r.db.WithContext(ctx).Save(p).Error
}

func (r *PostingRepository) Delete(ctx context.Context, p *model.InternshipPosting) error {
	return r.db.WithContext(ctx).Delete(p).Error
}

func (r *PostingRepository) FindByID(ctx context.Context, id string) (*model.InternshipPosting, error) {
	var p model.InternshipPosting
	err := r.db.WithContext(ctx).First(&p, "id = ?", id).Error
	return &p, err
}

// ListOpen returns active postings whose deadline has not passed, newest
// first, narrowed by the filter.
func (r *PostingRepository) ListOpen(ctx context.Context, f dto.PostingFilter, page, limit int) ([]model.InternshipPosting, int64, error) {
	q := r.db.WithContext(ctx).Model(&model.InternshipPosting{}).
		Where("status = ? AND last_date_to_apply >= CURRENT_DATE", model.PostingActive)
	if f.Industry != "" {
		q = q.Where("industry = ?", f.Industry)
	}
	if f.Location != "" {
		q = q.Where("location ILIKE ?", "%"+f.Location+"%")
	}
	if f.Mode != "" {
		q = q.Where("mode = ?", f.Mode)
	}
	for _, s := range f.Skills {
		if s = strings.TrimSpace(s); s != "" {
			needle, _ := json.Marshal([]string{s})
			q = q.Where("skills_required @> ?::jsonb", string(needle))
		}
	}
	return paginate[model.InternshipPosting](q, "posted_at DESC", page, limit)
}

func (r *PostingRepository) ListByEmployer(ctx context.Context, employerID string) ([]model.InternshipPosting, error) {
	var out []model.InternshipPosting
	err := r.db.WithContext(ctx).
		Where("employer_id = ?", employerID).
		Order("posted_at DESC").
		Find(&out).Error
	return out, err
}

func (r *PostingRepository) UpdateEmbedding(ctx context.Context, id string, embedding pgvector.Vector) error {
	return r.db.WithContext(ctx).
		Model(&model.InternshipPosting{}).
		Where("id = ?", id).
		Update("embedding", embedding).Error
}

// SearchByEmbedding returns the open postings closest to embedding by
// cosine distance.
func (r *PostingRepository) SearchByEmbedding(ctx context.Context, embedding pgvector.Vector, topK int) ([]model.InternshipPosting, error) {
	var out []model.InternshipPosting
	err := r.db.WithContext(ctx).Raw(`
        SELECT *
        FROM internship_postings
        WHERE deleted_at IS NULL
          AND status = ?
          AND available_seats > 0
          AND last_date_to_apply >= CURRENT_DATE
          AND embedding IS NOT NULL
        ORDER BY embedding <=> ?
        LIMIT ?
    `, model.PostingActive, embedding, topK).Scan(&out).Error
	return out, err
}
