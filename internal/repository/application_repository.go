package repository

import (
	"context"
	"errors"
	"time"

	"github.com/fadilmartias/skillsyncer/internal/model"
	"github.com/google/uuid"
	"gorm.io/gorm"
	"gorm.io/gorm/clause"
)

// ErrNoSeats is returned when a posting ran out of seats while applying.
var ErrNoSeats = errors.New("no seats available")

type ApplicationFilter struct {
	EmployerID   string
	InternshipID string
	Status       string
}

type ApplicationRepository struct {
	db *gorm.DB
}

func NewApplicationRepository(db *gorm.DB) *ApplicationRepository {
	return &ApplicationRepository{db}
}

func (r *ApplicationRepository) Exists(ctx context.Context, internshipID, jobseekerID string) (bool, error) {
	var n int64
	err := r.db.WithContext(ctx).
		Model(&model.InternshipApplication{}).
		Where("internship_id = ? AND jobseeker_id = ?", internshipID, jobseekerID).
		Count(&n).Error
	return n > 0, err
}

// CreateTakingSeat inserts the application and takes one seat of its posting
// in a single transaction. The posting row is locked while seats are checked.
func (r *ApplicationRepository) CreateTakingSeat(ctx context.Context, app *model.InternshipApplication) error {
	return r.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		var posting model.InternshipPosting
		if err := tx.Clauses(clause.Locking{Strength: "UPDATE"}).
			First(&posting, "id = ?", app.InternshipID).Error; err != nil {
			return err
		}
		if posting.AvailableSeats <= 0 {
			return ErrNoSeats
		}

		if err := tx.Create(app).Error; err != nil {
			return err
		}

		return tx.Model(&posting).Updates(map[string]any{
			"available_seats":    gorm.Expr("available_seats - 1"),
			"applications_count": gorm.Expr("applications_count + 1"),
		}).Error
	})
}

func (r *ApplicationRepository) FindByID(ctx context.Context, id string) (*model.InternshipApplication, error) {
	var a model.InternshipApplication
	err := r.db.WithContext(ctx).First(&a, "id = ?", id).Error
	return &a, err
}

func (r *ApplicationRepository) ListByJobseeker(ctx context.Context, jobseekerID string) ([]model.InternshipApplication, error) {
	var out []model.InternshipApplication
	err := r.db.WithContext(ctx).
		Where("jobseeker_id = ?", jobseekerID).
		Order("applied_at DESC").
		Find(&out).Error
	return out, err
}

func (r *ApplicationRepository) List(ctx context.Context, f ApplicationFilter, page, limit int) ([]model.InternshipApplication, int64, error) {
	q := r.db.WithContext(ctx).Model(&model.InternshipApplication{})
	if f.EmployerID != "" {
		q = q.Where("employer_id = ?", f.EmployerID)
	}
	if f.InternshipID != "" {
		q = q.Where("internship_id = ?", f.InternshipID)
	}
	if f.Status != "" {
		q = q.Where("status = ?", f.Status)
	}
	return paginate[model.InternshipApplication](q, "applied_at DESC", page, limit)
}

func (r *ApplicationRepository) UpdateStatus(ctx context.Context, id, status, notes string, reviewer uuid.UUID, at time.Time) error {
	return r.db.WithContext(ctx).
		Model(&model.InternshipApplication{}).
		Where("id = ?", id).
		Updates(map[string]any{
			"status":         status,
			"employer_notes": notes,
			"reviewed_by":    reviewer,
			"reviewed_at":    at,
		}).Error
}
