package usecase

import (
	"context"
	"time"

	"github.com/fadilmartias/skillsyncer/internal/dto"
	"github.com/fadilmartias/skillsyncer/internal/model"
	"github.com/fadilmartias/skillsyncer/internal/repository"
	"github.com/google/uuid"
	"github.com/pgvector/pgvector-go"
)

// The usecases depend on these narrow views of the repositories.

type UserStore interface {
	FindByID(ctx context.Context, id string) (*model.User, error)
	Update(ctx context.Context, u *model.User) error
}

type ProfileStore interface {
	FindByUserID(ctx context.Context, userID string) (*model.JobseekerProfile, error)
	Save(ctx context.Context, p *model.JobseekerProfile) error
	UpdateResumeText(ctx context.Context, userID, text string, skills []string) error
}

type PostingStore interface {
	Create(ctx context.Context, p *model.InternshipPosting) error
	Update(ctx context.Context, p *model.InternshipPosting) error
	Delete(ctx context.Context, p *model.InternshipPosting) error
	FindByID(ctx context.Context, id string) (*model.InternshipPosting, error)
	ListOpen(ctx context.Context, f dto.PostingFilter, page, limit int) ([]model.InternshipPosting, int64, error)
	ListByEmployer(ctx context.Context, employerID string) ([]model.InternshipPosting, error)
	UpdateEmbedding(ctx context.Context, id string, embedding pgvector.Vector) error
	SearchByEmbedding(ctx context.Context, embedding pgvector.Vector, topK int) ([]model.InternshipPosting, error)
}

type ApplicationStore interface {
	Exists(ctx context.Context, internshipID, jobseekerID string) (bool, error)
	CreateTakingSeat(ctx context.Context, app *model.InternshipApplication) error
	FindByID(ctx context.Context, id string) (*model.InternshipApplication, error)
	ListByJobseeker(ctx context.Context, jobseekerID string) ([]model.InternshipApplication, error)
	List(ctx context.Context, f repository.ApplicationFilter, page, limit int) ([]model.InternshipApplication, int64, error)
	UpdateStatus(ctx context.Context, id, status, notes string, reviewer uuid.UUID, at time.Time) error
}

var (
	_ UserStore        = (*repository.UserRepository)(nil)
	_ ProfileStore     = (*repository.ProfileRepository)(nil)
	_ PostingStore     = (*repository.PostingRepository)(nil)
	_ ApplicationStore = (*repository.ApplicationRepository)(nil)
)

// goAsync runs fn on its own goroutine.
func goAsync(fn func()) { go fn() }
