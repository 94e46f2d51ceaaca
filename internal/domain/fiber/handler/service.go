package handler

import (
	"context"
	"strings"

	"github.com/fadilmartias/skillsyncer/internal/dto"
	"github.com/fadilmartias/skillsyncer/internal/repository"
	"github.com/fadilmartias/skillsyncer/internal/submission"
	"github.com/fadilmartias/skillsyncer/internal/usecase"
	"github.com/gofiber/fiber/v2"
	"github.com/google/uuid"
)

type ProfileService interface {
	GetProfile(ctx context.Context, userID uuid.UUID) (dto.ProfileView, error)
	UpdateProfile(ctx context.Context, userID uuid.UUID, req dto.UpdateProfileRequest) (dto.ProfileView, error)
	Suggestions(ctx context.Context, userID uuid.UUID) (dto.ProfileSuggestionsDTO, error)
	UploadResume(ctx context.Context, userID uuid.UUID, f submission.ResumeFile) (dto.ResumeUploadDTO, error)
}

type PostingService interface {
	Create(ctx context.Context, employerID uuid.UUID, in dto.PostingPayload) (dto.Posting, error)
	Update(ctx context.Context, employerID uuid.UUID, id string, in dto.PostingPayload) (dto.Posting, error)
	Delete(ctx context.Context, employerID uuid.UUID, id string) error
	ListByEmployer(ctx context.Context, employerID uuid.UUID) ([]dto.Posting, error)
	ListOpen(ctx context.Context, f dto.PostingFilter, page, limit int) ([]dto.Posting, int64, error)
	Get(ctx context.Context, id string) (dto.Posting, error)
	Recommended(ctx context.Context, userID uuid.UUID, limit int) ([]dto.Posting, error)
}

type ApplicationService interface {
	Apply(ctx context.Context, jobseekerID uuid.UUID, internshipID string, payload dto.ApplicationPayload) (dto.ApplicationDTO, error)
	ListForJobseeker(ctx context.Context, jobseekerID uuid.UUID) ([]dto.ApplicationDTO, error)
	ListForEmployer(ctx context.Context, employerID uuid.UUID, f repository.ApplicationFilter, page, limit int) ([]dto.ApplicationDTO, int64, error)
	GetForEmployer(ctx context.Context, employerID uuid.UUID, id string) (dto.ApplicationDTO, error)
	UpdateStatus(ctx context.Context, employerID uuid.UUID, id string, req dto.ApplicationStatusRequest) (dto.ApplicationStatusDTO, error)
}

var (
	_ ProfileService     = (*usecase.ProfileUsecase)(nil)
	_ PostingService     = (*usecase.PostingUsecase)(nil)
	_ ApplicationService = (*usecase.ApplicationUsecase)(nil)
)

// pageParams reads page and limit, falling back to the first page of ten.
func pageParams(c *fiber.Ctx) (int, int) {
	page := c.QueryInt("page", 1)
	if page < 1 {
		page = 1
	}
	limit := c.QueryInt("limit", 10)
	if limit < 1 || limit > 100 {
		limit = 10
	}
	return page, limit
}

func splitList(s string) []string {
	var out []string
	for _, part := range strings.Split(s, ",") {
		if part = strings.TrimSpace(part); part != "" {
			out = append(out, part)
		}
	}
	return out
}
