package usecase

import (
	"context"
	"errors"
	"fmt"
	"sort"
	"strings"
	"time"

	"github.com/fadilmartias/skillsyncer/internal/apperror"
	"github.com/fadilmartias/skillsyncer/internal/dto"
	"github.com/fadilmartias/skillsyncer/internal/logger"
	"github.com/fadilmartias/skillsyncer/internal/metrics"
	"github.com/fadilmartias/skillsyncer/internal/model"
	"github.com/fadilmartias/skillsyncer/internal/scoring"
	"github.com/fadilmartias/skillsyncer/internal/service"
	"github.com/fadilmartias/skillsyncer/internal/util"
	"github.com/google/uuid"
	"github.com/pgvector/pgvector-go"
)

const (
	postingNotFound = "Internship not found"
	recommendScan   = 50
)

type PostingUsecase struct {
	postings   PostingStore
	users      UserStore
	profiles   ProfileStore
	embedder   service.EmbeddingService
	metrics    *metrics.Metrics
	log        logger.Logger
	now        func() time.Time
	background func(func())
}

// NewPostingUsecase builds the posting usecase. embedder may be nil, in
// which case recommendations rank by match score only.
func NewPostingUsecase(postings PostingStore, users UserStore, profiles ProfileStore, embedder service.EmbeddingService, m *metrics.Metrics, log logger.Logger) *PostingUsecase {
	return &PostingUsecase{
		postings:   postings,
		users:      users,
		profiles:   profiles,
		embedder:   embedder,
		metrics:    m,
		log:        log,
		now:        time.Now,
		background: goAsync,
	}
}

func (u *PostingUsecase) Create(ctx context.Context, employerID uuid.UUID, in dto.PostingPayload) (dto.Posting, error) {
	if err := u.validate(in, true); err != nil {
		return dto.Posting{}, err
	}
	employer, err := u.users.FindByID(ctx, employerID.String())
	if err != nil {
		return dto.Posting{}, notFoundOr(err, "Employer not found")
	}

	p := &model.InternshipPosting{
		EmployerID:  employerID,
		CompanyName: employer.CompanyName,
		Status:      model.PostingActive,
		PostedAt:    u.now(),
	}
	if p.CompanyName == "" {
		p.CompanyName = employer.Name
	}
	applyPayload(p, in)
	p.AvailableSeats = p.TotalSeats

	if err := u.postings.Create(ctx, p); err != nil {
		return dto.Posting{}, fmt.Errorf("create posting: %w", err)
	}
	u.metrics.Published()
	u.embedAsync(p)
	return toPostingDTO(p), nil
}

// Update replaces the editable fields of an employer's posting. Seats
// already taken stay taken.
func (u *PostingUsecase) Update(ctx context.Context, employerID uuid.UUID, id string, in dto.PostingPayload) (dto.Posting, error) {
	if err := u.validate(in, false); err != nil {
		return dto.Posting{}, err
	}
	p, err := u.owned(ctx, employerID, id)
	if err != nil {
		return dto.Posting{}, err
	}

	taken := p.TotalSeats - p.AvailableSeats
	if in.TotalSeats < taken {
		return dto.Posting{}, apperror.Validation("Validation failed",
			fmt.Sprintf("totalSeats cannot be less than the %d applications already received", taken))
	}
	applyPayload(p, in)
	p.AvailableSeats = p.TotalSeats - taken

	if err := u.postings.Update(ctx, p); err != nil {
		return dto.Posting{}, fmt.Errorf("update posting: %w", err)
	}
	u.embedAsync(p)
	return toPostingDTO(p), nil
}

func (u *PostingUsecase) Delete(ctx context.Context, employerID uuid.UUID, id string) error {
	p, err := u.owned(ctx, employerID, id)
	if err != nil {
		return err
	}
	if err := u.postings.Delete(ctx, p); err != nil {
		return fmt.Errorf("delete posting: %w", err)
	}
	return nil
}

func (u *PostingUsecase) ListByEmployer(ctx context.Context, employerID uuid.UUID) ([]dto.Posting, error) {
	ps, err := u.postings.ListByEmployer(ctx, employerID.String())
	if err != nil {
		return nil, fmt.Errorf("list postings: %w", err)
	}
	return toPostingDTOs(ps), nil
}

func (u *PostingUsecase) ListOpen(ctx context.Context, f dto.PostingFilter, page, limit int) ([]dto.Posting, int64, error) {
	ps, total, err := u.postings.ListOpen(ctx, f, page, limit)
	if err != nil {
		return nil, 0, fmt.Errorf("list open postings: %w", err)
	}
	return toPostingDTOs(ps), total, nil
}

func (u *PostingUsecase) Get(ctx context.Context, id string) (dto.Posting, error) {
	if _, err := uuid.Parse(id); err != nil {
		return dto.Posting{}, apperror.NotFound(postingNotFound)
	}
	p, err := u.postings.FindByID(ctx, id)
	if err != nil {
		return dto.Posting{}, notFoundOr(err, postingNotFound)
	}
	return toPostingDTO(p), nil
}

// Recommended returns open postings for a jobseeker. With embeddings
// available the postings nearest to the profile are used, otherwise open
// postings are ranked by match score.
func (u *PostingUsecase) Recommended(ctx context.Context, userID uuid.UUID, limit int) ([]dto.Posting, error) {
	if limit < 1 || limit > 50 {
		limit = 10
	}
	profile, err := u.profiles.FindByUserID(ctx, userID.String())
	if err != nil {
		profile = &model.JobseekerProfile{UserID: userID}
	}
	pdto := toProfileDTO(profile)

	if u.embedder != nil {
		if text := profileQuery(pdto); text != "" {
			vec, err := u.embedder.GenerateEmbedding(ctx, text)
			if err == nil {
				ps, err := u.postings.SearchByEmbedding(ctx, pgvector.NewVector(vec), limit)
				if err == nil && len(ps) > 0 {
					return toPostingDTOs(ps), nil
				}
				if err != nil {
					u.log.WithError(err).Warn("vector search failed, ranking by match", nil)
				}
			} else if !errors.Is(err, service.ErrEmbeddingsDisabled) {
				u.log.WithError(err).Warn("profile embedding failed, ranking by match", nil)
			}
		}
	}

	ps, _, err := u.postings.ListOpen(ctx, dto.PostingFilter{}, 1, recommendScan)
	if err != nil {
		return nil, fmt.Errorf("list open postings: %w", err)
	}
	applicant := scoring.ApplicantFrom("", pdto, nil, profile.ResumeText)
	type ranked struct {
		posting dto.Posting
		score   int
	}
	all := make([]ranked, 0, len(ps))
	for i := range ps {
		d := toPostingDTO(&ps[i])
		all = append(all, ranked{d, scoring.CriteriaFor(d).Score(applicant, scoring.DefaultThreshold).Score})
	}
	sort.SliceStable(all, func(i, j int) bool { return all[i].score > all[j].score })

	out := make([]dto.Posting, 0, limit)
	for _, r := range all {
		if len(out) == limit {
			break
		}
		out = append(out, r.posting)
	}
	return out, nil
}

func (u *PostingUsecase) owned(ctx context.Context, employerID uuid.UUID, id string) (*model.InternshipPosting, error) {
	if _, err := uuid.Parse(id); err != nil {
		return nil, apperror.NotFound(postingNotFound)
	}
	p, err := u.postings.FindByID(ctx, id)
	if err != nil {
		return nil, notFoundOr(err, postingNotFound)
	}
	if p.EmployerID != employerID {
		return nil, apperror.Forbidden("You can only manage your own internships")
	}
	return p, nil
}

// validate checks field rules and date order. New postings must also close
// in the future.
func (u *PostingUsecase) validate(in dto.PostingPayload, isNew bool) error {
	msgs := util.ValidateStruct(in)
	if !in.StartDate.IsZero() && !in.LastDateToApply.IsZero() {
		if isNew && !in.LastDateToApply.After(u.now()) {
			msgs = append(msgs, "lastDateToApply must be in the future")
		}
		if !in.StartDate.After(in.LastDateToApply) {
			msgs = append(msgs, "startDate must be after lastDateToApply")
		}
	}
	if in.Stipend.Amount < 0 {
		msgs = append(msgs, "stipend.amount cannot be negative")
	}
	if len(msgs) > 0 {
		return apperror.Validation("Validation failed", msgs...)
	}
	return nil
}

func (u *PostingUsecase) embedAsync(p *model.InternshipPosting) {
	if u.embedder == nil {
		return
	}
	id, text := p.ID.String(), p.EmbeddingText()
	u.background(func() {
		ctx, cancel := context.WithTimeout(context.Background(), time.Minute)
		defer cancel()
		log := u.log.With(map[string]interface{}{"internship_id": id})

		vec, err := u.embedder.GenerateEmbedding(ctx, text)
		if err != nil {
			log.WithError(err).Warn("posting embedding failed", nil)
			return
		}
		if err := u.postings.UpdateEmbedding(ctx, id, pgvector.NewVector(vec)); err != nil {
			log.WithError(err).Error("store posting embedding failed", nil)
		}
	})
}

// profileQuery is the text embedded to find postings for a profile.
func profileQuery(p dto.ProfileDTO) string {
	parts := []string{p.InternshipTitle}
	parts = append(parts, p.Skills...)
	parts = append(parts, p.ExtractedSkills...)
	for _, e := range p.Education {
		parts = append(parts, e.Degree+" "+e.Specialization)
	}
	return strings.TrimSpace(strings.Join(parts, "\n"))
}
