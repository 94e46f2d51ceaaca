package usecase

import (
	"context"
	"errors"
	"fmt"
	"strconv"
	"strings"
	"time"

	"github.com/fadilmartias/skillsyncer/internal/apperror"
	"github.com/fadilmartias/skillsyncer/internal/dto"
	"github.com/fadilmartias/skillsyncer/internal/form"
	"github.com/fadilmartias/skillsyncer/internal/logger"
	"github.com/fadilmartias/skillsyncer/internal/metrics"
	"github.com/fadilmartias/skillsyncer/internal/model"
	"github.com/fadilmartias/skillsyncer/internal/repository"
	"github.com/fadilmartias/skillsyncer/internal/scoring"
	"github.com/fadilmartias/skillsyncer/internal/service"
	"github.com/fadilmartias/skillsyncer/internal/util"
	"github.com/google/uuid"
	"gorm.io/gorm"
)

const (
	applicationNotFound = "Application not found"
	minGraduationYear   = 1950
)

type ApplicationUsecase struct {
	apps       ApplicationStore
	postings   PostingStore
	profiles   ProfileStore
	locker     service.SubmissionLocker
	notifier   service.Notifier
	metrics    *metrics.Metrics
	log        logger.Logger
	threshold  int
	now        func() time.Time
	background func(func())
}

func NewApplicationUsecase(apps ApplicationStore, postings PostingStore, profiles ProfileStore, locker service.SubmissionLocker, notifier service.Notifier, m *metrics.Metrics, log logger.Logger) *ApplicationUsecase {
	return &ApplicationUsecase{
		apps:       apps,
		postings:   postings,
		profiles:   profiles,
		locker:     locker,
		notifier:   notifier,
		metrics:    m,
		log:        log,
		threshold:  scoring.DefaultThreshold,
		now:        time.Now,
		background: goAsync,
	}
}

// Apply stores a detailed application of a jobseeker to an internship. The
// internship details are derived from the posting, whatever the client sent.
func (u *ApplicationUsecase) Apply(ctx context.Context, jobseekerID uuid.UUID, internshipID string, payload dto.ApplicationPayload) (dto.ApplicationDTO, error) {
	draft := payload.ApplicationDraft
	if err := u.validateDraft(draft); err != nil {
		u.metrics.Refused("invalid")
		return dto.ApplicationDTO{}, err
	}

	if _, err := uuid.Parse(internshipID); err != nil {
		return dto.ApplicationDTO{}, apperror.NotFound(postingNotFound)
	}
	posting, err := u.postings.FindByID(ctx, internshipID)
	if err != nil {
		return dto.ApplicationDTO{}, notFoundOr(err, postingNotFound)
	}
	if !posting.IsAcceptingApplications(u.now()) {
		u.metrics.Refused("closed")
		return dto.ApplicationDTO{}, apperror.Validation("This internship is no longer accepting applications")
	}

	exists, err := u.apps.Exists(ctx, internshipID, jobseekerID.String())
	if err != nil {
		return dto.ApplicationDTO{}, fmt.Errorf("check existing application: %w", err)
	}
	if exists {
		u.metrics.Refused("duplicate")
		return dto.ApplicationDTO{}, apperror.Conflict("You have already applied for this internship")
	}

	release, err := u.locker.Acquire(ctx, internshipID+":"+jobseekerID.String())
	if errors.Is(err, service.ErrLocked) {
		u.metrics.Refused("in_flight")
		return dto.ApplicationDTO{}, apperror.Conflict("Your application is already being submitted")
	}
	if err != nil {
		return dto.ApplicationDTO{}, err
	}
	defer release()

	pdto := toPostingDTO(posting)
	var profile dto.ProfileDTO
	var resumeText string
	if p, err := u.profiles.FindByUserID(ctx, jobseekerID.String()); err == nil {
		profile, resumeText = toProfileDTO(p), p.ResumeText
	} else if !errors.Is(err, gorm.ErrRecordNotFound) {
		u.log.WithError(err).Warn("profile lookup failed, matching on application only", nil)
	}
	applicant := scoring.ApplicantFrom(draft.PersonalDetails.FullName, profile, draft.Skills.TechnicalSkills, resumeText)
	match := scoring.CriteriaFor(pdto).Score(applicant, u.threshold)

	now := u.now()
	app := &model.InternshipApplication{
		InternshipID:      posting.ID,
		JobseekerID:       jobseekerID,
		EmployerID:        posting.EmployerID,
		Status:            model.StatusPending,
		InternshipDetails: form.InternshipDetailsFor(pdto),
		PersonalDetails:   draft.PersonalDetails,
		EducationDetails:  draft.EducationDetails,
		WorkExperience:    draft.WorkExperience,
		Skills:            draft.Skills,
		Projects:          draft.Projects,
		AdditionalInfo:    draft.AdditionalInfo,
		Declarations:      draft.Declarations,
		MatchScore:        match.Score,
		Matching:          dto.Matching{Matched: nonNil(match.Matched), Unmatched: nonNil(match.Unmatched)},
		Decision:          match.Decision,
		Summary:           match.Summary,
		AppliedAt:         now,
	}
	if err := u.apps.CreateTakingSeat(ctx, app); err != nil {
		switch {
		case errors.Is(err, repository.ErrNoSeats):
			u.metrics.Refused("closed")
			return dto.ApplicationDTO{}, apperror.Validation("This internship is no longer accepting applications")
		case errors.Is(err, gorm.ErrDuplicatedKey):
			u.metrics.Refused("duplicate")
			return dto.ApplicationDTO{}, apperror.Conflict("You have already applied for this internship")
		}
		return dto.ApplicationDTO{}, fmt.Errorf("create application: %w", err)
	}

	u.metrics.Submitted(match.Decision)
	u.log.Info("application submitted", map[string]interface{}{
		"application_id": app.ID.String(),
		"internship_id":  internshipID,
		"match_score":    match.Score,
		"decision":       match.Decision,
	})
	return toApplicationDTO(app), nil
}

// validateDraft runs the wizard's required-field rules, then the format
// rules, then the graduation year range.
func (u *ApplicationUsecase) validateDraft(d dto.ApplicationDraft) error {
	if errs := form.ValidateAll(d); !errs.Empty() {
		return apperror.Validation("Please complete the required fields", errs.Messages()...)
	}
	msgs := util.ValidateStruct(d)
	maxYear := u.now().Year() + 10
	if y, err := strconv.Atoi(strings.TrimSpace(d.EducationDetails.YearOfGraduation)); err == nil && (y < minGraduationYear || y > maxYear) {
		msgs = append(msgs, fmt.Sprintf("educationDetails.yearOfGraduation must be between %d and %d", minGraduationYear, maxYear))
	}
	if len(msgs) > 0 {
		return apperror.Validation("Invalid application data", msgs...)
	}
	return nil
}

func (u *ApplicationUsecase) ListForJobseeker(ctx context.Context, jobseekerID uuid.UUID) ([]dto.ApplicationDTO, error) {
	apps, err := u.apps.ListByJobseeker(ctx, jobseekerID.String())
	if err != nil {
		return nil, fmt.Errorf("list applications: %w", err)
	}
	return toApplicationDTOs(apps), nil
}

func (u *ApplicationUsecase) ListForEmployer(ctx context.Context, employerID uuid.UUID, f repository.ApplicationFilter, page, limit int) ([]dto.ApplicationDTO, int64, error) {
	f.EmployerID = employerID.String()
	apps, total, err := u.apps.List(ctx, f, page, limit)
	if err != nil {
		return nil, 0, fmt.Errorf("list applications: %w", err)
	}
	return toApplicationDTOs(apps), total, nil
}

func (u *ApplicationUsecase) GetForEmployer(ctx context.Context, employerID uuid.UUID, id string) (dto.ApplicationDTO, error) {
	app, err := u.owned(ctx, employerID, id)
	if err != nil {
		return dto.ApplicationDTO{}, err
	}
	return toApplicationDTO(app), nil
}

// UpdateStatus records an employer's review decision and emails the
// applicant when the decision is final or a shortlist.
func (u *ApplicationUsecase) UpdateStatus(ctx context.Context, employerID uuid.UUID, id string, req dto.ApplicationStatusRequest) (dto.ApplicationStatusDTO, error) {
	if msgs := util.ValidateStruct(req); len(msgs) > 0 {
		return dto.ApplicationStatusDTO{}, apperror.Validation("Invalid status update", msgs...)
	}
	app, err := u.owned(ctx, employerID, id)
	if err != nil {
		return dto.ApplicationStatusDTO{}, err
	}

	now := u.now()
	notes := strings.TrimSpace(req.Notes)
	if err := u.apps.UpdateStatus(ctx, id, req.Status, notes, employerID, now); err != nil {
		return dto.ApplicationStatusDTO{}, fmt.Errorf("update application status: %w", err)
	}
	u.metrics.StatusChanged(req.Status)

	if req.Status != app.Status && service.ShouldNotify(req.Status) {
		notice := service.StatusNotice{
			To:              app.PersonalDetails.EmailAddress,
			ApplicantName:   app.PersonalDetails.FullName,
			InternshipTitle: app.InternshipDetails.Title,
			Status:          req.Status,
			Notes:           notes,
		}
		if p, err := u.postings.FindByID(ctx, app.InternshipID.String()); err == nil {
			notice.CompanyName = p.CompanyName
		}
		u.background(func() {
			ctx, cancel := context.WithTimeout(context.Background(), 30*time.Second)
			defer cancel()
			if err := u.notifier.NotifyStatus(ctx, notice); err != nil {
				u.log.WithError(err).Warn("status notification failed", map[string]interface{}{"application_id": id})
			}
		})
	}

	return dto.ApplicationStatusDTO{ApplicationID: id, Status: req.Status, UpdatedAt: now}, nil
}

func (u *ApplicationUsecase) owned(ctx context.Context, employerID uuid.UUID, id string) (*model.InternshipApplication, error) {
	if _, err := uuid.Parse(id); err != nil {
		return nil, apperror.NotFound(applicationNotFound)
	}
	app, err := u.apps.FindByID(ctx, id)
	if err != nil {
		return nil, notFoundOr(err, applicationNotFound)
	}
	if app.EmployerID != employerID {
		return nil, apperror.Forbidden("You can only review applications to your own internships")
	}
	return app, nil
}
