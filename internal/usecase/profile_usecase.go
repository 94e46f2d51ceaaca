package usecase

import (
	"context"
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"strings"
	"time"

	"github.com/fadilmartias/skillsyncer/internal/apperror"
	"github.com/fadilmartias/skillsyncer/internal/dto"
	"github.com/fadilmartias/skillsyncer/internal/logger"
	"github.com/fadilmartias/skillsyncer/internal/metrics"
	"github.com/fadilmartias/skillsyncer/internal/model"
	"github.com/fadilmartias/skillsyncer/internal/scoring"
	"github.com/fadilmartias/skillsyncer/internal/submission"
	"github.com/fadilmartias/skillsyncer/internal/util"
	"github.com/gabriel-vasile/mimetype"
	"github.com/google/uuid"
	"gorm.io/gorm"
)

// ResumePublicPrefix is the URL path uploaded resumes are served under.
const ResumePublicPrefix = "/uploads/resumes/"

type ProfileUsecase struct {
	users      UserStore
	profiles   ProfileStore
	uploadDir  string
	extract    func(path string) (string, error)
	background func(func())
	metrics    *metrics.Metrics
	log        logger.Logger
}

func NewProfileUsecase(users UserStore, profiles ProfileStore, uploadDir string, m *metrics.Metrics, log logger.Logger) *ProfileUsecase {
	return &ProfileUsecase{
		users:     users,
		profiles:  profiles,
		uploadDir: uploadDir,
		extract: func(path string) (string, error) {
			return util.ExtractResumeText(path, log)
		},
		background: goAsync,
		metrics:    m,
		log:        log,
	}
}

func (u *ProfileUsecase) GetProfile(ctx context.Context, userID uuid.UUID) (dto.ProfileView, error) {
	user, err := u.users.FindByID(ctx, userID.String())
	if err != nil {
		return dto.ProfileView{}, notFoundOr(err, "User not found")
	}
	profile, err := u.loadProfile(ctx, userID)
	if err != nil {
		return dto.ProfileView{}, err
	}
	return profileView(user, profile), nil
}

// UpdateProfile applies the fields present in req and recomputes the
// stored ATS score.
func (u *ProfileUsecase) UpdateProfile(ctx context.Context, userID uuid.UUID, req dto.UpdateProfileRequest) (dto.ProfileView, error) {
	if msgs := util.ValidateStruct(req); len(msgs) > 0 {
		return dto.ProfileView{}, apperror.Validation("Invalid profile data", msgs...)
	}

	user, err := u.users.FindByID(ctx, userID.String())
	if err != nil {
		return dto.ProfileView{}, notFoundOr(err, "User not found")
	}
	profile, err := u.loadProfile(ctx, userID)
	if err != nil {
		return dto.ProfileView{}, err
	}

	if req.Name != nil {
		user.Name = strings.TrimSpace(*req.Name)
	}
	if req.Phone != nil {
		user.Phone = strings.TrimSpace(*req.Phone)
	}
	if req.SocialLinks != nil {
		user.SocialLinks = *req.SocialLinks
	}
	if req.Portfolio != nil {
		user.Portfolio = strings.TrimSpace(*req.Portfolio)
	}
	if req.Education != nil {
		profile.Education = req.Education
	}
	if req.Skills != nil {
		profile.Skills = compactSkills(req.Skills)
	}
	if req.ResumeURL != nil {
		profile.ResumeURL = strings.TrimSpace(*req.ResumeURL)
	}
	if req.InternshipTitle != nil {
		profile.InternshipTitle = strings.TrimSpace(*req.InternshipTitle)
	}
	if req.InternshipType != nil {
		profile.InternshipType = *req.InternshipType
	}
	if req.PreferredLocation != nil {
		profile.PreferredLocation = strings.TrimSpace(*req.PreferredLocation)
	}
	if req.ReadyToWorkAfterInternship != nil {
		profile.ReadyToWorkAfterInternship = *req.ReadyToWorkAfterInternship
	}
	profile.ATSScore = scoring.Score(scoring.RecordFromProfile(toProfileDTO(profile))).Score

	if err := u.users.Update(ctx, user); err != nil {
		return dto.ProfileView{}, fmt.Errorf("update user: %w", err)
	}
	if err := u.profiles.Save(ctx, profile); err != nil {
		return dto.ProfileView{}, fmt.Errorf("save profile: %w", err)
	}
	return profileView(user, profile), nil
}

func (u *ProfileUsecase) Suggestions(ctx context.Context, userID uuid.UUID) (dto.ProfileSuggestionsDTO, error) {
	profile, err := u.loadProfile(ctx, userID)
	if err != nil {
		return dto.ProfileSuggestionsDTO{}, err
	}
	res := scoring.Score(scoring.RecordFromProfile(toProfileDTO(profile)))
	return dto.ProfileSuggestionsDTO{
		ATSScore:         res.Score,
		Breakdown:        res.Breakdown,
		Suggestions:      res.Suggestions,
		TotalSuggestions: len(res.Suggestions),
	}, nil
}

// UploadResume stores a resume file, points the profile at it and, for
// PDFs, extracts skills from its text in the background.
func (u *ProfileUsecase) UploadResume(ctx context.Context, userID uuid.UUID, f submission.ResumeFile) (dto.ResumeUploadDTO, error) {
	if err := submission.CheckResume(f); err != nil {
		u.metrics.Upload("rejected")
		return dto.ResumeUploadDTO{}, err
	}

	ext := mimetype.Detect(f.Content).Extension()
	if ext == "" || ext == ".zip" {
		ext = strings.ToLower(filepath.Ext(f.Name))
	}
	name := uuid.NewString() + ext
	dir := filepath.Join(u.uploadDir, "resumes")
	if err := os.MkdirAll(dir, 0o755); err != nil {
		u.metrics.Upload("failed")
		return dto.ResumeUploadDTO{}, fmt.Errorf("create upload dir: %w", err)
	}
	path := filepath.Join(dir, name)
	if err := os.WriteFile(path, f.Content, 0o644); err != nil {
		u.metrics.Upload("failed")
		return dto.ResumeUploadDTO{}, fmt.Errorf("save resume: %w", err)
	}

	profile, err := u.loadProfile(ctx, userID)
	if err != nil {
		return dto.ResumeUploadDTO{}, err
	}
	profile.ResumeURL = ResumePublicPrefix + name
	profile.ATSScore = scoring.Score(scoring.RecordFromProfile(toProfileDTO(profile))).Score
	if err := u.profiles.Save(ctx, profile); err != nil {
		return dto.ResumeUploadDTO{}, fmt.Errorf("save profile: %w", err)
	}
	u.metrics.Upload("stored")

	if ext == ".pdf" {
		u.background(func() { u.extractSkills(userID, path) })
	}
	return dto.ResumeUploadDTO{ResumeURL: profile.ResumeURL}, nil
}

func (u *ProfileUsecase) extractSkills(userID uuid.UUID, path string) {
	log := u.log.With(map[string]interface{}{"user_id": userID.String(), "path": path})
	text, err := u.extract(path)
	if err != nil {
		log.WithError(err).Warn("resume text extraction failed", nil)
		return
	}
	skills := scoring.ExtractSkills(text)

	ctx, cancel := context.WithTimeout(context.Background(), 30*time.Second)
	defer cancel()
	if err := u.profiles.UpdateResumeText(ctx, userID.String(), text, skills); err != nil {
		log.WithError(err).Error("store resume text failed", nil)
		return
	}
	log.Info("resume skills extracted", map[string]interface{}{"skills": len(skills)})
}

// loadProfile returns the stored profile, or a fresh one for a jobseeker
// who never saved it.
func (u *ProfileUsecase) loadProfile(ctx context.Context, userID uuid.UUID) (*model.JobseekerProfile, error) {
	p, err := u.profiles.FindByUserID(ctx, userID.String())
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return &model.JobseekerProfile{UserID: userID}, nil
	}
	if err != nil {
		return nil, fmt.Errorf("find profile: %w", err)
	}
	return p, nil
}

func profileView(user *model.User, profile *model.JobseekerProfile) dto.ProfileView {
	p := toProfileDTO(profile)
	return dto.ProfileView{
		User:              toUserDTO(user),
		Profile:           p,
		ResumeURL:         p.ResumeURL,
		ProfileCompletion: scoring.Score(scoring.RecordFromProfile(p)).Score,
	}
}

func compactSkills(in []string) []string {
	out := make([]string, 0, len(in))
	seen := map[string]bool{}
	for _, s := range in {
		s = strings.TrimSpace(s)
		if s == "" || seen[strings.ToLower(s)] {
			continue
		}
		seen[strings.ToLower(s)] = true
		out = append(out, s)
	}
	return out
}

// notFoundOr classifies a missing record, wrapping any other error.
func notFoundOr(err error, message string) error {
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return apperror.NotFound(message)
	}
	return fmt.Errorf("lookup: %w", err)
}
