package usecase

import (
	"context"
	"sync"
	"time"

	"github.com/fadilmartias/skillsyncer/internal/dto"
	"github.com/fadilmartias/skillsyncer/internal/model"
	"github.com/fadilmartias/skillsyncer/internal/repository"
	"github.com/fadilmartias/skillsyncer/internal/service"
	"github.com/google/uuid"
	"github.com/pgvector/pgvector-go"
	"gorm.io/gorm"
)

var fixedNow = time.Date(2026, 10, 17, 10, 0, 0, 0, time.UTC)

func syncRun(fn func()) { fn() }

type memUsers struct {
	mu    sync.Mutex
	users map[string]*model.User
}

func newMemUsers(users ...*model.User) *memUsers {
	m := &memUsers{users: map[string]*model.User{}}
	for _, u := range users {
		m.users[u.ID.String()] = u
	}
	return m
}

func (m *memUsers) FindByID(_ context.Context, id string) (*model.User, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	u, ok := m.users[id]
	if !ok {
		return nil, gorm.ErrRecordNotFound
	}
	cp := *u
	return &cp, nil
}

func (m *memUsers) Update(_ context.Context, u *model.User) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	cp := *u
	m.users[u.ID.String()] = &cp
	return nil
}

type memProfiles struct {
	mu       sync.Mutex
	profiles map[string]*model.JobseekerProfile
}

func newMemProfiles(ps ...*model.JobseekerProfile) *memProfiles {
	m := &memProfiles{profiles: map[string]*model.JobseekerProfile{}}
	for _, p := range ps {
		m.profiles[p.UserID.String()] = p
	}
	return m
}

func (m *memProfiles) FindByUserID(_ context.Context, userID string) (*model.JobseekerProfile, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	p, ok := m.profiles[userID]
	if !ok {
		return nil, gorm.ErrRecordNotFound
	}
	cp := *p
	return &cp, nil
}

func (m *memProfiles) Save(_ context.Context, p *model.JobseekerProfile) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	cp := *p
	m.profiles[p.UserID.String()] = &cp
	return nil
}

func (m *memProfiles) UpdateResumeText(_ context.Context, userID, text string, skills []string) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	p, ok := m.profiles[userID]
	if !ok {
		return gorm.ErrRecordNotFound
	}
	p.ResumeText = text
	p.ExtractedSkills = skills
	return nil
}

type memPostings struct {
	mu         sync.Mutex
	postings   map[string]*model.InternshipPosting
	embeddings map[string]pgvector.Vector
	searched   int
}

func newMemPostings(ps ...*model.InternshipPosting) *memPostings {
	m := &memPostings{postings: map[string]*model.InternshipPosting{}, embeddings: map[string]pgvector.Vector{}}
	for _, p := range ps {
		m.postings[p.ID.String()] = p
	}
	return m
}

func (m *memPostings) Create(_ context.Context, p *model.InternshipPosting) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	if p.ID == uuid.Nil {
		p.ID = uuid.New()
	}
	cp := *p
	m.postings[p.ID.String()] = &cp
	return nil
}

func (m *memPostings) Update(_ context.Context, p *model.InternshipPosting) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	cp := *p
	m.postings[p.ID.String()] = &cp
	return nil
}

func (m *memPostings) Delete(_ context.Context, p *model.InternshipPosting) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	delete(m.postings, p.ID.String())
	return nil
}

func (m *memPostings) FindByID(_ context.Context, id string) (*model.InternshipPosting, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	p, ok := m.postings[id]
	if !ok {
		return nil, gorm.ErrRecordNotFound
	}
	cp := *p
	return &cp, nil
}

func (m *memPostings) ListOpen(_ context.Context, _ dto.PostingFilter, _, _ int) ([]model.InternshipPosting, int64, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	var out []model.InternshipPosting
	for _, p := range m.postings {
		if p.Status == model.PostingActive {
			out = append(out, *p)
		}
	}
	return out, int64(len(out)), nil
}

func (m *memPostings) ListByEmployer(_ context.Context, employerID string) ([]model.InternshipPosting, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	var out []model.InternshipPosting
	for _, p := range m.postings {
		if p.EmployerID.String() == employerID {
			out = append(out, *p)
		}
	}
	return out, nil
}

func (m *memPostings) UpdateEmbedding(_ context.Context, id string, v pgvector.Vector) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.embeddings[id] = v
	return nil
}

// SearchByEmbedding returns every posting that has an embedding.
func (m *memPostings) SearchByEmbedding(_ context.Context, _ pgvector.Vector, topK int) ([]model.InternshipPosting, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.searched++
	var out []model.InternshipPosting
	for id := range m.embeddings {
		if p, ok := m.postings[id]; ok && len(out) < topK {
			out = append(out, *p)
		}
	}
	return out, nil
}

type memApplications struct {
	mu       sync.Mutex
	apps     map[string]*model.InternshipApplication
	postings *memPostings
	createFn func() error
}

func newMemApplications(postings *memPostings) *memApplications {
	return &memApplications{apps: map[string]*model.InternshipApplication{}, postings: postings}
}

func (m *memApplications) Exists(_ context.Context, internshipID, jobseekerID string) (bool, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	for _, a := range m.apps {
		if a.InternshipID.String() == internshipID && a.JobseekerID.String() == jobseekerID {
			return true, nil
		}
	}
	return false, nil
}

func (m *memApplications) CreateTakingSeat(_ context.Context, app *model.InternshipApplication) error {
	if m.createFn != nil {
		if err := m.createFn(); err != nil {
			return err
		}
	}
	m.postings.mu.Lock()
	p := m.postings.postings[app.InternshipID.String()]
	if p.AvailableSeats <= 0 {
		m.postings.mu.Unlock()
		return repository.ErrNoSeats
	}
	p.AvailableSeats--
	p.ApplicationsCount++
	m.postings.mu.Unlock()

	m.mu.Lock()
	defer m.mu.Unlock()
	app.ID = uuid.New()
	cp := *app
	m.apps[app.ID.String()] = &cp
	return nil
}

func (m *memApplications) FindByID(_ context.Context, id string) (*model.InternshipApplication, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	a, ok := m.apps[id]
	if !ok {
		return nil, gorm.ErrRecordNotFound
	}
	cp := *a
	return &cp, nil
}

func (m *memApplications) ListByJobseeker(_ context.Context, jobseekerID string) ([]model.InternshipApplication, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	var out []model.InternshipApplication
	for _, a := range m.apps {
		if a.JobseekerID.String() == jobseekerID {
			out = append(out, *a)
		}
	}
	return out, nil
}

func (m *memApplications) List(_ context.Context, f repository.ApplicationFilter, _, _ int) ([]model.InternshipApplication, int64, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	var out []model.InternshipApplication
	for _, a := range m.apps {
		if f.EmployerID != "" && a.EmployerID.String() != f.EmployerID {
			continue
		}
		if f.Status != "" && a.Status != f.Status {
			continue
		}
		out = append(out, *a)
	}
	return out, int64(len(out)), nil
}

func (m *memApplications) UpdateStatus(_ context.Context, id, status, notes string, reviewer uuid.UUID, at time.Time) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	a, ok := m.apps[id]
	if !ok {
		return gorm.ErrRecordNotFound
	}
	a.Status = status
	a.EmployerNotes = notes
	a.ReviewedBy = &reviewer
	a.ReviewedAt = &at
	return nil
}

type fakeNotifier struct {
	mu      sync.Mutex
	notices []service.StatusNotice
}

func (f *fakeNotifier) NotifyStatus(_ context.Context, n service.StatusNotice) error {
	f.mu.Lock()
	defer f.mu.Unlock()
	f.notices = append(f.notices, n)
	return nil
}

type fakeEmbedder struct {
	err   error
	calls int
}

func (f *fakeEmbedder) GenerateEmbedding(context.Context, string) ([]float32, error) {
	f.calls++
	if f.err != nil {
		return nil, f.err
	}
	return make([]float32, model.EmbeddingDimensions), nil
}

func openPosting(employer uuid.UUID) *model.InternshipPosting {
	return &model.InternshipPosting{
		ID:              uuid.New(),
		EmployerID:      employer,
		CompanyName:     "Acme Labs",
		Title:           "Backend Intern",
		Industry:        "IT/Technology",
		Location:        "Bengaluru",
		Mode:            "Remote",
		StartDate:       fixedNow.AddDate(0, 2, 0),
		LastDateToApply: fixedNow.AddDate(0, 1, 0),
		Duration:        "3 months",
		TotalSeats:      2,
		AvailableSeats:  2,
		Description:     "Build APIs in Go with PostgreSQL.",
		SkillsRequired:  []string{"Go", "PostgreSQL"},
		Eligibility:     "Freshers Only",
		Stipend:         dto.Stipend{Amount: 10000, Currency: "INR", Type: "Fixed"},
		Status:          model.PostingActive,
	}
}

func completeDraft() dto.ApplicationDraft {
	d := dto.NewApplicationDraft()
	d.PersonalDetails = dto.PersonalDetails{
		FullName:      "Asha Verma",
		DateOfBirth:   "2002-04-18",
		Gender:        "Female",
		ContactNumber: "+91 98765 43210",
		EmailAddress:  "asha@example.com",
	}
	d.EducationDetails = dto.EducationDetails{
		HighestQualification: "B.Tech",
		InstitutionName:      "NIT Trichy",
		YearOfGraduation:     "2024",
		CgpaPercentage:       "8.4",
	}
	d.Skills.TechnicalSkills = []string{"Go", "PostgreSQL"}
	d.AdditionalInfo = dto.AdditionalInfo{
		WhyJoinInternship: "I want to build backend systems.",
		ResumeURL:         "https://cdn.example.com/resumes/asha.pdf",
	}
	d.Declarations = dto.Declarations{InformationTruthful: true, ConsentToShare: true}
	return d
}
