package submission

import (
	"context"
	"sync"

	"github.com/fadilmartias/skillsyncer/internal/apperror"
	"github.com/fadilmartias/skillsyncer/internal/client"
	"github.com/fadilmartias/skillsyncer/internal/dto"
	"github.com/fadilmartias/skillsyncer/internal/form"
	"github.com/fadilmartias/skillsyncer/internal/logger"
)

const applicationFailure = "Failed to submit application"

// ApplicationAPI is the part of the API an application session needs.
type ApplicationAPI interface {
	GetProfile(ctx context.Context) (dto.ProfileView, error)
	GetPosting(ctx context.Context, id string) (dto.Posting, error)
	UploadResume(ctx context.Context, filename string, content []byte) (string, error)
	ApplyDetailed(ctx context.Context, postingID string, payload dto.ApplicationPayload) (*client.Envelope, error)
}

// ApplicationSession is one open application form: a draft, its step
// cursor and the submit controller.
type ApplicationSession struct {
	api     ApplicationAPI
	log     logger.Logger
	posting dto.Posting
	store   *form.Store
	nav     *form.Navigator
	ctrl    *Controller

	mu     sync.Mutex
	closed bool
}

// OpenApplication loads the posting and pre-fills a draft from the stored
// profile. A profile that cannot be loaded leaves the draft empty.
func OpenApplication(ctx context.Context, api ApplicationAPI, postingID string, log logger.Logger) (*ApplicationSession, error) {
	posting, err := api.GetPosting(ctx, postingID)
	if err != nil {
		return nil, err
	}

	draft := dto.NewApplicationDraft()
	if view, err := api.GetProfile(ctx); err != nil {
		log.WithError(err).Warn("profile prefill skipped", map[string]interface{}{"postingId": postingID})
	} else {
		draft = form.PrefillFromProfile(view)
	}

	store := form.NewStore(draft)
	return &ApplicationSession{
		api:     api,
		log:     log.With(map[string]interface{}{"postingId": postingID}),
		posting: posting,
		store:   store,
		nav:     form.NewNavigator(store),
		ctrl:    NewController(applicationFailure, log),
	}, nil
}

func (s *ApplicationSession) Posting() dto.Posting { return s.posting }
func (s *ApplicationSession) Store() *form.Store { return s.store }
func (s *ApplicationSession) Navigator() *form.Navigator { return s.nav }
func (s *ApplicationSession) State() (State, string) { return s.ctrl.State() }

// Payload is the body that Submit would send for the current draft.
func (s *ApplicationSession) Payload() dto.ApplicationPayload {
	return form.NormalizeApplication(s.store.Draft(), s.posting)
}

// UploadResume checks the file locally, uploads it and records the returned
// URL in the draft. The draft is untouched when anything fails.
func (s *ApplicationSession) UploadResume(ctx context.Context, f ResumeFile) (string, error) {
	if err := CheckResume(f); err != nil {
		return "", err
	}
	url, err := s.api.UploadResume(ctx, f.Name, f.Content)
	if err != nil {
		if !apperror.Is(err, apperror.KindNetwork) {
			return "", err
		}
		return "", apperror.Wrap(apperror.KindUpload, "Failed to upload resume", err)
	}
	if err := s.store.Set("additionalInfo", "resumeUrl", url); err != nil {
		return "", err
	}
	s.log.Info("resume uploaded", map[string]interface{}{"resumeUrl": url})
	return url, nil
}

// Submit validates the current step and sends the normalized draft. On
// success the draft is discarded and the session closes.
func (s *ApplicationSession) Submit(ctx context.Context) error {
	if s.isClosed() {
		return ErrSessionClosed
	}

	var payload dto.ApplicationPayload
	validate := func() error {
		errs := form.ValidateStep(s.nav.Step(), s.store.Draft())
		if !errs.Empty() {
			s.store.SetErrors(errs)
			return errs.Err()
		}
		payload = s.Payload()
		return nil
	}
	send := func(ctx context.Context) (*client.Envelope, error) {
		return s.api.ApplyDetailed(ctx, s.posting.ID, payload)
	}
	return s.ctrl.Run(ctx, validate, send, func(*client.Envelope) { s.Close() })
}

// Close discards the draft.
func (s *ApplicationSession) Close() {
	s.mu.Lock()
	defer s.mu.Unlock()
	if s.closed {
		return
	}
	s.closed = true
	s.store.Reset()
}

func (s *ApplicationSession) isClosed() bool {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.closed
}
