package submission

import (
	"context"
	"sync"
	"time"

	"github.com/fadilmartias/skillsyncer/internal/client"
	"github.com/fadilmartias/skillsyncer/internal/dto"
	"github.com/fadilmartias/skillsyncer/internal/form"
	"github.com/fadilmartias/skillsyncer/internal/logger"
)

type PostingAPI interface {
	CreatePosting(ctx context.Context, payload dto.PostingPayload) (*client.Envelope, error)
	UpdatePosting(ctx context.Context, id string, payload dto.PostingPayload) (*client.Envelope, error)
}

// PostingSession is an employer's create or edit form for one posting.
type PostingSession struct {
	api  PostingAPI
	id   string
	ctrl *Controller
	now  func() time.Time

	mu     sync.Mutex
	draft  dto.PostingDraft
	errors form.ValidationErrors
	closed bool
}

// NewPostingSession starts a form. An empty id creates a new posting on
// submit; otherwise the posting with that id is updated.
func NewPostingSession(api PostingAPI, id string, draft dto.PostingDraft, log logger.Logger) *PostingSession {
	fallback := "Failed to create internship"
	if id != "" {
		fallback = "Failed to update internship"
	}
	return &PostingSession{
		api:    api,
		id:     id,
		ctrl:   NewController(fallback, log),
		now:    time.Now,
		draft:  draft,
		errors: form.ValidationErrors{},
	}
}

func (s *PostingSession) Draft() dto.PostingDraft {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.draft
}

// Update applies edit to the draft. Shown errors that the edit fixed are
// cleared; no new errors appear until the next submit.
func (s *PostingSession) Update(edit func(d *dto.PostingDraft)) {
	s.mu.Lock()
	defer s.mu.Unlock()
	if s.closed {
		return
	}
	edit(&s.draft)
	fresh := form.ValidatePosting(s.draft, s.now())
	for key := range s.errors {
		if msg, ok := fresh[key]; ok {
			s.errors[key] = msg
		} else {
			delete(s.errors, key)
		}
	}
}

func (s *PostingSession) Errors() form.ValidationErrors {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.errors.Clone()
}

func (s *PostingSession) State() (State, string) { return s.ctrl.State() }

func (s *PostingSession) Submit(ctx context.Context) error {
	var payload dto.PostingPayload
	validate := func() error {
		s.mu.Lock()
		defer s.mu.Unlock()
		if s.closed {
			return ErrSessionClosed
		}
		s.errors = form.ValidatePosting(s.draft, s.now())
		if !s.errors.Empty() {
			return s.errors.Err()
		}
		payload = form.NormalizePosting(s.draft)
		return nil
	}
	send := func(ctx context.Context) (*client.Envelope, error) {
		if s.id == "" {
			return s.api.CreatePosting(ctx, payload)
		}
		return s.api.UpdatePosting(ctx, s.id, payload)
	}
	return s.ctrl.Run(ctx, validate, send, func(*client.Envelope) { s.Close() })
}

// Close discards the draft. Later submits fail with ErrSessionClosed, so a
// saved posting is never sent twice.
func (s *PostingSession) Close() {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.closed = true
	s.draft = dto.PostingDraft{}
	s.errors = form.ValidationErrors{}
}
