package submission

import (
	"context"
	"sync"
	"sync/atomic"

	"github.com/fadilmartias/skillsyncer/internal/apperror"
	"github.com/fadilmartias/skillsyncer/internal/client"
	"github.com/fadilmartias/skillsyncer/internal/dto"
)

type fakeAPI struct {
	posting    dto.Posting
	profile    dto.ProfileView
	profileErr error

	uploadURL   string
	uploadErr   error
	uploadCalls atomic.Int32

	applyEnv   *client.Envelope
	applyErr   error
	applyCalls atomic.Int32
	// started is signalled when ApplyDetailed begins; release unblocks it.
	started chan struct{}
	release chan struct{}

	mu       sync.Mutex
	payloads []dto.ApplicationPayload
}

func (f *fakeAPI) GetProfile(context.Context) (dto.ProfileView, error) {
	return f.profile, f.profileErr
}

func (f *fakeAPI) GetPosting(_ context.Context, id string) (dto.Posting, error) {
	if id != f.posting.ID {
		return dto.Posting{}, apperror.NotFound("Internship not found")
	}
	return f.posting, nil
}

func (f *fakeAPI) UploadResume(context.Context, string, []byte) (string, error) {
	f.uploadCalls.Add(1)
	return f.uploadURL, f.uploadErr
}

func (f *fakeAPI) ApplyDetailed(_ context.Context, _ string, p dto.ApplicationPayload) (*client.Envelope, error) {
	f.applyCalls.Add(1)
	f.mu.Lock()
	f.payloads = append(f.payloads, p)
	f.mu.Unlock()
	if f.started != nil {
		f.started <- struct{}{}
	}
	if f.release != nil {
		<-f.release
	}
	return f.applyEnv, f.applyErr
}

type fakePostingAPI struct {
	created []dto.PostingPayload
	updated map[string]dto.PostingPayload
	env     *client.Envelope
}

func (f *fakePostingAPI) CreatePosting(_ context.Context, p dto.PostingPayload) (*client.Envelope, error) {
	f.created = append(f.created, p)
	return f.env, nil
}

func (f *fakePostingAPI) UpdatePosting(_ context.Context, id string, p dto.PostingPayload) (*client.Envelope, error) {
	if f.updated == nil {
		f.updated = map[string]dto.PostingPayload{}
	}
	f.updated[id] = p
	return f.env, nil
}
