// Package client talks to the SkillSyncer HTTP API on behalf of a jobseeker
// or employer session.
package client

import (
	"bytes"
	"context"
	"strings"
	"time"

	"github.com/fadilmartias/skillsyncer/internal/apperror"
	"github.com/fadilmartias/skillsyncer/internal/dto"
	"github.com/go-resty/resty/v2"
)

const (
	HeaderUserID   = "X-User-ID"
	HeaderUserRole = "X-User-Role"
)

// Session is the caller identity attached to every request.
type Session struct {
	Token  string
	UserID string
	Role   string
}

type Client struct {
	http *resty.Client
}

func New(baseURL string, session Session, timeout time.Duration) *Client {
	h := resty.New().
		SetBaseURL(strings.TrimRight(baseURL, "/")).
		SetTimeout(timeout).
		SetHeader("Accept", "application/json")
	if session.Token != "" {
		h.SetAuthToken(session.Token)
	}
	if session.UserID != "" {
		h.SetHeader(HeaderUserID, session.UserID)
	}
	if session.Role != "" {
		h.SetHeader(HeaderUserRole, session.Role)
	}
	return &Client{http: h}
}

// do sends one request and decodes its envelope. Transport failures come
// back as network errors; API-level failures are left in the envelope.
func (c *Client) do(ctx context.Context, method, path string, prepare func(*resty.Request)) (*Envelope, error) {
	req := c.http.R().SetContext(ctx)
	if prepare != nil {
		prepare(req)
	}
	resp, err := req.Execute(method, path)
	if err != nil {
		return nil, apperror.Wrap(apperror.KindNetwork, "Network error. Please check your connection and try again.", err)
	}
	return decodeEnvelope(resp.StatusCode(), resp.Body())
}

// fetch is do for reads: an unsuccessful envelope becomes an error and the
// data object is decoded into out.
func (c *Client) fetch(ctx context.Context, path string, prepare func(*resty.Request), out any) error {
	env, err := c.do(ctx, resty.MethodGet, path, prepare)
	if err != nil {
		return err
	}
	if err := env.Err(); err != nil {
		return err
	}
	return env.Decode(out)
}

func (c *Client) GetProfile(ctx context.Context) (dto.ProfileView, error) {
	var view dto.ProfileView
	err := c.fetch(ctx, "/api/jobseeker/profile", nil, &view)
	return view, err
}

func (c *Client) GetProfileSuggestions(ctx context.Context) (dto.ProfileSuggestionsDTO, error) {
	var out dto.ProfileSuggestionsDTO
	err := c.fetch(ctx, "/api/jobseeker/profile-suggestions", nil, &out)
	return out, err
}

func (c *Client) GetPosting(ctx context.Context, id string) (dto.Posting, error) {
	var p dto.Posting
	err := c.fetch(ctx, "/api/jobseeker/internships/"+id, nil, &p)
	return p, err
}

func (c *Client) ListPostings(ctx context.Context, f dto.PostingFilter) ([]dto.Posting, error) {
	var out struct {
		Internships []dto.Posting `json:"internships"`
	}
	err := c.fetch(ctx, "/api/jobseeker/internships", func(r *resty.Request) {
		setIfNotEmpty(r, "industry", f.Industry)
		setIfNotEmpty(r, "location", f.Location)
		setIfNotEmpty(r, "mode", f.Mode)
		setIfNotEmpty(r, "skills", strings.Join(f.Skills, ","))
	}, &out)
	return out.Internships, err
}

func (c *Client) ListApplications(ctx context.Context) ([]dto.ApplicationDTO, error) {
	var out struct {
		Applications []dto.ApplicationDTO `json:"applications"`
	}
	err := c.fetch(ctx, "/api/jobseeker/applications-detailed", nil, &out)
	return out.Applications, err
}

// UploadResume sends the file as the multipart field "resume" and returns
// the stored URL.
func (c *Client) UploadResume(ctx context.Context, filename string, content []byte) (string, error) {
	env, err := c.do(ctx, resty.MethodPost, "/api/jobseeker/upload-resume", func(r *resty.Request) {
		r.SetFileReader("resume", filename, bytes.NewReader(content))
	})
	if err != nil {
		return "", err
	}
	if !env.Success {
		return "", apperror.New(apperror.KindUpload, env.FailureMessage("Failed to upload resume"), env.Errors...)
	}
	var out dto.ResumeUploadDTO
	if err := env.Decode(&out); err != nil {
		return "", err
	}
	if out.ResumeURL == "" {
		return "", apperror.New(apperror.KindUpload, "Upload response did not include a resume URL")
	}
	return out.ResumeURL, nil
}

// ApplyDetailed submits an application. The envelope is returned even when
// the API rejects the payload so the caller can show its message.
func (c *Client) ApplyDetailed(ctx context.Context, postingID string, payload dto.ApplicationPayload) (*Envelope, error) {
	return c.do(ctx, resty.MethodPost, "/api/jobseeker/internships/"+postingID+"/apply-detailed", func(r *resty.Request) {
		r.SetBody(payload)
	})
}

func (c *Client) CreatePosting(ctx context.Context, payload dto.PostingPayload) (*Envelope, error) {
	return c.do(ctx, resty.MethodPost, "/api/employer/internships", func(r *resty.Request) {
		r.SetBody(payload)
	})
}

func (c *Client) UpdatePosting(ctx context.Context, id string, payload dto.PostingPayload) (*Envelope, error) {
	return c.do(ctx, resty.MethodPut, "/api/employer/internships/"+id, func(r *resty.Request) {
		r.SetBody(payload)
	})
}

func setIfNotEmpty(r *resty.Request, key, value string) {
	if value != "" {
		r.SetQueryParam(key, value)
	}
}
