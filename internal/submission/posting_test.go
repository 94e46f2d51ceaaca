package submission

import (
	"context"
	"testing"
	"time"

	"github.com/fadilmartias/skillsyncer/internal/apperror"
	"github.com/fadilmartias/skillsyncer/internal/client"
	"github.com/fadilmartias/skillsyncer/internal/dto"
	"github.com/fadilmartias/skillsyncer/internal/logger"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func postingDraft() dto.PostingDraft {
	return dto.PostingDraft{
		Title:           "QA Intern",
		Location:        "Hyderabad",
		StartDate:       "2026-12-01",
		LastDateToApply: "2026-11-10",
		TotalSeats:      2,
		Description:     "Test web apps.",
		SkillsRequired:  []string{"Selenium"},
		Eligibility:     "Any graduate",
	}
}

func fixedNow() time.Time { return time.Date(2026, 10, 17, 12, 0, 0, 0, time.UTC) }

func TestPostingSession_CreateNormalizes(t *testing.T) {
	api := &fakePostingAPI{env: &client.Envelope{Status: 201, Success: true}}
	s := NewPostingSession(api, "", postingDraft(), logger.NewNoOpLogger())
	s.now = fixedNow

	require.NoError(t, s.Submit(context.Background()))

	require.Len(t, api.created, 1)
	assert.Equal(t, "Offline", api.created[0].Mode)
	assert.Equal(t, "INR", api.created[0].Stipend.Currency)
	state, _ := s.State()
	assert.Equal(t, StateSuccess, state)
}

func TestPostingSession_CreateDiscardsDraftOnSuccess(t *testing.T) {
	api := &fakePostingAPI{env: &client.Envelope{Status: 201, Success: true}}
	s := NewPostingSession(api, "", postingDraft(), logger.NewNoOpLogger())
	s.now = fixedNow

	require.NoError(t, s.Submit(context.Background()))
	assert.ErrorIs(t, s.Submit(context.Background()), ErrSessionClosed)

	assert.Len(t, api.created, 1)
	assert.Equal(t, dto.PostingDraft{}, s.Draft())
}

func TestPostingSession_FailedCreateKeepsDraft(t *testing.T) {
	api := &fakePostingAPI{env: &client.Envelope{Status: 500, Message: "Server error"}}
	s := NewPostingSession(api, "", postingDraft(), logger.NewNoOpLogger())
	s.now = fixedNow

	require.Error(t, s.Submit(context.Background()))

	assert.Equal(t, postingDraft(), s.Draft())
	api.env = &client.Envelope{Status: 201, Success: true}
	require.NoError(t, s.Submit(context.Background()))
	assert.Len(t, api.created, 2)
}

func TestPostingSession_UpdateUsesID(t *testing.T) {
	api := &fakePostingAPI{env: &client.Envelope{Status: 200, Success: true}}
	s := NewPostingSession(api, "p-9", postingDraft(), logger.NewNoOpLogger())
	s.now = fixedNow

	require.NoError(t, s.Submit(context.Background()))

	assert.Contains(t, api.updated, "p-9")
	assert.Empty(t, api.created)
}

func TestPostingSession_DateRulesBlockSubmit(t *testing.T) {
	api := &fakePostingAPI{env: &client.Envelope{Success: true}}
	d := postingDraft()
	d.StartDate = "2026-11-01"
	s := NewPostingSession(api, "", d, logger.NewNoOpLogger())
	s.now = fixedNow

	err := s.Submit(context.Background())

	assert.True(t, apperror.Is(err, apperror.KindClientValidation))
	assert.Equal(t, "Start date must be after last date to apply", s.Errors()["startDate"])
	assert.Empty(t, api.created)

	s.Update(func(d *dto.PostingDraft) { d.StartDate = "2026-12-15" })
	assert.True(t, s.Errors().Empty())
	require.NoError(t, s.Submit(context.Background()))
	assert.Len(t, api.created, 1)
}

func TestPostingSession_UpdateFallbackMessage(t *testing.T) {
	api := &fakePostingAPI{env: &client.Envelope{Status: 500}}
	s := NewPostingSession(api, "p-9", postingDraft(), logger.NewNoOpLogger())
	s.now = fixedNow

	require.Error(t, s.Submit(context.Background()))

	_, msg := s.State()
	assert.Equal(t, "Failed to update internship", msg)
}
