package client

import (
	"testing"

	"github.com/fadilmartias/skillsyncer/internal/apperror"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestDecodeEnvelope_IgnoresUnknownFields(t *testing.T) {
	env, err := decodeEnvelope(200, []byte(`{"success":true,"message":"ok","data":{"resumeUrl":"a"},"meta":{"v":2},"trace":"x"}`))
	require.NoError(t, err)

	var out struct {
		ResumeURL string `json:"resumeUrl"`
	}
	require.NoError(t, env.Decode(&out))
	assert.True(t, env.Success)
	assert.Equal(t, "ok", env.Message)
	assert.Equal(t, "a", out.ResumeURL)
}

func TestDecodeEnvelope_MissingDataLeavesTargetAlone(t *testing.T) {
	env, err := decodeEnvelope(200, []byte(`{"success":true,"data":null}`))
	require.NoError(t, err)

	out := map[string]string{"keep": "me"}
	require.NoError(t, env.Decode(&out))
	assert.Equal(t, "me", out["keep"])
}

func TestDecodeEnvelope_RejectsNonObjects(t *testing.T) {
	for _, body := range []string{"", "[]", "not json", `"str"`} {
		_, err := decodeEnvelope(200, []byte(body))
		assert.True(t, apperror.Is(err, apperror.KindNetwork), body)
	}
}

func TestEnvelope_FailureMessagePriority(t *testing.T) {
	tests := []struct {
		name string
		env  Envelope
		want string
	}{
		{"message and errors", Envelope{Message: "Validation failed", Errors: []string{"a", "b"}}, "Validation failed: a, b"},
		{"message only", Envelope{Message: "Internship is closed"}, "Internship is closed"},
		{"errors only", Envelope{Errors: []string{"a"}}, "a"},
		{"nothing", Envelope{}, "fallback"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, tt.env.FailureMessage("fallback"))
		})
	}
}

func TestEnvelope_ErrKinds(t *testing.T) {
	assert.NoError(t, (&Envelope{Success: true}).Err())
	assert.True(t, apperror.Is((&Envelope{Status: 409}).Err(), apperror.KindConflict))
	assert.True(t, apperror.Is((&Envelope{Status: 403}).Err(), apperror.KindForbidden))
	assert.True(t, apperror.Is((&Envelope{Status: 500}).Err(), apperror.KindInternal))
	assert.True(t, apperror.Is((&Envelope{Status: 422}).Err(), apperror.KindServerValidation))
}
