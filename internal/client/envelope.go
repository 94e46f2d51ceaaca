package client

import (
	"encoding/json"
	"fmt"
	"net/http"
	"strings"

	"github.com/fadilmartias/skillsyncer/internal/apperror"
	"github.com/tidwall/gjson"
)

// GenericFailure is shown when the API gives no usable message.
const GenericFailure = "Request failed. Please try again."

// Envelope is the canonical shape of every API response. Fields other than
// success, message, data and errors are ignored.
type Envelope struct {
	Status  int
	Success bool
	Message string
	Errors  []string
	Data    gjson.Result
}

// decodeEnvelope is the single place responses are unwrapped. A body that is
// not a JSON object is reported as a network error since no API answer was
// received.
func decodeEnvelope(status int, body []byte) (*Envelope, error) {
	root := gjson.ParseBytes(body)
	if !gjson.ValidBytes(body) || !root.IsObject() {
		return nil, apperror.New(apperror.KindNetwork,
			fmt.Sprintf("unexpected response from server (HTTP %d)", status))
	}

	env := &Envelope{
		Status:  status,
		Success: root.Get("success").Bool(),
		Message: strings.TrimSpace(root.Get("message").String()),
		Data:    root.Get("data"),
	}
	for _, e := range root.Get("errors").Array() {
		if s := strings.TrimSpace(e.String()); s != "" {
			env.Errors = append(env.Errors, s)
		}
	}
	return env, nil
}

// Decode unmarshals the data object into out. A missing data object leaves
// out untouched.
func (e *Envelope) Decode(out any) error {
	if !e.Data.Exists() || e.Data.Type == gjson.Null {
		return nil
	}
	if err := json.Unmarshal([]byte(e.Data.Raw), out); err != nil {
		return fmt.Errorf("decode response data: %w", err)
	}
	return nil
}

// FailureMessage picks the most specific description of a failed response:
// the message with its field errors, then the message alone, then fallback.
func (e *Envelope) FailureMessage(fallback string) string {
	switch {
	case e.Message != "" && len(e.Errors) > 0:
		return e.Message + ": " + strings.Join(e.Errors, ", ")
	case e.Message != "":
		return e.Message
	case len(e.Errors) > 0:
		return strings.Join(e.Errors, ", ")
	default:
		return fallback
	}
}

// Err converts an unsuccessful envelope into a classified error, or nil.
func (e *Envelope) Err() error {
	if e.Success {
		return nil
	}
	msg := e.Message
	if msg == "" {
		msg = GenericFailure
	}
	return apperror.New(kindForStatus(e.Status), msg, e.Errors...)
}

func kindForStatus(status int) apperror.Kind {
	switch {
	case status == http.StatusNotFound:
		return apperror.KindNotFound
	case status == http.StatusConflict:
		return apperror.KindConflict
	case status == http.StatusUnauthorized || status == http.StatusForbidden:
		return apperror.KindForbidden
	case status >= 500:
		return apperror.KindInternal
	default:
		return apperror.KindServerValidation
	}
}
