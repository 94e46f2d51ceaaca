// Package submission drives drafts from a validated form to the API.
package submission

import (
	"context"
	"errors"
	"sync"

	"github.com/fadilmartias/skillsyncer/internal/apperror"
	"github.com/fadilmartias/skillsyncer/internal/client"
	"github.com/fadilmartias/skillsyncer/internal/logger"
)

type State int

const (
	StateIdle State = iota
	StateSubmitting
	StateSuccess
	StateError
)

func (s State) String() string {
	switch s {
	case StateSubmitting:
		return "submitting"
	case StateSuccess:
		return "success"
	case StateError:
		return "error"
	default:
		return "idle"
	}
}

const networkFailure = "Network error. Please check your connection and try again."

var (
	ErrSubmissionInFlight = errors.New("a submission is already in progress")
	ErrSessionClosed      = errors.New("session is closed")
)

// SendFunc performs the single network call of one submission.
type SendFunc func(ctx context.Context) (*client.Envelope, error)

// Controller is the submit state machine shared by application and posting
// sessions. It never retries on its own; a failed submission can be retried
// by calling Run again.
type Controller struct {
	mu       sync.Mutex
	state    State
	message  string
	fallback string
	log      logger.Logger
}

// NewController returns an idle controller. fallback is the message shown
// when a failed response carries no message of its own.
func NewController(fallback string, log logger.Logger) *Controller {
	return &Controller{fallback: fallback, log: log}
}

// State returns the current state and, in StateError, its message.
func (c *Controller) State() (State, string) {
	c.mu.Lock()
	defer c.mu.Unlock()
	return c.state, c.message
}

// Run validates, sends and records the outcome. validate runs while the
// controller is locked; a non-nil result aborts before any network call.
// onSuccess runs after the state becomes StateSuccess.
func (c *Controller) Run(ctx context.Context, validate func() error, send SendFunc, onSuccess func(*client.Envelope)) error {
	c.mu.Lock()
	if c.state == StateSubmitting {
		c.mu.Unlock()
		return ErrSubmissionInFlight
	}
	if err := validate(); err != nil {
		c.mu.Unlock()
		return err
	}
	c.state = StateSubmitting
	c.message = ""
	c.mu.Unlock()

	env, err := send(ctx)
	if err = c.finish(env, err); err != nil {
		return err
	}
	if onSuccess != nil {
		onSuccess(env)
	}
	return nil
}

func (c *Controller) finish(env *client.Envelope, err error) error {
	c.mu.Lock()
	defer c.mu.Unlock()

	if err != nil {
		c.state = StateError
		if apperror.Is(err, apperror.KindNetwork) {
			c.message = networkFailure
		} else {
			c.message = c.fallback
		}
		c.log.WithError(err).Warn("submission failed", map[string]interface{}{"message": c.message})
		return apperror.Wrap(apperror.KindOf(err), c.message, err)
	}

	if !env.Success {
		c.state = StateError
		c.message = env.FailureMessage(c.fallback)
		c.log.Warn("submission rejected", map[string]interface{}{
			"status":  env.Status,
			"message": c.message,
		})
		return apperror.New(apperror.KindOf(env.Err()), c.message)
	}

	c.state = StateSuccess
	c.log.Info("submission accepted", map[string]interface{}{"status": env.Status})
	return nil
}
