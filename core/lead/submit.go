package lead

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"sync"
	"time"

	"go.uber.org/zap"

	"github.com/MaRkS1234567/MySite-web/core/locale"
	"github.com/MaRkS1234567/MySite-web/internal/errors"
	"github.com/MaRkS1234567/MySite-web/internal/logging"
)

// Status is the submission lifecycle state.
type Status string

const (
	StatusIdle       Status = "idle"
	StatusSubmitting Status = "submitting"
	StatusSuccess    Status = "success"
	StatusError      Status = "error"
)

// Sentinel conditions for rejected submit attempts.
var (
	// ErrInFlight is returned when a submission is already pending.
	ErrInFlight = errors.New(errors.TypeInternal, "submission already in flight")

	// ErrCompleted is returned after a successful submission; the success
	// view is terminal for the session.
	ErrCompleted = errors.New(errors.TypeInternal, "draft already submitted")
)

// User-facing strings. All failures degrade to these two; transport and
// provider details never reach the user.
var (
	requiredText = locale.Text{
		RU: "Обязательное поле",
		EN: "Required field",
	}
	failureText = locale.Text{
		RU: "Что-то пошло не так. Попробуйте ещё раз.",
		EN: "Something went wrong. Please try again.",
	}
)

// defaultTimeout bounds one submission attempt.
const defaultTimeout = 10 * time.Second

// Submitter posts a composed draft to the contact relay and tracks the
// request lifecycle. At most one submission is in flight per draft; a
// submit attempt during a pending one is rejected, not queued.
type Submitter struct {
	mu       sync.Mutex
	status   Status
	invalid  []Field
	message  string
	endpoint string
	lang     locale.Lang
	client   *http.Client
}

// NewSubmitter creates a submitter posting to the given relay endpoint.
func NewSubmitter(endpoint string, lang locale.Lang) *Submitter {
	return &Submitter{
		status:   StatusIdle,
		endpoint: endpoint,
		lang:     lang,
		client:   &http.Client{Timeout: defaultTimeout},
	}
}

// Status returns the current lifecycle state.
func (s *Submitter) Status() Status {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.status
}

// InvalidFields returns the fields flagged by the last submit attempt.
func (s *Submitter) InvalidFields() []Field {
	s.mu.Lock()
	defer s.mu.Unlock()
	return append([]Field(nil), s.invalid...)
}

// Message returns the localized user-facing message for the current
// state: the required-field hint, the generic failure text, or empty.
func (s *Submitter) Message() string {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.message
}

// Submit validates the draft and posts it to the relay. Validation
// failures flag the empty fields and never issue a network call.
func (s *Submitter) Submit(ctx context.Context, d *Draft) error {
	s.mu.Lock()
	switch s.status {
	case StatusSubmitting:
		s.mu.Unlock()
		return ErrInFlight
	case StatusSuccess:
		s.mu.Unlock()
		return ErrCompleted
	}

	if empty := d.Validate(); len(empty) > 0 {
		s.invalid = empty
		s.message = requiredText.Get(s.lang)
		s.mu.Unlock()
		return errors.Newf(errors.TypeValidation, "%d required fields empty", len(empty))
	}

	s.status = StatusSubmitting
	s.invalid = nil
	s.message = ""
	s.mu.Unlock()

	err := s.post(ctx, d)

	s.mu.Lock()
	defer s.mu.Unlock()
	if err != nil {
		s.status = StatusError
		s.message = failureText.Get(s.lang)
		return err
	}
	s.status = StatusSuccess
	return nil
}

func (s *Submitter) post(ctx context.Context, d *Draft) error {
	if _, ok := ctx.Deadline(); !ok {
		var cancel context.CancelFunc
		ctx, cancel = context.WithTimeout(ctx, defaultTimeout)
		defer cancel()
	}

	payload := Message{
		Kind:        d.Kind,
		Format:      d.Format,
		Name:        d.Name,
		Contact:     d.Contact,
		Description: d.Description,
	}
	body, err := json.Marshal(payload)
	if err != nil {
		return errors.Internal("failed to encode lead", err)
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodPost, s.endpoint, bytes.NewReader(body))
	if err != nil {
		return errors.Internal("failed to create request", err)
	}
	req.Header.Set("Content-Type", "application/json")

	resp, err := s.client.Do(req)
	if err != nil {
		logging.Warn("lead submission failed",
			zap.String("lead_id", d.ID),
			zap.Error(err))
		return errors.Transport("contact relay unreachable", err)
	}
	defer resp.Body.Close()
	io.Copy(io.Discard, resp.Body)

	if resp.StatusCode < 200 || resp.StatusCode > 299 {
		logging.Warn("lead submission rejected",
			zap.String("lead_id", d.ID),
			zap.Int("status", resp.StatusCode))
		return errors.Upstream(fmt.Sprintf("contact relay returned %d", resp.StatusCode), nil)
	}

	logging.Info("lead submitted",
		zap.String("lead_id", d.ID),
		zap.String("kind", string(d.Kind)))
	return nil
}
