package service

import (
	"context"
	"errors"
	"fmt"
	"io"

	"cargo-portal/internal/core/logger"
	"cargo-portal/internal/core/metrics"
	"cargo-portal/internal/core/notice"
	sessiondomain "cargo-portal/internal/features/session/domain"
	"cargo-portal/internal/features/wizard/domain"
	"cargo-portal/internal/features/wizard/ports"

	"github.com/google/uuid"
	"go.uber.org/zap"
)

// ErrForbidden is returned when the user's role may not run a wizard.
var ErrForbidden = errors.New("wizard not available for this role")

// Result is the outcome of a wizard call: the state to render and an
// optional toast.
type Result struct {
	State  domain.State   `json:"state"`
	Notice *notice.Notice `json:"notice,omitempty"`
	// Submission is set once the backend accepted the wizard.
	Submission *ports.Submission `json:"submission,omitempty"`
}

// WizardService runs multi-step forms on behalf of a session.
type WizardService struct {
	store     ports.Store
	uploader  ports.Uploader
	submitter ports.Submitter
	defs      map[domain.Kind]domain.Definition
}

// NewWizardService creates a new WizardService for defs.
func NewWizardService(store ports.Store, uploader ports.Uploader, submitter ports.Submitter, defs map[domain.Kind]domain.Definition) *WizardService {
	return &WizardService{
		store:     store,
		uploader:  uploader,
		submitter: submitter,
		defs:      defs,
	}
}

// Start opens a new wizard of kind for the session.
func (s *WizardService) Start(sc *sessiondomain.Context, kind domain.Kind) (Result, error) {
	def, ok := s.defs[kind]
	if !ok {
		return Result{}, fmt.Errorf("%w: %s", domain.ErrUnknownKind, kind)
	}
	if !def.Allows(sc.Role()) {
		return Result{}, ErrForbidden
	}

	w := domain.New(uuid.NewString(), sc.ID, def)
	s.store.Save(w)
	return Result{State: w.State(nil)}, nil
}

// Get returns the current state of a wizard.
func (s *WizardService) Get(sc *sessiondomain.Context, id string) (Result, error) {
	w, err := s.store.Get(sc.ID, id)
	if err != nil {
		return Result{}, err
	}
	return Result{State: w.State(nil)}, nil
}

// Next validates the current step with values and advances.
func (s *WizardService) Next(sc *sessiondomain.Context, id string, values domain.Values) (Result, error) {
	w, err := s.store.Get(sc.ID, id)
	if err != nil {
		return Result{}, err
	}
	if err := w.Next(values); err != nil {
		return failed(w, err), err
	}
	return Result{State: w.State(nil)}, nil
}

// Back returns to the previous step.
func (s *WizardService) Back(sc *sessiondomain.Context, id string) (Result, error) {
	w, err := s.store.Get(sc.ID, id)
	if err != nil {
		return Result{}, err
	}
	if err := w.Back(); err != nil {
		return failed(w, err), err
	}
	return Result{State: w.State(nil)}, nil
}

// Upload sends a file for field and stores its URL, unless a newer upload
// for the same field was started meanwhile. A dropped result is not an error.
func (s *WizardService) Upload(ctx context.Context, sc *sessiondomain.Context, id, field, filename string, content io.Reader) (Result, error) {
	w, err := s.store.Get(sc.ID, id)
	if err != nil {
		return Result{}, err
	}

	ticket, err := w.BeginUpload(field)
	if err != nil {
		return failed(w, err), err
	}

	url, err := s.uploader.Upload(ctx, sc.Token, filename, content)
	if err != nil {
		return failed(w, err), err
	}

	if !w.CompleteUpload(ticket, url) {
		metrics.UploadsDiscardedTotal.Inc()
		logger.Named("wizard").Debug("Dropped superseded upload",
			zap.String("wizard", id),
			zap.String("field", field),
			zap.Uint64("ticket", ticket.ID))
		return Result{State: w.State(nil)}, nil
	}
	return Result{State: w.State(nil), Notice: notice.Success("File uploaded")}, nil
}

// Submit validates every step and posts the combined payload. The wizard is
// removed once the backend accepts it. Only one submit per wizard reaches the
// backend at a time; others fail with domain.ErrSubmitting.
func (s *WizardService) Submit(ctx context.Context, sc *sessiondomain.Context, id string, values domain.Values) (Result, error) {
	w, err := s.store.Get(sc.ID, id)
	if err != nil {
		return Result{}, err
	}

	payload, err := w.Prepare(values)
	if err != nil {
		return failed(w, err), err
	}

	sub, err := s.submitter.Submit(ctx, sc.Token, w.Definition().Submit, payload)
	if err != nil {
		w.AbortSubmit()
		return failed(w, err), err
	}

	w.MarkSubmitted()
	s.store.Delete(id)

	msg := sub.Message
	if msg == "" {
		msg = "Submitted"
	}
	return Result{State: w.State(nil), Notice: notice.Success(msg), Submission: sub}, nil
}

// CloseSession drops the session's wizards on sign-out.
func (s *WizardService) CloseSession(sessionID string) {
	s.store.CloseSession(sessionID)
}

var flowMessages = map[error]string{
	domain.ErrLastStep:       "This is the last step, submit the form",
	domain.ErrNotLastStep:    "Complete every step before submitting",
	domain.ErrSubmitted:      "This form was already submitted",
	domain.ErrSubmitting:     "This form is being submitted",
	domain.ErrNotUploadField: "This field does not accept files",
}

func failed(w *domain.Wizard, err error) Result {
	var vErr *notice.ValidationError
	if errors.As(err, &vErr) {
		return Result{State: w.State(vErr.Fields), Notice: notice.FromError(err)}
	}
	for target, msg := range flowMessages {
		if errors.Is(err, target) {
			return Result{State: w.State(nil), Notice: &notice.Notice{Kind: notice.KindValidation, Message: msg}}
		}
	}
	return Result{State: w.State(nil), Notice: notice.FromError(err)}
}
