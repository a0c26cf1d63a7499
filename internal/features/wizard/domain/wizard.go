package domain

import (
	"errors"
	"fmt"
	"sync"
	"time"
)

var (
	// ErrNotFound is returned for unknown or expired wizards.
	ErrNotFound = errors.New("wizard not found")
	// ErrUnknownKind is returned when no definition exists for a kind.
	ErrUnknownKind = errors.New("unknown wizard")
	// ErrNotLastStep is returned by Submit before the final step is reached.
	ErrNotLastStep = errors.New("wizard is not on its last step")
	// ErrLastStep is returned by Next on the final step; submit instead.
	ErrLastStep = errors.New("wizard is already on its last step")
	// ErrSubmitted is returned for any change after a successful submit.
	ErrSubmitted = errors.New("wizard already submitted")
	// ErrSubmitting is returned while a submit is waiting on the backend.
	ErrSubmitting = errors.New("wizard is being submitted")
	// ErrNotUploadField is returned when a file targets a non-upload field.
	ErrNotUploadField = errors.New("field does not accept uploads")
)

// Ticket identifies one upload to a field. Only the latest ticket issued
// for a field may write its result.
type Ticket struct {
	Field string
	ID    uint64
}

// State is what the browser renders for a wizard.
type State struct {
	ID        string            `json:"id"`
	Kind      Kind              `json:"kind"`
	Step      int               `json:"step"`
	StepName  string            `json:"stepName"`
	Steps     []string          `json:"steps"`
	Fields    []Field           `json:"fields"`
	Values    Values            `json:"values"`
	Errors    map[string]string `json:"errors,omitempty"`
	Last      bool              `json:"last"`
	Submitted bool              `json:"submitted"`
}

// Wizard is one in-progress form. It is safe for concurrent use.
type Wizard struct {
	id        string
	sessionID string
	def       Definition

	mu         sync.Mutex
	step       int
	values     Values
	tickets    map[string]uint64
	submitting bool
	submitted  bool
	touched    time.Time
}

// New starts def at its first step.
func New(id, sessionID string, def Definition) *Wizard {
	return &Wizard{
		id:        id,
		sessionID: sessionID,
		def:       def,
		values:    Values{},
		tickets:   map[string]uint64{},
		touched:   time.Now(),
	}
}

// ID returns the wizard id.
func (w *Wizard) ID() string { return w.id }

// SessionID returns the owning session.
func (w *Wizard) SessionID() string { return w.sessionID }

// Definition returns what the wizard runs.
func (w *Wizard) Definition() Definition { return w.def }

// Touched returns the time of the last change.
func (w *Wizard) Touched() time.Time {
	w.mu.Lock()
	defer w.mu.Unlock()
	return w.touched
}

// Next merges values for the current step and, if that step validates,
// advances. Earlier and later steps are never validated here.
func (w *Wizard) Next(values Values) error {
	w.mu.Lock()
	defer w.mu.Unlock()

	if err := w.frozen(); err != nil {
		return err
	}
	step := w.def.Steps[w.step]
	w.merge(step, values)

	if err := step.Validate(w.values); err != nil {
		return err
	}
	if w.last() {
		return ErrLastStep
	}
	w.step++
	return nil
}

// Back returns to the previous step without validating anything.
func (w *Wizard) Back() error {
	w.mu.Lock()
	defer w.mu.Unlock()

	if err := w.frozen(); err != nil {
		return err
	}
	if w.step > 0 {
		w.step--
	}
	w.touched = time.Now()
	return nil
}

// Prepare merges the final step's values, validates every step and returns
// the combined payload. It is only possible on the last step. On success the
// wizard is held for that submit: every change, including a second Prepare,
// fails with ErrSubmitting until MarkSubmitted or AbortSubmit.
func (w *Wizard) Prepare(values Values) (interface{}, error) {
	w.mu.Lock()
	defer w.mu.Unlock()

	if err := w.frozen(); err != nil {
		return nil, err
	}
	if !w.last() {
		return nil, ErrNotLastStep
	}
	w.merge(w.def.Steps[w.step], values)

	for _, s := range w.def.Steps {
		if err := s.Validate(w.values); err != nil {
			return nil, err
		}
	}

	payload, err := w.def.Payload(w.copyValues())
	if err != nil {
		return nil, fmt.Errorf("build %s payload: %w", w.def.Kind, err)
	}
	w.submitting = true
	return payload, nil
}

// MarkSubmitted freezes the wizard after the backend accepted it.
func (w *Wizard) MarkSubmitted() {
	w.mu.Lock()
	defer w.mu.Unlock()
	w.submitting = false
	w.submitted = true
	w.touched = time.Now()
}

// AbortSubmit releases the hold taken by Prepare after the backend refused
// the payload, so the user can correct it and submit again.
func (w *Wizard) AbortSubmit() {
	w.mu.Lock()
	defer w.mu.Unlock()
	w.submitting = false
	w.touched = time.Now()
}

// BeginUpload issues a new ticket for field. Any earlier ticket for the
// same field becomes stale.
func (w *Wizard) BeginUpload(field string) (Ticket, error) {
	w.mu.Lock()
	defer w.mu.Unlock()

	if err := w.frozen(); err != nil {
		return Ticket{}, err
	}
	f, ok := w.def.uploadField(field)
	if !ok {
		return Ticket{}, fmt.Errorf("%w: %s", ErrNotUploadField, field)
	}
	// Keyed by f.Name: the caller's string may be backed by a reused request buffer.
	w.tickets[f.Name]++
	w.touched = time.Now()
	return Ticket{Field: f.Name, ID: w.tickets[f.Name]}, nil
}

// CompleteUpload stores url for the ticket's field. It reports false and
// changes nothing when a newer upload was started for that field.
func (w *Wizard) CompleteUpload(t Ticket, url string) bool {
	w.mu.Lock()
	defer w.mu.Unlock()

	if w.submitted || w.tickets[t.Field] != t.ID {
		return false
	}
	w.values[t.Field] = url
	w.touched = time.Now()
	return true
}

// State returns a snapshot for rendering with fieldErrs attached.
func (w *Wizard) State(fieldErrs map[string]string) State {
	w.mu.Lock()
	defer w.mu.Unlock()

	steps := make([]string, len(w.def.Steps))
	for i, s := range w.def.Steps {
		steps[i] = s.Name
	}
	current := w.def.Steps[w.step]
	return State{
		ID:        w.id,
		Kind:      w.def.Kind,
		Step:      w.step,
		StepName:  current.Name,
		Steps:     steps,
		Fields:    append([]Field(nil), current.Fields...),
		Values:    w.copyValues(),
		Errors:    fieldErrs,
		Last:      w.last(),
		Submitted: w.submitted,
	}
}

func (w *Wizard) frozen() error {
	switch {
	case w.submitted:
		return ErrSubmitted
	case w.submitting:
		return ErrSubmitting
	}
	return nil
}

func (w *Wizard) last() bool {
	return w.step == len(w.def.Steps)-1
}

// merge copies only the fields declared by step.
func (w *Wizard) merge(step Step, values Values) {
	for k, v := range values {
		if f, ok := step.field(k); ok {
			w.values[f.Name] = v
		}
	}
	w.touched = time.Now()
}

func (w *Wizard) copyValues() Values {
	out := make(Values, len(w.values))
	for k, v := range w.values {
		out[k] = v
	}
	return out
}
