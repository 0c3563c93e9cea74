package main

import (
	"context"
	"errors"
	"fmt"
	"sync"
	"time"
)

const (
	// SubmittedDisplayWindow is how long the "sent" confirmation stays up
	// before the form becomes usable again.
	SubmittedDisplayWindow = 5 * time.Second

	SubmissionFailedMessage = "Failed to send message. Please try again or email me directly."
)

// ErrFormBusy is returned when a submit arrives while a previous one is in
// flight or its confirmation is still showing.
var ErrFormBusy = errors.New("contact form busy")

// FormStatus is where a contact form is in its submit cycle.
type FormStatus int

const (
	StatusIdle FormStatus = iota
	StatusSubmitting
	StatusSubmitted
)

func (s FormStatus) String() string {
	switch s {
	case StatusSubmitting:
		return "submitting"
	case StatusSubmitted:
		return "submitted"
	default:
		return "idle"
	}
}

func (s FormStatus) Submitting() bool { return s == StatusSubmitting }
func (s FormStatus) Submitted() bool { return s == StatusSubmitted }

// Disabled mirrors the submit button: no submits until the form is idle.
func (s FormStatus) Disabled() bool { return s != StatusIdle }

// FormSnapshot is a copy of a form's state for rendering.
type FormSnapshot struct {
	Status FormStatus
	Fields ContactMessage
	Error  string
}

// ContactForm is one visitor's contact form.
type ContactForm struct {
	relay  Relay
	window time.Duration

	mu       sync.Mutex
	status   FormStatus
	fields   ContactMessage
	errMsg   string
	lastUsed time.Time
}

// NewContactForm returns an idle form that sends through relay and shows its
// confirmation for window.
func NewContactForm(relay Relay, window time.Duration) *ContactForm {
	return &ContactForm{relay: relay, window: window, lastUsed: time.Now()}
}

// Submit delivers msg through the relay. On success the fields are cleared
// and the form returns to idle once the display window has elapsed. On
// failure the form is idle again immediately, keeps msg, and carries
// SubmissionFailedMessage.
func (f *ContactForm) Submit(ctx context.Context, msg ContactMessage) error {
	f.mu.Lock()
	f.lastUsed = time.Now()
	if f.status != StatusIdle {
		f.mu.Unlock()
		return ErrFormBusy
	}
	f.status = StatusSubmitting
	f.fields = msg
	f.errMsg = ""
	f.mu.Unlock()

	err := f.relay.Send(ctx, msg)

	f.mu.Lock()
	defer f.mu.Unlock()
	if err != nil {
		f.status = StatusIdle
		f.errMsg = SubmissionFailedMessage
		if !errors.Is(err, ErrSubmissionFailed) {
			err = fmt.Errorf("%w: %v", ErrSubmissionFailed, err)
		}
		return err
	}

	f.status = StatusSubmitted
	f.fields = ContactMessage{}
	time.AfterFunc(f.window, f.expire)
	return nil
}

func (f *ContactForm) expire() {
	f.mu.Lock()
	defer f.mu.Unlock()
	if f.status == StatusSubmitted {
		f.status = StatusIdle
	}
}

// Keep stores in-progress field values without submitting, so a failed or
// invalid attempt can be re-rendered with what the visitor typed.
func (f *ContactForm) Keep(msg ContactMessage) {
	f.mu.Lock()
	defer f.mu.Unlock()
	f.lastUsed = time.Now()
	if f.status == StatusIdle {
		f.fields = msg
	}
}

// ClearError drops the failure message once it has been shown.
func (f *ContactForm) ClearError() {
	f.mu.Lock()
	defer f.mu.Unlock()
	f.errMsg = ""
}

// Snapshot copies the current state under the lock.
func (f *ContactForm) Snapshot() FormSnapshot {
	f.mu.Lock()
	defer f.mu.Unlock()
	return FormSnapshot{
		Status: f.status,
		Fields: f.fields,
		Error:  f.errMsg,
	}
}

// stale reports whether the form is idle and untouched since cutoff.
func (f *ContactForm) stale(cutoff time.Time) bool {
	f.mu.Lock()
	defer f.mu.Unlock()
	return f.status == StatusIdle && f.lastUsed.Before(cutoff)
}

// FormRegistry holds one ContactForm per visitor session.
type FormRegistry struct {
	relay  Relay
	window time.Duration

	mu    sync.Mutex
	forms map[string]*ContactForm
}

func NewFormRegistry(relay Relay, window time.Duration) *FormRegistry {
	return &FormRegistry{relay: relay, window: window, forms: make(map[string]*ContactForm)}
}

// Get returns the form for id, creating it on first use.
func (r *FormRegistry) Get(id string) *ContactForm {
	r.mu.Lock()
	defer r.mu.Unlock()
	f, ok := r.forms[id]
	if !ok {
		f = NewContactForm(r.relay, r.window)
		r.forms[id] = f
	}
	return f
}

// Peek returns the state of the form for id without creating one. Unknown ids
// read as an idle, empty form.
func (r *FormRegistry) Peek(id string) FormSnapshot {
	r.mu.Lock()
	f, ok := r.forms[id]
	r.mu.Unlock()
	if !ok {
		return FormSnapshot{}
	}
	return f.Snapshot()
}

// Len is the number of live forms.
func (r *FormRegistry) Len() int {
	r.mu.Lock()
	defer r.mu.Unlock()
	return len(r.forms)
}

// Sweep drops idle forms not used within ttl and returns how many it removed.
func (r *FormRegistry) Sweep(ttl time.Duration) int {
	cutoff := time.Now().Add(-ttl)
	r.mu.Lock()
	defer r.mu.Unlock()
	removed := 0
	for id, f := range r.forms {
		if f.stale(cutoff) {
			delete(r.forms, id)
			removed++
		}
	}
	return removed
}

// sweepLoop runs Sweep every ttl until ctx is done.
func (r *FormRegistry) sweepLoop(ctx context.Context, ttl time.Duration, onSweep func(int)) {
	ticker := time.NewTicker(ttl)
	defer ticker.Stop()
	for {
		select {
		case <-ctx.Done():
			return
		case <-ticker.C:
			if n := r.Sweep(ttl); n > 0 && onSweep != nil {
				onSweep(n)
			}
		}
	}
}
