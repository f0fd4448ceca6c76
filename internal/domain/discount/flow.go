// internal/domain/discount/flow.go
package discount

import (
	"context"
	"errors"
	"fmt"
	"strings"
	"sync"

	"github.com/sirupsen/logrus"
)

// Rate is the flat reduction a valid code grants. Display only: the
// authoritative amount is whatever checkout confirms.
const Rate = 0.10

// ErrEmptyCode is returned when an empty or whitespace-only code is applied.
// It is rejected locally and never reaches the network.
var ErrEmptyCode = errors.New("discount code is empty")

// ErrCodeRejected is returned when the backend reports a code as not valid.
var ErrCodeRejected = errors.New("invalid discount code")

// Backend covers the discount calls the flow issues.
type Backend interface {
	CheckForDiscount(ctx context.Context) (string, error)
	ValidateDiscount(ctx context.Context, code string) (bool, error)
}

// Flow tracks the client's transient belief about one discount code. The
// code's true lifecycle is owned by the backend; validity here must be
// re-derived from it rather than assumed.
type Flow struct {
	mu      sync.Mutex
	backend Backend
	log     logrus.FieldLogger

	code  string
	valid bool
}

// NewFlow creates a discount qualification flow.
func NewFlow(backend Backend, log logrus.FieldLogger) *Flow {
	return &Flow{backend: backend, log: log}
}

// Code returns the current code text.
func (f *Flow) Code() string {
	f.mu.Lock()
	defer f.mu.Unlock()
	return f.code
}

// Valid reports whether the current code has been confirmed by the backend
// and not edited since.
func (f *Flow) Valid() bool {
	f.mu.Lock()
	defer f.mu.Unlock()
	return f.valid
}

// CheckEligibility asks the backend whether the user currently qualifies for
// a new code. If granted, the code is adopted and marked valid immediately;
// the server guarantees validity at issuance time, so no redundant validation
// call is made. If not granted, state is left unchanged.
func (f *Flow) CheckEligibility(ctx context.Context) (string, bool, error) {
	code, err := f.backend.CheckForDiscount(ctx)
	if err != nil {
		f.log.WithError(err).Warn("Failed to check discount eligibility")
		return "", false, fmt.Errorf("failed to check discount eligibility: %w", err)
	}
	if code == "" {
		return "", false, nil
	}

	f.mu.Lock()
	defer f.mu.Unlock()
	f.code = code
	f.valid = true
	return code, true, nil
}

// Apply validates a user-entered code against the backend. An empty or
// whitespace-only code is rejected locally with no network call. Any outcome
// other than a confirmed true clears validity.
func (f *Flow) Apply(ctx context.Context, code string) error {
	if strings.TrimSpace(code) == "" {
		f.mu.Lock()
		f.valid = false
		f.mu.Unlock()
		return ErrEmptyCode
	}

	f.mu.Lock()
	f.code = code
	f.mu.Unlock()

	valid, err := f.backend.ValidateDiscount(ctx, code)

	f.mu.Lock()
	defer f.mu.Unlock()
	if err != nil {
		f.valid = false
		f.log.WithError(err).Warn("Failed to validate discount code")
		return fmt.Errorf("failed to validate discount code: %w", err)
	}
	if !valid {
		f.valid = false
		return ErrCodeRejected
	}
	f.valid = true
	return nil
}

// Edit records a change to the code text. A validated code becomes
// unvalidated the moment its text changes, forcing re-validation before
// reuse.
func (f *Flow) Edit(code string) {
	f.mu.Lock()
	defer f.mu.Unlock()
	f.code = code
	f.valid = false
}

// Clear resets the flow to its initial state.
func (f *Flow) Clear() {
	f.mu.Lock()
	defer f.mu.Unlock()
	f.code = ""
	f.valid = false
}

// Amount returns the discount to display for a subtotal: exactly 10% when a
// code is currently valid, zero otherwise.
func (f *Flow) Amount(subtotal float64) float64 {
	if !f.Valid() {
		return 0
	}
	return subtotal * Rate
}
