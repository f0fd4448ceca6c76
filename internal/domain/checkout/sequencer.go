// internal/domain/checkout/sequencer.go
package checkout

import (
	"context"
	"sync"

	"github.com/sirupsen/logrus"
	"github.com/your-org/storefront/internal/api"
)

// State is the sequencer's position in the checkout lifecycle.
type State int

const (
	// Idle means no checkout attempt is active.
	Idle State = iota
	// InFlight means an order submission has been issued and not yet resolved.
	InFlight
	// Success means the last attempt produced an order.
	Success
	// Failed means the last attempt was rejected.
	Failed
)

func (s State) String() string {
	switch s {
	case InFlight:
		return "in-flight"
	case Success:
		return "success"
	case Failed:
		return "failed"
	default:
		return "idle"
	}
}

// checkoutFailedMessage is the fallback when an error carries no message.
const checkoutFailedMessage = "Checkout failed"

// Backend covers the calls the sequencer drives: order submission and the
// post-order eligibility probe.
type Backend interface {
	Checkout(ctx context.Context, discountCode string) (*api.Order, error)
	CheckForDiscount(ctx context.Context) (string, error)
}

// Sequencer drives the multi-step checkout operation: submit the order, then
// probe once whether this order made the user eligible for a new code. There
// is no local compensation; state reflects whatever the backend last
// confirmed.
type Sequencer struct {
	mu      sync.Mutex
	backend Backend
	log     logrus.FieldLogger

	state   State
	order   *api.Order
	errMsg  string
	wonCode string
}

// NewSequencer creates a checkout sequencer.
func NewSequencer(backend Backend, log logrus.FieldLogger) *Sequencer {
	return &Sequencer{backend: backend, log: log, state: Idle}
}

// Run submits the order, carrying discountCode when non-empty. On success it
// records the returned order and issues exactly one eligibility check; a code
// granted there is held separately as the won code, because a single order
// may both redeem a code and earn the next one. On failure the prior cart and
// discount state are untouched.
func (s *Sequencer) Run(ctx context.Context, discountCode string) (*api.Order, error) {
	s.mu.Lock()
	s.state = InFlight
	s.order = nil
	s.errMsg = ""
	s.wonCode = ""
	s.mu.Unlock()

	order, err := s.backend.Checkout(ctx, discountCode)
	if err != nil {
		s.mu.Lock()
		s.state = Failed
		s.errMsg = messageFrom(err)
		s.mu.Unlock()
		return nil, err
	}

	s.mu.Lock()
	s.state = Success
	s.order = order
	s.mu.Unlock()

	// The probe never runs before the order resolves, and at most once per
	// attempt. A probe failure does not demote a placed order.
	wonCode, err := s.backend.CheckForDiscount(ctx)
	if err != nil {
		s.log.WithError(err).Warn("Post-order eligibility check failed")
		return order, nil
	}
	if wonCode != "" {
		s.mu.Lock()
		s.wonCode = wonCode
		s.mu.Unlock()
	}

	return order, nil
}

// State returns the sequencer's current state.
func (s *Sequencer) State() State {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.state
}

// Order returns the order recorded by the last successful attempt.
func (s *Sequencer) Order() *api.Order {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.order
}

// ErrorMessage returns the user-facing message of the last failed attempt.
func (s *Sequencer) ErrorMessage() string {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.errMsg
}

// WonCode returns the code earned by the last successful attempt, if any.
func (s *Sequencer) WonCode() string {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.wonCode
}

// Reset returns the sequencer to Idle, clearing any recorded outcome. The
// storefront calls this when the drawer closes.
func (s *Sequencer) Reset() {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.state = Idle
	s.order = nil
	s.errMsg = ""
	s.wonCode = ""
}

func messageFrom(err error) string {
	if err == nil || err.Error() == "" {
		return checkoutFailedMessage
	}
	return err.Error()
}
