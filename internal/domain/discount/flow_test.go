// internal/domain/discount/flow_test.go
package discount

import (
	"context"
	"errors"
	"io"
	"testing"

	"github.com/sirupsen/logrus"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type stubBackend struct {
	grantedCode   string
	grantErr      error
	valid         bool
	validateErr   error
	validateCalls int
}

func (s *stubBackend) CheckForDiscount(ctx context.Context) (string, error) {
	return s.grantedCode, s.grantErr
}

func (s *stubBackend) ValidateDiscount(ctx context.Context, code string) (bool, error) {
	s.validateCalls++
	return s.valid, s.validateErr
}

func quietLogger() *logrus.Logger {
	logger := logrus.New()
	logger.SetOutput(io.Discard)
	return logger
}

func TestApplyEmptyCodeNeverReachesNetwork(t *testing.T) {
	for _, code := range []string{"", "   ", "\t"} {
		backend := &stubBackend{valid: true}
		flow := NewFlow(backend, quietLogger())

		err := flow.Apply(context.Background(), code)

		assert.ErrorIs(t, err, ErrEmptyCode)
		assert.False(t, flow.Valid())
		assert.Equal(t, 0, backend.validateCalls, "whitespace code %q must be rejected locally", code)
	}
}

func TestApplyValidCode(t *testing.T) {
	backend := &stubBackend{valid: true}
	flow := NewFlow(backend, quietLogger())

	require.NoError(t, flow.Apply(context.Background(), "DISCOUNT10-5"))
	assert.True(t, flow.Valid())
	assert.Equal(t, "DISCOUNT10-5", flow.Code())
}

func TestApplyRejectedCodeClearsValidity(t *testing.T) {
	backend := &stubBackend{valid: true}
	flow := NewFlow(backend, quietLogger())
	require.NoError(t, flow.Apply(context.Background(), "GOOD"))
	require.True(t, flow.Valid())

	backend.valid = false
	err := flow.Apply(context.Background(), "FAKE")

	assert.ErrorIs(t, err, ErrCodeRejected)
	assert.False(t, flow.Valid())
}

func TestApplyNetworkErrorClearsValidity(t *testing.T) {
	backend := &stubBackend{valid: true}
	flow := NewFlow(backend, quietLogger())
	require.NoError(t, flow.Apply(context.Background(), "GOOD"))

	backend.validateErr = errors.New("connection refused")
	err := flow.Apply(context.Background(), "GOOD")

	require.Error(t, err)
	assert.False(t, flow.Valid())
}

func TestEditResetsValidity(t *testing.T) {
	backend := &stubBackend{valid: true}
	flow := NewFlow(backend, quietLogger())
	require.NoError(t, flow.Apply(context.Background(), "DISCOUNT10-5"))
	require.True(t, flow.Valid())

	// A validated code becomes unvalidated the moment its text changes.
	flow.Edit("DISCOUNT10-6")

	assert.False(t, flow.Valid())
	assert.Equal(t, "DISCOUNT10-6", flow.Code())
}

func TestCheckEligibilityGrantedAdoptsCode(t *testing.T) {
	backend := &stubBackend{grantedCode: "DISCOUNT10-5"}
	flow := NewFlow(backend, quietLogger())

	code, granted, err := flow.CheckEligibility(context.Background())
	require.NoError(t, err)
	assert.True(t, granted)
	assert.Equal(t, "DISCOUNT10-5", code)

	// The server guarantees validity at issuance; no validation round-trip.
	assert.True(t, flow.Valid())
	assert.Equal(t, 0, backend.validateCalls)
}

func TestCheckEligibilityNotGrantedLeavesStateUnchanged(t *testing.T) {
	backend := &stubBackend{valid: true}
	flow := NewFlow(backend, quietLogger())
	require.NoError(t, flow.Apply(context.Background(), "KEEP"))

	_, granted, err := flow.CheckEligibility(context.Background())

	require.NoError(t, err)
	assert.False(t, granted)
	assert.Equal(t, "KEEP", flow.Code())
	assert.True(t, flow.Valid())
}

func TestAmount(t *testing.T) {
	backend := &stubBackend{valid: true}
	flow := NewFlow(backend, quietLogger())

	assert.Zero(t, flow.Amount(70.00), "no discount without a validated code")

	require.NoError(t, flow.Apply(context.Background(), "DISCOUNT10-5"))
	assert.InDelta(t, 7.00, flow.Amount(70.00), 1e-9)

	flow.Edit("DISCOUNT10-5x")
	assert.Zero(t, flow.Amount(70.00), "editing the code drops the displayed discount")
}
