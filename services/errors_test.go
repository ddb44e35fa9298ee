package services

import (
	"testing"

	"github.com/pkg/errors"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestConflictErrorMessage(t *testing.T) {
	err := &ConflictError{
		Resource:  "vulnerability V-TSV-003",
		BlockedBy: []string{"T-TSV-001", "T-TSV-007"},
	}
	assert.Equal(t, "cannot delete vulnerability V-TSV-003: linked to tickets T-TSV-001, T-TSV-007", err.Error())
}

func TestAsConflict(t *testing.T) {
	conflict := &ConflictError{Resource: "asset", BlockedBy: []string{"T-TSV-001"}}

	got, ok := AsConflict(conflict)
	require.True(t, ok)
	assert.Equal(t, []string{"T-TSV-001"}, got.BlockedBy)

	// Wrapped conflicts still unwrap
	wrapped := errors.Wrap(error(conflict), "delete failed")
	got, ok = AsConflict(wrapped)
	require.True(t, ok)
	assert.Equal(t, "asset", got.Resource)

	_, ok = AsConflict(errors.New("something else"))
	assert.False(t, ok)
}

func TestErrorClassification(t *testing.T) {
	assert.True(t, IsNotFound(errors.Wrap(ErrNotFound, "client")))
	assert.False(t, IsNotFound(ErrInvalidClientCode))

	assert.True(t, IsValidation(errors.Wrapf(ErrInvalidClientCode, "%q", "ts")))
	assert.True(t, IsValidation(errors.Wrap(ErrShortNameLocked, "client")))
	assert.False(t, IsValidation(ErrNotFound))
	assert.False(t, IsValidation(ErrDuplicateIdentifier))
}

func TestBusinessRuleRejectionsAreValidationErrors(t *testing.T) {
	rejections := []error{
		validationErrorf("all vulnerabilities must belong to the same client as the ticket"),
		validationErrorf("client with short name %q already exists", "TSV"),
		validationErrorf("client has %d active tickets, vulnerabilities or assets", 2),
		validationErrorf("asset type is used by %d assets", 3),
		validationErrorf("worker accounts must not reference a client"),
	}
	for _, err := range rejections {
		assert.True(t, IsValidation(err), err.Error())
		assert.False(t, IsNotFound(err), err.Error())
	}
}
