package services

import (
	"fmt"
	"strings"

	"github.com/pkg/errors"
)

// Typed failures the handlers translate into HTTP status codes
var (
	// ErrNotFound signals the referenced entity does not exist or is
	// already soft-deleted
	ErrNotFound = errors.New("record not found")

	// ErrInvalidClientCode signals a client short name that cannot be
	// used as a display-ID namespace
	ErrInvalidClientCode = errors.New("client short name must be 3-4 uppercase letters")

	// ErrDuplicateIdentifier signals that display-ID generation collided
	// even after the recovery retry. This points at an infrastructure
	// problem, not caller input; the whole request can be retried.
	ErrDuplicateIdentifier = errors.New("display ID collided after retry")

	// ErrShortNameLocked signals an attempt to rename a client's short
	// name after display IDs were issued under it
	ErrShortNameLocked = errors.New("client short name cannot be changed after display IDs were issued")

	// ErrValidation is the root of every business-rule rejection caused
	// by caller input: cross-client links, duplicate names, deletes
	// blocked by dependents. Handlers answer these with 400.
	ErrValidation = errors.New("invalid request")
)

// validationErrorf builds a caller-input rejection that satisfies
// IsValidation
func validationErrorf(format string, args ...interface{}) error {
	return errors.Wrapf(ErrValidation, format, args...)
}

// ConflictError rejects a soft-delete blocked by active dependents. It
// carries every blocking ticket display ID so the frontend can show an
// actionable message.
type ConflictError struct {
	Resource  string   // human-readable identifier of the entity that cannot be deleted
	BlockedBy []string // display IDs of the non-deleted tickets blocking it
}

func (e *ConflictError) Error() string {
	return fmt.Sprintf("cannot delete %s: linked to tickets %s", e.Resource, strings.Join(e.BlockedBy, ", "))
}

// AsConflict unwraps err into a ConflictError if it is one
func AsConflict(err error) (*ConflictError, bool) {
	var conflict *ConflictError
	if errors.As(err, &conflict) {
		return conflict, true
	}
	return nil, false
}

// IsNotFound reports whether err wraps ErrNotFound
func IsNotFound(err error) bool {
	return errors.Is(err, ErrNotFound)
}

// IsValidation reports whether err is caller input the handlers should
// answer with 400
func IsValidation(err error) bool {
	return errors.Is(err, ErrValidation) || errors.Is(err, ErrInvalidClientCode) || errors.Is(err, ErrShortNameLocked)
}
