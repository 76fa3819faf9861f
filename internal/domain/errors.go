package domain

import (
	"errors"
	"fmt"
	"strconv"
	"strings"
)

var (
	ErrNotFound       = errors.New("not found")
	ErrValidation     = errors.New("validation failed")
	ErrUnauthorized   = errors.New("unauthorized")
	ErrForbidden      = errors.New("forbidden")
	ErrConflict       = errors.New("conflict")
	ErrDuplicate      = errors.New("duplicate record")
	ErrSyncInProgress = errors.New("sync already running for connection")
	ErrUpstream       = errors.New("marketplace request failed")
)

// LocationInUseError is returned when locations cannot be removed because
// orders still reference them.
type LocationInUseError struct {
	IDs []uint
}

func (e *LocationInUseError) Error() string {
	ids := make([]string, len(e.IDs))
	for i, id := range e.IDs {
		ids[i] = strconv.FormatUint(uint64(id), 10)
	}
	return fmt.Sprintf("cannot delete locations referenced by orders: %s", strings.Join(ids, ", "))
}

func (e *LocationInUseError) Unwrap() error {
	return ErrConflict
}

// Validationf wraps ErrValidation with a formatted message.
func Validationf(format string, args ...any) error {
	return fmt.Errorf("%w: %s", ErrValidation, fmt.Sprintf(format, args...))
}
