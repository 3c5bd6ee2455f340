package apperrors

import (
	"errors"
	"fmt"

	"github.com/shopspring/decimal"
)

// ErrNotFound indicates that a requested resource could not be found.
var ErrNotFound = errors.New("resource not found")

// ErrValidation indicates that input data failed validation checks.
var ErrValidation = errors.New("validation error")

// ErrDuplicate indicates that an attempt was made to create a resource that already exists.
var ErrDuplicate = errors.New("resource already exists")

// ErrInternal indicates an unexpected internal failure.
var ErrInternal = errors.New("internal error")

// ErrAccountNotFound indicates that a referenced account code does not exist
// for the tenant. Posting must never proceed against a placeholder account.
var ErrAccountNotFound = errors.New("account not found")

// ErrImbalancedEntry indicates that an entry's debit and credit totals differ
// beyond the accepted tolerance. Use ImbalancedEntryError to carry the totals.
var ErrImbalancedEntry = errors.New("journal entry is not balanced")

// ErrMissingAccountConfig indicates that a posting adapter could not resolve a
// required account role for the tenant. Surfaced to administrators as a
// configuration error; the posting is never silently skipped.
var ErrMissingAccountConfig = errors.New("missing account configuration")

// ErrDuplicateSourcePosting indicates that a journal entry already exists for
// the given (sourceType, sourceID) pair. Callers treat this as
// success-by-idempotence and use the existing entry.
var ErrDuplicateSourcePosting = errors.New("source event already posted")

// ErrCyclicHierarchy indicates that a parent assignment would create a cycle
// in the chart-of-accounts hierarchy.
var ErrCyclicHierarchy = errors.New("cyclic account hierarchy")

// ImbalancedEntryError carries both totals of a rejected entry so the caller
// can report exactly how far off the line set was.
type ImbalancedEntryError struct {
	Debit  decimal.Decimal
	Credit decimal.Decimal
}

func (e *ImbalancedEntryError) Error() string {
	return fmt.Sprintf("journal entry is not balanced: debits %s, credits %s", e.Debit.StringFixed(2), e.Credit.StringFixed(2))
}

func (e *ImbalancedEntryError) Unwrap() error { return ErrImbalancedEntry }

// NewImbalancedEntryError builds an ImbalancedEntryError from the two totals.
func NewImbalancedEntryError(debit, credit decimal.Decimal) error {
	return &ImbalancedEntryError{Debit: debit, Credit: credit}
}

// MissingAccountConfigError names the role that could not be resolved.
type MissingAccountConfigError struct {
	Role string
}

func (e *MissingAccountConfigError) Error() string {
	return fmt.Sprintf("missing account configuration for role %q", e.Role)
}

func (e *MissingAccountConfigError) Unwrap() error { return ErrMissingAccountConfig }

// NewMissingAccountConfigError builds a MissingAccountConfigError for a role.
func NewMissingAccountConfigError(role string) error {
	return &MissingAccountConfigError{Role: role}
}

// AppError wraps a lower-level error with an HTTP-ish status code and a
// message suitable for logs. Repositories return AppError for infrastructure
// failures; domain conditions use the sentinel errors above.
type AppError struct {
	Code    int
	Message string
	Err     error
}

func (e *AppError) Error() string {
	if e.Err != nil {
		return fmt.Sprintf("%s: %v", e.Message, e.Err)
	}
	return e.Message
}

func (e *AppError) Unwrap() error { return e.Err }

// NewAppError creates a new AppError.
func NewAppError(code int, message string, err error) *AppError {
	return &AppError{Code: code, Message: message, Err: err}
}

// NewNotFoundError creates an AppError that unwraps to ErrNotFound.
func NewNotFoundError(message string) *AppError {
	return &AppError{Code: 404, Message: message, Err: ErrNotFound}
}
