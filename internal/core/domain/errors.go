package domain

import "errors"

// Error kinds. Every domain error unwraps to exactly one of them; anything
// that does not is an infrastructure failure.
var (
	ErrNotFound     = errors.New("not found")
	ErrInvalidState = errors.New("invalid state")
	ErrValidation   = errors.New("validation failed")
)

var (
	ErrTaskNotFound  = kindError(ErrNotFound, "task not found")
	ErrTasksNotFound = kindError(ErrNotFound, "not all tasks were found")
	ErrUserNotFound  = kindError(ErrNotFound, "user not found")

	ErrTaskNotAssignable     = kindError(ErrInvalidState, "cannot assign tasks: some tasks are not TO_DO")
	ErrTaskNotAssignedToUser = kindError(ErrInvalidState, "task is not assigned to user")
	ErrTaskAlreadyCompleted  = kindError(ErrInvalidState, "task already completed")

	ErrInvalidFilter = kindError(ErrValidation, "invalid filter")
)

type Kind int

const (
	KindInfrastructure Kind = iota
	KindNotFound
	KindInvalidState
	KindValidation
)

func (k Kind) String() string {
	switch k {
	case KindNotFound:
		return "NOT_FOUND"
	case KindInvalidState:
		return "INVALID_STATE"
	case KindValidation:
		return "VALIDATION"
	default:
		return "INFRASTRUCTURE"
	}
}

// KindOf classifies err.
func KindOf(err error) Kind {
	switch {
	case errors.Is(err, ErrNotFound):
		return KindNotFound
	case errors.Is(err, ErrInvalidState):
		return KindInvalidState
	case errors.Is(err, ErrValidation):
		return KindValidation
	default:
		return KindInfrastructure
	}
}

type domainError struct {
	kind error
	msg  string
}

func kindError(kind error, msg string) error {
	return &domainError{kind: kind, msg: msg}
}

func (e *domainError) Error() string { return e.msg }

func (e *domainError) Unwrap() error { return e.kind }
