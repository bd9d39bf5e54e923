package model

import (
	"errors"
	"fmt"
	"net/http"
	"strconv"
	"strings"

	validation "github.com/go-ozzo/ozzo-validation/v4"
	"github.com/go-ozzo/ozzo-validation/v4/is"
)

// ============================================================
// SENTINEL ERRORS
// ============================================================
// Match with errors.Is. The concrete *Error values below carry the
// human-readable sentence that is sent back to the client as-is.
var (
	ErrValidation       = errors.New("validation error")
	ErrCategoryNotFound = errors.New("category not found")
	ErrBookNotFound     = errors.New("book not found")
	ErrInvalidArgument  = errors.New("invalid argument")
)

// Error is a catalog error with a client-facing message.
type Error struct {
	Kind    error
	Message string
}

func (e *Error) Error() string {
	return e.Message
}

func (e *Error) Unwrap() error {
	return e.Kind
}

func NewValidationError(format string, args ...any) error {
	return &Error{Kind: ErrValidation, Message: fmt.Sprintf(format, args...)}
}

func NewCategoryNotFound(name string) error {
	return &Error{Kind: ErrCategoryNotFound, Message: fmt.Sprintf("Unknown book category %s", name)}
}

func NewBookNotFound(id any) error {
	return &Error{Kind: ErrBookNotFound, Message: fmt.Sprintf("Book with id %v not found.", id)}
}

func NewInvalidArgument(format string, args ...any) error {
	return &Error{Kind: ErrInvalidArgument, Message: fmt.Sprintf(format, args...)}
}

// IsNotFound reports whether err is an unknown category or book.
func IsNotFound(err error) bool {
	return errors.Is(err, ErrCategoryNotFound) || errors.Is(err, ErrBookNotFound)
}

// ============================================================
// ID PARSING
// ============================================================

// ParseBookID turns an external identifier (path segment) into a book id.
func ParseBookID(raw string) (int64, error) {
	raw = strings.TrimSpace(raw)
	if err := validation.Validate(raw, validation.Required, is.Int); err != nil {
		return 0, NewInvalidArgument("Given id must be an integer, but is %q.", raw)
	}

	id, err := strconv.ParseInt(raw, 10, 64)
	if err != nil {
		return 0, NewInvalidArgument("Given id must be an integer, but is %q.", raw)
	}
	return id, nil
}

// ============================================================
// HTTP STATUS MAPPING
// ============================================================

// HTTPStatus maps a catalog error to the status code the API answers with.
// Malformed ids are reported as a client error: gin routes any path
// segment to :id, so a non-numeric id is the caller's mistake.
func HTTPStatus(err error) int {
	switch {
	case err == nil:
		return http.StatusOK
	case errors.Is(err, ErrValidation):
		return http.StatusBadRequest
	case errors.Is(err, ErrInvalidArgument):
		return http.StatusBadRequest
	case IsNotFound(err):
		return http.StatusNotFound
	default:
		return http.StatusInternalServerError
	}
}

// Message returns the text that may be shown to the client for err.
// Unknown errors never leak their internals.
func Message(err error) string {
	var catalogErr *Error
	if errors.As(err, &catalogErr) {
		return catalogErr.Message
	}
	return "Internal server error"
}
