package usecase

import (
	"errors"
	"fmt"
)

// Error kinds. Handlers branch on these with errors.Is to pick the
// HTTP status, so services must never rewrite one kind into another.
var (
	ErrNotFound     = errors.New("not found")
	ErrInvalidRange = errors.New("invalid range")
	ErrConflict     = errors.New("conflict")
)

// Error pairs a stable caller-facing message with one of the kinds above.
type Error struct {
	kind    error
	message string
}

func (e *Error) Error() string { return e.message }

func (e *Error) Unwrap() error { return e.kind }

// Admission rule rejections carry fixed message strings that callers
// match on exactly.
var (
	ErrStartNotBeforeEnd = &Error{kind: ErrInvalidRange, message: "Start time must be before end time"}
	ErrShowtimeOverlap   = &Error{kind: ErrConflict, message: "Showtime overlaps with existing showtime"}
	ErrSeatTaken         = &Error{kind: ErrConflict, message: "Seat is already booked for this showtime"}
)

func notFoundf(format string, args ...any) *Error {
	return &Error{kind: ErrNotFound, message: fmt.Sprintf(format, args...)}
}

func conflictf(format string, args ...any) *Error {
	return &Error{kind: ErrConflict, message: fmt.Sprintf(format, args...)}
}
