package domain

import (
	"errors"
	"fmt"
	"sort"
)

// Error kinds. Every error returned by the raffle engine wraps exactly one of
// these; anything else is an internal failure.
var (
	ErrNotFound        = errors.New("not found")
	ErrInvalidArgument = errors.New("invalid argument")
	ErrInvalidState    = errors.New("invalid state")
	ErrConflict        = errors.New("conflict")
	ErrForbidden       = errors.New("forbidden")
)

// Error is a kind plus a human readable message.
type Error struct {
	Kind    error
	Message string
}

func NewError(kind error, message string) *Error {
	return &Error{Kind: kind, Message: message}
}

func (e *Error) Error() string {
	return e.Message
}

func (e *Error) Unwrap() error {
	return e.Kind
}

var (
	ErrRaffleNotFound        = NewError(ErrNotFound, "raffle not found")
	ErrParticipantNotFound   = NewError(ErrNotFound, "participant not found")
	ErrWinningTicketNotFound = NewError(ErrNotFound, "winning ticket not found")

	ErrDuplicateNumbers     = NewError(ErrInvalidArgument, "duplicate numbers are not allowed")
	ErrNumberOutOfRange     = NewError(ErrInvalidArgument, "number out of range")
	ErrInvalidRaffleStatus  = NewError(ErrInvalidArgument, "invalid raffle status")
	ErrNoFieldsToUpdate     = NewError(ErrInvalidArgument, "no fields to update")
	ErrInvalidOffset        = NewError(ErrInvalidArgument, "offset must be >= 0")
	ErrInvalidLimit         = NewError(ErrInvalidArgument, "limit must be >= 1")
	ErrParticipantRequired  = NewError(ErrInvalidArgument, "participant is required")
	ErrParticipantAmbiguous = NewError(ErrInvalidArgument, "provide either participant_id or participant, not both")
	ErrNoNumbers            = NewError(ErrInvalidArgument, "at least one number is required")

	ErrRaffleNotOpen        = NewError(ErrInvalidState, "raffle is not open for reservations")
	ErrRaffleNotPurchasable = NewError(ErrInvalidState, "raffle is not open for purchases")
	ErrRaffleNotDrawable    = NewError(ErrInvalidState, "raffle cannot be drawn in its current status")
	ErrReservationInvalid   = NewError(ErrInvalidState, "reservation expired or not found")
	ErrNoTicketsSold        = NewError(ErrInvalidState, "no tickets sold")

	ErrNotRaffleOwner = NewError(ErrForbidden, "not allowed to modify this raffle")
)

// ConflictError reports the requested numbers that are no longer available.
type ConflictError struct {
	Numbers []int
}

func NewConflictError(numbers []int) *ConflictError {
	sorted := append([]int(nil), numbers...)
	sort.Ints(sorted)

	return &ConflictError{Numbers: sorted}
}

func (e *ConflictError) Error() string {
	return fmt.Sprintf("some numbers are no longer available: %v", e.Numbers)
}

func (e *ConflictError) Unwrap() error {
	return ErrConflict
}
