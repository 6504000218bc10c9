package dao

import (
	"errors"
	"fmt"
	"strings"

	"github.com/jackc/pgerrcode"
	"github.com/jackc/pgx/v5/pgconn"

	"github.com/rifaapp/rifa-api/internal/domain"
)

var (
	ErrUserEmailExists = errors.New("user already exists")
	ErrUserNotFound    = errors.New("user not found")

	// ErrTransactionAborted wraps deadlock, serialization and lock timeout failures.
	// The whole transaction was rolled back and may be retried by the caller.
	ErrTransactionAborted = errors.New("transaction aborted")

	ErrRaffleNotFound        = domain.ErrRaffleNotFound
	ErrRaffleNotOpen         = domain.ErrRaffleNotOpen
	ErrRaffleNotPurchasable  = domain.ErrRaffleNotPurchasable
	ErrRaffleNotDrawable     = domain.ErrRaffleNotDrawable
	ErrNotRaffleOwner        = domain.ErrNotRaffleOwner
	ErrNumberOutOfRange      = domain.ErrNumberOutOfRange
	ErrReservationInvalid    = domain.ErrReservationInvalid
	ErrNoTicketsSold         = domain.ErrNoTicketsSold
	ErrWinningTicketNotFound = domain.ErrWinningTicketNotFound
)

func isUniqueViolation(err error, constraint string) bool {
	var pgErr *pgconn.PgError
	return errors.As(err, &pgErr) &&
		pgErr.Code == pgerrcode.UniqueViolation &&
		strings.Contains(pgErr.Message, constraint)
}

// classify marks transient concurrency failures so callers can tell them apart
// from programming or connectivity errors.
func classify(err error) error {
	var pgErr *pgconn.PgError
	if !errors.As(err, &pgErr) {
		return err
	}

	switch pgErr.Code {
	case pgerrcode.DeadlockDetected, pgerrcode.SerializationFailure, pgerrcode.LockNotAvailable:
		return fmt.Errorf("%w: %s", ErrTransactionAborted, pgErr.Message)
	}

	return err
}
