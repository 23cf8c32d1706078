package domain

import (
	"errors"
	"fmt"
	"time"
)

var (
	// Range errors
	ErrInvalidRange = errors.New("period start must not be after period end")

	// Ledger errors
	ErrSourceUnavailable = errors.New("ledger source unavailable")
	ErrNegativeAmount    = errors.New("movement amount must not be negative")
	ErrUnknownLedgerKind = errors.New("unknown ledger kind")
)

// SourceError wraps a ledger store failure with the kind and range that were
// being fetched, so the caller has enough context to log and retry. It
// matches ErrSourceUnavailable under errors.Is.
type SourceError struct {
	Kind  SourceKind
	Start time.Time
	End   time.Time
	Err   error
}

func (e *SourceError) Error() string {
	return fmt.Sprintf("%s ledger unavailable for %s..%s: %v",
		e.Kind, e.Start.Format(time.DateOnly), e.End.Format(time.DateOnly), e.Err)
}

func (e *SourceError) Unwrap() error { return e.Err }

func (e *SourceError) Is(target error) bool { return target == ErrSourceUnavailable }
