package services

import (
	"errors"
	"fmt"

	"github.com/snackreel/backend/internal/repositories"
)

// Failure taxonomy surfaced by the services. Handlers map these onto
// HTTP status codes; none of them leaves any state change behind.
var (
	// ErrNotFound aliases the repository sentinel so callers only need
	// one errors.Is target for a missing subject, comment or order.
	ErrNotFound = repositories.ErrNotFound

	ErrForbidden    = errors.New("actor is not the owner")
	ErrEmptyComment = errors.New("comment text must not be empty")
	ErrNotOrderable = errors.New("food item is not available for ordering")
)

// TerminalStatusError reports a rejected transition on an order that has
// already reached a terminal status. CurrentStatus carries the order's
// unchanged status for the response body.
type TerminalStatusError struct {
	CurrentStatus string
}

func (e *TerminalStatusError) Error() string {
	return fmt.Sprintf("cannot change status of %s orders", e.CurrentStatus)
}
