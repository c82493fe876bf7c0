// Package ledger implements the inventory replay engine: the pure
// state-machine that folds a safe's append-only transaction stream into its
// current bill composition and its day-by-day history.
package ledger

import (
	"fmt"

	"github.com/cashvault/cashvault_backend/internal/apperrors"
	"github.com/cashvault/cashvault_backend/internal/core/domain"
)

// Apply returns the bill state after applying one transaction to the given
// state. The input state is not mutated.
//
// The mutation rule is keyed on (kind, mode):
//   - INVENTORY kind or REPLACE mode replaces the whole state with the payload.
//   - ADD increments each denomination present in the payload.
//   - REMOVE decrements each denomination present in the payload, deleting
//     the key when the count reaches zero or below.
//
// REMOVE clamps silently: historical reconstruction must tolerate streams
// that were legitimately recorded under older rules, so over-removal here
// never errors. Live writes go through ApplyStrict instead.
func Apply(state domain.BillCountMap, txn domain.Transaction) domain.BillCountMap {
	if txn.Kind == domain.KindInventory || txn.Mode == domain.ModeReplace {
		return txn.Bills.Normalized()
	}

	next := state.Clone()
	switch txn.Mode {
	case domain.ModeAdd:
		for d, q := range txn.Bills {
			next[d] += q
		}
	case domain.ModeRemove:
		for d, q := range txn.Bills {
			next[d] -= q
			if next[d] <= 0 {
				delete(next, d)
			}
		}
	}
	return next
}

// ApplyStrict is the write-path variant of Apply: identical (kind, mode)
// semantics, except that a REMOVE of more bills than currently present for
// any denomination fails with ErrInsufficientQuantity before any mutation.
func ApplyStrict(state domain.BillCountMap, txn domain.Transaction) (domain.BillCountMap, error) {
	if txn.Mode == domain.ModeRemove && txn.Kind != domain.KindInventory {
		for d, q := range txn.Bills {
			if state[d] < q {
				return nil, fmt.Errorf("%w: %d x %s requested, %d present",
					apperrors.ErrInsufficientQuantity, q, d, state[d])
			}
		}
	}
	return Apply(state, txn), nil
}
