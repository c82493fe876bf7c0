package ledger

import (
	"sort"

	"github.com/cashvault/cashvault_backend/internal/core/domain"
)

// Replay folds the given transactions, in creation order, from the empty
// bill map to the safe's current composition.
//
// The engine sorts its own input (stable, ascending by CreatedAt) rather
// than trusting the storage layer's ordering; ties keep their stored
// insertion order. Replay is pure and deterministic: calling it twice with
// the same input yields identical maps, and its result must equal the
// safe's materialized Inventory whenever it is fed the full history.
//
// Replay never errors. Payloads are trusted to have passed validation at
// transaction-creation time; anything else is carried through mechanically.
func Replay(transactions []domain.Transaction) domain.BillCountMap {
	state, _ := replay(transactions, nil)
	return state
}

// ReplayWithHistory runs the same fold as Replay and additionally records,
// after every transaction, the then-current count of each fixed
// denomination (zeroes included) under the transaction's UTC calendar day.
// Later transactions on the same day overwrite earlier snapshots, so each
// day bucket holds the state right after that day's last transaction.
//
// The returned history contains a day map for every fixed denomination,
// even when the denomination never appears in the stream.
func ReplayWithHistory(transactions []domain.Transaction) (domain.BillCountMap, domain.BillHistory) {
	history := domain.NewBillHistory()
	state, _ := replay(transactions, func(txn domain.Transaction, state domain.BillCountMap) {
		day := domain.DayKey(txn.CreatedAt)
		for _, d := range domain.Denominations {
			history[d][day] = state[d]
		}
	})
	return state, history
}

// replay is the shared fold. observe, when non-nil, is called with the
// state after each applied transaction.
func replay(transactions []domain.Transaction, observe func(domain.Transaction, domain.BillCountMap)) (domain.BillCountMap, int) {
	ordered := make([]domain.Transaction, len(transactions))
	copy(ordered, transactions)
	sort.SliceStable(ordered, func(i, j int) bool {
		return ordered[i].CreatedAt.Before(ordered[j].CreatedAt)
	})

	state := domain.BillCountMap{}
	for _, txn := range ordered {
		state = Apply(state, txn)
		if observe != nil {
			observe(txn, state)
		}
	}
	return state, len(ordered)
}

// PartitionBySafe splits an interleaved multi-safe stream into per-safe
// streams, preserving relative order. Replaying safes independently is
// mandatory: a REPLACE in one safe must never affect another safe's state.
func PartitionBySafe(transactions []domain.Transaction) map[string][]domain.Transaction {
	partitions := make(map[string][]domain.Transaction)
	for _, txn := range transactions {
		partitions[txn.SafeID] = append(partitions[txn.SafeID], txn)
	}
	return partitions
}
