package ledger_test

import (
	"testing"
	"time"

	"github.com/cashvault/cashvault_backend/internal/apperrors"
	"github.com/cashvault/cashvault_backend/internal/core/domain"
	"github.com/cashvault/cashvault_backend/internal/core/ledger"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func txnWith(kind domain.TransactionKind, mode domain.TransactionMode, bills domain.BillCountMap) domain.Transaction {
	return domain.Transaction{
		TransactionID: "txn-1",
		SafeID:        "safe-1",
		Kind:          kind,
		Mode:          mode,
		Bills:         bills,
		AuditFields:   domain.AuditFields{CreatedAt: time.Date(2024, 3, 1, 10, 0, 0, 0, time.UTC)},
	}
}

func TestApply_InventoryReplacesState(t *testing.T) {
	state := domain.BillCountMap{10: 3, 50: 1}
	next := ledger.Apply(state, txnWith(domain.KindInventory, domain.ModeAdd, domain.BillCountMap{20: 5, 50: 2}))

	assert.Equal(t, domain.BillCountMap{20: 5, 50: 2}, next)
	assert.Equal(t, domain.BillCountMap{10: 3, 50: 1}, state, "input state must not be mutated")
}

func TestApply_ReplaceModeReplacesState(t *testing.T) {
	state := domain.BillCountMap{10: 3}
	next := ledger.Apply(state, txnWith(domain.KindMovement, domain.ModeReplace, domain.BillCountMap{100: 1, 5: 0}))

	assert.Equal(t, domain.BillCountMap{100: 1}, next, "zero entries in a replacement payload are dropped")
}

func TestApply_AddAccumulates(t *testing.T) {
	state := ledger.Apply(domain.BillCountMap{}, txnWith(domain.KindMovement, domain.ModeAdd, domain.BillCountMap{10: 3}))
	state = ledger.Apply(state, txnWith(domain.KindMovement, domain.ModeAdd, domain.BillCountMap{10: 2}))

	assert.Equal(t, domain.BillCountMap{10: 5}, state)
}

func TestApply_RemoveDeletesKeyAtZero(t *testing.T) {
	state := ledger.Apply(domain.BillCountMap{10: 5}, txnWith(domain.KindMovement, domain.ModeRemove, domain.BillCountMap{10: 5}))

	assert.Equal(t, domain.BillCountMap{}, state)
	_, present := state[10]
	assert.False(t, present, "a count that reaches zero is removed, not stored as an explicit zero")
}

func TestApply_RemoveClampsBelowZero(t *testing.T) {
	state := ledger.Apply(domain.BillCountMap{10: 3}, txnWith(domain.KindMovement, domain.ModeRemove, domain.BillCountMap{10: 5}))

	assert.Equal(t, domain.BillCountMap{}, state, "replay-side REMOVE clamps silently")
}

func TestApplyStrict_RejectsOverRemoval(t *testing.T) {
	state := domain.BillCountMap{10: 3}
	next, err := ledger.ApplyStrict(state, txnWith(domain.KindMovement, domain.ModeRemove, domain.BillCountMap{10: 5}))

	require.Error(t, err)
	assert.ErrorIs(t, err, apperrors.ErrInsufficientQuantity)
	assert.Nil(t, next)
	assert.Equal(t, domain.BillCountMap{10: 3}, state, "no partial mutation on rejection")
}

func TestApplyStrict_RejectsBeforeAnyDenominationIsTouched(t *testing.T) {
	// 20s are plentiful but 50s are short: the whole removal must abort.
	state := domain.BillCountMap{20: 10, 50: 1}
	_, err := ledger.ApplyStrict(state, txnWith(domain.KindMovement, domain.ModeRemove, domain.BillCountMap{20: 2, 50: 3}))

	require.ErrorIs(t, err, apperrors.ErrInsufficientQuantity)
}

func TestApplyStrict_AllowsExactRemoval(t *testing.T) {
	next, err := ledger.ApplyStrict(domain.BillCountMap{10: 5}, txnWith(domain.KindMovement, domain.ModeRemove, domain.BillCountMap{10: 5}))

	require.NoError(t, err)
	assert.Equal(t, domain.BillCountMap{}, next)
}

func TestApplyStrict_InventoryIgnoresCurrentState(t *testing.T) {
	// A stock count is a full replacement; the current state is irrelevant.
	next, err := ledger.ApplyStrict(domain.BillCountMap{10: 1}, txnWith(domain.KindInventory, domain.ModeRemove, domain.BillCountMap{10: 9}))

	require.NoError(t, err)
	assert.Equal(t, domain.BillCountMap{10: 9}, next)
}
