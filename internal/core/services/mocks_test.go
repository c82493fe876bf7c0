package services_test

import (
	"context"
	"time"

	"github.com/stretchr/testify/mock"

	"github.com/cashvault/cashvault_backend/internal/core/domain"
)

// --- Mock UserRepository ---

type MockUserRepository struct {
	mock.Mock
}

func (m *MockUserRepository) FindUserByID(ctx context.Context, userID string) (*domain.User, error) {
	args := m.Called(ctx, userID)
	var user *domain.User
	if args.Get(0) != nil {
		user = args.Get(0).(*domain.User)
	}
	return user, args.Error(1)
}

func (m *MockUserRepository) FindUserByEmail(ctx context.Context, email string) (*domain.User, error) {
	args := m.Called(ctx, email)
	var user *domain.User
	if args.Get(0) != nil {
		user = args.Get(0).(*domain.User)
	}
	return user, args.Error(1)
}

func (m *MockUserRepository) ListUsers(ctx context.Context, limit int, offset int) ([]domain.User, error) {
	args := m.Called(ctx, limit, offset)
	var users []domain.User
	if args.Get(0) != nil {
		users = args.Get(0).([]domain.User)
	}
	return users, args.Error(1)
}

func (m *MockUserRepository) CountUsers(ctx context.Context) (int64, error) {
	args := m.Called(ctx)
	return args.Get(0).(int64), args.Error(1)
}

func (m *MockUserRepository) SaveUser(ctx context.Context, user domain.User) error {
	args := m.Called(ctx, user)
	return args.Error(0)
}

func (m *MockUserRepository) UpdateUserRole(ctx context.Context, userID string, role domain.UserRole, updatedBy string, at time.Time) error {
	args := m.Called(ctx, userID, role, updatedBy, at)
	return args.Error(0)
}

func (m *MockUserRepository) UpdateUserPassword(ctx context.Context, userID string, passwordHash string, updatedBy string, at time.Time) error {
	args := m.Called(ctx, userID, passwordHash, updatedBy, at)
	return args.Error(0)
}

func (m *MockUserRepository) MarkUserDeleted(ctx context.Context, userID string, deletedBy string, at time.Time) error {
	args := m.Called(ctx, userID, deletedBy, at)
	return args.Error(0)
}

// --- Mock SafeRepository ---

type MockSafeRepository struct {
	mock.Mock
}

func (m *MockSafeRepository) FindSafeByID(ctx context.Context, safeID string) (*domain.Safe, error) {
	args := m.Called(ctx, safeID)
	var safe *domain.Safe
	if args.Get(0) != nil {
		safe = args.Get(0).(*domain.Safe)
	}
	return safe, args.Error(1)
}

func (m *MockSafeRepository) ListSafesByIDs(ctx context.Context, safeIDs []string) ([]domain.SafeSummary, error) {
	args := m.Called(ctx, safeIDs)
	var summaries []domain.SafeSummary
	if args.Get(0) != nil {
		summaries = args.Get(0).([]domain.SafeSummary)
	}
	return summaries, args.Error(1)
}

func (m *MockSafeRepository) ListAllSafeIDs(ctx context.Context) ([]string, error) {
	args := m.Called(ctx)
	var ids []string
	if args.Get(0) != nil {
		ids = args.Get(0).([]string)
	}
	return ids, args.Error(1)
}

func (m *MockSafeRepository) FindInventoryBySafeID(ctx context.Context, safeID string) (*domain.Inventory, error) {
	args := m.Called(ctx, safeID)
	var inv *domain.Inventory
	if args.Get(0) != nil {
		inv = args.Get(0).(*domain.Inventory)
	}
	return inv, args.Error(1)
}

func (m *MockSafeRepository) SaveSafeWithInventory(ctx context.Context, safe domain.Safe, inventory domain.Inventory) error {
	args := m.Called(ctx, safe, inventory)
	return args.Error(0)
}

// --- Mock TransactionRepository ---

type MockTransactionRepository struct {
	mock.Mock
}

func (m *MockTransactionRepository) FindTransactionsBySafeIDs(ctx context.Context, safeIDs []string) ([]domain.Transaction, error) {
	args := m.Called(ctx, safeIDs)
	var txns []domain.Transaction
	if args.Get(0) != nil {
		txns = args.Get(0).([]domain.Transaction)
	}
	return txns, args.Error(1)
}

func (m *MockTransactionRepository) ListTransactionsBySafe(ctx context.Context, safeID string, limit int, nextToken *string) ([]domain.Transaction, *string, error) {
	args := m.Called(ctx, safeID, limit, nextToken)
	var txns []domain.Transaction
	if args.Get(0) != nil {
		txns = args.Get(0).([]domain.Transaction)
	}
	var token *string
	if args.Get(1) != nil {
		token = args.Get(1).(*string)
	}
	return txns, token, args.Error(2)
}

func (m *MockTransactionRepository) SaveTransactionAndInventory(ctx context.Context, txn domain.Transaction) (*domain.Inventory, error) {
	args := m.Called(ctx, txn)
	var inv *domain.Inventory
	if args.Get(0) != nil {
		inv = args.Get(0).(*domain.Inventory)
	}
	return inv, args.Error(1)
}

// --- Mock PermissionRepository ---

type MockPermissionRepository struct {
	mock.Mock
}

func (m *MockPermissionRepository) UpsertPermission(ctx context.Context, permission domain.SafePermission) error {
	args := m.Called(ctx, permission)
	return args.Error(0)
}

func (m *MockPermissionRepository) DeletePermission(ctx context.Context, userID, safeID string) error {
	args := m.Called(ctx, userID, safeID)
	return args.Error(0)
}

func (m *MockPermissionRepository) FindPermission(ctx context.Context, userID, safeID string) (*domain.SafePermission, error) {
	args := m.Called(ctx, userID, safeID)
	var perm *domain.SafePermission
	if args.Get(0) != nil {
		perm = args.Get(0).(*domain.SafePermission)
	}
	return perm, args.Error(1)
}

func (m *MockPermissionRepository) ListPermissionsByUser(ctx context.Context, userID string) ([]domain.SafePermission, error) {
	args := m.Called(ctx, userID)
	var perms []domain.SafePermission
	if args.Get(0) != nil {
		perms = args.Get(0).([]domain.SafePermission)
	}
	return perms, args.Error(1)
}

func (m *MockPermissionRepository) ListReadableSafeIDs(ctx context.Context, userID string) ([]string, error) {
	args := m.Called(ctx, userID)
	var ids []string
	if args.Get(0) != nil {
		ids = args.Get(0).([]string)
	}
	return ids, args.Error(1)
}

// --- Mock SafeAuthorizer ---

type MockSafeAuthorizer struct {
	mock.Mock
}

func (m *MockSafeAuthorizer) AuthorizeSafeAction(ctx context.Context, userID string, safeID string, capability domain.SafeCapability) error {
	args := m.Called(ctx, userID, safeID, capability)
	return args.Error(0)
}

func (m *MockSafeAuthorizer) AccessibleSafeIDs(ctx context.Context, userID string) ([]string, error) {
	args := m.Called(ctx, userID)
	var ids []string
	if args.Get(0) != nil {
		ids = args.Get(0).([]string)
	}
	return ids, args.Error(1)
}
