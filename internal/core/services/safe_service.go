package services

import (
	"context"
	"fmt"
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"

	"github.com/cashvault/cashvault_backend/internal/apperrors"
	"github.com/cashvault/cashvault_backend/internal/core/domain"
	portsrepo "github.com/cashvault/cashvault_backend/internal/core/ports/repositories"
	portssvc "github.com/cashvault/cashvault_backend/internal/core/ports/services"
	"github.com/cashvault/cashvault_backend/internal/dto"
	"github.com/cashvault/cashvault_backend/internal/middleware"
)

// safeService provides safe lifecycle and inventory read operations.
type safeService struct {
	safeRepo       portsrepo.SafeRepositoryFacade
	permissionRepo portsrepo.PermissionRepositoryFacade
	userRepo       portsrepo.UserReaderRepository
	authorizer     portssvc.SafeAuthorizerSvc
}

// NewSafeService creates a new SafeService.
func NewSafeService(safeRepo portsrepo.SafeRepositoryFacade, permissionRepo portsrepo.PermissionRepositoryFacade, userRepo portsrepo.UserReaderRepository, authorizer portssvc.SafeAuthorizerSvc) portssvc.SafeSvcFacade {
	return &safeService{
		safeRepo:       safeRepo,
		permissionRepo: permissionRepo,
		userRepo:       userRepo,
		authorizer:     authorizer,
	}
}

var _ portssvc.SafeSvcFacade = (*safeService)(nil)

// CreateSafe persists a new safe with an empty inventory row and grants
// the creator every capability on it. The grant makes the creator's access
// survive a later demotion from ADMIN.
func (s *safeService) CreateSafe(ctx context.Context, req dto.CreateSafeRequest, creatorUserID string) (*domain.Safe, error) {
	logger := middleware.GetLoggerFromCtx(ctx)

	creator, err := s.userRepo.FindUserByID(ctx, creatorUserID)
	if err != nil {
		return nil, fmt.Errorf("failed to load user %s: %w", creatorUserID, err)
	}
	if !creator.IsAdmin() {
		logger.Warn("Non-admin attempted to create a safe", "user_id", creatorUserID)
		return nil, apperrors.ErrForbidden
	}

	now := time.Now().UTC()
	safe := domain.Safe{
		SafeID:      uuid.NewString(),
		Name:        req.Name,
		Description: req.Description,
		IsActive:    true,
		AuditFields: domain.AuditFields{
			CreatedAt:     now,
			CreatedBy:     creatorUserID,
			LastUpdatedAt: now,
			LastUpdatedBy: creatorUserID,
		},
	}
	inventory := domain.Inventory{
		SafeID:        safe.SafeID,
		Bills:         domain.BillCountMap{},
		TotalAmount:   decimal.Zero,
		LastUpdatedAt: now,
		LastUpdatedBy: creatorUserID,
	}

	if err := s.safeRepo.SaveSafeWithInventory(ctx, safe, inventory); err != nil {
		logger.Error("Failed to save safe", "error", err, "safe_name", req.Name)
		return nil, fmt.Errorf("failed to save safe: %w", err)
	}

	creatorGrant := domain.SafePermission{
		UserID:        creatorUserID,
		SafeID:        safe.SafeID,
		CanRead:       true,
		CanWrite:      true,
		CanManage:     true,
		CreatedAt:     now,
		CreatedBy:     creatorUserID,
		LastUpdatedAt: now,
		LastUpdatedBy: creatorUserID,
	}
	if err := s.permissionRepo.UpsertPermission(ctx, creatorGrant); err != nil {
		logger.Error("Failed to grant creator permission on new safe", "error", err, "safe_id", safe.SafeID)
		return nil, fmt.Errorf("failed to grant creator permission: %w", err)
	}

	logger.Info("Safe created", "safe_id", safe.SafeID, "safe_name", safe.Name)
	return &safe, nil
}

// GetSafeByID retrieves a safe the requesting user can read.
func (s *safeService) GetSafeByID(ctx context.Context, safeID string, requestingUserID string) (*domain.Safe, error) {
	if err := s.authorizer.AuthorizeSafeAction(ctx, requestingUserID, safeID, domain.CapabilityRead); err != nil {
		return nil, err
	}
	return s.safeRepo.FindSafeByID(ctx, safeID)
}

// ListAccessibleSafes retrieves every safe the user can read, with
// transaction counts, newest first.
func (s *safeService) ListAccessibleSafes(ctx context.Context, requestingUserID string) ([]domain.SafeSummary, error) {
	logger := middleware.GetLoggerFromCtx(ctx)

	safeIDs, err := s.authorizer.AccessibleSafeIDs(ctx, requestingUserID)
	if err != nil {
		logger.Error("Failed to resolve accessible safes", "error", err, "user_id", requestingUserID)
		return nil, fmt.Errorf("failed to resolve accessible safes: %w", err)
	}
	if len(safeIDs) == 0 {
		return []domain.SafeSummary{}, nil
	}
	return s.safeRepo.ListSafesByIDs(ctx, safeIDs)
}

// GetInventory retrieves the current bill holdings of a safe.
func (s *safeService) GetInventory(ctx context.Context, safeID string, requestingUserID string) (*domain.Inventory, error) {
	if err := s.authorizer.AuthorizeSafeAction(ctx, requestingUserID, safeID, domain.CapabilityRead); err != nil {
		return nil, err
	}
	return s.safeRepo.FindInventoryBySafeID(ctx, safeID)
}

// BuildInventoryExport assembles the printable snapshot of a safe's
// holdings, one row per fixed denomination.
func (s *safeService) BuildInventoryExport(ctx context.Context, safeID string, requestingUserID string) (*dto.InventoryExport, error) {
	if err := s.authorizer.AuthorizeSafeAction(ctx, requestingUserID, safeID, domain.CapabilityRead); err != nil {
		return nil, err
	}
	safe, err := s.safeRepo.FindSafeByID(ctx, safeID)
	if err != nil {
		return nil, err
	}
	inventory, err := s.safeRepo.FindInventoryBySafeID(ctx, safeID)
	if err != nil {
		return nil, err
	}
	export := dto.BuildInventoryExport(safe, inventory, time.Now())
	return &export, nil
}
