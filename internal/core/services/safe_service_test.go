package services_test

import (
	"context"
	"testing"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/suite"

	"github.com/cashvault/cashvault_backend/internal/apperrors"
	"github.com/cashvault/cashvault_backend/internal/core/domain"
	portssvc "github.com/cashvault/cashvault_backend/internal/core/ports/services"
	"github.com/cashvault/cashvault_backend/internal/core/services"
	"github.com/cashvault/cashvault_backend/internal/dto"
)

type SafeServiceTestSuite struct {
	suite.Suite
	mockSafeRepo   *MockSafeRepository
	mockPermRepo   *MockPermissionRepository
	mockUserRepo   *MockUserRepository
	mockAuthorizer *MockSafeAuthorizer
	service        portssvc.SafeSvcFacade
}

func (suite *SafeServiceTestSuite) SetupTest() {
	suite.mockSafeRepo = new(MockSafeRepository)
	suite.mockPermRepo = new(MockPermissionRepository)
	suite.mockUserRepo = new(MockUserRepository)
	suite.mockAuthorizer = new(MockSafeAuthorizer)
	suite.service = services.NewSafeService(suite.mockSafeRepo, suite.mockPermRepo, suite.mockUserRepo, suite.mockAuthorizer)
}

func (suite *SafeServiceTestSuite) TestCreateSafe_Success() {
	ctx := context.Background()
	adminID := uuid.NewString()
	admin := &domain.User{UserID: adminID, Role: domain.RoleAdmin}
	req := dto.CreateSafeRequest{Name: "Main register", Description: "Front desk"}

	suite.mockUserRepo.On("FindUserByID", ctx, adminID).Return(admin, nil).Once()
	suite.mockSafeRepo.On("SaveSafeWithInventory", ctx, mock.MatchedBy(func(safe domain.Safe) bool {
		return safe.Name == req.Name && safe.IsActive && safe.CreatedBy == adminID
	}), mock.MatchedBy(func(inv domain.Inventory) bool {
		return len(inv.Bills) == 0 && inv.TotalAmount.IsZero()
	})).Return(nil).Once()
	suite.mockPermRepo.On("UpsertPermission", ctx, mock.MatchedBy(func(p domain.SafePermission) bool {
		return p.UserID == adminID && p.CanRead && p.CanWrite && p.CanManage
	})).Return(nil).Once()

	safe, err := suite.service.CreateSafe(ctx, req, adminID)

	suite.Require().NoError(err)
	suite.Require().NotNil(safe)
	suite.NotEmpty(safe.SafeID)
	suite.Equal(req.Name, safe.Name)
	suite.mockSafeRepo.AssertExpectations(suite.T())
	suite.mockPermRepo.AssertExpectations(suite.T())
}

func (suite *SafeServiceTestSuite) TestCreateSafe_NonAdminForbidden() {
	ctx := context.Background()
	userID := uuid.NewString()
	user := &domain.User{UserID: userID, Role: domain.RoleUser}

	suite.mockUserRepo.On("FindUserByID", ctx, userID).Return(user, nil).Once()

	safe, err := suite.service.CreateSafe(ctx, dto.CreateSafeRequest{Name: "Rogue"}, userID)

	suite.Require().Error(err)
	suite.ErrorIs(err, apperrors.ErrForbidden)
	suite.Nil(safe)
	suite.mockSafeRepo.AssertNotCalled(suite.T(), "SaveSafeWithInventory", ctx, mock.Anything, mock.Anything)
}

func (suite *SafeServiceTestSuite) TestGetInventory_Forbidden() {
	ctx := context.Background()
	userID := uuid.NewString()
	safeID := uuid.NewString()

	suite.mockAuthorizer.On("AuthorizeSafeAction", ctx, userID, safeID, domain.CapabilityRead).Return(apperrors.ErrForbidden).Once()

	inv, err := suite.service.GetInventory(ctx, safeID, userID)

	suite.Require().Error(err)
	suite.ErrorIs(err, apperrors.ErrForbidden)
	suite.Nil(inv)
	suite.mockSafeRepo.AssertNotCalled(suite.T(), "FindInventoryBySafeID", ctx, safeID)
}

func (suite *SafeServiceTestSuite) TestListAccessibleSafes_Empty() {
	ctx := context.Background()
	userID := uuid.NewString()

	suite.mockAuthorizer.On("AccessibleSafeIDs", ctx, userID).Return([]string{}, nil).Once()

	summaries, err := suite.service.ListAccessibleSafes(ctx, userID)

	suite.Require().NoError(err)
	suite.Empty(summaries)
	suite.mockSafeRepo.AssertNotCalled(suite.T(), "ListSafesByIDs", ctx, mock.Anything)
}

func (suite *SafeServiceTestSuite) TestBuildInventoryExport_AllDenominationsListed() {
	ctx := context.Background()
	userID := uuid.NewString()
	safeID := uuid.NewString()
	safe := &domain.Safe{SafeID: safeID, Name: "Vault"}
	inv := &domain.Inventory{SafeID: safeID, Bills: domain.BillCountMap{20: 3, 100: 1}}

	suite.mockAuthorizer.On("AuthorizeSafeAction", ctx, userID, safeID, domain.CapabilityRead).Return(nil).Once()
	suite.mockSafeRepo.On("FindSafeByID", ctx, safeID).Return(safe, nil).Once()
	suite.mockSafeRepo.On("FindInventoryBySafeID", ctx, safeID).Return(inv, nil).Once()

	export, err := suite.service.BuildInventoryExport(ctx, safeID, userID)

	suite.Require().NoError(err)
	suite.Equal("Vault", export.SafeName)
	suite.Len(export.Rows, len(domain.Denominations), "every fixed denomination gets a row")
	suite.True(export.TotalAmount.Equal(decimal.NewFromInt(160)))
	for _, row := range export.Rows {
		if row.Denomination == "20" {
			suite.Equal(int64(3), row.Quantity)
			suite.True(row.Subtotal.Equal(decimal.NewFromInt(60)))
		}
		if row.Denomination == "5" {
			suite.Equal(int64(0), row.Quantity)
		}
	}
}

func TestSafeServiceTestSuite(t *testing.T) {
	suite.Run(t, new(SafeServiceTestSuite))
}
