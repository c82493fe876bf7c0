package services_test

import (
	"context"
	"testing"

	"github.com/google/uuid"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/suite"

	"github.com/cashvault/cashvault_backend/internal/apperrors"
	"github.com/cashvault/cashvault_backend/internal/core/domain"
	portssvc "github.com/cashvault/cashvault_backend/internal/core/ports/services"
	"github.com/cashvault/cashvault_backend/internal/core/services"
	"github.com/cashvault/cashvault_backend/internal/dto"
)

type PermissionServiceTestSuite struct {
	suite.Suite
	mockPermRepo *MockPermissionRepository
	mockSafeRepo *MockSafeRepository
	mockUserRepo *MockUserRepository
	service      portssvc.PermissionSvcFacade
}

func (suite *PermissionServiceTestSuite) SetupTest() {
	suite.mockPermRepo = new(MockPermissionRepository)
	suite.mockSafeRepo = new(MockSafeRepository)
	suite.mockUserRepo = new(MockUserRepository)
	suite.service = services.NewPermissionService(suite.mockPermRepo, suite.mockSafeRepo, suite.mockUserRepo)
}

func (suite *PermissionServiceTestSuite) TestAuthorizeSafeAction_AdminBypass() {
	ctx := context.Background()
	userID := uuid.NewString()
	safeID := uuid.NewString()
	admin := &domain.User{UserID: userID, Role: domain.RoleAdmin}

	suite.mockUserRepo.On("FindUserByID", ctx, userID).Return(admin, nil).Once()

	err := suite.service.AuthorizeSafeAction(ctx, userID, safeID, domain.CapabilityManage)

	suite.Require().NoError(err)
	suite.mockPermRepo.AssertNotCalled(suite.T(), "FindPermission", ctx, userID, safeID)
}

func (suite *PermissionServiceTestSuite) TestAuthorizeSafeAction_NoRow() {
	ctx := context.Background()
	userID := uuid.NewString()
	safeID := uuid.NewString()
	user := &domain.User{UserID: userID, Role: domain.RoleUser}

	suite.mockUserRepo.On("FindUserByID", ctx, userID).Return(user, nil).Once()
	suite.mockPermRepo.On("FindPermission", ctx, userID, safeID).Return(nil, apperrors.ErrNotFound).Once()

	err := suite.service.AuthorizeSafeAction(ctx, userID, safeID, domain.CapabilityRead)

	suite.Require().Error(err)
	suite.ErrorIs(err, apperrors.ErrForbidden)
}

func (suite *PermissionServiceTestSuite) TestAuthorizeSafeAction_ManageImpliesWrite() {
	ctx := context.Background()
	userID := uuid.NewString()
	safeID := uuid.NewString()
	user := &domain.User{UserID: userID, Role: domain.RoleUser}
	perm := &domain.SafePermission{UserID: userID, SafeID: safeID, CanRead: true, CanManage: true}

	suite.mockUserRepo.On("FindUserByID", ctx, userID).Return(user, nil).Twice()
	suite.mockPermRepo.On("FindPermission", ctx, userID, safeID).Return(perm, nil).Twice()

	suite.NoError(suite.service.AuthorizeSafeAction(ctx, userID, safeID, domain.CapabilityWrite))
	suite.NoError(suite.service.AuthorizeSafeAction(ctx, userID, safeID, domain.CapabilityManage))
}

func (suite *PermissionServiceTestSuite) TestAuthorizeSafeAction_ReadOnlyCannotWrite() {
	ctx := context.Background()
	userID := uuid.NewString()
	safeID := uuid.NewString()
	user := &domain.User{UserID: userID, Role: domain.RoleUser}
	perm := &domain.SafePermission{UserID: userID, SafeID: safeID, CanRead: true}

	suite.mockUserRepo.On("FindUserByID", ctx, userID).Return(user, nil).Once()
	suite.mockPermRepo.On("FindPermission", ctx, userID, safeID).Return(perm, nil).Once()

	err := suite.service.AuthorizeSafeAction(ctx, userID, safeID, domain.CapabilityWrite)

	suite.ErrorIs(err, apperrors.ErrForbidden)
}

func (suite *PermissionServiceTestSuite) TestAccessibleSafeIDs_AdminSeesAll() {
	ctx := context.Background()
	userID := uuid.NewString()
	admin := &domain.User{UserID: userID, Role: domain.RoleAdmin}
	allIDs := []string{"safe-a", "safe-b", "safe-c"}

	suite.mockUserRepo.On("FindUserByID", ctx, userID).Return(admin, nil).Once()
	suite.mockSafeRepo.On("ListAllSafeIDs", ctx).Return(allIDs, nil).Once()

	ids, err := suite.service.AccessibleSafeIDs(ctx, userID)

	suite.Require().NoError(err)
	suite.Equal(allIDs, ids)
	suite.mockPermRepo.AssertNotCalled(suite.T(), "ListReadableSafeIDs", ctx, userID)
}

func (suite *PermissionServiceTestSuite) TestAccessibleSafeIDs_UserSeesGranted() {
	ctx := context.Background()
	userID := uuid.NewString()
	user := &domain.User{UserID: userID, Role: domain.RoleUser}

	suite.mockUserRepo.On("FindUserByID", ctx, userID).Return(user, nil).Once()
	suite.mockPermRepo.On("ListReadableSafeIDs", ctx, userID).Return([]string{"safe-a"}, nil).Once()

	ids, err := suite.service.AccessibleSafeIDs(ctx, userID)

	suite.Require().NoError(err)
	suite.Equal([]string{"safe-a"}, ids)
	suite.mockSafeRepo.AssertNotCalled(suite.T(), "ListAllSafeIDs", ctx)
}

func (suite *PermissionServiceTestSuite) TestUpsertPermission_NormalizesFlags() {
	ctx := context.Background()
	adminID := uuid.NewString()
	targetID := uuid.NewString()
	safeID := uuid.NewString()
	admin := &domain.User{UserID: adminID, Role: domain.RoleAdmin}
	target := &domain.User{UserID: targetID, Role: domain.RoleUser}

	suite.mockUserRepo.On("FindUserByID", ctx, adminID).Return(admin, nil).Once()
	suite.mockSafeRepo.On("FindSafeByID", ctx, safeID).Return(&domain.Safe{SafeID: safeID}, nil).Once()
	suite.mockUserRepo.On("FindUserByID", ctx, targetID).Return(target, nil).Once()
	suite.mockPermRepo.On("UpsertPermission", ctx, mock.MatchedBy(func(p domain.SafePermission) bool {
		// manage implies write implies read
		return p.UserID == targetID && p.SafeID == safeID && p.CanRead && p.CanWrite && p.CanManage
	})).Return(nil).Once()

	perm, err := suite.service.UpsertPermission(ctx, adminID, targetID, safeID, dto.UpsertPermissionRequest{CanManage: true})

	suite.Require().NoError(err)
	suite.True(perm.CanRead)
	suite.True(perm.CanWrite)
	suite.True(perm.CanManage)
	suite.mockPermRepo.AssertExpectations(suite.T())
}

func (suite *PermissionServiceTestSuite) TestUpsertPermission_RequiresManage() {
	ctx := context.Background()
	requesterID := uuid.NewString()
	targetID := uuid.NewString()
	safeID := uuid.NewString()
	requester := &domain.User{UserID: requesterID, Role: domain.RoleUser}
	perm := &domain.SafePermission{UserID: requesterID, SafeID: safeID, CanRead: true, CanWrite: true}

	suite.mockUserRepo.On("FindUserByID", ctx, requesterID).Return(requester, nil).Once()
	suite.mockPermRepo.On("FindPermission", ctx, requesterID, safeID).Return(perm, nil).Once()

	_, err := suite.service.UpsertPermission(ctx, requesterID, targetID, safeID, dto.UpsertPermissionRequest{CanRead: true})

	suite.Require().Error(err)
	suite.ErrorIs(err, apperrors.ErrForbidden)
	suite.mockPermRepo.AssertNotCalled(suite.T(), "UpsertPermission", ctx, mock.Anything)
}

func (suite *PermissionServiceTestSuite) TestListUserPermissions_OwnAllowed() {
	ctx := context.Background()
	userID := uuid.NewString()
	perms := []domain.SafePermission{{UserID: userID, SafeID: "safe-a", CanRead: true}}

	suite.mockPermRepo.On("ListPermissionsByUser", ctx, userID).Return(perms, nil).Once()

	got, err := suite.service.ListUserPermissions(ctx, userID, userID)

	suite.Require().NoError(err)
	suite.Equal(perms, got)
	suite.mockUserRepo.AssertNotCalled(suite.T(), "FindUserByID", ctx, userID)
}

func (suite *PermissionServiceTestSuite) TestListUserPermissions_OthersNeedAdmin() {
	ctx := context.Background()
	requesterID := uuid.NewString()
	targetID := uuid.NewString()
	requester := &domain.User{UserID: requesterID, Role: domain.RoleUser}

	suite.mockUserRepo.On("FindUserByID", ctx, requesterID).Return(requester, nil).Once()

	_, err := suite.service.ListUserPermissions(ctx, requesterID, targetID)

	suite.Require().Error(err)
	suite.ErrorIs(err, apperrors.ErrForbidden)
	suite.mockPermRepo.AssertNotCalled(suite.T(), "ListPermissionsByUser", ctx, targetID)
}

func TestPermissionServiceTestSuite(t *testing.T) {
	suite.Run(t, new(PermissionServiceTestSuite))
}
