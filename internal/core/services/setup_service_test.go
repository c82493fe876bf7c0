package services_test

import (
	"context"
	"testing"

	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/suite"

	"github.com/cashvault/cashvault_backend/internal/apperrors"
	"github.com/cashvault/cashvault_backend/internal/core/domain"
	portssvc "github.com/cashvault/cashvault_backend/internal/core/ports/services"
	"github.com/cashvault/cashvault_backend/internal/core/services"
	"github.com/cashvault/cashvault_backend/internal/dto"
	"github.com/cashvault/cashvault_backend/internal/utils"
)

type SetupServiceTestSuite struct {
	suite.Suite
	mockUserRepo *MockUserRepository
	mockSafeRepo *MockSafeRepository
	mockPermRepo *MockPermissionRepository
	service      portssvc.SetupSvcFacade
	ctx          context.Context
}

func (s *SetupServiceTestSuite) SetupTest() {
	s.mockUserRepo = new(MockUserRepository)
	s.mockSafeRepo = new(MockSafeRepository)
	s.mockPermRepo = new(MockPermissionRepository)
	s.service = services.NewSetupService(s.mockUserRepo, s.mockSafeRepo, s.mockPermRepo)
	s.ctx = context.Background()
}

func (s *SetupServiceTestSuite) TestSetupRequired_EmptyRoster() {
	s.mockUserRepo.On("CountUsers", s.ctx).Return(int64(0), nil).Once()

	required, err := s.service.SetupRequired(s.ctx)

	s.Require().NoError(err)
	s.True(required)
	s.mockUserRepo.AssertExpectations(s.T())
}

func (s *SetupServiceTestSuite) TestSetupRequired_ExistingUsers() {
	s.mockUserRepo.On("CountUsers", s.ctx).Return(int64(3), nil).Once()

	required, err := s.service.SetupRequired(s.ctx)

	s.Require().NoError(err)
	s.False(required)
}

func (s *SetupServiceTestSuite) TestSetupFirstAdmin_Success() {
	req := dto.SetupRequest{
		Email:           "admin@example.com",
		Password:        "initial-secret",
		Name:            "First Admin",
		SafeName:        "Main Safe",
		SafeDescription: "Front office",
	}

	s.mockUserRepo.On("CountUsers", s.ctx).Return(int64(0), nil).Once()
	s.mockUserRepo.On("SaveUser", s.ctx, mock.MatchedBy(func(u domain.User) bool {
		return u.Email == req.Email &&
			u.Role == domain.RoleAdmin &&
			u.CreatedBy == u.UserID &&
			utils.CheckPasswordHash(req.Password, u.PasswordHash)
	})).Return(nil).Once()
	s.mockSafeRepo.On("SaveSafeWithInventory", s.ctx, mock.MatchedBy(func(safe domain.Safe) bool {
		return safe.Name == req.SafeName && safe.IsActive
	}), mock.MatchedBy(func(inv domain.Inventory) bool {
		return len(inv.Bills) == 0 && inv.TotalAmount.IsZero()
	})).Return(nil).Once()
	s.mockPermRepo.On("UpsertPermission", s.ctx, mock.MatchedBy(func(p domain.SafePermission) bool {
		return p.CanRead && p.CanWrite && p.CanManage
	})).Return(nil).Once()

	admin, safe, err := s.service.SetupFirstAdmin(s.ctx, req)

	s.Require().NoError(err)
	s.Require().NotNil(admin)
	s.Require().NotNil(safe)
	s.Equal(domain.RoleAdmin, admin.Role)
	s.Equal(req.SafeName, safe.Name)
	s.mockUserRepo.AssertExpectations(s.T())
	s.mockSafeRepo.AssertExpectations(s.T())
	s.mockPermRepo.AssertExpectations(s.T())
}

func (s *SetupServiceTestSuite) TestSetupFirstAdmin_AlreadyCompleted() {
	s.mockUserRepo.On("CountUsers", s.ctx).Return(int64(1), nil).Once()

	admin, safe, err := s.service.SetupFirstAdmin(s.ctx, dto.SetupRequest{
		Email:    "admin@example.com",
		Password: "initial-secret",
		Name:     "First Admin",
		SafeName: "Main Safe",
	})

	s.Require().Error(err)
	s.ErrorIs(err, apperrors.ErrConflict)
	s.Nil(admin)
	s.Nil(safe)
	s.mockUserRepo.AssertNotCalled(s.T(), "SaveUser", mock.Anything, mock.Anything)
}

func (s *SetupServiceTestSuite) TestSetupFirstAdmin_RaceLosesOnDuplicateEmail() {
	s.mockUserRepo.On("CountUsers", s.ctx).Return(int64(0), nil).Once()
	s.mockUserRepo.On("SaveUser", s.ctx, mock.Anything).Return(apperrors.ErrDuplicate).Once()

	admin, safe, err := s.service.SetupFirstAdmin(s.ctx, dto.SetupRequest{
		Email:    "admin@example.com",
		Password: "initial-secret",
		Name:     "First Admin",
		SafeName: "Main Safe",
	})

	s.Require().Error(err)
	s.ErrorIs(err, apperrors.ErrConflict)
	s.Nil(admin)
	s.Nil(safe)
	s.mockSafeRepo.AssertNotCalled(s.T(), "SaveSafeWithInventory", mock.Anything, mock.Anything, mock.Anything)
}

func TestSetupServiceTestSuite(t *testing.T) {
	suite.Run(t, new(SetupServiceTestSuite))
}
