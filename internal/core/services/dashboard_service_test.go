package services_test

import (
	"context"
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/suite"

	"github.com/cashvault/cashvault_backend/internal/apperrors"
	"github.com/cashvault/cashvault_backend/internal/core/domain"
	portssvc "github.com/cashvault/cashvault_backend/internal/core/ports/services"
	"github.com/cashvault/cashvault_backend/internal/core/services"
)

type DashboardServiceTestSuite struct {
	suite.Suite
	mockTxnRepo    *MockTransactionRepository
	mockAuthorizer *MockSafeAuthorizer
	service        portssvc.DashboardSvcFacade
}

func (suite *DashboardServiceTestSuite) SetupTest() {
	suite.mockTxnRepo = new(MockTransactionRepository)
	suite.mockAuthorizer = new(MockSafeAuthorizer)
	suite.service = services.NewDashboardService(suite.mockTxnRepo, suite.mockAuthorizer)
}

func movement(safeID string, mode domain.TransactionMode, bills domain.BillCountMap, at time.Time) domain.Transaction {
	return domain.Transaction{
		TransactionID: uuid.NewString(),
		SafeID:        safeID,
		Kind:          domain.KindMovement,
		Mode:          mode,
		Bills:         bills,
		Amount:        bills.Total(),
		AuditFields:   domain.AuditFields{CreatedAt: at},
	}
}

func (suite *DashboardServiceTestSuite) TestGetDashboard_SumsAcrossSafes() {
	ctx := context.Background()
	userID := uuid.NewString()
	safeA := "safe-a"
	safeB := "safe-b"
	day := time.Date(2024, 3, 1, 10, 0, 0, 0, time.UTC)

	suite.mockAuthorizer.On("AccessibleSafeIDs", ctx, userID).Return([]string{safeA, safeB}, nil).Once()
	suite.mockTxnRepo.On("FindTransactionsBySafeIDs", ctx, []string{safeA, safeB}).Return([]domain.Transaction{
		movement(safeA, domain.ModeAdd, domain.BillCountMap{5: 10}, day),
		movement(safeB, domain.ModeAdd, domain.BillCountMap{5: 4}, day.Add(time.Hour)),
	}, nil).Once()

	dashboard, err := suite.service.GetDashboard(ctx, userID, nil)

	suite.Require().NoError(err)
	suite.Equal(2, dashboard.TransactionCount)
	suite.True(dashboard.TotalAmount.Equal(decimal.NewFromInt(70)), "5x10 + 5x4 = 70, got %s", dashboard.TotalAmount)
	suite.Equal(int64(14), dashboard.BillEvolution[5]["2024-03-01"])
	suite.mockTxnRepo.AssertExpectations(suite.T())
	suite.mockAuthorizer.AssertExpectations(suite.T())
}

func (suite *DashboardServiceTestSuite) TestGetDashboard_ReplaceIsolatedPerSafe() {
	ctx := context.Background()
	userID := uuid.NewString()
	safeA := "safe-a"
	safeB := "safe-b"
	day1 := time.Date(2024, 3, 1, 9, 0, 0, 0, time.UTC)
	day2 := time.Date(2024, 3, 2, 9, 0, 0, 0, time.UTC)

	suite.mockAuthorizer.On("AccessibleSafeIDs", ctx, userID).Return([]string{safeA, safeB}, nil).Once()
	suite.mockTxnRepo.On("FindTransactionsBySafeIDs", ctx, []string{safeA, safeB}).Return([]domain.Transaction{
		movement(safeA, domain.ModeAdd, domain.BillCountMap{20: 3}, day1),
		movement(safeB, domain.ModeAdd, domain.BillCountMap{20: 7}, day1),
		// Replacing safe-b's holdings must not touch safe-a's count.
		movement(safeB, domain.ModeReplace, domain.BillCountMap{20: 1}, day2),
	}, nil).Once()

	dashboard, err := suite.service.GetDashboard(ctx, userID, nil)

	suite.Require().NoError(err)
	suite.Equal(int64(10), dashboard.BillEvolution[20]["2024-03-01"])
	suite.Equal(int64(1), dashboard.BillEvolution[20]["2024-03-02"], "safe-a has no snapshot that day, safe-b replaced to 1")
	suite.True(dashboard.TotalAmount.Equal(decimal.NewFromInt(80)))
}

func (suite *DashboardServiceTestSuite) TestGetDashboard_SilentSafeContributesZero() {
	ctx := context.Background()
	userID := uuid.NewString()
	safeA := "safe-a"
	safeB := "safe-b"
	day1 := time.Date(2024, 3, 1, 9, 0, 0, 0, time.UTC)
	day2 := time.Date(2024, 3, 2, 9, 0, 0, 0, time.UTC)

	suite.mockAuthorizer.On("AccessibleSafeIDs", ctx, userID).Return([]string{safeA, safeB}, nil).Once()
	suite.mockTxnRepo.On("FindTransactionsBySafeIDs", ctx, []string{safeA, safeB}).Return([]domain.Transaction{
		movement(safeA, domain.ModeAdd, domain.BillCountMap{5: 10}, day1),
		movement(safeB, domain.ModeAdd, domain.BillCountMap{5: 4}, day1),
		// safe-a is silent on day 2, so only safe-b's snapshot counts there.
		movement(safeB, domain.ModeAdd, domain.BillCountMap{5: 1}, day2),
	}, nil).Once()

	dashboard, err := suite.service.GetDashboard(ctx, userID, nil)

	suite.Require().NoError(err)
	suite.Equal(int64(14), dashboard.BillEvolution[5]["2024-03-01"])
	suite.Equal(int64(5), dashboard.BillEvolution[5]["2024-03-02"], "0 from safe-a plus 5 from safe-b")
	suite.True(dashboard.TotalAmount.Equal(decimal.NewFromInt(75)))
}

func (suite *DashboardServiceTestSuite) TestGetDashboard_NoAccessibleSafes() {
	ctx := context.Background()
	userID := uuid.NewString()

	suite.mockAuthorizer.On("AccessibleSafeIDs", ctx, userID).Return([]string{}, nil).Once()

	dashboard, err := suite.service.GetDashboard(ctx, userID, nil)

	suite.Require().NoError(err)
	suite.Equal(0, dashboard.TransactionCount)
	suite.True(dashboard.TotalAmount.IsZero())
	suite.Empty(dashboard.Entries)
	suite.Len(dashboard.BillEvolution, len(domain.Denominations))
	suite.mockTxnRepo.AssertNotCalled(suite.T(), "FindTransactionsBySafeIDs", ctx, []string{})
}

func (suite *DashboardServiceTestSuite) TestGetDashboard_SingleSafeFilter() {
	ctx := context.Background()
	userID := uuid.NewString()
	safeA := "safe-a"
	day := time.Date(2024, 3, 1, 9, 0, 0, 0, time.UTC)

	suite.mockAuthorizer.On("AuthorizeSafeAction", ctx, userID, safeA, domain.CapabilityRead).Return(nil).Once()
	suite.mockTxnRepo.On("FindTransactionsBySafeIDs", ctx, []string{safeA}).Return([]domain.Transaction{
		movement(safeA, domain.ModeAdd, domain.BillCountMap{100: 2}, day),
	}, nil).Once()

	dashboard, err := suite.service.GetDashboard(ctx, userID, &safeA)

	suite.Require().NoError(err)
	suite.Equal(1, dashboard.TransactionCount)
	suite.True(dashboard.TotalAmount.Equal(decimal.NewFromInt(200)))
	suite.mockTxnRepo.AssertExpectations(suite.T())
}

func (suite *DashboardServiceTestSuite) TestGetDashboard_SingleSafeForbidden() {
	ctx := context.Background()
	userID := uuid.NewString()
	safeA := "safe-a"

	suite.mockAuthorizer.On("AuthorizeSafeAction", ctx, userID, safeA, domain.CapabilityRead).Return(apperrors.ErrForbidden).Once()

	dashboard, err := suite.service.GetDashboard(ctx, userID, &safeA)

	suite.Require().Error(err)
	suite.ErrorIs(err, apperrors.ErrForbidden)
	suite.Nil(dashboard)
	suite.mockTxnRepo.AssertNotCalled(suite.T(), "FindTransactionsBySafeIDs", ctx, []string{safeA})
}

func TestDashboardServiceTestSuite(t *testing.T) {
	suite.Run(t, new(DashboardServiceTestSuite))
}
