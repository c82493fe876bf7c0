package services

import (
	"context"
	"fmt"
	"sync"

	"golang.org/x/sync/errgroup"

	"github.com/cashvault/cashvault_backend/internal/apperrors"
	"github.com/cashvault/cashvault_backend/internal/core/domain"
	"github.com/cashvault/cashvault_backend/internal/core/ledger"
	portsrepo "github.com/cashvault/cashvault_backend/internal/core/ports/repositories"
	portssvc "github.com/cashvault/cashvault_backend/internal/core/ports/services"
	"github.com/cashvault/cashvault_backend/internal/middleware"
)

// dashboardService builds the aggregated view over every safe a user can
// read by replaying each safe's ledger independently and merging the
// results.
type dashboardService struct {
	transactionRepo portsrepo.TransactionReaderRepository
	authorizer      portssvc.SafeAuthorizerSvc
}

// NewDashboardService creates a new DashboardService.
func NewDashboardService(transactionRepo portsrepo.TransactionReaderRepository, authorizer portssvc.SafeAuthorizerSvc) portssvc.DashboardSvcFacade {
	return &dashboardService{
		transactionRepo: transactionRepo,
		authorizer:      authorizer,
	}
}

var _ portssvc.DashboardSvcFacade = (*dashboardService)(nil)

// safeReplay is the result of replaying one safe's ledger.
type safeReplay struct {
	final   domain.BillCountMap
	history domain.BillHistory
}

// GetDashboard resolves the safes the user can read, replays each ledger
// independently, and merges the final states and day-by-day histories.
// A REPLACE in one safe never touches another safe's counts because the
// replacement happens inside that safe's replay, before the merge.
func (s *dashboardService) GetDashboard(ctx context.Context, requestingUserID string, safeID *string) (*domain.Dashboard, error) {
	logger := middleware.GetLoggerFromCtx(ctx)

	if requestingUserID == "" {
		return nil, apperrors.NewAppError(401, "missing requesting user", apperrors.ErrUnauthorized)
	}

	var safeIDs []string
	if safeID != nil {
		if err := s.authorizer.AuthorizeSafeAction(ctx, requestingUserID, *safeID, domain.CapabilityRead); err != nil {
			return nil, err
		}
		safeIDs = []string{*safeID}
	} else {
		var err error
		safeIDs, err = s.authorizer.AccessibleSafeIDs(ctx, requestingUserID)
		if err != nil {
			logger.Error("Failed to resolve accessible safes for dashboard", "error", err, "user_id", requestingUserID)
			return nil, fmt.Errorf("failed to resolve accessible safes: %w", err)
		}
	}
	if len(safeIDs) == 0 {
		return domain.EmptyDashboard(), nil
	}

	transactions, err := s.transactionRepo.FindTransactionsBySafeIDs(ctx, safeIDs)
	if err != nil {
		logger.Error("Failed to fetch transactions for dashboard", "error", err, "user_id", requestingUserID)
		return nil, fmt.Errorf("failed to fetch transactions: %w", err)
	}

	bySafe := ledger.PartitionBySafe(transactions)

	var mu sync.Mutex
	replays := make(map[string]safeReplay, len(bySafe))

	g, _ := errgroup.WithContext(ctx)
	for id, txns := range bySafe {
		id, txns := id, txns
		g.Go(func() error {
			final, history := ledger.ReplayWithHistory(txns)
			mu.Lock()
			replays[id] = safeReplay{final: final, history: history}
			mu.Unlock()
			return nil
		})
	}
	if err := g.Wait(); err != nil {
		return nil, err
	}

	dashboard := mergeReplays(transactions, replays)
	logger.Debug("Dashboard built", "safe_count", len(safeIDs), "transaction_count", dashboard.TransactionCount)
	return dashboard, nil
}

// mergeReplays sums per-safe replay results into one dashboard. Histories
// are merged day by day: a safe contributes its snapshot for the days it
// has one, and 0 for days only other safes touched.
func mergeReplays(transactions []domain.Transaction, replays map[string]safeReplay) *domain.Dashboard {
	merged := domain.BillCountMap{}
	for _, r := range replays {
		for d, q := range r.final {
			merged[d] += q
		}
	}

	evolution := domain.NewBillHistory()
	days := map[string]struct{}{}
	for _, r := range replays {
		for _, byDay := range r.history {
			for day := range byDay {
				days[day] = struct{}{}
			}
		}
	}
	for _, d := range domain.Denominations {
		for day := range days {
			total := int64(0)
			for _, r := range replays {
				total += r.history[d][day]
			}
			evolution[d][day] = total
		}
	}

	entries := make([]domain.DashboardEntry, len(transactions))
	for i, txn := range transactions {
		entries[i] = domain.DashboardEntry{
			Date:   txn.CreatedAt,
			Amount: txn.Amount,
			Kind:   txn.Kind,
			Mode:   txn.Mode,
		}
	}

	return &domain.Dashboard{
		Entries:          entries,
		TotalAmount:      merged.Total(),
		TransactionCount: len(transactions),
		BillEvolution:    evolution,
	}
}
