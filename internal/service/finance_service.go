package service

import (
	"context"
	"log"
	"time"

	"backend/internal/finance"
	"backend/internal/model"
	"backend/internal/repository"

	"github.com/google/uuid"
	"golang.org/x/sync/errgroup"
)

// defaultWindowDays is the dashboard's default lookback when no range is given
const defaultWindowDays = 30

// FinanceService computes the consistent KPI set shared by the dashboard,
// finance-overview and pricing-calculator views.
type FinanceService interface {
	// ComputeFinanceMetrics aggregates a user's orders, fees, taxes and fixed
	// expenses over [startOfDay(from), endOfDay(to)], defaulting to the last
	// 30 days ending today. It returns nil when any upstream read fails;
	// callers must treat nil as "no data for this window", never as an error
	// distinguishable from a legitimately empty window (which yields a zeroed,
	// non-nil summary).
	ComputeFinanceMetrics(ctx context.Context, userID uuid.UUID, from, to *time.Time) *model.FinanceSummary
}

type financeService struct {
	orders   repository.OrderRepository
	fees     repository.FeeRepository
	taxes    repository.TaxRepository
	expenses repository.FixedExpenseRepository
}

func NewFinanceService(
	orders repository.OrderRepository,
	fees repository.FeeRepository,
	taxes repository.TaxRepository,
	expenses repository.FixedExpenseRepository,
) FinanceService {
	return &financeService{orders: orders, fees: fees, taxes: taxes, expenses: expenses}
}

// snapshot is the joined result of the four concurrent repository reads.
// Aggregation only starts once every read succeeded; partial data is never
// aggregated.
type snapshot struct {
	orders   []model.Order
	fees     []model.Fee
	taxes    []model.Tax
	expenses []model.FixedExpense
}

func (s *financeService) ComputeFinanceMetrics(ctx context.Context, userID uuid.UUID, from, to *time.Time) *model.FinanceSummary {
	start, end := resolveWindow(from, to, time.Now())

	snap, err := s.fetchSnapshot(ctx, userID, start, end)
	if err != nil {
		log.Printf("finance metrics fetch failed for user %s: %v", userID, err)
		return nil
	}

	records := make([]finance.OrderRecord, 0, len(snap.orders))
	for _, order := range snap.orders {
		records = append(records, finance.NewOrderRecord(order))
	}

	totals := finance.Aggregate(records, snap.fees, snap.taxes, snap.expenses)

	summary := totals.Summary()
	summary.FixedExpensesList = snap.expenses
	if summary.FixedExpensesList == nil {
		summary.FixedExpensesList = []model.FixedExpense{}
	}
	summary.TimeRangeStartDate = start
	summary.TimeRangeEndDate = end
	return &summary
}

// fetchSnapshot runs the four reads concurrently and joins on all of them.
// One failure cancels the rest and fails the whole snapshot.
func (s *financeService) fetchSnapshot(ctx context.Context, userID uuid.UUID, start, end time.Time) (snapshot, error) {
	var snap snapshot

	g, gctx := errgroup.WithContext(ctx)
	g.Go(func() error {
		orders, err := s.orders.FindInRange(gctx, userID, start, end)
		if err != nil {
			return err
		}
		snap.orders = orders
		return nil
	})
	g.Go(func() error {
		fees, err := s.fees.FindByUser(gctx, userID)
		if err != nil {
			return err
		}
		snap.fees = fees
		return nil
	})
	g.Go(func() error {
		taxes, err := s.taxes.FindByUser(gctx, userID)
		if err != nil {
			return err
		}
		snap.taxes = taxes
		return nil
	})
	g.Go(func() error {
		expenses, err := s.expenses.FindInRange(gctx, userID, start, end)
		if err != nil {
			return err
		}
		snap.expenses = expenses
		return nil
	})

	if err := g.Wait(); err != nil {
		return snapshot{}, err
	}
	return snap, nil
}

// resolveWindow applies the last-30-days default and widens the bounds to
// whole days, inclusive on both ends.
func resolveWindow(from, to *time.Time, now time.Time) (time.Time, time.Time) {
	end := now
	if to != nil {
		end = *to
	}
	start := end.AddDate(0, 0, -defaultWindowDays)
	if from != nil {
		start = *from
	}
	return startOfDay(start), endOfDay(end)
}

func startOfDay(t time.Time) time.Time {
	return time.Date(t.Year(), t.Month(), t.Day(), 0, 0, 0, 0, t.Location())
}

func endOfDay(t time.Time) time.Time {
	return time.Date(t.Year(), t.Month(), t.Day(), 23, 59, 59, int(time.Second-time.Nanosecond), t.Location())
}
