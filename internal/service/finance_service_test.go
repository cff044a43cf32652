package service

import (
	"context"
	"errors"
	"testing"
	"time"

	"backend/internal/model"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type fakeOrderRepo struct {
	orders []model.Order
	err    error

	gotStart time.Time
	gotEnd   time.Time
}

func (f *fakeOrderRepo) Create(ctx context.Context, order *model.Order) error { return nil }

func (f *fakeOrderRepo) FindByIDWithItems(ctx context.Context, userID, id uuid.UUID) (*model.Order, error) {
	return nil, nil
}

func (f *fakeOrderRepo) FindInRange(ctx context.Context, userID uuid.UUID, start, end time.Time) ([]model.Order, error) {
	f.gotStart, f.gotEnd = start, end
	return f.orders, f.err
}

func (f *fakeOrderRepo) List(ctx context.Context, userID uuid.UUID, page, limit int) ([]model.Order, int64, error) {
	return nil, 0, nil
}

type fakeFeeRepo struct {
	fees []model.Fee
	err  error
}

func (f *fakeFeeRepo) Create(ctx context.Context, fee *model.Fee) error       { return nil }
func (f *fakeFeeRepo) Update(ctx context.Context, fee *model.Fee) error       { return nil }
func (f *fakeFeeRepo) Delete(ctx context.Context, userID, id uuid.UUID) error { return nil }

func (f *fakeFeeRepo) FindByID(ctx context.Context, userID, id uuid.UUID) (*model.Fee, error) {
	return nil, nil
}

func (f *fakeFeeRepo) FindByUser(ctx context.Context, userID uuid.UUID) ([]model.Fee, error) {
	return f.fees, f.err
}

type fakeTaxRepo struct {
	taxes []model.Tax
	err   error
}

func (f *fakeTaxRepo) Create(ctx context.Context, tax *model.Tax) error       { return nil }
func (f *fakeTaxRepo) Update(ctx context.Context, tax *model.Tax) error       { return nil }
func (f *fakeTaxRepo) Delete(ctx context.Context, userID, id uuid.UUID) error { return nil }

func (f *fakeTaxRepo) FindByID(ctx context.Context, userID, id uuid.UUID) (*model.Tax, error) {
	return nil, nil
}

func (f *fakeTaxRepo) FindByUser(ctx context.Context, userID uuid.UUID) ([]model.Tax, error) {
	return f.taxes, f.err
}

func (f *fakeTaxRepo) EnsureAdSpendTax(ctx context.Context, userID uuid.UUID) error { return nil }

type fakeExpenseRepo struct {
	expenses []model.FixedExpense
	err      error
}

func (f *fakeExpenseRepo) Create(ctx context.Context, expense *model.FixedExpense) error { return nil }
func (f *fakeExpenseRepo) Update(ctx context.Context, expense *model.FixedExpense) error { return nil }
func (f *fakeExpenseRepo) Delete(ctx context.Context, userID, id uuid.UUID) error        { return nil }

func (f *fakeExpenseRepo) FindByID(ctx context.Context, userID, id uuid.UUID) (*model.FixedExpense, error) {
	return nil, nil
}

func (f *fakeExpenseRepo) FindInRange(ctx context.Context, userID uuid.UUID, start, end time.Time) ([]model.FixedExpense, error) {
	return f.expenses, f.err
}

func (f *fakeExpenseRepo) List(ctx context.Context, userID uuid.UUID, page, limit int) ([]model.FixedExpense, int64, error) {
	return nil, 0, nil
}

func newTestFinanceService(orders *fakeOrderRepo, fees *fakeFeeRepo, taxes *fakeTaxRepo, expenses *fakeExpenseRepo) FinanceService {
	if orders == nil {
		orders = &fakeOrderRepo{}
	}
	if fees == nil {
		fees = &fakeFeeRepo{}
	}
	if taxes == nil {
		taxes = &fakeTaxRepo{}
	}
	if expenses == nil {
		expenses = &fakeExpenseRepo{}
	}
	return NewFinanceService(orders, fees, taxes, expenses)
}

func TestComputeFinanceMetricsAggregates(t *testing.T) {
	method := "pix"
	orders := &fakeOrderRepo{orders: []model.Order{
		{Status: "PAID", Total: decimal.NewFromInt(100), PaymentMethod: &method},
		{Status: "PENDING", Total: decimal.NewFromInt(40), PaymentMethod: &method},
	}}
	expenses := &fakeExpenseRepo{expenses: []model.FixedExpense{
		{Description: "Rent", Amount: decimal.NewFromInt(30)},
	}}

	svc := newTestFinanceService(orders, nil, nil, expenses)
	summary := svc.ComputeFinanceMetrics(context.Background(), uuid.New(), nil, nil)

	require.NotNil(t, summary)
	assert.Equal(t, 2, summary.CountGenerated)
	assert.Equal(t, 1, summary.CountPaid)
	assert.Equal(t, 1, summary.CountPending)
	assert.InDelta(t, 100.0, summary.TotalPaid, 1e-9)
	assert.InDelta(t, 100.0, summary.PixPaidValue, 1e-9)
	assert.InDelta(t, 30.0, summary.TotalFixedExpenses, 1e-9)
	assert.InDelta(t, 70.0, summary.NetProfit, 1e-9)
	assert.Len(t, summary.FixedExpensesList, 1)
}

func TestComputeFinanceMetricsNilOnAnyFailure(t *testing.T) {
	boom := errors.New("connection reset")

	tests := []struct {
		name string
		make func() FinanceService
	}{
		{"orders fail", func() FinanceService {
			return newTestFinanceService(&fakeOrderRepo{err: boom}, nil, nil, nil)
		}},
		{"fees fail", func() FinanceService {
			return newTestFinanceService(nil, &fakeFeeRepo{err: boom}, nil, nil)
		}},
		{"taxes fail", func() FinanceService {
			return newTestFinanceService(nil, nil, &fakeTaxRepo{err: boom}, nil)
		}},
		{"expenses fail", func() FinanceService {
			return newTestFinanceService(nil, nil, nil, &fakeExpenseRepo{err: boom})
		}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			summary := tt.make().ComputeFinanceMetrics(context.Background(), uuid.New(), nil, nil)
			assert.Nil(t, summary)
		})
	}
}

func TestComputeFinanceMetricsEmptyWindow(t *testing.T) {
	svc := newTestFinanceService(nil, nil, nil, nil)
	summary := svc.ComputeFinanceMetrics(context.Background(), uuid.New(), nil, nil)

	require.NotNil(t, summary)
	assert.Zero(t, summary.TotalGenerated)
	assert.Zero(t, summary.CountGenerated)
	assert.Zero(t, summary.NetProfit)
	assert.Zero(t, summary.Margin)
	assert.Zero(t, summary.ROI)
	assert.NotNil(t, summary.FixedExpensesList)
	assert.Empty(t, summary.FixedExpensesList)
}

func TestComputeFinanceMetricsWindowBounds(t *testing.T) {
	orders := &fakeOrderRepo{}
	svc := newTestFinanceService(orders, nil, nil, nil)

	from := time.Date(2024, 3, 10, 14, 30, 0, 0, time.UTC)
	to := time.Date(2024, 3, 20, 9, 15, 0, 0, time.UTC)
	summary := svc.ComputeFinanceMetrics(context.Background(), uuid.New(), &from, &to)

	require.NotNil(t, summary)
	assert.Equal(t, time.Date(2024, 3, 10, 0, 0, 0, 0, time.UTC), orders.gotStart)
	assert.Equal(t, time.Date(2024, 3, 20, 23, 59, 59, int(time.Second-time.Nanosecond), time.UTC), orders.gotEnd)
	assert.Equal(t, orders.gotStart, summary.TimeRangeStartDate)
	assert.Equal(t, orders.gotEnd, summary.TimeRangeEndDate)
}

func TestComputeFinanceMetricsDefaultWindow(t *testing.T) {
	orders := &fakeOrderRepo{}
	svc := newTestFinanceService(orders, nil, nil, nil)

	before := time.Now()
	summary := svc.ComputeFinanceMetrics(context.Background(), uuid.New(), nil, nil)
	require.NotNil(t, summary)

	wantStart := startOfDay(before.AddDate(0, 0, -defaultWindowDays))
	assert.Equal(t, wantStart, orders.gotStart)
	assert.Equal(t, endOfDay(before), orders.gotEnd)
}

func TestResolveWindow(t *testing.T) {
	now := time.Date(2024, 6, 15, 12, 0, 0, 0, time.UTC)

	start, end := resolveWindow(nil, nil, now)
	assert.Equal(t, time.Date(2024, 5, 16, 0, 0, 0, 0, time.UTC), start)
	assert.Equal(t, time.Date(2024, 6, 15, 23, 59, 59, int(time.Second-time.Nanosecond), time.UTC), end)

	from := time.Date(2024, 6, 1, 8, 0, 0, 0, time.UTC)
	start, _ = resolveWindow(&from, nil, now)
	assert.Equal(t, time.Date(2024, 6, 1, 0, 0, 0, 0, time.UTC), start)
}
