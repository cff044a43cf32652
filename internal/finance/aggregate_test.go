package finance

import (
	"math"
	"math/rand"
	"testing"

	"backend/internal/model"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func order(status string, total float64, method *string, items ...model.OrderItem) model.Order {
	return model.Order{
		Status:        status,
		Total:         decimal.NewFromFloat(total),
		PaymentMethod: method,
		Items:         items,
	}
}

func records(orders ...model.Order) []OrderRecord {
	out := make([]OrderRecord, 0, len(orders))
	for _, o := range orders {
		out = append(out, NewOrderRecord(o))
	}
	return out
}

func TestAggregateBasicPaidOrder(t *testing.T) {
	orders := records(order("PAID", 200, strPtr("pix")))
	fees := []model.Fee{{Type: model.FeeTypeFixed, Value: decimal.NewFromInt(2)}}

	summary := Aggregate(orders, fees, nil, nil).Summary()

	assert.Equal(t, 200.0, summary.TotalPaid)
	assert.Equal(t, 1, summary.CountPaid)
	assert.Equal(t, 200.0, summary.PixPaidValue)
	assert.Equal(t, 1, summary.PixPaidCount)
	assert.Equal(t, 2.0, summary.TotalGatewayFees)
	assert.Equal(t, 198.0, summary.NetProfit)
	assert.Equal(t, 99.0, summary.Margin)
	assert.Equal(t, 200.0, summary.TicketAverage)
}

func TestAggregateMixedStatuses(t *testing.T) {
	orders := records(
		order("PAID", 100, strPtr("pix")),
		order("PENDING", 100, nil),
		order("CANCELED", 100, nil),
		order("SHIPPED", 100, nil), // treated as paid, no method → card
	)

	summary := Aggregate(orders, nil, nil, nil).Summary()

	assert.Equal(t, 4, summary.CountGenerated)
	assert.Equal(t, 400.0, summary.TotalGenerated)
	assert.Equal(t, 2, summary.CountPaid)
	assert.Equal(t, 200.0, summary.TotalPaid)
	assert.Equal(t, 1, summary.CountPending)
	assert.Equal(t, 100.0, summary.TotalPending)
	assert.Equal(t, 1, summary.AbandonedCount)
	assert.Equal(t, 100.0, summary.AbandonedValue)
	assert.Equal(t, 1, summary.PixPaidCount)
	assert.Equal(t, 1, summary.CardPaidCount)
}

func TestAggregateUnknownStatusOnlyCountsGenerated(t *testing.T) {
	orders := records(
		order("REFUNDED", 80, strPtr("pix")),
		order("", 20, nil),
	)

	summary := Aggregate(orders, nil, nil, nil).Summary()

	assert.Equal(t, 2, summary.CountGenerated)
	assert.Equal(t, 100.0, summary.TotalGenerated)
	assert.Equal(t, 0, summary.CountPaid)
	assert.Equal(t, 0, summary.CountPending)
	assert.Equal(t, 0, summary.AbandonedCount)
	assert.Equal(t, 0.0, summary.TotalPaid)
}

func TestAggregateBucketCountsSumToGenerated(t *testing.T) {
	orders := records(
		order("PAID", 10, nil),
		order("DELIVERED", 10, nil),
		order("PENDING", 10, nil),
		order("ABANDONED", 10, nil),
		order("whatever", 10, nil),
		order("", 10, nil),
	)

	summary := Aggregate(orders, nil, nil, nil).Summary()

	unknown := summary.CountGenerated - summary.CountPaid - summary.CountPending - summary.AbandonedCount
	assert.Equal(t, 6, summary.CountGenerated)
	assert.Equal(t, 2, unknown)
}

func TestAggregateCostOfGoods(t *testing.T) {
	paid := order("PAID", 300, strPtr("card"),
		model.OrderItem{CostPrice: decimal.NewFromInt(20), Quantity: 2},
		model.OrderItem{CostPrice: decimal.NewFromInt(10), Quantity: 1},
	)
	// Cost prices on non-paid orders never reach cost-of-goods
	pending := order("PENDING", 300, nil,
		model.OrderItem{CostPrice: decimal.NewFromInt(99), Quantity: 9},
	)

	summary := Aggregate(records(paid, pending), nil, nil, nil).Summary()

	assert.Equal(t, 50.0, summary.TotalCostOfGoods)
}

func TestAggregateFixedExpensesAndDerived(t *testing.T) {
	orders := records(order("PAID", 1000, strPtr("boleto")))
	expenses := []model.FixedExpense{
		{Description: "Rent", Amount: decimal.NewFromInt(300)},
		{Description: "Tools", Amount: decimal.NewFromInt(100)},
	}

	summary := Aggregate(orders, nil, nil, expenses).Summary()

	// totalExpenses = 400, netProfit = 600
	assert.Equal(t, 400.0, summary.TotalFixedExpenses)
	assert.Equal(t, 600.0, summary.NetProfit)
	assert.Equal(t, 60.0, summary.Margin)
	assert.Equal(t, 150.0, summary.ROI) // 600/400*100
	assert.Equal(t, 1000.0, summary.BoletoPaidValue)
}

func TestAggregateEmptyWindow(t *testing.T) {
	summary := Aggregate(nil, nil, nil, nil).Summary()

	assert.Equal(t, 0, summary.CountGenerated)
	assert.Equal(t, 0.0, summary.TotalGenerated)
	assert.Equal(t, 0.0, summary.Margin)
	assert.Equal(t, 0.0, summary.ROI)
	assert.Equal(t, 0.0, summary.TicketAverage)
}

func TestAggregateNeverProducesNaNOrInf(t *testing.T) {
	// Expenses without any paid revenue: margin guard must hold
	expenses := []model.FixedExpense{{Amount: decimal.NewFromInt(500)}}
	summary := Aggregate(nil, nil, nil, expenses).Summary()

	assert.Equal(t, 0.0, summary.Margin)
	assert.Equal(t, -500.0, summary.NetProfit)
	for _, v := range []float64{summary.Margin, summary.ROI, summary.TicketAverage, summary.NetProfit} {
		assert.False(t, math.IsNaN(v) || math.IsInf(v, 0))
	}
}

func TestAggregateOrderIndependence(t *testing.T) {
	orders := records(
		order("PAID", 123.45, strPtr("pix")),
		order("PAID", 67.89, strPtr("boleto")),
		order("SHIPPED", 10, strPtr("credit_card")),
		order("PENDING", 55, nil),
		order("CANCELED", 30, nil),
		order("REFUNDED", 5, nil),
	)
	fees := []model.Fee{
		{Type: model.FeeTypePercentage, Value: decimal.NewFromFloat(4.99)},
		{Type: model.FeeTypeFixed, Value: decimal.NewFromFloat(0.4)},
	}
	taxes := []model.Tax{{Rate: decimal.NewFromFloat(8.5)}}

	want := Aggregate(orders, fees, taxes, nil).Summary()

	rng := rand.New(rand.NewSource(42))
	for i := 0; i < 10; i++ {
		shuffled := make([]OrderRecord, len(orders))
		copy(shuffled, orders)
		rng.Shuffle(len(shuffled), func(a, b int) {
			shuffled[a], shuffled[b] = shuffled[b], shuffled[a]
		})

		got := Aggregate(shuffled, fees, taxes, nil).Summary()
		require.Equal(t, want, got)
	}
}

func TestAggregateIdempotent(t *testing.T) {
	orders := records(
		order("PAID", 250, strPtr("pix")),
		order("PENDING", 99.9, nil),
	)
	fees := []model.Fee{{Type: model.FeeTypePercentage, Value: decimal.NewFromInt(3)}}

	first := Aggregate(orders, fees, nil, nil).Summary()
	second := Aggregate(orders, fees, nil, nil).Summary()

	assert.Equal(t, first, second)
}

func TestTotalsMergeMatchesWholePass(t *testing.T) {
	all := records(
		order("PAID", 100, strPtr("pix")),
		order("PAID", 200, strPtr("boleto")),
		order("PENDING", 50, nil),
		order("CANCELED", 25, nil),
	)
	fees := []model.Fee{{Type: model.FeeTypeFixed, Value: decimal.NewFromInt(1)}}
	taxes := []model.Tax{{Rate: decimal.NewFromInt(10)}}
	expenses := []model.FixedExpense{{Amount: decimal.NewFromInt(30)}}

	whole := Aggregate(all, fees, taxes, expenses).Summary()

	left := Aggregate(all[:2], fees, taxes, expenses)
	right := Aggregate(all[2:], fees, taxes, nil)
	chunked := left.Merge(right).Summary()

	assert.Equal(t, whole, chunked)
}
