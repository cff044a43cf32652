package finance

import (
	"backend/internal/model"

	"github.com/shopspring/decimal"
)

// OrderRecord is the decoded, engine-facing view of an order: status and
// payment method resolved to closed enums, cost of goods precomputed.
type OrderRecord struct {
	Total       decimal.Decimal
	Bucket      Bucket
	Method      Method
	CostOfGoods decimal.Decimal
}

// NewOrderRecord decodes a raw order into an OrderRecord.
func NewOrderRecord(o model.Order) OrderRecord {
	return OrderRecord{
		Total:       o.Total,
		Bucket:      ClassifyStatus(o.Status),
		Method:      ResolveMethod(o.PaymentMethod),
		CostOfGoods: o.CostOfGoods(),
	}
}

// Totals holds the running sums of one aggregation pass. It is a value type:
// folds produce new Totals, never mutate shared state, so two runs over the
// same snapshot (in any order) yield identical results.
type Totals struct {
	TotalGenerated decimal.Decimal
	CountGenerated int
	TotalPaid      decimal.Decimal
	CountPaid      int
	TotalPending   decimal.Decimal
	CountPending   int
	AbandonedValue decimal.Decimal
	AbandonedCount int

	CardPaidValue   decimal.Decimal
	CardPaidCount   int
	PixPaidValue    decimal.Decimal
	PixPaidCount    int
	BoletoPaidValue decimal.Decimal
	BoletoPaidCount int

	CostOfGoods   decimal.Decimal
	GatewayFees   decimal.Decimal
	TaxAmount     decimal.Decimal
	FixedExpenses decimal.Decimal
}

// Aggregate folds orders, fee/tax rules and fixed expenses into Totals.
// Single pass, commutative: the result does not depend on slice order.
func Aggregate(records []OrderRecord, fees []model.Fee, taxes []model.Tax, expenses []model.FixedExpense) Totals {
	var t Totals

	for _, r := range records {
		t.TotalGenerated = t.TotalGenerated.Add(r.Total)
		t.CountGenerated++

		switch r.Bucket {
		case BucketPaid:
			t.TotalPaid = t.TotalPaid.Add(r.Total)
			t.CountPaid++
			t.CostOfGoods = t.CostOfGoods.Add(r.CostOfGoods)
			t.GatewayFees = t.GatewayFees.Add(FeeDeduction(r.Total, fees))
			t.TaxAmount = t.TaxAmount.Add(TaxDeduction(r.Total, taxes))

			switch r.Method {
			case MethodPix:
				t.PixPaidValue = t.PixPaidValue.Add(r.Total)
				t.PixPaidCount++
			case MethodBoleto:
				t.BoletoPaidValue = t.BoletoPaidValue.Add(r.Total)
				t.BoletoPaidCount++
			default:
				t.CardPaidValue = t.CardPaidValue.Add(r.Total)
				t.CardPaidCount++
			}
		case BucketPending:
			t.TotalPending = t.TotalPending.Add(r.Total)
			t.CountPending++
		case BucketAbandoned:
			t.AbandonedValue = t.AbandonedValue.Add(r.Total)
			t.AbandonedCount++
		}
	}

	for _, e := range expenses {
		t.FixedExpenses = t.FixedExpenses.Add(e.Amount)
	}

	return t
}

// Merge combines two partial Totals, allowing chunked aggregation over order
// shards to stand in for a single whole-slice pass.
func (t Totals) Merge(o Totals) Totals {
	return Totals{
		TotalGenerated: t.TotalGenerated.Add(o.TotalGenerated),
		CountGenerated: t.CountGenerated + o.CountGenerated,
		TotalPaid:      t.TotalPaid.Add(o.TotalPaid),
		CountPaid:      t.CountPaid + o.CountPaid,
		TotalPending:   t.TotalPending.Add(o.TotalPending),
		CountPending:   t.CountPending + o.CountPending,
		AbandonedValue: t.AbandonedValue.Add(o.AbandonedValue),
		AbandonedCount: t.AbandonedCount + o.AbandonedCount,

		CardPaidValue:   t.CardPaidValue.Add(o.CardPaidValue),
		CardPaidCount:   t.CardPaidCount + o.CardPaidCount,
		PixPaidValue:    t.PixPaidValue.Add(o.PixPaidValue),
		PixPaidCount:    t.PixPaidCount + o.PixPaidCount,
		BoletoPaidValue: t.BoletoPaidValue.Add(o.BoletoPaidValue),
		BoletoPaidCount: t.BoletoPaidCount + o.BoletoPaidCount,

		CostOfGoods:   t.CostOfGoods.Add(o.CostOfGoods),
		GatewayFees:   t.GatewayFees.Add(o.GatewayFees),
		TaxAmount:     t.TaxAmount.Add(o.TaxAmount),
		FixedExpenses: t.FixedExpenses.Add(o.FixedExpenses),
	}
}

// Summary derives the ratio metrics and converts to the UI-facing float
// shape. Every division is guarded: margin is 0 when there is no paid
// revenue, roi is 0 when there are no expenses, ticket average is 0 when
// there are no paid orders. Ad spend is not computed by this engine and is
// carried as 0, as are shipping and discounts.
func (t Totals) Summary() model.FinanceSummary {
	adSpend := decimal.Zero
	totalExpenses := t.CostOfGoods.Add(t.GatewayFees).Add(t.TaxAmount).Add(adSpend).Add(t.FixedExpenses)
	netProfit := t.TotalPaid.Sub(totalExpenses)

	margin := decimal.Zero
	if !t.TotalPaid.IsZero() {
		margin = netProfit.Div(t.TotalPaid).Mul(oneHundred)
	}

	roi := decimal.Zero
	if !totalExpenses.IsZero() {
		roi = netProfit.Div(totalExpenses).Mul(oneHundred)
	}

	ticketAverage := decimal.Zero
	if t.CountPaid > 0 {
		ticketAverage = t.TotalPaid.Div(decimal.NewFromInt(int64(t.CountPaid)))
	}

	return model.FinanceSummary{
		TotalGenerated: t.TotalGenerated.InexactFloat64(),
		CountGenerated: t.CountGenerated,
		TotalPaid:      t.TotalPaid.InexactFloat64(),
		CountPaid:      t.CountPaid,
		TotalPending:   t.TotalPending.InexactFloat64(),
		CountPending:   t.CountPending,

		CardPaidValue:   t.CardPaidValue.InexactFloat64(),
		CardPaidCount:   t.CardPaidCount,
		PixPaidValue:    t.PixPaidValue.InexactFloat64(),
		PixPaidCount:    t.PixPaidCount,
		BoletoPaidValue: t.BoletoPaidValue.InexactFloat64(),
		BoletoPaidCount: t.BoletoPaidCount,

		NetProfit: netProfit.InexactFloat64(),
		Margin:    margin.InexactFloat64(),
		ROI:       roi.InexactFloat64(),
		AdSpend:   adSpend.InexactFloat64(),

		TotalCostOfGoods:   t.CostOfGoods.InexactFloat64(),
		TotalGatewayFees:   t.GatewayFees.InexactFloat64(),
		TotalTaxAmount:     t.TaxAmount.InexactFloat64(),
		TotalFixedExpenses: t.FixedExpenses.InexactFloat64(),

		TicketAverage: ticketAverage.InexactFloat64(),

		AbandonedCount: t.AbandonedCount,
		AbandonedValue: t.AbandonedValue.InexactFloat64(),
	}
}
