package model

import (
	"time"
)

// FinanceSummary is the derived result of one aggregation run over a date
// window. It is computed fresh on every call, never persisted or cached.
// Monetary fields are plain currency-unit numbers for the dashboard UI.
type FinanceSummary struct {
	TotalGenerated float64 `json:"totalGenerated"`
	CountGenerated int     `json:"countGenerated"`
	TotalPaid      float64 `json:"totalPaid"`
	CountPaid      int     `json:"countPaid"`
	TotalPending   float64 `json:"totalPending"`
	CountPending   int     `json:"countPending"`

	CardPaidValue   float64 `json:"cardPaidValue"`
	CardPaidCount   int     `json:"cardPaidCount"`
	PixPaidValue    float64 `json:"pixPaidValue"`
	PixPaidCount    int     `json:"pixPaidCount"`
	BoletoPaidValue float64 `json:"boletoPaidValue"`
	BoletoPaidCount int     `json:"boletoPaidCount"`

	NetProfit float64 `json:"netProfit"`
	Margin    float64 `json:"margin"`
	ROI       float64 `json:"roi"`
	AdSpend   float64 `json:"adSpend"`

	TotalCostOfGoods   float64        `json:"totalCostOfGoods"`
	TotalGatewayFees   float64        `json:"totalGatewayFees"`
	TotalTaxAmount     float64        `json:"totalTaxAmount"`
	TotalFixedExpenses float64        `json:"totalFixedExpenses"`
	FixedExpensesList  []FixedExpense `json:"fixedExpensesList"`

	TicketAverage  float64 `json:"ticketAverage"`
	TotalShipping  float64 `json:"totalShipping"`
	TotalDiscounts float64 `json:"totalDiscounts"`

	AbandonedCount int     `json:"abandonedCount"`
	AbandonedValue float64 `json:"abandonedValue"`

	TimeRangeStartDate time.Time `json:"timeRangeStartDate"`
	TimeRangeEndDate   time.Time `json:"timeRangeEndDate"`
}
