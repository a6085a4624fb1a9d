package service

import (
	"testing"

	"github.com/shopspring/decimal"
)

func TestMergeProfitRowsComputesProfitAndPercent(t *testing.T) {
	costs := []designCostRow{
		{DesignCode: "Design-101", MetersSold: decimal.NewFromInt(10), TotalCost: decimal.NewFromInt(1500)},
	}
	revenues := []designRevenueRow{
		{DesignCode: "Design-101", TotalRevenue: decimal.NewFromInt(2200)},
	}

	rows := mergeProfitRows(costs, revenues)
	if len(rows) != 1 {
		t.Fatalf("expected 1 row; got %d", len(rows))
	}
	row := rows[0]
	if !row.Profit.Equal(decimal.NewFromInt(700)) {
		t.Fatalf("expected profit=700; got %s", row.Profit)
	}
	if !row.ProfitPercent.Equal(decimal.RequireFromString("46.67")) {
		t.Fatalf("expected profit_percent=46.67; got %s", row.ProfitPercent)
	}
}

func TestMergeProfitRowsZeroCostReportsZeroPercent(t *testing.T) {
	costs := []designCostRow{
		{DesignCode: "Design-201", MetersSold: decimal.Zero, TotalCost: decimal.Zero},
	}
	revenues := []designRevenueRow{
		{DesignCode: "Design-201", TotalRevenue: decimal.NewFromInt(500)},
	}

	rows := mergeProfitRows(costs, revenues)
	if len(rows) != 1 {
		t.Fatalf("expected 1 row; got %d", len(rows))
	}
	if !rows[0].Profit.Equal(decimal.NewFromInt(500)) {
		t.Fatalf("expected profit=500; got %s", rows[0].Profit)
	}
	if !rows[0].ProfitPercent.IsZero() {
		t.Fatalf("expected profit_percent=0 when cost is 0; got %s", rows[0].ProfitPercent)
	}
}

func TestMergeProfitRowsSortsAndDropsUnstockedDesigns(t *testing.T) {
	costs := []designCostRow{
		{DesignCode: "Design-300", TotalCost: decimal.NewFromInt(100)},
		{DesignCode: "Design-100", TotalCost: decimal.NewFromInt(200)},
	}
	revenues := []designRevenueRow{
		{DesignCode: "Design-999", TotalRevenue: decimal.NewFromInt(50)},
		{DesignCode: "", TotalRevenue: decimal.NewFromInt(75)},
		{DesignCode: "Design-300", TotalRevenue: decimal.NewFromInt(150)},
	}

	rows := mergeProfitRows(costs, revenues)
	if len(rows) != 2 {
		t.Fatalf("expected 2 rows; got %d", len(rows))
	}
	if rows[0].DesignCode != "Design-100" || rows[1].DesignCode != "Design-300" {
		t.Fatalf("rows not sorted by design code: %q, %q", rows[0].DesignCode, rows[1].DesignCode)
	}
	if !rows[0].TotalRevenue.IsZero() {
		t.Fatalf("expected zero revenue for Design-100; got %s", rows[0].TotalRevenue)
	}
	if !rows[1].Profit.Equal(decimal.NewFromInt(50)) {
		t.Fatalf("expected profit=50 for Design-300; got %s", rows[1].Profit)
	}
}
