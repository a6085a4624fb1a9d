package service

import (
	"context"
	"sort"

	"github.com/shopspring/decimal"
	"gorm.io/gorm"
)

// ProfitRow is the per-design profitability summary. Cost basis is the
// acquisition cost of the sold meters, never the sale rate.
type ProfitRow struct {
	DesignCode    string          `json:"design_code"`
	MetersSold    decimal.Decimal `json:"meters_sold"`
	TotalCost     decimal.Decimal `json:"total_cost"`
	TotalRevenue  decimal.Decimal `json:"total_revenue"`
	Profit        decimal.Decimal `json:"profit"`
	ProfitPercent decimal.Decimal `json:"profit_percent"`
}

type ReportService interface {
	ProfitLoss(ctx context.Context) ([]ProfitRow, error)
}

type reportService struct{ db *gorm.DB }

func NewReportService(db *gorm.DB) ReportService { return &reportService{db: db} }

type designCostRow struct {
	DesignCode string
	MetersSold decimal.Decimal
	TotalCost  decimal.Decimal
}

type designRevenueRow struct {
	DesignCode   string
	TotalRevenue decimal.Decimal
}

// ProfitLoss aggregates cost by the inventory items' design code and revenue
// by the sale's design code (resolved through inventory_id when the sale left
// it blank), then joins the two in memory. Recomputed on every call; nothing
// is cached.
func (s *reportService) ProfitLoss(ctx context.Context) ([]ProfitRow, error) {
	var costs []designCostRow
	if err := s.db.WithContext(ctx).
		Table("inventories").
		Select(`
			inventories.design_code,
			COALESCE(SUM(sr.kameez_meters + sr.shalwar_meters), 0) AS meters_sold,
			COALESCE(SUM((sr.kameez_meters + sr.shalwar_meters) * inventories.cost_price_per_meter), 0) AS total_cost
		`).
		Joins("LEFT JOIN sales_records sr ON sr.inventory_id = inventories.id").
		Group("inventories.design_code").
		Scan(&costs).Error; err != nil {
		return nil, wrapStorage("aggregate design costs", err)
	}

	var revenues []designRevenueRow
	if err := s.db.WithContext(ctx).
		Table("sales_records").
		Select(`
			COALESCE(sales_records.design_code, inventories.design_code, '') AS design_code,
			SUM(sales_records.grand_total) AS total_revenue
		`).
		Joins("LEFT JOIN inventories ON inventories.id = sales_records.inventory_id").
		Group("COALESCE(sales_records.design_code, inventories.design_code, '')").
		Scan(&revenues).Error; err != nil {
		return nil, wrapStorage("aggregate design revenue", err)
	}

	return mergeProfitRows(costs, revenues), nil
}

// mergeProfitRows joins the two aggregates on design code. Revenue under a
// design code the store never carried is dropped: the report covers stocked
// designs only.
func mergeProfitRows(costs []designCostRow, revenues []designRevenueRow) []ProfitRow {
	revByDesign := make(map[string]decimal.Decimal, len(revenues))
	for _, r := range revenues {
		if r.DesignCode == "" {
			continue
		}
		revByDesign[r.DesignCode] = revByDesign[r.DesignCode].Add(r.TotalRevenue)
	}

	rows := make([]ProfitRow, 0, len(costs))
	for _, cost := range costs {
		revenue := revByDesign[cost.DesignCode]
		profit := revenue.Sub(cost.TotalCost)
		percent := decimal.Zero
		if cost.TotalCost.IsPositive() {
			percent = profit.Div(cost.TotalCost).Mul(decimal.NewFromInt(100)).Round(2)
		}
		rows = append(rows, ProfitRow{
			DesignCode:    cost.DesignCode,
			MetersSold:    cost.MetersSold,
			TotalCost:     cost.TotalCost,
			TotalRevenue:  revenue,
			Profit:        profit,
			ProfitPercent: percent,
		})
	}

	sort.Slice(rows, func(i, j int) bool { return rows[i].DesignCode < rows[j].DesignCode })
	return rows
}
