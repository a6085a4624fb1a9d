package models

import (
	"time"

	"github.com/shopspring/decimal"
)

// LowStockThresholdMeters flags an item once its remaining meterage drops
// below this value.
var LowStockThresholdMeters = decimal.NewFromInt(10)

// Inventory is one stock entry of bolt goods: a number of thans (rolls)
// received from a company under a design code. Rows are never updated or
// deleted; consumed stock is derived from the sales ledger.
type Inventory struct {
	ID                uint            `gorm:"primaryKey" json:"id"`
	CompanyName       string          `gorm:"size:255;not null" json:"company_name"`
	DesignCode        string          `gorm:"size:100;not null;index" json:"design_code"`
	TotalThans        int             `gorm:"not null" json:"total_thans"`
	MetersPerThan     decimal.Decimal `gorm:"type:decimal(12,2);not null" json:"meters_per_than"`
	TotalMeters       decimal.Decimal `gorm:"type:decimal(12,2);not null" json:"total_meters"`
	CostPricePerMeter decimal.Decimal `gorm:"type:decimal(12,2);not null" json:"cost_price_per_meter"`
	TotalStockValue   decimal.Decimal `gorm:"type:decimal(12,2);not null" json:"total_stock_value"`
	CreatedAt         time.Time       `json:"created_at"`
}

// Derive recomputes the two derived columns from their source fields.
// Called once before insert; the row is immutable afterwards.
func (i *Inventory) Derive() {
	i.TotalMeters = decimal.NewFromInt(int64(i.TotalThans)).Mul(i.MetersPerThan)
	i.TotalStockValue = i.TotalMeters.Mul(i.CostPricePerMeter)
}
