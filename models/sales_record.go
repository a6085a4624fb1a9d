package models

import (
	"time"

	"github.com/shopspring/decimal"
)

// SalesRecord is one committed bill: a kameez leg and a shalwar leg, each
// with its own meterage and rate. Records are append-only; together they are
// the audit trail of stock consumption.
//
// InventoryID is optional. When set, the sale consumes stock from that item;
// when absent the sale is recorded without stock tracking. A matching design
// code alone never links a sale to stock.
type SalesRecord struct {
	ID          uint       `gorm:"primaryKey" json:"id"`
	InventoryID *uint      `gorm:"index" json:"inventory_id"`
	Inventory   *Inventory `gorm:"foreignKey:InventoryID" json:"-"`

	// Denormalized at commit time so the bill stays readable even if the
	// inventory item is relabeled later.
	CompanyName *string `gorm:"size:255" json:"company_name"`
	DesignCode  *string `gorm:"size:100;index" json:"design_code"`

	KameezMeters decimal.Decimal `gorm:"type:decimal(12,2);not null" json:"kameez_meters"`
	KameezRate   decimal.Decimal `gorm:"type:decimal(12,2);not null" json:"kameez_rate"`
	KameezTotal  decimal.Decimal `gorm:"type:decimal(12,2);not null" json:"kameez_total"`

	ShalwarMeters decimal.Decimal `gorm:"type:decimal(12,2);not null" json:"shalwar_meters"`
	ShalwarRate   decimal.Decimal `gorm:"type:decimal(12,2);not null" json:"shalwar_rate"`
	ShalwarTotal  decimal.Decimal `gorm:"type:decimal(12,2);not null" json:"shalwar_total"`

	GrandTotal decimal.Decimal `gorm:"type:decimal(12,2);not null" json:"grand_total"`
	CreatedAt  time.Time       `json:"created_at"`
}
