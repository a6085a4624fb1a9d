package service

import (
	"context"
	"errors"

	"github.com/tayyabriaz60/Cloth-Product/models"

	"github.com/shopspring/decimal"
	"gorm.io/gorm"
	"gorm.io/gorm/clause"
)

type CreateBillInput struct {
	InventoryID   *uint
	CompanyName   *string
	DesignCode    *string
	KameezMeters  decimal.Decimal
	KameezRate    decimal.Decimal
	ShalwarMeters decimal.Decimal
	ShalwarRate   decimal.Decimal
}

func (in *CreateBillInput) Validate() error {
	fields := []struct {
		name  string
		value decimal.Decimal
	}{
		{"kameez_meters", in.KameezMeters},
		{"kameez_rate", in.KameezRate},
		{"shalwar_meters", in.ShalwarMeters},
		{"shalwar_rate", in.ShalwarRate},
	}
	for _, f := range fields {
		if f.value.IsNegative() {
			return &models.ValidationError{Field: f.name, Reason: "must not be negative"}
		}
	}
	if !in.KameezMeters.IsPositive() && !in.ShalwarMeters.IsPositive() {
		return &models.ValidationError{Reason: "at least one of kameez_meters or shalwar_meters must be greater than zero"}
	}
	return nil
}

// Totals returns the kameez total, shalwar total and grand total.
func (in *CreateBillInput) Totals() (kameez, shalwar, grand decimal.Decimal) {
	kameez = in.KameezMeters.Mul(in.KameezRate)
	shalwar = in.ShalwarMeters.Mul(in.ShalwarRate)
	return kameez, shalwar, kameez.Add(shalwar)
}

// RequestedMeters is the total meterage the bill would consume from stock.
func (in *CreateBillInput) RequestedMeters() decimal.Decimal {
	return in.KameezMeters.Add(in.ShalwarMeters)
}

type BillingService interface {
	CreateBill(ctx context.Context, in CreateBillInput) (*models.SalesRecord, error)
}

type billingService struct{ db *gorm.DB }

func NewBillingService(db *gorm.DB) BillingService { return &billingService{db: db} }

// CreateBill validates the request, and commits the ledger append together
// with the stock check in one transaction. When the bill draws on an
// inventory item, the item row is locked FOR UPDATE across the whole
// check-then-append so two concurrent bills can never oversell it.
func (s *billingService) CreateBill(ctx context.Context, in CreateBillInput) (*models.SalesRecord, error) {
	if err := in.Validate(); err != nil {
		return nil, err
	}
	kameezTotal, shalwarTotal, grandTotal := in.Totals()

	rec := &models.SalesRecord{
		InventoryID:   in.InventoryID,
		CompanyName:   in.CompanyName,
		DesignCode:    in.DesignCode,
		KameezMeters:  in.KameezMeters,
		KameezRate:    in.KameezRate,
		KameezTotal:   kameezTotal,
		ShalwarMeters: in.ShalwarMeters,
		ShalwarRate:   in.ShalwarRate,
		ShalwarTotal:  shalwarTotal,
		GrandTotal:    grandTotal,
	}

	err := s.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		if in.InventoryID != nil {
			var item models.Inventory
			if err := tx.Clauses(clause.Locking{Strength: "UPDATE"}).
				First(&item, *in.InventoryID).Error; err != nil {
				if errors.Is(err, gorm.ErrRecordNotFound) {
					return &models.NotFoundError{Resource: "inventory", ID: *in.InventoryID}
				}
				return wrapStorage("load inventory", err)
			}

			var sold decimal.Decimal
			row := tx.Model(&models.SalesRecord{}).
				Where("inventory_id = ?", item.ID).
				Select("COALESCE(SUM(kameez_meters + shalwar_meters), 0)").
				Row()
			if err := row.Scan(&sold); err != nil {
				return wrapStorage("sum sold meters", err)
			}

			requested := in.RequestedMeters()
			remaining := item.TotalMeters.Sub(sold)
			if requested.GreaterThan(remaining) {
				return &models.InsufficientStockError{
					InventoryID: item.ID,
					Requested:   requested,
					Available:   remaining,
				}
			}

			if rec.CompanyName == nil {
				name := item.CompanyName
				rec.CompanyName = &name
			}
			if rec.DesignCode == nil {
				code := item.DesignCode
				rec.DesignCode = &code
			}
		}

		if err := tx.Create(rec).Error; err != nil {
			return wrapStorage("insert sales record", err)
		}
		return nil
	})
	if err != nil {
		return nil, err
	}
	return rec, nil
}
