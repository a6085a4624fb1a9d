package service

import (
	"context"
	"errors"
	"time"

	"github.com/tayyabriaz60/Cloth-Product/models"

	"github.com/shopspring/decimal"
	"gorm.io/gorm"
)

type AddStockInput struct {
	CompanyName       string
	DesignCode        string
	TotalThans        int
	MetersPerThan     decimal.Decimal
	CostPricePerMeter decimal.Decimal
}

func (in *AddStockInput) Validate() error {
	if in.TotalThans <= 0 {
		return &models.ValidationError{Field: "total_thans", Reason: "must be greater than zero"}
	}
	if !in.MetersPerThan.IsPositive() {
		return &models.ValidationError{Field: "meters_per_than", Reason: "must be greater than zero"}
	}
	if in.CostPricePerMeter.IsNegative() {
		return &models.ValidationError{Field: "cost_price_per_meter", Reason: "must not be negative"}
	}
	return nil
}

// InventoryStatusRow is one item joined against the sales ledger.
type InventoryStatusRow struct {
	ID                  uint            `json:"id"`
	CompanyName         string          `json:"company_name"`
	DesignCode          string          `json:"design_code"`
	TotalThans          int             `json:"total_thans"`
	MetersPerThan       decimal.Decimal `json:"meters_per_than"`
	TotalMeters         decimal.Decimal `json:"total_meters"`
	CostPricePerMeter   decimal.Decimal `json:"cost_price_per_meter"`
	TotalStockValue     decimal.Decimal `json:"total_stock_value"`
	CreatedAt           time.Time       `json:"created_at"`
	SoldMeters          decimal.Decimal `json:"sold_meters"`
	RemainingMeters     decimal.Decimal `json:"remaining_meters"`
	RemainingStockValue decimal.Decimal `json:"remaining_stock_value"`
	LowStock            bool            `json:"low_stock"`
}

// InventorySimpleRow is the reduced projection used by selection dropdowns.
type InventorySimpleRow struct {
	ID              uint            `json:"id"`
	CompanyName     string          `json:"company_name"`
	DesignCode      string          `json:"design_code"`
	RemainingMeters decimal.Decimal `json:"remaining_meters"`
}

type InventoryService interface {
	AddStock(ctx context.Context, in AddStockInput) (*models.Inventory, error)
	GetItem(ctx context.Context, id uint) (*models.Inventory, error)
	ListWithStatus(ctx context.Context) ([]InventoryStatusRow, error)
	ListSimple(ctx context.Context) ([]InventorySimpleRow, error)
}

type inventoryService struct{ db *gorm.DB }

func NewInventoryService(db *gorm.DB) InventoryService { return &inventoryService{db: db} }

func (s *inventoryService) AddStock(ctx context.Context, in AddStockInput) (*models.Inventory, error) {
	if err := in.Validate(); err != nil {
		return nil, err
	}

	item := &models.Inventory{
		CompanyName:       in.CompanyName,
		DesignCode:        in.DesignCode,
		TotalThans:        in.TotalThans,
		MetersPerThan:     in.MetersPerThan,
		CostPricePerMeter: in.CostPricePerMeter,
	}
	item.Derive()

	if err := s.db.WithContext(ctx).Create(item).Error; err != nil {
		return nil, wrapStorage("insert inventory", err)
	}
	return item, nil
}

func (s *inventoryService) GetItem(ctx context.Context, id uint) (*models.Inventory, error) {
	var item models.Inventory
	if err := s.db.WithContext(ctx).First(&item, id).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, &models.NotFoundError{Resource: "inventory", ID: id}
		}
		return nil, wrapStorage("load inventory", err)
	}
	return &item, nil
}

// soldJoin folds the ledger to one sold-meters figure per inventory item.
const soldJoin = `LEFT JOIN (
	SELECT inventory_id, SUM(kameez_meters + shalwar_meters) AS sold_meters
	FROM sales_records
	WHERE inventory_id IS NOT NULL
	GROUP BY inventory_id
) s ON s.inventory_id = inventories.id`

func (s *inventoryService) ListWithStatus(ctx context.Context) ([]InventoryStatusRow, error) {
	var rows []InventoryStatusRow
	err := s.db.WithContext(ctx).
		Table("inventories").
		Select(`
			inventories.id,
			inventories.company_name,
			inventories.design_code,
			inventories.total_thans,
			inventories.meters_per_than,
			inventories.total_meters,
			inventories.cost_price_per_meter,
			inventories.total_stock_value,
			inventories.created_at,
			COALESCE(s.sold_meters, 0) AS sold_meters,
			inventories.total_meters - COALESCE(s.sold_meters, 0) AS remaining_meters,
			(inventories.total_meters - COALESCE(s.sold_meters, 0)) * inventories.cost_price_per_meter AS remaining_stock_value
		`).
		Joins(soldJoin).
		Order("inventories.created_at ASC, inventories.id ASC").
		Scan(&rows).Error
	if err != nil {
		return nil, wrapStorage("list inventory status", err)
	}
	for i := range rows {
		rows[i].LowStock = rows[i].RemainingMeters.LessThan(models.LowStockThresholdMeters)
	}
	return rows, nil
}

func (s *inventoryService) ListSimple(ctx context.Context) ([]InventorySimpleRow, error) {
	var rows []InventorySimpleRow
	err := s.db.WithContext(ctx).
		Table("inventories").
		Select(`
			inventories.id,
			inventories.company_name,
			inventories.design_code,
			inventories.total_meters - COALESCE(s.sold_meters, 0) AS remaining_meters
		`).
		Joins(soldJoin).
		Where("inventories.total_meters - COALESCE(s.sold_meters, 0) > 0").
		Order("inventories.created_at ASC, inventories.id ASC").
		Scan(&rows).Error
	if err != nil {
		return nil, wrapStorage("list inventory", err)
	}
	return rows, nil
}
