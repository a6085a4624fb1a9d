package controllers

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/tayyabriaz60/Cloth-Product/models"
	"github.com/tayyabriaz60/Cloth-Product/service"

	"github.com/gin-gonic/gin"
	"github.com/shopspring/decimal"
)

type stubInventoryService struct {
	item   *models.Inventory
	status []service.InventoryStatusRow
	simple []service.InventorySimpleRow
	err    error
	got    *service.AddStockInput
}

func (s *stubInventoryService) AddStock(_ context.Context, in service.AddStockInput) (*models.Inventory, error) {
	s.got = &in
	if s.err != nil {
		return nil, s.err
	}
	return s.item, nil
}

func (s *stubInventoryService) GetItem(_ context.Context, id uint) (*models.Inventory, error) {
	if s.err != nil {
		return nil, s.err
	}
	return s.item, nil
}

func (s *stubInventoryService) ListWithStatus(_ context.Context) ([]service.InventoryStatusRow, error) {
	return s.status, s.err
}

func (s *stubInventoryService) ListSimple(_ context.Context) ([]service.InventorySimpleRow, error) {
	return s.simple, s.err
}

func inventoryRouter(s service.InventoryService) *gin.Engine {
	gin.SetMode(gin.TestMode)
	r := gin.New()
	ct := NewInventoryController(s)
	r.POST("/add-stock", ct.AddStock)
	r.GET("/get-inventory", ct.GetInventory)
	r.GET("/get-inventory-simple", ct.GetInventorySimple)
	return r
}

func TestAddStockReturnsCreatedItem(t *testing.T) {
	stub := &stubInventoryService{item: &models.Inventory{
		ID:                1,
		CompanyName:       "Gul Ahmed",
		DesignCode:        "Design-101",
		TotalThans:        5,
		MetersPerThan:     decimal.NewFromInt(20),
		TotalMeters:       decimal.NewFromInt(100),
		CostPricePerMeter: decimal.NewFromInt(150),
		TotalStockValue:   decimal.NewFromInt(15000),
	}}
	r := inventoryRouter(stub)

	w := postJSON(t, r, "/add-stock",
		`{"company_name":"Gul Ahmed","design_code":"Design-101","total_thans":5,"meters_per_than":20,"cost_price_per_meter":150}`)

	if w.Code != http.StatusCreated {
		t.Fatalf("expected 201; got %d: %s", w.Code, w.Body.String())
	}
	var item models.Inventory
	if err := json.Unmarshal(w.Body.Bytes(), &item); err != nil {
		t.Fatalf("decode response: %v", err)
	}
	if !item.TotalStockValue.Equal(decimal.NewFromInt(15000)) {
		t.Fatalf("expected total_stock_value=15000; got %s", item.TotalStockValue)
	}
	if stub.got == nil || stub.got.TotalThans != 5 {
		t.Fatalf("input not forwarded: %+v", stub.got)
	}
}

func TestAddStockRequiresCompanyAndDesign(t *testing.T) {
	stub := &stubInventoryService{}
	r := inventoryRouter(stub)

	w := postJSON(t, r, "/add-stock", `{"total_thans":5,"meters_per_than":20,"cost_price_per_meter":150}`)

	if w.Code != http.StatusBadRequest {
		t.Fatalf("expected 400; got %d", w.Code)
	}
	if stub.got != nil {
		t.Fatal("invalid payload must not reach the service")
	}
}

func TestGetInventoryReturnsStatusRows(t *testing.T) {
	stub := &stubInventoryService{status: []service.InventoryStatusRow{
		{
			ID:              1,
			DesignCode:      "Design-101",
			TotalMeters:     decimal.NewFromInt(100),
			SoldMeters:      decimal.NewFromInt(95),
			RemainingMeters: decimal.NewFromInt(5),
			LowStock:        true,
		},
	}}
	r := inventoryRouter(stub)

	req := httptest.NewRequest(http.MethodGet, "/get-inventory", nil)
	w := httptest.NewRecorder()
	r.ServeHTTP(w, req)

	if w.Code != http.StatusOK {
		t.Fatalf("expected 200; got %d", w.Code)
	}
	var rows []service.InventoryStatusRow
	if err := json.Unmarshal(w.Body.Bytes(), &rows); err != nil {
		t.Fatalf("decode response: %v", err)
	}
	if len(rows) != 1 || !rows[0].LowStock {
		t.Fatalf("unexpected rows: %+v", rows)
	}
}

func TestGetInventorySimpleMapsStorageError(t *testing.T) {
	stub := &stubInventoryService{err: &models.StorageError{Op: "list inventory", Err: context.DeadlineExceeded}}
	r := inventoryRouter(stub)

	req := httptest.NewRequest(http.MethodGet, "/get-inventory-simple", nil)
	w := httptest.NewRecorder()
	r.ServeHTTP(w, req)

	if w.Code != http.StatusInternalServerError {
		t.Fatalf("expected 500; got %d", w.Code)
	}
}
