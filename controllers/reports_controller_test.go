package controllers

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/tayyabriaz60/Cloth-Product/service"

	"github.com/gin-gonic/gin"
	"github.com/shopspring/decimal"
)

type stubReportService struct {
	rows []service.ProfitRow
	err  error
}

func (s *stubReportService) ProfitLoss(_ context.Context) ([]service.ProfitRow, error) {
	return s.rows, s.err
}

func TestGetProfitLossReturnsRows(t *testing.T) {
	gin.SetMode(gin.TestMode)
	stub := &stubReportService{rows: []service.ProfitRow{
		{
			DesignCode:    "Design-101",
			MetersSold:    decimal.NewFromInt(10),
			TotalCost:     decimal.NewFromInt(1500),
			TotalRevenue:  decimal.NewFromInt(2200),
			Profit:        decimal.NewFromInt(700),
			ProfitPercent: decimal.RequireFromString("46.67"),
		},
	}}
	r := gin.New()
	r.GET("/get-profit-loss", NewReportsController(stub).GetProfitLoss)

	req := httptest.NewRequest(http.MethodGet, "/get-profit-loss", nil)
	w := httptest.NewRecorder()
	r.ServeHTTP(w, req)

	if w.Code != http.StatusOK {
		t.Fatalf("expected 200; got %d", w.Code)
	}
	var rows []service.ProfitRow
	if err := json.Unmarshal(w.Body.Bytes(), &rows); err != nil {
		t.Fatalf("decode response: %v", err)
	}
	if len(rows) != 1 || !rows[0].Profit.Equal(decimal.NewFromInt(700)) {
		t.Fatalf("unexpected rows: %+v", rows)
	}
}
