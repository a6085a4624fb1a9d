package controllers

import (
	"net/http"

	"github.com/tayyabriaz60/Cloth-Product/service"
	"github.com/tayyabriaz60/Cloth-Product/utils"

	"github.com/gin-gonic/gin"
	"github.com/shopspring/decimal"
)

type BillingController struct {
	billing service.BillingService
}

func NewBillingController(billing service.BillingService) *BillingController {
	return &BillingController{billing: billing}
}

type CreateBillRequest struct {
	InventoryID   *uint           `json:"inventory_id"`
	CompanyName   *string         `json:"company_name"`
	DesignCode    *string         `json:"design_code"`
	KameezMeters  decimal.Decimal `json:"kameez_meters"`
	KameezRate    decimal.Decimal `json:"kameez_rate"`
	ShalwarMeters decimal.Decimal `json:"shalwar_meters"`
	ShalwarRate   decimal.Decimal `json:"shalwar_rate"`
}

func (ct *BillingController) CreateBill(c *gin.Context) {
	var req CreateBillRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		utils.BadRequest(c, err)
		return
	}

	rec, err := ct.billing.CreateBill(c.Request.Context(), service.CreateBillInput{
		InventoryID:   req.InventoryID,
		CompanyName:   req.CompanyName,
		DesignCode:    req.DesignCode,
		KameezMeters:  req.KameezMeters,
		KameezRate:    req.KameezRate,
		ShalwarMeters: req.ShalwarMeters,
		ShalwarRate:   req.ShalwarRate,
	})
	if err != nil {
		utils.RespondError(c, err)
		return
	}
	c.JSON(http.StatusCreated, rec)
}
