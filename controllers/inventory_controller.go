package controllers

import (
	"net/http"

	"github.com/tayyabriaz60/Cloth-Product/service"
	"github.com/tayyabriaz60/Cloth-Product/utils"

	"github.com/gin-gonic/gin"
	"github.com/shopspring/decimal"
)

type InventoryController struct {
	inventory service.InventoryService
}

func NewInventoryController(inventory service.InventoryService) *InventoryController {
	return &InventoryController{inventory: inventory}
}

type AddStockRequest struct {
	CompanyName       string          `json:"company_name" binding:"required"`
	DesignCode        string          `json:"design_code" binding:"required"`
	TotalThans        int             `json:"total_thans"`
	MetersPerThan     decimal.Decimal `json:"meters_per_than"`
	CostPricePerMeter decimal.Decimal `json:"cost_price_per_meter"`
}

func (ct *InventoryController) AddStock(c *gin.Context) {
	var req AddStockRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		utils.BadRequest(c, err)
		return
	}

	item, err := ct.inventory.AddStock(c.Request.Context(), service.AddStockInput{
		CompanyName:       req.CompanyName,
		DesignCode:        req.DesignCode,
		TotalThans:        req.TotalThans,
		MetersPerThan:     req.MetersPerThan,
		CostPricePerMeter: req.CostPricePerMeter,
	})
	if err != nil {
		utils.RespondError(c, err)
		return
	}
	c.JSON(http.StatusCreated, item)
}

func (ct *InventoryController) GetInventory(c *gin.Context) {
	rows, err := ct.inventory.ListWithStatus(c.Request.Context())
	if err != nil {
		utils.RespondError(c, err)
		return
	}
	c.JSON(http.StatusOK, rows)
}

func (ct *InventoryController) GetInventorySimple(c *gin.Context) {
	rows, err := ct.inventory.ListSimple(c.Request.Context())
	if err != nil {
		utils.RespondError(c, err)
		return
	}
	c.JSON(http.StatusOK, rows)
}
