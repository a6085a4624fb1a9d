package controllers

import (
	"net/http"

	"github.com/tayyabriaz60/Cloth-Product/service"
	"github.com/tayyabriaz60/Cloth-Product/utils"

	"github.com/gin-gonic/gin"
)

type ReportsController struct {
	reports service.ReportService
}

func NewReportsController(reports service.ReportService) *ReportsController {
	return &ReportsController{reports: reports}
}

func (ct *ReportsController) GetProfitLoss(c *gin.Context) {
	rows, err := ct.reports.ProfitLoss(c.Request.Context())
	if err != nil {
		utils.RespondError(c, err)
		return
	}
	c.JSON(http.StatusOK, rows)
}
