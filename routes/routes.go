package routes

import (
	"net/http"

	"github.com/tayyabriaz60/Cloth-Product/controllers"

	"github.com/gin-gonic/gin"
)

type Controllers struct {
	Inventory *controllers.InventoryController
	Billing   *controllers.BillingController
	Reports   *controllers.ReportsController
}

func SetupRoutes(r *gin.Engine, ct Controllers) {
	r.POST("/add-stock", ct.Inventory.AddStock)
	r.GET("/get-inventory", ct.Inventory.GetInventory)
	r.GET("/get-inventory-simple", ct.Inventory.GetInventorySimple)

	r.POST("/create-bill", ct.Billing.CreateBill)

	r.GET("/get-profit-loss", ct.Reports.GetProfitLoss)

	r.GET("/api", func(c *gin.Context) {
		c.JSON(http.StatusOK, gin.H{"message": "Billing API is running"})
	})
}
