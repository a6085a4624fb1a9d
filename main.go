package main

import (
	"github.com/tayyabriaz60/Cloth-Product/config"
	"github.com/tayyabriaz60/Cloth-Product/controllers"
	"github.com/tayyabriaz60/Cloth-Product/models"
	"github.com/tayyabriaz60/Cloth-Product/routes"
	"github.com/tayyabriaz60/Cloth-Product/service"

	"github.com/gin-contrib/cors"
	"github.com/gin-gonic/gin"
	"github.com/sirupsen/logrus"
)

func main() {
	logrus.SetFormatter(&logrus.TextFormatter{FullTimestamp: true})

	cfg := config.LoadConfig()

	db, err := config.ConnectDB(cfg)
	if err != nil {
		logrus.WithError(err).Fatal("database connection failed")
	}

	if err := db.AutoMigrate(&models.Inventory{}, &models.SalesRecord{}); err != nil {
		logrus.WithError(err).Fatal("migration failed")
	}
	logrus.Info("migrations completed")

	inventorySvc := service.NewInventoryService(db)
	billingSvc := service.NewBillingService(db)
	reportSvc := service.NewReportService(db)

	r := gin.Default()

	corsCfg := cors.DefaultConfig()
	if len(cfg.CORS.AllowedOrigins) == 1 && cfg.CORS.AllowedOrigins[0] == "*" {
		corsCfg.AllowAllOrigins = true
	} else {
		corsCfg.AllowOrigins = cfg.CORS.AllowedOrigins
	}
	corsCfg.AllowMethods = []string{"GET", "POST", "OPTIONS"}
	corsCfg.AllowHeaders = []string{"Origin", "Content-Type", "Accept"}
	r.Use(cors.New(corsCfg))

	routes.SetupRoutes(r, routes.Controllers{
		Inventory: controllers.NewInventoryController(inventorySvc),
		Billing:   controllers.NewBillingController(billingSvc),
		Reports:   controllers.NewReportsController(reportSvc),
	})

	logrus.WithField("port", cfg.Server.Port).Info("starting server")
	if err := r.Run(":" + cfg.Server.Port); err != nil {
		logrus.WithError(err).Fatal("server exited")
	}
}
