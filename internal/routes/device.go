package routes

import (
	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/labstack/echo/v4"
	"go.uber.org/zap"

	"repair-system/internal/controllers"
	"repair-system/internal/repositories"
	"repair-system/internal/services"
)

func runDeviceRouter(e *echo.Echo, dbConn *pgxpool.Pool, txManager repositories.TxManagerInterface, logger *zap.Logger) {
	var (
		deviceRepository = repositories.NewDeviceRepository(dbConn, logger)
		deviceService    = services.NewCrudService("device", deviceRepository, txManager, logger)
		deviceCtrl       = controllers.NewDeviceController(deviceService, logger)
	)

	e.POST("/devices", deviceCtrl.Create)
	e.GET("/devices", deviceCtrl.GetAll)
	e.GET("/devices/:id", deviceCtrl.FindByID)
	e.PUT("/devices/:id", deviceCtrl.Update)
	e.DELETE("/devices/:id", deviceCtrl.Delete)
}
