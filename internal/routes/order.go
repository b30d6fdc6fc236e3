package routes

import (
	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/labstack/echo/v4"
	"go.uber.org/zap"

	"repair-system/internal/controllers"
	"repair-system/internal/repositories"
	"repair-system/internal/services"
)

func runOrderRouter(e *echo.Echo, dbConn *pgxpool.Pool, txManager repositories.TxManagerInterface, logger *zap.Logger) {
	var (
		orderRepository = repositories.NewOrderRepository(dbConn, logger)
		orderService    = services.NewCrudService("order", orderRepository, txManager, logger)
		orderCtrl       = controllers.NewOrderController(orderService, logger)
	)

	e.POST("/orders", orderCtrl.Create)
	e.GET("/orders", orderCtrl.GetAll)
	e.GET("/orders/:id", orderCtrl.FindByID)
	e.PUT("/orders/:id", orderCtrl.Update)
	e.DELETE("/orders/:id", orderCtrl.Delete)
}
