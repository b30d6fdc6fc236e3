package routes

import (
	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/labstack/echo/v4"
	"go.uber.org/zap"

	"repair-system/internal/controllers"
	"repair-system/internal/repositories"
	"repair-system/internal/services"
)

func runPaymentRouter(e *echo.Echo, dbConn *pgxpool.Pool, txManager repositories.TxManagerInterface, logger *zap.Logger) {
	var (
		paymentRepository = repositories.NewPaymentRepository(dbConn, logger)
		paymentService    = services.NewCrudService("payment", paymentRepository, txManager, logger)
		paymentCtrl       = controllers.NewPaymentController(paymentService, logger)
	)

	e.POST("/payments", paymentCtrl.Create)
	e.GET("/payments", paymentCtrl.GetAll)
	e.GET("/payments/:id", paymentCtrl.FindByID)
	e.PUT("/payments/:id", paymentCtrl.Update)
	e.DELETE("/payments/:id", paymentCtrl.Delete)
}
