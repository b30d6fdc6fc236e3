package routes

import (
	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/labstack/echo/v4"
	"go.uber.org/zap"

	"repair-system/internal/controllers"
	"repair-system/internal/repositories"
	"repair-system/internal/services"
)

func runClientRouter(e *echo.Echo, dbConn *pgxpool.Pool, txManager repositories.TxManagerInterface, logger *zap.Logger) {
	var (
		clientRepository = repositories.NewClientRepository(dbConn, logger)
		clientService    = services.NewCrudService("client", clientRepository, txManager, logger)
		clientCtrl       = controllers.NewClientController(clientService, logger)
	)

	e.POST("/clients", clientCtrl.Create)
	e.GET("/clients", clientCtrl.GetAll)
	e.GET("/clients/:id", clientCtrl.FindByID)
	e.PUT("/clients/:id", clientCtrl.Update)
	e.DELETE("/clients/:id", clientCtrl.Delete)
}
