package routes

import (
	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/labstack/echo/v4"
	"go.uber.org/zap"

	"repair-system/internal/controllers"
	"repair-system/internal/repositories"
	"repair-system/internal/services"
)

func runEmployeeRouter(e *echo.Echo, dbConn *pgxpool.Pool, txManager repositories.TxManagerInterface, logger *zap.Logger) {
	var (
		employeeRepository = repositories.NewEmployeeRepository(dbConn, logger)
		employeeService    = services.NewCrudService("employee", employeeRepository, txManager, logger)
		employeeCtrl       = controllers.NewEmployeeController(employeeService, logger)
	)

	e.POST("/employees", employeeCtrl.Create)
	e.GET("/employees", employeeCtrl.GetAll)
	e.GET("/employees/:id", employeeCtrl.FindByID)
	e.PUT("/employees/:id", employeeCtrl.Update)
	e.DELETE("/employees/:id", employeeCtrl.Delete)
}
