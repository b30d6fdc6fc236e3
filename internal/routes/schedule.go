package routes

import (
	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/labstack/echo/v4"
	"go.uber.org/zap"

	"repair-system/internal/controllers"
	"repair-system/internal/repositories"
	"repair-system/internal/services"
)

func runScheduleRouter(e *echo.Echo, dbConn *pgxpool.Pool, txManager repositories.TxManagerInterface, logger *zap.Logger) {
	var (
		scheduleRepository = repositories.NewScheduleRepository(dbConn, logger)
		scheduleService    = services.NewCrudService("schedule", scheduleRepository, txManager, logger)
		scheduleCtrl       = controllers.NewScheduleController(scheduleService, logger)
	)

	e.POST("/schedules", scheduleCtrl.Create)
	e.GET("/schedules", scheduleCtrl.GetAll)
	e.GET("/schedules/:id", scheduleCtrl.FindByID)
	e.PUT("/schedules/:id", scheduleCtrl.Update)
	e.DELETE("/schedules/:id", scheduleCtrl.Delete)
}
