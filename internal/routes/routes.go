package routes

import (
	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/labstack/echo/v4"
	"go.uber.org/zap"

	"repair-system/internal/repositories"
)

// InitRouter собирает все маршруты: 6 сущностей x 5 операций.
// Пул соединений и логгер передаются явно, без глобального состояния.
func InitRouter(e *echo.Echo, dbConn *pgxpool.Pool, logger *zap.Logger) {
	txManager := repositories.NewTxManager(dbConn)

	runClientRouter(e, dbConn, txManager, logger)
	runDeviceRouter(e, dbConn, txManager, logger)
	runEmployeeRouter(e, dbConn, txManager, logger)
	runOrderRouter(e, dbConn, txManager, logger)
	runPaymentRouter(e, dbConn, txManager, logger)
	runScheduleRouter(e, dbConn, txManager, logger)
}
