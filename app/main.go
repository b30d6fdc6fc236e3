package main

import (
	"context"
	"database/sql"
	"log"
	"net/http"

	"github.com/go-playground/validator/v10"
	_ "github.com/jackc/pgx/v5/stdlib"
	"github.com/joho/godotenv"
	"github.com/labstack/echo/v4"
	"github.com/labstack/echo/v4/middleware"
	"go.uber.org/zap"

	"repair-system/internal/migrations"
	"repair-system/internal/routes"
	"repair-system/pkg/config"
	"repair-system/pkg/database/postgresql"
	apperrors "repair-system/pkg/errors"
	applogger "repair-system/pkg/logger"
	appmiddleware "repair-system/pkg/middleware"
	"repair-system/pkg/utils"
)

func main() {
	if err := godotenv.Load(); err != nil {
		log.Println("Предупреждение: .env файл не найден или не удалось его загрузить.")
	}

	e := echo.New()
	logger := applogger.NewLogger()
	defer logger.Sync()

	cfg := config.New()

	e.Use(middleware.RecoverWithConfig(middleware.RecoverConfig{
		DisableStackAll: true,
		StackSize:       1 << 10,
		LogErrorFunc: func(c echo.Context, err error, stack []byte) error {
			logger.Error("ОБНАРУЖЕНА ПАНИКА",
				zap.String("method", c.Request().Method),
				zap.String("uri", c.Request().RequestURI),
				zap.Error(err),
				zap.String("stack", string(stack)),
			)
			if !c.Response().Committed {
				httpErr := apperrors.NewHttpError(http.StatusInternalServerError, "internal server error", err, nil)
				utils.ErrorResponse(c, httpErr, logger)
			}
			return err
		},
	}))

	e.Use(middleware.CORSWithConfig(middleware.CORSConfig{
		AllowMethods: []string{http.MethodGet, http.MethodPost, http.MethodPut, http.MethodDelete, http.MethodOptions},
		AllowHeaders: []string{echo.HeaderOrigin, echo.HeaderContentType, echo.HeaderAccept},
	}))

	e.Use(appmiddleware.RequestID(logger))

	e.Validator = utils.NewValidator(validator.New())

	// Схема накатывается через goose до открытия пула
	migrationDB, err := sql.Open("pgx", cfg.Postgres.DSN)
	if err != nil {
		logger.Fatal("не удалось открыть соединение для миграций", zap.Error(err))
	}
	if err := migrations.Run(context.Background(), migrationDB); err != nil {
		logger.Fatal("не удалось применить миграции", zap.Error(err))
	}
	if err := migrationDB.Close(); err != nil {
		logger.Fatal("не удалось закрыть соединение для миграций", zap.Error(err))
	}

	dbConn := postgresql.ConnectDB(cfg.Postgres.DSN)
	defer dbConn.Close()

	routes.InitRouter(e, dbConn, logger)

	logger.Info("🚀 Сервер запущен", zap.String("port", cfg.Server.Port))
	if err := e.Start(":" + cfg.Server.Port); err != nil {
		logger.Fatal("Ошибка запуска сервера", zap.Error(err))
	}
}
