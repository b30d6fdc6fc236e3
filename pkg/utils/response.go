package utils

import (
	"errors"
	"fmt"
	"net/http"
	"strings"

	"github.com/go-playground/validator/v10"
	"github.com/labstack/echo/v4"
	"go.uber.org/zap"

	apperrors "repair-system/pkg/errors"
)

// MessageResponse - ответ вида {"message": "..."}; все ручки API отвечают
// либо этим конвертом, либо сериализованной записью.
func MessageResponse(ctx echo.Context, code int, message string) error {
	return ctx.JSON(code, echo.Map{"message": message})
}

// RequestLogger возвращает логгер запроса, положенный в контекст middleware
// (с полем request_id), либо fallback, если middleware не отработал.
func RequestLogger(ctx echo.Context, fallback *zap.Logger) *zap.Logger {
	if l, ok := ctx.Get("logger").(*zap.Logger); ok {
		return l
	}
	return fallback
}

// ErrorResponse переводит ошибку в HTTP-ответ. Известные виды ошибок уходят
// со своим статусом, всё остальное логируется и превращается в 500.
func ErrorResponse(ctx echo.Context, err error, logger *zap.Logger) error {
	logger = RequestLogger(ctx, logger)

	var httpErr *apperrors.HttpError
	if errors.As(err, &httpErr) {
		if httpErr.Err != nil {
			logger.Error("HTTP Error",
				zap.Int("code", httpErr.Code),
				zap.String("message", httpErr.Message),
				zap.Error(httpErr.Err),
				zap.Any("context", httpErr.Context),
			)
		}
		return MessageResponse(ctx, httpErr.Code, httpErr.Message)
	}

	var validationErrors validator.ValidationErrors
	if errors.As(err, &validationErrors) {
		var msgs []string
		for _, e := range validationErrors {
			msgs = append(msgs, fmt.Sprintf("field '%s' failed on the '%s' rule", e.Field(), e.Tag()))
		}
		return MessageResponse(ctx, http.StatusBadRequest, "validation failed: "+strings.Join(msgs, "; "))
	}

	var echoErr *echo.HTTPError
	if errors.As(err, &echoErr) {
		return MessageResponse(ctx, echoErr.Code, fmt.Sprintf("%v", echoErr.Message))
	}

	logger.Error("Unexpected Error", zap.Error(err))
	return MessageResponse(ctx, http.StatusInternalServerError, "internal server error")
}
