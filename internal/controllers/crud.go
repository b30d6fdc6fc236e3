package controllers

import (
	"errors"
	"net/http"
	"strconv"

	"github.com/labstack/echo/v4"
	"go.uber.org/zap"

	"repair-system/internal/services"
	apperrors "repair-system/pkg/errors"
	"repair-system/pkg/utils"
)

type EntityNames struct {
	Singular string
	Plural   string
}

// CrudConfig - всё, чем одна сущность отличается от другой на уровне HTTP:
// имена для путей и сообщений, конверсия DTO -> сущность, наложение
// обновления на текущую запись и статус успешного обновления.
type CrudConfig[E, C, U any] struct {
	Names        EntityNames
	FromCreate   func(d C) E
	ApplyUpdate  func(d U, current E) E
	ToResponse   func(e E) interface{}
	UpdateStatus int
}

type CrudController[E, C, U any] struct {
	service services.CrudServiceInterface[E]
	config  CrudConfig[E, C, U]
	logger  *zap.Logger
}

func NewCrudController[E, C, U any](
	service services.CrudServiceInterface[E],
	config CrudConfig[E, C, U],
	logger *zap.Logger,
) *CrudController[E, C, U] {
	if config.UpdateStatus == 0 {
		config.UpdateStatus = http.StatusOK
	}
	return &CrudController[E, C, U]{service: service, config: config, logger: logger}
}

// mapError переводит ошибки хранилища в HttpError с нужным статусом:
// нет записи -> 404, нарушение уникальности -> 409, остальное -> 500
// с единым текстом вида "error creating client".
func (c *CrudController[E, C, U]) mapError(err error, internalMessage string) error {
	switch {
	case errors.Is(err, apperrors.ErrNotFound):
		return apperrors.NewHttpError(http.StatusNotFound, c.config.Names.Singular+" not found", nil, nil)
	case errors.Is(err, apperrors.ErrConflict):
		return apperrors.NewHttpError(http.StatusConflict, c.config.Names.Singular+" already exists", err, nil)
	case errors.Is(err, apperrors.ErrBadRequest):
		return apperrors.NewHttpError(http.StatusBadRequest, "invalid "+c.config.Names.Singular+" data", err, nil)
	default:
		return apperrors.NewHttpError(http.StatusInternalServerError, internalMessage, err, nil)
	}
}

func (c *CrudController[E, C, U]) parseID(ctx echo.Context) (uint64, error) {
	id, err := strconv.ParseUint(ctx.Param("id"), 10, 64)
	if err != nil {
		utils.RequestLogger(ctx, c.logger).Error("неверный формат ID", zap.String("id", ctx.Param("id")), zap.Error(err))
		return 0, apperrors.NewHttpError(http.StatusBadRequest, "invalid "+c.config.Names.Singular+" id", err, nil)
	}
	return id, nil
}

func (c *CrudController[E, C, U]) Create(ctx echo.Context) error {
	var d C
	if err := ctx.Bind(&d); err != nil {
		return utils.ErrorResponse(ctx, apperrors.NewHttpError(http.StatusBadRequest, "invalid request body", err, nil), c.logger)
	}
	if err := ctx.Validate(&d); err != nil {
		return utils.ErrorResponse(ctx, err, c.logger)
	}

	if _, err := c.service.Create(ctx.Request().Context(), c.config.FromCreate(d)); err != nil {
		return utils.ErrorResponse(ctx, c.mapError(err, "error creating "+c.config.Names.Singular), c.logger)
	}
	return utils.MessageResponse(ctx, http.StatusCreated, c.config.Names.Singular+" created")
}

func (c *CrudController[E, C, U]) GetAll(ctx echo.Context) error {
	items, err := c.service.GetAll(ctx.Request().Context())
	if err != nil {
		return utils.ErrorResponse(ctx, c.mapError(err, "error getting "+c.config.Names.Plural), c.logger)
	}

	list := make([]interface{}, 0, len(items))
	for _, item := range items {
		list = append(list, c.config.ToResponse(item))
	}
	return ctx.JSON(http.StatusOK, list)
}

func (c *CrudController[E, C, U]) FindByID(ctx echo.Context) error {
	id, err := c.parseID(ctx)
	if err != nil {
		return utils.ErrorResponse(ctx, err, c.logger)
	}

	item, err := c.service.FindByID(ctx.Request().Context(), id)
	if err != nil {
		return utils.ErrorResponse(ctx, c.mapError(err, "error getting "+c.config.Names.Singular), c.logger)
	}
	return ctx.JSON(http.StatusOK, echo.Map{c.config.Names.Singular: c.config.ToResponse(item)})
}

func (c *CrudController[E, C, U]) Update(ctx echo.Context) error {
	id, err := c.parseID(ctx)
	if err != nil {
		return utils.ErrorResponse(ctx, err, c.logger)
	}

	var d U
	if err := ctx.Bind(&d); err != nil {
		return utils.ErrorResponse(ctx, apperrors.NewHttpError(http.StatusBadRequest, "invalid request body", err, nil), c.logger)
	}
	if err := ctx.Validate(&d); err != nil {
		return utils.ErrorResponse(ctx, err, c.logger)
	}

	_, err = c.service.Update(ctx.Request().Context(), id, func(current E) E {
		return c.config.ApplyUpdate(d, current)
	})
	if err != nil {
		return utils.ErrorResponse(ctx, c.mapError(err, "error updating "+c.config.Names.Singular), c.logger)
	}
	return utils.MessageResponse(ctx, c.config.UpdateStatus, c.config.Names.Singular+" updated")
}

func (c *CrudController[E, C, U]) Delete(ctx echo.Context) error {
	id, err := c.parseID(ctx)
	if err != nil {
		return utils.ErrorResponse(ctx, err, c.logger)
	}

	if err := c.service.Delete(ctx.Request().Context(), id); err != nil {
		return utils.ErrorResponse(ctx, c.mapError(err, "error deleting "+c.config.Names.Singular), c.logger)
	}
	return utils.MessageResponse(ctx, http.StatusOK, c.config.Names.Singular+" deleted")
}
