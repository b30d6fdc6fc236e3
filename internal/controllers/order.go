package controllers

import (
	"go.uber.org/zap"

	"repair-system/internal/dto"
	"repair-system/internal/entities"
	"repair-system/internal/services"
)

type OrderController = CrudController[entities.Order, dto.CreateOrderDTO, dto.UpdateOrderDTO]

func NewOrderController(service services.CrudServiceInterface[entities.Order], logger *zap.Logger) *OrderController {
	return NewCrudController(service, CrudConfig[entities.Order, dto.CreateOrderDTO, dto.UpdateOrderDTO]{
		Names: EntityNames{Singular: "order", Plural: "orders"},
		FromCreate: func(d dto.CreateOrderDTO) entities.Order {
			return d.ToEntity()
		},
		ApplyUpdate: func(d dto.UpdateOrderDTO, current entities.Order) entities.Order {
			return d.ApplyTo(current)
		},
		ToResponse: func(o entities.Order) interface{} {
			return dto.NewOrderDTO(o)
		},
	}, logger)
}
