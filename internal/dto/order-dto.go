package dto

import (
	"github.com/aarondl/null/v8"

	"repair-system/internal/entities"
	"repair-system/pkg/types"
)

// Во входных DTO проверяется наличие ключа, а не значение: null-обёртки и
// указатели остаются нулевыми только если ключа не было в запросе, поэтому
// required пропускает явные нули и пустые строки.
type CreateOrderDTO struct {
	OrderDate   *types.DateTime      `json:"order_date" validate:"required"`
	DeviceID    null.Uint64          `json:"device_id" validate:"required"`
	Description null.String          `json:"description" validate:"required"`
	Cost        null.Float64         `json:"cost" validate:"required"`
	State       *entities.OrderState `json:"state" validate:"required"`
}

type UpdateOrderDTO struct {
	OrderDate   *types.DateTime      `json:"order_date" validate:"required"`
	DeviceID    null.Uint64          `json:"device_id" validate:"required"`
	Description null.String          `json:"description" validate:"required"`
	Cost        null.Float64         `json:"cost" validate:"required"`
	State       *entities.OrderState `json:"state" validate:"required"`
}

// OrderDTO сериализует state через entities.OrderState, то есть наружу
// уходит отображаемая строка состояния, а не символьное имя.
type OrderDTO struct {
	ID          uint64              `json:"id"`
	OrderDate   types.DateTime      `json:"order_date"`
	DeviceID    uint64              `json:"device_id"`
	Description string              `json:"description"`
	Cost        float64             `json:"cost"`
	State       entities.OrderState `json:"state"`
}

func (d CreateOrderDTO) ToEntity() entities.Order {
	return entities.Order{
		OrderDate:   *d.OrderDate,
		DeviceID:    d.DeviceID.Uint64,
		Description: d.Description.String,
		Cost:        d.Cost.Float64,
		State:       *d.State,
	}
}

func (d UpdateOrderDTO) ApplyTo(order entities.Order) entities.Order {
	order.OrderDate = *d.OrderDate
	order.DeviceID = d.DeviceID.Uint64
	order.Description = d.Description.String
	order.Cost = d.Cost.Float64
	order.State = *d.State
	return order
}

func NewOrderDTO(order entities.Order) OrderDTO {
	return OrderDTO{
		ID:          order.ID,
		OrderDate:   order.OrderDate,
		DeviceID:    order.DeviceID,
		Description: order.Description,
		Cost:        order.Cost,
		State:       order.State,
	}
}
