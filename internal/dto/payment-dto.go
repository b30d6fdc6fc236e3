package dto

import (
	"github.com/aarondl/null/v8"

	"repair-system/internal/entities"
	"repair-system/pkg/types"
)

type CreatePaymentDTO struct {
	PaymentDate *types.DateTime `json:"payment_date" validate:"required"`
	OrderID     null.Uint64     `json:"order_id" validate:"required"`
	Amount      null.Float64    `json:"amount" validate:"required"`
}

type UpdatePaymentDTO struct {
	PaymentDate *types.DateTime `json:"payment_date" validate:"required"`
	OrderID     null.Uint64     `json:"order_id" validate:"required"`
	Amount      null.Float64    `json:"amount" validate:"required"`
}

type PaymentDTO struct {
	ID          uint64         `json:"id"`
	PaymentDate types.DateTime `json:"payment_date"`
	OrderID     uint64         `json:"order_id"`
	Amount      float64        `json:"amount"`
}

func (d CreatePaymentDTO) ToEntity() entities.Payment {
	return entities.Payment{
		PaymentDate: *d.PaymentDate,
		OrderID:     d.OrderID.Uint64,
		Amount:      d.Amount.Float64,
	}
}

func (d UpdatePaymentDTO) ApplyTo(payment entities.Payment) entities.Payment {
	payment.PaymentDate = *d.PaymentDate
	payment.OrderID = d.OrderID.Uint64
	payment.Amount = d.Amount.Float64
	return payment
}

func NewPaymentDTO(payment entities.Payment) PaymentDTO {
	return PaymentDTO{
		ID:          payment.ID,
		PaymentDate: payment.PaymentDate,
		OrderID:     payment.OrderID,
		Amount:      payment.Amount,
	}
}
