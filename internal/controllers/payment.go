package controllers

import (
	"go.uber.org/zap"

	"repair-system/internal/dto"
	"repair-system/internal/entities"
	"repair-system/internal/services"
)

type PaymentController = CrudController[entities.Payment, dto.CreatePaymentDTO, dto.UpdatePaymentDTO]

func NewPaymentController(service services.CrudServiceInterface[entities.Payment], logger *zap.Logger) *PaymentController {
	return NewCrudController(service, CrudConfig[entities.Payment, dto.CreatePaymentDTO, dto.UpdatePaymentDTO]{
		Names: EntityNames{Singular: "payment", Plural: "payments"},
		FromCreate: func(d dto.CreatePaymentDTO) entities.Payment {
			return d.ToEntity()
		},
		ApplyUpdate: func(d dto.UpdatePaymentDTO, current entities.Payment) entities.Payment {
			return d.ApplyTo(current)
		},
		ToResponse: func(p entities.Payment) interface{} {
			return dto.NewPaymentDTO(p)
		},
	}, logger)
}
