package controllers

import (
	"net/http"

	"go.uber.org/zap"

	"repair-system/internal/dto"
	"repair-system/internal/entities"
	"repair-system/internal/services"
)

type ClientController = CrudController[entities.Client, dto.CreateClientDTO, dto.UpdateClientDTO]

// NewClientController: клиенты - единственная сущность с частичным
// обновлением, успешный PUT исторически отвечает 202.
func NewClientController(service services.CrudServiceInterface[entities.Client], logger *zap.Logger) *ClientController {
	return NewCrudController(service, CrudConfig[entities.Client, dto.CreateClientDTO, dto.UpdateClientDTO]{
		Names: EntityNames{Singular: "client", Plural: "clients"},
		FromCreate: func(d dto.CreateClientDTO) entities.Client {
			return d.ToEntity()
		},
		ApplyUpdate: func(d dto.UpdateClientDTO, current entities.Client) entities.Client {
			return d.ApplyTo(current)
		},
		ToResponse: func(c entities.Client) interface{} {
			return dto.NewClientDTO(c)
		},
		UpdateStatus: http.StatusAccepted,
	}, logger)
}
