package controllers

import (
	"go.uber.org/zap"

	"repair-system/internal/dto"
	"repair-system/internal/entities"
	"repair-system/internal/services"
)

type DeviceController = CrudController[entities.Device, dto.CreateDeviceDTO, dto.UpdateDeviceDTO]

func NewDeviceController(service services.CrudServiceInterface[entities.Device], logger *zap.Logger) *DeviceController {
	return NewCrudController(service, CrudConfig[entities.Device, dto.CreateDeviceDTO, dto.UpdateDeviceDTO]{
		Names: EntityNames{Singular: "device", Plural: "devices"},
		FromCreate: func(d dto.CreateDeviceDTO) entities.Device {
			return d.ToEntity()
		},
		ApplyUpdate: func(d dto.UpdateDeviceDTO, current entities.Device) entities.Device {
			return d.ApplyTo(current)
		},
		ToResponse: func(device entities.Device) interface{} {
			return dto.NewDeviceDTO(device)
		},
	}, logger)
}
