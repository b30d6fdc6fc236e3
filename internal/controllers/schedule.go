package controllers

import (
	"go.uber.org/zap"

	"repair-system/internal/dto"
	"repair-system/internal/entities"
	"repair-system/internal/services"
)

type ScheduleController = CrudController[entities.Schedule, dto.CreateScheduleDTO, dto.UpdateScheduleDTO]

func NewScheduleController(service services.CrudServiceInterface[entities.Schedule], logger *zap.Logger) *ScheduleController {
	return NewCrudController(service, CrudConfig[entities.Schedule, dto.CreateScheduleDTO, dto.UpdateScheduleDTO]{
		Names: EntityNames{Singular: "schedule", Plural: "schedules"},
		FromCreate: func(d dto.CreateScheduleDTO) entities.Schedule {
			return d.ToEntity()
		},
		ApplyUpdate: func(d dto.UpdateScheduleDTO, current entities.Schedule) entities.Schedule {
			return d.ApplyTo(current)
		},
		ToResponse: func(s entities.Schedule) interface{} {
			return dto.NewScheduleDTO(s)
		},
	}, logger)
}
