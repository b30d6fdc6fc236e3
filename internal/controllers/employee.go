package controllers

import (
	"go.uber.org/zap"

	"repair-system/internal/dto"
	"repair-system/internal/entities"
	"repair-system/internal/services"
)

type EmployeeController = CrudController[entities.Employee, dto.CreateEmployeeDTO, dto.UpdateEmployeeDTO]

func NewEmployeeController(service services.CrudServiceInterface[entities.Employee], logger *zap.Logger) *EmployeeController {
	return NewCrudController(service, CrudConfig[entities.Employee, dto.CreateEmployeeDTO, dto.UpdateEmployeeDTO]{
		Names: EntityNames{Singular: "employee", Plural: "employees"},
		FromCreate: func(d dto.CreateEmployeeDTO) entities.Employee {
			return d.ToEntity()
		},
		ApplyUpdate: func(d dto.UpdateEmployeeDTO, current entities.Employee) entities.Employee {
			return d.ApplyTo(current)
		},
		ToResponse: func(e entities.Employee) interface{} {
			return dto.NewEmployeeDTO(e)
		},
	}, logger)
}
