package dto

import (
	"github.com/aarondl/null/v8"

	"repair-system/internal/entities"
	"repair-system/pkg/types"
)

type CreateScheduleDTO struct {
	Date       *types.DateTime `json:"date" validate:"required"`
	EmployeeID null.Uint64     `json:"employee_id" validate:"required"`
	OrderID    null.Uint64     `json:"order_id" validate:"required"`
}

type UpdateScheduleDTO struct {
	Date       *types.DateTime `json:"date" validate:"required"`
	EmployeeID null.Uint64     `json:"employee_id" validate:"required"`
	OrderID    null.Uint64     `json:"order_id" validate:"required"`
}

type ScheduleDTO struct {
	ID         uint64         `json:"id"`
	Date       types.DateTime `json:"date"`
	EmployeeID uint64         `json:"employee_id"`
	OrderID    uint64         `json:"order_id"`
}

func (d CreateScheduleDTO) ToEntity() entities.Schedule {
	return entities.Schedule{
		Date:       *d.Date,
		EmployeeID: d.EmployeeID.Uint64,
		OrderID:    d.OrderID.Uint64,
	}
}

func (d UpdateScheduleDTO) ApplyTo(schedule entities.Schedule) entities.Schedule {
	schedule.Date = *d.Date
	schedule.EmployeeID = d.EmployeeID.Uint64
	schedule.OrderID = d.OrderID.Uint64
	return schedule
}

func NewScheduleDTO(schedule entities.Schedule) ScheduleDTO {
	return ScheduleDTO{
		ID:         schedule.ID,
		Date:       schedule.Date,
		EmployeeID: schedule.EmployeeID,
		OrderID:    schedule.OrderID,
	}
}
