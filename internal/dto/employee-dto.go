package dto

import (
	"github.com/aarondl/null/v8"

	"repair-system/internal/entities"
)

type CreateEmployeeDTO struct {
	Name    null.String `json:"name" validate:"required"`
	Surname null.String `json:"surname" validate:"required"`
	Post    null.String `json:"post" validate:"required"`
}

type UpdateEmployeeDTO struct {
	Name    null.String `json:"name" validate:"required"`
	Surname null.String `json:"surname" validate:"required"`
	Post    null.String `json:"post" validate:"required"`
}

type EmployeeDTO struct {
	ID      uint64 `json:"id"`
	Name    string `json:"name"`
	Surname string `json:"surname"`
	Post    string `json:"post"`
}

func (d CreateEmployeeDTO) ToEntity() entities.Employee {
	return entities.Employee{
		Name:    d.Name.String,
		Surname: d.Surname.String,
		Post:    d.Post.String,
	}
}

func (d UpdateEmployeeDTO) ApplyTo(employee entities.Employee) entities.Employee {
	employee.Name = d.Name.String
	employee.Surname = d.Surname.String
	employee.Post = d.Post.String
	return employee
}

func NewEmployeeDTO(employee entities.Employee) EmployeeDTO {
	return EmployeeDTO{
		ID:      employee.ID,
		Name:    employee.Name,
		Surname: employee.Surname,
		Post:    employee.Post,
	}
}
