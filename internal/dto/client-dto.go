package dto

import (
	"github.com/aarondl/null/v8"

	"repair-system/internal/entities"
)

// CreateClientDTO: required у null.String проверяет наличие ключа,
// присланная пустая строка - допустимое значение.
type CreateClientDTO struct {
	Name    null.String `json:"name" validate:"required"`
	Surname null.String `json:"surname" validate:"required"`
	Address null.String `json:"address" validate:"required"`
	Phone   null.String `json:"phone" validate:"required"`
	Email   null.String `json:"email" validate:"required"`
}

// UpdateClientDTO - частичное обновление: null.String отличает
// отсутствующий ключ от пустой строки.
type UpdateClientDTO struct {
	Name    null.String `json:"name"`
	Surname null.String `json:"surname"`
	Address null.String `json:"address"`
	Phone   null.String `json:"phone"`
	Email   null.String `json:"email"`
}

type ClientDTO struct {
	ID      uint64 `json:"id"`
	Name    string `json:"name"`
	Surname string `json:"surname"`
	Address string `json:"address"`
	Phone   string `json:"phone"`
	Email   string `json:"email"`
}

func (d CreateClientDTO) ToEntity() entities.Client {
	return entities.Client{
		Name:    d.Name.String,
		Surname: d.Surname.String,
		Address: d.Address.String,
		Phone:   d.Phone.String,
		Email:   d.Email.String,
	}
}

// ApplyTo накладывает присланные поля на текущую запись. Поля, которых нет
// в запросе, сохраняют прежние значения.
func (d UpdateClientDTO) ApplyTo(client entities.Client) entities.Client {
	if d.Name.Valid {
		client.Name = d.Name.String
	}
	if d.Surname.Valid {
		client.Surname = d.Surname.String
	}
	if d.Address.Valid {
		client.Address = d.Address.String
	}
	if d.Phone.Valid {
		client.Phone = d.Phone.String
	}
	if d.Email.Valid {
		client.Email = d.Email.String
	}
	return client
}

func NewClientDTO(client entities.Client) ClientDTO {
	return ClientDTO{
		ID:      client.ID,
		Name:    client.Name,
		Surname: client.Surname,
		Address: client.Address,
		Phone:   client.Phone,
		Email:   client.Email,
	}
}
