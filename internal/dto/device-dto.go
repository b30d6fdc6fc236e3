package dto

import (
	"github.com/aarondl/null/v8"

	"repair-system/internal/entities"
	"repair-system/pkg/types"
)

type CreateDeviceDTO struct {
	Manufacturer null.String     `json:"manufacturer" validate:"required"`
	Model        null.String     `json:"model" validate:"required"`
	SN           null.String     `json:"sn" validate:"required"`
	ReleaseDate  *types.DateTime `json:"release_date" validate:"required"`
	PurchaseDate *types.DateTime `json:"purchase_date" validate:"required"`
	ClientID     null.Uint64     `json:"client_id" validate:"required"`
}

// UpdateDeviceDTO - полная замена: каждый ключ обязателен.
type UpdateDeviceDTO struct {
	Manufacturer null.String     `json:"manufacturer" validate:"required"`
	Model        null.String     `json:"model" validate:"required"`
	SN           null.String     `json:"sn" validate:"required"`
	ReleaseDate  *types.DateTime `json:"release_date" validate:"required"`
	PurchaseDate *types.DateTime `json:"purchase_date" validate:"required"`
	ClientID     null.Uint64     `json:"client_id" validate:"required"`
}

type DeviceDTO struct {
	ID           uint64         `json:"id"`
	Manufacturer string         `json:"manufacturer"`
	Model        string         `json:"model"`
	SN           string         `json:"sn"`
	ReleaseDate  types.DateTime `json:"release_date"`
	PurchaseDate types.DateTime `json:"purchase_date"`
	ClientID     uint64         `json:"client_id"`
}

func (d CreateDeviceDTO) ToEntity() entities.Device {
	return entities.Device{
		Manufacturer: d.Manufacturer.String,
		Model:        d.Model.String,
		SN:           d.SN.String,
		ReleaseDate:  *d.ReleaseDate,
		PurchaseDate: *d.PurchaseDate,
		ClientID:     d.ClientID.Uint64,
	}
}

func (d UpdateDeviceDTO) ApplyTo(device entities.Device) entities.Device {
	device.Manufacturer = d.Manufacturer.String
	device.Model = d.Model.String
	device.SN = d.SN.String
	device.ReleaseDate = *d.ReleaseDate
	device.PurchaseDate = *d.PurchaseDate
	device.ClientID = d.ClientID.Uint64
	return device
}

func NewDeviceDTO(device entities.Device) DeviceDTO {
	return DeviceDTO{
		ID:           device.ID,
		Manufacturer: device.Manufacturer,
		Model:        device.Model,
		SN:           device.SN,
		ReleaseDate:  device.ReleaseDate,
		PurchaseDate: device.PurchaseDate,
		ClientID:     device.ClientID,
	}
}
