package entities

import "repair-system/pkg/types"

type Device struct {
	ID           uint64
	Manufacturer string
	Model        string
	SN           string
	ReleaseDate  types.DateTime
	PurchaseDate types.DateTime
	ClientID     uint64
}
