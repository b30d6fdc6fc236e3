package entities

import "repair-system/pkg/types"

type Payment struct {
	ID          uint64
	PaymentDate types.DateTime
	OrderID     uint64
	Amount      float64
}
