package entities

import "repair-system/pkg/types"

// Schedule - строка графика работ: кто из сотрудников в какой день занят
// какой заявкой. EmployeeID и OrderID хранятся как есть, без проверки
// существования записей в соседних таблицах.
type Schedule struct {
	ID         uint64
	Date       types.DateTime
	EmployeeID uint64
	OrderID    uint64
}
