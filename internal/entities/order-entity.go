package entities

import (
	"fmt"
	"strings"

	"repair-system/pkg/types"
)

// OrderState - закрытый перечень состояний заявки. В JSON и в БД хранится
// символьное имя, наружу сериализуется отображаемая строка.
type OrderState string

const (
	OrderStatePending    OrderState = "pending"
	OrderStateInProgress OrderState = "in_progress"
	OrderStateCompleted  OrderState = "completed"
)

var orderStateDisplay = map[OrderState]string{
	OrderStatePending:    "ожидание",
	OrderStateInProgress: "в работе",
	OrderStateCompleted:  "завершен",
}

func ParseOrderState(name string) (OrderState, error) {
	state := OrderState(name)
	if _, ok := orderStateDisplay[state]; !ok {
		return "", fmt.Errorf("недопустимое состояние заявки %q", name)
	}
	return state, nil
}

func (s OrderState) Valid() bool {
	_, ok := orderStateDisplay[s]
	return ok
}

// Display возвращает отображаемую строку состояния.
func (s OrderState) Display() string {
	return orderStateDisplay[s]
}

func (s OrderState) MarshalJSON() ([]byte, error) {
	display, ok := orderStateDisplay[s]
	if !ok {
		return nil, fmt.Errorf("недопустимое состояние заявки %q", string(s))
	}
	return []byte(`"` + display + `"`), nil
}

func (s *OrderState) UnmarshalJSON(data []byte) error {
	parsed, err := ParseOrderState(strings.Trim(string(data), `"`))
	if err != nil {
		return err
	}
	*s = parsed
	return nil
}

type Order struct {
	ID          uint64
	OrderDate   types.DateTime
	DeviceID    uint64
	Description string
	Cost        float64
	State       OrderState
}
