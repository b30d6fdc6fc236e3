package repositories

import (
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"
	"go.uber.org/zap"

	"repair-system/internal/entities"
)

const orderTable = "orders"

func orderSchema() TableSchema[entities.Order] {
	return TableSchema[entities.Order]{
		Table:   orderTable,
		Columns: []string{"order_date", "device_id", "description", "cost", "state"},
		Values: func(o entities.Order) []any {
			// state уходит в БД символьным именем, enum-тип order_state
			// отбрасывает всё, что не входит в перечень
			return []any{o.OrderDate, o.DeviceID, o.Description, o.Cost, string(o.State)}
		},
		Scan: func(row pgx.Row) (entities.Order, error) {
			var o entities.Order
			var state string
			err := row.Scan(&o.ID, &o.OrderDate, &o.DeviceID, &o.Description, &o.Cost, &state)
			o.State = entities.OrderState(state)
			return o, err
		},
	}
}

func NewOrderRepository(storage *pgxpool.Pool, logger *zap.Logger) CrudRepositoryInterface[entities.Order] {
	return NewCrudRepository(storage, orderSchema(), logger)
}
