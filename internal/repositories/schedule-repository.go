package repositories

import (
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"
	"go.uber.org/zap"

	"repair-system/internal/entities"
)

const scheduleTable = "schedule"

func scheduleSchema() TableSchema[entities.Schedule] {
	return TableSchema[entities.Schedule]{
		Table:   scheduleTable,
		Columns: []string{"date", "employee_id", "order_id"},
		Values: func(s entities.Schedule) []any {
			return []any{s.Date, s.EmployeeID, s.OrderID}
		},
		Scan: func(row pgx.Row) (entities.Schedule, error) {
			var s entities.Schedule
			err := row.Scan(&s.ID, &s.Date, &s.EmployeeID, &s.OrderID)
			return s, err
		},
	}
}

func NewScheduleRepository(storage *pgxpool.Pool, logger *zap.Logger) CrudRepositoryInterface[entities.Schedule] {
	return NewCrudRepository(storage, scheduleSchema(), logger)
}
