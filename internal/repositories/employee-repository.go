package repositories

import (
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"
	"go.uber.org/zap"

	"repair-system/internal/entities"
)

const employeeTable = "employees"

func employeeSchema() TableSchema[entities.Employee] {
	return TableSchema[entities.Employee]{
		Table:   employeeTable,
		Columns: []string{"name", "surname", "post"},
		Values: func(e entities.Employee) []any {
			return []any{e.Name, e.Surname, e.Post}
		},
		Scan: func(row pgx.Row) (entities.Employee, error) {
			var e entities.Employee
			err := row.Scan(&e.ID, &e.Name, &e.Surname, &e.Post)
			return e, err
		},
	}
}

func NewEmployeeRepository(storage *pgxpool.Pool, logger *zap.Logger) CrudRepositoryInterface[entities.Employee] {
	return NewCrudRepository(storage, employeeSchema(), logger)
}
