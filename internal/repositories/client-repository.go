package repositories

import (
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"
	"go.uber.org/zap"

	"repair-system/internal/entities"
)

const clientTable = "clients"

func clientSchema() TableSchema[entities.Client] {
	return TableSchema[entities.Client]{
		Table:   clientTable,
		Columns: []string{"name", "surname", "address", "phone", "email"},
		Values: func(c entities.Client) []any {
			return []any{c.Name, c.Surname, c.Address, c.Phone, c.Email}
		},
		Scan: func(row pgx.Row) (entities.Client, error) {
			var c entities.Client
			err := row.Scan(&c.ID, &c.Name, &c.Surname, &c.Address, &c.Phone, &c.Email)
			return c, err
		},
	}
}

func NewClientRepository(storage *pgxpool.Pool, logger *zap.Logger) CrudRepositoryInterface[entities.Client] {
	return NewCrudRepository(storage, clientSchema(), logger)
}
