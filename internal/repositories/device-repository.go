package repositories

import (
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"
	"go.uber.org/zap"

	"repair-system/internal/entities"
)

const deviceTable = "devices"

func deviceSchema() TableSchema[entities.Device] {
	return TableSchema[entities.Device]{
		Table:   deviceTable,
		Columns: []string{"manufacturer", "model", "sn", "release_date", "purchase_date", "client_id"},
		Values: func(d entities.Device) []any {
			return []any{d.Manufacturer, d.Model, d.SN, d.ReleaseDate, d.PurchaseDate, d.ClientID}
		},
		Scan: func(row pgx.Row) (entities.Device, error) {
			var d entities.Device
			err := row.Scan(&d.ID, &d.Manufacturer, &d.Model, &d.SN, &d.ReleaseDate, &d.PurchaseDate, &d.ClientID)
			return d, err
		},
	}
}

func NewDeviceRepository(storage *pgxpool.Pool, logger *zap.Logger) CrudRepositoryInterface[entities.Device] {
	return NewCrudRepository(storage, deviceSchema(), logger)
}
