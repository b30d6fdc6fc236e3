package repositories

import (
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"
	"go.uber.org/zap"

	"repair-system/internal/entities"
)

const paymentTable = "payments"

func paymentSchema() TableSchema[entities.Payment] {
	return TableSchema[entities.Payment]{
		Table:   paymentTable,
		Columns: []string{"payment_date", "order_id", "amount"},
		Values: func(p entities.Payment) []any {
			return []any{p.PaymentDate, p.OrderID, p.Amount}
		},
		Scan: func(row pgx.Row) (entities.Payment, error) {
			var p entities.Payment
			err := row.Scan(&p.ID, &p.PaymentDate, &p.OrderID, &p.Amount)
			return p, err
		},
	}
}

func NewPaymentRepository(storage *pgxpool.Pool, logger *zap.Logger) CrudRepositoryInterface[entities.Payment] {
	return NewCrudRepository(storage, paymentSchema(), logger)
}
