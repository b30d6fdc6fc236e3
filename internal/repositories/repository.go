package repositories

import (
	"context"
	"errors"
	"fmt"
	"strings"

	sq "github.com/Masterminds/squirrel"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgconn"
	"github.com/jackc/pgx/v5/pgxpool"
	"go.uber.org/zap"

	apperrors "repair-system/pkg/errors"
)

// TableSchema описывает, как сущность E ложится в свою таблицу: имя таблицы,
// колонки без id, значения для вставки/обновления и сканирование строки.
// Шесть таблиц структурно одинаковы, поэтому CRUD написан один раз, а
// за каждой сущностью закреплён только дескриптор.
type TableSchema[E any] struct {
	Table   string
	Columns []string
	Values  func(e E) []any
	Scan    func(row pgx.Row) (E, error)
}

type CrudRepositoryInterface[E any] interface {
	Create(ctx context.Context, tx pgx.Tx, e E) (uint64, error)
	GetAll(ctx context.Context) ([]E, error)
	FindByID(ctx context.Context, tx pgx.Tx, id uint64) (E, error)
	Update(ctx context.Context, tx pgx.Tx, id uint64, e E) error
	Delete(ctx context.Context, tx pgx.Tx, id uint64) error
}

type crudRepository[E any] struct {
	storage *pgxpool.Pool
	schema  TableSchema[E]
	logger  *zap.Logger
}

func NewCrudRepository[E any](storage *pgxpool.Pool, schema TableSchema[E], logger *zap.Logger) CrudRepositoryInterface[E] {
	return &crudRepository[E]{storage: storage, schema: schema, logger: logger}
}

func (r *crudRepository[E]) getQuerier(tx pgx.Tx) querier {
	if tx != nil {
		return tx
	}
	return r.storage
}

func (r *crudRepository[E]) selectFields() string {
	return "id, " + strings.Join(r.schema.Columns, ", ")
}

func (r *crudRepository[E]) Create(ctx context.Context, tx pgx.Tx, e E) (uint64, error) {
	psql := sq.StatementBuilder.PlaceholderFormat(sq.Dollar)
	query, args, err := psql.Insert(r.schema.Table).
		Columns(r.schema.Columns...).
		Values(r.schema.Values(e)...).
		Suffix("RETURNING id").
		ToSql()
	if err != nil {
		return 0, fmt.Errorf("ошибка сборки запроса Create: %w", err)
	}

	var newID uint64
	if err := r.getQuerier(tx).QueryRow(ctx, query, args...).Scan(&newID); err != nil {
		var pgErr *pgconn.PgError
		if errors.As(err, &pgErr) && pgErr.Code == "23505" {
			return 0, fmt.Errorf("%s: нарушение уникальности (%s): %w", r.schema.Table, pgErr.ConstraintName, apperrors.ErrConflict)
		}
		return 0, fmt.Errorf("ошибка создания %s: %w", r.schema.Table, err)
	}
	return newID, nil
}

func (r *crudRepository[E]) GetAll(ctx context.Context) ([]E, error) {
	psql := sq.StatementBuilder.PlaceholderFormat(sq.Dollar)
	query, args, err := psql.Select(r.selectFields()).
		From(r.schema.Table).
		OrderBy("id").
		ToSql()
	if err != nil {
		return nil, fmt.Errorf("ошибка сборки запроса GetAll: %w", err)
	}

	rows, err := r.storage.Query(ctx, query, args...)
	if err != nil {
		return nil, fmt.Errorf("ошибка выполнения GetAll по %s: %w", r.schema.Table, err)
	}
	defer rows.Close()

	items := make([]E, 0)
	for rows.Next() {
		item, err := r.schema.Scan(rows)
		if err != nil {
			r.logger.Error("Ошибка сканирования строки", zap.String("table", r.schema.Table), zap.Error(err))
			return nil, err
		}
		items = append(items, item)
	}

	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("ошибка итерации rows по %s: %w", r.schema.Table, err)
	}

	return items, nil
}

func (r *crudRepository[E]) FindByID(ctx context.Context, tx pgx.Tx, id uint64) (E, error) {
	var zero E
	psql := sq.StatementBuilder.PlaceholderFormat(sq.Dollar)
	query, args, err := psql.Select(r.selectFields()).
		From(r.schema.Table).
		Where(sq.Eq{"id": id}).
		ToSql()
	if err != nil {
		return zero, fmt.Errorf("ошибка сборки запроса FindByID: %w", err)
	}

	item, err := r.schema.Scan(r.getQuerier(tx).QueryRow(ctx, query, args...))
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return zero, apperrors.ErrNotFound
		}
		return zero, fmt.Errorf("ошибка сканирования %s: %w", r.schema.Table, err)
	}
	return item, nil
}

func (r *crudRepository[E]) Update(ctx context.Context, tx pgx.Tx, id uint64, e E) error {
	psql := sq.StatementBuilder.PlaceholderFormat(sq.Dollar)
	builder := psql.Update(r.schema.Table)
	values := r.schema.Values(e)
	for i, column := range r.schema.Columns {
		builder = builder.Set(column, values[i])
	}
	query, args, err := builder.Where(sq.Eq{"id": id}).ToSql()
	if err != nil {
		return fmt.Errorf("ошибка сборки запроса Update: %w", err)
	}

	result, err := r.getQuerier(tx).Exec(ctx, query, args...)
	if err != nil {
		var pgErr *pgconn.PgError
		if errors.As(err, &pgErr) && pgErr.Code == "23505" {
			return fmt.Errorf("%s: нарушение уникальности (%s): %w", r.schema.Table, pgErr.ConstraintName, apperrors.ErrConflict)
		}
		return fmt.Errorf("ошибка обновления %s: %w", r.schema.Table, err)
	}

	if result.RowsAffected() == 0 {
		return apperrors.ErrNotFound
	}
	return nil
}

func (r *crudRepository[E]) Delete(ctx context.Context, tx pgx.Tx, id uint64) error {
	psql := sq.StatementBuilder.PlaceholderFormat(sq.Dollar)
	query, args, err := psql.Delete(r.schema.Table).Where(sq.Eq{"id": id}).ToSql()
	if err != nil {
		return fmt.Errorf("ошибка сборки запроса Delete: %w", err)
	}

	result, err := r.getQuerier(tx).Exec(ctx, query, args...)
	if err != nil {
		return fmt.Errorf("ошибка удаления из %s: %w", r.schema.Table, err)
	}
	if result.RowsAffected() == 0 {
		return apperrors.ErrNotFound
	}
	return nil
}
