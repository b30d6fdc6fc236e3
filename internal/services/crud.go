package services

import (
	"context"

	"github.com/jackc/pgx/v5"
	"go.uber.org/zap"

	"repair-system/internal/repositories"
)

type CrudServiceInterface[E any] interface {
	Create(ctx context.Context, e E) (uint64, error)
	GetAll(ctx context.Context) ([]E, error)
	FindByID(ctx context.Context, id uint64) (E, error)
	Update(ctx context.Context, id uint64, apply func(current E) E) (E, error)
	Delete(ctx context.Context, id uint64) error
}

// CrudService - общий сервис для всех шести сущностей. Каждая пишущая
// операция выполняется в одной транзакции; чтения идут напрямую через пул.
type CrudService[E any] struct {
	entity    string
	repo      repositories.CrudRepositoryInterface[E]
	txManager repositories.TxManagerInterface
	logger    *zap.Logger
}

func NewCrudService[E any](
	entity string,
	repo repositories.CrudRepositoryInterface[E],
	txManager repositories.TxManagerInterface,
	logger *zap.Logger,
) *CrudService[E] {
	return &CrudService[E]{
		entity:    entity,
		repo:      repo,
		txManager: txManager,
		logger:    logger,
	}
}

func (s *CrudService[E]) Create(ctx context.Context, e E) (uint64, error) {
	var newID uint64
	err := s.txManager.RunInTransaction(ctx, func(tx pgx.Tx) error {
		id, err := s.repo.Create(ctx, tx, e)
		if err != nil {
			return err
		}
		newID = id
		return nil
	})
	if err != nil {
		s.logger.Error("Ошибка при создании записи", zap.String("entity", s.entity), zap.Error(err))
		return 0, err
	}
	s.logger.Info("Запись создана", zap.String("entity", s.entity), zap.Uint64("id", newID))
	return newID, nil
}

func (s *CrudService[E]) GetAll(ctx context.Context) ([]E, error) {
	items, err := s.repo.GetAll(ctx)
	if err != nil {
		s.logger.Error("Ошибка при получении списка", zap.String("entity", s.entity), zap.Error(err))
		return nil, err
	}
	return items, nil
}

func (s *CrudService[E]) FindByID(ctx context.Context, id uint64) (E, error) {
	return s.repo.FindByID(ctx, nil, id)
}

// Update делает read-modify-write в одной транзакции: текущая запись
// читается, apply накладывает изменения, результат пишется обратно.
func (s *CrudService[E]) Update(ctx context.Context, id uint64, apply func(current E) E) (E, error) {
	var updated E
	err := s.txManager.RunInTransaction(ctx, func(tx pgx.Tx) error {
		current, err := s.repo.FindByID(ctx, tx, id)
		if err != nil {
			return err
		}
		updated = apply(current)
		return s.repo.Update(ctx, tx, id, updated)
	})
	if err != nil {
		var zero E
		s.logger.Error("Ошибка при обновлении записи", zap.String("entity", s.entity), zap.Uint64("id", id), zap.Error(err))
		return zero, err
	}
	return updated, nil
}

func (s *CrudService[E]) Delete(ctx context.Context, id uint64) error {
	err := s.txManager.RunInTransaction(ctx, func(tx pgx.Tx) error {
		return s.repo.Delete(ctx, tx, id)
	})
	if err != nil {
		s.logger.Error("Ошибка при удалении записи", zap.String("entity", s.entity), zap.Uint64("id", id), zap.Error(err))
		return err
	}
	return nil
}
