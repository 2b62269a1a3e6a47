package repositories

import (
	"context"
	"errors"

	"gorm.io/gorm"
)

// EntityRepository is the storage contract shared by POI, Flora and Fauna.
// Every method works on the session handed in by the caller; the repository
// never opens or commits transactions itself.
type EntityRepository[T any] interface {
	List(ctx context.Context, session *gorm.DB, skip, limit int) ([]T, error)
	GetByID(ctx context.Context, session *gorm.DB, id int64) (*T, error)
	Create(ctx context.Context, session *gorm.DB, entity *T) error
	Delete(ctx context.Context, session *gorm.DB, id int64) error
}

type entityRepository[T any] struct{}

// List returns up to limit records after skipping skip, oldest first.
func (r entityRepository[T]) List(ctx context.Context, session *gorm.DB, skip, limit int) ([]T, error) {
	items := make([]T, 0)
	if limit <= 0 {
		return items, nil
	}

	err := session.WithContext(ctx).
		Order("id ASC").
		Offset(skip).
		Limit(limit).
		Find(&items).Error
	if err != nil {
		return nil, err
	}
	return items, nil
}

// GetByID returns nil and no error when the record does not exist.
func (r entityRepository[T]) GetByID(ctx context.Context, session *gorm.DB, id int64) (*T, error) {
	var item T
	err := session.WithContext(ctx).First(&item, "id = ?", id).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, nil
		}
		return nil, err
	}
	return &item, nil
}

func (r entityRepository[T]) Create(ctx context.Context, session *gorm.DB, entity *T) error {
	return session.WithContext(ctx).Create(entity).Error
}

// Delete is idempotent: deleting a missing id is not an error.
func (r entityRepository[T]) Delete(ctx context.Context, session *gorm.DB, id int64) error {
	err := session.WithContext(ctx).Delete(new(T), "id = ?", id).Error
	if err != nil && !errors.Is(err, gorm.ErrRecordNotFound) {
		return err
	}
	return nil
}
