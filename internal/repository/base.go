package repository

import (
	"errors"

	"gorm.io/gorm"
)

// Base generic data access over a single entity type. Per-entity
// repositories embed it and add their own queries.
type Base[T any] struct {
	db *gorm.DB
}

// NewBase creates a generic repository.
func NewBase[T any](db *gorm.DB) *Base[T] {
	return &Base[T]{db: db}
}

// WithTx binds the repository to a transaction.
func (r *Base[T]) WithTx(tx *gorm.DB) *Base[T] {
	if tx == nil {
		return r
	}
	return &Base[T]{db: tx}
}

// DB exposes the underlying handle for entity-specific queries.
func (r *Base[T]) DB() *gorm.DB {
	return r.db
}

// Create persists a new entity.
func (r *Base[T]) Create(entity *T) error {
	return r.db.Create(entity).Error
}

// GetByID returns the entity or nil when absent.
func (r *Base[T]) GetByID(id uint) (*T, error) {
	var entity T
	if err := r.db.First(&entity, id).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, nil
		}
		return nil, err
	}
	return &entity, nil
}

// GetAll returns every row.
func (r *Base[T]) GetAll() ([]T, error) {
	var entities []T
	if err := r.db.Find(&entities).Error; err != nil {
		return nil, err
	}
	return entities, nil
}

// Update applies a partial update by id and returns affected rows.
func (r *Base[T]) Update(id uint, values map[string]interface{}) (int64, error) {
	var entity T
	result := r.db.Model(&entity).Where("id = ?", id).Updates(values)
	if result.Error != nil {
		return 0, result.Error
	}
	return result.RowsAffected, nil
}

// Delete removes a row by id and returns affected rows.
func (r *Base[T]) Delete(id uint) (int64, error) {
	var entity T
	result := r.db.Delete(&entity, id)
	if result.Error != nil {
		return 0, result.Error
	}
	return result.RowsAffected, nil
}

// FindWithPagination returns a page of rows plus the total count.
func (r *Base[T]) FindWithPagination(limit, offset int) ([]T, int64, error) {
	var entities []T
	var total int64
	var entity T
	if err := r.db.Model(&entity).Count(&total).Error; err != nil {
		return nil, 0, err
	}
	query := r.db
	if limit > 0 {
		query = query.Limit(limit)
	}
	if offset > 0 {
		query = query.Offset(offset)
	}
	if err := query.Find(&entities).Error; err != nil {
		return nil, 0, err
	}
	return entities, total, nil
}
