package service

import (
	"github.com/lojaviva/lojaviva-api/internal/repository"
)

// Base generic service over a repository. Missing rows become
// ErrNotFound here so handlers never see raw gorm errors.
type Base[T any] struct {
	repo *repository.Base[T]
}

// NewBase creates a generic service.
func NewBase[T any](repo *repository.Base[T]) *Base[T] {
	return &Base[T]{repo: repo}
}

// Create persists a new entity.
func (s *Base[T]) Create(entity *T) (*T, error) {
	if err := s.repo.Create(entity); err != nil {
		return nil, err
	}
	return entity, nil
}

// GetByID returns the entity or ErrNotFound.
func (s *Base[T]) GetByID(id uint) (*T, error) {
	entity, err := s.repo.GetByID(id)
	if err != nil {
		return nil, err
	}
	if entity == nil {
		return nil, ErrNotFound
	}
	return entity, nil
}

// GetAll returns every row. An empty result is success.
func (s *Base[T]) GetAll() ([]T, error) {
	return s.repo.GetAll()
}

// Update applies a partial update. A zero-row update on an existing
// entity maps to ErrUpdateFailed, a missing entity to ErrNotFound.
func (s *Base[T]) Update(id uint, values map[string]interface{}) (int64, error) {
	existing, err := s.repo.GetByID(id)
	if err != nil {
		return 0, err
	}
	if existing == nil {
		return 0, ErrNotFound
	}
	affected, err := s.repo.Update(id, values)
	if err != nil {
		return 0, err
	}
	return affected, nil
}

// Delete checks existence then removes the row. Zero rows affected
// after the check is an internal failure, not a not-found.
func (s *Base[T]) Delete(id uint) error {
	existing, err := s.repo.GetByID(id)
	if err != nil {
		return err
	}
	if existing == nil {
		return ErrNotFound
	}
	affected, err := s.repo.Delete(id)
	if err != nil {
		return err
	}
	if affected == 0 {
		return ErrDeleteFailed
	}
	return nil
}

// ListPaginated returns a page of rows plus the total count.
func (s *Base[T]) ListPaginated(limit, offset int) ([]T, int64, error) {
	return s.repo.FindWithPagination(limit, offset)
}
