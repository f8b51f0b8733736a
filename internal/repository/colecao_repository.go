package repository

import (
	"github.com/lojaviva/lojaviva-api/internal/models"

	"gorm.io/gorm"
)

// ColecaoRepository collection data access.
type ColecaoRepository interface {
	Create(colecao *models.Colecao) error
	GetByID(id uint) (*models.Colecao, error)
	GetAll() ([]models.Colecao, error)
	Update(id uint, values map[string]interface{}) (int64, error)
	Delete(id uint) (int64, error)
	FindWithPagination(limit, offset int) ([]models.Colecao, int64, error)
	WithTx(tx *gorm.DB) *GormColecaoRepository
}

// GormColecaoRepository GORM implementation.
type GormColecaoRepository struct {
	*Base[models.Colecao]
}

// NewColecaoRepository creates a collection repository.
func NewColecaoRepository(db *gorm.DB) *GormColecaoRepository {
	return &GormColecaoRepository{Base: NewBase[models.Colecao](db)}
}

// WithTx binds the repository to a transaction.
func (r *GormColecaoRepository) WithTx(tx *gorm.DB) *GormColecaoRepository {
	if tx == nil {
		return r
	}
	return &GormColecaoRepository{Base: r.Base.WithTx(tx)}
}
