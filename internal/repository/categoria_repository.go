package repository

import (
	"github.com/lojaviva/lojaviva-api/internal/models"

	"gorm.io/gorm"
)

// CategoriaRepository category data access.
type CategoriaRepository interface {
	Create(categoria *models.Categoria) error
	GetByID(id uint) (*models.Categoria, error)
	GetAll() ([]models.Categoria, error)
	Update(id uint, values map[string]interface{}) (int64, error)
	Delete(id uint) (int64, error)
	FindWithPagination(limit, offset int) ([]models.Categoria, int64, error)
	CountProdutos(categoriaID uint) (int64, error)
	WithTx(tx *gorm.DB) *GormCategoriaRepository
}

// GormCategoriaRepository GORM implementation.
type GormCategoriaRepository struct {
	*Base[models.Categoria]
}

// NewCategoriaRepository creates a category repository.
func NewCategoriaRepository(db *gorm.DB) *GormCategoriaRepository {
	return &GormCategoriaRepository{Base: NewBase[models.Categoria](db)}
}

// WithTx binds the repository to a transaction.
func (r *GormCategoriaRepository) WithTx(tx *gorm.DB) *GormCategoriaRepository {
	if tx == nil {
		return r
	}
	return &GormCategoriaRepository{Base: r.Base.WithTx(tx)}
}

// CountProdutos counts products linked to the category.
func (r *GormCategoriaRepository) CountProdutos(categoriaID uint) (int64, error) {
	var count int64
	if err := r.DB().Model(&models.CategoriaProduto{}).
		Where("categoria_id = ?", categoriaID).
		Count(&count).Error; err != nil {
		return 0, err
	}
	return count, nil
}
