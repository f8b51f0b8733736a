package repository

import (
	"errors"

	"github.com/lojaviva/lojaviva-api/internal/models"

	"gorm.io/gorm"
)

// ProdutoVariacaoRepository variation data access.
type ProdutoVariacaoRepository interface {
	Create(variacao *models.ProdutoVariacao) error
	GetByID(id uint) (*models.ProdutoVariacao, error)
	GetAll() ([]models.ProdutoVariacao, error)
	Update(id uint, values map[string]interface{}) (int64, error)
	Delete(id uint) (int64, error)
	FindWithPagination(limit, offset int) ([]models.ProdutoVariacao, int64, error)
	ListByProduto(produtoID uint) ([]models.ProdutoVariacao, error)
	GetByProdutoCorTamanho(produtoID uint, cor, tamanho string) (*models.ProdutoVariacao, error)
	WithTx(tx *gorm.DB) *GormProdutoVariacaoRepository
}

// GormProdutoVariacaoRepository GORM implementation.
type GormProdutoVariacaoRepository struct {
	*Base[models.ProdutoVariacao]
}

// NewProdutoVariacaoRepository creates a variation repository.
func NewProdutoVariacaoRepository(db *gorm.DB) *GormProdutoVariacaoRepository {
	return &GormProdutoVariacaoRepository{Base: NewBase[models.ProdutoVariacao](db)}
}

// WithTx binds the repository to a transaction.
func (r *GormProdutoVariacaoRepository) WithTx(tx *gorm.DB) *GormProdutoVariacaoRepository {
	if tx == nil {
		return r
	}
	return &GormProdutoVariacaoRepository{Base: r.Base.WithTx(tx)}
}

// ListByProduto returns every variation of a product.
func (r *GormProdutoVariacaoRepository) ListByProduto(produtoID uint) ([]models.ProdutoVariacao, error) {
	var variacoes []models.ProdutoVariacao
	if err := r.DB().Where("produto_id = ?", produtoID).Order("id ASC").Find(&variacoes).Error; err != nil {
		return nil, err
	}
	return variacoes, nil
}

// GetByProdutoCorTamanho looks a variation up by its natural key, or
// nil when absent.
func (r *GormProdutoVariacaoRepository) GetByProdutoCorTamanho(produtoID uint, cor, tamanho string) (*models.ProdutoVariacao, error) {
	var variacao models.ProdutoVariacao
	if err := r.DB().
		Where("produto_id = ? AND cor = ? AND tamanho = ?", produtoID, cor, tamanho).
		First(&variacao).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, nil
		}
		return nil, err
	}
	return &variacao, nil
}
