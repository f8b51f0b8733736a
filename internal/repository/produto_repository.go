package repository

import (
	"errors"
	"fmt"
	"strings"

	"github.com/lojaviva/lojaviva-api/internal/models"

	"gorm.io/gorm"
)

// ProdutoListFilter product listing filter.
type ProdutoListFilter struct {
	Page        int
	PageSize    int
	CategoriaID uint
	ColecaoID   uint
	Search      string
}

// ProdutoRepository product data access.
type ProdutoRepository interface {
	Create(produto *models.Produto) error
	GetByID(id uint) (*models.Produto, error)
	GetAll() ([]models.Produto, error)
	Update(id uint, values map[string]interface{}) (int64, error)
	Delete(id uint) (int64, error)
	FindWithPagination(limit, offset int) ([]models.Produto, int64, error)
	GetWithDetalhes(id uint) (*models.Produto, error)
	List(filter ProdutoListFilter) ([]models.Produto, int64, error)
	WithTx(tx *gorm.DB) *GormProdutoRepository
}

// GormProdutoRepository GORM implementation.
type GormProdutoRepository struct {
	*Base[models.Produto]
}

// NewProdutoRepository creates a product repository.
func NewProdutoRepository(db *gorm.DB) *GormProdutoRepository {
	return &GormProdutoRepository{Base: NewBase[models.Produto](db)}
}

// WithTx binds the repository to a transaction.
func (r *GormProdutoRepository) WithTx(tx *gorm.DB) *GormProdutoRepository {
	if tx == nil {
		return r
	}
	return &GormProdutoRepository{Base: r.Base.WithTx(tx)}
}

// GetWithDetalhes returns the product with categories, variations and
// collection loaded, or nil when absent.
func (r *GormProdutoRepository) GetWithDetalhes(id uint) (*models.Produto, error) {
	var produto models.Produto
	if err := r.DB().
		Preload("Categorias").
		Preload("Variacoes").
		Preload("Colecao").
		First(&produto, id).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, nil
		}
		return nil, err
	}
	return &produto, nil
}

// List returns a filtered page of products plus the total count.
func (r *GormProdutoRepository) List(filter ProdutoListFilter) ([]models.Produto, int64, error) {
	query := r.DB().Model(&models.Produto{})
	if filter.ColecaoID > 0 {
		query = query.Where("colecao_id = ?", filter.ColecaoID)
	}
	if filter.CategoriaID > 0 {
		query = query.Joins("JOIN tb_categoriaproduto cp ON cp.produto_id = tb_produtos.id").
			Where("cp.categoria_id = ?", filter.CategoriaID)
	}
	if search := strings.TrimSpace(filter.Search); search != "" {
		like := "%" + search + "%"
		operator := likeOperator(r.DB())
		query = query.Where(
			fmt.Sprintf("nome %s ? OR descricao %s ?", operator, operator),
			like, like,
		)
	}

	var total int64
	if err := query.Count(&total).Error; err != nil {
		return nil, 0, err
	}

	var produtos []models.Produto
	query = applyPagination(query.Order("id DESC"), filter.Page, filter.PageSize)
	if err := query.Find(&produtos).Error; err != nil {
		return nil, 0, err
	}
	return produtos, total, nil
}
