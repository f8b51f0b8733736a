package repository

import (
	"errors"

	"github.com/lojaviva/lojaviva-api/internal/models"

	"gorm.io/gorm"
	"gorm.io/gorm/clause"
)

// CarrinhoRepository cart data access.
type CarrinhoRepository interface {
	Create(carrinho *models.Carrinho) error
	GetByID(id uint) (*models.Carrinho, error)
	GetByUsuarioID(usuarioID uint) (*models.Carrinho, error)
	GetWithVariacoes(id uint) (*models.Carrinho, error)
	GetWithVariacoesByUsuarioID(usuarioID uint) (*models.Carrinho, error)
	GetWithVariacoesForUpdate(id uint) (*models.Carrinho, error)
	AddVariacao(carrinhoID, variacaoID uint) error
	ClearVariacoes(carrinhoID uint) (int64, error)
	Delete(id uint) (int64, error)
	WithTx(tx *gorm.DB) *GormCarrinhoRepository
}

// GormCarrinhoRepository GORM implementation.
type GormCarrinhoRepository struct {
	*Base[models.Carrinho]
}

// NewCarrinhoRepository creates a cart repository.
func NewCarrinhoRepository(db *gorm.DB) *GormCarrinhoRepository {
	return &GormCarrinhoRepository{Base: NewBase[models.Carrinho](db)}
}

// WithTx binds the repository to a transaction.
func (r *GormCarrinhoRepository) WithTx(tx *gorm.DB) *GormCarrinhoRepository {
	if tx == nil {
		return r
	}
	return &GormCarrinhoRepository{Base: r.Base.WithTx(tx)}
}

// GetByUsuarioID returns the user's cart or nil when absent.
func (r *GormCarrinhoRepository) GetByUsuarioID(usuarioID uint) (*models.Carrinho, error) {
	var carrinho models.Carrinho
	if err := r.DB().Where("usuario_id = ?", usuarioID).First(&carrinho).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, nil
		}
		return nil, err
	}
	return &carrinho, nil
}

// GetWithVariacoes returns the cart with its variation set loaded.
func (r *GormCarrinhoRepository) GetWithVariacoes(id uint) (*models.Carrinho, error) {
	var carrinho models.Carrinho
	if err := r.DB().Preload("Variacoes").First(&carrinho, id).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, nil
		}
		return nil, err
	}
	return &carrinho, nil
}

// GetWithVariacoesByUsuarioID returns the user's cart with variations.
func (r *GormCarrinhoRepository) GetWithVariacoesByUsuarioID(usuarioID uint) (*models.Carrinho, error) {
	var carrinho models.Carrinho
	if err := r.DB().Preload("Variacoes").Where("usuario_id = ?", usuarioID).First(&carrinho).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, nil
		}
		return nil, err
	}
	return &carrinho, nil
}

// GetWithVariacoesForUpdate loads the cart under a row lock so
// concurrent checkouts of the same cart serialize.
func (r *GormCarrinhoRepository) GetWithVariacoesForUpdate(id uint) (*models.Carrinho, error) {
	var carrinho models.Carrinho
	if err := r.DB().Clauses(clause.Locking{Strength: "UPDATE"}).
		Preload("Variacoes").
		First(&carrinho, id).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, nil
		}
		return nil, err
	}
	return &carrinho, nil
}

// AddVariacao inserts a join row. Duplicate adds hit the composite key
// and are silently dropped, keeping the operation idempotent.
func (r *GormCarrinhoRepository) AddVariacao(carrinhoID, variacaoID uint) error {
	row := models.CarrinhoProdutoVariacao{
		CarrinhoID:        carrinhoID,
		ProdutoVariacaoID: variacaoID,
	}
	return r.DB().Clauses(clause.OnConflict{DoNothing: true}).Create(&row).Error
}

// ClearVariacoes removes every join row of the cart in one statement
// and returns how many were removed.
func (r *GormCarrinhoRepository) ClearVariacoes(carrinhoID uint) (int64, error) {
	result := r.DB().Where("carrinho_id = ?", carrinhoID).Delete(&models.CarrinhoProdutoVariacao{})
	if result.Error != nil {
		return 0, result.Error
	}
	return result.RowsAffected, nil
}
