package repository

import (
	"time"

	"github.com/lojaviva/lojaviva-api/internal/models"

	"gorm.io/gorm"
)

// PedidoListFilter order listing filter.
type PedidoListFilter struct {
	Page        int
	PageSize    int
	UsuarioID   uint
	Status      string
	CreatedFrom *time.Time
	CreatedTo   *time.Time
}

// PedidoRepository order data access.
type PedidoRepository interface {
	Create(pedido *models.Pedido) error
	GetByID(id uint) (*models.Pedido, error)
	GetAll() ([]models.Pedido, error)
	Update(id uint, values map[string]interface{}) (int64, error)
	Delete(id uint) (int64, error)
	FindWithPagination(limit, offset int) ([]models.Pedido, int64, error)
	List(filter PedidoListFilter) ([]models.Pedido, int64, error)
	UpdateStatus(id uint, status string) (int64, error)
	WithTx(tx *gorm.DB) *GormPedidoRepository
}

// GormPedidoRepository GORM implementation.
type GormPedidoRepository struct {
	*Base[models.Pedido]
}

// NewPedidoRepository creates an order repository.
func NewPedidoRepository(db *gorm.DB) *GormPedidoRepository {
	return &GormPedidoRepository{Base: NewBase[models.Pedido](db)}
}

// WithTx binds the repository to a transaction.
func (r *GormPedidoRepository) WithTx(tx *gorm.DB) *GormPedidoRepository {
	if tx == nil {
		return r
	}
	return &GormPedidoRepository{Base: r.Base.WithTx(tx)}
}

// List returns a filtered page of orders plus the total count.
func (r *GormPedidoRepository) List(filter PedidoListFilter) ([]models.Pedido, int64, error) {
	query := r.DB().Model(&models.Pedido{})
	if filter.UsuarioID > 0 {
		query = query.Where("usuario_id = ?", filter.UsuarioID)
	}
	if filter.Status != "" {
		query = query.Where("status_pedido = ?", filter.Status)
	}
	if filter.CreatedFrom != nil {
		query = query.Where("created_at >= ?", *filter.CreatedFrom)
	}
	if filter.CreatedTo != nil {
		query = query.Where("created_at <= ?", *filter.CreatedTo)
	}

	var total int64
	if err := query.Count(&total).Error; err != nil {
		return nil, 0, err
	}

	var pedidos []models.Pedido
	query = applyPagination(query.Order("id DESC"), filter.Page, filter.PageSize)
	if err := query.Find(&pedidos).Error; err != nil {
		return nil, 0, err
	}
	return pedidos, total, nil
}

// UpdateStatus updates the status label and returns affected rows.
func (r *GormPedidoRepository) UpdateStatus(id uint, status string) (int64, error) {
	result := r.DB().Model(&models.Pedido{}).Where("id = ?", id).Update("status_pedido", status)
	if result.Error != nil {
		return 0, result.Error
	}
	return result.RowsAffected, nil
}
