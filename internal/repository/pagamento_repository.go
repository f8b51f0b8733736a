package repository

import (
	"github.com/lojaviva/lojaviva-api/internal/models"

	"gorm.io/gorm"
)

// PagamentoRepository payment data access.
type PagamentoRepository interface {
	Create(pagamento *models.Pagamento) error
	GetByID(id uint) (*models.Pagamento, error)
	GetAll() ([]models.Pagamento, error)
	Update(id uint, values map[string]interface{}) (int64, error)
	Delete(id uint) (int64, error)
	FindWithPagination(limit, offset int) ([]models.Pagamento, int64, error)
	ListByPedido(pedidoID uint) ([]models.Pagamento, error)
	WithTx(tx *gorm.DB) *GormPagamentoRepository
}

// GormPagamentoRepository GORM implementation.
type GormPagamentoRepository struct {
	*Base[models.Pagamento]
}

// NewPagamentoRepository creates a payment repository.
func NewPagamentoRepository(db *gorm.DB) *GormPagamentoRepository {
	return &GormPagamentoRepository{Base: NewBase[models.Pagamento](db)}
}

// WithTx binds the repository to a transaction.
func (r *GormPagamentoRepository) WithTx(tx *gorm.DB) *GormPagamentoRepository {
	if tx == nil {
		return r
	}
	return &GormPagamentoRepository{Base: r.Base.WithTx(tx)}
}

// ListByPedido returns every payment recorded for an order.
func (r *GormPagamentoRepository) ListByPedido(pedidoID uint) ([]models.Pagamento, error) {
	var pagamentos []models.Pagamento
	if err := r.DB().Where("pedido_id = ?", pedidoID).Order("id ASC").Find(&pagamentos).Error; err != nil {
		return nil, err
	}
	return pagamentos, nil
}
