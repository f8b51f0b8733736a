package service

import (
	"time"

	"github.com/lojaviva/lojaviva-api/internal/constants"
	"github.com/lojaviva/lojaviva-api/internal/models"
	"github.com/lojaviva/lojaviva-api/internal/repository"

	"gorm.io/gorm"
)

// PagamentoService payment processing against order totals.
type PagamentoService struct {
	pagamentoRepo repository.PagamentoRepository
	pedidoRepo    repository.PedidoRepository
	pedidoService *PedidoService
}

// NewPagamentoService creates the payment service.
func NewPagamentoService(pagamentoRepo repository.PagamentoRepository, pedidoRepo repository.PedidoRepository, pedidoService *PedidoService) *PagamentoService {
	return &PagamentoService{
		pagamentoRepo: pagamentoRepo,
		pedidoRepo:    pedidoRepo,
		pedidoService: pedidoService,
	}
}

// RealizarPagamentoInput payment input.
type RealizarPagamentoInput struct {
	PedidoID        uint
	UsuarioID       uint
	ValorPago       models.Money
	MetodoPagamento string
}

// Realizar validates the amount against the order's frozen total,
// marks the order paid and records the payment in one transaction.
func (s *PagamentoService) Realizar(input RealizarPagamentoInput) (*models.Pagamento, error) {
	var pagamento *models.Pagamento

	err := models.DB.Transaction(func(tx *gorm.DB) error {
		pedidoRepo := s.pedidoRepo.WithTx(tx)
		pagamentoRepo := s.pagamentoRepo.WithTx(tx)

		pedido, err := pedidoRepo.GetByID(input.PedidoID)
		if err != nil {
			return err
		}
		if pedido == nil {
			return ErrPedidoNotFound
		}
		if !input.ValorPago.Decimal.Equal(pedido.ValorTotal.Decimal) {
			return ErrValorPagamentoInvalido
		}

		if _, err := pedidoRepo.UpdateStatus(pedido.ID, constants.PedidoStatusPago); err != nil {
			return err
		}

		usuarioID := input.UsuarioID
		if usuarioID == 0 {
			usuarioID = pedido.UsuarioID
		}
		pagamento = &models.Pagamento{
			DataPagamento:   time.Now(),
			ValorPago:       input.ValorPago,
			MetodoPagamento: input.MetodoPagamento,
			StatusPagamento: constants.PagamentoStatusAprovado,
			UsuarioID:       usuarioID,
			PedidoID:        pedido.ID,
		}
		return pagamentoRepo.Create(pagamento)
	})
	if err != nil {
		return nil, err
	}

	if s.pedidoService != nil {
		s.pedidoService.enqueueStatusEmail(pagamento.PedidoID, constants.PedidoStatusPago)
	}
	return pagamento, nil
}

// GetByID returns the payment or ErrNotFound.
func (s *PagamentoService) GetByID(id uint) (*models.Pagamento, error) {
	pagamento, err := s.pagamentoRepo.GetByID(id)
	if err != nil {
		return nil, err
	}
	if pagamento == nil {
		return nil, ErrNotFound
	}
	return pagamento, nil
}

// GetAll returns every payment.
func (s *PagamentoService) GetAll() ([]models.Pagamento, error) {
	return s.pagamentoRepo.GetAll()
}

// ListByPedido returns the payments of an order.
func (s *PagamentoService) ListByPedido(pedidoID uint) ([]models.Pagamento, error) {
	return s.pagamentoRepo.ListByPedido(pedidoID)
}

// Delete removes a payment record after checking it exists.
func (s *PagamentoService) Delete(id uint) error {
	pagamento, err := s.pagamentoRepo.GetByID(id)
	if err != nil {
		return err
	}
	if pagamento == nil {
		return ErrNotFound
	}
	affected, err := s.pagamentoRepo.Delete(id)
	if err != nil {
		return err
	}
	if affected == 0 {
		return ErrDeleteFailed
	}
	return nil
}
