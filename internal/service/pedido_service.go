package service

import (
	"time"

	"github.com/lojaviva/lojaviva-api/internal/constants"
	"github.com/lojaviva/lojaviva-api/internal/logger"
	"github.com/lojaviva/lojaviva-api/internal/models"
	"github.com/lojaviva/lojaviva-api/internal/queue"
	"github.com/lojaviva/lojaviva-api/internal/repository"

	"github.com/shopspring/decimal"
	"gorm.io/gorm"
)

// PedidoService checkout and order lifecycle.
type PedidoService struct {
	pedidoRepo   repository.PedidoRepository
	carrinhoRepo repository.CarrinhoRepository
	queueClient  *queue.Client
}

// NewPedidoService creates the order service.
func NewPedidoService(pedidoRepo repository.PedidoRepository, carrinhoRepo repository.CarrinhoRepository, queueClient *queue.Client) *PedidoService {
	return &PedidoService{
		pedidoRepo:   pedidoRepo,
		carrinhoRepo: carrinhoRepo,
		queueClient:  queueClient,
	}
}

// CreateFromCarrinhoInput checkout input.
type CreateFromCarrinhoInput struct {
	CarrinhoID    uint
	ValorEntrega  models.Money
	ValorDesconto models.Money
}

// CreateFromCarrinho turns the cart into an order. The cart is read
// under a row lock, the total is frozen as
// sum(preco) + entrega - desconto, and the order create plus the cart
// clear commit in one transaction.
func (s *PedidoService) CreateFromCarrinho(input CreateFromCarrinhoInput) (*models.Pedido, error) {
	var pedido *models.Pedido

	err := models.DB.Transaction(func(tx *gorm.DB) error {
		carrinhoRepo := s.carrinhoRepo.WithTx(tx)
		pedidoRepo := s.pedidoRepo.WithTx(tx)

		carrinho, err := carrinhoRepo.GetWithVariacoesForUpdate(input.CarrinhoID)
		if err != nil {
			return err
		}
		if carrinho == nil {
			return ErrCarrinhoNotFound
		}
		if len(carrinho.Variacoes) == 0 {
			return ErrCarrinhoVazio
		}

		subtotal := decimal.Zero
		for _, variacao := range carrinho.Variacoes {
			subtotal = subtotal.Add(variacao.Preco.Decimal)
		}
		total := subtotal.Add(input.ValorEntrega.Decimal).Sub(input.ValorDesconto.Decimal)
		if total.IsNegative() {
			return ErrValorPedidoNegativo
		}

		now := time.Now()
		pedido = &models.Pedido{
			StatusPedido: constants.PedidoStatusPendente,
			DataPedido:   now,
			DataEntrega:  now.Add(constants.PedidoEntregaHoras * time.Hour),
			ValorTotal:   models.NewMoneyFromDecimal(total),
			UsuarioID:    carrinho.UsuarioID,
			CarrinhoID:   carrinho.ID,
		}
		if err := pedidoRepo.Create(pedido); err != nil {
			logger.Errorw("pedido_create_failed", "carrinho_id", carrinho.ID, "error", err)
			return ErrPedidoCreateFailed
		}

		if _, err := carrinhoRepo.ClearVariacoes(carrinho.ID); err != nil {
			logger.Errorw("carrinho_clear_failed", "carrinho_id", carrinho.ID, "error", err)
			return ErrCarrinhoClearFailed
		}
		return nil
	})
	if err != nil {
		return nil, err
	}

	s.enqueueStatusEmail(pedido.ID, pedido.StatusPedido)
	return pedido, nil
}

// SetPago marks the order paid when the amount matches the frozen
// total exactly. Any mismatch leaves the status untouched.
func (s *PedidoService) SetPago(pedidoID uint, valorPago models.Money) (*models.Pedido, error) {
	pedido, err := s.pedidoRepo.GetByID(pedidoID)
	if err != nil {
		return nil, err
	}
	if pedido == nil {
		return nil, ErrPedidoNotFound
	}
	if !valorPago.Decimal.Equal(pedido.ValorTotal.Decimal) {
		return nil, ErrValorPagamentoInvalido
	}

	if _, err := s.pedidoRepo.UpdateStatus(pedido.ID, constants.PedidoStatusPago); err != nil {
		return nil, err
	}
	pedido.StatusPedido = constants.PedidoStatusPago

	s.enqueueStatusEmail(pedido.ID, pedido.StatusPedido)
	return pedido, nil
}

// GetByID returns the order or ErrPedidoNotFound.
func (s *PedidoService) GetByID(id uint) (*models.Pedido, error) {
	pedido, err := s.pedidoRepo.GetByID(id)
	if err != nil {
		return nil, err
	}
	if pedido == nil {
		return nil, ErrPedidoNotFound
	}
	return pedido, nil
}

// GetAll returns every order.
func (s *PedidoService) GetAll() ([]models.Pedido, error) {
	return s.pedidoRepo.GetAll()
}

// List returns a filtered page of orders.
func (s *PedidoService) List(filter repository.PedidoListFilter) ([]models.Pedido, int64, error) {
	return s.pedidoRepo.List(filter)
}

// Delete removes an order after checking it exists.
func (s *PedidoService) Delete(id uint) error {
	pedido, err := s.pedidoRepo.GetByID(id)
	if err != nil {
		return err
	}
	if pedido == nil {
		return ErrPedidoNotFound
	}
	affected, err := s.pedidoRepo.Delete(id)
	if err != nil {
		return err
	}
	if affected == 0 {
		return ErrDeleteFailed
	}
	return nil
}

// enqueueStatusEmail is best-effort; a queue failure never fails the
// business operation.
func (s *PedidoService) enqueueStatusEmail(pedidoID uint, status string) {
	if s.queueClient == nil {
		return
	}
	if err := s.queueClient.EnqueuePedidoStatusEmail(queue.PedidoStatusEmailPayload{
		PedidoID: pedidoID,
		Status:   status,
	}); err != nil {
		logger.Warnw("pedido_status_email_enqueue_failed", "pedido_id", pedidoID, "error", err)
	}
}
