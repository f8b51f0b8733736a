package public

import (
	"errors"
	"strconv"

	"github.com/lojaviva/lojaviva-api/internal/http/response"
	"github.com/lojaviva/lojaviva-api/internal/models"
	"github.com/lojaviva/lojaviva-api/internal/service"

	"github.com/gin-gonic/gin"
)

// RealizarPagamentoRequest payment payload.
type RealizarPagamentoRequest struct {
	PedidoID        uint         `json:"pedidoId" binding:"required"`
	UsuarioID       uint         `json:"usuarioId"`
	ValorPago       models.Money `json:"valor" binding:"required"`
	MetodoPagamento string       `json:"metodo" binding:"required"`
}

// RealizarPagamento pays an order. The amount must match the order's
// frozen total exactly; the order flips to paid and the payment record
// is written in the same transaction.
func (h *Handler) RealizarPagamento(c *gin.Context) {
	var req RealizarPagamentoRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		respondError(c, response.CodeBadRequest, "requisição inválida", err)
		return
	}

	pagamento, err := h.PagamentoService.Realizar(service.RealizarPagamentoInput{
		PedidoID:        req.PedidoID,
		UsuarioID:       req.UsuarioID,
		ValorPago:       req.ValorPago,
		MetodoPagamento: req.MetodoPagamento,
	})
	if err != nil {
		respondWithMappedError(c, err, pagamentoErrorRules, response.CodeInternal, "falha ao registrar pagamento")
		return
	}
	response.Created(c, pagamento)
}

// GetPagamento returns a payment by id.
func (h *Handler) GetPagamento(c *gin.Context) {
	id, ok := parseIDParam(c, "id")
	if !ok {
		return
	}
	pagamento, err := h.PagamentoService.GetByID(id)
	if err != nil {
		if errors.Is(err, service.ErrNotFound) {
			respondError(c, response.CodeNotFound, "pagamento não encontrado", nil)
			return
		}
		respondError(c, response.CodeInternal, "falha ao buscar pagamento", err)
		return
	}
	response.Success(c, pagamento)
}

// ListPagamentos returns every payment, optionally scoped to an order
// via the pedidoId query parameter.
func (h *Handler) ListPagamentos(c *gin.Context) {
	if raw := c.Query("pedidoId"); raw != "" {
		pedidoID, err := strconv.ParseUint(raw, 10, 64)
		if err != nil || pedidoID == 0 {
			respondError(c, response.CodeBadRequest, "identificador de pedido inválido", nil)
			return
		}
		pagamentos, err := h.PagamentoService.ListByPedido(uint(pedidoID))
		if err != nil {
			respondError(c, response.CodeInternal, "falha ao listar pagamentos", err)
			return
		}
		response.Success(c, pagamentos)
		return
	}

	pagamentos, err := h.PagamentoService.GetAll()
	if err != nil {
		respondError(c, response.CodeInternal, "falha ao listar pagamentos", err)
		return
	}
	response.Success(c, pagamentos)
}

// DeletePagamento removes a payment record.
func (h *Handler) DeletePagamento(c *gin.Context) {
	id, ok := parseIDParam(c, "id")
	if !ok {
		return
	}
	if err := h.PagamentoService.Delete(id); err != nil {
		if errors.Is(err, service.ErrNotFound) {
			respondError(c, response.CodeNotFound, "pagamento não encontrado", nil)
			return
		}
		respondError(c, response.CodeInternal, "falha ao remover pagamento", err)
		return
	}
	response.Success(c, gin.H{"deleted": true})
}
