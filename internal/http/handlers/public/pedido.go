package public

import (
	"errors"
	"strconv"
	"strings"

	"github.com/lojaviva/lojaviva-api/internal/http/response"
	"github.com/lojaviva/lojaviva-api/internal/models"
	"github.com/lojaviva/lojaviva-api/internal/repository"
	"github.com/lojaviva/lojaviva-api/internal/service"

	"github.com/gin-gonic/gin"
)

// CreatePedidoRequest checkout payload. Delivery and discount default
// to zero when omitted.
type CreatePedidoRequest struct {
	CarrinhoID    uint         `json:"carrinhoId" binding:"required"`
	ValorEntrega  models.Money `json:"delivery"`
	ValorDesconto models.Money `json:"discount"`
}

// CreatePedido turns a cart into an order and empties the cart.
func (h *Handler) CreatePedido(c *gin.Context) {
	var req CreatePedidoRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		respondError(c, response.CodeBadRequest, "requisição inválida", err)
		return
	}

	pedido, err := h.PedidoService.CreateFromCarrinho(service.CreateFromCarrinhoInput{
		CarrinhoID:    req.CarrinhoID,
		ValorEntrega:  req.ValorEntrega,
		ValorDesconto: req.ValorDesconto,
	})
	if err != nil {
		respondWithMappedError(c, err, pedidoCreateErrorRules, response.CodeInternal, "falha ao criar pedido")
		return
	}
	response.Created(c, pedido)
}

// SetPedidoPagoRequest paid-confirmation payload.
type SetPedidoPagoRequest struct {
	ValorPago models.Money `json:"valorPago" binding:"required"`
}

// SetPedidoPago marks an order paid when the amount matches the frozen
// total exactly.
func (h *Handler) SetPedidoPago(c *gin.Context) {
	id, ok := parseIDParam(c, "id")
	if !ok {
		return
	}
	var req SetPedidoPagoRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		respondError(c, response.CodeBadRequest, "requisição inválida", err)
		return
	}

	pedido, err := h.PedidoService.SetPago(id, req.ValorPago)
	if err != nil {
		respondWithMappedError(c, err, pagamentoErrorRules, response.CodeInternal, "falha ao atualizar pedido")
		return
	}
	response.Success(c, pedido)
}

// GetPedido returns an order by id.
func (h *Handler) GetPedido(c *gin.Context) {
	id, ok := parseIDParam(c, "id")
	if !ok {
		return
	}
	pedido, err := h.PedidoService.GetByID(id)
	if err != nil {
		if errors.Is(err, service.ErrPedidoNotFound) {
			respondError(c, response.CodeNotFound, "pedido não encontrado", nil)
			return
		}
		respondError(c, response.CodeInternal, "falha ao buscar pedido", err)
		return
	}
	response.Success(c, pedido)
}

// ListPedidos returns a filtered page of orders.
func (h *Handler) ListPedidos(c *gin.Context) {
	page, _ := strconv.Atoi(c.DefaultQuery("page", "1"))
	pageSize, _ := strconv.Atoi(c.DefaultQuery("page_size", "20"))
	page, pageSize = normalizePagination(page, pageSize)

	filter := repository.PedidoListFilter{
		Page:     page,
		PageSize: pageSize,
		Status:   strings.TrimSpace(c.Query("status")),
	}
	if usuarioID, err := strconv.ParseUint(c.Query("usuarioId"), 10, 64); err == nil {
		filter.UsuarioID = uint(usuarioID)
	}

	pedidos, total, err := h.PedidoService.List(filter)
	if err != nil {
		respondError(c, response.CodeInternal, "falha ao listar pedidos", err)
		return
	}
	pagination := response.Pagination{
		Page:      page,
		PageSize:  pageSize,
		Total:     total,
		TotalPage: (total + int64(pageSize) - 1) / int64(pageSize),
	}
	response.SuccessWithPage(c, pedidos, pagination)
}

// DeletePedido removes an order.
func (h *Handler) DeletePedido(c *gin.Context) {
	id, ok := parseIDParam(c, "id")
	if !ok {
		return
	}
	if err := h.PedidoService.Delete(id); err != nil {
		if errors.Is(err, service.ErrPedidoNotFound) {
			respondError(c, response.CodeNotFound, "pedido não encontrado", nil)
			return
		}
		respondError(c, response.CodeInternal, "falha ao remover pedido", err)
		return
	}
	response.Success(c, gin.H{"deleted": true})
}
