package public

import (
	"errors"

	"github.com/lojaviva/lojaviva-api/internal/http/response"
	"github.com/lojaviva/lojaviva-api/internal/service"

	"github.com/gin-gonic/gin"
)

// AddProdutoToCarRequest add-to-cart payload.
type AddProdutoToCarRequest struct {
	UsuarioID  uint `json:"usuarioId" binding:"required"`
	VariacaoID uint `json:"variacaoId" binding:"required"`
}

// AddProdutoToCar puts a product variation into the user's cart.
// Adding the same variation twice keeps a single cart row.
func (h *Handler) AddProdutoToCar(c *gin.Context) {
	var req AddProdutoToCarRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		respondError(c, response.CodeBadRequest, "requisição inválida", err)
		return
	}

	carrinho, err := h.CarrinhoService.AddVariacao(req.UsuarioID, req.VariacaoID)
	if err != nil {
		respondWithMappedError(c, err, carrinhoErrorRules, response.CodeInternal, "falha ao adicionar ao carrinho")
		return
	}
	response.Success(c, carrinho)
}

// GetCarrinhoByUsuario returns the user's cart with its items.
func (h *Handler) GetCarrinhoByUsuario(c *gin.Context) {
	usuarioID, ok := parseIDParam(c, "usuarioId")
	if !ok {
		return
	}
	carrinho, err := h.CarrinhoService.GetWithVariacoesByUsuarioID(usuarioID)
	if err != nil {
		if errors.Is(err, service.ErrCarrinhoNotFound) {
			respondError(c, response.CodeNotFound, "carrinho não encontrado", nil)
			return
		}
		respondError(c, response.CodeInternal, "falha ao buscar carrinho", err)
		return
	}
	response.Success(c, carrinho)
}

// GetCarrinhoVariacoes returns the variation set of a cart.
func (h *Handler) GetCarrinhoVariacoes(c *gin.Context) {
	id, ok := parseIDParam(c, "id")
	if !ok {
		return
	}
	carrinho, err := h.CarrinhoService.GetWithVariacoes(id)
	if err != nil {
		if errors.Is(err, service.ErrCarrinhoNotFound) {
			respondError(c, response.CodeNotFound, "carrinho não encontrado", nil)
			return
		}
		respondError(c, response.CodeInternal, "falha ao buscar carrinho", err)
		return
	}
	response.Success(c, carrinho.Variacoes)
}

// ClearCarrinho removes every item from the cart. The cart record
// itself stays.
func (h *Handler) ClearCarrinho(c *gin.Context) {
	id, ok := parseIDParam(c, "id")
	if !ok {
		return
	}
	if err := h.CarrinhoService.Clear(id); err != nil {
		if errors.Is(err, service.ErrCarrinhoNotFound) {
			respondError(c, response.CodeNotFound, "carrinho não encontrado", nil)
			return
		}
		respondError(c, response.CodeInternal, "falha ao limpar carrinho", err)
		return
	}
	response.Success(c, gin.H{"cleared": true})
}

// GetMeuCarrinho returns the authenticated user's cart with items.
func (h *Handler) GetMeuCarrinho(c *gin.Context) {
	uid, ok := getUsuarioID(c)
	if !ok {
		return
	}
	carrinho, err := h.CarrinhoService.GetWithVariacoesByUsuarioID(uid)
	if err != nil {
		if errors.Is(err, service.ErrCarrinhoNotFound) {
			respondError(c, response.CodeNotFound, "carrinho não encontrado", nil)
			return
		}
		respondError(c, response.CodeInternal, "falha ao buscar carrinho", err)
		return
	}
	response.Success(c, carrinho)
}
