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

// CreateProdutoRequest product payload.
type CreateProdutoRequest struct {
	Nome         string   `json:"nome" binding:"required"`
	Descricao    string   `json:"descricao"`
	Imagens      []string `json:"imagens"`
	QuantEstoque int      `json:"quantEstoque"`
	UsuarioID    uint     `json:"usuarioId" binding:"required"`
	ColecaoID    *uint    `json:"colecaoId"`
}

// CreateProduto registers a product.
func (h *Handler) CreateProduto(c *gin.Context) {
	var req CreateProdutoRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		respondError(c, response.CodeBadRequest, "requisição inválida", err)
		return
	}

	produto, err := h.ProdutoService.Create(&models.Produto{
		Nome:         strings.TrimSpace(req.Nome),
		Descricao:    req.Descricao,
		Imagens:      models.StringArray(req.Imagens),
		QuantEstoque: req.QuantEstoque,
		UsuarioID:    req.UsuarioID,
		ColecaoID:    req.ColecaoID,
	})
	if err != nil {
		respondError(c, response.CodeInternal, "falha ao criar produto", err)
		return
	}
	response.Created(c, produto)
}

// GetProduto returns a product with categories, variations and
// collection loaded.
func (h *Handler) GetProduto(c *gin.Context) {
	id, ok := parseIDParam(c, "id")
	if !ok {
		return
	}
	produto, err := h.ProdutoService.GetByID(id)
	if err != nil {
		if errors.Is(err, service.ErrProdutoNotFound) {
			respondError(c, response.CodeNotFound, "produto não encontrado", nil)
			return
		}
		respondError(c, response.CodeInternal, "falha ao buscar produto", err)
		return
	}
	response.Success(c, produto)
}

// ListProdutos returns a filtered page of products.
func (h *Handler) ListProdutos(c *gin.Context) {
	page, _ := strconv.Atoi(c.DefaultQuery("page", "1"))
	pageSize, _ := strconv.Atoi(c.DefaultQuery("page_size", "20"))
	page, pageSize = normalizePagination(page, pageSize)

	filter := repository.ProdutoListFilter{
		Page:     page,
		PageSize: pageSize,
		Search:   strings.TrimSpace(c.Query("search")),
	}
	if categoriaID, err := strconv.ParseUint(c.Query("categoriaId"), 10, 64); err == nil {
		filter.CategoriaID = uint(categoriaID)
	}
	if colecaoID, err := strconv.ParseUint(c.Query("colecaoId"), 10, 64); err == nil {
		filter.ColecaoID = uint(colecaoID)
	}

	produtos, total, err := h.ProdutoService.List(filter)
	if err != nil {
		respondError(c, response.CodeInternal, "falha ao listar produtos", err)
		return
	}
	pagination := response.Pagination{
		Page:      page,
		PageSize:  pageSize,
		Total:     total,
		TotalPage: (total + int64(pageSize) - 1) / int64(pageSize),
	}
	response.SuccessWithPage(c, produtos, pagination)
}

// AtualizarProdutoRequest partial product payload.
type AtualizarProdutoRequest struct {
	Nome         *string  `json:"nome"`
	Descricao    *string  `json:"descricao"`
	Imagens      []string `json:"imagens"`
	QuantEstoque *int     `json:"quantEstoque"`
	ColecaoID    *uint    `json:"colecaoId"`
}

// AtualizarProduto applies a partial product update.
func (h *Handler) AtualizarProduto(c *gin.Context) {
	id, ok := parseIDParam(c, "id")
	if !ok {
		return
	}
	var req AtualizarProdutoRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		respondError(c, response.CodeBadRequest, "requisição inválida", err)
		return
	}

	values := map[string]interface{}{}
	if req.Nome != nil {
		values["nome"] = strings.TrimSpace(*req.Nome)
	}
	if req.Descricao != nil {
		values["descricao"] = *req.Descricao
	}
	if req.Imagens != nil {
		values["imagens"] = models.StringArray(req.Imagens)
	}
	if req.QuantEstoque != nil {
		values["quant_estoque"] = *req.QuantEstoque
	}
	if req.ColecaoID != nil {
		values["colecao_id"] = *req.ColecaoID
	}
	if len(values) == 0 {
		respondError(c, response.CodeBadRequest, "nenhum campo informado", nil)
		return
	}

	affected, err := h.ProdutoService.Update(id, values)
	if err != nil {
		if errors.Is(err, service.ErrProdutoNotFound) {
			respondError(c, response.CodeNotFound, "produto não encontrado", nil)
			return
		}
		respondError(c, response.CodeInternal, "falha ao atualizar produto", err)
		return
	}
	response.Success(c, gin.H{"updated": affected})
}

// DeleteProduto removes a product.
func (h *Handler) DeleteProduto(c *gin.Context) {
	id, ok := parseIDParam(c, "id")
	if !ok {
		return
	}
	if err := h.ProdutoService.Delete(id); err != nil {
		if errors.Is(err, service.ErrProdutoNotFound) {
			respondError(c, response.CodeNotFound, "produto não encontrado", nil)
			return
		}
		respondError(c, response.CodeInternal, "falha ao remover produto", err)
		return
	}
	response.Success(c, gin.H{"deleted": true})
}

// ListVariacoesDoProduto returns the variations of a product.
func (h *Handler) ListVariacoesDoProduto(c *gin.Context) {
	id, ok := parseIDParam(c, "id")
	if !ok {
		return
	}
	variacoes, err := h.VariacaoService.ListByProduto(id)
	if err != nil {
		if errors.Is(err, service.ErrProdutoNotFound) {
			respondError(c, response.CodeNotFound, "produto não encontrado", nil)
			return
		}
		respondError(c, response.CodeInternal, "falha ao listar variações", err)
		return
	}
	response.Success(c, variacoes)
}
