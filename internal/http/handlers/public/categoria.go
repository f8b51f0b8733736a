package public

import (
	"errors"
	"strings"

	"github.com/lojaviva/lojaviva-api/internal/http/response"
	"github.com/lojaviva/lojaviva-api/internal/models"
	"github.com/lojaviva/lojaviva-api/internal/service"

	"github.com/gin-gonic/gin"
)

// CategoriaRequest category payload.
type CategoriaRequest struct {
	Nome      string `json:"nome" binding:"required"`
	Descricao string `json:"descricao"`
}

// CreateCategoria registers a category.
func (h *Handler) CreateCategoria(c *gin.Context) {
	var req CategoriaRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		respondError(c, response.CodeBadRequest, "requisição inválida", err)
		return
	}

	categoria, err := h.CategoriaService.Create(&models.Categoria{
		Nome:      strings.TrimSpace(req.Nome),
		Descricao: req.Descricao,
	})
	if err != nil {
		respondError(c, response.CodeInternal, "falha ao criar categoria", err)
		return
	}
	response.Created(c, categoria)
}

// GetCategoria returns a category by id.
func (h *Handler) GetCategoria(c *gin.Context) {
	id, ok := parseIDParam(c, "id")
	if !ok {
		return
	}
	categoria, err := h.CategoriaService.GetByID(id)
	if err != nil {
		if errors.Is(err, service.ErrNotFound) {
			respondError(c, response.CodeNotFound, "categoria não encontrada", nil)
			return
		}
		respondError(c, response.CodeInternal, "falha ao buscar categoria", err)
		return
	}
	response.Success(c, categoria)
}

// ListCategorias returns every category.
func (h *Handler) ListCategorias(c *gin.Context) {
	categorias, err := h.CategoriaService.GetAll()
	if err != nil {
		respondError(c, response.CodeInternal, "falha ao listar categorias", err)
		return
	}
	response.Success(c, categorias)
}

// CountProdutosDaCategoria counts the products linked to a category.
func (h *Handler) CountProdutosDaCategoria(c *gin.Context) {
	id, ok := parseIDParam(c, "id")
	if !ok {
		return
	}
	count, err := h.CategoriaService.CountProdutos(id)
	if err != nil {
		if errors.Is(err, service.ErrNotFound) {
			respondError(c, response.CodeNotFound, "categoria não encontrada", nil)
			return
		}
		respondError(c, response.CodeInternal, "falha ao contar produtos", err)
		return
	}
	response.Success(c, gin.H{"count": count})
}

// AtualizarCategoria applies a partial category update.
func (h *Handler) AtualizarCategoria(c *gin.Context) {
	id, ok := parseIDParam(c, "id")
	if !ok {
		return
	}
	var req struct {
		Nome      *string `json:"nome"`
		Descricao *string `json:"descricao"`
	}
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
	if len(values) == 0 {
		respondError(c, response.CodeBadRequest, "nenhum campo informado", nil)
		return
	}

	affected, err := h.CategoriaService.Update(id, values)
	if err != nil {
		if errors.Is(err, service.ErrNotFound) {
			respondError(c, response.CodeNotFound, "categoria não encontrada", nil)
			return
		}
		respondError(c, response.CodeInternal, "falha ao atualizar categoria", err)
		return
	}
	response.Success(c, gin.H{"updated": affected})
}

// DeleteCategoria removes a category.
func (h *Handler) DeleteCategoria(c *gin.Context) {
	id, ok := parseIDParam(c, "id")
	if !ok {
		return
	}
	if err := h.CategoriaService.Delete(id); err != nil {
		if errors.Is(err, service.ErrNotFound) {
			respondError(c, response.CodeNotFound, "categoria não encontrada", nil)
			return
		}
		respondError(c, response.CodeInternal, "falha ao remover categoria", err)
		return
	}
	response.Success(c, gin.H{"deleted": true})
}
