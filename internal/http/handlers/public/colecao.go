package public

import (
	"errors"
	"strings"

	"github.com/lojaviva/lojaviva-api/internal/http/response"
	"github.com/lojaviva/lojaviva-api/internal/models"
	"github.com/lojaviva/lojaviva-api/internal/service"

	"github.com/gin-gonic/gin"
)

// ColecaoRequest collection payload.
type ColecaoRequest struct {
	Nome      string `json:"nome" binding:"required"`
	Descricao string `json:"descricao"`
}

// CreateColecao registers a collection.
func (h *Handler) CreateColecao(c *gin.Context) {
	var req ColecaoRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		respondError(c, response.CodeBadRequest, "requisição inválida", err)
		return
	}

	colecao, err := h.ColecaoService.Create(&models.Colecao{
		Nome:      strings.TrimSpace(req.Nome),
		Descricao: req.Descricao,
	})
	if err != nil {
		respondError(c, response.CodeInternal, "falha ao criar coleção", err)
		return
	}
	response.Created(c, colecao)
}

// GetColecao returns a collection by id.
func (h *Handler) GetColecao(c *gin.Context) {
	id, ok := parseIDParam(c, "id")
	if !ok {
		return
	}
	colecao, err := h.ColecaoService.GetByID(id)
	if err != nil {
		if errors.Is(err, service.ErrNotFound) {
			respondError(c, response.CodeNotFound, "coleção não encontrada", nil)
			return
		}
		respondError(c, response.CodeInternal, "falha ao buscar coleção", err)
		return
	}
	response.Success(c, colecao)
}

// ListColecoes returns every collection.
func (h *Handler) ListColecoes(c *gin.Context) {
	colecoes, err := h.ColecaoService.GetAll()
	if err != nil {
		respondError(c, response.CodeInternal, "falha ao listar coleções", err)
		return
	}
	response.Success(c, colecoes)
}

// AtualizarColecao applies a partial collection update.
func (h *Handler) AtualizarColecao(c *gin.Context) {
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

	affected, err := h.ColecaoService.Update(id, values)
	if err != nil {
		if errors.Is(err, service.ErrNotFound) {
			respondError(c, response.CodeNotFound, "coleção não encontrada", nil)
			return
		}
		respondError(c, response.CodeInternal, "falha ao atualizar coleção", err)
		return
	}
	response.Success(c, gin.H{"updated": affected})
}

// DeleteColecao removes a collection.
func (h *Handler) DeleteColecao(c *gin.Context) {
	id, ok := parseIDParam(c, "id")
	if !ok {
		return
	}
	if err := h.ColecaoService.Delete(id); err != nil {
		if errors.Is(err, service.ErrNotFound) {
			respondError(c, response.CodeNotFound, "coleção não encontrada", nil)
			return
		}
		respondError(c, response.CodeInternal, "falha ao remover coleção", err)
		return
	}
	response.Success(c, gin.H{"deleted": true})
}
