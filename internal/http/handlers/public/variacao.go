package public

import (
	"errors"
	"strconv"
	"strings"

	"github.com/lojaviva/lojaviva-api/internal/http/response"
	"github.com/lojaviva/lojaviva-api/internal/models"
	"github.com/lojaviva/lojaviva-api/internal/service"

	"github.com/gin-gonic/gin"
)

// CreateVariacaoRequest variation payload.
type CreateVariacaoRequest struct {
	Preco        models.Money `json:"preco" binding:"required"`
	Tamanho      string       `json:"tamanho" binding:"required"`
	Cor          string       `json:"cor" binding:"required"`
	Sexo         string       `json:"sexo" binding:"required"`
	QuantEstoque int          `json:"quantEstoque"`
	ProdutoID    uint         `json:"produtoId" binding:"required"`
}

// CreateVariacao registers a product variation.
func (h *Handler) CreateVariacao(c *gin.Context) {
	var req CreateVariacaoRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		respondError(c, response.CodeBadRequest, "requisição inválida", err)
		return
	}

	variacao, err := h.VariacaoService.Create(&models.ProdutoVariacao{
		Preco:        req.Preco,
		Tamanho:      strings.ToUpper(strings.TrimSpace(req.Tamanho)),
		Cor:          strings.TrimSpace(req.Cor),
		Sexo:         strings.ToUpper(strings.TrimSpace(req.Sexo)),
		QuantEstoque: req.QuantEstoque,
		ProdutoID:    req.ProdutoID,
	})
	if err != nil {
		respondWithMappedError(c, err, variacaoErrorRules, response.CodeInternal, "falha ao criar variação")
		return
	}
	response.Created(c, variacao)
}

// GetVariacao returns a variation by id.
func (h *Handler) GetVariacao(c *gin.Context) {
	id, ok := parseIDParam(c, "id")
	if !ok {
		return
	}
	variacao, err := h.VariacaoService.GetByID(id)
	if err != nil {
		if errors.Is(err, service.ErrVariacaoNotFound) {
			respondError(c, response.CodeNotFound, "variação não encontrada", nil)
			return
		}
		respondError(c, response.CodeInternal, "falha ao buscar variação", err)
		return
	}
	response.Success(c, variacao)
}

// ListVariacoes lists variations. With produtoId, cor and tamanho it
// resolves the single variation of that natural key; with produtoId
// alone it lists the product's variations.
func (h *Handler) ListVariacoes(c *gin.Context) {
	produtoID, _ := strconv.ParseUint(c.Query("produtoId"), 10, 64)
	cor := strings.TrimSpace(c.Query("cor"))
	tamanho := strings.ToUpper(strings.TrimSpace(c.Query("tamanho")))

	if produtoID > 0 && cor != "" && tamanho != "" {
		variacao, err := h.VariacaoService.GetByProdutoCorTamanho(uint(produtoID), cor, tamanho)
		if err != nil {
			if errors.Is(err, service.ErrVariacaoNotFound) {
				respondError(c, response.CodeNotFound, "variação não encontrada", nil)
				return
			}
			respondError(c, response.CodeInternal, "falha ao buscar variação", err)
			return
		}
		response.Success(c, variacao)
		return
	}

	if produtoID > 0 {
		variacoes, err := h.VariacaoService.ListByProduto(uint(produtoID))
		if err != nil {
			respondWithMappedError(c, err, variacaoErrorRules, response.CodeInternal, "falha ao listar variações")
			return
		}
		response.Success(c, variacoes)
		return
	}

	variacoes, err := h.VariacaoService.GetAll()
	if err != nil {
		respondError(c, response.CodeInternal, "falha ao listar variações", err)
		return
	}
	response.Success(c, variacoes)
}

// AtualizarVariacaoRequest partial variation payload.
type AtualizarVariacaoRequest struct {
	Preco        *models.Money `json:"preco"`
	Tamanho      *string       `json:"tamanho"`
	Cor          *string       `json:"cor"`
	Sexo         *string       `json:"sexo"`
	QuantEstoque *int          `json:"quantEstoque"`
}

// AtualizarVariacao applies a partial variation update.
func (h *Handler) AtualizarVariacao(c *gin.Context) {
	id, ok := parseIDParam(c, "id")
	if !ok {
		return
	}
	var req AtualizarVariacaoRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		respondError(c, response.CodeBadRequest, "requisição inválida", err)
		return
	}

	values := map[string]interface{}{}
	if req.Preco != nil {
		values["preco"] = *req.Preco
	}
	if req.Tamanho != nil {
		values["tamanho"] = strings.ToUpper(strings.TrimSpace(*req.Tamanho))
	}
	if req.Cor != nil {
		values["cor"] = strings.TrimSpace(*req.Cor)
	}
	if req.Sexo != nil {
		values["sexo"] = strings.ToUpper(strings.TrimSpace(*req.Sexo))
	}
	if req.QuantEstoque != nil {
		values["quant_estoque"] = *req.QuantEstoque
	}
	if len(values) == 0 {
		respondError(c, response.CodeBadRequest, "nenhum campo informado", nil)
		return
	}

	affected, err := h.VariacaoService.Update(id, values)
	if err != nil {
		respondWithMappedError(c, err, variacaoErrorRules, response.CodeInternal, "falha ao atualizar variação")
		return
	}
	response.Success(c, gin.H{"updated": affected})
}

// DeleteVariacao removes a variation.
func (h *Handler) DeleteVariacao(c *gin.Context) {
	id, ok := parseIDParam(c, "id")
	if !ok {
		return
	}
	if err := h.VariacaoService.Delete(id); err != nil {
		if errors.Is(err, service.ErrVariacaoNotFound) {
			respondError(c, response.CodeNotFound, "variação não encontrada", nil)
			return
		}
		respondError(c, response.CodeInternal, "falha ao remover variação", err)
		return
	}
	response.Success(c, gin.H{"deleted": true})
}
