package public

import (
	"errors"

	"github.com/lojaviva/lojaviva-api/internal/http/response"
	"github.com/lojaviva/lojaviva-api/internal/service"

	"github.com/gin-gonic/gin"
)

// CreateNotificacaoRequest notification payload. Recipients are linked
// at creation and mailed by the worker.
type CreateNotificacaoRequest struct {
	Mensagem   string `json:"mensagem" binding:"required"`
	UsuarioIDs []uint `json:"usuarioIds"`
}

// CreateNotificacao creates a notification with its recipients.
func (h *Handler) CreateNotificacao(c *gin.Context) {
	var req CreateNotificacaoRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		respondError(c, response.CodeBadRequest, "requisição inválida", err)
		return
	}

	notificacao, err := h.NotificacaoService.CreateComUsuarios(req.Mensagem, req.UsuarioIDs)
	if err != nil {
		respondWithMappedError(c, err, notificacaoErrorRules, response.CodeInternal, "falha ao criar notificação")
		return
	}
	response.Created(c, notificacao)
}

// GetNotificacao returns a notification by id.
func (h *Handler) GetNotificacao(c *gin.Context) {
	id, ok := parseIDParam(c, "id")
	if !ok {
		return
	}
	notificacao, err := h.NotificacaoService.GetByID(id)
	if err != nil {
		if errors.Is(err, service.ErrNotificacaoNotFound) {
			respondError(c, response.CodeNotFound, "notificação não encontrada", nil)
			return
		}
		respondError(c, response.CodeInternal, "falha ao buscar notificação", err)
		return
	}
	response.Success(c, notificacao)
}

// ListNotificacoes returns every notification.
func (h *Handler) ListNotificacoes(c *gin.Context) {
	notificacoes, err := h.NotificacaoService.GetAll()
	if err != nil {
		respondError(c, response.CodeInternal, "falha ao listar notificações", err)
		return
	}
	response.Success(c, notificacoes)
}

// ListNotificacoesDoUsuario returns the notifications addressed to a
// user.
func (h *Handler) ListNotificacoesDoUsuario(c *gin.Context) {
	usuarioID, ok := parseIDParam(c, "usuarioId")
	if !ok {
		return
	}
	notificacoes, err := h.NotificacaoService.ListByUsuario(usuarioID)
	if err != nil {
		respondWithMappedError(c, err, notificacaoErrorRules, response.CodeInternal, "falha ao listar notificações")
		return
	}
	response.Success(c, notificacoes)
}

// DeleteNotificacao removes a notification.
func (h *Handler) DeleteNotificacao(c *gin.Context) {
	id, ok := parseIDParam(c, "id")
	if !ok {
		return
	}
	if err := h.NotificacaoService.Delete(id); err != nil {
		if errors.Is(err, service.ErrNotificacaoNotFound) {
			respondError(c, response.CodeNotFound, "notificação não encontrada", nil)
			return
		}
		respondError(c, response.CodeInternal, "falha ao remover notificação", err)
		return
	}
	response.Success(c, gin.H{"deleted": true})
}
