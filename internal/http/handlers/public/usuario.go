package public

import (
	"errors"
	"strconv"

	"github.com/lojaviva/lojaviva-api/internal/http/response"
	"github.com/lojaviva/lojaviva-api/internal/service"

	"github.com/gin-gonic/gin"
)

// CadastrarUsuarioRequest registration payload.
type CadastrarUsuarioRequest struct {
	Nome        string `json:"nome" binding:"required"`
	CPF         string `json:"cpf" binding:"required"`
	Email       string `json:"email" binding:"required,email"`
	Senha       string `json:"senha" binding:"required,min=6"`
	Telefone    string `json:"telefone"`
	Endereco    string `json:"endereco"`
	TipoUsuario string `json:"tipoUsuario"`
}

// CadastrarUsuario registers a user and its cart.
func (h *Handler) CadastrarUsuario(c *gin.Context) {
	var req CadastrarUsuarioRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		respondError(c, response.CodeBadRequest, "requisição inválida", err)
		return
	}

	usuario, err := h.UsuarioService.Cadastrar(service.CadastrarInput{
		Nome:        req.Nome,
		CPF:         req.CPF,
		Email:       req.Email,
		Senha:       req.Senha,
		Telefone:    req.Telefone,
		Endereco:    req.Endereco,
		TipoUsuario: req.TipoUsuario,
	})
	if err != nil {
		respondWithMappedError(c, err, cadastroErrorRules, response.CodeInternal, "falha ao cadastrar usuário")
		return
	}
	response.Created(c, usuario)
}

// LoginRequest credential payload.
type LoginRequest struct {
	Email string `json:"email" binding:"required"`
	Senha string `json:"senha" binding:"required"`
}

// Login authenticates and issues an access token.
func (h *Handler) Login(c *gin.Context) {
	var req LoginRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		respondError(c, response.CodeBadRequest, "requisição inválida", err)
		return
	}

	usuario, token, expiresAt, err := h.UsuarioService.Login(req.Email, req.Senha)
	if err != nil {
		if errors.Is(err, service.ErrCredenciaisInvalidas) {
			respondError(c, response.CodeUnauthorized, "credenciais inválidas", nil)
			return
		}
		respondError(c, response.CodeInternal, "falha ao autenticar", err)
		return
	}
	response.Success(c, gin.H{
		"token":     token,
		"expiresAt": expiresAt,
		"usuario":   usuario,
	})
}

// SendEmailResetRequest reset-token request payload.
type SendEmailResetRequest struct {
	Email string `json:"email" binding:"required,email"`
}

// SendEmailReset mails a password-reset token. An unknown e-mail still
// answers success so the endpoint cannot be used to probe accounts.
func (h *Handler) SendEmailReset(c *gin.Context) {
	var req SendEmailResetRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		respondError(c, response.CodeBadRequest, "requisição inválida", err)
		return
	}

	sent, err := h.UsuarioService.SendEmailReset(req.Email)
	if err != nil {
		respondError(c, response.CodeInternal, "falha ao enviar e-mail de redefinição", err)
		return
	}
	if !sent {
		requestLog(c).Infow("reset_email_skipped", "reason", "email_desconhecido")
	}
	response.Success(c, gin.H{"sent": sent})
}

// ResetPasswordRequest reset redemption payload.
type ResetPasswordRequest struct {
	Token      string `json:"token" binding:"required"`
	Email      string `json:"email" binding:"required,email"`
	Password   string `json:"password" binding:"required,min=6"`
	Repassword string `json:"repassword" binding:"required"`
}

// ResetPassword redeems a reset token and stores the new password.
func (h *Handler) ResetPassword(c *gin.Context) {
	var req ResetPasswordRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		respondError(c, response.CodeBadRequest, "requisição inválida", err)
		return
	}

	affected, err := h.UsuarioService.RedefinirSenha(req.Token, req.Email, req.Password, req.Repassword)
	if err != nil {
		respondWithMappedError(c, err, redefinirSenhaErrorRules, response.CodeInternal, "falha ao redefinir senha")
		return
	}
	response.Success(c, gin.H{"updated": affected})
}

// GetMe returns the authenticated user.
func (h *Handler) GetMe(c *gin.Context) {
	uid, ok := getUsuarioID(c)
	if !ok {
		return
	}
	usuario, err := h.UsuarioService.GetByID(uid)
	if err != nil {
		if errors.Is(err, service.ErrUsuarioNotFound) {
			respondError(c, response.CodeNotFound, "usuário não encontrado", nil)
			return
		}
		respondError(c, response.CodeInternal, "falha ao buscar usuário", err)
		return
	}
	response.Success(c, usuario)
}

// GetUsuario returns a user by id.
func (h *Handler) GetUsuario(c *gin.Context) {
	id, ok := parseIDParam(c, "id")
	if !ok {
		return
	}
	usuario, err := h.UsuarioService.GetByID(id)
	if err != nil {
		if errors.Is(err, service.ErrUsuarioNotFound) {
			respondError(c, response.CodeNotFound, "usuário não encontrado", nil)
			return
		}
		respondError(c, response.CodeInternal, "falha ao buscar usuário", err)
		return
	}
	response.Success(c, usuario)
}

// ListUsuarios returns a page of users.
func (h *Handler) ListUsuarios(c *gin.Context) {
	page, _ := strconv.Atoi(c.DefaultQuery("page", "1"))
	pageSize, _ := strconv.Atoi(c.DefaultQuery("page_size", "20"))
	page, pageSize = normalizePagination(page, pageSize)

	usuarios, total, err := h.UsuarioService.ListarPaginado(pageSize, (page-1)*pageSize)
	if err != nil {
		respondError(c, response.CodeInternal, "falha ao listar usuários", err)
		return
	}
	pagination := response.Pagination{
		Page:      page,
		PageSize:  pageSize,
		Total:     total,
		TotalPage: (total + int64(pageSize) - 1) / int64(pageSize),
	}
	response.SuccessWithPage(c, usuarios, pagination)
}

// AtualizarUsuarioRequest partial profile payload. CPF and e-mail are
// immutable; a request carrying either is rejected.
type AtualizarUsuarioRequest struct {
	Nome     *string `json:"nome"`
	Senha    *string `json:"senha"`
	Telefone *string `json:"telefone"`
	Endereco *string `json:"endereco"`
	CPF      *string `json:"cpf"`
	Email    *string `json:"email"`
}

// AtualizarUsuario applies a partial profile update.
func (h *Handler) AtualizarUsuario(c *gin.Context) {
	id, ok := parseIDParam(c, "id")
	if !ok {
		return
	}
	var req AtualizarUsuarioRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		respondError(c, response.CodeBadRequest, "requisição inválida", err)
		return
	}
	if req.CPF != nil || req.Email != nil {
		respondWithMappedError(c, service.ErrCampoImutavel, atualizarUsuarioErrorRules, response.CodeInternal, "falha ao atualizar usuário")
		return
	}

	affected, err := h.UsuarioService.Atualizar(id, service.AtualizarInput{
		Nome:     req.Nome,
		Senha:    req.Senha,
		Telefone: req.Telefone,
		Endereco: req.Endereco,
	})
	if err != nil {
		respondWithMappedError(c, err, atualizarUsuarioErrorRules, response.CodeInternal, "falha ao atualizar usuário")
		return
	}
	response.Success(c, gin.H{"updated": affected})
}

// DeleteUsuario removes a user.
func (h *Handler) DeleteUsuario(c *gin.Context) {
	id, ok := parseIDParam(c, "id")
	if !ok {
		return
	}
	if err := h.UsuarioService.Delete(id); err != nil {
		if errors.Is(err, service.ErrUsuarioNotFound) {
			respondError(c, response.CodeNotFound, "usuário não encontrado", nil)
			return
		}
		respondError(c, response.CodeInternal, "falha ao remover usuário", err)
		return
	}
	response.Success(c, gin.H{"deleted": true})
}
