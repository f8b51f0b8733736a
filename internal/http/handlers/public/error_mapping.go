package public

import (
	"errors"

	"github.com/lojaviva/lojaviva-api/internal/http/response"
	"github.com/lojaviva/lojaviva-api/internal/service"

	"github.com/gin-gonic/gin"
)

// mappedHandlerError binds a service sentinel to its response code and
// message.
type mappedHandlerError struct {
	target error
	code   int
	msg    string
}

func respondWithMappedError(c *gin.Context, err error, rules []mappedHandlerError, fallbackCode int, fallbackMsg string) {
	for _, rule := range rules {
		if errors.Is(err, rule.target) {
			respondError(c, rule.code, rule.msg, nil)
			return
		}
	}
	respondError(c, fallbackCode, fallbackMsg, err)
}

var cadastroErrorRules = []mappedHandlerError{
	{target: service.ErrTipoUsuarioInvalido, code: response.CodeBadRequest, msg: "tipo de usuário inválido"},
	{target: service.ErrEmailCPFJaCadastrado, code: response.CodeConflict, msg: "e-mail ou CPF já cadastrado"},
}

var atualizarUsuarioErrorRules = []mappedHandlerError{
	{target: service.ErrUsuarioNotFound, code: response.CodeNotFound, msg: "usuário não encontrado"},
	{target: service.ErrUpdateFailed, code: response.CodeBadRequest, msg: "nenhum campo atualizado"},
	{target: service.ErrCampoImutavel, code: response.CodeBadRequest, msg: "cpf e e-mail não podem ser alterados"},
}

var redefinirSenhaErrorRules = []mappedHandlerError{
	{target: service.ErrSenhasNaoConferem, code: response.CodeBadRequest, msg: "as senhas não conferem"},
	{target: service.ErrTokenInvalido, code: response.CodeBadRequest, msg: "token inválido"},
	{target: service.ErrTokenExpirado, code: response.CodeBadRequest, msg: "token expirado"},
	{target: service.ErrUsuarioNotFound, code: response.CodeNotFound, msg: "usuário não encontrado"},
}

var carrinhoErrorRules = []mappedHandlerError{
	{target: service.ErrCarrinhoNotFound, code: response.CodeNotFound, msg: "carrinho não encontrado"},
	{target: service.ErrVariacaoNotFound, code: response.CodeNotFound, msg: "variação não encontrada"},
}

var pedidoCreateErrorRules = []mappedHandlerError{
	{target: service.ErrCarrinhoNotFound, code: response.CodeNotFound, msg: "carrinho não encontrado"},
	{target: service.ErrCarrinhoVazio, code: response.CodeBadRequest, msg: "carrinho vazio"},
	{target: service.ErrValorPedidoNegativo, code: response.CodeBadRequest, msg: "valor total do pedido negativo"},
	{target: service.ErrPedidoCreateFailed, code: response.CodeInternal, msg: "falha ao criar o pedido"},
	{target: service.ErrCarrinhoClearFailed, code: response.CodeInternal, msg: "falha ao limpar o carrinho"},
}

var pagamentoErrorRules = []mappedHandlerError{
	{target: service.ErrPedidoNotFound, code: response.CodeNotFound, msg: "pedido não encontrado"},
	{target: service.ErrValorPagamentoInvalido, code: response.CodeBadRequest, msg: "valor pago difere do valor total do pedido"},
}

var variacaoErrorRules = []mappedHandlerError{
	{target: service.ErrProdutoNotFound, code: response.CodeNotFound, msg: "produto não encontrado"},
	{target: service.ErrVariacaoNotFound, code: response.CodeNotFound, msg: "variação não encontrada"},
	{target: service.ErrTamanhoInvalido, code: response.CodeBadRequest, msg: "tamanho inválido"},
	{target: service.ErrSexoInvalido, code: response.CodeBadRequest, msg: "sexo inválido"},
}

var notificacaoErrorRules = []mappedHandlerError{
	{target: service.ErrNotificacaoNotFound, code: response.CodeNotFound, msg: "notificação não encontrada"},
	{target: service.ErrUsuarioNotFound, code: response.CodeNotFound, msg: "usuário não encontrado"},
}
