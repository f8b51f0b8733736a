package service

import "errors"

// Shared sentinel errors. Handlers map these onto business codes.
var (
	ErrNotFound     = errors.New("registro não encontrado")
	ErrDeleteFailed = errors.New("falha ao excluir registro")
	ErrUpdateFailed = errors.New("falha ao atualizar registro")

	ErrUsuarioNotFound       = errors.New("usuário não encontrado")
	ErrCredenciaisInvalidas  = errors.New("e-mail ou senha inválidos")
	ErrEmailCPFJaCadastrado  = errors.New("e-mail ou CPF já cadastrado")
	ErrTipoUsuarioInvalido   = errors.New("tipo de usuário inválido")
	ErrSenhasNaoConferem     = errors.New("as senhas não conferem")
	ErrCampoImutavel         = errors.New("cpf e e-mail não podem ser alterados")

	ErrCarrinhoNotFound    = errors.New("carrinho não encontrado")
	ErrVariacaoNotFound    = errors.New("variação de produto não encontrada")
	ErrCarrinhoVazio       = errors.New("carrinho vazio")
	ErrCarrinhoClearFailed = errors.New("falha ao limpar o carrinho")

	ErrPedidoNotFound         = errors.New("pedido não encontrado")
	ErrPedidoCreateFailed     = errors.New("falha ao criar o pedido")
	ErrValorPedidoNegativo    = errors.New("valor total do pedido não pode ser negativo")
	ErrValorPagamentoInvalido = errors.New("valor pago diferente do valor total do pedido")

	ErrProdutoNotFound     = errors.New("produto não encontrado")
	ErrTamanhoInvalido     = errors.New("tamanho inválido")
	ErrSexoInvalido        = errors.New("sexo inválido")
	ErrNotificacaoNotFound = errors.New("notificação não encontrada")

	ErrTokenInvalido = errors.New("token de redefinição inválido")
	ErrTokenExpirado = errors.New("token de redefinição expirado")

	ErrEmailServiceDisabled      = errors.New("serviço de e-mail desativado")
	ErrEmailServiceNotConfigured = errors.New("serviço de e-mail não configurado")
	ErrInvalidEmail              = errors.New("endereço de e-mail inválido")
	ErrEmailRecipientRejected    = errors.New("destinatário de e-mail recusado")
)
