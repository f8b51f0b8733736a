package constants

// Order status labels (stored verbatim, exposed to clients)
const (
	PedidoStatusPendente = "Pendente"
	PedidoStatusPago     = "Pago"
)

// Delivery estimate applied at checkout
const (
	PedidoEntregaHoras = 72
)

// Payment status constants
const (
	PagamentoStatusAprovado = "Aprovado"
	PagamentoStatusPendente = "Pendente"
	PagamentoStatusRecusado = "Recusado"
)

// Payment method constants
const (
	MetodoPagamentoPix      = "pix"
	MetodoPagamentoCartao   = "cartao"
	MetodoPagamentoBoleto   = "boleto"
	MetodoPagamentoCarteira = "carteira"
)

// User role constants
const (
	TipoUsuarioAdmin      = "admin"
	TipoUsuarioCliente    = "cliente"
	TipoUsuarioFornecedor = "fornecedor"
)

// Variation size constants
const (
	TamanhoPP = "PP"
	TamanhoP  = "P"
	TamanhoM  = "M"
	TamanhoG  = "G"
	TamanhoGG = "GG"
	TamanhoXG = "XG"
)

// Accepted sizes in display order
var TamanhosValidos = []string{TamanhoPP, TamanhoP, TamanhoM, TamanhoG, TamanhoGG, TamanhoXG}

// Variation gender constants
const (
	SexoMasculino = "M"
	SexoFeminino  = "F"
)

// Notification status constants
const (
	NotificacaoStatusPendente = "pendente"
	NotificacaoStatusEnviada  = "enviada"
)

// Queue constants
const (
	QueueDefault            = "default"
	TaskResetPasswordEmail  = "usuario:reset_password_email"
	TaskPedidoStatusEmail   = "pedido:status_email"
	TaskNotificacaoDispatch = "notificacao:dispatch"
)

// Cache default constants
const (
	RedisPrefixDefault = "lv"
)

// ValidTipoUsuario reports whether role is one of the accepted user roles.
func ValidTipoUsuario(role string) bool {
	switch role {
	case TipoUsuarioAdmin, TipoUsuarioCliente, TipoUsuarioFornecedor:
		return true
	}
	return false
}

// ValidTamanho reports whether size is one of the accepted variation sizes.
func ValidTamanho(size string) bool {
	for _, t := range TamanhosValidos {
		if t == size {
			return true
		}
	}
	return false
}

// ValidSexo reports whether s is one of the accepted gender markers.
func ValidSexo(s string) bool {
	return s == SexoMasculino || s == SexoFeminino
}
