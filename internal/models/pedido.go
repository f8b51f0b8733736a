package models

import (
	"time"

	"gorm.io/gorm"
)

// Pedido order created from a cart snapshot. ValorTotal is frozen at
// checkout time; later price changes never touch it.
type Pedido struct {
	ID           uint           `gorm:"primarykey" json:"id"`                          // primary key
	StatusPedido string         `gorm:"index;not null;default:'Pendente'" json:"statusPedido"` // Pendente / Pago
	DataPedido   time.Time      `gorm:"index;not null" json:"dataPedido"`              // placed at
	DataEntrega  time.Time      `gorm:"not null" json:"dataEntrega"`                   // delivery estimate
	ValorTotal   Money          `gorm:"type:decimal(10,2);not null;default:0" json:"valorTotal"` // snapshot total
	UsuarioID    uint           `gorm:"index;not null" json:"usuarioId"`               // buyer
	CarrinhoID   uint           `gorm:"index;not null" json:"carrinhoId"`              // source cart
	CreatedAt    time.Time      `gorm:"index" json:"createdAt"`
	UpdatedAt    time.Time      `json:"updatedAt"`
	DeletedAt    gorm.DeletedAt `gorm:"index" json:"-"`

	Usuario    *Usuario    `gorm:"foreignKey:UsuarioID" json:"usuario,omitempty"`
	Pagamentos []Pagamento `gorm:"foreignKey:PedidoID" json:"pagamentos,omitempty"`
}

// TableName sets the table name.
func (Pedido) TableName() string {
	return "tb_pedidos"
}
