package models

import (
	"time"

	"gorm.io/gorm"
)

// Pagamento payment record tied to an order.
type Pagamento struct {
	ID              uint           `gorm:"primarykey" json:"id"`                        // primary key
	DataPagamento   time.Time      `gorm:"index;not null" json:"dataPagamento"`         // paid at
	ValorPago       Money          `gorm:"type:decimal(10,2);not null;default:0" json:"valorPago"` // amount paid
	MetodoPagamento string         `gorm:"type:varchar(30);not null" json:"metodoPagamento"` // pix / cartao / boleto
	StatusPagamento string         `gorm:"index;not null" json:"statusPagamento"`       // Aprovado / Pendente / Recusado
	UsuarioID       uint           `gorm:"index;not null" json:"usuarioId"`             // payer
	PedidoID        uint           `gorm:"index;not null" json:"pedidoId"`              // target order
	CreatedAt       time.Time      `gorm:"index" json:"createdAt"`
	UpdatedAt       time.Time      `json:"updatedAt"`
	DeletedAt       gorm.DeletedAt `gorm:"index" json:"-"`

	Pedido *Pedido `gorm:"foreignKey:PedidoID" json:"pedido,omitempty"`
}

// TableName sets the table name.
func (Pagamento) TableName() string {
	return "tb_pagamentos"
}
