package models

import (
	"time"

	"gorm.io/gorm"
)

// ProdutoVariacao sellable variation of a product. Checkout sums the
// Preco of every variation in the cart.
type ProdutoVariacao struct {
	ID           uint           `gorm:"primarykey" json:"id"`                       // primary key
	Preco        Money          `gorm:"type:decimal(10,2);not null;default:0" json:"preco"` // unit price
	Tamanho      string         `gorm:"type:varchar(4);not null" json:"tamanho"`    // PP/P/M/G/GG/XG
	Cor          string         `gorm:"type:varchar(50);not null" json:"cor"`       // color
	Sexo         string         `gorm:"type:varchar(1);not null" json:"sexo"`       // M / F
	QuantEstoque int            `gorm:"not null;default:0" json:"quantEstoque"`     // stock
	ProdutoID    uint           `gorm:"index;not null" json:"produtoId"`            // parent product
	CreatedAt    time.Time      `gorm:"index" json:"createdAt"`
	UpdatedAt    time.Time      `json:"updatedAt"`
	DeletedAt    gorm.DeletedAt `gorm:"index" json:"-"`

	Produto *Produto `gorm:"foreignKey:ProdutoID" json:"produto,omitempty"`
}

// TableName sets the table name.
func (ProdutoVariacao) TableName() string {
	return "tb_produtovariacoes"
}
