package models

import (
	"time"

	"gorm.io/gorm"
)

// Carrinho shopping cart, one per user. Items live in the join table
// only; clearing the cart never touches this record.
type Carrinho struct {
	ID        uint           `gorm:"primarykey" json:"id"`               // primary key
	UsuarioID uint           `gorm:"uniqueIndex;not null" json:"usuarioId"` // owner
	CreatedAt time.Time      `gorm:"index" json:"createdAt"`
	UpdatedAt time.Time      `json:"updatedAt"`
	DeletedAt gorm.DeletedAt `gorm:"index" json:"-"`

	Variacoes []ProdutoVariacao `gorm:"many2many:tb_carrinhoprodutovariacao" json:"produtoVariacaos,omitempty"` // cart contents
}

// TableName sets the table name.
func (Carrinho) TableName() string {
	return "tb_carrinhos"
}

// CarrinhoProdutoVariacao join row between cart and variation. The
// composite key makes duplicate adds collapse into a single row.
type CarrinhoProdutoVariacao struct {
	CarrinhoID        uint      `gorm:"primaryKey" json:"carrinhoId"`
	ProdutoVariacaoID uint      `gorm:"primaryKey" json:"produtoVariacaoId"`
	CreatedAt         time.Time `json:"createdAt"`
}

// TableName sets the table name.
func (CarrinhoProdutoVariacao) TableName() string {
	return "tb_carrinhoprodutovariacao"
}
