package models

import (
	"database/sql/driver"
	"encoding/json"
	"time"

	"gorm.io/gorm"
)

// StringArray JSON-encoded string list column, used for image paths.
type StringArray []string

// Value implements driver.Valuer.
func (s StringArray) Value() (driver.Value, error) {
	if s == nil {
		return nil, nil
	}
	return json.Marshal(s)
}

// Scan implements sql.Scanner.
func (s *StringArray) Scan(value interface{}) error {
	if value == nil {
		*s = StringArray{}
		return nil
	}
	bytes, ok := value.([]byte)
	if !ok {
		if str, isStr := value.(string); isStr {
			bytes = []byte(str)
		} else {
			return nil
		}
	}
	return json.Unmarshal(bytes, s)
}

// Produto catalog product. Price lives on the variations, not here.
type Produto struct {
	ID                  uint           `gorm:"primarykey" json:"id"`                     // primary key
	Nome                string         `gorm:"not null;index" json:"nome"`               // name
	Descricao           string         `gorm:"type:text" json:"descricao"`               // description
	Imagens             StringArray    `gorm:"type:json" json:"imagens"`                 // image paths
	QuantEstoque        int            `gorm:"not null;default:0" json:"quantEstoque"`   // aggregate stock
	QuantStarsAvaliacao int            `gorm:"not null;default:0" json:"quantStarsAvaliacao"` // review stars
	UsuarioID           uint           `gorm:"index;not null" json:"usuarioId"`          // owning supplier
	ColecaoID           *uint          `gorm:"index" json:"colecaoId,omitempty"`         // optional collection
	CreatedAt           time.Time      `gorm:"index" json:"createdAt"`
	UpdatedAt           time.Time      `json:"updatedAt"`
	DeletedAt           gorm.DeletedAt `gorm:"index" json:"-"`

	Categorias []Categoria       `gorm:"many2many:tb_categoriaproduto" json:"categorias,omitempty"`
	Variacoes  []ProdutoVariacao `gorm:"foreignKey:ProdutoID" json:"produtoVariacaos,omitempty"`
	Colecao    *Colecao          `gorm:"foreignKey:ColecaoID" json:"colecao,omitempty"`
}

// TableName sets the table name.
func (Produto) TableName() string {
	return "tb_produtos"
}

// CategoriaProduto join row between category and product.
type CategoriaProduto struct {
	CategoriaID uint      `gorm:"primaryKey" json:"categoriaId"`
	ProdutoID   uint      `gorm:"primaryKey" json:"produtoId"`
	CreatedAt   time.Time `json:"createdAt"`
}

// TableName sets the table name.
func (CategoriaProduto) TableName() string {
	return "tb_categoriaproduto"
}
