package models

import (
	"time"

	"gorm.io/gorm"
)

// Categoria product category.
type Categoria struct {
	ID        uint           `gorm:"primarykey" json:"id"`       // primary key
	Nome      string         `gorm:"not null;index" json:"nome"` // name
	Descricao string         `gorm:"type:text" json:"descricao"` // description
	CreatedAt time.Time      `gorm:"index" json:"createdAt"`
	UpdatedAt time.Time      `json:"updatedAt"`
	DeletedAt gorm.DeletedAt `gorm:"index" json:"-"`

	Produtos []Produto `gorm:"many2many:tb_categoriaproduto" json:"produtos,omitempty"`
}

// TableName sets the table name.
func (Categoria) TableName() string {
	return "tb_categorias"
}
