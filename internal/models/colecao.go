package models

import (
	"time"

	"gorm.io/gorm"
)

// Colecao seasonal product collection.
type Colecao struct {
	ID        uint           `gorm:"primarykey" json:"id"`       // primary key
	Nome      string         `gorm:"not null;index" json:"nome"` // name
	Descricao string         `gorm:"type:text" json:"descricao"` // description
	CreatedAt time.Time      `gorm:"index" json:"createdAt"`
	UpdatedAt time.Time      `json:"updatedAt"`
	DeletedAt gorm.DeletedAt `gorm:"index" json:"-"`

	Produtos []Produto `gorm:"foreignKey:ColecaoID" json:"produtos,omitempty"`
}

// TableName sets the table name.
func (Colecao) TableName() string {
	return "tb_colecoes"
}
