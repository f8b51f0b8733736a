package models

import (
	"time"

	"gorm.io/gorm"
)

// Usuario account record. Senha always holds a bcrypt hash.
type Usuario struct {
	ID          uint           `gorm:"primarykey" json:"id"`                    // primary key
	Nome        string         `gorm:"not null" json:"nome"`                    // full name
	CPF         string         `gorm:"column:cpf;uniqueIndex;not null" json:"cpf"` // immutable after creation
	Email       string         `gorm:"uniqueIndex;not null" json:"email"`       // immutable after creation
	Senha       string         `gorm:"not null" json:"-"`                       // bcrypt hash, never serialized
	Telefone    string         `gorm:"type:varchar(20)" json:"telefone"`        // phone
	Endereco    string         `gorm:"type:varchar(500)" json:"endereco"`       // address
	TipoUsuario string         `gorm:"index;not null;default:'cliente'" json:"tipoUsuario"` // admin / cliente / fornecedor
	CreatedAt   time.Time      `gorm:"index" json:"createdAt"`
	UpdatedAt   time.Time      `json:"updatedAt"`
	DeletedAt   gorm.DeletedAt `gorm:"index" json:"-"`

	Carrinho *Carrinho `gorm:"foreignKey:UsuarioID" json:"carrinho,omitempty"` // one cart per user
}

// TableName sets the table name.
func (Usuario) TableName() string {
	return "tb_usuarios"
}
