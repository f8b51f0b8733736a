package models

import (
	"time"

	"gorm.io/gorm"
)

// Notificacao broadcast message fanned out to users.
type Notificacao struct {
	ID        uint           `gorm:"primarykey" json:"id"`                     // primary key
	Mensagem  string         `gorm:"type:text;not null" json:"mensagem"`       // body
	Status    string         `gorm:"index;not null;default:'pendente'" json:"status"` // pendente / enviada
	DataEnvio *time.Time     `gorm:"index" json:"dataEnvio"`                   // sent at
	CreatedAt time.Time      `gorm:"index" json:"createdAt"`
	UpdatedAt time.Time      `json:"updatedAt"`
	DeletedAt gorm.DeletedAt `gorm:"index" json:"-"`

	Usuarios []Usuario `gorm:"many2many:tb_usuarionotificacao" json:"usuarios,omitempty"` // recipients
}

// TableName sets the table name.
func (Notificacao) TableName() string {
	return "tb_notificacoes"
}

// UsuarioNotificacao join row between user and notification.
type UsuarioNotificacao struct {
	UsuarioID     uint      `gorm:"primaryKey" json:"usuarioId"`
	NotificacaoID uint      `gorm:"primaryKey" json:"notificacaoId"`
	CreatedAt     time.Time `json:"createdAt"`
}

// TableName sets the table name.
func (UsuarioNotificacao) TableName() string {
	return "tb_usuarionotificacao"
}
