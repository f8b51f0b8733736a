package repository

import (
	"github.com/lojaviva/lojaviva-api/internal/models"

	"gorm.io/gorm"
	"gorm.io/gorm/clause"
)

// NotificacaoRepository notification data access.
type NotificacaoRepository interface {
	Create(notificacao *models.Notificacao) error
	GetByID(id uint) (*models.Notificacao, error)
	GetAll() ([]models.Notificacao, error)
	Update(id uint, values map[string]interface{}) (int64, error)
	Delete(id uint) (int64, error)
	FindWithPagination(limit, offset int) ([]models.Notificacao, int64, error)
	AddUsuarios(notificacaoID uint, usuarioIDs []uint) error
	ListByUsuario(usuarioID uint) ([]models.Notificacao, error)
	ListUsuarios(notificacaoID uint) ([]models.Usuario, error)
	WithTx(tx *gorm.DB) *GormNotificacaoRepository
}

// GormNotificacaoRepository GORM implementation.
type GormNotificacaoRepository struct {
	*Base[models.Notificacao]
}

// NewNotificacaoRepository creates a notification repository.
func NewNotificacaoRepository(db *gorm.DB) *GormNotificacaoRepository {
	return &GormNotificacaoRepository{Base: NewBase[models.Notificacao](db)}
}

// WithTx binds the repository to a transaction.
func (r *GormNotificacaoRepository) WithTx(tx *gorm.DB) *GormNotificacaoRepository {
	if tx == nil {
		return r
	}
	return &GormNotificacaoRepository{Base: r.Base.WithTx(tx)}
}

// AddUsuarios links recipients to the notification, ignoring links
// that already exist.
func (r *GormNotificacaoRepository) AddUsuarios(notificacaoID uint, usuarioIDs []uint) error {
	if len(usuarioIDs) == 0 {
		return nil
	}
	rows := make([]models.UsuarioNotificacao, 0, len(usuarioIDs))
	for _, usuarioID := range usuarioIDs {
		rows = append(rows, models.UsuarioNotificacao{
			UsuarioID:     usuarioID,
			NotificacaoID: notificacaoID,
		})
	}
	return r.DB().Clauses(clause.OnConflict{DoNothing: true}).Create(&rows).Error
}

// ListUsuarios returns the recipients linked to the notification.
func (r *GormNotificacaoRepository) ListUsuarios(notificacaoID uint) ([]models.Usuario, error) {
	var usuarios []models.Usuario
	if err := r.DB().
		Joins("JOIN tb_usuarionotificacao un ON un.usuario_id = tb_usuarios.id").
		Where("un.notificacao_id = ?", notificacaoID).
		Find(&usuarios).Error; err != nil {
		return nil, err
	}
	return usuarios, nil
}

// ListByUsuario returns every notification addressed to the user.
func (r *GormNotificacaoRepository) ListByUsuario(usuarioID uint) ([]models.Notificacao, error) {
	var notificacoes []models.Notificacao
	if err := r.DB().
		Joins("JOIN tb_usuarionotificacao un ON un.notificacao_id = tb_notificacoes.id").
		Where("un.usuario_id = ?", usuarioID).
		Order("tb_notificacoes.id DESC").
		Find(&notificacoes).Error; err != nil {
		return nil, err
	}
	return notificacoes, nil
}
