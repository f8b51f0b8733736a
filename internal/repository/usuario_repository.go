package repository

import (
	"errors"

	"github.com/lojaviva/lojaviva-api/internal/models"

	"gorm.io/gorm"
)

// UsuarioRepository user data access.
type UsuarioRepository interface {
	Create(usuario *models.Usuario) error
	GetByID(id uint) (*models.Usuario, error)
	GetAll() ([]models.Usuario, error)
	Update(id uint, values map[string]interface{}) (int64, error)
	Delete(id uint) (int64, error)
	FindWithPagination(limit, offset int) ([]models.Usuario, int64, error)
	GetByEmail(email string) (*models.Usuario, error)
	CountByEmailOrCPF(email, cpf string) (int64, error)
	WithTx(tx *gorm.DB) *GormUsuarioRepository
}

// GormUsuarioRepository GORM implementation.
type GormUsuarioRepository struct {
	*Base[models.Usuario]
}

// NewUsuarioRepository creates a user repository.
func NewUsuarioRepository(db *gorm.DB) *GormUsuarioRepository {
	return &GormUsuarioRepository{Base: NewBase[models.Usuario](db)}
}

// WithTx binds the repository to a transaction.
func (r *GormUsuarioRepository) WithTx(tx *gorm.DB) *GormUsuarioRepository {
	if tx == nil {
		return r
	}
	return &GormUsuarioRepository{Base: r.Base.WithTx(tx)}
}

// GetByEmail returns the user with the given e-mail or nil when absent.
func (r *GormUsuarioRepository) GetByEmail(email string) (*models.Usuario, error) {
	var usuario models.Usuario
	if err := r.DB().Where("email = ?", email).First(&usuario).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, nil
		}
		return nil, err
	}
	return &usuario, nil
}

// CountByEmailOrCPF counts users holding either identifier, used for
// the uniqueness check at registration.
func (r *GormUsuarioRepository) CountByEmailOrCPF(email, cpf string) (int64, error) {
	var count int64
	if err := r.DB().Model(&models.Usuario{}).
		Where("email = ? OR cpf = ?", email, cpf).
		Count(&count).Error; err != nil {
		return 0, err
	}
	return count, nil
}
