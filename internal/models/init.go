package models

import (
	"github.com/lojaviva/lojaviva-api/internal/constants"
	"github.com/lojaviva/lojaviva-api/internal/logger"

	"golang.org/x/crypto/bcrypt"
	"gorm.io/gorm"
)

// InitDefaultAdmin creates the first admin account when the user table
// is empty. The admin gets a cart like any other user.
func InitDefaultAdmin(email, password string) error {
	var count int64
	DB.Model(&Usuario{}).Where("tipo_usuario = ?", constants.TipoUsuarioAdmin).Count(&count)
	if count > 0 {
		return nil
	}

	if email == "" {
		email = "admin@lojaviva.com.br"
	}
	if password == "" {
		password = "admin123"
	}
	hash, err := bcrypt.GenerateFromPassword([]byte(password), 12)
	if err != nil {
		return err
	}

	admin := Usuario{
		Nome:        "Administrador",
		CPF:         "00000000000",
		Email:       email,
		Senha:       string(hash),
		TipoUsuario: constants.TipoUsuarioAdmin,
	}

	err = DB.Transaction(func(tx *gorm.DB) error {
		if err := tx.Create(&admin).Error; err != nil {
			return err
		}
		return tx.Create(&Carrinho{UsuarioID: admin.ID}).Error
	})
	if err != nil {
		return err
	}

	if password == "admin123" {
		logger.Warnw("default_admin_created_with_default_password", "email", email)
		logger.Warnw("default_admin_password_change_required", "email", email)
	} else {
		logger.Warnw("default_admin_created", "email", email, "password_hidden", true)
	}

	return nil
}
