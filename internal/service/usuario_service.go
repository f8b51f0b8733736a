package service

import (
	"errors"
	"strings"
	"time"

	"github.com/lojaviva/lojaviva-api/internal/config"
	"github.com/lojaviva/lojaviva-api/internal/constants"
	"github.com/lojaviva/lojaviva-api/internal/logger"
	"github.com/lojaviva/lojaviva-api/internal/models"
	"github.com/lojaviva/lojaviva-api/internal/queue"
	"github.com/lojaviva/lojaviva-api/internal/repository"

	"github.com/golang-jwt/jwt/v5"
	"golang.org/x/crypto/bcrypt"
	"gorm.io/gorm"
)

const bcryptCost = 12

// UsuarioService accounts, authentication and password reset.
type UsuarioService struct {
	cfg          *config.Config
	usuarioRepo  repository.UsuarioRepository
	carrinhoRepo repository.CarrinhoRepository
	tokenService *TokenService
	emailService *EmailService
	queueClient  *queue.Client
}

// NewUsuarioService creates the user service.
func NewUsuarioService(cfg *config.Config, usuarioRepo repository.UsuarioRepository, carrinhoRepo repository.CarrinhoRepository, tokenService *TokenService, emailService *EmailService, queueClient *queue.Client) *UsuarioService {
	return &UsuarioService{
		cfg:          cfg,
		usuarioRepo:  usuarioRepo,
		carrinhoRepo: carrinhoRepo,
		tokenService: tokenService,
		emailService: emailService,
		queueClient:  queueClient,
	}
}

// CadastrarInput registration input.
type CadastrarInput struct {
	Nome        string
	CPF         string
	Email       string
	Senha       string
	Telefone    string
	Endereco    string
	TipoUsuario string
}

// Cadastrar registers a user and creates its cart in the same
// transaction.
func (s *UsuarioService) Cadastrar(input CadastrarInput) (*models.Usuario, error) {
	tipo := strings.TrimSpace(input.TipoUsuario)
	if tipo == "" {
		tipo = constants.TipoUsuarioCliente
	}
	if !constants.ValidTipoUsuario(tipo) {
		return nil, ErrTipoUsuarioInvalido
	}

	email := strings.ToLower(strings.TrimSpace(input.Email))
	cpf := strings.TrimSpace(input.CPF)
	count, err := s.usuarioRepo.CountByEmailOrCPF(email, cpf)
	if err != nil {
		return nil, err
	}
	if count > 0 {
		return nil, ErrEmailCPFJaCadastrado
	}

	hash, err := bcrypt.GenerateFromPassword([]byte(input.Senha), bcryptCost)
	if err != nil {
		return nil, err
	}

	usuario := &models.Usuario{
		Nome:        strings.TrimSpace(input.Nome),
		CPF:         cpf,
		Email:       email,
		Senha:       string(hash),
		Telefone:    strings.TrimSpace(input.Telefone),
		Endereco:    strings.TrimSpace(input.Endereco),
		TipoUsuario: tipo,
	}

	err = models.DB.Transaction(func(tx *gorm.DB) error {
		usuarioRepo := s.usuarioRepo.WithTx(tx)
		carrinhoRepo := s.carrinhoRepo.WithTx(tx)
		if err := usuarioRepo.Create(usuario); err != nil {
			return err
		}
		return carrinhoRepo.Create(&models.Carrinho{UsuarioID: usuario.ID})
	})
	if err != nil {
		return nil, err
	}
	return usuario, nil
}

// AtualizarInput partial profile update. Nil fields stay untouched.
type AtualizarInput struct {
	Nome     *string
	Senha    *string
	Telefone *string
	Endereco *string
}

// Atualizar applies a partial update. CPF and e-mail are immutable;
// a new password is re-hashed before persisting.
func (s *UsuarioService) Atualizar(id uint, input AtualizarInput) (int64, error) {
	usuario, err := s.usuarioRepo.GetByID(id)
	if err != nil {
		return 0, err
	}
	if usuario == nil {
		return 0, ErrUsuarioNotFound
	}

	values := map[string]interface{}{}
	if input.Nome != nil {
		values["nome"] = strings.TrimSpace(*input.Nome)
	}
	if input.Telefone != nil {
		values["telefone"] = strings.TrimSpace(*input.Telefone)
	}
	if input.Endereco != nil {
		values["endereco"] = strings.TrimSpace(*input.Endereco)
	}
	if input.Senha != nil && *input.Senha != "" {
		hash, err := bcrypt.GenerateFromPassword([]byte(*input.Senha), bcryptCost)
		if err != nil {
			return 0, err
		}
		values["senha"] = string(hash)
	}
	if len(values) == 0 {
		return 0, ErrUpdateFailed
	}

	affected, err := s.usuarioRepo.Update(id, values)
	if err != nil {
		return 0, err
	}
	if affected == 0 {
		return 0, ErrUpdateFailed
	}
	return affected, nil
}

// JWTClaims access-token claims.
type JWTClaims struct {
	UsuarioID   uint   `json:"usuarioId"`
	Email       string `json:"email"`
	TipoUsuario string `json:"tipoUsuario"`
	jwt.RegisteredClaims
}

// Login verifies credentials and issues an access token.
func (s *UsuarioService) Login(email, senha string) (*models.Usuario, string, time.Time, error) {
	normalized := strings.ToLower(strings.TrimSpace(email))
	usuario, err := s.usuarioRepo.GetByEmail(normalized)
	if err != nil {
		return nil, "", time.Time{}, err
	}
	if usuario == nil {
		return nil, "", time.Time{}, ErrCredenciaisInvalidas
	}
	if err := bcrypt.CompareHashAndPassword([]byte(usuario.Senha), []byte(senha)); err != nil {
		return nil, "", time.Time{}, ErrCredenciaisInvalidas
	}

	token, expiresAt, err := s.GenerateJWT(usuario)
	if err != nil {
		return nil, "", time.Time{}, err
	}
	return usuario, token, expiresAt, nil
}

// GenerateJWT signs an HS256 access token for the user.
func (s *UsuarioService) GenerateJWT(usuario *models.Usuario) (string, time.Time, error) {
	expireHours := s.cfg.JWT.ExpireHours
	if expireHours <= 0 {
		expireHours = 24
	}
	expiresAt := time.Now().Add(time.Duration(expireHours) * time.Hour)
	claims := JWTClaims{
		UsuarioID:   usuario.ID,
		Email:       usuario.Email,
		TipoUsuario: usuario.TipoUsuario,
		RegisteredClaims: jwt.RegisteredClaims{
			ExpiresAt: jwt.NewNumericDate(expiresAt),
			IssuedAt:  jwt.NewNumericDate(time.Now()),
			NotBefore: jwt.NewNumericDate(time.Now()),
		},
	}

	token := jwt.NewWithClaims(jwt.SigningMethodHS256, claims)
	tokenString, err := token.SignedString([]byte(s.cfg.JWT.SecretKey))
	if err != nil {
		return "", time.Time{}, err
	}
	return tokenString, expiresAt, nil
}

// ParseJWT validates an access token and returns its claims.
func (s *UsuarioService) ParseJWT(tokenString string) (*JWTClaims, error) {
	parser := jwt.NewParser(jwt.WithValidMethods([]string{jwt.SigningMethodHS256.Alg()}))
	claims := &JWTClaims{}
	token, err := parser.ParseWithClaims(tokenString, claims, func(token *jwt.Token) (interface{}, error) {
		return []byte(s.cfg.JWT.SecretKey), nil
	})
	if err != nil {
		return nil, err
	}
	if claims, ok := token.Claims.(*JWTClaims); ok && token.Valid {
		return claims, nil
	}
	return nil, errors.New("token inválido")
}

// SendEmailReset issues a reset token and mails it. Unknown e-mails
// return false without an error so callers cannot probe accounts.
func (s *UsuarioService) SendEmailReset(email string) (bool, error) {
	normalized := strings.ToLower(strings.TrimSpace(email))
	usuario, err := s.usuarioRepo.GetByEmail(normalized)
	if err != nil {
		return false, err
	}
	if usuario == nil {
		return false, nil
	}

	token, err := s.tokenService.Generate(usuario.Email)
	if err != nil {
		return false, err
	}

	if s.queueClient.Enabled() {
		err = s.queueClient.EnqueueResetPasswordEmail(queue.ResetPasswordEmailPayload{
			Email: usuario.Email,
			Token: token,
		})
		if err != nil {
			logger.Warnw("reset_email_enqueue_failed", "error", err)
			err = s.emailService.SendResetToken(usuario.Email, token)
		}
	} else {
		err = s.emailService.SendResetToken(usuario.Email, token)
	}
	if err != nil {
		return false, err
	}
	return true, nil
}

// RedefinirSenha redeems a reset token. It returns the number of
// updated rows: 0 for any failed precondition, 1 on success.
func (s *UsuarioService) RedefinirSenha(token, email, senha, confirmacao string) (int64, error) {
	if senha == "" || senha != confirmacao {
		return 0, ErrSenhasNaoConferem
	}
	normalized := strings.ToLower(strings.TrimSpace(email))
	if err := s.tokenService.Validate(token, normalized); err != nil {
		return 0, err
	}

	var affected int64
	err := models.DB.Transaction(func(tx *gorm.DB) error {
		usuarioRepo := s.usuarioRepo.WithTx(tx)
		usuario, err := usuarioRepo.GetByEmail(normalized)
		if err != nil {
			return err
		}
		if usuario == nil {
			return ErrUsuarioNotFound
		}
		hash, err := bcrypt.GenerateFromPassword([]byte(senha), bcryptCost)
		if err != nil {
			return err
		}
		affected, err = usuarioRepo.Update(usuario.ID, map[string]interface{}{"senha": string(hash)})
		return err
	})
	if err != nil {
		return 0, err
	}
	return affected, nil
}

// GetByID returns the user or ErrUsuarioNotFound.
func (s *UsuarioService) GetByID(id uint) (*models.Usuario, error) {
	usuario, err := s.usuarioRepo.GetByID(id)
	if err != nil {
		return nil, err
	}
	if usuario == nil {
		return nil, ErrUsuarioNotFound
	}
	return usuario, nil
}

// GetAll returns every user.
func (s *UsuarioService) GetAll() ([]models.Usuario, error) {
	return s.usuarioRepo.GetAll()
}

// ListarPaginado returns a page of users plus the total count.
func (s *UsuarioService) ListarPaginado(limit, offset int) ([]models.Usuario, int64, error) {
	return s.usuarioRepo.FindWithPagination(limit, offset)
}

// Delete removes a user after checking it exists.
func (s *UsuarioService) Delete(id uint) error {
	usuario, err := s.usuarioRepo.GetByID(id)
	if err != nil {
		return err
	}
	if usuario == nil {
		return ErrUsuarioNotFound
	}
	affected, err := s.usuarioRepo.Delete(id)
	if err != nil {
		return err
	}
	if affected == 0 {
		return ErrDeleteFailed
	}
	return nil
}
