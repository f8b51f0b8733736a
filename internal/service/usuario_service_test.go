package service

import (
	"errors"
	"fmt"
	"testing"
	"time"

	"github.com/lojaviva/lojaviva-api/internal/config"
	"github.com/lojaviva/lojaviva-api/internal/constants"
	"github.com/lojaviva/lojaviva-api/internal/models"
	"github.com/lojaviva/lojaviva-api/internal/repository"

	"github.com/glebarez/sqlite"
	"gorm.io/gorm"
)

func setupUsuarioServiceTest(t *testing.T) (*UsuarioService, *gorm.DB) {
	t.Helper()
	dsn := fmt.Sprintf("file:usuario_service_test_%d?mode=memory&cache=shared", time.Now().UnixNano())
	db, err := gorm.Open(sqlite.Open(dsn), &gorm.Config{})
	if err != nil {
		t.Fatalf("open sqlite failed: %v", err)
	}
	if err := db.SetupJoinTable(&models.Carrinho{}, "Variacoes", &models.CarrinhoProdutoVariacao{}); err != nil {
		t.Fatalf("setup join table failed: %v", err)
	}
	if err := db.AutoMigrate(
		&models.Usuario{},
		&models.Carrinho{},
		&models.Produto{},
		&models.ProdutoVariacao{},
		&models.CarrinhoProdutoVariacao{},
	); err != nil {
		t.Fatalf("auto migrate failed: %v", err)
	}
	models.DB = db

	cfg := &config.Config{
		JWT:        config.JWTConfig{SecretKey: "unit-test-jwt-secret", ExpireHours: 1},
		ResetToken: config.ResetTokenConfig{Secret: "unit-test-reset-secret", ExpireMinutes: 30},
	}
	usuarioRepo := repository.NewUsuarioRepository(db)
	carrinhoRepo := repository.NewCarrinhoRepository(db)
	tokenService := NewTokenService(&cfg.ResetToken)
	emailService := NewEmailService(&cfg.Email)
	svc := NewUsuarioService(cfg, usuarioRepo, carrinhoRepo, tokenService, emailService, nil)
	return svc, db
}

func cadastrarTestUsuario(t *testing.T, svc *UsuarioService, email, senha string) *models.Usuario {
	t.Helper()
	usuario, err := svc.Cadastrar(CadastrarInput{
		Nome:  "Ana Souza",
		CPF:   fmt.Sprintf("%011d", time.Now().UnixNano()%100000000000),
		Email: email,
		Senha: senha,
	})
	if err != nil {
		t.Fatalf("cadastrar failed: %v", err)
	}
	return usuario
}

func TestCadastrarCreatesUsuarioAndCarrinho(t *testing.T) {
	svc, db := setupUsuarioServiceTest(t)

	usuario, err := svc.Cadastrar(CadastrarInput{
		Nome:  "Ana Souza",
		CPF:   "12345678901",
		Email: " Ana@Example.com ",
		Senha: "segredo123",
	})
	if err != nil {
		t.Fatalf("cadastrar failed: %v", err)
	}
	if usuario.Email != "ana@example.com" {
		t.Fatalf("email should be normalized, got %s", usuario.Email)
	}
	if usuario.TipoUsuario != constants.TipoUsuarioCliente {
		t.Fatalf("tipo default want %s got %s", constants.TipoUsuarioCliente, usuario.TipoUsuario)
	}
	if usuario.Senha == "segredo123" {
		t.Fatalf("senha should be hashed before persisting")
	}

	var count int64
	if err := db.Model(&models.Carrinho{}).Where("usuario_id = ?", usuario.ID).Count(&count).Error; err != nil {
		t.Fatalf("count carrinhos failed: %v", err)
	}
	if count != 1 {
		t.Fatalf("cadastrar should create exactly one carrinho, got %d", count)
	}
}

func TestCadastrarInvalidTipoUsuario(t *testing.T) {
	svc, _ := setupUsuarioServiceTest(t)

	_, err := svc.Cadastrar(CadastrarInput{
		Nome:        "Ana",
		CPF:         "12345678901",
		Email:       "ana@example.com",
		Senha:       "segredo123",
		TipoUsuario: "gerente",
	})
	if !errors.Is(err, ErrTipoUsuarioInvalido) {
		t.Fatalf("want ErrTipoUsuarioInvalido got %v", err)
	}
}

func TestCadastrarDuplicateEmail(t *testing.T) {
	svc, _ := setupUsuarioServiceTest(t)
	cadastrarTestUsuario(t, svc, "ana@example.com", "segredo123")

	_, err := svc.Cadastrar(CadastrarInput{
		Nome:  "Outra Ana",
		CPF:   "99999999999",
		Email: "ANA@example.com",
		Senha: "outrasenha",
	})
	if !errors.Is(err, ErrEmailCPFJaCadastrado) {
		t.Fatalf("want ErrEmailCPFJaCadastrado got %v", err)
	}
}

func TestLogin(t *testing.T) {
	svc, _ := setupUsuarioServiceTest(t)
	cadastrarTestUsuario(t, svc, "ana@example.com", "segredo123")

	usuario, token, expiresAt, err := svc.Login("Ana@Example.com", "segredo123")
	if err != nil {
		t.Fatalf("login failed: %v", err)
	}
	if token == "" {
		t.Fatalf("login should issue a token")
	}
	if !expiresAt.After(time.Now()) {
		t.Fatalf("token expiry should be in the future, got %v", expiresAt)
	}

	claims, err := svc.ParseJWT(token)
	if err != nil {
		t.Fatalf("parse token failed: %v", err)
	}
	if claims.UsuarioID != usuario.ID {
		t.Fatalf("claims usuario_id want %d got %d", usuario.ID, claims.UsuarioID)
	}

	if _, _, _, err := svc.Login("ana@example.com", "senha-errada"); !errors.Is(err, ErrCredenciaisInvalidas) {
		t.Fatalf("wrong password: want ErrCredenciaisInvalidas got %v", err)
	}
	if _, _, _, err := svc.Login("ninguem@example.com", "segredo123"); !errors.Is(err, ErrCredenciaisInvalidas) {
		t.Fatalf("unknown email: want ErrCredenciaisInvalidas got %v", err)
	}
}

func TestAtualizarPartialUpdate(t *testing.T) {
	svc, _ := setupUsuarioServiceTest(t)
	usuario := cadastrarTestUsuario(t, svc, "ana@example.com", "segredo123")

	novoNome := "Ana Paula Souza"
	novaSenha := "novasenha456"
	affected, err := svc.Atualizar(usuario.ID, AtualizarInput{Nome: &novoNome, Senha: &novaSenha})
	if err != nil {
		t.Fatalf("atualizar failed: %v", err)
	}
	if affected != 1 {
		t.Fatalf("affected want 1 got %d", affected)
	}

	atualizado, err := svc.GetByID(usuario.ID)
	if err != nil {
		t.Fatalf("get by id failed: %v", err)
	}
	if atualizado.Nome != novoNome {
		t.Fatalf("nome want %s got %s", novoNome, atualizado.Nome)
	}
	if _, _, _, err := svc.Login("ana@example.com", novaSenha); err != nil {
		t.Fatalf("login with updated password failed: %v", err)
	}
}

func TestAtualizarNoFields(t *testing.T) {
	svc, _ := setupUsuarioServiceTest(t)
	usuario := cadastrarTestUsuario(t, svc, "ana@example.com", "segredo123")

	if _, err := svc.Atualizar(usuario.ID, AtualizarInput{}); !errors.Is(err, ErrUpdateFailed) {
		t.Fatalf("want ErrUpdateFailed got %v", err)
	}
}

func TestAtualizarAbsent(t *testing.T) {
	svc, _ := setupUsuarioServiceTest(t)

	nome := "Ninguém"
	if _, err := svc.Atualizar(999, AtualizarInput{Nome: &nome}); !errors.Is(err, ErrUsuarioNotFound) {
		t.Fatalf("want ErrUsuarioNotFound got %v", err)
	}
}

func TestSendEmailResetUnknownEmail(t *testing.T) {
	svc, _ := setupUsuarioServiceTest(t)

	sent, err := svc.SendEmailReset("ninguem@example.com")
	if err != nil {
		t.Fatalf("unknown e-mail should not error: %v", err)
	}
	if sent {
		t.Fatalf("unknown e-mail should report not sent")
	}
}

func TestSendEmailResetMailDisabled(t *testing.T) {
	svc, _ := setupUsuarioServiceTest(t)
	cadastrarTestUsuario(t, svc, "ana@example.com", "segredo123")

	if _, err := svc.SendEmailReset("ana@example.com"); !errors.Is(err, ErrEmailServiceDisabled) {
		t.Fatalf("want ErrEmailServiceDisabled got %v", err)
	}
}

func TestRedefinirSenha(t *testing.T) {
	svc, _ := setupUsuarioServiceTest(t)
	cadastrarTestUsuario(t, svc, "ana@example.com", "segredo123")

	token, err := svc.tokenService.Generate("ana@example.com")
	if err != nil {
		t.Fatalf("generate token failed: %v", err)
	}

	if _, err := svc.RedefinirSenha(token, "ana@example.com", "nova123", "outra123"); !errors.Is(err, ErrSenhasNaoConferem) {
		t.Fatalf("mismatched confirmation: want ErrSenhasNaoConferem got %v", err)
	}
	if _, err := svc.RedefinirSenha(token, "ana@example.com", "", ""); !errors.Is(err, ErrSenhasNaoConferem) {
		t.Fatalf("blank password: want ErrSenhasNaoConferem got %v", err)
	}
	if _, err := svc.RedefinirSenha("token-invalido", "ana@example.com", "nova123", "nova123"); !errors.Is(err, ErrTokenInvalido) {
		t.Fatalf("bad token: want ErrTokenInvalido got %v", err)
	}

	alheio, err := svc.tokenService.Generate("ninguem@example.com")
	if err != nil {
		t.Fatalf("generate token failed: %v", err)
	}
	if _, err := svc.RedefinirSenha(alheio, "ninguem@example.com", "nova123", "nova123"); !errors.Is(err, ErrUsuarioNotFound) {
		t.Fatalf("unknown user: want ErrUsuarioNotFound got %v", err)
	}

	affected, err := svc.RedefinirSenha(token, "ana@example.com", "nova123", "nova123")
	if err != nil {
		t.Fatalf("redefinir senha failed: %v", err)
	}
	if affected != 1 {
		t.Fatalf("affected want 1 got %d", affected)
	}
	if _, _, _, err := svc.Login("ana@example.com", "nova123"); err != nil {
		t.Fatalf("login with reset password failed: %v", err)
	}
	if _, _, _, err := svc.Login("ana@example.com", "segredo123"); !errors.Is(err, ErrCredenciaisInvalidas) {
		t.Fatalf("old password should no longer work, got %v", err)
	}
}

func TestUsuarioDeleteAbsent(t *testing.T) {
	svc, _ := setupUsuarioServiceTest(t)

	if err := svc.Delete(999); !errors.Is(err, ErrUsuarioNotFound) {
		t.Fatalf("want ErrUsuarioNotFound got %v", err)
	}
}
