package repository

import (
	"fmt"
	"testing"
	"time"

	"github.com/lojaviva/lojaviva-api/internal/constants"
	"github.com/lojaviva/lojaviva-api/internal/models"

	"github.com/glebarez/sqlite"
	"gorm.io/gorm"
)

func setupBaseTest(t *testing.T) (*Base[models.Categoria], *gorm.DB) {
	t.Helper()
	dsn := fmt.Sprintf("file:base_repo_test_%d?mode=memory&cache=shared", time.Now().UnixNano())
	db, err := gorm.Open(sqlite.Open(dsn), &gorm.Config{})
	if err != nil {
		t.Fatalf("open sqlite failed: %v", err)
	}
	if err := db.AutoMigrate(&models.Categoria{}); err != nil {
		t.Fatalf("auto migrate failed: %v", err)
	}
	return NewBase[models.Categoria](db), db
}

func TestBaseCreateAndGetByID(t *testing.T) {
	repo, _ := setupBaseTest(t)

	categoria := models.Categoria{Nome: "Camisetas", Descricao: "Manga curta e longa"}
	if err := repo.Create(&categoria); err != nil {
		t.Fatalf("create failed: %v", err)
	}
	if categoria.ID == 0 {
		t.Fatalf("create should populate the id")
	}

	found, err := repo.GetByID(categoria.ID)
	if err != nil {
		t.Fatalf("get by id failed: %v", err)
	}
	if found == nil || found.Nome != "Camisetas" {
		t.Fatalf("get by id want Camisetas got %+v", found)
	}
}

func TestBaseGetByIDAbsentReturnsNil(t *testing.T) {
	repo, _ := setupBaseTest(t)

	found, err := repo.GetByID(999)
	if err != nil {
		t.Fatalf("absent row should not error: %v", err)
	}
	if found != nil {
		t.Fatalf("absent row should be nil, got %+v", found)
	}
}

func TestBaseUpdateReportsAffectedRows(t *testing.T) {
	repo, _ := setupBaseTest(t)

	categoria := models.Categoria{Nome: "Calças"}
	if err := repo.Create(&categoria); err != nil {
		t.Fatalf("create failed: %v", err)
	}

	affected, err := repo.Update(categoria.ID, map[string]interface{}{"nome": "Calças Jeans"})
	if err != nil {
		t.Fatalf("update failed: %v", err)
	}
	if affected != 1 {
		t.Fatalf("affected want 1 got %d", affected)
	}

	affected, err = repo.Update(999, map[string]interface{}{"nome": "Nada"})
	if err != nil {
		t.Fatalf("update absent failed: %v", err)
	}
	if affected != 0 {
		t.Fatalf("absent update should affect 0 rows, got %d", affected)
	}
}

func TestBaseDeleteReportsAffectedRows(t *testing.T) {
	repo, _ := setupBaseTest(t)

	categoria := models.Categoria{Nome: "Acessórios"}
	if err := repo.Create(&categoria); err != nil {
		t.Fatalf("create failed: %v", err)
	}

	affected, err := repo.Delete(categoria.ID)
	if err != nil {
		t.Fatalf("delete failed: %v", err)
	}
	if affected != 1 {
		t.Fatalf("affected want 1 got %d", affected)
	}

	affected, err = repo.Delete(categoria.ID)
	if err != nil {
		t.Fatalf("second delete failed: %v", err)
	}
	if affected != 0 {
		t.Fatalf("second delete should affect 0 rows, got %d", affected)
	}
}

func TestBaseFindWithPagination(t *testing.T) {
	repo, _ := setupBaseTest(t)

	for i := 0; i < 5; i++ {
		if err := repo.Create(&models.Categoria{Nome: fmt.Sprintf("Categoria %d", i)}); err != nil {
			t.Fatalf("create failed: %v", err)
		}
	}

	page, total, err := repo.FindWithPagination(2, 0)
	if err != nil {
		t.Fatalf("pagination failed: %v", err)
	}
	if total != 5 {
		t.Fatalf("total want 5 got %d", total)
	}
	if len(page) != 2 {
		t.Fatalf("page size want 2 got %d", len(page))
	}

	tail, total, err := repo.FindWithPagination(10, 4)
	if err != nil {
		t.Fatalf("pagination failed: %v", err)
	}
	if total != 5 {
		t.Fatalf("total want 5 got %d", total)
	}
	if len(tail) != 1 {
		t.Fatalf("tail size want 1 got %d", len(tail))
	}

	all, total, err := repo.FindWithPagination(0, 0)
	if err != nil {
		t.Fatalf("pagination failed: %v", err)
	}
	if total != 5 || len(all) != 5 {
		t.Fatalf("unlimited page want all 5 got %d (total %d)", len(all), total)
	}
}

func TestBaseWithTx(t *testing.T) {
	repo, db := setupBaseTest(t)

	err := db.Transaction(func(tx *gorm.DB) error {
		txRepo := repo.WithTx(tx)
		if err := txRepo.Create(&models.Categoria{Nome: "Transacional"}); err != nil {
			return err
		}
		return fmt.Errorf("forced rollback")
	})
	if err == nil {
		t.Fatalf("transaction should propagate the error")
	}

	rows, err := repo.GetAll()
	if err != nil {
		t.Fatalf("get all failed: %v", err)
	}
	if len(rows) != 0 {
		t.Fatalf("rolled back create should not persist, got %d rows", len(rows))
	}

	if got := repo.WithTx(nil); got != repo {
		t.Fatalf("nil tx should return the same repository")
	}
}

func TestUsuarioRepositoryCountByEmailOrCPF(t *testing.T) {
	dsn := fmt.Sprintf("file:usuario_repo_test_%d?mode=memory&cache=shared", time.Now().UnixNano())
	db, err := gorm.Open(sqlite.Open(dsn), &gorm.Config{})
	if err != nil {
		t.Fatalf("open sqlite failed: %v", err)
	}
	if err := db.AutoMigrate(&models.Usuario{}); err != nil {
		t.Fatalf("auto migrate failed: %v", err)
	}
	repo := NewUsuarioRepository(db)

	usuario := models.Usuario{
		Nome:        "Ana",
		CPF:         "12345678901",
		Email:       "ana@example.com",
		Senha:       "hash",
		TipoUsuario: constants.TipoUsuarioCliente,
	}
	if err := repo.Create(&usuario); err != nil {
		t.Fatalf("create failed: %v", err)
	}

	count, err := repo.CountByEmailOrCPF("ana@example.com", "00000000000")
	if err != nil {
		t.Fatalf("count by email failed: %v", err)
	}
	if count != 1 {
		t.Fatalf("email match want 1 got %d", count)
	}

	count, err = repo.CountByEmailOrCPF("outra@example.com", "12345678901")
	if err != nil {
		t.Fatalf("count by cpf failed: %v", err)
	}
	if count != 1 {
		t.Fatalf("cpf match want 1 got %d", count)
	}

	count, err = repo.CountByEmailOrCPF("outra@example.com", "00000000000")
	if err != nil {
		t.Fatalf("count no match failed: %v", err)
	}
	if count != 0 {
		t.Fatalf("no match want 0 got %d", count)
	}
}
