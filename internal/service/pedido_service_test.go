package service

import (
	"errors"
	"fmt"
	"testing"
	"time"

	"github.com/lojaviva/lojaviva-api/internal/constants"
	"github.com/lojaviva/lojaviva-api/internal/models"
	"github.com/lojaviva/lojaviva-api/internal/repository"

	"github.com/glebarez/sqlite"
	"github.com/shopspring/decimal"
	"gorm.io/gorm"
)

func setupPedidoServiceTest(t *testing.T) (*PedidoService, *CarrinhoService, *gorm.DB) {
	t.Helper()
	dsn := fmt.Sprintf("file:pedido_service_test_%d?mode=memory&cache=shared", time.Now().UnixNano())
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
		&models.Pedido{},
		&models.CarrinhoProdutoVariacao{},
	); err != nil {
		t.Fatalf("auto migrate failed: %v", err)
	}
	models.DB = db

	carrinhoRepo := repository.NewCarrinhoRepository(db)
	variacaoRepo := repository.NewProdutoVariacaoRepository(db)
	pedidoRepo := repository.NewPedidoRepository(db)
	pedidoSvc := NewPedidoService(pedidoRepo, carrinhoRepo, nil)
	carrinhoSvc := NewCarrinhoService(carrinhoRepo, variacaoRepo)
	return pedidoSvc, carrinhoSvc, db
}

func seedCarrinhoComVariacoes(t *testing.T, db *gorm.DB, precos ...string) *models.Carrinho {
	t.Helper()
	usuario := models.Usuario{
		Nome:        "Comprador",
		CPF:         fmt.Sprintf("%011d", time.Now().UnixNano()%100000000000),
		Email:       fmt.Sprintf("comprador_%d@example.com", time.Now().UnixNano()),
		Senha:       "hash",
		TipoUsuario: constants.TipoUsuarioCliente,
	}
	if err := db.Create(&usuario).Error; err != nil {
		t.Fatalf("create usuario failed: %v", err)
	}
	carrinho := models.Carrinho{UsuarioID: usuario.ID}
	if err := db.Create(&carrinho).Error; err != nil {
		t.Fatalf("create carrinho failed: %v", err)
	}
	produto := models.Produto{Nome: "Camiseta", UsuarioID: usuario.ID}
	if err := db.Create(&produto).Error; err != nil {
		t.Fatalf("create produto failed: %v", err)
	}
	for i, preco := range precos {
		valor, err := decimal.NewFromString(preco)
		if err != nil {
			t.Fatalf("invalid preco %s: %v", preco, err)
		}
		variacao := models.ProdutoVariacao{
			Preco:        models.NewMoneyFromDecimal(valor),
			Tamanho:      "M",
			Cor:          fmt.Sprintf("Cor%d", i),
			Sexo:         "M",
			QuantEstoque: 10,
			ProdutoID:    produto.ID,
		}
		if err := db.Create(&variacao).Error; err != nil {
			t.Fatalf("create variacao failed: %v", err)
		}
		join := models.CarrinhoProdutoVariacao{CarrinhoID: carrinho.ID, ProdutoVariacaoID: variacao.ID}
		if err := db.Create(&join).Error; err != nil {
			t.Fatalf("create carrinho join failed: %v", err)
		}
	}
	return &carrinho
}

func TestCreateFromCarrinhoFreezesTotal(t *testing.T) {
	svc, _, db := setupPedidoServiceTest(t)
	carrinho := seedCarrinhoComVariacoes(t, db, "10.00", "25.00")

	entrega, _ := models.NewMoneyFromString("5.00")
	desconto, _ := models.NewMoneyFromString("3.00")
	pedido, err := svc.CreateFromCarrinho(CreateFromCarrinhoInput{
		CarrinhoID:    carrinho.ID,
		ValorEntrega:  entrega,
		ValorDesconto: desconto,
	})
	if err != nil {
		t.Fatalf("create pedido failed: %v", err)
	}

	want := decimal.RequireFromString("37.00")
	if !pedido.ValorTotal.Decimal.Equal(want) {
		t.Fatalf("valor total want 37.00 got %s", pedido.ValorTotal.String())
	}
	if pedido.StatusPedido != constants.PedidoStatusPendente {
		t.Fatalf("status want %s got %s", constants.PedidoStatusPendente, pedido.StatusPedido)
	}
	if pedido.UsuarioID != carrinho.UsuarioID {
		t.Fatalf("usuario_id want %d got %d", carrinho.UsuarioID, pedido.UsuarioID)
	}

	wantEntrega := pedido.DataPedido.Add(constants.PedidoEntregaHoras * time.Hour)
	if pedido.DataEntrega.Sub(wantEntrega) > time.Second || wantEntrega.Sub(pedido.DataEntrega) > time.Second {
		t.Fatalf("data entrega want ~%v got %v", wantEntrega, pedido.DataEntrega)
	}
}

func TestCreateFromCarrinhoClearsCart(t *testing.T) {
	svc, carrinhoSvc, db := setupPedidoServiceTest(t)
	carrinho := seedCarrinhoComVariacoes(t, db, "10.00", "20.00")

	if _, err := svc.CreateFromCarrinho(CreateFromCarrinhoInput{CarrinhoID: carrinho.ID}); err != nil {
		t.Fatalf("create pedido failed: %v", err)
	}

	reloaded, err := carrinhoSvc.GetWithVariacoes(carrinho.ID)
	if err != nil {
		t.Fatalf("reload carrinho failed: %v", err)
	}
	if len(reloaded.Variacoes) != 0 {
		t.Fatalf("carrinho should be empty after checkout, got %d items", len(reloaded.Variacoes))
	}

	var count int64
	if err := db.Model(&models.Carrinho{}).Where("id = ?", carrinho.ID).Count(&count).Error; err != nil {
		t.Fatalf("count carrinho failed: %v", err)
	}
	if count != 1 {
		t.Fatalf("carrinho record itself should survive checkout")
	}
}

func TestCreateFromCarrinhoEmptyCart(t *testing.T) {
	svc, _, db := setupPedidoServiceTest(t)
	carrinho := seedCarrinhoComVariacoes(t, db)

	_, err := svc.CreateFromCarrinho(CreateFromCarrinhoInput{CarrinhoID: carrinho.ID})
	if !errors.Is(err, ErrCarrinhoVazio) {
		t.Fatalf("want ErrCarrinhoVazio got %v", err)
	}

	var count int64
	if err := db.Model(&models.Pedido{}).Count(&count).Error; err != nil {
		t.Fatalf("count pedidos failed: %v", err)
	}
	if count != 0 {
		t.Fatalf("no pedido should be created for an empty cart")
	}
}

func TestCreateFromCarrinhoNotFoundWritesNothing(t *testing.T) {
	svc, _, db := setupPedidoServiceTest(t)

	_, err := svc.CreateFromCarrinho(CreateFromCarrinhoInput{CarrinhoID: 999})
	if !errors.Is(err, ErrCarrinhoNotFound) {
		t.Fatalf("want ErrCarrinhoNotFound got %v", err)
	}

	var count int64
	if err := db.Model(&models.Pedido{}).Count(&count).Error; err != nil {
		t.Fatalf("count pedidos failed: %v", err)
	}
	if count != 0 {
		t.Fatalf("no pedido should be created for a missing cart")
	}
}

func TestCreateFromCarrinhoNegativeTotal(t *testing.T) {
	svc, carrinhoSvc, db := setupPedidoServiceTest(t)
	carrinho := seedCarrinhoComVariacoes(t, db, "10.00")

	desconto, _ := models.NewMoneyFromString("50.00")
	_, err := svc.CreateFromCarrinho(CreateFromCarrinhoInput{
		CarrinhoID:    carrinho.ID,
		ValorDesconto: desconto,
	})
	if !errors.Is(err, ErrValorPedidoNegativo) {
		t.Fatalf("want ErrValorPedidoNegativo got %v", err)
	}

	reloaded, err := carrinhoSvc.GetWithVariacoes(carrinho.ID)
	if err != nil {
		t.Fatalf("reload carrinho failed: %v", err)
	}
	if len(reloaded.Variacoes) != 1 {
		t.Fatalf("cart should keep its items after a rejected checkout")
	}
}

func TestSetPagoExactAmountOnly(t *testing.T) {
	svc, _, db := setupPedidoServiceTest(t)
	carrinho := seedCarrinhoComVariacoes(t, db, "30.00")

	pedido, err := svc.CreateFromCarrinho(CreateFromCarrinhoInput{CarrinhoID: carrinho.ID})
	if err != nil {
		t.Fatalf("create pedido failed: %v", err)
	}

	menor, _ := models.NewMoneyFromString("29.99")
	if _, err := svc.SetPago(pedido.ID, menor); !errors.Is(err, ErrValorPagamentoInvalido) {
		t.Fatalf("lower amount: want ErrValorPagamentoInvalido got %v", err)
	}
	maior, _ := models.NewMoneyFromString("30.01")
	if _, err := svc.SetPago(pedido.ID, maior); !errors.Is(err, ErrValorPagamentoInvalido) {
		t.Fatalf("higher amount: want ErrValorPagamentoInvalido got %v", err)
	}

	var persisted models.Pedido
	if err := db.First(&persisted, pedido.ID).Error; err != nil {
		t.Fatalf("reload pedido failed: %v", err)
	}
	if persisted.StatusPedido != constants.PedidoStatusPendente {
		t.Fatalf("status should stay Pendente after rejected payments, got %s", persisted.StatusPedido)
	}

	exato, _ := models.NewMoneyFromString("30.00")
	pago, err := svc.SetPago(pedido.ID, exato)
	if err != nil {
		t.Fatalf("set pago failed: %v", err)
	}
	if pago.StatusPedido != constants.PedidoStatusPago {
		t.Fatalf("status want %s got %s", constants.PedidoStatusPago, pago.StatusPedido)
	}

	if err := db.First(&persisted, pedido.ID).Error; err != nil {
		t.Fatalf("reload pedido failed: %v", err)
	}
	if persisted.StatusPedido != constants.PedidoStatusPago {
		t.Fatalf("persisted status want %s got %s", constants.PedidoStatusPago, persisted.StatusPedido)
	}
}

func TestSetPagoNotFound(t *testing.T) {
	svc, _, _ := setupPedidoServiceTest(t)

	valor, _ := models.NewMoneyFromString("10.00")
	if _, err := svc.SetPago(12345, valor); !errors.Is(err, ErrPedidoNotFound) {
		t.Fatalf("want ErrPedidoNotFound got %v", err)
	}
}

func TestPedidoDeleteAbsent(t *testing.T) {
	svc, _, _ := setupPedidoServiceTest(t)

	if err := svc.Delete(999); !errors.Is(err, ErrPedidoNotFound) {
		t.Fatalf("want ErrPedidoNotFound got %v", err)
	}
}
