package main

import (
	"fmt"

	"github.com/lojaviva/lojaviva-api/internal/config"
	"github.com/lojaviva/lojaviva-api/internal/constants"
	"github.com/lojaviva/lojaviva-api/internal/logger"
	"github.com/lojaviva/lojaviva-api/internal/models"

	"github.com/shopspring/decimal"
	"golang.org/x/crypto/bcrypt"
)

func main() {
	cfg := config.Load()
	logger.Init(cfg.Server.Mode, cfg.Log.ToLoggerOptions())
	stdLog := logger.StdLogger()
	if err := models.InitDB(cfg.Database.Driver, cfg.Database.DSN, models.DBPoolConfig{
		MaxOpenConns:           cfg.Database.Pool.MaxOpenConns,
		MaxIdleConns:           cfg.Database.Pool.MaxIdleConns,
		ConnMaxLifetimeSeconds: cfg.Database.Pool.ConnMaxLifetimeSeconds,
		ConnMaxIdleTimeSeconds: cfg.Database.Pool.ConnMaxIdleTimeSeconds,
	}); err != nil {
		stdLog.Fatalf("Failed to connect database: %v", err)
	}

	if err := models.AutoMigrate(); err != nil {
		stdLog.Fatalf("Failed to migrate database: %v", err)
	}

	if err := models.InitDefaultAdmin("", ""); err != nil {
		stdLog.Printf("Failed to create default admin: %v", err)
	}

	// Fornecedor account owning the sample catalog.
	fornecedor := seedUsuario(stdLog, models.Usuario{
		Nome:        "Moda Brasil Ltda",
		CPF:         "11122233344",
		Email:       "fornecedor@lojaviva.com.br",
		TipoUsuario: constants.TipoUsuarioFornecedor,
		Telefone:    "+55 11 91234-5678",
		Endereco:    "Rua das Flores, 120 - São Paulo/SP",
	}, "fornecedor123")

	cliente := seedUsuario(stdLog, models.Usuario{
		Nome:        "Ana Souza",
		CPF:         "55566677788",
		Email:       "ana.souza@example.com",
		TipoUsuario: constants.TipoUsuarioCliente,
		Telefone:    "+55 21 99876-5432",
		Endereco:    "Av. Atlântica, 500 - Rio de Janeiro/RJ",
	}, "cliente123")
	_ = cliente

	categorias := []models.Categoria{
		{Nome: "Camisetas", Descricao: "Camisetas de algodão e poliéster"},
		{Nome: "Calças", Descricao: "Calças jeans e de moletom"},
		{Nome: "Acessórios", Descricao: "Bonés, cintos e meias"},
	}
	categoriaIDs := map[string]uint{}
	for _, cat := range categorias {
		var existing models.Categoria
		if err := models.DB.Where("nome = ?", cat.Nome).First(&existing).Error; err != nil {
			if err := models.DB.Create(&cat).Error; err != nil {
				stdLog.Printf("Failed to create categoria %s: %v", cat.Nome, err)
				continue
			}
			stdLog.Printf("Created categoria: %s", cat.Nome)
			categoriaIDs[cat.Nome] = cat.ID
		} else {
			stdLog.Printf("Categoria already exists: %s", existing.Nome)
			categoriaIDs[existing.Nome] = existing.ID
		}
	}

	colecao := models.Colecao{Nome: "Verão 2027", Descricao: "Coleção de verão"}
	var existingColecao models.Colecao
	if err := models.DB.Where("nome = ?", colecao.Nome).First(&existingColecao).Error; err != nil {
		if err := models.DB.Create(&colecao).Error; err != nil {
			stdLog.Printf("Failed to create colecao %s: %v", colecao.Nome, err)
		} else {
			stdLog.Printf("Created colecao: %s", colecao.Nome)
		}
	} else {
		colecao = existingColecao
		stdLog.Printf("Colecao already exists: %s", colecao.Nome)
	}
	colecaoID := colecao.ID

	type variacaoSeed struct {
		Preco   string
		Tamanho string
		Cor     string
		Sexo    string
		Estoque int
	}
	type produtoSeed struct {
		Produto    models.Produto
		Categorias []string
		Variacoes  []variacaoSeed
	}

	produtos := []produtoSeed{
		{
			Produto: models.Produto{
				Nome:      "Camiseta Básica",
				Descricao: "Camiseta 100% algodão, corte reto",
				Imagens:   models.StringArray{"/uploads/camiseta-basica.jpg"},
				UsuarioID: fornecedor.ID,
				ColecaoID: &colecaoID,
			},
			Categorias: []string{"Camisetas"},
			Variacoes: []variacaoSeed{
				{Preco: "49.90", Tamanho: "P", Cor: "Branca", Sexo: "M", Estoque: 30},
				{Preco: "49.90", Tamanho: "M", Cor: "Branca", Sexo: "M", Estoque: 25},
				{Preco: "54.90", Tamanho: "G", Cor: "Preta", Sexo: "F", Estoque: 20},
			},
		},
		{
			Produto: models.Produto{
				Nome:      "Calça Jeans Slim",
				Descricao: "Calça jeans com elastano, lavagem escura",
				Imagens:   models.StringArray{"/uploads/calca-jeans-slim.jpg"},
				UsuarioID: fornecedor.ID,
			},
			Categorias: []string{"Calças"},
			Variacoes: []variacaoSeed{
				{Preco: "149.90", Tamanho: "M", Cor: "Azul", Sexo: "M", Estoque: 15},
				{Preco: "149.90", Tamanho: "G", Cor: "Azul", Sexo: "F", Estoque: 10},
			},
		},
		{
			Produto: models.Produto{
				Nome:      "Boné Trucker",
				Descricao: "Boné com tela e regulagem traseira",
				Imagens:   models.StringArray{"/uploads/bone-trucker.jpg"},
				UsuarioID: fornecedor.ID,
				ColecaoID: &colecaoID,
			},
			Categorias: []string{"Acessórios"},
			Variacoes: []variacaoSeed{
				{Preco: "39.90", Tamanho: "M", Cor: "Vermelha", Sexo: "M", Estoque: 40},
			},
		},
	}

	for _, seed := range produtos {
		prod := seed.Produto
		var existing models.Produto
		if err := models.DB.Where("nome = ?", prod.Nome).First(&existing).Error; err == nil {
			stdLog.Printf("Produto already exists: %s", existing.Nome)
			continue
		}

		total := 0
		for _, v := range seed.Variacoes {
			total += v.Estoque
		}
		prod.QuantEstoque = total
		if err := models.DB.Create(&prod).Error; err != nil {
			stdLog.Printf("Failed to create produto %s: %v", prod.Nome, err)
			continue
		}
		stdLog.Printf("Created produto: %s", prod.Nome)

		for _, nome := range seed.Categorias {
			catID, ok := categoriaIDs[nome]
			if !ok {
				continue
			}
			link := models.CategoriaProduto{CategoriaID: catID, ProdutoID: prod.ID}
			if err := models.DB.Create(&link).Error; err != nil {
				stdLog.Printf("Failed to link produto %s to categoria %s: %v", prod.Nome, nome, err)
			}
		}

		for _, v := range seed.Variacoes {
			preco, err := decimal.NewFromString(v.Preco)
			if err != nil {
				stdLog.Printf("Invalid preco %s for produto %s: %v", v.Preco, prod.Nome, err)
				continue
			}
			variacao := models.ProdutoVariacao{
				Preco:        models.NewMoneyFromDecimal(preco),
				Tamanho:      v.Tamanho,
				Cor:          v.Cor,
				Sexo:         v.Sexo,
				QuantEstoque: v.Estoque,
				ProdutoID:    prod.ID,
			}
			if err := models.DB.Create(&variacao).Error; err != nil {
				stdLog.Printf("Failed to create variacao %s/%s for produto %s: %v", v.Tamanho, v.Cor, prod.Nome, err)
			}
		}
	}

	fmt.Println("\nSeed data created successfully!")
	fmt.Println("Summary:")
	fmt.Println("- 1 admin + 1 fornecedor + 1 cliente")
	fmt.Println("- 3 Categorias")
	fmt.Println("- 1 Colecao (Verão 2027)")
	fmt.Println("- 3 Produtos with variações")
}

func seedUsuario(stdLog interface{ Printf(string, ...interface{}) }, usuario models.Usuario, senha string) models.Usuario {
	var existing models.Usuario
	if err := models.DB.Where("email = ?", usuario.Email).First(&existing).Error; err == nil {
		stdLog.Printf("Usuario already exists: %s", existing.Email)
		return existing
	}

	hash, err := bcrypt.GenerateFromPassword([]byte(senha), 12)
	if err != nil {
		stdLog.Printf("Failed to hash password for %s: %v", usuario.Email, err)
		return usuario
	}
	usuario.Senha = string(hash)
	if err := models.DB.Create(&usuario).Error; err != nil {
		stdLog.Printf("Failed to create usuario %s: %v", usuario.Email, err)
		return usuario
	}
	if err := models.DB.Create(&models.Carrinho{UsuarioID: usuario.ID}).Error; err != nil {
		stdLog.Printf("Failed to create carrinho for %s: %v", usuario.Email, err)
	}
	stdLog.Printf("Created usuario: %s", usuario.Email)
	return usuario
}
