package router

import (
	"fmt"
	"strings"

	"github.com/lojaviva/lojaviva-api/internal/cache"
	"github.com/lojaviva/lojaviva-api/internal/config"
	publichandlers "github.com/lojaviva/lojaviva-api/internal/http/handlers/public"
	"github.com/lojaviva/lojaviva-api/internal/logger"
	"github.com/lojaviva/lojaviva-api/internal/provider"

	"github.com/gin-gonic/gin"
)

// SetupRouter wires middleware and routes over the container.
func SetupRouter(cfg *config.Config, c *provider.Container) *gin.Engine {
	log := logger.L
	if log == nil {
		log = logger.Init(cfg.Server.Mode, cfg.Log.ToLoggerOptions())
	}
	r := gin.New()

	handler := publichandlers.New(c)
	redisPrefix := strings.TrimSpace(cfg.Redis.Prefix)
	if redisPrefix == "" {
		redisPrefix = "lv"
	}
	redisClient := cache.Client()
	loginRule := RateLimitRule{
		Prefix:        fmt.Sprintf("%s:rate:login", redisPrefix),
		WindowSeconds: cfg.Security.LoginRateLimit.WindowSeconds,
		MaxRequests:   cfg.Security.LoginRateLimit.MaxAttempts,
		BlockSeconds:  cfg.Security.LoginRateLimit.BlockSeconds,
		Message:       "muitas tentativas de login",
	}
	resetRule := RateLimitRule{
		Prefix:        fmt.Sprintf("%s:rate:reset", redisPrefix),
		WindowSeconds: cfg.Security.ResetRateLimit.WindowSeconds,
		MaxRequests:   cfg.Security.ResetRateLimit.MaxAttempts,
		BlockSeconds:  cfg.Security.ResetRateLimit.BlockSeconds,
		Message:       "muitas solicitações de redefinição",
	}

	r.Use(gin.Recovery())
	r.Use(RequestIDMiddleware())
	r.Use(LoggerMiddleware(log))
	r.Use(CORSMiddleware(cfg.CORS))

	// Uploaded product images.
	r.Static("/uploads", "./uploads")

	apiV1 := r.Group("/api/v1")
	{
		// Open routes: registration, login, password reset, catalog
		// reads.
		apiV1.POST("/usuarios", handler.CadastrarUsuario)
		apiV1.POST("/usuarios/login", RateLimitMiddleware(redisClient, loginRule, KeyByIPAndJSONField("email")), handler.Login)
		apiV1.POST("/usuarios/send-email-reset", RateLimitMiddleware(redisClient, resetRule, KeyByIPAndJSONField("email")), handler.SendEmailReset)
		apiV1.PUT("/usuarios/reset-password", handler.ResetPassword)

		apiV1.GET("/produtos", handler.ListProdutos)
		apiV1.GET("/produtos/:id", handler.GetProduto)
		apiV1.GET("/produtos/:id/variacoes", handler.ListVariacoesDoProduto)
		apiV1.GET("/variacoes", handler.ListVariacoes)
		apiV1.GET("/variacoes/:id", handler.GetVariacao)
		apiV1.GET("/categorias", handler.ListCategorias)
		apiV1.GET("/categorias/:id", handler.GetCategoria)
		apiV1.GET("/categorias/:id/count-produtos", handler.CountProdutosDaCategoria)
		apiV1.GET("/colecoes", handler.ListColecoes)
		apiV1.GET("/colecoes/:id", handler.GetColecao)

		// Authenticated routes: cart, checkout, payments, profile.
		auth := apiV1.Group("")
		auth.Use(JWTAuthMiddleware(cfg.JWT.SecretKey, c.UsuarioRepo))
		{
			auth.GET("/me", handler.GetMe)
			auth.GET("/me/carrinho", handler.GetMeuCarrinho)
			auth.GET("/usuarios/:id", handler.GetUsuario)
			auth.PUT("/usuarios/:id", handler.AtualizarUsuario)

			auth.POST("/carrinhos/add-produto-to-car", handler.AddProdutoToCar)
			auth.GET("/carrinhos/usuario/:usuarioId", handler.GetCarrinhoByUsuario)
			auth.GET("/carrinhos/:id/variacoes", handler.GetCarrinhoVariacoes)
			auth.POST("/carrinhos/:id/clear", handler.ClearCarrinho)

			auth.POST("/pedidos/create-pedido", handler.CreatePedido)
			auth.GET("/pedidos", handler.ListPedidos)
			auth.GET("/pedidos/:id", handler.GetPedido)
			auth.PUT("/pedidos/:id/set-pago", handler.SetPedidoPago)

			auth.POST("/pagamentos/realizar", handler.RealizarPagamento)
			auth.GET("/pagamentos", handler.ListPagamentos)
			auth.GET("/pagamentos/:id", handler.GetPagamento)

			auth.GET("/notificacoes/usuario/:usuarioId", handler.ListNotificacoesDoUsuario)
		}

		// Management routes: role-gated catalog and account
		// administration.
		gestao := apiV1.Group("")
		gestao.Use(JWTAuthMiddleware(cfg.JWT.SecretKey, c.UsuarioRepo), RBACMiddleware(c.AuthzService))
		{
			gestao.GET("/usuarios", handler.ListUsuarios)
			gestao.DELETE("/usuarios/:id", handler.DeleteUsuario)

			gestao.POST("/produtos", handler.CreateProduto)
			gestao.PUT("/produtos/:id", handler.AtualizarProduto)
			gestao.DELETE("/produtos/:id", handler.DeleteProduto)

			gestao.POST("/variacoes", handler.CreateVariacao)
			gestao.PUT("/variacoes/:id", handler.AtualizarVariacao)
			gestao.DELETE("/variacoes/:id", handler.DeleteVariacao)

			gestao.POST("/categorias", handler.CreateCategoria)
			gestao.PUT("/categorias/:id", handler.AtualizarCategoria)
			gestao.DELETE("/categorias/:id", handler.DeleteCategoria)

			gestao.POST("/colecoes", handler.CreateColecao)
			gestao.PUT("/colecoes/:id", handler.AtualizarColecao)
			gestao.DELETE("/colecoes/:id", handler.DeleteColecao)

			gestao.POST("/notificacoes", handler.CreateNotificacao)
			gestao.GET("/notificacoes", handler.ListNotificacoes)
			gestao.GET("/notificacoes/:id", handler.GetNotificacao)
			gestao.DELETE("/notificacoes/:id", handler.DeleteNotificacao)

			gestao.DELETE("/pedidos/:id", handler.DeletePedido)
			gestao.DELETE("/pagamentos/:id", handler.DeletePagamento)
		}
	}

	r.GET("/health", func(c *gin.Context) {
		c.JSON(200, gin.H{"status": "ok"})
	})

	return r
}
