package provider

import (
	"github.com/lojaviva/lojaviva-api/internal/authz"
	"github.com/lojaviva/lojaviva-api/internal/cache"
	"github.com/lojaviva/lojaviva-api/internal/config"
	"github.com/lojaviva/lojaviva-api/internal/logger"
	"github.com/lojaviva/lojaviva-api/internal/models"
	"github.com/lojaviva/lojaviva-api/internal/queue"
	"github.com/lojaviva/lojaviva-api/internal/repository"
	"github.com/lojaviva/lojaviva-api/internal/service"
)

// Container holds every repository and service, wired once at startup.
type Container struct {
	Config      *config.Config
	QueueClient *queue.Client

	// Repositories
	UsuarioRepo     repository.UsuarioRepository
	CarrinhoRepo    repository.CarrinhoRepository
	ProdutoRepo     repository.ProdutoRepository
	VariacaoRepo    repository.ProdutoVariacaoRepository
	CategoriaRepo   *repository.GormCategoriaRepository
	ColecaoRepo     *repository.GormColecaoRepository
	PedidoRepo      repository.PedidoRepository
	PagamentoRepo   repository.PagamentoRepository
	NotificacaoRepo repository.NotificacaoRepository

	// Services
	AuthzService       *authz.Service
	TokenService       *service.TokenService
	EmailService       *service.EmailService
	UsuarioService     *service.UsuarioService
	CarrinhoService    *service.CarrinhoService
	PedidoService      *service.PedidoService
	PagamentoService   *service.PagamentoService
	ProdutoService     *service.ProdutoService
	VariacaoService    *service.ProdutoVariacaoService
	CategoriaService   *service.CategoriaService
	ColecaoService     *service.ColecaoService
	NotificacaoService *service.NotificacaoService
}

// NewContainer builds the dependency graph.
func NewContainer(cfg *config.Config) *Container {
	if err := cache.InitRedis(&cfg.Redis); err != nil {
		logger.Warnw("provider_init_redis_failed", "error", err)
	}

	var queueClient *queue.Client
	if cfg.Queue.Enabled {
		qc, err := queue.NewClient(&cfg.Queue)
		if err != nil {
			logger.Errorw("provider_init_queue_client_failed", "error", err)
		} else {
			queueClient = qc
		}
	}

	c := &Container{
		Config:      cfg,
		QueueClient: queueClient,
	}

	c.initRepositories()
	c.initServices()

	return c
}

func (c *Container) initRepositories() {
	db := models.DB
	c.UsuarioRepo = repository.NewUsuarioRepository(db)
	c.CarrinhoRepo = repository.NewCarrinhoRepository(db)
	c.ProdutoRepo = repository.NewProdutoRepository(db)
	c.VariacaoRepo = repository.NewProdutoVariacaoRepository(db)
	c.CategoriaRepo = repository.NewCategoriaRepository(db)
	c.ColecaoRepo = repository.NewColecaoRepository(db)
	c.PedidoRepo = repository.NewPedidoRepository(db)
	c.PagamentoRepo = repository.NewPagamentoRepository(db)
	c.NotificacaoRepo = repository.NewNotificacaoRepository(db)
}

func (c *Container) initServices() {
	authzService, err := authz.NewService(models.DB)
	if err != nil {
		logger.Errorw("provider_init_authz_failed", "error", err)
		panic(err)
	}
	c.AuthzService = authzService
	if err := c.AuthzService.BootstrapBuiltinRoles(); err != nil {
		logger.Errorw("provider_bootstrap_builtin_roles_failed", "error", err)
		panic(err)
	}

	c.TokenService = service.NewTokenService(&c.Config.ResetToken)
	c.EmailService = service.NewEmailService(&c.Config.Email)
	c.UsuarioService = service.NewUsuarioService(c.Config, c.UsuarioRepo, c.CarrinhoRepo, c.TokenService, c.EmailService, c.QueueClient)
	c.CarrinhoService = service.NewCarrinhoService(c.CarrinhoRepo, c.VariacaoRepo)
	c.PedidoService = service.NewPedidoService(c.PedidoRepo, c.CarrinhoRepo, c.QueueClient)
	c.PagamentoService = service.NewPagamentoService(c.PagamentoRepo, c.PedidoRepo, c.PedidoService)
	c.ProdutoService = service.NewProdutoService(c.ProdutoRepo)
	c.VariacaoService = service.NewProdutoVariacaoService(c.VariacaoRepo, c.ProdutoRepo)
	c.CategoriaService = service.NewCategoriaService(c.CategoriaRepo)
	c.ColecaoService = service.NewColecaoService(c.ColecaoRepo)
	c.NotificacaoService = service.NewNotificacaoService(c.NotificacaoRepo, c.UsuarioRepo, c.EmailService, c.QueueClient)
}
