package main

import (
	"flag"
	"fmt"
	"os"
	"strings"
	"syscall"

	"github.com/lojaviva/lojaviva-api/internal/app"
	"github.com/lojaviva/lojaviva-api/internal/config"
	"github.com/lojaviva/lojaviva-api/internal/logger"
	"github.com/lojaviva/lojaviva-api/internal/models"

	"github.com/gin-gonic/gin"
)

const (
	ansiReset = "\033[0m"
	ansiBold  = "\033[1m"
	ansiGreen = "\033[32m"
	ansiCyan  = "\033[36m"
)

func main() {
	printStartupBanner()

	cfg := config.Load()
	logger.Init(cfg.Server.Mode, cfg.Log.ToLoggerOptions())
	stdLog := logger.StdLogger()

	if cfg.Server.Mode == "release" {
		if isWeakSecret(cfg.JWT.SecretKey) {
			stdLog.Fatalf("segredo JWT fraco ou padrão; configure uma chave aleatória forte em produção")
		}
	} else if isWeakSecret(cfg.JWT.SecretKey) {
		stdLog.Printf("aviso: segredo JWT fraco ou padrão; troque antes de ir para produção")
	}

	if err := models.InitDB(cfg.Database.Driver, cfg.Database.DSN, models.DBPoolConfig{
		MaxOpenConns:           cfg.Database.Pool.MaxOpenConns,
		MaxIdleConns:           cfg.Database.Pool.MaxIdleConns,
		ConnMaxLifetimeSeconds: cfg.Database.Pool.ConnMaxLifetimeSeconds,
		ConnMaxIdleTimeSeconds: cfg.Database.Pool.ConnMaxIdleTimeSeconds,
	}); err != nil {
		stdLog.Fatalf("falha ao inicializar o banco de dados: %v", err)
	}

	if err := models.AutoMigrate(); err != nil {
		stdLog.Fatalf("falha na migração do banco de dados: %v", err)
	}

	defaultAdminEmail := os.Getenv("LV_DEFAULT_ADMIN_EMAIL")
	defaultAdminPass := os.Getenv("LV_DEFAULT_ADMIN_PASSWORD")
	if cfg.Server.Mode == "release" && defaultAdminPass == "" {
		stdLog.Printf("aviso: LV_DEFAULT_ADMIN_PASSWORD não definido; criação do administrador padrão ignorada")
	} else if err := models.InitDefaultAdmin(defaultAdminEmail, defaultAdminPass); err != nil {
		stdLog.Printf("aviso: falha ao criar o administrador padrão: %v", err)
	}

	if cfg.Server.Mode == "release" {
		gin.SetMode(gin.ReleaseMode)
	}

	var mode string
	flag.StringVar(&mode, "mode", app.ModeAll, "modo de execução: all (padrão), api, worker")
	flag.Parse()

	if err := app.Run(app.Options{
		Config:  cfg,
		Logger:  logger.S(),
		Signals: []os.Signal{syscall.SIGINT, syscall.SIGTERM},
		Mode:    mode,
	}); err != nil {
		stdLog.Fatalf("falha ao executar os serviços: %v", err)
	}
}

func printStartupBanner() {
	fmt.Println(ansiCyan + "██╗      ██████╗      ██╗ █████╗     ██╗   ██╗██╗██╗   ██╗ █████╗ " + ansiReset)
	fmt.Println(ansiCyan + "██║     ██╔═══██╗     ██║██╔══██╗    ██║   ██║██║██║   ██║██╔══██╗" + ansiReset)
	fmt.Println(ansiCyan + "██║     ██║   ██║     ██║███████║    ██║   ██║██║██║   ██║███████║" + ansiReset)
	fmt.Println(ansiCyan + "██║     ██║   ██║██   ██║██╔══██║    ╚██╗ ██╔╝██║╚██╗ ██╔╝██╔══██║" + ansiReset)
	fmt.Println(ansiCyan + "███████╗╚██████╔╝╚█████╔╝██║  ██║     ╚████╔╝ ██║ ╚████╔╝ ██║  ██║" + ansiReset)
	fmt.Println(ansiCyan + "╚══════╝ ╚═════╝  ╚════╝ ╚═╝  ╚═╝      ╚═══╝  ╚═╝  ╚═══╝  ╚═╝  ╚═╝" + ansiReset)
	fmt.Println(ansiGreen + ansiBold + "Loja Viva API" + ansiReset)
}

func isWeakSecret(secret string) bool {
	if len(secret) < 32 {
		return true
	}
	normalized := strings.ToLower(secret)
	if strings.Contains(normalized, "change-me") ||
		strings.Contains(normalized, "change-in-production") ||
		strings.Contains(normalized, "your-secret-key") {
		return true
	}
	return false
}
