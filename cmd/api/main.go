package main

import (
	"context"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/gofiber/contrib/swagger"
	"github.com/gofiber/fiber/v2"
	"github.com/gofiber/fiber/v2/middleware/recover"

	"github.com/gestaoti/gestao-ti-api/internal/application/ativo"
	"github.com/gestaoti/gestao-ti-api/internal/application/chamado"
	"github.com/gestaoti/gestao-ti-api/internal/application/compra"
	"github.com/gestaoti/gestao-ti-api/internal/application/configuracoes"
	"github.com/gestaoti/gestao-ti-api/internal/application/conta"
	"github.com/gestaoti/gestao-ti-api/internal/application/dashboard"
	"github.com/gestaoti/gestao-ti-api/internal/application/inventario"
	"github.com/gestaoti/gestao-ti-api/internal/application/mestre"
	"github.com/gestaoti/gestao-ti-api/internal/application/recuperacao"
	"github.com/gestaoti/gestao-ti-api/internal/application/usuario"
	"github.com/gestaoti/gestao-ti-api/internal/infrastructure/configstore"
	"github.com/gestaoti/gestao-ti-api/internal/infrastructure/email"
	"github.com/gestaoti/gestao-ti-api/internal/infrastructure/postgres"
	"github.com/gestaoti/gestao-ti-api/internal/infrastructure/redisstore"
	httpRouter "github.com/gestaoti/gestao-ti-api/internal/interfaces/http"
	"github.com/gestaoti/gestao-ti-api/pkg/config"
	"github.com/gestaoti/gestao-ti-api/pkg/logger"
)

func main() {
	cfg, err := config.Load()
	if err != nil {
		panic("carregar configuração: " + err.Error())
	}

	log := logger.New(logger.Config{
		Env:   cfg.App.Env,
		Level: "info",
	})
	log.Info().
		Str("env", cfg.App.Env).
		Str("app", cfg.App.Name).
		Msg("iniciando aplicação")

	ctx := context.Background()
	pool, err := postgres.NewPool(ctx, cfg.DB)
	if err != nil {
		log.Fatal().Err(err).Msg("conexão ao PostgreSQL")
	}
	defer pool.Close()

	redisClient, err := redisstore.NewClient(ctx, cfg.Redis)
	if err != nil {
		log.Fatal().Err(err).Msg("conexão ao Redis")
	}
	defer redisClient.Close()

	store, err := configstore.New(cfg.Dirs.Config)
	if err != nil {
		log.Fatal().Err(err).Msg("diretório de configuração")
	}
	emailSvc := email.NewService(store, cfg.App.BaseURL)

	usuarioRepo := postgres.NewUsuarioRepository(pool)
	centroCustoRepo := postgres.NewCentroCustoRepository(pool)
	fornecedorRepo := postgres.NewFornecedorRepository(pool)
	ativoRepo := postgres.NewAtivoRepository(pool)
	chamadoRepo := postgres.NewChamadoRepository(pool)
	historicoRepo := postgres.NewHistoricoChamadoRepository(pool)
	inventarioRepo := postgres.NewInventarioRepository(pool)
	movimentacaoRepo := postgres.NewMovimentacaoRepository(pool)
	compraRepo := postgres.NewCompraRepository(pool)
	contaRepo := postgres.NewContaMensalRepository(pool)
	dashboardRepo := postgres.NewDashboardRepository(pool)
	tokenStore := redisstore.NewTokenStore(redisClient)

	usuarioUC := usuario.NewUseCase(usuarioRepo, usuario.JWTConfig{
		Secret:     cfg.JWT.Secret,
		Issuer:     cfg.JWT.Issuer,
		ExpMinutes: cfg.JWT.Expiration,
	})
	recuperacaoUC := recuperacao.NewUseCase(usuarioRepo, tokenStore, emailSvc, log.Zerolog())
	centroCustoUC := mestre.NewCentroCustoUseCase(centroCustoRepo)
	fornecedorUC := mestre.NewFornecedorUseCase(fornecedorRepo)
	ativoUC := ativo.NewUseCase(ativoRepo)
	chamadoUC := chamado.NewUseCase(postgres.NewChamadoTxRunner(pool), chamadoRepo, historicoRepo)
	inventarioUC := inventario.NewUseCase(postgres.NewInventarioTxRunner(pool), inventarioRepo, movimentacaoRepo)
	compraUC := compra.NewUseCase(postgres.NewCompraTxRunner(pool), compraRepo)
	contaUC := conta.NewUseCase(contaRepo)
	dashboardUC := dashboard.NewUseCase(dashboardRepo, inventarioUC)
	configuracoesUC := configuracoes.NewUseCase(store, emailSvc)

	app := fiber.New(fiber.Config{
		AppName:      cfg.App.Name,
		ReadTimeout:  time.Second * 10,
		WriteTimeout: time.Second * 10,
		IdleTimeout:  time.Second * 60,
	})
	app.Use(recover.New())

	// Swagger UI em local: http://localhost:<port>/docs
	app.Use(swagger.New(swagger.Config{
		BasePath: "/",
		FilePath: "./docs/swagger.json",
		Path:     "docs",
		Title:    "Gestão TI API",
	}))

	app.Get("/health", func(c *fiber.Ctx) error {
		return c.JSON(fiber.Map{"status": "ok", "service": cfg.App.Name})
	})

	httpRouter.Router(app, httpRouter.RouterDeps{
		UsuarioUC:       usuarioUC,
		RecuperacaoUC:   recuperacaoUC,
		CentroCustoUC:   centroCustoUC,
		FornecedorUC:    fornecedorUC,
		CompraUC:        compraUC,
		AtivoUC:         ativoUC,
		ChamadoUC:       chamadoUC,
		InventarioUC:    inventarioUC,
		ContaUC:         contaUC,
		DashboardUC:     dashboardUC,
		ConfiguracoesUC: configuracoesUC,
		UploadDir:       cfg.Dirs.Uploads,
		ConfigDir:       store.Dir(),
	})

	go func() {
		if err := app.Listen(cfg.HTTP.Addr()); err != nil {
			log.Error().Err(err).Msg("servidor HTTP finalizado")
		}
	}()

	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit

	log.Info().Msg("sinal de desligamento recebido, encerrando servidor...")

	shutdownCtx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()

	if err := app.ShutdownWithContext(shutdownCtx); err != nil {
		log.Error().Err(err).Msg("desligamento do servidor")
	}

	log.Info().Msg("aplicação encerrada")
}
