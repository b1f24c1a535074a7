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

	"github.com/livo/contratos-api/internal/application/usecase"
	"github.com/livo/contratos-api/internal/infrastructure/pdfread"
	"github.com/livo/contratos-api/internal/infrastructure/postgres"
	"github.com/livo/contratos-api/internal/infrastructure/render"
	"github.com/livo/contratos-api/internal/infrastructure/storage"
	httpRouter "github.com/livo/contratos-api/internal/interfaces/http"
	"github.com/livo/contratos-api/pkg/config"
	"github.com/livo/contratos-api/pkg/logger"
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
		log.Fatal().Err(err).Msg("conexão com PostgreSQL")
	}
	defer pool.Close()

	contractRepo := postgres.NewContractRepository(pool)

	minioStorage, err := storage.NewMinioStorage(cfg.Storage)
	if err != nil {
		log.Fatal().Err(err).Msg("client de object storage")
	}
	if err := minioStorage.EnsureBucket(ctx); err != nil {
		log.Fatal().Err(err).Str("bucket", cfg.Storage.Bucket).Msg("bucket de contratos")
	}

	renderer, err := render.NewRenderer(cfg.Render)
	if err != nil {
		log.Fatal().Err(err).Msg("motor de renderização")
	}
	log.Info().Str("engine", cfg.Render.Engine).Msg("renderizador configurado")

	extractUC := usecase.NewExtractUseCase(pdfread.NewReader(0))
	contractUC := usecase.NewContractUseCase(contractRepo)
	generateUC := usecase.NewGenerateUseCase(contractRepo, renderer, minioStorage, nil)

	app := fiber.New(fiber.Config{
		AppName:      cfg.App.Name,
		BodyLimit:    int(cfg.Upload.MaxSizeBytes) + 1<<20, // folga para o envelope multipart
		ReadTimeout:  time.Second * 30,
		WriteTimeout: time.Second * 30,
		IdleTimeout:  time.Second * 60,
	})
	app.Use(recover.New())
	app.Use(httpRouter.RequestLogger(log))

	// Swagger UI local: http://localhost:<port>/docs
	app.Use(swagger.New(swagger.Config{
		BasePath: "/",
		FilePath: "./docs/swagger.json",
		Path:     "docs",
		Title:    "Livo Contratos API",
	}))

	app.Get("/health", func(c *fiber.Ctx) error {
		return c.JSON(fiber.Map{"status": "ok", "service": cfg.App.Name})
	})

	rateLimiter := httpRouter.NewRateLimiter(cfg.RateLimit.Max, cfg.RateLimit.Window, nil)
	httpRouter.Router(app, httpRouter.RouterDeps{
		ExtractUC:     extractUC,
		ContractUC:    contractUC,
		GenerateUC:    generateUC,
		JWTSecret:     cfg.JWT.Secret,
		RateLimiter:   rateLimiter,
		UploadMaxSize: cfg.Upload.MaxSizeBytes,
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
		log.Error().Err(err).Msg("encerramento do servidor")
	}

	log.Info().Msg("aplicação parada")
}
