package http

import (
	"github.com/gofiber/fiber/v2"

	"github.com/livo/contratos-api/internal/application/usecase"
)

// RouterDeps dependências para o router.
type RouterDeps struct {
	ExtractUC     *usecase.ExtractUseCase
	ContractUC    *usecase.ContractUseCase
	GenerateUC    *usecase.GenerateUseCase
	JWTSecret     string
	RateLimiter   *RateLimiter
	UploadMaxSize int64
}

// Router registra as rotas da API.
func Router(app *fiber.App, deps RouterDeps) {
	api := app.Group("/api")

	contracts := api.Group("/contracts", AuthMiddleware(deps.JWTSecret))
	contractHandler := NewContractHandler(deps.ContractUC, deps.GenerateUC)
	extractHandler := NewExtractHandler(deps.ExtractUC, deps.UploadMaxSize)

	// Rotas pesadas (parse de PDF e renderização) passam pelo rate limit.
	heavy := deps.RateLimiter.Middleware()
	contracts.Post("/extract", heavy, extractHandler.Extract)
	contracts.Post("/generate", heavy, contractHandler.Generate)

	contracts.Get("/", contractHandler.List)
	contracts.Post("/", contractHandler.Create)
	contracts.Get("/:id", contractHandler.GetByID)
	contracts.Patch("/:id", contractHandler.Update)
	contracts.Delete("/:id", contractHandler.Delete)
}
