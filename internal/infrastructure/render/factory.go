package render

import (
	"fmt"

	"github.com/livo/contratos-api/internal/application/usecase"
	"github.com/livo/contratos-api/pkg/config"
)

// NewRenderer escolhe o motor de renderização pela configuração:
//
//	"chromium" — HTML + navegador headless (fiel ao layout do template)
//	"native"   — Maroto, sem dependência de navegador no ambiente
func NewRenderer(cfg config.RenderConfig) (usecase.ContractRenderer, error) {
	switch cfg.Engine {
	case "", "chromium":
		return NewChromiumRenderer(cfg.ChromiumPath, cfg.Timeout), nil
	case "native":
		return NewMarotoRenderer(), nil
	default:
		return nil, fmt.Errorf("motor de renderização desconhecido: %q", cfg.Engine)
	}
}
