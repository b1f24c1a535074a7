package http

import (
	"sync"
	"time"

	"github.com/gofiber/fiber/v2"

	"github.com/livo/contratos-api/internal/application/dto"
)

// RateLimiter janela deslizante em memória por cliente, para as rotas de
// processamento pesado (parse de PDF e renderização). now é injetável
// para testes.
type RateLimiter struct {
	mu      sync.Mutex
	max     int
	window  time.Duration
	now     func() time.Time
	clients map[string][]time.Time
}

// NewRateLimiter constrói o limitador. now nil usa time.Now.
func NewRateLimiter(max int, window time.Duration, now func() time.Time) *RateLimiter {
	if now == nil {
		now = time.Now
	}
	return &RateLimiter{
		max:     max,
		window:  window,
		now:     now,
		clients: make(map[string][]time.Time),
	}
}

// Allow registra uma tentativa do cliente e diz se ela cabe na janela.
func (rl *RateLimiter) Allow(key string) bool {
	rl.mu.Lock()
	defer rl.mu.Unlock()

	now := rl.now()
	cutoff := now.Add(-rl.window)

	kept := rl.clients[key][:0]
	for _, ts := range rl.clients[key] {
		if ts.After(cutoff) {
			kept = append(kept, ts)
		}
	}
	if len(kept) >= rl.max {
		rl.clients[key] = kept
		return false
	}
	rl.clients[key] = append(kept, now)
	return true
}

// Middleware aplica o limite por IP de origem e responde 429 ao exceder.
func (rl *RateLimiter) Middleware() fiber.Handler {
	return func(c *fiber.Ctx) error {
		if !rl.Allow(c.IP()) {
			return c.Status(fiber.StatusTooManyRequests).JSON(dto.ErrorResponse{
				Code:    "RATE_LIMITED",
				Message: "muitas requisições; tente novamente em instantes",
			})
		}
		return c.Next()
	}
}
