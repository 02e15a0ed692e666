package http

import (
	"github.com/gofiber/fiber/v2"

	"github.com/gestaoti/gestao-ti-api/internal/application/dashboard"
)

// DashboardHandler trata as rotas do painel.
type DashboardHandler struct {
	uc *dashboard.UseCase
}

// NewDashboardHandler constrói o handler.
func NewDashboardHandler(uc *dashboard.UseCase) *DashboardHandler {
	return &DashboardHandler{uc: uc}
}

// Estatisticas retorna os contadores agregados de todos os módulos.
func (h *DashboardHandler) Estatisticas(c *fiber.Ctx) error {
	stats, err := h.uc.Estatisticas(c.UserContext())
	if err != nil {
		return mapearErro(c, err)
	}
	return c.JSON(stats)
}

// Alertas retorna os avisos operacionais pendentes.
func (h *DashboardHandler) Alertas(c *fiber.Ctx) error {
	alertas, err := h.uc.Alertas(c.UserContext())
	if err != nil {
		return mapearErro(c, err)
	}
	return c.JSON(alertas)
}
