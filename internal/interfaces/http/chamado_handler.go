package http

import (
	"github.com/gofiber/fiber/v2"

	"github.com/gestaoti/gestao-ti-api/internal/application/chamado"
	"github.com/gestaoti/gestao-ti-api/internal/application/dto"
	"github.com/gestaoti/gestao-ti-api/internal/domain/repository"
)

// ChamadoHandler trata as rotas de chamados.
type ChamadoHandler struct {
	uc *chamado.UseCase
}

// NewChamadoHandler constrói o handler.
func NewChamadoHandler(uc *chamado.UseCase) *ChamadoHandler {
	return &ChamadoHandler{uc: uc}
}

// Criar abre um chamado com número gerado pela sequência anual.
func (h *ChamadoHandler) Criar(c *fiber.Ctx) error {
	var in dto.CriarChamadoRequest
	if err := c.BodyParser(&in); err != nil {
		return erro(c, fiber.StatusBadRequest, "corpo inválido")
	}
	ch, err := h.uc.Criar(c.UserContext(), in)
	if err != nil {
		return mapearErro(c, err)
	}
	return c.Status(fiber.StatusCreated).JSON(dto.NovoChamadoResponse(ch))
}

// Obter retorna o chamado com o histórico de transições embutido.
func (h *ChamadoHandler) Obter(c *fiber.Ctx) error {
	ch, historico, err := h.uc.Obter(c.Params("id"))
	if err != nil {
		return mapearErro(c, err)
	}
	out := dto.NovoChamadoResponse(ch)
	out.Historico = make([]dto.HistoricoChamadoResponse, 0, len(historico))
	for _, hc := range historico {
		out.Historico = append(out.Historico, dto.NovoHistoricoResponse(hc))
	}
	return c.JSON(out)
}

// Listar filtra por status, prioridade e técnico atribuído.
func (h *ChamadoHandler) Listar(c *fiber.Ctx) error {
	filtro := repository.ChamadoFiltro{
		Status:     c.Query("status"),
		Prioridade: c.Query("prioridade"),
		TecnicoID:  c.Query("tecnico_id"),
	}
	chamados, err := h.uc.Listar(filtro)
	if err != nil {
		return mapearErro(c, err)
	}
	out := make([]dto.ChamadoResponse, 0, len(chamados))
	for _, ch := range chamados {
		out = append(out, dto.NovoChamadoResponse(ch))
	}
	return c.JSON(out)
}

// Atribuir coloca o chamado em andamento com um técnico.
func (h *ChamadoHandler) Atribuir(c *fiber.Ctx) error {
	var in dto.AtribuirChamadoRequest
	if err := c.BodyParser(&in); err != nil {
		return erro(c, fiber.StatusBadRequest, "corpo inválido")
	}
	ch, err := h.uc.Atribuir(c.UserContext(), c.Params("id"), in)
	if err != nil {
		return mapearErro(c, err)
	}
	return c.JSON(dto.NovoChamadoResponse(ch))
}

// Resolver marca o chamado como resolvido registrando a solução.
func (h *ChamadoHandler) Resolver(c *fiber.Ctx) error {
	var in dto.ResolverChamadoRequest
	if err := c.BodyParser(&in); err != nil {
		return erro(c, fiber.StatusBadRequest, "corpo inválido")
	}
	ch, err := h.uc.Resolver(c.UserContext(), c.Params("id"), in)
	if err != nil {
		return mapearErro(c, err)
	}
	return c.JSON(dto.NovoChamadoResponse(ch))
}

// Fechar encerra um chamado resolvido.
func (h *ChamadoHandler) Fechar(c *fiber.Ctx) error {
	var in dto.FecharChamadoRequest
	if err := c.BodyParser(&in); err != nil {
		return erro(c, fiber.StatusBadRequest, "corpo inválido")
	}
	ch, err := h.uc.Fechar(c.UserContext(), c.Params("id"), in)
	if err != nil {
		return mapearErro(c, err)
	}
	return c.JSON(dto.NovoChamadoResponse(ch))
}
