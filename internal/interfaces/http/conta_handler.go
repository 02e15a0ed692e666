package http

import (
	"github.com/gofiber/fiber/v2"

	"github.com/gestaoti/gestao-ti-api/internal/application/conta"
	"github.com/gestaoti/gestao-ti-api/internal/application/dto"
	"github.com/gestaoti/gestao-ti-api/internal/domain/entity"
	"github.com/gestaoti/gestao-ti-api/internal/domain/repository"
)

// ContaHandler trata as rotas de contas mensais.
type ContaHandler struct {
	uc *conta.UseCase
}

// NewContaHandler constrói o handler.
func NewContaHandler(uc *conta.UseCase) *ContaHandler {
	return &ContaHandler{uc: uc}
}

// Criar cadastra uma conta, sempre pendente.
func (h *ContaHandler) Criar(c *fiber.Ctx) error {
	var in dto.CriarContaMensalRequest
	if err := c.BodyParser(&in); err != nil {
		return erro(c, fiber.StatusBadRequest, "corpo inválido")
	}
	ct, err := h.uc.Criar(in)
	if err != nil {
		return mapearErro(c, err)
	}
	return c.Status(fiber.StatusCreated).JSON(dto.NovaContaMensalResponse(ct))
}

// Obter busca uma conta por ID.
func (h *ContaHandler) Obter(c *fiber.Ctx) error {
	ct, err := h.uc.Obter(c.Params("id"))
	if err != nil {
		return mapearErro(c, err)
	}
	return c.JSON(dto.NovaContaMensalResponse(ct))
}

// Listar filtra por status e pela competência do vencimento.
func (h *ContaHandler) Listar(c *fiber.Ctx) error {
	filtro := repository.ContaMensalFiltro{
		Status: c.Query("status"),
		Mes:    c.QueryInt("mes"),
		Ano:    c.QueryInt("ano"),
	}
	contas, err := h.uc.Listar(filtro)
	if err != nil {
		return mapearErro(c, err)
	}
	return c.JSON(contasResponse(contas))
}

// Atualizar altera a conta, carimbando o pagamento quando vira paga.
func (h *ContaHandler) Atualizar(c *fiber.Ctx) error {
	var in dto.AtualizarContaMensalRequest
	if err := c.BodyParser(&in); err != nil {
		return erro(c, fiber.StatusBadRequest, "corpo inválido")
	}
	ct, err := h.uc.Atualizar(c.Params("id"), in)
	if err != nil {
		return mapearErro(c, err)
	}
	return c.JSON(dto.NovaContaMensalResponse(ct))
}

// Pagar marca a conta como paga. Idempotente.
func (h *ContaHandler) Pagar(c *fiber.Ctx) error {
	ct, err := h.uc.Pagar(c.Params("id"))
	if err != nil {
		return mapearErro(c, err)
	}
	return c.JSON(dto.NovaContaMensalResponse(ct))
}

// ListarVencidas retorna as pendentes com vencimento no passado.
func (h *ContaHandler) ListarVencidas(c *fiber.Ctx) error {
	contas, err := h.uc.ListarVencidas()
	if err != nil {
		return mapearErro(c, err)
	}
	return c.JSON(contasResponse(contas))
}

// ListarVencendo retorna as pendentes vencendo nos próximos dias (padrão 7).
func (h *ContaHandler) ListarVencendo(c *fiber.Ctx) error {
	contas, err := h.uc.ListarVencendo(c.QueryInt("dias"))
	if err != nil {
		return mapearErro(c, err)
	}
	return c.JSON(contasResponse(contas))
}

func contasResponse(contas []*entity.ContaMensal) []dto.ContaMensalResponse {
	out := make([]dto.ContaMensalResponse, 0, len(contas))
	for _, ct := range contas {
		out = append(out, dto.NovaContaMensalResponse(ct))
	}
	return out
}
