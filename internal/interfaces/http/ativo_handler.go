package http

import (
	"github.com/gofiber/fiber/v2"

	"github.com/gestaoti/gestao-ti-api/internal/application/ativo"
	"github.com/gestaoti/gestao-ti-api/internal/application/dto"
	"github.com/gestaoti/gestao-ti-api/internal/domain/entity"
	"github.com/gestaoti/gestao-ti-api/internal/domain/repository"
)

// AtivoHandler trata as rotas de ativos de TI.
type AtivoHandler struct {
	uc *ativo.UseCase
}

// NewAtivoHandler constrói o handler.
func NewAtivoHandler(uc *ativo.UseCase) *AtivoHandler {
	return &AtivoHandler{uc: uc}
}

// Criar cadastra um ativo.
func (h *AtivoHandler) Criar(c *fiber.Ctx) error {
	var in dto.CriarAtivoRequest
	if err := c.BodyParser(&in); err != nil {
		return erro(c, fiber.StatusBadRequest, "corpo inválido")
	}
	a, err := h.uc.Criar(in)
	if err != nil {
		return mapearErro(c, err)
	}
	return c.Status(fiber.StatusCreated).JSON(dto.NovoAtivoResponse(a))
}

// Obter busca um ativo por ID.
func (h *AtivoHandler) Obter(c *fiber.Ctx) error {
	a, err := h.uc.Obter(c.Params("id"))
	if err != nil {
		return mapearErro(c, err)
	}
	return c.JSON(dto.NovoAtivoResponse(a))
}

// Listar filtra por tipo e status.
func (h *AtivoHandler) Listar(c *fiber.Ctx) error {
	filtro := repository.AtivoFiltro{
		Tipo:   c.Query("tipo"),
		Status: c.Query("status"),
	}
	ativos, err := h.uc.Listar(filtro)
	if err != nil {
		return mapearErro(c, err)
	}
	return c.JSON(ativosResponse(ativos))
}

// Atualizar altera um ativo.
func (h *AtivoHandler) Atualizar(c *fiber.Ctx) error {
	var in dto.AtualizarAtivoRequest
	if err := c.BodyParser(&in); err != nil {
		return erro(c, fiber.StatusBadRequest, "corpo inválido")
	}
	a, err := h.uc.Atualizar(c.Params("id"), in)
	if err != nil {
		return mapearErro(c, err)
	}
	return c.JSON(dto.NovoAtivoResponse(a))
}

// Desativar faz a exclusão lógica do ativo.
func (h *AtivoHandler) Desativar(c *fiber.Ctx) error {
	if err := h.uc.Desativar(c.Params("id")); err != nil {
		return mapearErro(c, err)
	}
	return c.JSON(dto.MensagemResponse{Mensagem: "Ativo desativado com sucesso"})
}

// ListarLicencasVencendo retorna licenças que vencem nos próximos dias (padrão 30).
func (h *AtivoHandler) ListarLicencasVencendo(c *fiber.Ctx) error {
	ativos, err := h.uc.ListarLicencasVencendo(c.QueryInt("dias"))
	if err != nil {
		return mapearErro(c, err)
	}
	return c.JSON(ativosResponse(ativos))
}

func ativosResponse(ativos []*entity.Ativo) []dto.AtivoResponse {
	out := make([]dto.AtivoResponse, 0, len(ativos))
	for _, a := range ativos {
		out = append(out, dto.NovoAtivoResponse(a))
	}
	return out
}
