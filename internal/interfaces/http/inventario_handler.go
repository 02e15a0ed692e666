package http

import (
	"github.com/gofiber/fiber/v2"

	"github.com/gestaoti/gestao-ti-api/internal/application/dto"
	"github.com/gestaoti/gestao-ti-api/internal/application/inventario"
)

// InventarioHandler trata as rotas de itens de inventário e movimentações.
type InventarioHandler struct {
	uc *inventario.UseCase
}

// NewInventarioHandler constrói o handler.
func NewInventarioHandler(uc *inventario.UseCase) *InventarioHandler {
	return &InventarioHandler{uc: uc}
}

// Criar cadastra um item.
func (h *InventarioHandler) Criar(c *fiber.Ctx) error {
	var in dto.CriarItemInventarioRequest
	if err := c.BodyParser(&in); err != nil {
		return erro(c, fiber.StatusBadRequest, "corpo inválido")
	}
	item, err := h.uc.Criar(in)
	if err != nil {
		return mapearErro(c, err)
	}
	return c.Status(fiber.StatusCreated).JSON(dto.NovoItemInventarioResponse(item))
}

// Obter retorna o item com o histórico de movimentações embutido.
func (h *InventarioHandler) Obter(c *fiber.Ctx) error {
	item, movs, err := h.uc.Obter(c.Params("id"))
	if err != nil {
		return mapearErro(c, err)
	}
	out := dto.NovoItemInventarioResponse(item)
	out.Movimentacoes = make([]dto.MovimentacaoResponse, 0, len(movs))
	for _, m := range movs {
		out.Movimentacoes = append(out.Movimentacoes, dto.NovaMovimentacaoResponse(m))
	}
	return c.JSON(out)
}

// Listar filtra por tipo e, com estoque_baixo=true, só itens abaixo do mínimo.
func (h *InventarioHandler) Listar(c *fiber.Ctx) error {
	somenteBaixo := c.Query("estoque_baixo") == "true"
	itens, err := h.uc.Listar(c.Query("tipo"), somenteBaixo)
	if err != nil {
		return mapearErro(c, err)
	}
	out := make([]dto.ItemInventarioResponse, 0, len(itens))
	for _, item := range itens {
		out = append(out, dto.NovoItemInventarioResponse(item))
	}
	return c.JSON(out)
}

// ListarEstoqueBaixo retorna só os itens com quantidade no mínimo ou abaixo.
func (h *InventarioHandler) ListarEstoqueBaixo(c *fiber.Ctx) error {
	itens, err := h.uc.Listar(c.Query("tipo"), true)
	if err != nil {
		return mapearErro(c, err)
	}
	out := make([]dto.ItemInventarioResponse, 0, len(itens))
	for _, item := range itens {
		out = append(out, dto.NovoItemInventarioResponse(item))
	}
	return c.JSON(out)
}

// Atualizar altera os dados cadastrais do item. Quantidade só via movimentação.
func (h *InventarioHandler) Atualizar(c *fiber.Ctx) error {
	var in dto.AtualizarItemInventarioRequest
	if err := c.BodyParser(&in); err != nil {
		return erro(c, fiber.StatusBadRequest, "corpo inválido")
	}
	item, err := h.uc.Atualizar(c.Params("id"), in)
	if err != nil {
		return mapearErro(c, err)
	}
	return c.JSON(dto.NovoItemInventarioResponse(item))
}

// Movimentar aplica entrada, saída ou ajuste e registra a movimentação.
func (h *InventarioHandler) Movimentar(c *fiber.Ctx) error {
	var in dto.MovimentarInventarioRequest
	if err := c.BodyParser(&in); err != nil {
		return erro(c, fiber.StatusBadRequest, "corpo inválido")
	}
	item, mov, err := h.uc.Movimentar(c.UserContext(), c.Params("id"), in)
	if err != nil {
		return mapearErro(c, err)
	}
	return c.JSON(dto.MovimentarInventarioResponse{
		Item:         dto.NovoItemInventarioResponse(item),
		Movimentacao: dto.NovaMovimentacaoResponse(mov),
	})
}
