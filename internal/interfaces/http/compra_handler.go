package http

import (
	"github.com/gofiber/fiber/v2"

	"github.com/gestaoti/gestao-ti-api/internal/application/compra"
	"github.com/gestaoti/gestao-ti-api/internal/application/dto"
)

// CompraHandler trata as rotas de pedidos de compra.
type CompraHandler struct {
	uc *compra.UseCase
}

// NewCompraHandler constrói o handler.
func NewCompraHandler(uc *compra.UseCase) *CompraHandler {
	return &CompraHandler{uc: uc}
}

// Criar registra uma compra com produtos e rateios na mesma transação.
func (h *CompraHandler) Criar(c *fiber.Ctx) error {
	var in dto.CriarCompraRequest
	if err := c.BodyParser(&in); err != nil {
		return erro(c, fiber.StatusBadRequest, "corpo inválido")
	}
	cp, err := h.uc.Criar(c.UserContext(), in)
	if err != nil {
		return mapearErro(c, err)
	}
	return c.Status(fiber.StatusCreated).JSON(dto.NovaCompraResponse(cp))
}

// Obter retorna a compra completa, com produtos e rateios.
func (h *CompraHandler) Obter(c *fiber.Ctx) error {
	cp, err := h.uc.Obter(c.Params("id"))
	if err != nil {
		return mapearErro(c, err)
	}
	return c.JSON(dto.NovaCompraResponse(cp))
}

// Listar filtra opcionalmente por status.
func (h *CompraHandler) Listar(c *fiber.Ctx) error {
	compras, err := h.uc.Listar(c.Query("status"))
	if err != nil {
		return mapearErro(c, err)
	}
	out := make([]dto.CompraResponse, 0, len(compras))
	for _, cp := range compras {
		out = append(out, dto.NovaCompraResponse(cp))
	}
	return c.JSON(out)
}

// Atualizar altera os dados da compra, preservando o número do pedido.
func (h *CompraHandler) Atualizar(c *fiber.Ctx) error {
	var in dto.AtualizarCompraRequest
	if err := c.BodyParser(&in); err != nil {
		return erro(c, fiber.StatusBadRequest, "corpo inválido")
	}
	cp, err := h.uc.Atualizar(c.Params("id"), in)
	if err != nil {
		return mapearErro(c, err)
	}
	return c.JSON(dto.NovaCompraResponse(cp))
}

// AtualizarStatus muda só o status, carimbando a aquisição quando entregue.
func (h *CompraHandler) AtualizarStatus(c *fiber.Ctx) error {
	var in dto.AtualizarStatusCompraRequest
	if err := c.BodyParser(&in); err != nil {
		return erro(c, fiber.StatusBadRequest, "corpo inválido")
	}
	cp, err := h.uc.AtualizarStatus(c.Params("id"), in.Status)
	if err != nil {
		return mapearErro(c, err)
	}
	return c.JSON(dto.NovaCompraResponse(cp))
}
