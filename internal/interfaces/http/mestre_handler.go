package http

import (
	"github.com/gofiber/fiber/v2"

	"github.com/gestaoti/gestao-ti-api/internal/application/dto"
	"github.com/gestaoti/gestao-ti-api/internal/application/mestre"
)

// CentroCustoHandler trata as rotas de centros de custo.
type CentroCustoHandler struct {
	uc *mestre.CentroCustoUseCase
}

// NewCentroCustoHandler constrói o handler.
func NewCentroCustoHandler(uc *mestre.CentroCustoUseCase) *CentroCustoHandler {
	return &CentroCustoHandler{uc: uc}
}

// Criar cadastra um centro de custo com código único.
func (h *CentroCustoHandler) Criar(c *fiber.Ctx) error {
	var in dto.CriarCentroCustoRequest
	if err := c.BodyParser(&in); err != nil {
		return erro(c, fiber.StatusBadRequest, "corpo inválido")
	}
	cc, err := h.uc.Criar(in)
	if err != nil {
		return mapearErro(c, err)
	}
	return c.Status(fiber.StatusCreated).JSON(dto.NovoCentroCustoResponse(cc))
}

// Obter busca um centro de custo por ID.
func (h *CentroCustoHandler) Obter(c *fiber.Ctx) error {
	cc, err := h.uc.Obter(c.Params("id"))
	if err != nil {
		return mapearErro(c, err)
	}
	return c.JSON(dto.NovoCentroCustoResponse(cc))
}

// Listar retorna todos, ou só os ativos com ativos=true.
func (h *CentroCustoHandler) Listar(c *fiber.Ctx) error {
	centros, err := h.uc.Listar(c.Query("ativos") == "true")
	if err != nil {
		return mapearErro(c, err)
	}
	out := make([]dto.CentroCustoResponse, 0, len(centros))
	for _, cc := range centros {
		out = append(out, dto.NovoCentroCustoResponse(cc))
	}
	return c.JSON(out)
}

// Atualizar altera um centro de custo.
func (h *CentroCustoHandler) Atualizar(c *fiber.Ctx) error {
	var in dto.AtualizarCentroCustoRequest
	if err := c.BodyParser(&in); err != nil {
		return erro(c, fiber.StatusBadRequest, "corpo inválido")
	}
	cc, err := h.uc.Atualizar(c.Params("id"), in)
	if err != nil {
		return mapearErro(c, err)
	}
	return c.JSON(dto.NovoCentroCustoResponse(cc))
}

// Desativar faz a exclusão lógica.
func (h *CentroCustoHandler) Desativar(c *fiber.Ctx) error {
	if err := h.uc.Desativar(c.Params("id")); err != nil {
		return mapearErro(c, err)
	}
	return c.JSON(dto.MensagemResponse{Mensagem: "Centro de custo desativado com sucesso"})
}

// FornecedorHandler trata as rotas de fornecedores.
type FornecedorHandler struct {
	uc *mestre.FornecedorUseCase
}

// NewFornecedorHandler constrói o handler.
func NewFornecedorHandler(uc *mestre.FornecedorUseCase) *FornecedorHandler {
	return &FornecedorHandler{uc: uc}
}

// Criar cadastra um fornecedor.
func (h *FornecedorHandler) Criar(c *fiber.Ctx) error {
	var in dto.CriarFornecedorRequest
	if err := c.BodyParser(&in); err != nil {
		return erro(c, fiber.StatusBadRequest, "corpo inválido")
	}
	f, err := h.uc.Criar(in)
	if err != nil {
		return mapearErro(c, err)
	}
	return c.Status(fiber.StatusCreated).JSON(dto.NovoFornecedorResponse(f))
}

// Obter busca um fornecedor por ID.
func (h *FornecedorHandler) Obter(c *fiber.Ctx) error {
	f, err := h.uc.Obter(c.Params("id"))
	if err != nil {
		return mapearErro(c, err)
	}
	return c.JSON(dto.NovoFornecedorResponse(f))
}

// Listar retorna todos, ou só os ativos com ativos=true.
func (h *FornecedorHandler) Listar(c *fiber.Ctx) error {
	fornecedores, err := h.uc.Listar(c.Query("ativos") == "true")
	if err != nil {
		return mapearErro(c, err)
	}
	out := make([]dto.FornecedorResponse, 0, len(fornecedores))
	for _, f := range fornecedores {
		out = append(out, dto.NovoFornecedorResponse(f))
	}
	return c.JSON(out)
}

// Atualizar altera um fornecedor.
func (h *FornecedorHandler) Atualizar(c *fiber.Ctx) error {
	var in dto.AtualizarFornecedorRequest
	if err := c.BodyParser(&in); err != nil {
		return erro(c, fiber.StatusBadRequest, "corpo inválido")
	}
	f, err := h.uc.Atualizar(c.Params("id"), in)
	if err != nil {
		return mapearErro(c, err)
	}
	return c.JSON(dto.NovoFornecedorResponse(f))
}

// Desativar faz a exclusão lógica.
func (h *FornecedorHandler) Desativar(c *fiber.Ctx) error {
	if err := h.uc.Desativar(c.Params("id")); err != nil {
		return mapearErro(c, err)
	}
	return c.JSON(dto.MensagemResponse{Mensagem: "Fornecedor desativado com sucesso"})
}
