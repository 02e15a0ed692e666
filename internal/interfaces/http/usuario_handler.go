package http

import (
	"github.com/gofiber/fiber/v2"

	"github.com/gestaoti/gestao-ti-api/internal/application/dto"
	"github.com/gestaoti/gestao-ti-api/internal/application/usuario"
)

// UsuarioHandler trata as rotas de usuários e o login.
type UsuarioHandler struct {
	uc *usuario.UseCase
}

// NewUsuarioHandler constrói o handler.
func NewUsuarioHandler(uc *usuario.UseCase) *UsuarioHandler {
	return &UsuarioHandler{uc: uc}
}

// Login autentica por email e senha e emite um JWT.
func (h *UsuarioHandler) Login(c *fiber.Ctx) error {
	var in dto.LoginRequest
	if err := c.BodyParser(&in); err != nil {
		return erro(c, fiber.StatusBadRequest, "corpo inválido")
	}
	u, token, err := h.uc.Login(in)
	if err != nil {
		return mapearErro(c, err)
	}
	return c.JSON(dto.LoginResponse{
		Mensagem: "Login realizado com sucesso",
		Token:    token,
		Usuario:  dto.NovoUsuarioResponse(u),
	})
}

// Criar cadastra um usuário.
func (h *UsuarioHandler) Criar(c *fiber.Ctx) error {
	var in dto.CriarUsuarioRequest
	if err := c.BodyParser(&in); err != nil {
		return erro(c, fiber.StatusBadRequest, "corpo inválido")
	}
	u, err := h.uc.Criar(in)
	if err != nil {
		return mapearErro(c, err)
	}
	return c.Status(fiber.StatusCreated).JSON(dto.NovoUsuarioResponse(u))
}

// Obter busca um usuário por ID.
func (h *UsuarioHandler) Obter(c *fiber.Ctx) error {
	u, err := h.uc.Obter(c.Params("id"))
	if err != nil {
		return mapearErro(c, err)
	}
	return c.JSON(dto.NovoUsuarioResponse(u))
}

// Atualizar altera um usuário.
func (h *UsuarioHandler) Atualizar(c *fiber.Ctx) error {
	var in dto.AtualizarUsuarioRequest
	if err := c.BodyParser(&in); err != nil {
		return erro(c, fiber.StatusBadRequest, "corpo inválido")
	}
	u, err := h.uc.Atualizar(c.Params("id"), in)
	if err != nil {
		return mapearErro(c, err)
	}
	return c.JSON(dto.NovoUsuarioResponse(u))
}

// AtualizarPerfil é a autoedição do próprio usuário.
func (h *UsuarioHandler) AtualizarPerfil(c *fiber.Ctx) error {
	var in dto.AtualizarPerfilRequest
	if err := c.BodyParser(&in); err != nil {
		return erro(c, fiber.StatusBadRequest, "corpo inválido")
	}
	u, err := h.uc.AtualizarPerfil(in)
	if err != nil {
		return mapearErro(c, err)
	}
	return c.JSON(dto.NovoUsuarioResponse(u))
}

// Desativar marca o usuário como inativo.
func (h *UsuarioHandler) Desativar(c *fiber.Ctx) error {
	if err := h.uc.Desativar(c.Params("id")); err != nil {
		return mapearErro(c, err)
	}
	return c.JSON(dto.MensagemResponse{Mensagem: "Usuário desativado com sucesso"})
}

// Listar retorna os usuários ativos.
func (h *UsuarioHandler) Listar(c *fiber.Ctx) error {
	usuarios, err := h.uc.ListarAtivos()
	if err != nil {
		return mapearErro(c, err)
	}
	out := make([]dto.UsuarioResponse, 0, len(usuarios))
	for _, u := range usuarios {
		out = append(out, dto.NovoUsuarioResponse(u))
	}
	return c.JSON(out)
}

// ListarTecnicos retorna os usuários que podem receber chamados.
func (h *UsuarioHandler) ListarTecnicos(c *fiber.Ctx) error {
	tecnicos, err := h.uc.ListarTecnicos()
	if err != nil {
		return mapearErro(c, err)
	}
	out := make([]dto.UsuarioResponse, 0, len(tecnicos))
	for _, u := range tecnicos {
		out = append(out, dto.NovoUsuarioResponse(u))
	}
	return c.JSON(out)
}
