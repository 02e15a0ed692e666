package http

import (
	"github.com/gofiber/fiber/v2"

	"github.com/gestaoti/gestao-ti-api/internal/application/dto"
	"github.com/gestaoti/gestao-ti-api/internal/application/recuperacao"
)

// RecuperacaoHandler trata o fluxo de recuperação de senha.
type RecuperacaoHandler struct {
	uc *recuperacao.UseCase
}

// NewRecuperacaoHandler constrói o handler.
func NewRecuperacaoHandler(uc *recuperacao.UseCase) *RecuperacaoHandler {
	return &RecuperacaoHandler{uc: uc}
}

// Solicitar emite o token e envia o email. A resposta é a mesma com ou sem
// conta cadastrada para não revelar emails existentes.
func (h *RecuperacaoHandler) Solicitar(c *fiber.Ctx) error {
	var in struct {
		Email string `json:"email"`
	}
	if err := c.BodyParser(&in); err != nil {
		return erro(c, fiber.StatusBadRequest, "corpo inválido")
	}
	if err := h.uc.Solicitar(c.UserContext(), in.Email); err != nil {
		return mapearErro(c, err)
	}
	return c.JSON(dto.MensagemResponse{
		Mensagem: "Se o email existir, você receberá um link de recuperação",
	})
}

// VerificarToken confere validade sem consumir o token, lido da query string.
func (h *RecuperacaoHandler) VerificarToken(c *fiber.Ctx) error {
	token := c.Query("token")
	if token == "" {
		return erro(c, fiber.StatusBadRequest, "Token não fornecido")
	}
	if err := h.uc.VerificarToken(c.UserContext(), token); err != nil {
		return mapearErro(c, err)
	}
	return c.JSON(dto.MensagemResponse{Mensagem: "Token válido"})
}

// Redefinir consome o token e troca a senha.
func (h *RecuperacaoHandler) Redefinir(c *fiber.Ctx) error {
	var in struct {
		Token     string `json:"token"`
		NovaSenha string `json:"nova_senha"`
	}
	if err := c.BodyParser(&in); err != nil {
		return erro(c, fiber.StatusBadRequest, "corpo inválido")
	}
	if err := h.uc.Redefinir(c.UserContext(), in.Token, in.NovaSenha); err != nil {
		return mapearErro(c, err)
	}
	return c.JSON(dto.MensagemResponse{Mensagem: "Senha redefinida com sucesso"})
}
