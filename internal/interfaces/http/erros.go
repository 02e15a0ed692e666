package http

import (
	"errors"

	"github.com/gofiber/fiber/v2"

	"github.com/gestaoti/gestao-ti-api/internal/application/dto"
	"github.com/gestaoti/gestao-ti-api/internal/domain"
)

// erro responde {"erro": msg} com o status dado.
func erro(c *fiber.Ctx, status int, msg string) error {
	return c.Status(status).JSON(dto.ErrorResponse{Erro: msg})
}

// mapearErro converte erros de domínio em respostas HTTP. Validação e
// conflitos de regra viram 400, credenciais 401, id desconhecido 404;
// o resto sobe como 500 com a mensagem crua.
func mapearErro(c *fiber.Ctx, err error) error {
	switch {
	case errors.Is(err, domain.ErrNotFound):
		return erro(c, fiber.StatusNotFound, err.Error())
	case errors.Is(err, domain.ErrCredenciaisInvalidas):
		return erro(c, fiber.StatusUnauthorized, err.Error())
	case errors.Is(err, domain.ErrInvalidInput),
		errors.Is(err, domain.ErrDuplicate),
		errors.Is(err, domain.ErrEmailJaCadastrado),
		errors.Is(err, domain.ErrSenhaAtualIncorreta),
		errors.Is(err, domain.ErrEstoqueInsuficiente),
		errors.Is(err, domain.ErrTransicaoInvalida),
		errors.Is(err, domain.ErrTokenInvalido),
		errors.Is(err, domain.ErrTokenExpirado):
		return erro(c, fiber.StatusBadRequest, err.Error())
	default:
		return erro(c, fiber.StatusInternalServerError, err.Error())
	}
}
