package http

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/gofiber/fiber/v2"

	"github.com/gestaoti/gestao-ti-api/internal/application/configuracoes"
	"github.com/gestaoti/gestao-ti-api/internal/application/dto"
)

// ConfiguracoesHandler trata SMTP e logo da aplicação.
type ConfiguracoesHandler struct {
	uc  *configuracoes.UseCase
	dir string
}

// NewConfiguracoesHandler constrói o handler gravando o logo em dir.
func NewConfiguracoesHandler(uc *configuracoes.UseCase, dir string) *ConfiguracoesHandler {
	return &ConfiguracoesHandler{uc: uc, dir: dir}
}

// ObterSMTP retorna a configuração com a senha mascarada.
func (h *ConfiguracoesHandler) ObterSMTP(c *fiber.Ctx) error {
	cfg, err := h.uc.ObterSMTP()
	if err != nil {
		return mapearErro(c, err)
	}
	return c.JSON(cfg)
}

// SalvarSMTP grava a configuração, preservando a senha quando vem mascarada.
func (h *ConfiguracoesHandler) SalvarSMTP(c *fiber.Ctx) error {
	var in configuracoes.SMTPConfig
	if err := c.BodyParser(&in); err != nil {
		return erro(c, fiber.StatusBadRequest, "corpo inválido")
	}
	cfg, err := h.uc.SalvarSMTP(in)
	if err != nil {
		return mapearErro(c, err)
	}
	return c.JSON(cfg)
}

// StatusSMTP informa se há configuração e se a conexão responde.
func (h *ConfiguracoesHandler) StatusSMTP(c *fiber.Ctx) error {
	st, err := h.uc.Status(c.UserContext())
	if err != nil {
		return mapearErro(c, err)
	}
	return c.JSON(st)
}

// EnviarTesteSMTP dispara um email de teste para o destinatário informado.
func (h *ConfiguracoesHandler) EnviarTesteSMTP(c *fiber.Ctx) error {
	var in struct {
		Para string `json:"para"`
	}
	if err := c.BodyParser(&in); err != nil {
		return erro(c, fiber.StatusBadRequest, "corpo inválido")
	}
	if err := h.uc.EnviarTeste(c.UserContext(), in.Para); err != nil {
		return mapearErro(c, err)
	}
	return c.JSON(dto.MensagemResponse{Mensagem: "Email de teste enviado com sucesso"})
}

// EnviarLogo recebe o logo num multipart "arquivo" e grava como logo.<ext>.
func (h *ConfiguracoesHandler) EnviarLogo(c *fiber.Ctx) error {
	fh, err := c.FormFile("arquivo")
	if err != nil {
		return erro(c, fiber.StatusBadRequest, "arquivo não enviado")
	}
	if fh.Size > configuracoes.TamanhoMaximoLogo {
		return erro(c, fiber.StatusBadRequest, "arquivo excede o tamanho máximo de 2MB")
	}
	ext := strings.ToLower(filepath.Ext(fh.Filename))
	if !configuracoes.ExtensaoLogoValida(ext) {
		return erro(c, fiber.StatusBadRequest, fmt.Sprintf("extensão %s não permitida", ext))
	}
	if err := os.MkdirAll(h.dir, 0o755); err != nil {
		return mapearErro(c, err)
	}
	nome := "logo" + ext
	if err := c.SaveFile(fh, filepath.Join(h.dir, nome)); err != nil {
		return mapearErro(c, err)
	}
	if err := h.uc.RegistrarLogo(nome); err != nil {
		return mapearErro(c, err)
	}
	return c.JSON(dto.MensagemResponse{Mensagem: "Logo atualizado com sucesso"})
}

// ObterLogo serve o arquivo do logo registrado.
func (h *ConfiguracoesHandler) ObterLogo(c *fiber.Ctx) error {
	cfg, err := h.uc.ObterLogo()
	if err != nil {
		return mapearErro(c, err)
	}
	if cfg.Arquivo == "" {
		return erro(c, fiber.StatusNotFound, "logo não configurado")
	}
	return c.SendFile(filepath.Join(h.dir, filepath.Base(cfg.Arquivo)))
}
