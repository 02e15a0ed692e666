package http_test

import (
	"context"
	"net/http"
	"os"
	"path/filepath"
	"testing"

	"github.com/gofiber/fiber/v2"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/gestaoti/gestao-ti-api/internal/application/configuracoes"
	apphttp "github.com/gestaoti/gestao-ti-api/internal/interfaces/http"
)

// configStoreFake implementa configuracoes.Store em memória.
type configStoreFake struct {
	smtp configuracoes.SMTPConfig
	logo configuracoes.LogoConfig
}

func (s *configStoreFake) CarregarSMTP() (configuracoes.SMTPConfig, error) { return s.smtp, nil }
func (s *configStoreFake) SalvarSMTP(cfg configuracoes.SMTPConfig) error {
	s.smtp = cfg
	return nil
}
func (s *configStoreFake) CarregarLogo() (configuracoes.LogoConfig, error) { return s.logo, nil }
func (s *configStoreFake) SalvarLogo(cfg configuracoes.LogoConfig) error {
	s.logo = cfg
	return nil
}

type smtpTesterFake struct{}

func (smtpTesterFake) TestarConexao(context.Context, configuracoes.SMTPConfig) error { return nil }
func (smtpTesterFake) EnviarTeste(context.Context, configuracoes.SMTPConfig, string) error {
	return nil
}

func buildConfigApp(t *testing.T, store *configStoreFake) (*fiber.App, string) {
	t.Helper()
	dir := t.TempDir()
	uc := configuracoes.NewUseCase(store, smtpTesterFake{})
	h := apphttp.NewConfiguracoesHandler(uc, dir)

	app := fiber.New()
	app.Post("/configuracoes/logo", h.EnviarLogo)
	app.Get("/configuracoes/logo", h.ObterLogo)
	return app, dir
}

func TestEnviarLogo_GravaERegistra(t *testing.T) {
	store := &configStoreFake{}
	app, dir := buildConfigApp(t, store)

	resp, err := app.Test(requisicaoMultipart(t, "/configuracoes/logo", "arquivo", "marca.PNG", []byte("png-bytes")), -1)
	require.NoError(t, err)
	require.Equal(t, http.StatusOK, resp.StatusCode)

	// Arquivo gravado como logo.<ext> e registrado no documento de config.
	assert.Equal(t, "logo.png", store.logo.Arquivo)
	_, err = os.Stat(filepath.Join(dir, "logo.png"))
	assert.NoError(t, err)
}

func TestEnviarLogo_ExtensaoNaoPermitida(t *testing.T) {
	store := &configStoreFake{}
	app, _ := buildConfigApp(t, store)

	resp, err := app.Test(requisicaoMultipart(t, "/configuracoes/logo", "arquivo", "marca.pdf", []byte("%PDF")), -1)
	require.NoError(t, err)
	assert.Equal(t, http.StatusBadRequest, resp.StatusCode)
	assert.Empty(t, store.logo.Arquivo)
}

func TestEnviarLogo_SemArquivo(t *testing.T) {
	store := &configStoreFake{}
	app, _ := buildConfigApp(t, store)

	req, err := http.NewRequest(http.MethodPost, "/configuracoes/logo", nil)
	require.NoError(t, err)
	resp, err := app.Test(req, -1)
	require.NoError(t, err)
	assert.Equal(t, http.StatusBadRequest, resp.StatusCode)
}

func TestObterLogo_NaoConfigurado(t *testing.T) {
	app, _ := buildConfigApp(t, &configStoreFake{})

	req, err := http.NewRequest(http.MethodGet, "/configuracoes/logo", nil)
	require.NoError(t, err)
	resp, err := app.Test(req, -1)
	require.NoError(t, err)
	assert.Equal(t, http.StatusNotFound, resp.StatusCode)
}
