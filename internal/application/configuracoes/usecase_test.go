package configuracoes_test

import (
	"context"
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/gestaoti/gestao-ti-api/internal/application/configuracoes"
	"github.com/gestaoti/gestao-ti-api/internal/domain"
)

type storeFake struct {
	smtp configuracoes.SMTPConfig
	logo configuracoes.LogoConfig
}

func (s *storeFake) CarregarSMTP() (configuracoes.SMTPConfig, error) { return s.smtp, nil }
func (s *storeFake) SalvarSMTP(cfg configuracoes.SMTPConfig) error   { s.smtp = cfg; return nil }
func (s *storeFake) CarregarLogo() (configuracoes.LogoConfig, error) { return s.logo, nil }
func (s *storeFake) SalvarLogo(cfg configuracoes.LogoConfig) error   { s.logo = cfg; return nil }

type testerFake struct {
	conexaoErr error
	enviados   []string
}

func (t *testerFake) TestarConexao(context.Context, configuracoes.SMTPConfig) error {
	return t.conexaoErr
}

func (t *testerFake) EnviarTeste(_ context.Context, _ configuracoes.SMTPConfig, para string) error {
	t.enviados = append(t.enviados, para)
	return nil
}

func TestObterSMTP_MascaraSenha(t *testing.T) {
	store := &storeFake{smtp: configuracoes.SMTPConfig{
		Servidor: "smtp.empresa.com", Porta: 587, Senha: "segredo", RemetenteEmail: "ti@empresa.com",
	}}
	uc := configuracoes.NewUseCase(store, &testerFake{})

	cfg, err := uc.ObterSMTP()
	require.NoError(t, err)
	assert.Equal(t, configuracoes.SenhaMascarada, cfg.Senha, "a senha real nunca sai na leitura")
	assert.Equal(t, "smtp.empresa.com", cfg.Servidor)
}

func TestSalvarSMTP_SenhaMascaradaPreservaAGravada(t *testing.T) {
	store := &storeFake{smtp: configuracoes.SMTPConfig{
		Servidor: "smtp.empresa.com", Senha: "segredo", RemetenteEmail: "ti@empresa.com",
	}}
	uc := configuracoes.NewUseCase(store, &testerFake{})

	_, err := uc.SalvarSMTP(configuracoes.SMTPConfig{
		Servidor: "smtp.empresa.com", Porta: 465, Senha: configuracoes.SenhaMascarada,
		RemetenteEmail: "ti@empresa.com",
	})
	require.NoError(t, err)

	assert.Equal(t, "segredo", store.smtp.Senha, "reenviar o valor mascarado mantém a senha anterior")
	assert.Equal(t, 465, store.smtp.Porta, "os demais campos são atualizados")
}

func TestSalvarSMTP_SenhaNovaSubstitui(t *testing.T) {
	store := &storeFake{smtp: configuracoes.SMTPConfig{Senha: "segredo"}}
	uc := configuracoes.NewUseCase(store, &testerFake{})

	resp, err := uc.SalvarSMTP(configuracoes.SMTPConfig{
		Servidor: "smtp.empresa.com", Senha: "nova-senha", RemetenteEmail: "ti@empresa.com",
	})
	require.NoError(t, err)
	assert.Equal(t, "nova-senha", store.smtp.Senha)
	assert.Equal(t, configuracoes.SenhaMascarada, resp.Senha, "a resposta volta mascarada")
}

func TestStatus(t *testing.T) {
	t.Run("sem configuração", func(t *testing.T) {
		uc := configuracoes.NewUseCase(&storeFake{}, &testerFake{})
		st, err := uc.Status(context.Background())
		require.NoError(t, err)
		assert.False(t, st.Configurado)
		assert.False(t, st.ConexaoOK)
	})

	t.Run("configurada com conexão falhando", func(t *testing.T) {
		store := &storeFake{smtp: configuracoes.SMTPConfig{
			Servidor: "smtp.empresa.com", RemetenteEmail: "ti@empresa.com",
		}}
		uc := configuracoes.NewUseCase(store, &testerFake{conexaoErr: errors.New("recusado")})
		st, err := uc.Status(context.Background())
		require.NoError(t, err)
		assert.True(t, st.Configurado)
		assert.False(t, st.ConexaoOK)
	})
}

func TestEnviarTeste_SemConfiguracao(t *testing.T) {
	uc := configuracoes.NewUseCase(&storeFake{}, &testerFake{})
	err := uc.EnviarTeste(context.Background(), "alguem@empresa.com")
	assert.ErrorIs(t, err, domain.ErrInvalidInput)
}

func TestExtensaoLogoValida(t *testing.T) {
	assert.True(t, configuracoes.ExtensaoLogoValida(".PNG"))
	assert.True(t, configuracoes.ExtensaoLogoValida(".svg"))
	assert.False(t, configuracoes.ExtensaoLogoValida(".pdf"))
}
