package configuracoes

import (
	"context"
	"strings"

	"github.com/gestaoti/gestao-ti-api/internal/domain"
)

// SenhaMascarada é o valor devolvido no lugar da senha real. Quando o
// cliente reenvia o formulário com este valor, a senha gravada é mantida.
const SenhaMascarada = "••••••••"

// Extensões aceitas para o logo e limite de tamanho.
var extensoesLogo = map[string]bool{
	".png": true, ".jpg": true, ".jpeg": true, ".svg": true, ".gif": true,
}

// TamanhoMaximoLogo em bytes (2MB).
const TamanhoMaximoLogo = 2 << 20

// UseCase gerencia as configurações de SMTP e logo da aplicação.
type UseCase struct {
	store  Store
	tester SMTPTester
}

// NewUseCase constrói o caso de uso.
func NewUseCase(store Store, tester SMTPTester) *UseCase {
	return &UseCase{store: store, tester: tester}
}

// ObterSMTP devolve a configuração com a senha mascarada.
func (uc *UseCase) ObterSMTP() (SMTPConfig, error) {
	cfg, err := uc.store.CarregarSMTP()
	if err != nil {
		return SMTPConfig{}, err
	}
	if cfg.Senha != "" {
		cfg.Senha = SenhaMascarada
	}
	return cfg, nil
}

// SalvarSMTP grava a configuração. Receber a senha mascarada de volta
// preserva a senha já gravada.
func (uc *UseCase) SalvarSMTP(in SMTPConfig) (SMTPConfig, error) {
	if in.Servidor == "" || in.RemetenteEmail == "" {
		return SMTPConfig{}, domain.ErrInvalidInput
	}
	if in.Senha == SenhaMascarada {
		atual, err := uc.store.CarregarSMTP()
		if err != nil {
			return SMTPConfig{}, err
		}
		in.Senha = atual.Senha
	}
	if err := uc.store.SalvarSMTP(in); err != nil {
		return SMTPConfig{}, err
	}
	in.Senha = SenhaMascarada
	return in, nil
}

// StatusSMTP resultado de GET /configuracoes/smtp/status.
type StatusSMTP struct {
	Configurado bool `json:"configurado"`
	ConexaoOK   bool `json:"conexao_ok"`
}

// Status informa se há configuração e se a conexão autentica.
func (uc *UseCase) Status(ctx context.Context) (StatusSMTP, error) {
	cfg, err := uc.store.CarregarSMTP()
	if err != nil {
		return StatusSMTP{}, err
	}
	st := StatusSMTP{Configurado: cfg.Configurada()}
	if st.Configurado {
		st.ConexaoOK = uc.tester.TestarConexao(ctx, cfg) == nil
	}
	return st, nil
}

// EnviarTeste dispara um email de teste com a configuração gravada.
func (uc *UseCase) EnviarTeste(ctx context.Context, para string) error {
	if para == "" {
		return domain.ErrInvalidInput
	}
	cfg, err := uc.store.CarregarSMTP()
	if err != nil {
		return err
	}
	if !cfg.Configurada() {
		return domain.ErrInvalidInput
	}
	return uc.tester.EnviarTeste(ctx, cfg, para)
}

// ExtensaoLogoValida confere a extensão do arquivo de logo (com o ponto).
func ExtensaoLogoValida(ext string) bool {
	return extensoesLogo[strings.ToLower(ext)]
}

// RegistrarLogo grava o nome do arquivo de logo salvo pelo handler.
func (uc *UseCase) RegistrarLogo(arquivo string) error {
	if arquivo == "" {
		return domain.ErrInvalidInput
	}
	return uc.store.SalvarLogo(LogoConfig{Arquivo: arquivo})
}

// ObterLogo devolve o nome do arquivo de logo atual ("" quando não há).
func (uc *UseCase) ObterLogo() (LogoConfig, error) {
	return uc.store.CarregarLogo()
}
