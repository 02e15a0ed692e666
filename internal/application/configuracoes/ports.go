package configuracoes

import "context"

// SMTPConfig é o documento de configuração de email persistido em disco.
type SMTPConfig struct {
	Servidor       string `json:"servidor"`
	Porta          int    `json:"porta"`
	Usuario        string `json:"usuario"`
	Senha          string `json:"senha"`
	SSL            bool   `json:"ssl"`
	RemetenteNome  string `json:"remetente_nome"`
	RemetenteEmail string `json:"remetente_email"`
}

// Configurada indica se há o mínimo para tentar um envio.
func (c SMTPConfig) Configurada() bool {
	return c.Servidor != "" && c.RemetenteEmail != ""
}

// LogoConfig guarda o nome do arquivo de logo salvo no diretório de config.
type LogoConfig struct {
	Arquivo string `json:"arquivo"`
}

// Store persiste os documentos de configuração. Implementações retornam o
// zero value quando o documento ainda não existe.
type Store interface {
	CarregarSMTP() (SMTPConfig, error)
	SalvarSMTP(cfg SMTPConfig) error
	CarregarLogo() (LogoConfig, error)
	SalvarLogo(cfg LogoConfig) error
}

// SMTPTester valida uma configuração contra o servidor real.
type SMTPTester interface {
	// TestarConexao abre e fecha uma conexão autenticada.
	TestarConexao(ctx context.Context, cfg SMTPConfig) error
	// EnviarTeste envia um email de teste para o destinatário.
	EnviarTeste(ctx context.Context, cfg SMTPConfig, para string) error
}
