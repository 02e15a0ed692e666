// Package email envia emails da aplicação via SMTP (go-mail), usando a
// configuração gravada em /configuracoes/smtp.
package email

import (
	"context"
	"fmt"

	"github.com/wneessen/go-mail"

	"github.com/gestaoti/gestao-ti-api/internal/application/configuracoes"
	"github.com/gestaoti/gestao-ti-api/internal/application/recuperacao"
)

var _ recuperacao.EmailSender = (*Service)(nil)
var _ configuracoes.SMTPTester = (*Service)(nil)

// Service envia emails com a configuração SMTP vigente no momento do envio.
// A configuração é relida do store a cada envio, então salvar uma nova
// configuração vale imediatamente, sem reinício.
type Service struct {
	store configuracoes.Store
	// baseURL do frontend para compor o link de redefinição.
	baseURL string
}

// NewService constrói o serviço.
func NewService(store configuracoes.Store, baseURL string) *Service {
	return &Service{store: store, baseURL: baseURL}
}

func cliente(cfg configuracoes.SMTPConfig) (*mail.Client, error) {
	opts := []mail.Option{
		mail.WithPort(cfg.Porta),
		mail.WithTLSPolicy(mail.TLSOpportunistic),
	}
	if cfg.SSL {
		opts = append(opts, mail.WithSSLPort(false))
	}
	if cfg.Usuario != "" {
		opts = append(opts,
			mail.WithSMTPAuth(mail.SMTPAuthPlain),
			mail.WithUsername(cfg.Usuario),
			mail.WithPassword(cfg.Senha),
		)
	}
	c, err := mail.NewClient(cfg.Servidor, opts...)
	if err != nil {
		return nil, fmt.Errorf("criar cliente smtp: %w", err)
	}
	return c, nil
}

func (s *Service) enviar(ctx context.Context, cfg configuracoes.SMTPConfig, para, assunto, corpo string) error {
	m := mail.NewMsg()
	if cfg.RemetenteNome != "" {
		if err := m.FromFormat(cfg.RemetenteNome, cfg.RemetenteEmail); err != nil {
			return fmt.Errorf("remetente: %w", err)
		}
	} else if err := m.From(cfg.RemetenteEmail); err != nil {
		return fmt.Errorf("remetente: %w", err)
	}
	if err := m.To(para); err != nil {
		return fmt.Errorf("destinatário: %w", err)
	}
	m.Subject(assunto)
	m.SetBodyString(mail.TypeTextPlain, corpo)

	c, err := cliente(cfg)
	if err != nil {
		return err
	}
	if err := c.DialAndSendWithContext(ctx, m); err != nil {
		return fmt.Errorf("enviar email: %w", err)
	}
	return nil
}

// EnviarRecuperacaoSenha envia o link de redefinição de senha.
func (s *Service) EnviarRecuperacaoSenha(ctx context.Context, para, nome, token string) error {
	cfg, err := s.store.CarregarSMTP()
	if err != nil {
		return err
	}
	if !cfg.Configurada() {
		return fmt.Errorf("smtp não configurado")
	}

	link := fmt.Sprintf("%s/redefinir-senha?token=%s", s.baseURL, token)
	corpo := fmt.Sprintf(
		"Olá %s,\n\n"+
			"Recebemos um pedido de redefinição de senha para a sua conta.\n"+
			"Acesse o link abaixo para escolher uma nova senha (válido por 1 hora):\n\n%s\n\n"+
			"Se você não fez este pedido, ignore este email.\n",
		nome, link,
	)
	return s.enviar(ctx, cfg, para, "Recuperação de senha", corpo)
}

// TestarConexao abre e fecha uma conexão autenticada com a configuração dada.
func (s *Service) TestarConexao(ctx context.Context, cfg configuracoes.SMTPConfig) error {
	c, err := cliente(cfg)
	if err != nil {
		return err
	}
	if err := c.DialWithContext(ctx); err != nil {
		return fmt.Errorf("conectar smtp: %w", err)
	}
	return c.Close()
}

// EnviarTeste envia um email de teste com a configuração dada.
func (s *Service) EnviarTeste(ctx context.Context, cfg configuracoes.SMTPConfig, para string) error {
	return s.enviar(ctx, cfg, para,
		"Teste de configuração SMTP",
		"Este é um email de teste do sistema de gestão de TI. Se você o recebeu, a configuração SMTP está funcionando.\n",
	)
}
