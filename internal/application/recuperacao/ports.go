package recuperacao

import (
	"context"
	"time"
)

// TokenRecuperacao é o registro guardado por token emitido. ExpiraEm viaja
// no valor para distinguir token expirado de token inexistente, mesmo com
// a retenção do armazenamento sendo maior que a validade.
type TokenRecuperacao struct {
	UsuarioID string    `json:"usuario_id"`
	ExpiraEm  time.Time `json:"expira_em"`
}

// TokenStore armazena tokens de recuperação com expiração automática.
// Implementações retornam (nil, nil) quando o token não existe.
type TokenStore interface {
	Guardar(ctx context.Context, token string, reg TokenRecuperacao, retencao time.Duration) error
	Consultar(ctx context.Context, token string) (*TokenRecuperacao, error)
	// Consumir lê e remove atomicamente, garantindo uso único.
	Consumir(ctx context.Context, token string) (*TokenRecuperacao, error)
}

// EmailSender envia o email de recuperação com o link contendo o token.
type EmailSender interface {
	EnviarRecuperacaoSenha(ctx context.Context, para, nome, token string) error
}
