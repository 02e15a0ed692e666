package domain

import "errors"

// Erros de domínio (sem dependências externas).
var (
	ErrNotFound             = errors.New("recurso não encontrado")
	ErrInvalidInput         = errors.New("entrada inválida")
	ErrDuplicate            = errors.New("recurso duplicado")
	ErrEmailJaCadastrado    = errors.New("email já cadastrado")
	ErrCredenciaisInvalidas = errors.New("Email ou senha inválidos")
	ErrSenhaAtualIncorreta  = errors.New("senha atual incorreta")
	ErrEstoqueInsuficiente  = errors.New("quantidade insuficiente em estoque")
	ErrTransicaoInvalida    = errors.New("transição de status inválida")
	ErrTokenInvalido        = errors.New("token inválido")
	ErrTokenExpirado        = errors.New("token expirado")
)
