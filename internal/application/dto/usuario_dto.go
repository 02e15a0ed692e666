package dto

import (
	"time"

	"github.com/gestaoti/gestao-ti-api/internal/domain/entity"
)

// CriarUsuarioRequest payload de POST /usuarios.
type CriarUsuarioRequest struct {
	Nome   string `json:"nome"`
	Email  string `json:"email"`
	Senha  string `json:"senha"`
	Perfil string `json:"perfil"`
}

// AtualizarUsuarioRequest payload de PUT /usuarios/:id (campos opcionais).
type AtualizarUsuarioRequest struct {
	Nome   *string `json:"nome"`
	Email  *string `json:"email"`
	Perfil *string `json:"perfil"`
	Ativo  *bool   `json:"ativo"`
	Senha  *string `json:"senha"`
}

// AtualizarPerfilRequest payload de PUT /usuarios/perfil.
type AtualizarPerfilRequest struct {
	Email      string `json:"email"`
	Nome       string `json:"nome"`
	NovoEmail  string `json:"novo_email"`
	SenhaAtual string `json:"senha_atual"`
	NovaSenha  string `json:"nova_senha"`
}

// LoginRequest payload de POST /login.
type LoginRequest struct {
	Email string `json:"email"`
	Senha string `json:"senha"`
}

// UsuarioResponse representação pública de um usuário (sem hash de senha).
type UsuarioResponse struct {
	ID              string `json:"id"`
	Nome            string `json:"nome"`
	Email           string `json:"email"`
	Perfil          string `json:"perfil"`
	Ativo           bool   `json:"ativo"`
	DataCriacao     string `json:"data_criacao"`
	DataAtualizacao string `json:"data_atualizacao"`
}

// LoginResponse resposta de POST /login.
type LoginResponse struct {
	Mensagem string          `json:"mensagem"`
	Token    string          `json:"token"`
	Usuario  UsuarioResponse `json:"usuario"`
}

// NovoUsuarioResponse converte a entidade para o DTO público.
func NovoUsuarioResponse(u *entity.Usuario) UsuarioResponse {
	return UsuarioResponse{
		ID:              u.ID,
		Nome:            u.Nome,
		Email:           u.Email,
		Perfil:          u.Perfil,
		Ativo:           u.Ativo,
		DataCriacao:     u.DataCriacao.Format(time.RFC3339),
		DataAtualizacao: u.DataAtualizacao.Format(time.RFC3339),
	}
}
