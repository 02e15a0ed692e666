package entity

import "time"

// Perfis válidos para Usuario.
const (
	PerfilSuperadmin = "superadmin"
	PerfilAdmin      = "admin"
	PerfilTecnico    = "tecnico"
	PerfilUsuario    = "usuario"
)

// Usuario representa um usuário do sistema. A desativação é lógica
// (Ativo=false); nunca há exclusão física porque chamados, compras e
// movimentações referenciam usuários.
type Usuario struct {
	ID              string
	Nome            string
	Email           string
	SenhaHash       string // bcrypt, nunca em claro após persistir
	Perfil          string // superadmin, admin, tecnico, usuario
	Ativo           bool
	DataCriacao     time.Time
	DataAtualizacao time.Time
}

// EhTecnico indica se o usuário pode receber chamados atribuídos.
func (u *Usuario) EhTecnico() bool {
	switch u.Perfil {
	case PerfilTecnico, PerfilAdmin, PerfilSuperadmin:
		return true
	}
	return false
}
