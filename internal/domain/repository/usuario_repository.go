package repository

import "github.com/gestaoti/gestao-ti-api/internal/domain/entity"

// UsuarioRepository porta de persistência de usuários.
// Implementações retornam (nil, nil) quando não há linha.
type UsuarioRepository interface {
	Create(u *entity.Usuario) error
	GetByID(id string) (*entity.Usuario, error)
	GetByEmail(email string) (*entity.Usuario, error)
	Update(u *entity.Usuario) error
	ListAtivos() ([]*entity.Usuario, error)
	ListTecnicos() ([]*entity.Usuario, error)
	Desativar(id string) error
}
