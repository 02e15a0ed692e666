package postgres

import (
	"context"
	"errors"
	"fmt"

	"github.com/jackc/pgx/v5"

	"github.com/gestaoti/gestao-ti-api/internal/domain"
	"github.com/gestaoti/gestao-ti-api/internal/domain/entity"
	"github.com/gestaoti/gestao-ti-api/internal/domain/repository"
)

var _ repository.UsuarioRepository = (*UsuarioRepo)(nil)

// UsuarioRepo implementação de UsuarioRepository sobre PostgreSQL.
type UsuarioRepo struct {
	q Querier
}

// NewUsuarioRepository constrói o adaptador. Passar pool ou tx (Querier).
func NewUsuarioRepository(q Querier) *UsuarioRepo {
	return &UsuarioRepo{q: q}
}

const usuarioCols = `id, nome, email, senha_hash, perfil, ativo, data_criacao, data_atualizacao`

// Create persiste um novo usuário.
func (r *UsuarioRepo) Create(u *entity.Usuario) error {
	query := `
		INSERT INTO usuarios (` + usuarioCols + `)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8)`
	_, err := r.q.Exec(context.Background(), query,
		u.ID, u.Nome, u.Email, u.SenhaHash, u.Perfil, u.Ativo, u.DataCriacao, u.DataAtualizacao,
	)
	if err != nil {
		if isUniqueViolation(err) {
			return domain.ErrEmailJaCadastrado
		}
		return fmt.Errorf("create usuario: %w", err)
	}
	return nil
}

// GetByID busca por ID. Retorna (nil, nil) se não existe.
func (r *UsuarioRepo) GetByID(id string) (*entity.Usuario, error) {
	return r.getBy("id = $1", id)
}

// GetByEmail busca por email. Retorna (nil, nil) se não existe.
func (r *UsuarioRepo) GetByEmail(email string) (*entity.Usuario, error) {
	return r.getBy("email = $1", email)
}

func (r *UsuarioRepo) getBy(cond string, arg any) (*entity.Usuario, error) {
	query := `SELECT ` + usuarioCols + ` FROM usuarios WHERE ` + cond
	var u entity.Usuario
	err := r.q.QueryRow(context.Background(), query, arg).Scan(
		&u.ID, &u.Nome, &u.Email, &u.SenhaHash, &u.Perfil, &u.Ativo, &u.DataCriacao, &u.DataAtualizacao,
	)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, nil
		}
		return nil, fmt.Errorf("get usuario: %w", err)
	}
	return &u, nil
}

// Update grava o estado completo do usuário.
func (r *UsuarioRepo) Update(u *entity.Usuario) error {
	query := `
		UPDATE usuarios
		SET nome = $2, email = $3, senha_hash = $4, perfil = $5, ativo = $6, data_atualizacao = $7
		WHERE id = $1`
	_, err := r.q.Exec(context.Background(), query,
		u.ID, u.Nome, u.Email, u.SenhaHash, u.Perfil, u.Ativo, u.DataAtualizacao,
	)
	if err != nil {
		if isUniqueViolation(err) {
			return domain.ErrEmailJaCadastrado
		}
		return fmt.Errorf("update usuario: %w", err)
	}
	return nil
}

// ListAtivos retorna os usuários ativos, ordenados por nome.
func (r *UsuarioRepo) ListAtivos() ([]*entity.Usuario, error) {
	query := `SELECT ` + usuarioCols + ` FROM usuarios WHERE ativo ORDER BY nome`
	return r.list(query)
}

// ListTecnicos retorna usuários ativos com perfil que recebe chamados.
func (r *UsuarioRepo) ListTecnicos() ([]*entity.Usuario, error) {
	query := `
		SELECT ` + usuarioCols + ` FROM usuarios
		WHERE ativo AND perfil IN ('tecnico', 'admin', 'superadmin')
		ORDER BY nome`
	return r.list(query)
}

func (r *UsuarioRepo) list(query string, args ...any) ([]*entity.Usuario, error) {
	rows, err := r.q.Query(context.Background(), query, args...)
	if err != nil {
		return nil, fmt.Errorf("list usuarios: %w", err)
	}
	defer rows.Close()

	var usuarios []*entity.Usuario
	for rows.Next() {
		var u entity.Usuario
		if err := rows.Scan(
			&u.ID, &u.Nome, &u.Email, &u.SenhaHash, &u.Perfil, &u.Ativo, &u.DataCriacao, &u.DataAtualizacao,
		); err != nil {
			return nil, fmt.Errorf("scan usuario: %w", err)
		}
		usuarios = append(usuarios, &u)
	}
	return usuarios, rows.Err()
}

// Desativar marca o usuário como inativo (exclusão lógica).
func (r *UsuarioRepo) Desativar(id string) error {
	query := `UPDATE usuarios SET ativo = false, data_atualizacao = now() WHERE id = $1`
	if _, err := r.q.Exec(context.Background(), query, id); err != nil {
		return fmt.Errorf("desativar usuario: %w", err)
	}
	return nil
}
