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

var _ repository.FornecedorRepository = (*FornecedorRepo)(nil)

// FornecedorRepo implementação de FornecedorRepository sobre PostgreSQL.
type FornecedorRepo struct {
	q Querier
}

// NewFornecedorRepository constrói o adaptador. Passar pool ou tx (Querier).
func NewFornecedorRepository(q Querier) *FornecedorRepo {
	return &FornecedorRepo{q: q}
}

const fornecedorCols = `id, nome, cnpj, email, telefone, endereco, contato_responsavel, ativo, data_criacao`

// Create persiste um fornecedor. CNPJ repetido chega como ErrDuplicate.
func (r *FornecedorRepo) Create(f *entity.Fornecedor) error {
	query := `
		INSERT INTO fornecedores (` + fornecedorCols + `)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9)`
	_, err := r.q.Exec(context.Background(), query,
		f.ID, f.Nome, f.CNPJ, f.Email, f.Telefone, f.Endereco, f.ContatoResponsavel, f.Ativo, f.DataCriacao,
	)
	if err != nil {
		if isUniqueViolation(err) {
			return domain.ErrDuplicate
		}
		return fmt.Errorf("create fornecedor: %w", err)
	}
	return nil
}

// GetByID busca por ID. Retorna (nil, nil) se não existe.
func (r *FornecedorRepo) GetByID(id string) (*entity.Fornecedor, error) {
	query := `SELECT ` + fornecedorCols + ` FROM fornecedores WHERE id = $1`
	var f entity.Fornecedor
	err := r.q.QueryRow(context.Background(), query, id).Scan(
		&f.ID, &f.Nome, &f.CNPJ, &f.Email, &f.Telefone, &f.Endereco, &f.ContatoResponsavel, &f.Ativo, &f.DataCriacao,
	)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, nil
		}
		return nil, fmt.Errorf("get fornecedor: %w", err)
	}
	return &f, nil
}

// Update grava o estado completo do fornecedor.
func (r *FornecedorRepo) Update(f *entity.Fornecedor) error {
	query := `
		UPDATE fornecedores
		SET nome = $2, cnpj = $3, email = $4, telefone = $5, endereco = $6,
		    contato_responsavel = $7, ativo = $8
		WHERE id = $1`
	_, err := r.q.Exec(context.Background(), query,
		f.ID, f.Nome, f.CNPJ, f.Email, f.Telefone, f.Endereco, f.ContatoResponsavel, f.Ativo,
	)
	if err != nil {
		if isUniqueViolation(err) {
			return domain.ErrDuplicate
		}
		return fmt.Errorf("update fornecedor: %w", err)
	}
	return nil
}

// List retorna fornecedores ordenados por nome.
func (r *FornecedorRepo) List(somenteAtivos bool) ([]*entity.Fornecedor, error) {
	query := `SELECT ` + fornecedorCols + ` FROM fornecedores`
	if somenteAtivos {
		query += ` WHERE ativo`
	}
	query += ` ORDER BY nome`

	rows, err := r.q.Query(context.Background(), query)
	if err != nil {
		return nil, fmt.Errorf("list fornecedores: %w", err)
	}
	defer rows.Close()

	var fornecedores []*entity.Fornecedor
	for rows.Next() {
		var f entity.Fornecedor
		if err := rows.Scan(
			&f.ID, &f.Nome, &f.CNPJ, &f.Email, &f.Telefone, &f.Endereco, &f.ContatoResponsavel, &f.Ativo, &f.DataCriacao,
		); err != nil {
			return nil, fmt.Errorf("scan fornecedor: %w", err)
		}
		fornecedores = append(fornecedores, &f)
	}
	return fornecedores, rows.Err()
}

// Desativar marca o fornecedor como inativo (exclusão lógica).
func (r *FornecedorRepo) Desativar(id string) error {
	query := `UPDATE fornecedores SET ativo = false WHERE id = $1`
	if _, err := r.q.Exec(context.Background(), query, id); err != nil {
		return fmt.Errorf("desativar fornecedor: %w", err)
	}
	return nil
}
