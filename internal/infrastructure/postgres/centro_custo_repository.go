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

var _ repository.CentroCustoRepository = (*CentroCustoRepo)(nil)

// CentroCustoRepo implementação de CentroCustoRepository sobre PostgreSQL.
type CentroCustoRepo struct {
	q Querier
}

// NewCentroCustoRepository constrói o adaptador. Passar pool ou tx (Querier).
func NewCentroCustoRepository(q Querier) *CentroCustoRepo {
	return &CentroCustoRepo{q: q}
}

// Create persiste um centro de custo.
func (r *CentroCustoRepo) Create(cc *entity.CentroCusto) error {
	query := `
		INSERT INTO centros_custo (id, codigo, nome, descricao, ativo, data_criacao)
		VALUES ($1, $2, $3, $4, $5, $6)`
	_, err := r.q.Exec(context.Background(), query,
		cc.ID, cc.Codigo, cc.Nome, cc.Descricao, cc.Ativo, cc.DataCriacao,
	)
	if err != nil {
		if isUniqueViolation(err) {
			return domain.ErrDuplicate
		}
		return fmt.Errorf("create centro de custo: %w", err)
	}
	return nil
}

// GetByID busca por ID. Retorna (nil, nil) se não existe.
func (r *CentroCustoRepo) GetByID(id string) (*entity.CentroCusto, error) {
	return r.getBy("id = $1", id)
}

// GetByCodigo busca pelo código único. Retorna (nil, nil) se não existe.
func (r *CentroCustoRepo) GetByCodigo(codigo string) (*entity.CentroCusto, error) {
	return r.getBy("codigo = $1", codigo)
}

func (r *CentroCustoRepo) getBy(cond string, arg any) (*entity.CentroCusto, error) {
	query := `SELECT id, codigo, nome, descricao, ativo, data_criacao FROM centros_custo WHERE ` + cond
	var cc entity.CentroCusto
	err := r.q.QueryRow(context.Background(), query, arg).Scan(
		&cc.ID, &cc.Codigo, &cc.Nome, &cc.Descricao, &cc.Ativo, &cc.DataCriacao,
	)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, nil
		}
		return nil, fmt.Errorf("get centro de custo: %w", err)
	}
	return &cc, nil
}

// Update grava o estado completo do centro de custo.
func (r *CentroCustoRepo) Update(cc *entity.CentroCusto) error {
	query := `
		UPDATE centros_custo
		SET codigo = $2, nome = $3, descricao = $4, ativo = $5
		WHERE id = $1`
	_, err := r.q.Exec(context.Background(), query, cc.ID, cc.Codigo, cc.Nome, cc.Descricao, cc.Ativo)
	if err != nil {
		if isUniqueViolation(err) {
			return domain.ErrDuplicate
		}
		return fmt.Errorf("update centro de custo: %w", err)
	}
	return nil
}

// List retorna centros de custo ordenados por código.
func (r *CentroCustoRepo) List(somenteAtivos bool) ([]*entity.CentroCusto, error) {
	query := `SELECT id, codigo, nome, descricao, ativo, data_criacao FROM centros_custo`
	if somenteAtivos {
		query += ` WHERE ativo`
	}
	query += ` ORDER BY codigo`

	rows, err := r.q.Query(context.Background(), query)
	if err != nil {
		return nil, fmt.Errorf("list centros de custo: %w", err)
	}
	defer rows.Close()

	var centros []*entity.CentroCusto
	for rows.Next() {
		var cc entity.CentroCusto
		if err := rows.Scan(&cc.ID, &cc.Codigo, &cc.Nome, &cc.Descricao, &cc.Ativo, &cc.DataCriacao); err != nil {
			return nil, fmt.Errorf("scan centro de custo: %w", err)
		}
		centros = append(centros, &cc)
	}
	return centros, rows.Err()
}

// Desativar marca o centro de custo como inativo (exclusão lógica).
func (r *CentroCustoRepo) Desativar(id string) error {
	query := `UPDATE centros_custo SET ativo = false WHERE id = $1`
	if _, err := r.q.Exec(context.Background(), query, id); err != nil {
		return fmt.Errorf("desativar centro de custo: %w", err)
	}
	return nil
}
