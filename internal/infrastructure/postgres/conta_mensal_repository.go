package postgres

import (
	"context"
	"errors"
	"fmt"
	"strconv"
	"time"

	"github.com/jackc/pgx/v5"

	"github.com/gestaoti/gestao-ti-api/internal/domain/entity"
	"github.com/gestaoti/gestao-ti-api/internal/domain/repository"
)

var _ repository.ContaMensalRepository = (*ContaMensalRepo)(nil)

// ContaMensalRepo implementação de ContaMensalRepository sobre PostgreSQL.
type ContaMensalRepo struct {
	q Querier
}

// NewContaMensalRepository constrói o adaptador. Passar pool ou tx (Querier).
func NewContaMensalRepository(q Querier) *ContaMensalRepo {
	return &ContaMensalRepo{q: q}
}

const contaCols = `id, tipo_conta, fornecedor_id, centro_custo_id, valor, data_vencimento,
	status_pagamento, recorrencia, data_contratacao, descricao, anexo_contrato,
	data_criacao, data_pagamento`

// Create persiste uma conta mensal.
func (r *ContaMensalRepo) Create(c *entity.ContaMensal) error {
	query := `
		INSERT INTO contas_mensais (` + contaCols + `)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10, $11, $12, $13)`
	_, err := r.q.Exec(context.Background(), query,
		c.ID, c.TipoConta, c.FornecedorID, c.CentroCustoID, c.Valor, c.DataVencimento,
		c.StatusPagamento, c.Recorrencia, c.DataContratacao, c.Descricao, c.AnexoContrato,
		c.DataCriacao, c.DataPagamento,
	)
	if err != nil {
		return fmt.Errorf("create conta mensal: %w", err)
	}
	return nil
}

// GetByID busca por ID. Retorna (nil, nil) se não existe.
func (r *ContaMensalRepo) GetByID(id string) (*entity.ContaMensal, error) {
	query := `SELECT ` + contaCols + ` FROM contas_mensais WHERE id = $1`
	var c entity.ContaMensal
	err := r.q.QueryRow(context.Background(), query, id).Scan(
		&c.ID, &c.TipoConta, &c.FornecedorID, &c.CentroCustoID, &c.Valor, &c.DataVencimento,
		&c.StatusPagamento, &c.Recorrencia, &c.DataContratacao, &c.Descricao, &c.AnexoContrato,
		&c.DataCriacao, &c.DataPagamento,
	)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, nil
		}
		return nil, fmt.Errorf("get conta mensal: %w", err)
	}
	return &c, nil
}

// Update grava o estado completo da conta.
func (r *ContaMensalRepo) Update(c *entity.ContaMensal) error {
	query := `
		UPDATE contas_mensais
		SET tipo_conta = $2, fornecedor_id = $3, centro_custo_id = $4, valor = $5,
		    data_vencimento = $6, status_pagamento = $7, recorrencia = $8,
		    data_contratacao = $9, descricao = $10, anexo_contrato = $11, data_pagamento = $12
		WHERE id = $1`
	_, err := r.q.Exec(context.Background(), query,
		c.ID, c.TipoConta, c.FornecedorID, c.CentroCustoID, c.Valor,
		c.DataVencimento, c.StatusPagamento, c.Recorrencia,
		c.DataContratacao, c.Descricao, c.AnexoContrato, c.DataPagamento,
	)
	if err != nil {
		return fmt.Errorf("update conta mensal: %w", err)
	}
	return nil
}

// List retorna contas por vencimento, com filtros opcionais de status e
// mês/ano de vencimento (mês só vale acompanhado do ano).
func (r *ContaMensalRepo) List(filtro repository.ContaMensalFiltro) ([]*entity.ContaMensal, error) {
	query := `SELECT ` + contaCols + ` FROM contas_mensais WHERE 1=1`
	var args []any
	if filtro.Status != "" {
		args = append(args, filtro.Status)
		query += ` AND status_pagamento = $` + strconv.Itoa(len(args))
	}
	if filtro.Mes > 0 && filtro.Ano > 0 {
		args = append(args, filtro.Mes)
		query += ` AND EXTRACT(MONTH FROM data_vencimento) = $` + strconv.Itoa(len(args))
		args = append(args, filtro.Ano)
		query += ` AND EXTRACT(YEAR FROM data_vencimento) = $` + strconv.Itoa(len(args))
	}
	query += ` ORDER BY data_vencimento`
	return r.listQuery(query, args...)
}

// ListVencidas retorna contas pendentes com vencimento antes de hoje.
func (r *ContaMensalRepo) ListVencidas(hoje time.Time) ([]*entity.ContaMensal, error) {
	query := `
		SELECT ` + contaCols + ` FROM contas_mensais
		WHERE status_pagamento = 'pendente' AND data_vencimento < $1
		ORDER BY data_vencimento`
	return r.listQuery(query, hoje)
}

// ListVencendo retorna contas pendentes com vencimento entre hoje e o limite.
func (r *ContaMensalRepo) ListVencendo(hoje, limite time.Time) ([]*entity.ContaMensal, error) {
	query := `
		SELECT ` + contaCols + ` FROM contas_mensais
		WHERE status_pagamento = 'pendente' AND data_vencimento >= $1 AND data_vencimento <= $2
		ORDER BY data_vencimento`
	return r.listQuery(query, hoje, limite)
}

func (r *ContaMensalRepo) listQuery(query string, args ...any) ([]*entity.ContaMensal, error) {
	rows, err := r.q.Query(context.Background(), query, args...)
	if err != nil {
		return nil, fmt.Errorf("list contas mensais: %w", err)
	}
	defer rows.Close()

	var contas []*entity.ContaMensal
	for rows.Next() {
		var c entity.ContaMensal
		if err := rows.Scan(
			&c.ID, &c.TipoConta, &c.FornecedorID, &c.CentroCustoID, &c.Valor, &c.DataVencimento,
			&c.StatusPagamento, &c.Recorrencia, &c.DataContratacao, &c.Descricao, &c.AnexoContrato,
			&c.DataCriacao, &c.DataPagamento,
		); err != nil {
			return nil, fmt.Errorf("scan conta mensal: %w", err)
		}
		contas = append(contas, &c)
	}
	return contas, rows.Err()
}
