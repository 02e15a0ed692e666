package postgres

import (
	"context"
	"errors"
	"fmt"

	"github.com/jackc/pgx/v5"

	"github.com/gestaoti/gestao-ti-api/internal/domain/entity"
	"github.com/gestaoti/gestao-ti-api/internal/domain/repository"
)

var _ repository.InventarioRepository = (*InventarioRepo)(nil)
var _ repository.MovimentacaoRepository = (*MovimentacaoRepo)(nil)

// InventarioRepo implementação de InventarioRepository sobre PostgreSQL.
type InventarioRepo struct {
	q Querier
}

// NewInventarioRepository constrói o adaptador. Passar pool ou tx (Querier).
func NewInventarioRepository(q Querier) *InventarioRepo {
	return &InventarioRepo{q: q}
}

const itemCols = `id, tipo_item, nome, descricao, quantidade, quantidade_minima, localizacao,
	centro_custo_id, fornecedor_id, valor_unitario, data_vencimento_licenca, observacoes,
	data_criacao, data_atualizacao`

// Create persiste um item de inventário.
func (r *InventarioRepo) Create(i *entity.ItemInventario) error {
	query := `
		INSERT INTO itens_inventario (` + itemCols + `)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10, $11, $12, $13, $14)`
	_, err := r.q.Exec(context.Background(), query,
		i.ID, i.TipoItem, i.Nome, i.Descricao, i.Quantidade, i.QuantidadeMinima, i.Localizacao,
		i.CentroCustoID, i.FornecedorID, i.ValorUnitario, i.DataVencimentoLicenca, i.Observacoes,
		i.DataCriacao, i.DataAtualizacao,
	)
	if err != nil {
		return fmt.Errorf("create item inventario: %w", err)
	}
	return nil
}

// GetByID busca por ID. Retorna (nil, nil) se não existe.
func (r *InventarioRepo) GetByID(id string) (*entity.ItemInventario, error) {
	return r.get(id, false)
}

// GetForUpdate busca por ID bloqueando a linha (SELECT FOR UPDATE).
// Só faz sentido com Querier transacional.
func (r *InventarioRepo) GetForUpdate(id string) (*entity.ItemInventario, error) {
	return r.get(id, true)
}

func (r *InventarioRepo) get(id string, forUpdate bool) (*entity.ItemInventario, error) {
	query := `SELECT ` + itemCols + ` FROM itens_inventario WHERE id = $1`
	if forUpdate {
		query += ` FOR UPDATE`
	}
	var i entity.ItemInventario
	err := r.q.QueryRow(context.Background(), query, id).Scan(
		&i.ID, &i.TipoItem, &i.Nome, &i.Descricao, &i.Quantidade, &i.QuantidadeMinima, &i.Localizacao,
		&i.CentroCustoID, &i.FornecedorID, &i.ValorUnitario, &i.DataVencimentoLicenca, &i.Observacoes,
		&i.DataCriacao, &i.DataAtualizacao,
	)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, nil
		}
		return nil, fmt.Errorf("get item inventario: %w", err)
	}
	return &i, nil
}

// Update grava o estado completo do item.
func (r *InventarioRepo) Update(i *entity.ItemInventario) error {
	query := `
		UPDATE itens_inventario
		SET tipo_item = $2, nome = $3, descricao = $4, quantidade = $5, quantidade_minima = $6,
		    localizacao = $7, centro_custo_id = $8, fornecedor_id = $9, valor_unitario = $10,
		    data_vencimento_licenca = $11, observacoes = $12, data_atualizacao = $13
		WHERE id = $1`
	_, err := r.q.Exec(context.Background(), query,
		i.ID, i.TipoItem, i.Nome, i.Descricao, i.Quantidade, i.QuantidadeMinima,
		i.Localizacao, i.CentroCustoID, i.FornecedorID, i.ValorUnitario,
		i.DataVencimentoLicenca, i.Observacoes, i.DataAtualizacao,
	)
	if err != nil {
		return fmt.Errorf("update item inventario: %w", err)
	}
	return nil
}

// List retorna itens ordenados por nome, com filtro opcional de tipo.
func (r *InventarioRepo) List(tipoItem string) ([]*entity.ItemInventario, error) {
	query := `SELECT ` + itemCols + ` FROM itens_inventario`
	var args []any
	if tipoItem != "" {
		query += ` WHERE tipo_item = $1`
		args = append(args, tipoItem)
	}
	query += ` ORDER BY nome`

	rows, err := r.q.Query(context.Background(), query, args...)
	if err != nil {
		return nil, fmt.Errorf("list itens inventario: %w", err)
	}
	defer rows.Close()

	var itens []*entity.ItemInventario
	for rows.Next() {
		var i entity.ItemInventario
		if err := rows.Scan(
			&i.ID, &i.TipoItem, &i.Nome, &i.Descricao, &i.Quantidade, &i.QuantidadeMinima, &i.Localizacao,
			&i.CentroCustoID, &i.FornecedorID, &i.ValorUnitario, &i.DataVencimentoLicenca, &i.Observacoes,
			&i.DataCriacao, &i.DataAtualizacao,
		); err != nil {
			return nil, fmt.Errorf("scan item inventario: %w", err)
		}
		itens = append(itens, &i)
	}
	return itens, rows.Err()
}

// MovimentacaoRepo persiste o log append-only de movimentações.
type MovimentacaoRepo struct {
	q Querier
}

// NewMovimentacaoRepository constrói o adaptador. Passar pool ou tx (Querier).
func NewMovimentacaoRepository(q Querier) *MovimentacaoRepo {
	return &MovimentacaoRepo{q: q}
}

// Append insere uma movimentação. Não há Update nem Delete.
func (r *MovimentacaoRepo) Append(m *entity.MovimentacaoInventario) error {
	query := `
		INSERT INTO movimentacoes_inventario
			(id, inventario_id, usuario_id, tipo_movimentacao, quantidade,
			 quantidade_anterior, quantidade_nova, motivo, data_movimentacao)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9)`
	_, err := r.q.Exec(context.Background(), query,
		m.ID, m.InventarioID, m.UsuarioID, m.TipoMovimentacao, m.Quantidade,
		m.QuantidadeAnterior, m.QuantidadeNova, m.Motivo, m.DataMovimentacao,
	)
	if err != nil {
		return fmt.Errorf("append movimentacao: %w", err)
	}
	return nil
}

// ListByItem retorna as movimentações do item, mais recentes primeiro.
func (r *MovimentacaoRepo) ListByItem(inventarioID string) ([]*entity.MovimentacaoInventario, error) {
	query := `
		SELECT id, inventario_id, usuario_id, tipo_movimentacao, quantidade,
		       quantidade_anterior, quantidade_nova, motivo, data_movimentacao
		FROM movimentacoes_inventario WHERE inventario_id = $1
		ORDER BY data_movimentacao DESC`
	rows, err := r.q.Query(context.Background(), query, inventarioID)
	if err != nil {
		return nil, fmt.Errorf("list movimentacoes: %w", err)
	}
	defer rows.Close()

	var movs []*entity.MovimentacaoInventario
	for rows.Next() {
		var m entity.MovimentacaoInventario
		if err := rows.Scan(
			&m.ID, &m.InventarioID, &m.UsuarioID, &m.TipoMovimentacao, &m.Quantidade,
			&m.QuantidadeAnterior, &m.QuantidadeNova, &m.Motivo, &m.DataMovimentacao,
		); err != nil {
			return nil, fmt.Errorf("scan movimentacao: %w", err)
		}
		movs = append(movs, &m)
	}
	return movs, rows.Err()
}
