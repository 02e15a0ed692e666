package postgres

import (
	"context"
	"errors"
	"fmt"

	"github.com/jackc/pgx/v5"

	"github.com/gestaoti/gestao-ti-api/internal/domain/entity"
	"github.com/gestaoti/gestao-ti-api/internal/domain/repository"
)

var _ repository.CompraRepository = (*CompraRepo)(nil)

// CompraRepo implementação de CompraRepository sobre PostgreSQL.
// As coleções filhas vivem em produtos_adquiridos e rateios_compra, com
// ON DELETE CASCADE para a compra.
type CompraRepo struct {
	q Querier
}

// NewCompraRepository constrói o adaptador. Passar pool ou tx (Querier).
func NewCompraRepository(q Querier) *CompraRepo {
	return &CompraRepo{q: q}
}

const compraCols = `id, fornecedor_id, centro_custo_id, usuario_solicitante_id, numero_pedido,
	descricao, valor_total, status, data_solicitacao, data_aquisicao,
	anexo_pedido, anexo_nota_fiscal, anexo_boleto, observacoes`

// Create persiste a compra (sem as coleções filhas).
func (r *CompraRepo) Create(c *entity.Compra) error {
	query := `
		INSERT INTO compras (` + compraCols + `)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10, $11, $12, $13, $14)`
	_, err := r.q.Exec(context.Background(), query,
		c.ID, c.FornecedorID, c.CentroCustoID, c.UsuarioSolicitanteID, c.NumeroPedido,
		c.Descricao, c.ValorTotal, c.Status, c.DataSolicitacao, c.DataAquisicao,
		c.AnexoPedido, c.AnexoNotaFiscal, c.AnexoBoleto, c.Observacoes,
	)
	if err != nil {
		return fmt.Errorf("create compra: %w", err)
	}
	return nil
}

// CreateProduto insere um item de linha da compra.
func (r *CompraRepo) CreateProduto(p *entity.ProdutoAdquirido) error {
	query := `
		INSERT INTO produtos_adquiridos (id, compra_id, nome, descricao, quantidade, valor_unitario, valor_total)
		VALUES ($1, $2, $3, $4, $5, $6, $7)`
	_, err := r.q.Exec(context.Background(), query,
		p.ID, p.CompraID, p.Nome, p.Descricao, p.Quantidade, p.ValorUnitario, p.ValorTotal,
	)
	if err != nil {
		return fmt.Errorf("create produto adquirido: %w", err)
	}
	return nil
}

// CreateRateio insere um rateio da compra.
func (r *CompraRepo) CreateRateio(x *entity.RateioCompra) error {
	query := `
		INSERT INTO rateios_compra (id, compra_id, centro_custo_id, percentual, valor)
		VALUES ($1, $2, $3, $4, $5)`
	_, err := r.q.Exec(context.Background(), query,
		x.ID, x.CompraID, x.CentroCustoID, x.Percentual, x.Valor,
	)
	if err != nil {
		return fmt.Errorf("create rateio: %w", err)
	}
	return nil
}

// GetByID busca a compra sem as coleções filhas. Retorna (nil, nil) se não existe.
func (r *CompraRepo) GetByID(id string) (*entity.Compra, error) {
	query := `SELECT ` + compraCols + ` FROM compras WHERE id = $1`
	var c entity.Compra
	err := r.q.QueryRow(context.Background(), query, id).Scan(
		&c.ID, &c.FornecedorID, &c.CentroCustoID, &c.UsuarioSolicitanteID, &c.NumeroPedido,
		&c.Descricao, &c.ValorTotal, &c.Status, &c.DataSolicitacao, &c.DataAquisicao,
		&c.AnexoPedido, &c.AnexoNotaFiscal, &c.AnexoBoleto, &c.Observacoes,
	)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, nil
		}
		return nil, fmt.Errorf("get compra: %w", err)
	}
	return &c, nil
}

// GetCompleta carrega a compra com produtos e rateios.
func (r *CompraRepo) GetCompleta(id string) (*entity.Compra, error) {
	c, err := r.GetByID(id)
	if c == nil || err != nil {
		return c, err
	}

	ctx := context.Background()

	rows, err := r.q.Query(ctx, `
		SELECT id, compra_id, nome, descricao, quantidade, valor_unitario, valor_total
		FROM produtos_adquiridos WHERE compra_id = $1 ORDER BY nome`, id)
	if err != nil {
		return nil, fmt.Errorf("list produtos da compra: %w", err)
	}
	defer rows.Close()
	for rows.Next() {
		var p entity.ProdutoAdquirido
		if err := rows.Scan(&p.ID, &p.CompraID, &p.Nome, &p.Descricao, &p.Quantidade, &p.ValorUnitario, &p.ValorTotal); err != nil {
			return nil, fmt.Errorf("scan produto adquirido: %w", err)
		}
		c.Produtos = append(c.Produtos, p)
	}
	if err := rows.Err(); err != nil {
		return nil, err
	}

	rows, err = r.q.Query(ctx, `
		SELECT id, compra_id, centro_custo_id, percentual, valor
		FROM rateios_compra WHERE compra_id = $1`, id)
	if err != nil {
		return nil, fmt.Errorf("list rateios da compra: %w", err)
	}
	defer rows.Close()
	for rows.Next() {
		var x entity.RateioCompra
		if err := rows.Scan(&x.ID, &x.CompraID, &x.CentroCustoID, &x.Percentual, &x.Valor); err != nil {
			return nil, fmt.Errorf("scan rateio: %w", err)
		}
		c.Rateios = append(c.Rateios, x)
	}
	return c, rows.Err()
}

// Update grava o estado da compra. NumeroPedido não muda.
func (r *CompraRepo) Update(c *entity.Compra) error {
	query := `
		UPDATE compras
		SET fornecedor_id = $2, centro_custo_id = $3, descricao = $4, valor_total = $5,
		    status = $6, data_aquisicao = $7, anexo_pedido = $8, anexo_nota_fiscal = $9,
		    anexo_boleto = $10, observacoes = $11
		WHERE id = $1`
	_, err := r.q.Exec(context.Background(), query,
		c.ID, c.FornecedorID, c.CentroCustoID, c.Descricao, c.ValorTotal,
		c.Status, c.DataAquisicao, c.AnexoPedido, c.AnexoNotaFiscal,
		c.AnexoBoleto, c.Observacoes,
	)
	if err != nil {
		return fmt.Errorf("update compra: %w", err)
	}
	return nil
}

// List retorna compras mais recentes primeiro, com filtro opcional de status.
func (r *CompraRepo) List(status string) ([]*entity.Compra, error) {
	query := `SELECT ` + compraCols + ` FROM compras`
	var args []any
	if status != "" {
		query += ` WHERE status = $1`
		args = append(args, status)
	}
	query += ` ORDER BY data_solicitacao DESC`

	rows, err := r.q.Query(context.Background(), query, args...)
	if err != nil {
		return nil, fmt.Errorf("list compras: %w", err)
	}
	defer rows.Close()

	var compras []*entity.Compra
	for rows.Next() {
		var c entity.Compra
		if err := rows.Scan(
			&c.ID, &c.FornecedorID, &c.CentroCustoID, &c.UsuarioSolicitanteID, &c.NumeroPedido,
			&c.Descricao, &c.ValorTotal, &c.Status, &c.DataSolicitacao, &c.DataAquisicao,
			&c.AnexoPedido, &c.AnexoNotaFiscal, &c.AnexoBoleto, &c.Observacoes,
		); err != nil {
			return nil, fmt.Errorf("scan compra: %w", err)
		}
		compras = append(compras, &c)
	}
	return compras, rows.Err()
}
