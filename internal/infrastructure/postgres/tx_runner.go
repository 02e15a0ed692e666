package postgres

import (
	"context"
	"fmt"

	"github.com/jackc/pgx/v5/pgxpool"

	"github.com/gestaoti/gestao-ti-api/internal/application/chamado"
	"github.com/gestaoti/gestao-ti-api/internal/application/compra"
	"github.com/gestaoti/gestao-ti-api/internal/application/inventario"
	"github.com/gestaoti/gestao-ti-api/internal/domain/repository"
)

var _ chamado.TxRunner = (*ChamadoTxRunner)(nil)
var _ inventario.TxRunner = (*InventarioTxRunner)(nil)
var _ compra.TxRunner = (*CompraTxRunner)(nil)

// ChamadoTxRunner executa a criação e as transições de chamado dentro de
// uma transação PostgreSQL, com os repositórios atados à tx.
type ChamadoTxRunner struct {
	pool *pgxpool.Pool
}

// NewChamadoTxRunner constrói o runner com o pool.
func NewChamadoTxRunner(pool *pgxpool.Pool) *ChamadoTxRunner {
	return &ChamadoTxRunner{pool: pool}
}

// Run inicia uma transação, executa fn e faz Commit ou Rollback.
func (r *ChamadoTxRunner) Run(ctx context.Context, fn func(
	chamadoRepo repository.ChamadoRepository,
	historicoRepo repository.HistoricoChamadoRepository,
	seqRepo repository.SequenciaRepository,
) error) error {
	tx, err := r.pool.Begin(ctx)
	if err != nil {
		return fmt.Errorf("begin transaction: %w", err)
	}
	defer func() { _ = tx.Rollback(ctx) }()

	if err := fn(NewChamadoRepository(tx), NewHistoricoChamadoRepository(tx), NewSequenciaRepository(tx)); err != nil {
		return err
	}
	if err := tx.Commit(ctx); err != nil {
		return fmt.Errorf("commit transaction: %w", err)
	}
	return nil
}

// InventarioTxRunner executa movimentações de estoque em transação,
// permitindo o SELECT FOR UPDATE do item junto com o append no log.
type InventarioTxRunner struct {
	pool *pgxpool.Pool
}

// NewInventarioTxRunner constrói o runner com o pool.
func NewInventarioTxRunner(pool *pgxpool.Pool) *InventarioTxRunner {
	return &InventarioTxRunner{pool: pool}
}

// Run inicia uma transação, executa fn e faz Commit ou Rollback.
func (r *InventarioTxRunner) Run(ctx context.Context, fn func(
	itemRepo repository.InventarioRepository,
	movRepo repository.MovimentacaoRepository,
) error) error {
	tx, err := r.pool.Begin(ctx)
	if err != nil {
		return fmt.Errorf("begin transaction: %w", err)
	}
	defer func() { _ = tx.Rollback(ctx) }()

	if err := fn(NewInventarioRepository(tx), NewMovimentacaoRepository(tx)); err != nil {
		return err
	}
	if err := tx.Commit(ctx); err != nil {
		return fmt.Errorf("commit transaction: %w", err)
	}
	return nil
}

// CompraTxRunner executa a criação de compra (número, compra, produtos e
// rateios) dentro de uma transação.
type CompraTxRunner struct {
	pool *pgxpool.Pool
}

// NewCompraTxRunner constrói o runner com o pool.
func NewCompraTxRunner(pool *pgxpool.Pool) *CompraTxRunner {
	return &CompraTxRunner{pool: pool}
}

// Run inicia uma transação, executa fn e faz Commit ou Rollback.
func (r *CompraTxRunner) Run(ctx context.Context, fn func(
	compraRepo repository.CompraRepository,
	seqRepo repository.SequenciaRepository,
) error) error {
	tx, err := r.pool.Begin(ctx)
	if err != nil {
		return fmt.Errorf("begin transaction: %w", err)
	}
	defer func() { _ = tx.Rollback(ctx) }()

	if err := fn(NewCompraRepository(tx), NewSequenciaRepository(tx)); err != nil {
		return err
	}
	if err := tx.Commit(ctx); err != nil {
		return fmt.Errorf("commit transaction: %w", err)
	}
	return nil
}
