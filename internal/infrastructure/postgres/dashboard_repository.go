package postgres

import (
	"context"
	"fmt"
	"time"

	"github.com/gestaoti/gestao-ti-api/internal/domain/repository"
)

var _ repository.DashboardRepository = (*DashboardRepo)(nil)

// DashboardRepo consultas de agregação para o painel, sempre direto no banco.
type DashboardRepo struct {
	q Querier
}

// NewDashboardRepository constrói o adaptador. Passar pool ou tx (Querier).
func NewDashboardRepository(q Querier) *DashboardRepo {
	return &DashboardRepo{q: q}
}

// ContarChamados retorna os contadores de chamados em uma passada.
func (r *DashboardRepo) ContarChamados(ctx context.Context) (repository.ContagemChamados, error) {
	query := `
		SELECT count(*),
		       count(*) FILTER (WHERE status = 'aberto'),
		       count(*) FILTER (WHERE status = 'em_andamento'),
		       count(*) FILTER (WHERE prioridade = 'critica' AND status = 'aberto')
		FROM chamados`
	var c repository.ContagemChamados
	if err := r.q.QueryRow(ctx, query).Scan(&c.Total, &c.Abertos, &c.EmAndamento, &c.Criticos); err != nil {
		return c, fmt.Errorf("contar chamados: %w", err)
	}
	return c, nil
}

// ContarCompras retorna os contadores de compras em uma passada.
func (r *DashboardRepo) ContarCompras(ctx context.Context) (repository.ContagemCompras, error) {
	query := `
		SELECT count(*),
		       count(*) FILTER (WHERE status = 'solicitado'),
		       count(*) FILTER (WHERE status = 'em_andamento')
		FROM compras`
	var c repository.ContagemCompras
	if err := r.q.QueryRow(ctx, query).Scan(&c.Total, &c.Pendentes, &c.EmAndamento); err != nil {
		return c, fmt.Errorf("contar compras: %w", err)
	}
	return c, nil
}

// ContarAtivosAtivos conta ativos com status ativo.
func (r *DashboardRepo) ContarAtivosAtivos(ctx context.Context) (int, error) {
	return r.contar(ctx, `SELECT count(*) FROM ativos WHERE status = 'ativo'`)
}

// ContarLicencasVencendo conta ativos ativos com licença vencendo até o limite.
func (r *DashboardRepo) ContarLicencasVencendo(ctx context.Context, limite time.Time) (int, error) {
	return r.contar(ctx, `
		SELECT count(*) FROM ativos
		WHERE status = 'ativo' AND data_vencimento_licenca IS NOT NULL
		  AND data_vencimento_licenca <= $1`, limite)
}

// ContarItensInventario conta todos os itens de inventário.
func (r *DashboardRepo) ContarItensInventario(ctx context.Context) (int, error) {
	return r.contar(ctx, `SELECT count(*) FROM itens_inventario`)
}

// ContarContasVencidas conta contas pendentes vencidas antes de hoje.
func (r *DashboardRepo) ContarContasVencidas(ctx context.Context, hoje time.Time) (int, error) {
	return r.contar(ctx, `
		SELECT count(*) FROM contas_mensais
		WHERE status_pagamento = 'pendente' AND data_vencimento < $1`, hoje)
}

// ContarContasVencendo conta contas pendentes vencendo entre hoje e o limite.
func (r *DashboardRepo) ContarContasVencendo(ctx context.Context, hoje, limite time.Time) (int, error) {
	return r.contar(ctx, `
		SELECT count(*) FROM contas_mensais
		WHERE status_pagamento = 'pendente' AND data_vencimento >= $1 AND data_vencimento <= $2`,
		hoje, limite)
}

func (r *DashboardRepo) contar(ctx context.Context, query string, args ...any) (int, error) {
	var n int
	if err := r.q.QueryRow(ctx, query, args...).Scan(&n); err != nil {
		return 0, fmt.Errorf("contar: %w", err)
	}
	return n, nil
}
