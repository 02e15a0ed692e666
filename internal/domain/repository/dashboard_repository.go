package repository

import (
	"context"
	"time"
)

// ContagemChamados contadores de chamados para o dashboard.
type ContagemChamados struct {
	Total       int
	Abertos     int
	EmAndamento int
	Criticos    int // prioridade crítica e status aberto
}

// ContagemCompras contadores de compras para o dashboard.
type ContagemCompras struct {
	Total       int
	Pendentes   int // status solicitado
	EmAndamento int
}

// DashboardRepository consultas read-only de agregação. Sempre recomputadas
// a partir do banco; nenhum valor é cacheado.
type DashboardRepository interface {
	ContarChamados(ctx context.Context) (ContagemChamados, error)
	ContarCompras(ctx context.Context) (ContagemCompras, error)
	ContarAtivosAtivos(ctx context.Context) (int, error)
	ContarLicencasVencendo(ctx context.Context, limite time.Time) (int, error)
	ContarItensInventario(ctx context.Context) (int, error)
	ContarContasVencidas(ctx context.Context, hoje time.Time) (int, error)
	ContarContasVencendo(ctx context.Context, hoje, limite time.Time) (int, error)
}
