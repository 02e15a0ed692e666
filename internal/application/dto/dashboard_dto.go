package dto

// EstatisticasResponse resposta de GET /dashboard/estatisticas.
type EstatisticasResponse struct {
	Compras       EstatisticasCompras    `json:"compras"`
	Chamados      EstatisticasChamados   `json:"chamados"`
	Ativos        EstatisticasAtivos     `json:"ativos"`
	Inventario    EstatisticasInventario `json:"inventario"`
	ContasMensais EstatisticasContas     `json:"contas_mensais"`
}

type EstatisticasCompras struct {
	Total       int `json:"total"`
	Pendentes   int `json:"pendentes"`
	EmAndamento int `json:"em_andamento"`
}

type EstatisticasChamados struct {
	Total       int `json:"total"`
	Abertos     int `json:"abertos"`
	EmAndamento int `json:"em_andamento"`
	Criticos    int `json:"criticos"`
}

type EstatisticasAtivos struct {
	Total            int `json:"total"`
	LicencasVencendo int `json:"licencas_vencendo"`
}

type EstatisticasInventario struct {
	TotalItens   int `json:"total_itens"`
	EstoqueBaixo int `json:"estoque_baixo"`
}

type EstatisticasContas struct {
	Vencidas int `json:"vencidas"`
	Vencendo int `json:"vencendo"`
}

// Tipos de alerta do dashboard.
const (
	AlertaCritico = "critico"
	AlertaAviso   = "aviso"
)

// AlertaResponse uma linha de GET /dashboard/alertas. Só aparece quando a
// contagem correspondente é não-zero.
type AlertaResponse struct {
	Tipo     string `json:"tipo"`
	Mensagem string `json:"mensagem"`
	Modulo   string `json:"modulo"`
}
