package entity

import "time"

// Status do ciclo de vida de um chamado.
const (
	ChamadoAberto      = "aberto"
	ChamadoEmAndamento = "em_andamento"
	ChamadoResolvido   = "resolvido"
	ChamadoFechado     = "fechado"
)

// Prioridades aceitas.
const (
	PrioridadeBaixa   = "baixa"
	PrioridadeMedia   = "media"
	PrioridadeAlta    = "alta"
	PrioridadeCritica = "critica"
)

// transicoesChamado é a tabela de transições válidas do ciclo de vida.
// O fluxo documentado é aberto → em_andamento → resolvido → fechado;
// atribuir e resolver aceitam reexecução em em_andamento (reatribuição,
// correção de solução), fechar exige chamado resolvido.
var transicoesChamado = map[string][]string{
	ChamadoAberto:      {ChamadoEmAndamento, ChamadoResolvido},
	ChamadoEmAndamento: {ChamadoEmAndamento, ChamadoResolvido},
	ChamadoResolvido:   {ChamadoFechado},
	ChamadoFechado:     {},
}

// TransicaoValida informa se a mudança de status é permitida pela tabela.
func TransicaoValida(de, para string) bool {
	for _, s := range transicoesChamado[de] {
		if s == para {
			return true
		}
	}
	return false
}

// PrioridadeValida valida o enum de prioridade.
func PrioridadeValida(p string) bool {
	switch p {
	case PrioridadeBaixa, PrioridadeMedia, PrioridadeAlta, PrioridadeCritica:
		return true
	}
	return false
}

// Chamado representa um chamado de help-desk. NumeroChamado é único e
// imutável após atribuído, no formato {ano}-{seq:06d} com sequência
// reiniciada por ano.
type Chamado struct {
	ID                 string
	NumeroChamado      string
	Titulo             string
	Descricao          string
	SolicitanteID      string
	TecnicoAtribuidoID *string
	Prioridade         string
	Status             string
	Categoria          string
	AnexoEvidencia     string
	DataAbertura       time.Time
	DataAtribuicao     *time.Time
	DataResolucao      *time.Time
	DataFechamento     *time.Time
	Solucao            string
}

// HistoricoChamado é o registro imutável de uma transição de status.
// Criado exclusivamente pelo caso de uso de chamados, na mesma transação
// da transição; só é removido por cascata quando o chamado é excluído.
type HistoricoChamado struct {
	ID             string
	ChamadoID      string
	UsuarioID      string
	Acao           string
	Descricao      string
	StatusAnterior string
	StatusNovo     string
	DataAcao       time.Time
}
