package dto

import (
	"time"

	"github.com/gestaoti/gestao-ti-api/internal/domain/entity"
)

// CriarChamadoRequest payload de POST /chamados.
type CriarChamadoRequest struct {
	Titulo         string `json:"titulo"`
	Descricao      string `json:"descricao"`
	SolicitanteID  string `json:"solicitante_id"`
	Prioridade     string `json:"prioridade"`
	Categoria      string `json:"categoria"`
	AnexoEvidencia string `json:"anexo_evidencia"`
}

// AtribuirChamadoRequest payload de PUT /chamados/:id/atribuir.
type AtribuirChamadoRequest struct {
	TecnicoID           string `json:"tecnico_id"`
	UsuarioAtribuidorID string `json:"usuario_atribuidor_id"`
}

// ResolverChamadoRequest payload de PUT /chamados/:id/resolver.
type ResolverChamadoRequest struct {
	UsuarioID string `json:"usuario_id"`
	Solucao   string `json:"solucao"`
}

// FecharChamadoRequest payload de PUT /chamados/:id/fechar.
type FecharChamadoRequest struct {
	UsuarioID   string `json:"usuario_id"`
	Observacoes string `json:"observacoes"`
}

// ChamadoResponse representação de um chamado.
type ChamadoResponse struct {
	ID                 string                     `json:"id"`
	NumeroChamado      string                     `json:"numero_chamado"`
	Titulo             string                     `json:"titulo"`
	Descricao          string                     `json:"descricao"`
	SolicitanteID      string                     `json:"solicitante_id"`
	TecnicoAtribuidoID *string                    `json:"tecnico_atribuido_id"`
	Prioridade         string                     `json:"prioridade"`
	Status             string                     `json:"status"`
	Categoria          string                     `json:"categoria,omitempty"`
	AnexoEvidencia     string                     `json:"anexo_evidencia,omitempty"`
	DataAbertura       string                     `json:"data_abertura"`
	DataAtribuicao     *string                    `json:"data_atribuicao"`
	DataResolucao      *string                    `json:"data_resolucao"`
	DataFechamento     *string                    `json:"data_fechamento"`
	Solucao            string                     `json:"solucao,omitempty"`
	Historico          []HistoricoChamadoResponse `json:"historico,omitempty"`
}

// HistoricoChamadoResponse uma entrada do log de transições.
type HistoricoChamadoResponse struct {
	ID             string `json:"id"`
	ChamadoID      string `json:"chamado_id"`
	UsuarioID      string `json:"usuario_id"`
	Acao           string `json:"acao"`
	Descricao      string `json:"descricao"`
	StatusAnterior string `json:"status_anterior,omitempty"`
	StatusNovo     string `json:"status_novo"`
	DataAcao       string `json:"data_acao"`
}

// NovoChamadoResponse converte a entidade para o DTO.
func NovoChamadoResponse(c *entity.Chamado) ChamadoResponse {
	return ChamadoResponse{
		ID:                 c.ID,
		NumeroChamado:      c.NumeroChamado,
		Titulo:             c.Titulo,
		Descricao:          c.Descricao,
		SolicitanteID:      c.SolicitanteID,
		TecnicoAtribuidoID: c.TecnicoAtribuidoID,
		Prioridade:         c.Prioridade,
		Status:             c.Status,
		Categoria:          c.Categoria,
		AnexoEvidencia:     c.AnexoEvidencia,
		DataAbertura:       c.DataAbertura.Format(time.RFC3339),
		DataAtribuicao:     Timestamp(c.DataAtribuicao),
		DataResolucao:      Timestamp(c.DataResolucao),
		DataFechamento:     Timestamp(c.DataFechamento),
		Solucao:            c.Solucao,
	}
}

// NovoHistoricoResponse converte uma entrada de histórico.
func NovoHistoricoResponse(h *entity.HistoricoChamado) HistoricoChamadoResponse {
	return HistoricoChamadoResponse{
		ID:             h.ID,
		ChamadoID:      h.ChamadoID,
		UsuarioID:      h.UsuarioID,
		Acao:           h.Acao,
		Descricao:      h.Descricao,
		StatusAnterior: h.StatusAnterior,
		StatusNovo:     h.StatusNovo,
		DataAcao:       h.DataAcao.Format(time.RFC3339),
	}
}
