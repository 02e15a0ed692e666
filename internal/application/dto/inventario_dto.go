package dto

import (
	"time"

	"github.com/shopspring/decimal"

	"github.com/gestaoti/gestao-ti-api/internal/domain/entity"
)

// CriarItemInventarioRequest payload de POST /inventario.
type CriarItemInventarioRequest struct {
	TipoItem              string           `json:"tipo_item"`
	Nome                  string           `json:"nome"`
	Descricao             string           `json:"descricao"`
	Quantidade            int              `json:"quantidade"`
	QuantidadeMinima      int              `json:"quantidade_minima"`
	Localizacao           string           `json:"localizacao"`
	CentroCustoID         *string          `json:"centro_custo_id"`
	FornecedorID          *string          `json:"fornecedor_id"`
	ValorUnitario         *decimal.Decimal `json:"valor_unitario"`
	DataVencimentoLicenca string           `json:"data_vencimento_licenca"`
	Observacoes           string           `json:"observacoes"`
}

// AtualizarItemInventarioRequest payload de PUT /inventario/:id.
// Quantidade não entra aqui: só muda via movimentação.
type AtualizarItemInventarioRequest struct {
	TipoItem              *string          `json:"tipo_item"`
	Nome                  *string          `json:"nome"`
	Descricao             *string          `json:"descricao"`
	QuantidadeMinima      *int             `json:"quantidade_minima"`
	Localizacao           *string          `json:"localizacao"`
	CentroCustoID         *string          `json:"centro_custo_id"`
	FornecedorID          *string          `json:"fornecedor_id"`
	ValorUnitario         *decimal.Decimal `json:"valor_unitario"`
	DataVencimentoLicenca string           `json:"data_vencimento_licenca"`
	Observacoes           *string          `json:"observacoes"`
}

// MovimentarInventarioRequest payload de POST /inventario/:id/movimentar.
type MovimentarInventarioRequest struct {
	UsuarioID        string `json:"usuario_id"`
	TipoMovimentacao string `json:"tipo_movimentacao"`
	Quantidade       int    `json:"quantidade"`
	Motivo           string `json:"motivo"`
}

// ItemInventarioResponse representação de um item, com o derivado estoque_baixo.
type ItemInventarioResponse struct {
	ID                    string                  `json:"id"`
	TipoItem              string                  `json:"tipo_item"`
	Nome                  string                  `json:"nome"`
	Descricao             string                  `json:"descricao,omitempty"`
	Quantidade            int                     `json:"quantidade"`
	QuantidadeMinima      int                     `json:"quantidade_minima"`
	Localizacao           string                  `json:"localizacao,omitempty"`
	CentroCustoID         *string                 `json:"centro_custo_id"`
	FornecedorID          *string                 `json:"fornecedor_id"`
	ValorUnitario         *decimal.Decimal        `json:"valor_unitario"`
	DataVencimentoLicenca *string                 `json:"data_vencimento_licenca"`
	Observacoes           string                  `json:"observacoes,omitempty"`
	DataCriacao           string                  `json:"data_criacao"`
	DataAtualizacao       string                  `json:"data_atualizacao"`
	EstoqueBaixo          bool                    `json:"estoque_baixo"`
	Movimentacoes         []MovimentacaoResponse  `json:"movimentacoes,omitempty"`
}

// MovimentacaoResponse uma entrada do log de movimentações.
type MovimentacaoResponse struct {
	ID                 string `json:"id"`
	InventarioID       string `json:"inventario_id"`
	UsuarioID          string `json:"usuario_id"`
	TipoMovimentacao   string `json:"tipo_movimentacao"`
	Quantidade         int    `json:"quantidade"`
	QuantidadeAnterior int    `json:"quantidade_anterior"`
	QuantidadeNova     int    `json:"quantidade_nova"`
	Motivo             string `json:"motivo,omitempty"`
	DataMovimentacao   string `json:"data_movimentacao"`
}

// MovimentarInventarioResponse resposta de POST /inventario/:id/movimentar.
type MovimentarInventarioResponse struct {
	Item         ItemInventarioResponse `json:"item"`
	Movimentacao MovimentacaoResponse   `json:"movimentacao"`
}

// NovoItemInventarioResponse converte a entidade para o DTO.
func NovoItemInventarioResponse(i *entity.ItemInventario) ItemInventarioResponse {
	return ItemInventarioResponse{
		ID:                    i.ID,
		TipoItem:              i.TipoItem,
		Nome:                  i.Nome,
		Descricao:             i.Descricao,
		Quantidade:            i.Quantidade,
		QuantidadeMinima:      i.QuantidadeMinima,
		Localizacao:           i.Localizacao,
		CentroCustoID:         i.CentroCustoID,
		FornecedorID:          i.FornecedorID,
		ValorUnitario:         i.ValorUnitario,
		DataVencimentoLicenca: Data(i.DataVencimentoLicenca),
		Observacoes:           i.Observacoes,
		DataCriacao:           i.DataCriacao.Format(time.RFC3339),
		DataAtualizacao:       i.DataAtualizacao.Format(time.RFC3339),
		EstoqueBaixo:          i.EstoqueBaixo(),
	}
}

// NovaMovimentacaoResponse converte uma movimentação para o DTO.
func NovaMovimentacaoResponse(m *entity.MovimentacaoInventario) MovimentacaoResponse {
	return MovimentacaoResponse{
		ID:                 m.ID,
		InventarioID:       m.InventarioID,
		UsuarioID:          m.UsuarioID,
		TipoMovimentacao:   m.TipoMovimentacao,
		Quantidade:         m.Quantidade,
		QuantidadeAnterior: m.QuantidadeAnterior,
		QuantidadeNova:     m.QuantidadeNova,
		Motivo:             m.Motivo,
		DataMovimentacao:   m.DataMovimentacao.Format(time.RFC3339),
	}
}
