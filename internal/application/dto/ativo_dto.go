package dto

import (
	"time"

	"github.com/shopspring/decimal"

	"github.com/gestaoti/gestao-ti-api/internal/domain/entity"
)

// CriarAtivoRequest payload de POST /ativos.
type CriarAtivoRequest struct {
	TipoAtivo             string           `json:"tipo_ativo"`
	Nome                  string           `json:"nome"`
	Descricao             string           `json:"descricao"`
	NumeroSerie           string           `json:"numero_serie"`
	Localizacao           string           `json:"localizacao"`
	ResponsavelID         *string          `json:"responsavel_id"`
	CentroCustoID         *string          `json:"centro_custo_id"`
	DataAquisicao         string           `json:"data_aquisicao"`
	ValorAquisicao        *decimal.Decimal `json:"valor_aquisicao"`
	PercentualDepreciacao *decimal.Decimal `json:"percentual_depreciacao"`
	DataVencimentoLicenca string           `json:"data_vencimento_licenca"`
	Status                string           `json:"status"`
}

// AtualizarAtivoRequest payload de PUT /ativos/:id.
type AtualizarAtivoRequest struct {
	TipoAtivo             *string          `json:"tipo_ativo"`
	Nome                  *string          `json:"nome"`
	Descricao             *string          `json:"descricao"`
	NumeroSerie           *string          `json:"numero_serie"`
	Localizacao           *string          `json:"localizacao"`
	ResponsavelID         *string          `json:"responsavel_id"`
	CentroCustoID         *string          `json:"centro_custo_id"`
	DataAquisicao         string           `json:"data_aquisicao"`
	ValorAquisicao        *decimal.Decimal `json:"valor_aquisicao"`
	PercentualDepreciacao *decimal.Decimal `json:"percentual_depreciacao"`
	DataVencimentoLicenca string           `json:"data_vencimento_licenca"`
	Status                *string          `json:"status"`
}

// AtivoResponse representação de um ativo; valor_atual é recalculado
// a cada leitura, nunca persistido.
type AtivoResponse struct {
	ID                    string           `json:"id"`
	TipoAtivo             string           `json:"tipo_ativo"`
	Nome                  string           `json:"nome"`
	Descricao             string           `json:"descricao,omitempty"`
	NumeroSerie           string           `json:"numero_serie,omitempty"`
	Localizacao           string           `json:"localizacao,omitempty"`
	ResponsavelID         *string          `json:"responsavel_id"`
	CentroCustoID         *string          `json:"centro_custo_id"`
	DataAquisicao         *string          `json:"data_aquisicao"`
	ValorAquisicao        *decimal.Decimal `json:"valor_aquisicao"`
	ValorAtual            decimal.Decimal  `json:"valor_atual"`
	PercentualDepreciacao decimal.Decimal  `json:"percentual_depreciacao"`
	DataVencimentoLicenca *string          `json:"data_vencimento_licenca"`
	Status                string           `json:"status"`
	DataCriacao           string           `json:"data_criacao"`
	DataAtualizacao       string           `json:"data_atualizacao"`
}

// NovoAtivoResponse converte a entidade e calcula o valor depreciado.
func NovoAtivoResponse(a *entity.Ativo) AtivoResponse {
	return AtivoResponse{
		ID:                    a.ID,
		TipoAtivo:             a.TipoAtivo,
		Nome:                  a.Nome,
		Descricao:             a.Descricao,
		NumeroSerie:           a.NumeroSerie,
		Localizacao:           a.Localizacao,
		ResponsavelID:         a.ResponsavelID,
		CentroCustoID:         a.CentroCustoID,
		DataAquisicao:         Data(a.DataAquisicao),
		ValorAquisicao:        a.ValorAquisicao,
		ValorAtual:            a.CalcularValorAtual(hojeData()),
		PercentualDepreciacao: a.PercentualDepreciacao,
		DataVencimentoLicenca: Data(a.DataVencimentoLicenca),
		Status:                a.Status,
		DataCriacao:           a.DataCriacao.Format(time.RFC3339),
		DataAtualizacao:       a.DataAtualizacao.Format(time.RFC3339),
	}
}
