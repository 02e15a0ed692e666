package dto

import (
	"time"

	"github.com/shopspring/decimal"

	"github.com/gestaoti/gestao-ti-api/internal/domain/entity"
)

// CriarContaMensalRequest payload de POST /contas-mensais.
type CriarContaMensalRequest struct {
	TipoConta       string          `json:"tipo_conta"`
	FornecedorID    *string         `json:"fornecedor_id"`
	CentroCustoID   *string         `json:"centro_custo_id"`
	Valor           decimal.Decimal `json:"valor"`
	DataVencimento  string          `json:"data_vencimento"`
	Recorrencia     string          `json:"recorrencia"`
	DataContratacao string          `json:"data_contratacao"`
	Descricao       string          `json:"descricao"`
	AnexoContrato   string          `json:"anexo_contrato"`
}

// AtualizarContaMensalRequest payload de PUT /contas-mensais/:id.
type AtualizarContaMensalRequest struct {
	TipoConta       *string          `json:"tipo_conta"`
	FornecedorID    *string          `json:"fornecedor_id"`
	CentroCustoID   *string          `json:"centro_custo_id"`
	Valor           *decimal.Decimal `json:"valor"`
	StatusPagamento *string          `json:"status_pagamento"`
	Recorrencia     *string          `json:"recorrencia"`
	Descricao       *string          `json:"descricao"`
	AnexoContrato   *string          `json:"anexo_contrato"`
	DataVencimento  string           `json:"data_vencimento"`
	DataContratacao string           `json:"data_contratacao"`
}

// ContaMensalResponse representação de uma conta, com o derivado "vencida".
type ContaMensalResponse struct {
	ID              string          `json:"id"`
	TipoConta       string          `json:"tipo_conta"`
	FornecedorID    *string         `json:"fornecedor_id"`
	CentroCustoID   *string         `json:"centro_custo_id"`
	Valor           decimal.Decimal `json:"valor"`
	DataVencimento  string          `json:"data_vencimento"`
	StatusPagamento string          `json:"status_pagamento"`
	Recorrencia     string          `json:"recorrencia,omitempty"`
	DataContratacao *string         `json:"data_contratacao"`
	Descricao       string          `json:"descricao,omitempty"`
	AnexoContrato   string          `json:"anexo_contrato,omitempty"`
	DataCriacao     string          `json:"data_criacao"`
	DataPagamento   *string         `json:"data_pagamento"`
	Vencida         bool            `json:"vencida"`
}

// NovaContaMensalResponse converte a entidade; "vencida" é avaliada agora.
func NovaContaMensalResponse(c *entity.ContaMensal) ContaMensalResponse {
	return ContaMensalResponse{
		ID:              c.ID,
		TipoConta:       c.TipoConta,
		FornecedorID:    c.FornecedorID,
		CentroCustoID:   c.CentroCustoID,
		Valor:           c.Valor,
		DataVencimento:  c.DataVencimento.Format(FormatoData),
		StatusPagamento: c.StatusPagamento,
		Recorrencia:     c.Recorrencia,
		DataContratacao: Data(c.DataContratacao),
		Descricao:       c.Descricao,
		AnexoContrato:   c.AnexoContrato,
		DataCriacao:     c.DataCriacao.Format(time.RFC3339),
		DataPagamento:   Timestamp(c.DataPagamento),
		Vencida:         c.Vencida(hojeData()),
	}
}

// hojeData retorna a data de hoje truncada à meia-noite local.
func hojeData() time.Time {
	agora := time.Now()
	return time.Date(agora.Year(), agora.Month(), agora.Day(), 0, 0, 0, 0, agora.Location())
}
