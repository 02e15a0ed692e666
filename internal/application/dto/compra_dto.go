package dto

import (
	"time"

	"github.com/shopspring/decimal"

	"github.com/gestaoti/gestao-ti-api/internal/domain/entity"
)

// ProdutoCompraRequest item de linha em POST /compras.
type ProdutoCompraRequest struct {
	Nome          string          `json:"nome"`
	Descricao     string          `json:"descricao"`
	Quantidade    int             `json:"quantidade"`
	ValorUnitario decimal.Decimal `json:"valor_unitario"`
	ValorTotal    decimal.Decimal `json:"valor_total"`
}

// RateioCompraRequest rateio por centro de custo em POST /compras.
type RateioCompraRequest struct {
	CentroCustoID string          `json:"centro_custo_id"`
	Percentual    decimal.Decimal `json:"percentual"`
	Valor         decimal.Decimal `json:"valor"`
}

// CriarCompraRequest payload de POST /compras.
type CriarCompraRequest struct {
	FornecedorID         string                 `json:"fornecedor_id"`
	CentroCustoID        string                 `json:"centro_custo_id"`
	UsuarioSolicitanteID string                 `json:"usuario_solicitante_id"`
	Descricao            string                 `json:"descricao"`
	ValorTotal           decimal.Decimal        `json:"valor_total"`
	Observacoes          string                 `json:"observacoes"`
	Produtos             []ProdutoCompraRequest `json:"produtos"`
	Rateios              []RateioCompraRequest  `json:"rateios"`
}

// AtualizarCompraRequest payload de PUT /compras/:id (campos opcionais).
type AtualizarCompraRequest struct {
	FornecedorID    *string          `json:"fornecedor_id"`
	CentroCustoID   *string          `json:"centro_custo_id"`
	Descricao       *string          `json:"descricao"`
	ValorTotal      *decimal.Decimal `json:"valor_total"`
	Status          *string          `json:"status"`
	Observacoes     *string          `json:"observacoes"`
	DataAquisicao   string           `json:"data_aquisicao"`
	AnexoPedido     *string          `json:"anexo_pedido"`
	AnexoNotaFiscal *string          `json:"anexo_nota_fiscal"`
	AnexoBoleto     *string          `json:"anexo_boleto"`
}

// AtualizarStatusCompraRequest payload de PUT /compras/:id/status.
type AtualizarStatusCompraRequest struct {
	Status string `json:"status"`
}

// CompraResponse representação de uma compra.
type CompraResponse struct {
	ID                   string                   `json:"id"`
	FornecedorID         *string                  `json:"fornecedor_id"`
	CentroCustoID        *string                  `json:"centro_custo_id"`
	UsuarioSolicitanteID *string                  `json:"usuario_solicitante_id"`
	NumeroPedido         string                   `json:"numero_pedido"`
	Descricao            string                   `json:"descricao"`
	ValorTotal           decimal.Decimal          `json:"valor_total"`
	Status               string                   `json:"status"`
	DataSolicitacao      string                   `json:"data_solicitacao"`
	DataAquisicao        *string                  `json:"data_aquisicao"`
	AnexoPedido          string                   `json:"anexo_pedido,omitempty"`
	AnexoNotaFiscal      string                   `json:"anexo_nota_fiscal,omitempty"`
	AnexoBoleto          string                   `json:"anexo_boleto,omitempty"`
	Observacoes          string                   `json:"observacoes,omitempty"`
	Produtos             []ProdutoCompraResponse  `json:"produtos,omitempty"`
	Rateios              []RateioCompraResponse   `json:"rateios,omitempty"`
}

// ProdutoCompraResponse item de linha da compra.
type ProdutoCompraResponse struct {
	ID            string          `json:"id"`
	CompraID      string          `json:"compra_id"`
	Nome          string          `json:"nome"`
	Descricao     string          `json:"descricao,omitempty"`
	Quantidade    int             `json:"quantidade"`
	ValorUnitario decimal.Decimal `json:"valor_unitario"`
	ValorTotal    decimal.Decimal `json:"valor_total"`
}

// RateioCompraResponse rateio da compra.
type RateioCompraResponse struct {
	ID            string          `json:"id"`
	CompraID      string          `json:"compra_id"`
	CentroCustoID string          `json:"centro_custo_id"`
	Percentual    decimal.Decimal `json:"percentual"`
	Valor         decimal.Decimal `json:"valor"`
}

// NovaCompraResponse converte a entidade (com ou sem filhos carregados).
func NovaCompraResponse(c *entity.Compra) CompraResponse {
	resp := CompraResponse{
		ID:                   c.ID,
		FornecedorID:         c.FornecedorID,
		CentroCustoID:        c.CentroCustoID,
		UsuarioSolicitanteID: c.UsuarioSolicitanteID,
		NumeroPedido:         c.NumeroPedido,
		Descricao:            c.Descricao,
		ValorTotal:           c.ValorTotal,
		Status:               c.Status,
		DataSolicitacao:      c.DataSolicitacao.Format(time.RFC3339),
		DataAquisicao:        Data(c.DataAquisicao),
		AnexoPedido:          c.AnexoPedido,
		AnexoNotaFiscal:      c.AnexoNotaFiscal,
		AnexoBoleto:          c.AnexoBoleto,
		Observacoes:          c.Observacoes,
	}
	for i := range c.Produtos {
		p := &c.Produtos[i]
		resp.Produtos = append(resp.Produtos, ProdutoCompraResponse{
			ID: p.ID, CompraID: p.CompraID, Nome: p.Nome, Descricao: p.Descricao,
			Quantidade: p.Quantidade, ValorUnitario: p.ValorUnitario, ValorTotal: p.ValorTotal,
		})
	}
	for i := range c.Rateios {
		r := &c.Rateios[i]
		resp.Rateios = append(resp.Rateios, RateioCompraResponse{
			ID: r.ID, CompraID: r.CompraID, CentroCustoID: r.CentroCustoID,
			Percentual: r.Percentual, Valor: r.Valor,
		})
	}
	return resp
}
