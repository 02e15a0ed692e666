package entity

import (
	"time"

	"github.com/shopspring/decimal"
)

// Status de compra mais usados. O conjunto é aberto: o caller pode gravar
// outros valores; a única regra derivada é o carimbo de DataAquisicao ao
// marcar como entregue.
const (
	CompraSolicitada  = "solicitado"
	CompraEmAndamento = "em_andamento"
	CompraEntregue    = "entregue"
)

// Compra representa um pedido de compra. NumeroPedido é único e sequencial
// por ano, no formato PED{ano}{seq:06d}. Produtos e rateios são coleções
// filhas de posse exclusiva (cascata na exclusão).
type Compra struct {
	ID                   string
	FornecedorID         *string
	CentroCustoID        *string
	UsuarioSolicitanteID *string
	NumeroPedido         string
	Descricao            string
	ValorTotal           decimal.Decimal
	Status               string
	DataSolicitacao      time.Time
	DataAquisicao        *time.Time
	AnexoPedido          string
	AnexoNotaFiscal      string
	AnexoBoleto          string
	Observacoes          string
	Produtos             []ProdutoAdquirido
	Rateios              []RateioCompra
}

// ProdutoAdquirido é um item de linha da compra. Não há invariante que
// obrigue a soma dos ValorTotal dos itens a bater com o total da compra.
type ProdutoAdquirido struct {
	ID            string
	CompraID      string
	Nome          string
	Descricao     string
	Quantidade    int
	ValorUnitario decimal.Decimal
	ValorTotal    decimal.Decimal
}

// RateioCompra divide o custo da compra entre centros de custo.
// Os percentuais não são validados contra 100%.
type RateioCompra struct {
	ID            string
	CompraID      string
	CentroCustoID string
	Percentual    decimal.Decimal
	Valor         decimal.Decimal
}
