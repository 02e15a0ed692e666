package entity

import (
	"time"

	"github.com/shopspring/decimal"
)

// Tipos de movimentação de inventário.
const (
	MovimentacaoEntrada = "entrada" // soma quantidade
	MovimentacaoSaida   = "saida"   // subtrai quantidade
	MovimentacaoAjuste  = "ajuste"  // define quantidade absoluta
)

// TipoMovimentacaoValido valida o enum de movimentação.
func TipoMovimentacaoValido(t string) bool {
	switch t {
	case MovimentacaoEntrada, MovimentacaoSaida, MovimentacaoAjuste:
		return true
	}
	return false
}

// ItemInventario representa um item de estoque. Quantidade nunca fica
// negativa: saídas que ultrapassariam o estoque são rejeitadas antes de
// qualquer mutação.
type ItemInventario struct {
	ID                    string
	TipoItem              string
	Nome                  string
	Descricao             string
	Quantidade            int
	QuantidadeMinima      int
	Localizacao           string
	CentroCustoID         *string
	FornecedorID          *string
	ValorUnitario         *decimal.Decimal
	DataVencimentoLicenca *time.Time
	Observacoes           string
	DataCriacao           time.Time
	DataAtualizacao       time.Time
}

// EstoqueBaixo indica estoque no mínimo ou abaixo dele. Avaliado sob
// demanda, nunca armazenado.
func (i *ItemInventario) EstoqueBaixo() bool {
	return i.Quantidade <= i.QuantidadeMinima
}

// MovimentacaoInventario registra uma mutação de estoque com as quantidades
// antes e depois. O log é append-only: reaplicar as movimentações a partir
// de zero reproduz a quantidade atual do item.
type MovimentacaoInventario struct {
	ID                 string
	InventarioID       string
	UsuarioID          string
	TipoMovimentacao   string
	Quantidade         int
	QuantidadeAnterior int
	QuantidadeNova     int
	Motivo             string
	DataMovimentacao   time.Time
}
