package entity

import (
	"time"

	"github.com/shopspring/decimal"
)

// Status possíveis de um ativo.
const (
	AtivoStatusAtivo   = "ativo"
	AtivoStatusInativo = "inativo"
)

// PercentualDepreciacaoPadrao é a taxa anual usada quando o cadastro não informa outra.
var PercentualDepreciacaoPadrao = decimal.NewFromInt(30)

// Ativo representa um ativo de TI (equipamento, licença, etc).
// ValorAtual nunca é persistido: é recalculado a cada leitura a partir de
// ValorAquisicao, DataAquisicao e PercentualDepreciacao, de modo que alterar
// a taxa muda retroativamente todos os valores reportados.
type Ativo struct {
	ID                    string
	TipoAtivo             string
	Nome                  string
	Descricao             string
	NumeroSerie           string
	Localizacao           string
	ResponsavelID         *string
	CentroCustoID         *string
	DataAquisicao         *time.Time
	ValorAquisicao        *decimal.Decimal
	PercentualDepreciacao decimal.Decimal
	DataVencimentoLicenca *time.Time
	Status                string
	DataCriacao           time.Time
	DataAtualizacao       time.Time
}

// CalcularValorAtual aplica depreciação linear sobre o valor de aquisição.
// Anos decorridos são anos-calendário inteiros (fração truncada). O valor
// depreciado é limitado ao valor de aquisição, então o resultado nunca é
// negativo.
func (a *Ativo) CalcularValorAtual(hoje time.Time) decimal.Decimal {
	if a.ValorAquisicao == nil {
		return decimal.Zero
	}
	if a.DataAquisicao == nil {
		return *a.ValorAquisicao
	}

	anos := anosCompletos(*a.DataAquisicao, hoje)
	if anos <= 0 {
		return *a.ValorAquisicao
	}

	taxa := a.PercentualDepreciacao.Div(decimal.NewFromInt(100))
	depreciado := a.ValorAquisicao.Mul(taxa).Mul(decimal.NewFromInt(int64(anos)))
	if depreciado.GreaterThan(*a.ValorAquisicao) {
		depreciado = *a.ValorAquisicao
	}
	return a.ValorAquisicao.Sub(depreciado)
}

// LicencaVencendo indica se a licença vence até a data limite (ativos ativos).
func (a *Ativo) LicencaVencendo(limite time.Time) bool {
	if a.DataVencimentoLicenca == nil || a.Status != AtivoStatusAtivo {
		return false
	}
	return !a.DataVencimentoLicenca.After(limite)
}

// anosCompletos conta anos-calendário inteiros entre duas datas,
// descontando um ano quando o aniversário ainda não chegou.
func anosCompletos(de, ate time.Time) int {
	anos := ate.Year() - de.Year()
	if ate.Month() < de.Month() || (ate.Month() == de.Month() && ate.Day() < de.Day()) {
		anos--
	}
	return anos
}
