package entity

import (
	"time"

	"github.com/shopspring/decimal"
)

// Status de pagamento de conta mensal. Não existe operação de estorno:
// uma conta paga não volta a pendente.
const (
	ContaPendente = "pendente"
	ContaPaga     = "pago"
)

// ContaMensal representa uma conta recorrente (energia, link, licença...).
type ContaMensal struct {
	ID              string
	TipoConta       string
	FornecedorID    *string
	CentroCustoID   *string
	Valor           decimal.Decimal
	DataVencimento  time.Time
	StatusPagamento string
	Recorrencia     string
	DataContratacao *time.Time
	Descricao       string
	AnexoContrato   string
	DataCriacao     time.Time
	DataPagamento   *time.Time
}

// Vencida é derivada a cada leitura: vencimento no passado e ainda pendente.
// Uma conta paga nunca é considerada vencida, independente da data.
func (c *ContaMensal) Vencida(hoje time.Time) bool {
	return c.DataVencimento.Before(hoje) && c.StatusPagamento == ContaPendente
}
