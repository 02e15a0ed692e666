package entity

import "time"

// CentroCusto é dado mestre para rateio de compras e contas mensais.
// Código único; desativação lógica via Ativo.
type CentroCusto struct {
	ID          string
	Codigo      string
	Nome        string
	Descricao   string
	Ativo       bool
	DataCriacao time.Time
}
