package entity

import "time"

// Fornecedor é dado mestre referenciado por compras, contas e inventário.
// CNPJ único quando informado; desativação lógica via Ativo.
type Fornecedor struct {
	ID                 string
	Nome               string
	CNPJ               string
	Email              string
	Telefone           string
	Endereco           string
	ContatoResponsavel string
	Ativo              bool
	DataCriacao        time.Time
}
