// Package numbering formata os identificadores sequenciais legíveis do
// sistema. A alocação da sequência em si é atômica e fica no repositório
// de sequências; aqui só há formatação pura.
package numbering

import "fmt"

// Escopos de sequência (chave da tabela documento_sequencias junto com o ano).
const (
	EscopoChamado = "chamado"
	EscopoPedido  = "pedido"
)

// NumeroChamado formata {ano}-{seq:06d}, ex: 2026-000042.
func NumeroChamado(ano, seq int) string {
	return fmt.Sprintf("%d-%06d", ano, seq)
}

// NumeroPedido formata PED{ano}{seq:06d}, ex: PED2026000007.
func NumeroPedido(ano, seq int) string {
	return fmt.Sprintf("PED%d%06d", ano, seq)
}
