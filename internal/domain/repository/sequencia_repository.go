package repository

// SequenciaRepository aloca o próximo valor de uma sequência anual.
// A alocação deve ser atômica mesmo sob chamadas concorrentes: dois callers
// no mesmo (escopo, ano) nunca recebem o mesmo valor. Usada dentro da mesma
// transação que insere a linha numerada, para que um rollback não deixe
// buracos visíveis de numeração no meio de uma criação falha.
type SequenciaRepository interface {
	Proximo(escopo string, ano int) (int, error)
}
