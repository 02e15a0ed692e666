package postgres

import (
	"context"
	"fmt"

	"github.com/gestaoti/gestao-ti-api/internal/domain/repository"
)

var _ repository.SequenciaRepository = (*SequenciaRepo)(nil)

// SequenciaRepo aloca números sequenciais por (escopo, ano) sobre a tabela
// documento_sequencias. O upsert com RETURNING é atômico: dois callers
// concorrentes no mesmo escopo e ano nunca recebem o mesmo valor.
type SequenciaRepo struct {
	q Querier
}

// NewSequenciaRepository constrói o adaptador. Passar pool ou tx (Querier);
// dentro da tx, o rollback da criação devolve o número junto.
func NewSequenciaRepository(q Querier) *SequenciaRepo {
	return &SequenciaRepo{q: q}
}

// Proximo devolve o próximo valor da sequência, criando a linha no primeiro
// uso do (escopo, ano).
func (r *SequenciaRepo) Proximo(escopo string, ano int) (int, error) {
	query := `
		INSERT INTO documento_sequencias (escopo, ano, ultimo_valor)
		VALUES ($1, $2, 1)
		ON CONFLICT (escopo, ano)
		DO UPDATE SET ultimo_valor = documento_sequencias.ultimo_valor + 1
		RETURNING ultimo_valor`
	var valor int
	if err := r.q.QueryRow(context.Background(), query, escopo, ano).Scan(&valor); err != nil {
		return 0, fmt.Errorf("próximo valor da sequência %s/%d: %w", escopo, ano, err)
	}
	return valor, nil
}
