package chamado

import (
	"context"

	"github.com/gestaoti/gestao-ti-api/internal/domain/repository"
)

// TxRunner executa fn dentro de uma transação de BD, com repositórios
// atados à transação. Toda transição de chamado grava o chamado e a entrada
// de histórico atomicamente; a criação inclui ainda a alocação do número.
type TxRunner interface {
	Run(ctx context.Context, fn func(
		chamadoRepo repository.ChamadoRepository,
		historicoRepo repository.HistoricoChamadoRepository,
		seqRepo repository.SequenciaRepository,
	) error) error
}
