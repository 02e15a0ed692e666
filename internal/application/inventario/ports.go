package inventario

import (
	"context"

	"github.com/gestaoti/gestao-ti-api/internal/domain/repository"
)

// TxRunner executa fn dentro de uma transação de BD. A atualização da
// quantidade do item e o append da movimentação devem comitar juntos ou
// nenhum dos dois.
type TxRunner interface {
	Run(ctx context.Context, fn func(
		itemRepo repository.InventarioRepository,
		movRepo repository.MovimentacaoRepository,
	) error) error
}
