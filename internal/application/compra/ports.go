package compra

import (
	"context"

	"github.com/gestaoti/gestao-ti-api/internal/domain/repository"
)

// TxRunner executa fn dentro de uma transação de BD. A criação de compra
// aloca o número do pedido e insere compra, produtos e rateios; a falha de
// qualquer inserção desfaz tudo.
type TxRunner interface {
	Run(ctx context.Context, fn func(
		compraRepo repository.CompraRepository,
		seqRepo repository.SequenciaRepository,
	) error) error
}
