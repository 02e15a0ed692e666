package inventario

import (
	"context"
	"time"

	"github.com/google/uuid"

	"github.com/gestaoti/gestao-ti-api/internal/application/dto"
	"github.com/gestaoti/gestao-ti-api/internal/domain"
	"github.com/gestaoti/gestao-ti-api/internal/domain/entity"
	"github.com/gestaoti/gestao-ti-api/internal/domain/repository"
)

// UseCase gerencia itens de inventário e aplica movimentações de estoque
// de forma transacional, com bloqueio de linha (SELECT FOR UPDATE).
type UseCase struct {
	txRunner TxRunner
	itemRepo repository.InventarioRepository
	movRepo  repository.MovimentacaoRepository
}

// NewUseCase constrói o caso de uso.
func NewUseCase(txRunner TxRunner, itemRepo repository.InventarioRepository, movRepo repository.MovimentacaoRepository) *UseCase {
	return &UseCase{txRunner: txRunner, itemRepo: itemRepo, movRepo: movRepo}
}

// Criar cadastra um item de inventário.
func (uc *UseCase) Criar(in dto.CriarItemInventarioRequest) (*entity.ItemInventario, error) {
	if in.TipoItem == "" || in.Nome == "" {
		return nil, domain.ErrInvalidInput
	}
	if in.Quantidade < 0 || in.QuantidadeMinima < 0 {
		return nil, domain.ErrInvalidInput
	}
	vencimento, err := dto.ParseData(in.DataVencimentoLicenca)
	if err != nil {
		return nil, domain.ErrInvalidInput
	}

	agora := time.Now()
	item := &entity.ItemInventario{
		ID:                    uuid.New().String(),
		TipoItem:              in.TipoItem,
		Nome:                  in.Nome,
		Descricao:             in.Descricao,
		Quantidade:            in.Quantidade,
		QuantidadeMinima:      in.QuantidadeMinima,
		Localizacao:           in.Localizacao,
		CentroCustoID:         in.CentroCustoID,
		FornecedorID:          in.FornecedorID,
		ValorUnitario:         in.ValorUnitario,
		DataVencimentoLicenca: vencimento,
		Observacoes:           in.Observacoes,
		DataCriacao:           agora,
		DataAtualizacao:       agora,
	}
	if err := uc.itemRepo.Create(item); err != nil {
		return nil, err
	}
	return item, nil
}

// Movimentar aplica uma movimentação de estoque:
//   - entrada: quantidade atual + quantidade
//   - saida:   quantidade atual − quantidade (rejeitada antes de qualquer
//     mutação se o resultado ficaria negativo)
//   - ajuste:  define a quantidade absoluta
//
// Item e movimentação são gravados na mesma transação, com a linha do item
// bloqueada durante o cálculo.
func (uc *UseCase) Movimentar(ctx context.Context, itemID string, in dto.MovimentarInventarioRequest) (*entity.ItemInventario, *entity.MovimentacaoInventario, error) {
	if !entity.TipoMovimentacaoValido(in.TipoMovimentacao) {
		return nil, nil, domain.ErrInvalidInput
	}
	if in.UsuarioID == "" || in.Quantidade < 0 {
		return nil, nil, domain.ErrInvalidInput
	}

	var (
		item *entity.ItemInventario
		mov  *entity.MovimentacaoInventario
	)
	err := uc.txRunner.Run(ctx, func(
		itemRepo repository.InventarioRepository,
		movRepo repository.MovimentacaoRepository,
	) error {
		atual, err := itemRepo.GetForUpdate(itemID)
		if err != nil {
			return err
		}
		if atual == nil {
			return domain.ErrNotFound
		}

		anterior := atual.Quantidade
		var nova int
		switch in.TipoMovimentacao {
		case entity.MovimentacaoEntrada:
			nova = anterior + in.Quantidade
		case entity.MovimentacaoSaida:
			nova = anterior - in.Quantidade
			if nova < 0 {
				return domain.ErrEstoqueInsuficiente
			}
		case entity.MovimentacaoAjuste:
			nova = in.Quantidade
		}

		agora := time.Now()
		atual.Quantidade = nova
		atual.DataAtualizacao = agora
		if err := itemRepo.Update(atual); err != nil {
			return err
		}

		registro := &entity.MovimentacaoInventario{
			ID:                 uuid.New().String(),
			InventarioID:       atual.ID,
			UsuarioID:          in.UsuarioID,
			TipoMovimentacao:   in.TipoMovimentacao,
			Quantidade:         in.Quantidade,
			QuantidadeAnterior: anterior,
			QuantidadeNova:     nova,
			Motivo:             in.Motivo,
			DataMovimentacao:   agora,
		}
		if err := movRepo.Append(registro); err != nil {
			return err
		}
		item, mov = atual, registro
		return nil
	})
	if err != nil {
		return nil, nil, err
	}
	return item, mov, nil
}

// Obter carrega um item com suas movimentações.
func (uc *UseCase) Obter(itemID string) (*entity.ItemInventario, []*entity.MovimentacaoInventario, error) {
	item, err := uc.itemRepo.GetByID(itemID)
	if err != nil {
		return nil, nil, err
	}
	if item == nil {
		return nil, nil, domain.ErrNotFound
	}
	movs, err := uc.movRepo.ListByItem(itemID)
	if err != nil {
		return nil, nil, err
	}
	return item, movs, nil
}

// Atualizar altera dados cadastrais do item. A quantidade em estoque não
// muda por aqui; apenas via Movimentar.
func (uc *UseCase) Atualizar(itemID string, in dto.AtualizarItemInventarioRequest) (*entity.ItemInventario, error) {
	item, err := uc.itemRepo.GetByID(itemID)
	if err != nil {
		return nil, err
	}
	if item == nil {
		return nil, domain.ErrNotFound
	}

	if in.TipoItem != nil {
		item.TipoItem = *in.TipoItem
	}
	if in.Nome != nil {
		item.Nome = *in.Nome
	}
	if in.Descricao != nil {
		item.Descricao = *in.Descricao
	}
	if in.QuantidadeMinima != nil {
		if *in.QuantidadeMinima < 0 {
			return nil, domain.ErrInvalidInput
		}
		item.QuantidadeMinima = *in.QuantidadeMinima
	}
	if in.Localizacao != nil {
		item.Localizacao = *in.Localizacao
	}
	if in.CentroCustoID != nil {
		item.CentroCustoID = in.CentroCustoID
	}
	if in.FornecedorID != nil {
		item.FornecedorID = in.FornecedorID
	}
	if in.ValorUnitario != nil {
		item.ValorUnitario = in.ValorUnitario
	}
	if in.Observacoes != nil {
		item.Observacoes = *in.Observacoes
	}
	if in.DataVencimentoLicenca != "" {
		vencimento, err := dto.ParseData(in.DataVencimentoLicenca)
		if err != nil {
			return nil, domain.ErrInvalidInput
		}
		item.DataVencimentoLicenca = vencimento
	}

	item.DataAtualizacao = time.Now()
	if err := uc.itemRepo.Update(item); err != nil {
		return nil, err
	}
	return item, nil
}

// Listar retorna itens filtrados por tipo; com somenteEstoqueBaixo, aplica o
// predicado quantidade <= mínimo item a item (avaliado agora, nunca armazenado).
func (uc *UseCase) Listar(tipoItem string, somenteEstoqueBaixo bool) ([]*entity.ItemInventario, error) {
	itens, err := uc.itemRepo.List(tipoItem)
	if err != nil {
		return nil, err
	}
	if !somenteEstoqueBaixo {
		return itens, nil
	}
	var baixos []*entity.ItemInventario
	for _, item := range itens {
		if item.EstoqueBaixo() {
			baixos = append(baixos, item)
		}
	}
	return baixos, nil
}

// ContarEstoqueBaixo varre todos os itens e conta os abaixo do mínimo.
// Usado pelo dashboard; recomputado a cada chamada.
func (uc *UseCase) ContarEstoqueBaixo() (int, error) {
	itens, err := uc.itemRepo.List("")
	if err != nil {
		return 0, err
	}
	total := 0
	for _, item := range itens {
		if item.EstoqueBaixo() {
			total++
		}
	}
	return total, nil
}
