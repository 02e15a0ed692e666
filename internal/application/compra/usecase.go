package compra

import (
	"context"
	"fmt"
	"time"

	"github.com/google/uuid"

	"github.com/gestaoti/gestao-ti-api/internal/application/dto"
	"github.com/gestaoti/gestao-ti-api/internal/domain"
	"github.com/gestaoti/gestao-ti-api/internal/domain/entity"
	"github.com/gestaoti/gestao-ti-api/internal/domain/numbering"
	"github.com/gestaoti/gestao-ti-api/internal/domain/repository"
)

// UseCase gerencia compras: criação transacional com numeração anual e
// coleções filhas, atualização e a regra derivada do status entregue.
type UseCase struct {
	txRunner   TxRunner
	compraRepo repository.CompraRepository
}

// NewUseCase constrói o caso de uso.
func NewUseCase(txRunner TxRunner, compraRepo repository.CompraRepository) *UseCase {
	return &UseCase{txRunner: txRunner, compraRepo: compraRepo}
}

// Criar registra uma compra com numero_pedido PED{ano}{seq:06d} alocado
// atomicamente, mais produtos e rateios, tudo na mesma transação.
func (uc *UseCase) Criar(ctx context.Context, in dto.CriarCompraRequest) (*entity.Compra, error) {
	if in.Descricao == "" {
		return nil, domain.ErrInvalidInput
	}

	agora := time.Now()
	nova := &entity.Compra{
		ID:              uuid.New().String(),
		Descricao:       in.Descricao,
		ValorTotal:      in.ValorTotal,
		Status:          entity.CompraSolicitada,
		DataSolicitacao: agora,
		Observacoes:     in.Observacoes,
	}
	if in.FornecedorID != "" {
		nova.FornecedorID = &in.FornecedorID
	}
	if in.CentroCustoID != "" {
		nova.CentroCustoID = &in.CentroCustoID
	}
	if in.UsuarioSolicitanteID != "" {
		nova.UsuarioSolicitanteID = &in.UsuarioSolicitanteID
	}

	err := uc.txRunner.Run(ctx, func(
		compraRepo repository.CompraRepository,
		seqRepo repository.SequenciaRepository,
	) error {
		seq, err := seqRepo.Proximo(numbering.EscopoPedido, agora.Year())
		if err != nil {
			return fmt.Errorf("alocar número do pedido: %w", err)
		}
		nova.NumeroPedido = numbering.NumeroPedido(agora.Year(), seq)

		if err := compraRepo.Create(nova); err != nil {
			return err
		}
		for _, p := range in.Produtos {
			produto := entity.ProdutoAdquirido{
				ID:            uuid.New().String(),
				CompraID:      nova.ID,
				Nome:          p.Nome,
				Descricao:     p.Descricao,
				Quantidade:    p.Quantidade,
				ValorUnitario: p.ValorUnitario,
				ValorTotal:    p.ValorTotal,
			}
			if err := compraRepo.CreateProduto(&produto); err != nil {
				return err
			}
			nova.Produtos = append(nova.Produtos, produto)
		}
		for _, r := range in.Rateios {
			rateio := entity.RateioCompra{
				ID:            uuid.New().String(),
				CompraID:      nova.ID,
				CentroCustoID: r.CentroCustoID,
				Percentual:    r.Percentual,
				Valor:         r.Valor,
			}
			if err := compraRepo.CreateRateio(&rateio); err != nil {
				return err
			}
			nova.Rateios = append(nova.Rateios, rateio)
		}
		return nil
	})
	if err != nil {
		return nil, err
	}
	return nova, nil
}

// Obter carrega a compra com produtos e rateios.
func (uc *UseCase) Obter(id string) (*entity.Compra, error) {
	c, err := uc.compraRepo.GetCompleta(id)
	if err != nil {
		return nil, err
	}
	if c == nil {
		return nil, domain.ErrNotFound
	}
	return c, nil
}

// Listar retorna compras, mais recentes primeiro, com filtro opcional de status.
func (uc *UseCase) Listar(status string) ([]*entity.Compra, error) {
	return uc.compraRepo.List(status)
}

// Atualizar altera campos da compra (parcial).
func (uc *UseCase) Atualizar(id string, in dto.AtualizarCompraRequest) (*entity.Compra, error) {
	c, err := uc.compraRepo.GetByID(id)
	if err != nil {
		return nil, err
	}
	if c == nil {
		return nil, domain.ErrNotFound
	}

	if in.FornecedorID != nil {
		c.FornecedorID = in.FornecedorID
	}
	if in.CentroCustoID != nil {
		c.CentroCustoID = in.CentroCustoID
	}
	if in.Descricao != nil {
		c.Descricao = *in.Descricao
	}
	if in.ValorTotal != nil {
		c.ValorTotal = *in.ValorTotal
	}
	if in.Status != nil {
		c.Status = *in.Status
	}
	if in.Observacoes != nil {
		c.Observacoes = *in.Observacoes
	}
	if in.AnexoPedido != nil {
		c.AnexoPedido = *in.AnexoPedido
	}
	if in.AnexoNotaFiscal != nil {
		c.AnexoNotaFiscal = *in.AnexoNotaFiscal
	}
	if in.AnexoBoleto != nil {
		c.AnexoBoleto = *in.AnexoBoleto
	}
	if in.DataAquisicao != "" {
		data, err := dto.ParseData(in.DataAquisicao)
		if err != nil {
			return nil, domain.ErrInvalidInput
		}
		c.DataAquisicao = data
	}

	if err := uc.compraRepo.Update(c); err != nil {
		return nil, err
	}
	return c, nil
}

// AtualizarStatus grava o novo status. O conjunto é aberto (o caller define
// o valor); a única regra derivada é: entregue carimba DataAquisicao com a
// data de hoje quando ainda não preenchida.
func (uc *UseCase) AtualizarStatus(id, status string) (*entity.Compra, error) {
	if status == "" {
		return nil, domain.ErrInvalidInput
	}
	c, err := uc.compraRepo.GetByID(id)
	if err != nil {
		return nil, err
	}
	if c == nil {
		return nil, domain.ErrNotFound
	}

	c.Status = status
	if status == entity.CompraEntregue && c.DataAquisicao == nil {
		agora := time.Now()
		hoje := time.Date(agora.Year(), agora.Month(), agora.Day(), 0, 0, 0, 0, agora.Location())
		c.DataAquisicao = &hoje
	}

	if err := uc.compraRepo.Update(c); err != nil {
		return nil, err
	}
	return c, nil
}
