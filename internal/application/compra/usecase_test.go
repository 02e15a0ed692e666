package compra_test

import (
	"context"
	"errors"
	"fmt"
	"testing"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	appcompra "github.com/gestaoti/gestao-ti-api/internal/application/compra"
	"github.com/gestaoti/gestao-ti-api/internal/application/dto"
	"github.com/gestaoti/gestao-ti-api/internal/domain"
	"github.com/gestaoti/gestao-ti-api/internal/domain/entity"
	"github.com/gestaoti/gestao-ti-api/internal/domain/repository"
)

// ──────────────────────────────────────────────────────────────────────────────
// Fakes em memória (com rollback simulado no TxRunner)
// ──────────────────────────────────────────────────────────────────────────────

type compraRepoFake struct {
	compras  map[string]*entity.Compra
	produtos []entity.ProdutoAdquirido
	rateios  []entity.RateioCompra

	falharProdutoApos int // >0: CreateProduto falha após N inserções
}

func (r *compraRepoFake) Create(c *entity.Compra) error {
	cp := *c
	cp.Produtos, cp.Rateios = nil, nil
	r.compras[c.ID] = &cp
	return nil
}

func (r *compraRepoFake) CreateProduto(p *entity.ProdutoAdquirido) error {
	if r.falharProdutoApos > 0 && len(r.produtos) >= r.falharProdutoApos {
		return errors.New("violação de constraint")
	}
	r.produtos = append(r.produtos, *p)
	return nil
}

func (r *compraRepoFake) CreateRateio(x *entity.RateioCompra) error {
	r.rateios = append(r.rateios, *x)
	return nil
}

func (r *compraRepoFake) GetByID(id string) (*entity.Compra, error) {
	c, ok := r.compras[id]
	if !ok {
		return nil, nil
	}
	cp := *c
	return &cp, nil
}

func (r *compraRepoFake) GetCompleta(id string) (*entity.Compra, error) {
	c, err := r.GetByID(id)
	if c == nil || err != nil {
		return c, err
	}
	for _, p := range r.produtos {
		if p.CompraID == id {
			c.Produtos = append(c.Produtos, p)
		}
	}
	for _, x := range r.rateios {
		if x.CompraID == id {
			c.Rateios = append(c.Rateios, x)
		}
	}
	return c, nil
}

func (r *compraRepoFake) Update(c *entity.Compra) error {
	cp := *c
	cp.Produtos, cp.Rateios = nil, nil
	r.compras[c.ID] = &cp
	return nil
}

func (r *compraRepoFake) List(status string) ([]*entity.Compra, error) {
	var out []*entity.Compra
	for _, c := range r.compras {
		if status == "" || c.Status == status {
			out = append(out, c)
		}
	}
	return out, nil
}

type seqRepoFake struct {
	valores map[string]int
}

func (r *seqRepoFake) Proximo(escopo string, ano int) (int, error) {
	chave := fmt.Sprintf("%s:%d", escopo, ano)
	r.valores[chave]++
	return r.valores[chave], nil
}

// txRunnerFake desfaz as escritas do fake quando fn retorna erro, imitando o
// rollback da transação real.
type txRunnerFake struct {
	compras *compraRepoFake
	seq     *seqRepoFake
}

func (t *txRunnerFake) Run(_ context.Context, fn func(
	repository.CompraRepository,
	repository.SequenciaRepository,
) error) error {
	antesCompras := make(map[string]*entity.Compra, len(t.compras.compras))
	for k, v := range t.compras.compras {
		antesCompras[k] = v
	}
	antesProdutos := len(t.compras.produtos)
	antesRateios := len(t.compras.rateios)

	if err := fn(t.compras, t.seq); err != nil {
		t.compras.compras = antesCompras
		t.compras.produtos = t.compras.produtos[:antesProdutos]
		t.compras.rateios = t.compras.rateios[:antesRateios]
		return err
	}
	return nil
}

func novoAmbiente() (*appcompra.UseCase, *compraRepoFake) {
	compras := &compraRepoFake{compras: map[string]*entity.Compra{}}
	seq := &seqRepoFake{valores: map[string]int{}}
	return appcompra.NewUseCase(&txRunnerFake{compras: compras, seq: seq}, compras), compras
}

// ──────────────────────────────────────────────────────────────────────────────
// Testes
// ──────────────────────────────────────────────────────────────────────────────

func TestCriar_NumeroPedidoEFilhos(t *testing.T) {
	uc, _ := novoAmbiente()

	c, err := uc.Criar(context.Background(), dto.CriarCompraRequest{
		FornecedorID:  "for-1",
		CentroCustoID: "cc-1",
		Descricao:     "Notebooks para o laboratório",
		ValorTotal:    decimal.NewFromInt(15000),
		Produtos: []dto.ProdutoCompraRequest{
			{Nome: "Notebook", Quantidade: 3, ValorUnitario: decimal.NewFromInt(5000), ValorTotal: decimal.NewFromInt(15000)},
		},
		Rateios: []dto.RateioCompraRequest{
			{CentroCustoID: "cc-1", Percentual: decimal.NewFromInt(60), Valor: decimal.NewFromInt(9000)},
			{CentroCustoID: "cc-2", Percentual: decimal.NewFromInt(40), Valor: decimal.NewFromInt(6000)},
		},
	})
	require.NoError(t, err)

	assert.Regexp(t, `^PED\d{4}000001$`, c.NumeroPedido)
	assert.Equal(t, entity.CompraSolicitada, c.Status)
	assert.Len(t, c.Produtos, 1)
	assert.Len(t, c.Rateios, 2)

	completa, err := uc.Obter(c.ID)
	require.NoError(t, err)
	assert.Len(t, completa.Produtos, 1)
	assert.Len(t, completa.Rateios, 2)
}

func TestCriar_NumerosSequenciais(t *testing.T) {
	uc, _ := novoAmbiente()
	ctx := context.Background()

	var numeros []string
	for i := 0; i < 3; i++ {
		c, err := uc.Criar(ctx, dto.CriarCompraRequest{Descricao: "compra", ValorTotal: decimal.NewFromInt(1)})
		require.NoError(t, err)
		numeros = append(numeros, c.NumeroPedido)
	}
	assert.NotEqual(t, numeros[0], numeros[1])
	assert.NotEqual(t, numeros[1], numeros[2])
	assert.Less(t, numeros[0], numeros[1], "números crescem em ordem de criação")
}

func TestCriar_FalhaDeFilhoDesfazTudo(t *testing.T) {
	uc, repo := novoAmbiente()
	repo.falharProdutoApos = 1

	_, err := uc.Criar(context.Background(), dto.CriarCompraRequest{
		Descricao:  "compra com dois produtos",
		ValorTotal: decimal.NewFromInt(100),
		Produtos: []dto.ProdutoCompraRequest{
			{Nome: "Item A", Quantidade: 1, ValorUnitario: decimal.NewFromInt(50), ValorTotal: decimal.NewFromInt(50)},
			{Nome: "Item B", Quantidade: 1, ValorUnitario: decimal.NewFromInt(50), ValorTotal: decimal.NewFromInt(50)},
		},
	})
	require.Error(t, err)

	assert.Empty(t, repo.compras, "a compra não pode sobrar depois do rollback")
	assert.Empty(t, repo.produtos, "os produtos inseridos antes da falha são desfeitos")
}

func TestAtualizarStatus_EntregueCarimbaAquisicao(t *testing.T) {
	uc, _ := novoAmbiente()
	ctx := context.Background()

	c, err := uc.Criar(ctx, dto.CriarCompraRequest{Descricao: "monitores", ValorTotal: decimal.NewFromInt(900)})
	require.NoError(t, err)
	require.Nil(t, c.DataAquisicao)

	c, err = uc.AtualizarStatus(c.ID, entity.CompraEntregue)
	require.NoError(t, err)
	require.NotNil(t, c.DataAquisicao, "entregue carimba data_aquisicao")
	primeira := *c.DataAquisicao

	// novo "entregue" não sobrescreve a data já carimbada
	c, err = uc.AtualizarStatus(c.ID, entity.CompraEntregue)
	require.NoError(t, err)
	assert.Equal(t, primeira, *c.DataAquisicao)
}

func TestAtualizarStatus_StatusLivre(t *testing.T) {
	uc, _ := novoAmbiente()

	c, err := uc.Criar(context.Background(), dto.CriarCompraRequest{Descricao: "cabos", ValorTotal: decimal.NewFromInt(10)})
	require.NoError(t, err)

	c, err = uc.AtualizarStatus(c.ID, "aguardando_nota")
	require.NoError(t, err)
	assert.Equal(t, "aguardando_nota", c.Status)
	assert.Nil(t, c.DataAquisicao, "status diferente de entregue não carimba aquisição")
}

func TestAtualizarStatus_CompraInexistente(t *testing.T) {
	uc, _ := novoAmbiente()

	_, err := uc.AtualizarStatus("nao-existe", entity.CompraEntregue)
	assert.ErrorIs(t, err, domain.ErrNotFound)
}
