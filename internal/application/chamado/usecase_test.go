package chamado_test

import (
	"context"
	"fmt"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	appchamado "github.com/gestaoti/gestao-ti-api/internal/application/chamado"
	"github.com/gestaoti/gestao-ti-api/internal/application/dto"
	"github.com/gestaoti/gestao-ti-api/internal/domain"
	"github.com/gestaoti/gestao-ti-api/internal/domain/entity"
	"github.com/gestaoti/gestao-ti-api/internal/domain/repository"
)

// ──────────────────────────────────────────────────────────────────────────────
// Fakes em memória
// ──────────────────────────────────────────────────────────────────────────────

type chamadoRepoFake struct {
	chamados map[string]*entity.Chamado
}

func (r *chamadoRepoFake) Create(c *entity.Chamado) error {
	cp := *c
	r.chamados[c.ID] = &cp
	return nil
}

func (r *chamadoRepoFake) GetByID(id string) (*entity.Chamado, error) {
	c, ok := r.chamados[id]
	if !ok {
		return nil, nil
	}
	cp := *c
	return &cp, nil
}

func (r *chamadoRepoFake) Update(c *entity.Chamado) error {
	cp := *c
	r.chamados[c.ID] = &cp
	return nil
}

func (r *chamadoRepoFake) List(_ repository.ChamadoFiltro) ([]*entity.Chamado, error) {
	var out []*entity.Chamado
	for _, c := range r.chamados {
		out = append(out, c)
	}
	return out, nil
}

type historicoRepoFake struct {
	entradas []*entity.HistoricoChamado
}

func (r *historicoRepoFake) Append(h *entity.HistoricoChamado) error {
	cp := *h
	r.entradas = append(r.entradas, &cp)
	return nil
}

func (r *historicoRepoFake) ListByChamado(chamadoID string) ([]*entity.HistoricoChamado, error) {
	var out []*entity.HistoricoChamado
	for _, h := range r.entradas {
		if h.ChamadoID == chamadoID {
			out = append(out, h)
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

// txRunnerFake executa fn diretamente com os repositórios em memória;
// sem transação real, suficiente para exercitar o caso de uso.
type txRunnerFake struct {
	chamados  *chamadoRepoFake
	historico *historicoRepoFake
	seq       *seqRepoFake
}

func (t *txRunnerFake) Run(_ context.Context, fn func(
	repository.ChamadoRepository,
	repository.HistoricoChamadoRepository,
	repository.SequenciaRepository,
) error) error {
	return fn(t.chamados, t.historico, t.seq)
}

func novoAmbiente() (*appchamado.UseCase, *chamadoRepoFake, *historicoRepoFake) {
	chamados := &chamadoRepoFake{chamados: map[string]*entity.Chamado{}}
	historico := &historicoRepoFake{}
	seq := &seqRepoFake{valores: map[string]int{}}
	runner := &txRunnerFake{chamados: chamados, historico: historico, seq: seq}
	return appchamado.NewUseCase(runner, chamados, historico), chamados, historico
}

func criarChamado(t *testing.T, uc *appchamado.UseCase) *entity.Chamado {
	t.Helper()
	c, err := uc.Criar(context.Background(), dto.CriarChamadoRequest{
		Titulo:        "Notebook não liga",
		Descricao:     "Equipamento da recepção sem vídeo",
		SolicitanteID: "usr-1",
		Prioridade:    entity.PrioridadeAlta,
	})
	require.NoError(t, err)
	return c
}

// ──────────────────────────────────────────────────────────────────────────────
// Testes
// ──────────────────────────────────────────────────────────────────────────────

func TestCriar_GeraNumeroEHistoricoInicial(t *testing.T) {
	uc, _, historico := novoAmbiente()

	c := criarChamado(t, uc)

	assert.Equal(t, entity.ChamadoAberto, c.Status)
	assert.Regexp(t, `^\d{4}-000001$`, c.NumeroChamado)

	require.Len(t, historico.entradas, 1, "a criação grava exatamente uma entrada de histórico")
	h := historico.entradas[0]
	assert.Equal(t, "Chamado criado", h.Acao)
	assert.Empty(t, h.StatusAnterior)
	assert.Equal(t, entity.ChamadoAberto, h.StatusNovo)
}

func TestCriar_NumerosSequenciaisDistintos(t *testing.T) {
	uc, _, _ := novoAmbiente()

	vistos := map[string]bool{}
	for i := 0; i < 5; i++ {
		c := criarChamado(t, uc)
		assert.False(t, vistos[c.NumeroChamado], "número repetido: %s", c.NumeroChamado)
		vistos[c.NumeroChamado] = true
	}
}

func TestCriar_ValidaEntrada(t *testing.T) {
	uc, _, _ := novoAmbiente()

	_, err := uc.Criar(context.Background(), dto.CriarChamadoRequest{
		Titulo: "sem descrição", SolicitanteID: "usr-1", Prioridade: entity.PrioridadeBaixa,
	})
	assert.ErrorIs(t, err, domain.ErrInvalidInput)

	_, err = uc.Criar(context.Background(), dto.CriarChamadoRequest{
		Titulo: "t", Descricao: "d", SolicitanteID: "usr-1", Prioridade: "altissima",
	})
	assert.ErrorIs(t, err, domain.ErrInvalidInput, "prioridade fora do enum é rejeitada")
}

func TestCicloCompleto_HistoricoEncadeado(t *testing.T) {
	uc, _, historico := novoAmbiente()
	ctx := context.Background()

	c := criarChamado(t, uc)

	c, err := uc.Atribuir(ctx, c.ID, dto.AtribuirChamadoRequest{TecnicoID: "tec-1", UsuarioAtribuidorID: "adm-1"})
	require.NoError(t, err)
	assert.Equal(t, entity.ChamadoEmAndamento, c.Status)
	require.NotNil(t, c.TecnicoAtribuidoID)
	assert.Equal(t, "tec-1", *c.TecnicoAtribuidoID)
	assert.NotNil(t, c.DataAtribuicao)

	c, err = uc.Resolver(ctx, c.ID, dto.ResolverChamadoRequest{UsuarioID: "tec-1", Solucao: "Troca da fonte"})
	require.NoError(t, err)
	assert.Equal(t, entity.ChamadoResolvido, c.Status)
	assert.NotNil(t, c.DataResolucao)

	c, err = uc.Fechar(ctx, c.ID, dto.FecharChamadoRequest{UsuarioID: "adm-1"})
	require.NoError(t, err)
	assert.Equal(t, entity.ChamadoFechado, c.Status)
	assert.NotNil(t, c.DataFechamento)

	// Cada transição gravou exatamente uma entrada e o status_anterior de
	// cada entrada é o status do chamado imediatamente antes da chamada.
	require.Len(t, historico.entradas, 4)
	esperado := []struct{ anterior, novo string }{
		{"", entity.ChamadoAberto},
		{entity.ChamadoAberto, entity.ChamadoEmAndamento},
		{entity.ChamadoEmAndamento, entity.ChamadoResolvido},
		{entity.ChamadoResolvido, entity.ChamadoFechado},
	}
	for i, e := range esperado {
		assert.Equal(t, e.anterior, historico.entradas[i].StatusAnterior, "entrada %d", i)
		assert.Equal(t, e.novo, historico.entradas[i].StatusNovo, "entrada %d", i)
	}
}

func TestFechar_ChamadoAbertoEhRejeitado(t *testing.T) {
	uc, _, historico := novoAmbiente()

	c := criarChamado(t, uc)

	_, err := uc.Fechar(context.Background(), c.ID, dto.FecharChamadoRequest{UsuarioID: "adm-1"})
	assert.ErrorIs(t, err, domain.ErrTransicaoInvalida)
	assert.Len(t, historico.entradas, 1, "transição rejeitada não grava histórico")
}

func TestResolver_SemSolucaoEhRejeitado(t *testing.T) {
	uc, _, _ := novoAmbiente()

	c := criarChamado(t, uc)

	_, err := uc.Resolver(context.Background(), c.ID, dto.ResolverChamadoRequest{UsuarioID: "tec-1"})
	assert.ErrorIs(t, err, domain.ErrInvalidInput)
}

func TestTransicao_ChamadoInexistente(t *testing.T) {
	uc, _, _ := novoAmbiente()

	_, err := uc.Atribuir(context.Background(), "nao-existe", dto.AtribuirChamadoRequest{
		TecnicoID: "tec-1", UsuarioAtribuidorID: "adm-1",
	})
	assert.ErrorIs(t, err, domain.ErrNotFound)
}
