package chamado

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

// UseCase implementa o ciclo de vida de chamados: criação com numeração
// anual atômica e as transições atribuir/resolver/fechar, cada uma gravando
// exatamente uma entrada de histórico na mesma transação.
type UseCase struct {
	txRunner      TxRunner
	chamadoRepo   repository.ChamadoRepository
	historicoRepo repository.HistoricoChamadoRepository
}

// NewUseCase constrói o caso de uso.
func NewUseCase(txRunner TxRunner, chamadoRepo repository.ChamadoRepository, historicoRepo repository.HistoricoChamadoRepository) *UseCase {
	return &UseCase{txRunner: txRunner, chamadoRepo: chamadoRepo, historicoRepo: historicoRepo}
}

// Criar abre um chamado: aloca o número sequencial do ano dentro da mesma
// transação que insere o chamado e o histórico inicial.
func (uc *UseCase) Criar(ctx context.Context, in dto.CriarChamadoRequest) (*entity.Chamado, error) {
	if in.Titulo == "" || in.Descricao == "" || in.SolicitanteID == "" {
		return nil, domain.ErrInvalidInput
	}
	if !entity.PrioridadeValida(in.Prioridade) {
		return nil, domain.ErrInvalidInput
	}

	agora := time.Now()
	novo := &entity.Chamado{
		ID:             uuid.New().String(),
		Titulo:         in.Titulo,
		Descricao:      in.Descricao,
		SolicitanteID:  in.SolicitanteID,
		Prioridade:     in.Prioridade,
		Status:         entity.ChamadoAberto,
		Categoria:      in.Categoria,
		AnexoEvidencia: in.AnexoEvidencia,
		DataAbertura:   agora,
	}

	err := uc.txRunner.Run(ctx, func(
		chamadoRepo repository.ChamadoRepository,
		historicoRepo repository.HistoricoChamadoRepository,
		seqRepo repository.SequenciaRepository,
	) error {
		seq, err := seqRepo.Proximo(numbering.EscopoChamado, agora.Year())
		if err != nil {
			return fmt.Errorf("alocar número do chamado: %w", err)
		}
		novo.NumeroChamado = numbering.NumeroChamado(agora.Year(), seq)

		if err := chamadoRepo.Create(novo); err != nil {
			return err
		}
		return historicoRepo.Append(&entity.HistoricoChamado{
			ID:         uuid.New().String(),
			ChamadoID:  novo.ID,
			UsuarioID:  in.SolicitanteID,
			Acao:       "Chamado criado",
			Descricao:  "Chamado aberto pelo solicitante",
			StatusNovo: entity.ChamadoAberto,
			DataAcao:   agora,
		})
	})
	if err != nil {
		return nil, err
	}
	return novo, nil
}

// Atribuir coloca o chamado em andamento no técnico indicado.
func (uc *UseCase) Atribuir(ctx context.Context, chamadoID string, in dto.AtribuirChamadoRequest) (*entity.Chamado, error) {
	if in.TecnicoID == "" || in.UsuarioAtribuidorID == "" {
		return nil, domain.ErrInvalidInput
	}
	agora := time.Now()
	return uc.transicionar(ctx, chamadoID, entity.ChamadoEmAndamento, func(c *entity.Chamado) *entity.HistoricoChamado {
		c.TecnicoAtribuidoID = &in.TecnicoID
		c.DataAtribuicao = &agora
		return &entity.HistoricoChamado{
			UsuarioID: in.UsuarioAtribuidorID,
			Acao:      "Chamado atribuído",
			Descricao: fmt.Sprintf("Chamado atribuído ao técnico %s", in.TecnicoID),
		}
	})
}

// Resolver marca o chamado como resolvido; exige o texto da solução.
func (uc *UseCase) Resolver(ctx context.Context, chamadoID string, in dto.ResolverChamadoRequest) (*entity.Chamado, error) {
	if in.Solucao == "" || in.UsuarioID == "" {
		return nil, domain.ErrInvalidInput
	}
	agora := time.Now()
	return uc.transicionar(ctx, chamadoID, entity.ChamadoResolvido, func(c *entity.Chamado) *entity.HistoricoChamado {
		c.Solucao = in.Solucao
		c.DataResolucao = &agora
		return &entity.HistoricoChamado{
			UsuarioID: in.UsuarioID,
			Acao:      "Chamado resolvido",
			Descricao: "Solução implementada",
		}
	})
}

// Fechar encerra um chamado resolvido.
func (uc *UseCase) Fechar(ctx context.Context, chamadoID string, in dto.FecharChamadoRequest) (*entity.Chamado, error) {
	if in.UsuarioID == "" {
		return nil, domain.ErrInvalidInput
	}
	descricao := in.Observacoes
	if descricao == "" {
		descricao = "Chamado fechado"
	}
	agora := time.Now()
	return uc.transicionar(ctx, chamadoID, entity.ChamadoFechado, func(c *entity.Chamado) *entity.HistoricoChamado {
		c.DataFechamento = &agora
		return &entity.HistoricoChamado{
			UsuarioID: in.UsuarioID,
			Acao:      "Chamado fechado",
			Descricao: descricao,
		}
	})
}

// transicionar aplica uma transição de status validada pela tabela do
// domínio. mutar ajusta os campos da transição e devolve o esqueleto da
// entrada de histórico; chamado e histórico são gravados na mesma transação.
func (uc *UseCase) transicionar(
	ctx context.Context,
	chamadoID, statusNovo string,
	mutar func(c *entity.Chamado) *entity.HistoricoChamado,
) (*entity.Chamado, error) {
	var resultado *entity.Chamado
	err := uc.txRunner.Run(ctx, func(
		chamadoRepo repository.ChamadoRepository,
		historicoRepo repository.HistoricoChamadoRepository,
		_ repository.SequenciaRepository,
	) error {
		c, err := chamadoRepo.GetByID(chamadoID)
		if err != nil {
			return err
		}
		if c == nil {
			return domain.ErrNotFound
		}
		statusAnterior := c.Status
		if !entity.TransicaoValida(statusAnterior, statusNovo) {
			return domain.ErrTransicaoInvalida
		}

		hist := mutar(c)
		c.Status = statusNovo
		if err := chamadoRepo.Update(c); err != nil {
			return err
		}

		hist.ID = uuid.New().String()
		hist.ChamadoID = c.ID
		hist.StatusAnterior = statusAnterior
		hist.StatusNovo = statusNovo
		hist.DataAcao = time.Now()
		if err := historicoRepo.Append(hist); err != nil {
			return err
		}
		resultado = c
		return nil
	})
	if err != nil {
		return nil, err
	}
	return resultado, nil
}

// Obter carrega um chamado com seu histórico.
func (uc *UseCase) Obter(chamadoID string) (*entity.Chamado, []*entity.HistoricoChamado, error) {
	c, err := uc.chamadoRepo.GetByID(chamadoID)
	if err != nil {
		return nil, nil, err
	}
	if c == nil {
		return nil, nil, domain.ErrNotFound
	}
	hist, err := uc.historicoRepo.ListByChamado(chamadoID)
	if err != nil {
		return nil, nil, err
	}
	return c, hist, nil
}

// Listar retorna chamados filtrados, mais recentes primeiro.
func (uc *UseCase) Listar(filtro repository.ChamadoFiltro) ([]*entity.Chamado, error) {
	return uc.chamadoRepo.List(filtro)
}
