package conta

import (
	"time"

	"github.com/google/uuid"

	"github.com/gestaoti/gestao-ti-api/internal/application/dto"
	"github.com/gestaoti/gestao-ti-api/internal/domain"
	"github.com/gestaoti/gestao-ti-api/internal/domain/entity"
	"github.com/gestaoti/gestao-ti-api/internal/domain/repository"
)

// UseCase gerencia contas mensais. "Vencida" nunca é persistida: é derivada
// da data de vencimento e do status de pagamento no momento da leitura.
type UseCase struct {
	contaRepo repository.ContaMensalRepository
}

// NewUseCase constrói o caso de uso.
func NewUseCase(contaRepo repository.ContaMensalRepository) *UseCase {
	return &UseCase{contaRepo: contaRepo}
}

// Criar registra uma conta mensal, sempre pendente.
func (uc *UseCase) Criar(in dto.CriarContaMensalRequest) (*entity.ContaMensal, error) {
	if in.TipoConta == "" || in.DataVencimento == "" {
		return nil, domain.ErrInvalidInput
	}
	vencimento, err := dto.ParseData(in.DataVencimento)
	if err != nil {
		return nil, domain.ErrInvalidInput
	}
	contratacao, err := dto.ParseData(in.DataContratacao)
	if err != nil {
		return nil, domain.ErrInvalidInput
	}

	c := &entity.ContaMensal{
		ID:              uuid.New().String(),
		TipoConta:       in.TipoConta,
		FornecedorID:    in.FornecedorID,
		CentroCustoID:   in.CentroCustoID,
		Valor:           in.Valor,
		DataVencimento:  *vencimento,
		StatusPagamento: entity.ContaPendente,
		Recorrencia:     in.Recorrencia,
		DataContratacao: contratacao,
		Descricao:       in.Descricao,
		AnexoContrato:   in.AnexoContrato,
		DataCriacao:     time.Now(),
	}
	if err := uc.contaRepo.Create(c); err != nil {
		return nil, err
	}
	return c, nil
}

// Obter busca uma conta por ID.
func (uc *UseCase) Obter(id string) (*entity.ContaMensal, error) {
	c, err := uc.contaRepo.GetByID(id)
	if err != nil {
		return nil, err
	}
	if c == nil {
		return nil, domain.ErrNotFound
	}
	return c, nil
}

// Atualizar altera campos da conta (parcial).
func (uc *UseCase) Atualizar(id string, in dto.AtualizarContaMensalRequest) (*entity.ContaMensal, error) {
	c, err := uc.Obter(id)
	if err != nil {
		return nil, err
	}

	if in.TipoConta != nil {
		c.TipoConta = *in.TipoConta
	}
	if in.FornecedorID != nil {
		c.FornecedorID = in.FornecedorID
	}
	if in.CentroCustoID != nil {
		c.CentroCustoID = in.CentroCustoID
	}
	if in.Valor != nil {
		c.Valor = *in.Valor
	}
	if in.StatusPagamento != nil {
		c.StatusPagamento = *in.StatusPagamento
		if *in.StatusPagamento == entity.ContaPaga && c.DataPagamento == nil {
			agora := time.Now()
			c.DataPagamento = &agora
		}
	}
	if in.Recorrencia != nil {
		c.Recorrencia = *in.Recorrencia
	}
	if in.Descricao != nil {
		c.Descricao = *in.Descricao
	}
	if in.AnexoContrato != nil {
		c.AnexoContrato = *in.AnexoContrato
	}
	if in.DataVencimento != "" {
		vencimento, err := dto.ParseData(in.DataVencimento)
		if err != nil {
			return nil, domain.ErrInvalidInput
		}
		c.DataVencimento = *vencimento
	}
	if in.DataContratacao != "" {
		contratacao, err := dto.ParseData(in.DataContratacao)
		if err != nil {
			return nil, domain.ErrInvalidInput
		}
		c.DataContratacao = contratacao
	}

	if err := uc.contaRepo.Update(c); err != nil {
		return nil, err
	}
	return c, nil
}

// Pagar marca a conta como paga e carimba DataPagamento. Pagar uma conta
// já paga é idempotente e não altera o carimbo original.
func (uc *UseCase) Pagar(id string) (*entity.ContaMensal, error) {
	c, err := uc.Obter(id)
	if err != nil {
		return nil, err
	}
	if c.StatusPagamento == entity.ContaPaga {
		return c, nil
	}
	c.StatusPagamento = entity.ContaPaga
	agora := time.Now()
	c.DataPagamento = &agora
	if err := uc.contaRepo.Update(c); err != nil {
		return nil, err
	}
	return c, nil
}

// Listar retorna contas com filtros opcionais de status e mês/ano de vencimento.
func (uc *UseCase) Listar(filtro repository.ContaMensalFiltro) ([]*entity.ContaMensal, error) {
	return uc.contaRepo.List(filtro)
}

// ListarVencidas retorna contas pendentes com vencimento no passado.
func (uc *UseCase) ListarVencidas() ([]*entity.ContaMensal, error) {
	return uc.contaRepo.ListVencidas(hoje())
}

// ListarVencendo retorna contas pendentes vencendo nos próximos dias.
func (uc *UseCase) ListarVencendo(dias int) ([]*entity.ContaMensal, error) {
	if dias <= 0 {
		dias = 7
	}
	h := hoje()
	return uc.contaRepo.ListVencendo(h, h.AddDate(0, 0, dias))
}

func hoje() time.Time {
	agora := time.Now()
	return time.Date(agora.Year(), agora.Month(), agora.Day(), 0, 0, 0, 0, agora.Location())
}
