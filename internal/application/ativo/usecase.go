package ativo

import (
	"time"

	"github.com/google/uuid"

	"github.com/gestaoti/gestao-ti-api/internal/application/dto"
	"github.com/gestaoti/gestao-ti-api/internal/domain"
	"github.com/gestaoti/gestao-ti-api/internal/domain/entity"
	"github.com/gestaoti/gestao-ti-api/internal/domain/repository"
)

// DiasAvisoLicenca janela padrão do alerta de licenças vencendo.
const DiasAvisoLicenca = 30

// UseCase gerencia ativos de TI. O valor depreciado é sempre recalculado
// na leitura a partir dos campos persistidos.
type UseCase struct {
	ativoRepo repository.AtivoRepository
}

// NewUseCase constrói o caso de uso.
func NewUseCase(ativoRepo repository.AtivoRepository) *UseCase {
	return &UseCase{ativoRepo: ativoRepo}
}

// Criar cadastra um ativo. Sem percentual informado vale a taxa padrão.
func (uc *UseCase) Criar(in dto.CriarAtivoRequest) (*entity.Ativo, error) {
	if in.TipoAtivo == "" || in.Nome == "" {
		return nil, domain.ErrInvalidInput
	}
	aquisicao, err := dto.ParseData(in.DataAquisicao)
	if err != nil {
		return nil, domain.ErrInvalidInput
	}
	vencimentoLicenca, err := dto.ParseData(in.DataVencimentoLicenca)
	if err != nil {
		return nil, domain.ErrInvalidInput
	}

	percentual := entity.PercentualDepreciacaoPadrao
	if in.PercentualDepreciacao != nil {
		percentual = *in.PercentualDepreciacao
	}
	status := in.Status
	if status == "" {
		status = entity.AtivoStatusAtivo
	}

	agora := time.Now()
	a := &entity.Ativo{
		ID:                    uuid.New().String(),
		TipoAtivo:             in.TipoAtivo,
		Nome:                  in.Nome,
		Descricao:             in.Descricao,
		NumeroSerie:           in.NumeroSerie,
		Localizacao:           in.Localizacao,
		ResponsavelID:         in.ResponsavelID,
		CentroCustoID:         in.CentroCustoID,
		DataAquisicao:         aquisicao,
		ValorAquisicao:        in.ValorAquisicao,
		PercentualDepreciacao: percentual,
		DataVencimentoLicenca: vencimentoLicenca,
		Status:                status,
		DataCriacao:           agora,
		DataAtualizacao:       agora,
	}
	if err := uc.ativoRepo.Create(a); err != nil {
		return nil, err
	}
	return a, nil
}

// Obter busca um ativo por ID.
func (uc *UseCase) Obter(id string) (*entity.Ativo, error) {
	a, err := uc.ativoRepo.GetByID(id)
	if err != nil {
		return nil, err
	}
	if a == nil {
		return nil, domain.ErrNotFound
	}
	return a, nil
}

// Atualizar altera campos do ativo (parcial). Mudar o percentual de
// depreciação muda retroativamente o valor reportado, já que nada é
// persistido do cálculo.
func (uc *UseCase) Atualizar(id string, in dto.AtualizarAtivoRequest) (*entity.Ativo, error) {
	a, err := uc.Obter(id)
	if err != nil {
		return nil, err
	}

	if in.TipoAtivo != nil {
		a.TipoAtivo = *in.TipoAtivo
	}
	if in.Nome != nil {
		a.Nome = *in.Nome
	}
	if in.Descricao != nil {
		a.Descricao = *in.Descricao
	}
	if in.NumeroSerie != nil {
		a.NumeroSerie = *in.NumeroSerie
	}
	if in.Localizacao != nil {
		a.Localizacao = *in.Localizacao
	}
	if in.ResponsavelID != nil {
		a.ResponsavelID = in.ResponsavelID
	}
	if in.CentroCustoID != nil {
		a.CentroCustoID = in.CentroCustoID
	}
	if in.ValorAquisicao != nil {
		a.ValorAquisicao = in.ValorAquisicao
	}
	if in.PercentualDepreciacao != nil {
		a.PercentualDepreciacao = *in.PercentualDepreciacao
	}
	if in.Status != nil {
		a.Status = *in.Status
	}
	if in.DataAquisicao != "" {
		aquisicao, err := dto.ParseData(in.DataAquisicao)
		if err != nil {
			return nil, domain.ErrInvalidInput
		}
		a.DataAquisicao = aquisicao
	}
	if in.DataVencimentoLicenca != "" {
		vencimento, err := dto.ParseData(in.DataVencimentoLicenca)
		if err != nil {
			return nil, domain.ErrInvalidInput
		}
		a.DataVencimentoLicenca = vencimento
	}
	a.DataAtualizacao = time.Now()

	if err := uc.ativoRepo.Update(a); err != nil {
		return nil, err
	}
	return a, nil
}

// Desativar marca o ativo como inativo. A exclusão é sempre lógica.
func (uc *UseCase) Desativar(id string) error {
	if _, err := uc.Obter(id); err != nil {
		return err
	}
	return uc.ativoRepo.Desativar(id)
}

// Listar retorna ativos com filtros opcionais de tipo e status.
func (uc *UseCase) Listar(filtro repository.AtivoFiltro) ([]*entity.Ativo, error) {
	return uc.ativoRepo.List(filtro)
}

// ListarLicencasVencendo retorna ativos ativos com licença vencendo na janela.
func (uc *UseCase) ListarLicencasVencendo(dias int) ([]*entity.Ativo, error) {
	if dias <= 0 {
		dias = DiasAvisoLicenca
	}
	agora := time.Now()
	hoje := time.Date(agora.Year(), agora.Month(), agora.Day(), 0, 0, 0, 0, agora.Location())
	return uc.ativoRepo.ListLicencasVencendo(hoje.AddDate(0, 0, dias))
}
