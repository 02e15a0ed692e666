// Package mestre cobre os dados mestres: centros de custo e fornecedores.
package mestre

import (
	"time"

	"github.com/google/uuid"

	"github.com/gestaoti/gestao-ti-api/internal/application/dto"
	"github.com/gestaoti/gestao-ti-api/internal/domain"
	"github.com/gestaoti/gestao-ti-api/internal/domain/entity"
	"github.com/gestaoti/gestao-ti-api/internal/domain/repository"
)

// CentroCustoUseCase gerencia centros de custo com código único e
// desativação lógica.
type CentroCustoUseCase struct {
	repo repository.CentroCustoRepository
}

// NewCentroCustoUseCase constrói o caso de uso.
func NewCentroCustoUseCase(repo repository.CentroCustoRepository) *CentroCustoUseCase {
	return &CentroCustoUseCase{repo: repo}
}

// Criar cadastra um centro de custo, rejeitando código repetido.
func (uc *CentroCustoUseCase) Criar(in dto.CriarCentroCustoRequest) (*entity.CentroCusto, error) {
	if in.Codigo == "" || in.Nome == "" {
		return nil, domain.ErrInvalidInput
	}
	existente, err := uc.repo.GetByCodigo(in.Codigo)
	if err != nil {
		return nil, err
	}
	if existente != nil {
		return nil, domain.ErrDuplicate
	}

	cc := &entity.CentroCusto{
		ID:          uuid.New().String(),
		Codigo:      in.Codigo,
		Nome:        in.Nome,
		Descricao:   in.Descricao,
		Ativo:       true,
		DataCriacao: time.Now(),
	}
	if err := uc.repo.Create(cc); err != nil {
		return nil, err
	}
	return cc, nil
}

// Obter busca um centro de custo por ID.
func (uc *CentroCustoUseCase) Obter(id string) (*entity.CentroCusto, error) {
	cc, err := uc.repo.GetByID(id)
	if err != nil {
		return nil, err
	}
	if cc == nil {
		return nil, domain.ErrNotFound
	}
	return cc, nil
}

// Atualizar altera campos do centro de custo (parcial).
func (uc *CentroCustoUseCase) Atualizar(id string, in dto.AtualizarCentroCustoRequest) (*entity.CentroCusto, error) {
	cc, err := uc.Obter(id)
	if err != nil {
		return nil, err
	}

	if in.Codigo != nil && *in.Codigo != cc.Codigo {
		outro, err := uc.repo.GetByCodigo(*in.Codigo)
		if err != nil {
			return nil, err
		}
		if outro != nil {
			return nil, domain.ErrDuplicate
		}
		cc.Codigo = *in.Codigo
	}
	if in.Nome != nil {
		cc.Nome = *in.Nome
	}
	if in.Descricao != nil {
		cc.Descricao = *in.Descricao
	}
	if in.Ativo != nil {
		cc.Ativo = *in.Ativo
	}

	if err := uc.repo.Update(cc); err != nil {
		return nil, err
	}
	return cc, nil
}

// Desativar marca o centro de custo como inativo. As referências existentes
// em compras e contas permanecem válidas.
func (uc *CentroCustoUseCase) Desativar(id string) error {
	if _, err := uc.Obter(id); err != nil {
		return err
	}
	return uc.repo.Desativar(id)
}

// Listar retorna centros de custo, opcionalmente só os ativos.
func (uc *CentroCustoUseCase) Listar(somenteAtivos bool) ([]*entity.CentroCusto, error) {
	return uc.repo.List(somenteAtivos)
}
