package mestre

import (
	"time"

	"github.com/google/uuid"

	"github.com/gestaoti/gestao-ti-api/internal/application/dto"
	"github.com/gestaoti/gestao-ti-api/internal/domain"
	"github.com/gestaoti/gestao-ti-api/internal/domain/entity"
	"github.com/gestaoti/gestao-ti-api/internal/domain/repository"
)

// FornecedorUseCase gerencia fornecedores. A unicidade de CNPJ é garantida
// pelo índice único no banco; a violação chega como ErrDuplicate.
type FornecedorUseCase struct {
	repo repository.FornecedorRepository
}

// NewFornecedorUseCase constrói o caso de uso.
func NewFornecedorUseCase(repo repository.FornecedorRepository) *FornecedorUseCase {
	return &FornecedorUseCase{repo: repo}
}

// Criar cadastra um fornecedor.
func (uc *FornecedorUseCase) Criar(in dto.CriarFornecedorRequest) (*entity.Fornecedor, error) {
	if in.Nome == "" {
		return nil, domain.ErrInvalidInput
	}

	f := &entity.Fornecedor{
		ID:                 uuid.New().String(),
		Nome:               in.Nome,
		CNPJ:               in.CNPJ,
		Email:              in.Email,
		Telefone:           in.Telefone,
		Endereco:           in.Endereco,
		ContatoResponsavel: in.ContatoResponsavel,
		Ativo:              true,
		DataCriacao:        time.Now(),
	}
	if err := uc.repo.Create(f); err != nil {
		return nil, err
	}
	return f, nil
}

// Obter busca um fornecedor por ID.
func (uc *FornecedorUseCase) Obter(id string) (*entity.Fornecedor, error) {
	f, err := uc.repo.GetByID(id)
	if err != nil {
		return nil, err
	}
	if f == nil {
		return nil, domain.ErrNotFound
	}
	return f, nil
}

// Atualizar altera campos do fornecedor (parcial).
func (uc *FornecedorUseCase) Atualizar(id string, in dto.AtualizarFornecedorRequest) (*entity.Fornecedor, error) {
	f, err := uc.Obter(id)
	if err != nil {
		return nil, err
	}

	if in.Nome != nil {
		f.Nome = *in.Nome
	}
	if in.CNPJ != nil {
		f.CNPJ = *in.CNPJ
	}
	if in.Email != nil {
		f.Email = *in.Email
	}
	if in.Telefone != nil {
		f.Telefone = *in.Telefone
	}
	if in.Endereco != nil {
		f.Endereco = *in.Endereco
	}
	if in.ContatoResponsavel != nil {
		f.ContatoResponsavel = *in.ContatoResponsavel
	}
	if in.Ativo != nil {
		f.Ativo = *in.Ativo
	}

	if err := uc.repo.Update(f); err != nil {
		return nil, err
	}
	return f, nil
}

// Desativar marca o fornecedor como inativo.
func (uc *FornecedorUseCase) Desativar(id string) error {
	if _, err := uc.Obter(id); err != nil {
		return err
	}
	return uc.repo.Desativar(id)
}

// Listar retorna fornecedores, opcionalmente só os ativos.
func (uc *FornecedorUseCase) Listar(somenteAtivos bool) ([]*entity.Fornecedor, error) {
	return uc.repo.List(somenteAtivos)
}
