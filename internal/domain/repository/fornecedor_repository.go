package repository

import "github.com/gestaoti/gestao-ti-api/internal/domain/entity"

// FornecedorRepository porta de persistência de fornecedores.
type FornecedorRepository interface {
	Create(f *entity.Fornecedor) error
	GetByID(id string) (*entity.Fornecedor, error)
	Update(f *entity.Fornecedor) error
	List(somenteAtivos bool) ([]*entity.Fornecedor, error)
	Desativar(id string) error
}
