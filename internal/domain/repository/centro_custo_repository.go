package repository

import "github.com/gestaoti/gestao-ti-api/internal/domain/entity"

// CentroCustoRepository porta de persistência de centros de custo.
type CentroCustoRepository interface {
	Create(cc *entity.CentroCusto) error
	GetByID(id string) (*entity.CentroCusto, error)
	GetByCodigo(codigo string) (*entity.CentroCusto, error)
	Update(cc *entity.CentroCusto) error
	List(somenteAtivos bool) ([]*entity.CentroCusto, error)
	Desativar(id string) error
}
