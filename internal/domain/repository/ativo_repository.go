package repository

import (
	"time"

	"github.com/gestaoti/gestao-ti-api/internal/domain/entity"
)

// AtivoFiltro filtros de listagem de ativos.
type AtivoFiltro struct {
	Tipo   string
	Status string
}

// AtivoRepository porta de persistência de ativos.
type AtivoRepository interface {
	Create(a *entity.Ativo) error
	GetByID(id string) (*entity.Ativo, error)
	Update(a *entity.Ativo) error
	List(filtro AtivoFiltro) ([]*entity.Ativo, error)
	// ListLicencasVencendo retorna ativos ativos com licença vencendo até a data limite.
	ListLicencasVencendo(limite time.Time) ([]*entity.Ativo, error)
	// Desativar marca o ativo como inativo. Nunca há exclusão física:
	// chamados e centros de custo podem referenciar o ativo.
	Desativar(id string) error
}
