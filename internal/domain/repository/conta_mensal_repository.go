package repository

import (
	"time"

	"github.com/gestaoti/gestao-ti-api/internal/domain/entity"
)

// ContaMensalFiltro filtros de listagem de contas mensais.
// Mes/Ano filtram pelo mês de vencimento quando ambos são informados.
type ContaMensalFiltro struct {
	Status string
	Mes    int
	Ano    int
}

// ContaMensalRepository porta de persistência de contas mensais.
type ContaMensalRepository interface {
	Create(c *entity.ContaMensal) error
	GetByID(id string) (*entity.ContaMensal, error)
	Update(c *entity.ContaMensal) error
	List(filtro ContaMensalFiltro) ([]*entity.ContaMensal, error)
	// ListVencidas: vencimento antes de hoje e pagamento pendente.
	ListVencidas(hoje time.Time) ([]*entity.ContaMensal, error)
	// ListVencendo: vencimento entre hoje e o limite (inclusive), pendente.
	ListVencendo(hoje, limite time.Time) ([]*entity.ContaMensal, error)
}
