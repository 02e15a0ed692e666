package repository

import "github.com/gestaoti/gestao-ti-api/internal/domain/entity"

// ChamadoFiltro filtros de listagem de chamados.
type ChamadoFiltro struct {
	Status     string
	Prioridade string
	TecnicoID  string
}

// ChamadoRepository porta de persistência de chamados.
type ChamadoRepository interface {
	Create(c *entity.Chamado) error
	GetByID(id string) (*entity.Chamado, error)
	Update(c *entity.Chamado) error
	List(filtro ChamadoFiltro) ([]*entity.Chamado, error)
}

// HistoricoChamadoRepository porta do log de transições (append-only).
type HistoricoChamadoRepository interface {
	Append(h *entity.HistoricoChamado) error
	ListByChamado(chamadoID string) ([]*entity.HistoricoChamado, error)
}
