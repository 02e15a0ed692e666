package repository

import "github.com/gestaoti/gestao-ti-api/internal/domain/entity"

// InventarioRepository porta de persistência de itens de inventário.
// GetForUpdate só existe em implementações transacionais (SELECT FOR UPDATE).
type InventarioRepository interface {
	Create(i *entity.ItemInventario) error
	GetByID(id string) (*entity.ItemInventario, error)
	GetForUpdate(id string) (*entity.ItemInventario, error)
	Update(i *entity.ItemInventario) error
	List(tipoItem string) ([]*entity.ItemInventario, error)
}

// MovimentacaoRepository porta do log de movimentações (append-only).
type MovimentacaoRepository interface {
	Append(m *entity.MovimentacaoInventario) error
	ListByItem(inventarioID string) ([]*entity.MovimentacaoInventario, error)
}
