package repository

import "github.com/gestaoti/gestao-ti-api/internal/domain/entity"

// CompraRepository porta de persistência de compras e suas coleções filhas.
type CompraRepository interface {
	Create(c *entity.Compra) error
	CreateProduto(p *entity.ProdutoAdquirido) error
	CreateRateio(r *entity.RateioCompra) error
	GetByID(id string) (*entity.Compra, error)
	// GetCompleta carrega a compra com produtos e rateios.
	GetCompleta(id string) (*entity.Compra, error)
	Update(c *entity.Compra) error
	List(status string) ([]*entity.Compra, error)
}
