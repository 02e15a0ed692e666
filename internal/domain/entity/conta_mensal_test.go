package entity_test

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"

	"github.com/gestaoti/gestao-ti-api/internal/domain/entity"
)

func TestContaMensal_Vencida(t *testing.T) {
	hoje := time.Date(2026, 8, 29, 0, 0, 0, 0, time.UTC)
	ontem := hoje.AddDate(0, 0, -1)
	amanha := hoje.AddDate(0, 0, 1)

	conta := &entity.ContaMensal{DataVencimento: ontem, StatusPagamento: entity.ContaPendente}
	assert.True(t, conta.Vencida(hoje), "pendente com vencimento ontem está vencida")

	conta.StatusPagamento = entity.ContaPaga
	assert.False(t, conta.Vencida(hoje), "conta paga nunca é vencida, qualquer que seja a data")

	conta = &entity.ContaMensal{DataVencimento: amanha, StatusPagamento: entity.ContaPendente}
	assert.False(t, conta.Vencida(hoje))

	conta = &entity.ContaMensal{DataVencimento: hoje, StatusPagamento: entity.ContaPendente}
	assert.False(t, conta.Vencida(hoje), "vence hoje ainda não é vencida")
}
