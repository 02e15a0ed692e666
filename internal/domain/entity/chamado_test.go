package entity_test

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/gestaoti/gestao-ti-api/internal/domain/entity"
)

func TestTransicaoValida_FluxoDocumentado(t *testing.T) {
	// aberto → em_andamento → resolvido → fechado
	assert.True(t, entity.TransicaoValida(entity.ChamadoAberto, entity.ChamadoEmAndamento))
	assert.True(t, entity.TransicaoValida(entity.ChamadoEmAndamento, entity.ChamadoResolvido))
	assert.True(t, entity.TransicaoValida(entity.ChamadoResolvido, entity.ChamadoFechado))
}

func TestTransicaoValida_AtalhosPermitidos(t *testing.T) {
	// resolver direto de aberto e reatribuir em andamento são aceitos
	assert.True(t, entity.TransicaoValida(entity.ChamadoAberto, entity.ChamadoResolvido))
	assert.True(t, entity.TransicaoValida(entity.ChamadoEmAndamento, entity.ChamadoEmAndamento))
}

func TestTransicaoValida_Rejeitadas(t *testing.T) {
	casos := []struct{ de, para string }{
		{entity.ChamadoAberto, entity.ChamadoFechado},       // fechar sem resolver
		{entity.ChamadoEmAndamento, entity.ChamadoFechado},  // idem
		{entity.ChamadoFechado, entity.ChamadoAberto},       // reabrir
		{entity.ChamadoFechado, entity.ChamadoEmAndamento},  // atribuir fechado
		{entity.ChamadoResolvido, entity.ChamadoEmAndamento}, // voltar estado
		{entity.ChamadoResolvido, entity.ChamadoResolvido},
	}
	for _, c := range casos {
		assert.False(t, entity.TransicaoValida(c.de, c.para), "%s → %s deveria ser rejeitada", c.de, c.para)
	}
}

func TestPrioridadeValida(t *testing.T) {
	assert.True(t, entity.PrioridadeValida(entity.PrioridadeCritica))
	assert.True(t, entity.PrioridadeValida(entity.PrioridadeBaixa))
	assert.False(t, entity.PrioridadeValida("urgentissima"))
	assert.False(t, entity.PrioridadeValida(""))
}
