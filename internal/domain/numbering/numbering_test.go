package numbering_test

import (
	"fmt"
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/gestaoti/gestao-ti-api/internal/domain/numbering"
)

func TestNumeroChamado(t *testing.T) {
	assert.Equal(t, "2026-000001", numbering.NumeroChamado(2026, 1))
	assert.Equal(t, "2026-000042", numbering.NumeroChamado(2026, 42))
	assert.Equal(t, "2027-000001", numbering.NumeroChamado(2027, 1), "sequência reinicia a cada ano")
	assert.Equal(t, "2026-1000000", numbering.NumeroChamado(2026, 1000000), "acima de 6 dígitos não trunca")
}

func TestNumeroPedido(t *testing.T) {
	assert.Equal(t, "PED2026000007", numbering.NumeroPedido(2026, 7))
	assert.Equal(t, "PED2026999999", numbering.NumeroPedido(2026, 999999))
}

func TestNumerosDistintosEmOrdem(t *testing.T) {
	// N alocações no mesmo ano produzem N valores distintos em ordem de criação.
	vistos := make(map[string]bool)
	anterior := ""
	for seq := 1; seq <= 50; seq++ {
		n := numbering.NumeroChamado(2026, seq)
		assert.False(t, vistos[n], "número repetido: %s", n)
		assert.Greater(t, n, anterior, "números crescem lexicograficamente dentro do ano")
		vistos[n] = true
		anterior = n
	}
	assert.Len(t, vistos, 50)
	assert.Equal(t, fmt.Sprintf("2026-%06d", 50), anterior)
}
