package http_test

import (
	"testing"

	"github.com/gofiber/fiber/v2"
	"github.com/stretchr/testify/assert"

	apphttp "github.com/gestaoti/gestao-ti-api/internal/interfaces/http"
)

func temRota(app *fiber.App, metodo, caminho string) bool {
	for _, rotas := range app.Stack() {
		for _, r := range rotas {
			if r.Method == metodo && r.Path == caminho {
				return true
			}
		}
	}
	return false
}

// O frontend de referência depende destes métodos e caminhos exatos.
func TestRouter_RotasRegistradas(t *testing.T) {
	app := fiber.New()
	apphttp.Router(app, apphttp.RouterDeps{})

	casos := []struct {
		metodo  string
		caminho string
	}{
		{fiber.MethodPost, "/login"},
		{fiber.MethodPost, "/esqueceu-senha"},
		{fiber.MethodGet, "/verificar-token-recuperacao"},
		{fiber.MethodPost, "/redefinir-senha"},
		{fiber.MethodGet, "/usuarios/tecnicos"},
		{fiber.MethodPut, "/usuarios/perfil"},
		{fiber.MethodGet, "/inventario/estoque-baixo"},
		{fiber.MethodPost, "/inventario/:id/movimentar"},
		{fiber.MethodPut, "/contas-mensais/:id/pagar"},
		{fiber.MethodGet, "/contas-mensais/vencidas"},
		{fiber.MethodGet, "/contas-mensais/vencendo"},
		{fiber.MethodGet, "/ativos/licencas-vencendo"},
		{fiber.MethodDelete, "/ativos/:id"},
		{fiber.MethodPut, "/chamados/:id/atribuir"},
		{fiber.MethodPut, "/chamados/:id/resolver"},
		{fiber.MethodPut, "/chamados/:id/fechar"},
		{fiber.MethodPut, "/compras/:id/status"},
		{fiber.MethodGet, "/dashboard/estatisticas"},
		{fiber.MethodGet, "/dashboard/alertas"},
		{fiber.MethodPost, "/upload"},
		{fiber.MethodGet, "/uploads/:nome"},
		{fiber.MethodGet, "/uploads/:nome/info"},
		{fiber.MethodPost, "/configuracoes/smtp/test"},
		{fiber.MethodGet, "/configuracoes/smtp/status"},
		{fiber.MethodPost, "/configuracoes/logo"},
	}
	for _, c := range casos {
		assert.True(t, temRota(app, c.metodo, c.caminho), "%s %s deveria estar registrada", c.metodo, c.caminho)
	}
}

// Rotas fixas precisam vir antes do parâmetro :id no mesmo grupo.
func TestRouter_EstoqueBaixoNaoCaiNoObterPorID(t *testing.T) {
	app := fiber.New()
	apphttp.Router(app, apphttp.RouterDeps{})

	var caminhos []string
	for _, rotas := range app.Stack() {
		for _, r := range rotas {
			if r.Method == fiber.MethodGet && (r.Path == "/inventario/estoque-baixo" || r.Path == "/inventario/:id") {
				caminhos = append(caminhos, r.Path)
			}
		}
	}
	assert.Equal(t, []string{"/inventario/estoque-baixo", "/inventario/:id"}, caminhos)
}
