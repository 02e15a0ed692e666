package http

import (
	"github.com/gofiber/fiber/v2"

	"github.com/gestaoti/gestao-ti-api/internal/application/ativo"
	"github.com/gestaoti/gestao-ti-api/internal/application/chamado"
	"github.com/gestaoti/gestao-ti-api/internal/application/compra"
	"github.com/gestaoti/gestao-ti-api/internal/application/configuracoes"
	"github.com/gestaoti/gestao-ti-api/internal/application/conta"
	"github.com/gestaoti/gestao-ti-api/internal/application/dashboard"
	"github.com/gestaoti/gestao-ti-api/internal/application/inventario"
	"github.com/gestaoti/gestao-ti-api/internal/application/mestre"
	"github.com/gestaoti/gestao-ti-api/internal/application/recuperacao"
	"github.com/gestaoti/gestao-ti-api/internal/application/usuario"
)

// RouterDeps dependências para o router.
type RouterDeps struct {
	UsuarioUC       *usuario.UseCase
	RecuperacaoUC   *recuperacao.UseCase
	CentroCustoUC   *mestre.CentroCustoUseCase
	FornecedorUC    *mestre.FornecedorUseCase
	CompraUC        *compra.UseCase
	AtivoUC         *ativo.UseCase
	ChamadoUC       *chamado.UseCase
	InventarioUC    *inventario.UseCase
	ContaUC         *conta.UseCase
	DashboardUC     *dashboard.UseCase
	ConfiguracoesUC *configuracoes.UseCase
	UploadDir       string
	ConfigDir       string
}

// Router registra as rotas da API.
func Router(app *fiber.App, deps RouterDeps) {
	// Autenticação e recuperação de senha
	usuarioHandler := NewUsuarioHandler(deps.UsuarioUC)
	app.Post("/login", usuarioHandler.Login)

	recuperacaoHandler := NewRecuperacaoHandler(deps.RecuperacaoUC)
	app.Post("/esqueceu-senha", recuperacaoHandler.Solicitar)
	app.Get("/verificar-token-recuperacao", recuperacaoHandler.VerificarToken)
	app.Post("/redefinir-senha", recuperacaoHandler.Redefinir)

	// Usuários
	usuarios := app.Group("/usuarios")
	usuarios.Post("/", usuarioHandler.Criar)
	usuarios.Get("/", usuarioHandler.Listar)
	usuarios.Get("/tecnicos", usuarioHandler.ListarTecnicos)
	usuarios.Put("/perfil", usuarioHandler.AtualizarPerfil)
	usuarios.Get("/:id", usuarioHandler.Obter)
	usuarios.Put("/:id", usuarioHandler.Atualizar)
	usuarios.Delete("/:id", usuarioHandler.Desativar)

	// Centros de custo
	centros := app.Group("/centros-custo")
	centroHandler := NewCentroCustoHandler(deps.CentroCustoUC)
	centros.Post("/", centroHandler.Criar)
	centros.Get("/", centroHandler.Listar)
	centros.Get("/:id", centroHandler.Obter)
	centros.Put("/:id", centroHandler.Atualizar)
	centros.Delete("/:id", centroHandler.Desativar)

	// Fornecedores
	fornecedores := app.Group("/fornecedores")
	fornecedorHandler := NewFornecedorHandler(deps.FornecedorUC)
	fornecedores.Post("/", fornecedorHandler.Criar)
	fornecedores.Get("/", fornecedorHandler.Listar)
	fornecedores.Get("/:id", fornecedorHandler.Obter)
	fornecedores.Put("/:id", fornecedorHandler.Atualizar)
	fornecedores.Delete("/:id", fornecedorHandler.Desativar)

	// Compras
	compras := app.Group("/compras")
	compraHandler := NewCompraHandler(deps.CompraUC)
	compras.Post("/", compraHandler.Criar)
	compras.Get("/", compraHandler.Listar)
	compras.Get("/:id", compraHandler.Obter)
	compras.Put("/:id", compraHandler.Atualizar)
	compras.Put("/:id/status", compraHandler.AtualizarStatus)

	// Ativos
	ativos := app.Group("/ativos")
	ativoHandler := NewAtivoHandler(deps.AtivoUC)
	ativos.Post("/", ativoHandler.Criar)
	ativos.Get("/", ativoHandler.Listar)
	ativos.Get("/licencas-vencendo", ativoHandler.ListarLicencasVencendo)
	ativos.Get("/:id", ativoHandler.Obter)
	ativos.Put("/:id", ativoHandler.Atualizar)
	ativos.Delete("/:id", ativoHandler.Desativar)

	// Chamados
	chamados := app.Group("/chamados")
	chamadoHandler := NewChamadoHandler(deps.ChamadoUC)
	chamados.Post("/", chamadoHandler.Criar)
	chamados.Get("/", chamadoHandler.Listar)
	chamados.Get("/:id", chamadoHandler.Obter)
	chamados.Put("/:id/atribuir", chamadoHandler.Atribuir)
	chamados.Put("/:id/resolver", chamadoHandler.Resolver)
	chamados.Put("/:id/fechar", chamadoHandler.Fechar)

	// Inventário
	itens := app.Group("/inventario")
	inventarioHandler := NewInventarioHandler(deps.InventarioUC)
	itens.Post("/", inventarioHandler.Criar)
	itens.Get("/", inventarioHandler.Listar)
	itens.Get("/estoque-baixo", inventarioHandler.ListarEstoqueBaixo)
	itens.Get("/:id", inventarioHandler.Obter)
	itens.Put("/:id", inventarioHandler.Atualizar)
	itens.Post("/:id/movimentar", inventarioHandler.Movimentar)

	// Contas mensais
	contas := app.Group("/contas-mensais")
	contaHandler := NewContaHandler(deps.ContaUC)
	contas.Post("/", contaHandler.Criar)
	contas.Get("/", contaHandler.Listar)
	contas.Get("/vencidas", contaHandler.ListarVencidas)
	contas.Get("/vencendo", contaHandler.ListarVencendo)
	contas.Get("/:id", contaHandler.Obter)
	contas.Put("/:id", contaHandler.Atualizar)
	contas.Put("/:id/pagar", contaHandler.Pagar)

	// Dashboard
	dash := app.Group("/dashboard")
	dashboardHandler := NewDashboardHandler(deps.DashboardUC)
	dash.Get("/estatisticas", dashboardHandler.Estatisticas)
	dash.Get("/alertas", dashboardHandler.Alertas)

	// Uploads
	uploadHandler := NewUploadHandler(deps.UploadDir)
	app.Post("/upload", uploadHandler.Enviar)
	app.Get("/uploads/:nome", uploadHandler.Servir)
	app.Get("/uploads/:nome/info", uploadHandler.Info)

	// Configurações
	cfg := app.Group("/configuracoes")
	configHandler := NewConfiguracoesHandler(deps.ConfiguracoesUC, deps.ConfigDir)
	cfg.Get("/smtp", configHandler.ObterSMTP)
	cfg.Post("/smtp", configHandler.SalvarSMTP)
	cfg.Post("/smtp/test", configHandler.EnviarTesteSMTP)
	cfg.Get("/smtp/status", configHandler.StatusSMTP)
	cfg.Post("/logo", configHandler.EnviarLogo)
	cfg.Get("/logo", configHandler.ObterLogo)
}
