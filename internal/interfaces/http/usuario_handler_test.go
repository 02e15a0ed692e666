package http_test

import (
	"encoding/json"
	"io"
	"net/http"
	"strings"
	"testing"
	"time"

	"github.com/gofiber/fiber/v2"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"golang.org/x/crypto/bcrypt"

	"github.com/gestaoti/gestao-ti-api/internal/application/dto"
	"github.com/gestaoti/gestao-ti-api/internal/application/usuario"
	"github.com/gestaoti/gestao-ti-api/internal/domain/entity"
	apphttp "github.com/gestaoti/gestao-ti-api/internal/interfaces/http"
	pkgjwt "github.com/gestaoti/gestao-ti-api/pkg/jwt"
)

const (
	testJWTSecret = "test-secret-key-for-unit-tests"
	testIssuer    = "gestao-ti-test"
)

// usuarioRepoFake implementa repository.UsuarioRepository em memória.
type usuarioRepoFake struct {
	porEmail map[string]*entity.Usuario
	porID    map[string]*entity.Usuario
}

func novoUsuarioRepoFake() *usuarioRepoFake {
	return &usuarioRepoFake{
		porEmail: map[string]*entity.Usuario{},
		porID:    map[string]*entity.Usuario{},
	}
}

func (f *usuarioRepoFake) Create(u *entity.Usuario) error {
	f.porEmail[u.Email] = u
	f.porID[u.ID] = u
	return nil
}

func (f *usuarioRepoFake) GetByID(id string) (*entity.Usuario, error) {
	return f.porID[id], nil
}

func (f *usuarioRepoFake) GetByEmail(email string) (*entity.Usuario, error) {
	return f.porEmail[email], nil
}

func (f *usuarioRepoFake) Update(u *entity.Usuario) error {
	f.porEmail[u.Email] = u
	f.porID[u.ID] = u
	return nil
}

func (f *usuarioRepoFake) ListAtivos() ([]*entity.Usuario, error) {
	var out []*entity.Usuario
	for _, u := range f.porID {
		if u.Ativo {
			out = append(out, u)
		}
	}
	return out, nil
}

func (f *usuarioRepoFake) ListTecnicos() ([]*entity.Usuario, error) {
	var out []*entity.Usuario
	for _, u := range f.porID {
		if u.Ativo && u.EhTecnico() {
			out = append(out, u)
		}
	}
	return out, nil
}

func (f *usuarioRepoFake) Desativar(id string) error {
	if u, ok := f.porID[id]; ok {
		u.Ativo = false
	}
	return nil
}

// buildApp monta um app Fiber só com as rotas de usuário.
func buildApp(t *testing.T, repo *usuarioRepoFake) *fiber.App {
	t.Helper()
	uc := usuario.NewUseCase(repo, usuario.JWTConfig{
		Secret:     testJWTSecret,
		Issuer:     testIssuer,
		ExpMinutes: 60,
	})
	h := apphttp.NewUsuarioHandler(uc)

	app := fiber.New()
	app.Post("/login", h.Login)
	app.Post("/usuarios", h.Criar)
	app.Get("/usuarios/:id", h.Obter)
	return app
}

func semearUsuario(t *testing.T, repo *usuarioRepoFake, email, senha string) *entity.Usuario {
	t.Helper()
	hash, err := bcrypt.GenerateFromPassword([]byte(senha), bcrypt.MinCost)
	require.NoError(t, err)
	u := &entity.Usuario{
		ID:              "00000000-0000-0000-0000-000000000001",
		Nome:            "Maria Souza",
		Email:           email,
		SenhaHash:       string(hash),
		Perfil:          entity.PerfilTecnico,
		Ativo:           true,
		DataCriacao:     time.Now(),
		DataAtualizacao: time.Now(),
	}
	require.NoError(t, repo.Create(u))
	return u
}

func postJSON(t *testing.T, app *fiber.App, rota, corpo string) *http.Response {
	t.Helper()
	req, err := http.NewRequest(http.MethodPost, rota, strings.NewReader(corpo))
	require.NoError(t, err)
	req.Header.Set("Content-Type", "application/json")
	resp, err := app.Test(req, -1)
	require.NoError(t, err)
	return resp
}

func TestLogin_Sucesso(t *testing.T) {
	repo := novoUsuarioRepoFake()
	semearUsuario(t, repo, "maria@empresa.com", "senha123")
	app := buildApp(t, repo)

	resp := postJSON(t, app, "/login", `{"email":"maria@empresa.com","senha":"senha123"}`)
	require.Equal(t, http.StatusOK, resp.StatusCode)

	var out dto.LoginResponse
	require.NoError(t, json.NewDecoder(resp.Body).Decode(&out))
	assert.Equal(t, "Login realizado com sucesso", out.Mensagem)
	assert.Equal(t, "maria@empresa.com", out.Usuario.Email)
	assert.NotEmpty(t, out.Usuario.ID)

	// O token emitido deve ser verificável com o mesmo segredo.
	userID, perfil, err := pkgjwt.Parse(testJWTSecret, out.Token)
	require.NoError(t, err)
	assert.Equal(t, out.Usuario.ID, userID)
	assert.Equal(t, entity.PerfilTecnico, perfil)
}

func TestLogin_SenhaErrada(t *testing.T) {
	repo := novoUsuarioRepoFake()
	semearUsuario(t, repo, "maria@empresa.com", "senha123")
	app := buildApp(t, repo)

	resp := postJSON(t, app, "/login", `{"email":"maria@empresa.com","senha":"outra"}`)
	require.Equal(t, http.StatusUnauthorized, resp.StatusCode)

	corpo, err := io.ReadAll(resp.Body)
	require.NoError(t, err)
	assert.JSONEq(t, `{"erro":"Email ou senha inválidos"}`, string(corpo))
}

func TestLogin_EmailDesconhecido(t *testing.T) {
	repo := novoUsuarioRepoFake()
	app := buildApp(t, repo)

	resp := postJSON(t, app, "/login", `{"email":"ninguem@empresa.com","senha":"x"}`)
	// Mesma resposta de senha errada: não revela se o email existe.
	require.Equal(t, http.StatusUnauthorized, resp.StatusCode)
}

func TestLogin_CorpoInvalido(t *testing.T) {
	repo := novoUsuarioRepoFake()
	app := buildApp(t, repo)

	resp := postJSON(t, app, "/login", `{nao-e-json`)
	require.Equal(t, http.StatusBadRequest, resp.StatusCode)
}

func TestCriarUsuario_EmailDuplicado(t *testing.T) {
	repo := novoUsuarioRepoFake()
	semearUsuario(t, repo, "maria@empresa.com", "senha123")
	app := buildApp(t, repo)

	resp := postJSON(t, app, "/usuarios", `{"nome":"Outra","email":"maria@empresa.com","senha":"senha456"}`)
	require.Equal(t, http.StatusBadRequest, resp.StatusCode)

	corpo, err := io.ReadAll(resp.Body)
	require.NoError(t, err)
	assert.Contains(t, string(corpo), "erro")
}

func TestObterUsuario_NaoEncontrado(t *testing.T) {
	repo := novoUsuarioRepoFake()
	app := buildApp(t, repo)

	req, err := http.NewRequest(http.MethodGet, "/usuarios/inexistente", nil)
	require.NoError(t, err)
	resp, err := app.Test(req, -1)
	require.NoError(t, err)
	assert.Equal(t, http.StatusNotFound, resp.StatusCode)
}
