package recuperacao_test

import (
	"context"
	"testing"
	"time"

	"github.com/rs/zerolog"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"golang.org/x/crypto/bcrypt"

	"github.com/gestaoti/gestao-ti-api/internal/application/recuperacao"
	"github.com/gestaoti/gestao-ti-api/internal/domain"
	"github.com/gestaoti/gestao-ti-api/internal/domain/entity"
)

type usuarioRepoFake struct {
	porEmail map[string]*entity.Usuario
	porID    map[string]*entity.Usuario
}

func (r *usuarioRepoFake) Create(u *entity.Usuario) error {
	r.porEmail[u.Email] = u
	r.porID[u.ID] = u
	return nil
}
func (r *usuarioRepoFake) GetByID(id string) (*entity.Usuario, error)       { return r.porID[id], nil }
func (r *usuarioRepoFake) GetByEmail(e string) (*entity.Usuario, error)     { return r.porEmail[e], nil }
func (r *usuarioRepoFake) Update(u *entity.Usuario) error                   { return r.Create(u) }
func (r *usuarioRepoFake) ListAtivos() ([]*entity.Usuario, error)           { return nil, nil }
func (r *usuarioRepoFake) ListTecnicos() ([]*entity.Usuario, error)         { return nil, nil }
func (r *usuarioRepoFake) Desativar(id string) error                        { return nil }

// tokenStoreFake guarda em memória, honrando o contrato de uso único.
type tokenStoreFake struct {
	registros map[string]recuperacao.TokenRecuperacao
}

func (s *tokenStoreFake) Guardar(_ context.Context, token string, reg recuperacao.TokenRecuperacao, _ time.Duration) error {
	s.registros[token] = reg
	return nil
}

func (s *tokenStoreFake) Consultar(_ context.Context, token string) (*recuperacao.TokenRecuperacao, error) {
	reg, ok := s.registros[token]
	if !ok {
		return nil, nil
	}
	return &reg, nil
}

func (s *tokenStoreFake) Consumir(_ context.Context, token string) (*recuperacao.TokenRecuperacao, error) {
	reg, ok := s.registros[token]
	if !ok {
		return nil, nil
	}
	delete(s.registros, token)
	return &reg, nil
}

type emailFake struct {
	enviados []string // tokens, um por envio
	para     []string
}

func (e *emailFake) EnviarRecuperacaoSenha(_ context.Context, para, _, token string) error {
	e.para = append(e.para, para)
	e.enviados = append(e.enviados, token)
	return nil
}

func novoAmbiente(t *testing.T) (*recuperacao.UseCase, *usuarioRepoFake, *tokenStoreFake, *emailFake) {
	t.Helper()
	usuarios := &usuarioRepoFake{porEmail: map[string]*entity.Usuario{}, porID: map[string]*entity.Usuario{}}
	tokens := &tokenStoreFake{registros: map[string]recuperacao.TokenRecuperacao{}}
	email := &emailFake{}

	hash, err := bcrypt.GenerateFromPassword([]byte("senha-antiga"), bcrypt.MinCost)
	require.NoError(t, err)
	require.NoError(t, usuarios.Create(&entity.Usuario{
		ID: "u-1", Nome: "Ana", Email: "ana@empresa.com", SenhaHash: string(hash),
		Perfil: entity.PerfilUsuario, Ativo: true,
	}))

	uc := recuperacao.NewUseCase(usuarios, tokens, email, zerolog.Nop())
	return uc, usuarios, tokens, email
}

func TestSolicitar_EmiteTokenEEnviaEmail(t *testing.T) {
	uc, _, tokens, email := novoAmbiente(t)

	require.NoError(t, uc.Solicitar(context.Background(), "ana@empresa.com"))

	require.Len(t, email.enviados, 1)
	assert.Equal(t, []string{"ana@empresa.com"}, email.para)

	reg, err := tokens.Consultar(context.Background(), email.enviados[0])
	require.NoError(t, err)
	require.NotNil(t, reg, "o token enviado por email tem registro no store")
	assert.Equal(t, "u-1", reg.UsuarioID)
	assert.WithinDuration(t, time.Now().Add(recuperacao.ValidadeToken), reg.ExpiraEm, time.Minute)
}

func TestSolicitar_EmailDesconhecidoNaoRevelaNada(t *testing.T) {
	uc, _, tokens, email := novoAmbiente(t)

	err := uc.Solicitar(context.Background(), "ninguem@empresa.com")

	require.NoError(t, err, "email desconhecido responde igual ao conhecido")
	assert.Empty(t, email.enviados, "nenhum email é disparado")
	assert.Empty(t, tokens.registros, "nenhum token é emitido")
}

func TestSolicitar_UsuarioInativoNaoRecebeToken(t *testing.T) {
	uc, usuarios, _, email := novoAmbiente(t)
	usuarios.porEmail["ana@empresa.com"].Ativo = false

	require.NoError(t, uc.Solicitar(context.Background(), "ana@empresa.com"))
	assert.Empty(t, email.enviados)
}

func TestRedefinir_TrocaSenhaEConsomeToken(t *testing.T) {
	uc, usuarios, _, email := novoAmbiente(t)
	ctx := context.Background()

	require.NoError(t, uc.Solicitar(ctx, "ana@empresa.com"))
	token := email.enviados[0]

	require.NoError(t, uc.VerificarToken(ctx, token))
	require.NoError(t, uc.Redefinir(ctx, token, "senha-nova"))

	u := usuarios.porID["u-1"]
	assert.NoError(t, bcrypt.CompareHashAndPassword([]byte(u.SenhaHash), []byte("senha-nova")),
		"a nova senha confere com o hash gravado")
	assert.Error(t, bcrypt.CompareHashAndPassword([]byte(u.SenhaHash), []byte("senha-antiga")))

	// uso único: o mesmo token não redefine de novo
	err := uc.Redefinir(ctx, token, "outra-senha")
	assert.ErrorIs(t, err, domain.ErrTokenInvalido)
}

func TestRedefinir_TokenExpirado(t *testing.T) {
	uc, _, tokens, _ := novoAmbiente(t)
	ctx := context.Background()

	require.NoError(t, tokens.Guardar(ctx, "tok-velho", recuperacao.TokenRecuperacao{
		UsuarioID: "u-1",
		ExpiraEm:  time.Now().Add(-time.Minute),
	}, time.Hour))

	assert.ErrorIs(t, uc.VerificarToken(ctx, "tok-velho"), domain.ErrTokenExpirado)
	assert.ErrorIs(t, uc.Redefinir(ctx, "tok-velho", "senha-nova"), domain.ErrTokenExpirado)
}

func TestRedefinir_SenhaCurta(t *testing.T) {
	uc, _, _, email := novoAmbiente(t)
	ctx := context.Background()

	require.NoError(t, uc.Solicitar(ctx, "ana@empresa.com"))
	token := email.enviados[0]

	err := uc.Redefinir(ctx, token, "curta")
	assert.ErrorIs(t, err, domain.ErrInvalidInput)

	// o token não foi consumido pela tentativa inválida
	assert.NoError(t, uc.VerificarToken(ctx, token))
}

func TestVerificarToken_Inexistente(t *testing.T) {
	uc, _, _, _ := novoAmbiente(t)

	err := uc.VerificarToken(context.Background(), "nao-existe")
	assert.ErrorIs(t, err, domain.ErrTokenInvalido)
}
