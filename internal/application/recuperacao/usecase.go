package recuperacao

import (
	"context"
	"crypto/rand"
	"encoding/hex"
	"time"

	"github.com/rs/zerolog"
	"golang.org/x/crypto/bcrypt"

	"github.com/gestaoti/gestao-ti-api/internal/domain"
	"github.com/gestaoti/gestao-ti-api/internal/domain/repository"
)

const (
	// ValidadeToken é a validade de um token de recuperação.
	ValidadeToken = time.Hour
	// retencaoToken mantém o registro além da validade para que a
	// verificação consiga responder "expirado" em vez de "inválido".
	retencaoToken = 24 * time.Hour

	tamanhoSenhaMinimo = 6
)

// UseCase implementa o fluxo esqueceu-senha: emissão de token de uso único
// com validade, verificação e redefinição. A solicitação nunca revela se o
// email existe.
type UseCase struct {
	usuarioRepo repository.UsuarioRepository
	tokens      TokenStore
	email       EmailSender
	log         zerolog.Logger
}

// NewUseCase constrói o caso de uso.
func NewUseCase(usuarioRepo repository.UsuarioRepository, tokens TokenStore, email EmailSender, log zerolog.Logger) *UseCase {
	return &UseCase{usuarioRepo: usuarioRepo, tokens: tokens, email: email, log: log}
}

// Solicitar emite um token e dispara o email quando o endereço pertence a um
// usuário ativo. Para qualquer outro caso o retorno é o mesmo, sem erro, de
// modo que a resposta HTTP não permita enumerar emails cadastrados.
func (uc *UseCase) Solicitar(ctx context.Context, email string) error {
	if email == "" {
		return domain.ErrInvalidInput
	}

	u, err := uc.usuarioRepo.GetByEmail(email)
	if err != nil {
		return err
	}
	if u == nil || !u.Ativo {
		uc.log.Info().Str("email", email).Msg("recuperação solicitada para email desconhecido ou inativo")
		return nil
	}

	token, err := novoToken()
	if err != nil {
		return err
	}
	reg := TokenRecuperacao{
		UsuarioID: u.ID,
		ExpiraEm:  time.Now().Add(ValidadeToken),
	}
	if err := uc.tokens.Guardar(ctx, token, reg, retencaoToken); err != nil {
		return err
	}
	if err := uc.email.EnviarRecuperacaoSenha(ctx, u.Email, u.Nome, token); err != nil {
		return err
	}
	uc.log.Info().Str("usuario_id", u.ID).Msg("token de recuperação emitido")
	return nil
}

// VerificarToken confere se o token existe e ainda está na validade,
// sem consumi-lo.
func (uc *UseCase) VerificarToken(ctx context.Context, token string) error {
	if token == "" {
		return domain.ErrTokenInvalido
	}
	reg, err := uc.tokens.Consultar(ctx, token)
	if err != nil {
		return err
	}
	if reg == nil {
		return domain.ErrTokenInvalido
	}
	if time.Now().After(reg.ExpiraEm) {
		return domain.ErrTokenExpirado
	}
	return nil
}

// Redefinir troca a senha do usuário dono do token. O token é consumido
// na leitura: uma segunda redefinição com o mesmo token falha como inválido.
func (uc *UseCase) Redefinir(ctx context.Context, token, novaSenha string) error {
	if token == "" {
		return domain.ErrTokenInvalido
	}
	if len(novaSenha) < tamanhoSenhaMinimo {
		return domain.ErrInvalidInput
	}

	reg, err := uc.tokens.Consumir(ctx, token)
	if err != nil {
		return err
	}
	if reg == nil {
		return domain.ErrTokenInvalido
	}
	if time.Now().After(reg.ExpiraEm) {
		return domain.ErrTokenExpirado
	}

	u, err := uc.usuarioRepo.GetByID(reg.UsuarioID)
	if err != nil {
		return err
	}
	if u == nil {
		return domain.ErrTokenInvalido
	}

	hash, err := bcrypt.GenerateFromPassword([]byte(novaSenha), bcrypt.DefaultCost)
	if err != nil {
		return err
	}
	u.SenhaHash = string(hash)
	u.DataAtualizacao = time.Now()
	if err := uc.usuarioRepo.Update(u); err != nil {
		return err
	}
	uc.log.Info().Str("usuario_id", u.ID).Msg("senha redefinida via token de recuperação")
	return nil
}

// novoToken gera 32 bytes aleatórios em hex.
func novoToken() (string, error) {
	b := make([]byte, 32)
	if _, err := rand.Read(b); err != nil {
		return "", err
	}
	return hex.EncodeToString(b), nil
}
