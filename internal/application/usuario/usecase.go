package usuario

import (
	"strings"
	"time"

	"github.com/google/uuid"
	"golang.org/x/crypto/bcrypt"

	"github.com/gestaoti/gestao-ti-api/internal/application/dto"
	"github.com/gestaoti/gestao-ti-api/internal/domain"
	"github.com/gestaoti/gestao-ti-api/internal/domain/entity"
	"github.com/gestaoti/gestao-ti-api/internal/domain/repository"
	"github.com/gestaoti/gestao-ti-api/pkg/jwt"
)

// JWTConfig parâmetros de emissão de token.
type JWTConfig struct {
	Secret     string
	Issuer     string
	ExpMinutes int
}

// UseCase gerencia usuários e autenticação. Senhas são armazenadas apenas
// como hash bcrypt; a desativação é lógica e o login exige Ativo=true.
type UseCase struct {
	usuarioRepo repository.UsuarioRepository
	jwtCfg      JWTConfig
}

// NewUseCase constrói o caso de uso.
func NewUseCase(usuarioRepo repository.UsuarioRepository, jwtCfg JWTConfig) *UseCase {
	return &UseCase{usuarioRepo: usuarioRepo, jwtCfg: jwtCfg}
}

var perfisValidos = map[string]bool{
	entity.PerfilSuperadmin: true,
	entity.PerfilAdmin:      true,
	entity.PerfilTecnico:    true,
	entity.PerfilUsuario:    true,
}

// Criar cadastra um usuário com email único e senha em bcrypt.
func (uc *UseCase) Criar(in dto.CriarUsuarioRequest) (*entity.Usuario, error) {
	email := strings.ToLower(strings.TrimSpace(in.Email))
	if in.Nome == "" || email == "" || in.Senha == "" {
		return nil, domain.ErrInvalidInput
	}
	perfil := in.Perfil
	if perfil == "" {
		perfil = entity.PerfilUsuario
	}
	if !perfisValidos[perfil] {
		return nil, domain.ErrInvalidInput
	}

	existente, err := uc.usuarioRepo.GetByEmail(email)
	if err != nil {
		return nil, err
	}
	if existente != nil {
		return nil, domain.ErrEmailJaCadastrado
	}

	hash, err := bcrypt.GenerateFromPassword([]byte(in.Senha), bcrypt.DefaultCost)
	if err != nil {
		return nil, err
	}

	agora := time.Now()
	u := &entity.Usuario{
		ID:              uuid.New().String(),
		Nome:            in.Nome,
		Email:           email,
		SenhaHash:       string(hash),
		Perfil:          perfil,
		Ativo:           true,
		DataCriacao:     agora,
		DataAtualizacao: agora,
	}
	if err := uc.usuarioRepo.Create(u); err != nil {
		return nil, err
	}
	return u, nil
}

// Login confere as credenciais e emite um JWT. Email inexistente, senha
// errada e usuário desativado produzem o mesmo erro, sem distinção.
func (uc *UseCase) Login(in dto.LoginRequest) (*entity.Usuario, string, error) {
	email := strings.ToLower(strings.TrimSpace(in.Email))
	if email == "" || in.Senha == "" {
		return nil, "", domain.ErrCredenciaisInvalidas
	}

	u, err := uc.usuarioRepo.GetByEmail(email)
	if err != nil {
		return nil, "", err
	}
	if u == nil || !u.Ativo {
		return nil, "", domain.ErrCredenciaisInvalidas
	}
	if bcrypt.CompareHashAndPassword([]byte(u.SenhaHash), []byte(in.Senha)) != nil {
		return nil, "", domain.ErrCredenciaisInvalidas
	}

	token, err := jwt.Generate(uc.jwtCfg.Secret, u.ID, u.Perfil, uc.jwtCfg.Issuer, uc.jwtCfg.ExpMinutes)
	if err != nil {
		return nil, "", err
	}
	return u, token, nil
}

// Obter busca um usuário por ID.
func (uc *UseCase) Obter(id string) (*entity.Usuario, error) {
	u, err := uc.usuarioRepo.GetByID(id)
	if err != nil {
		return nil, err
	}
	if u == nil {
		return nil, domain.ErrNotFound
	}
	return u, nil
}

// Atualizar altera campos do usuário (parcial). Se a senha vier preenchida
// ela é rehasheada; a troca de email passa pela checagem de unicidade.
func (uc *UseCase) Atualizar(id string, in dto.AtualizarUsuarioRequest) (*entity.Usuario, error) {
	u, err := uc.Obter(id)
	if err != nil {
		return nil, err
	}

	if in.Email != nil {
		email := strings.ToLower(strings.TrimSpace(*in.Email))
		if email == "" {
			return nil, domain.ErrInvalidInput
		}
		if email != u.Email {
			outro, err := uc.usuarioRepo.GetByEmail(email)
			if err != nil {
				return nil, err
			}
			if outro != nil {
				return nil, domain.ErrEmailJaCadastrado
			}
			u.Email = email
		}
	}
	if in.Nome != nil {
		u.Nome = *in.Nome
	}
	if in.Perfil != nil {
		if !perfisValidos[*in.Perfil] {
			return nil, domain.ErrInvalidInput
		}
		u.Perfil = *in.Perfil
	}
	if in.Ativo != nil {
		u.Ativo = *in.Ativo
	}
	if in.Senha != nil && *in.Senha != "" {
		hash, err := bcrypt.GenerateFromPassword([]byte(*in.Senha), bcrypt.DefaultCost)
		if err != nil {
			return nil, err
		}
		u.SenhaHash = string(hash)
	}
	u.DataAtualizacao = time.Now()

	if err := uc.usuarioRepo.Update(u); err != nil {
		return nil, err
	}
	return u, nil
}

// AtualizarPerfil é a autoedição: o próprio usuário, identificado pelo email,
// altera nome, email ou senha. A troca de senha exige a senha atual correta.
func (uc *UseCase) AtualizarPerfil(in dto.AtualizarPerfilRequest) (*entity.Usuario, error) {
	email := strings.ToLower(strings.TrimSpace(in.Email))
	if email == "" {
		return nil, domain.ErrInvalidInput
	}
	u, err := uc.usuarioRepo.GetByEmail(email)
	if err != nil {
		return nil, err
	}
	if u == nil {
		return nil, domain.ErrNotFound
	}

	if in.NovaSenha != "" {
		if in.SenhaAtual == "" {
			return nil, domain.ErrInvalidInput
		}
		if bcrypt.CompareHashAndPassword([]byte(u.SenhaHash), []byte(in.SenhaAtual)) != nil {
			return nil, domain.ErrSenhaAtualIncorreta
		}
		if len(in.NovaSenha) < 6 {
			return nil, domain.ErrInvalidInput
		}
		hash, err := bcrypt.GenerateFromPassword([]byte(in.NovaSenha), bcrypt.DefaultCost)
		if err != nil {
			return nil, err
		}
		u.SenhaHash = string(hash)
	}
	if in.Nome != "" {
		u.Nome = in.Nome
	}
	if in.NovoEmail != "" {
		novo := strings.ToLower(strings.TrimSpace(in.NovoEmail))
		if novo != u.Email {
			outro, err := uc.usuarioRepo.GetByEmail(novo)
			if err != nil {
				return nil, err
			}
			if outro != nil {
				return nil, domain.ErrEmailJaCadastrado
			}
			u.Email = novo
		}
	}
	u.DataAtualizacao = time.Now()

	if err := uc.usuarioRepo.Update(u); err != nil {
		return nil, err
	}
	return u, nil
}

// Desativar marca o usuário como inativo sem apagar a linha.
func (uc *UseCase) Desativar(id string) error {
	if _, err := uc.Obter(id); err != nil {
		return err
	}
	return uc.usuarioRepo.Desativar(id)
}

// ListarAtivos retorna os usuários com Ativo=true.
func (uc *UseCase) ListarAtivos() ([]*entity.Usuario, error) {
	return uc.usuarioRepo.ListAtivos()
}

// ListarTecnicos retorna os usuários que podem receber chamados.
func (uc *UseCase) ListarTecnicos() ([]*entity.Usuario, error) {
	return uc.usuarioRepo.ListTecnicos()
}
