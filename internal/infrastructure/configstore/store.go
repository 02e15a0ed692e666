// Package configstore persiste os documentos de configuração (smtp.json,
// logo.json) como arquivos JSON no diretório de config da aplicação.
package configstore

import (
	"encoding/json"
	"errors"
	"fmt"
	"os"
	"path/filepath"

	"github.com/gestaoti/gestao-ti-api/internal/application/configuracoes"
)

var _ configuracoes.Store = (*Store)(nil)

// Store grava cada documento em um arquivo próprio. A escrita passa por um
// arquivo temporário com rename, para nunca deixar um JSON truncado.
type Store struct {
	dir string
}

// New constrói o store, criando o diretório se preciso.
func New(dir string) (*Store, error) {
	if err := os.MkdirAll(dir, 0o755); err != nil {
		return nil, fmt.Errorf("criar diretório de config: %w", err)
	}
	return &Store{dir: dir}, nil
}

// Dir devolve o diretório de config (onde o arquivo de logo também vive).
func (s *Store) Dir() string {
	return s.dir
}

func (s *Store) carregar(nome string, out any) error {
	payload, err := os.ReadFile(filepath.Join(s.dir, nome))
	if err != nil {
		if errors.Is(err, os.ErrNotExist) {
			return nil // documento ainda não existe: zero value
		}
		return fmt.Errorf("ler %s: %w", nome, err)
	}
	if err := json.Unmarshal(payload, out); err != nil {
		return fmt.Errorf("decodificar %s: %w", nome, err)
	}
	return nil
}

func (s *Store) salvar(nome string, doc any) error {
	payload, err := json.MarshalIndent(doc, "", "  ")
	if err != nil {
		return fmt.Errorf("serializar %s: %w", nome, err)
	}
	destino := filepath.Join(s.dir, nome)
	tmp := destino + ".tmp"
	if err := os.WriteFile(tmp, payload, 0o600); err != nil {
		return fmt.Errorf("gravar %s: %w", nome, err)
	}
	if err := os.Rename(tmp, destino); err != nil {
		return fmt.Errorf("substituir %s: %w", nome, err)
	}
	return nil
}

// CarregarSMTP lê smtp.json (zero value quando não existe).
func (s *Store) CarregarSMTP() (configuracoes.SMTPConfig, error) {
	var cfg configuracoes.SMTPConfig
	err := s.carregar("smtp.json", &cfg)
	return cfg, err
}

// SalvarSMTP grava smtp.json.
func (s *Store) SalvarSMTP(cfg configuracoes.SMTPConfig) error {
	return s.salvar("smtp.json", cfg)
}

// CarregarLogo lê logo.json (zero value quando não existe).
func (s *Store) CarregarLogo() (configuracoes.LogoConfig, error) {
	var cfg configuracoes.LogoConfig
	err := s.carregar("logo.json", &cfg)
	return cfg, err
}

// SalvarLogo grava logo.json.
func (s *Store) SalvarLogo(cfg configuracoes.LogoConfig) error {
	return s.salvar("logo.json", cfg)
}
