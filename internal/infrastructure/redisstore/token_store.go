// Package redisstore guarda tokens de recuperação de senha no Redis.
// A expiração fica por conta do TTL da chave; nenhuma limpeza manual.
package redisstore

import (
	"context"
	"crypto/sha256"
	"encoding/hex"
	"encoding/json"
	"errors"
	"fmt"
	"time"

	"github.com/redis/go-redis/v9"

	"github.com/gestaoti/gestao-ti-api/internal/application/recuperacao"
	"github.com/gestaoti/gestao-ti-api/pkg/config"
)

var _ recuperacao.TokenStore = (*TokenStore)(nil)

// TokenStore implementa recuperacao.TokenStore sobre Redis. A chave é o
// SHA-256 do token em hex, então um dump do Redis não expõe tokens úteis.
type TokenStore struct {
	client *redis.Client
}

// NewClient cria o cliente Redis e valida a conexão.
func NewClient(ctx context.Context, cfg config.RedisConfig) (*redis.Client, error) {
	client := redis.NewClient(&redis.Options{
		Addr:     cfg.Addr,
		Password: cfg.Password,
		DB:       cfg.DB,
	})
	if err := client.Ping(ctx).Err(); err != nil {
		return nil, fmt.Errorf("ping redis: %w", err)
	}
	return client, nil
}

// NewTokenStore constrói o store com um cliente já conectado.
func NewTokenStore(client *redis.Client) *TokenStore {
	return &TokenStore{client: client}
}

func chave(token string) string {
	sum := sha256.Sum256([]byte(token))
	return "recuperacao:" + hex.EncodeToString(sum[:])
}

// Guardar grava o registro com o TTL de retenção.
func (s *TokenStore) Guardar(ctx context.Context, token string, reg recuperacao.TokenRecuperacao, retencao time.Duration) error {
	payload, err := json.Marshal(reg)
	if err != nil {
		return fmt.Errorf("serializar token: %w", err)
	}
	if err := s.client.Set(ctx, chave(token), payload, retencao).Err(); err != nil {
		return fmt.Errorf("guardar token: %w", err)
	}
	return nil
}

// Consultar lê sem consumir. Retorna (nil, nil) quando não existe.
func (s *TokenStore) Consultar(ctx context.Context, token string) (*recuperacao.TokenRecuperacao, error) {
	return s.decodificar(s.client.Get(ctx, chave(token)))
}

// Consumir lê e remove atomicamente (GETDEL), garantindo uso único.
func (s *TokenStore) Consumir(ctx context.Context, token string) (*recuperacao.TokenRecuperacao, error) {
	return s.decodificar(s.client.GetDel(ctx, chave(token)))
}

func (s *TokenStore) decodificar(cmd *redis.StringCmd) (*recuperacao.TokenRecuperacao, error) {
	payload, err := cmd.Bytes()
	if err != nil {
		if errors.Is(err, redis.Nil) {
			return nil, nil
		}
		return nil, fmt.Errorf("ler token: %w", err)
	}
	var reg recuperacao.TokenRecuperacao
	if err := json.Unmarshal(payload, &reg); err != nil {
		return nil, fmt.Errorf("decodificar token: %w", err)
	}
	return &reg, nil
}
