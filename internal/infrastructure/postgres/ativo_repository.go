package postgres

import (
	"context"
	"errors"
	"fmt"
	"strconv"
	"time"

	"github.com/jackc/pgx/v5"

	"github.com/gestaoti/gestao-ti-api/internal/domain/entity"
	"github.com/gestaoti/gestao-ti-api/internal/domain/repository"
)

var _ repository.AtivoRepository = (*AtivoRepo)(nil)

// AtivoRepo implementação de AtivoRepository sobre PostgreSQL.
// valor_atual não tem coluna: é derivado na aplicação a cada leitura.
type AtivoRepo struct {
	q Querier
}

// NewAtivoRepository constrói o adaptador. Passar pool ou tx (Querier).
func NewAtivoRepository(q Querier) *AtivoRepo {
	return &AtivoRepo{q: q}
}

const ativoCols = `id, tipo_ativo, nome, descricao, numero_serie, localizacao,
	responsavel_id, centro_custo_id, data_aquisicao, valor_aquisicao, percentual_depreciacao,
	data_vencimento_licenca, status, data_criacao, data_atualizacao`

// Create persiste um ativo.
func (r *AtivoRepo) Create(a *entity.Ativo) error {
	query := `
		INSERT INTO ativos (` + ativoCols + `)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10, $11, $12, $13, $14, $15)`
	_, err := r.q.Exec(context.Background(), query,
		a.ID, a.TipoAtivo, a.Nome, a.Descricao, a.NumeroSerie, a.Localizacao,
		a.ResponsavelID, a.CentroCustoID, a.DataAquisicao, a.ValorAquisicao, a.PercentualDepreciacao,
		a.DataVencimentoLicenca, a.Status, a.DataCriacao, a.DataAtualizacao,
	)
	if err != nil {
		return fmt.Errorf("create ativo: %w", err)
	}
	return nil
}

// GetByID busca por ID. Retorna (nil, nil) se não existe.
func (r *AtivoRepo) GetByID(id string) (*entity.Ativo, error) {
	query := `SELECT ` + ativoCols + ` FROM ativos WHERE id = $1`
	var a entity.Ativo
	err := r.q.QueryRow(context.Background(), query, id).Scan(
		&a.ID, &a.TipoAtivo, &a.Nome, &a.Descricao, &a.NumeroSerie, &a.Localizacao,
		&a.ResponsavelID, &a.CentroCustoID, &a.DataAquisicao, &a.ValorAquisicao, &a.PercentualDepreciacao,
		&a.DataVencimentoLicenca, &a.Status, &a.DataCriacao, &a.DataAtualizacao,
	)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, nil
		}
		return nil, fmt.Errorf("get ativo: %w", err)
	}
	return &a, nil
}

// Update grava o estado completo do ativo.
func (r *AtivoRepo) Update(a *entity.Ativo) error {
	query := `
		UPDATE ativos
		SET tipo_ativo = $2, nome = $3, descricao = $4, numero_serie = $5, localizacao = $6,
		    responsavel_id = $7, centro_custo_id = $8, data_aquisicao = $9, valor_aquisicao = $10,
		    percentual_depreciacao = $11, data_vencimento_licenca = $12, status = $13,
		    data_atualizacao = $14
		WHERE id = $1`
	_, err := r.q.Exec(context.Background(), query,
		a.ID, a.TipoAtivo, a.Nome, a.Descricao, a.NumeroSerie, a.Localizacao,
		a.ResponsavelID, a.CentroCustoID, a.DataAquisicao, a.ValorAquisicao,
		a.PercentualDepreciacao, a.DataVencimentoLicenca, a.Status,
		a.DataAtualizacao,
	)
	if err != nil {
		return fmt.Errorf("update ativo: %w", err)
	}
	return nil
}

// List retorna ativos ordenados por nome, com filtros opcionais.
func (r *AtivoRepo) List(filtro repository.AtivoFiltro) ([]*entity.Ativo, error) {
	query := `SELECT ` + ativoCols + ` FROM ativos WHERE 1=1`
	var args []any
	if filtro.Tipo != "" {
		args = append(args, filtro.Tipo)
		query += ` AND tipo_ativo = $` + strconv.Itoa(len(args))
	}
	if filtro.Status != "" {
		args = append(args, filtro.Status)
		query += ` AND status = $` + strconv.Itoa(len(args))
	}
	query += ` ORDER BY nome`
	return r.listQuery(query, args...)
}

// ListLicencasVencendo retorna ativos ativos com licença vencendo até o limite.
func (r *AtivoRepo) ListLicencasVencendo(limite time.Time) ([]*entity.Ativo, error) {
	query := `
		SELECT ` + ativoCols + ` FROM ativos
		WHERE status = 'ativo' AND data_vencimento_licenca IS NOT NULL
		  AND data_vencimento_licenca <= $1
		ORDER BY data_vencimento_licenca`
	return r.listQuery(query, limite)
}

func (r *AtivoRepo) listQuery(query string, args ...any) ([]*entity.Ativo, error) {
	rows, err := r.q.Query(context.Background(), query, args...)
	if err != nil {
		return nil, fmt.Errorf("list ativos: %w", err)
	}
	defer rows.Close()

	var ativos []*entity.Ativo
	for rows.Next() {
		var a entity.Ativo
		if err := rows.Scan(
			&a.ID, &a.TipoAtivo, &a.Nome, &a.Descricao, &a.NumeroSerie, &a.Localizacao,
			&a.ResponsavelID, &a.CentroCustoID, &a.DataAquisicao, &a.ValorAquisicao, &a.PercentualDepreciacao,
			&a.DataVencimentoLicenca, &a.Status, &a.DataCriacao, &a.DataAtualizacao,
		); err != nil {
			return nil, fmt.Errorf("scan ativo: %w", err)
		}
		ativos = append(ativos, &a)
	}
	return ativos, rows.Err()
}

// Desativar marca o ativo como inativo (exclusão lógica).
func (r *AtivoRepo) Desativar(id string) error {
	if _, err := r.q.Exec(context.Background(),
		`UPDATE ativos SET status = 'inativo', data_atualizacao = now() WHERE id = $1`, id); err != nil {
		return fmt.Errorf("desativar ativo: %w", err)
	}
	return nil
}
