package postgres

import (
	"context"
	"errors"
	"fmt"
	"strconv"

	"github.com/jackc/pgx/v5"

	"github.com/gestaoti/gestao-ti-api/internal/domain/entity"
	"github.com/gestaoti/gestao-ti-api/internal/domain/repository"
)

var _ repository.ChamadoRepository = (*ChamadoRepo)(nil)
var _ repository.HistoricoChamadoRepository = (*HistoricoChamadoRepo)(nil)

// ChamadoRepo implementação de ChamadoRepository sobre PostgreSQL.
type ChamadoRepo struct {
	q Querier
}

// NewChamadoRepository constrói o adaptador. Passar pool ou tx (Querier).
func NewChamadoRepository(q Querier) *ChamadoRepo {
	return &ChamadoRepo{q: q}
}

const chamadoCols = `id, numero_chamado, titulo, descricao, solicitante_id, tecnico_atribuido_id,
	prioridade, status, categoria, anexo_evidencia, data_abertura, data_atribuicao,
	data_resolucao, data_fechamento, solucao`

// Create persiste um novo chamado com o número já alocado.
func (r *ChamadoRepo) Create(c *entity.Chamado) error {
	query := `
		INSERT INTO chamados (` + chamadoCols + `)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10, $11, $12, $13, $14, $15)`
	_, err := r.q.Exec(context.Background(), query,
		c.ID, c.NumeroChamado, c.Titulo, c.Descricao, c.SolicitanteID, c.TecnicoAtribuidoID,
		c.Prioridade, c.Status, c.Categoria, c.AnexoEvidencia, c.DataAbertura, c.DataAtribuicao,
		c.DataResolucao, c.DataFechamento, c.Solucao,
	)
	if err != nil {
		return fmt.Errorf("create chamado: %w", err)
	}
	return nil
}

// GetByID busca por ID. Retorna (nil, nil) se não existe.
func (r *ChamadoRepo) GetByID(id string) (*entity.Chamado, error) {
	query := `SELECT ` + chamadoCols + ` FROM chamados WHERE id = $1`
	var c entity.Chamado
	err := r.q.QueryRow(context.Background(), query, id).Scan(
		&c.ID, &c.NumeroChamado, &c.Titulo, &c.Descricao, &c.SolicitanteID, &c.TecnicoAtribuidoID,
		&c.Prioridade, &c.Status, &c.Categoria, &c.AnexoEvidencia, &c.DataAbertura, &c.DataAtribuicao,
		&c.DataResolucao, &c.DataFechamento, &c.Solucao,
	)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, nil
		}
		return nil, fmt.Errorf("get chamado: %w", err)
	}
	return &c, nil
}

// Update grava o estado completo do chamado. NumeroChamado não muda.
func (r *ChamadoRepo) Update(c *entity.Chamado) error {
	query := `
		UPDATE chamados
		SET titulo = $2, descricao = $3, tecnico_atribuido_id = $4, prioridade = $5,
		    status = $6, categoria = $7, anexo_evidencia = $8, data_atribuicao = $9,
		    data_resolucao = $10, data_fechamento = $11, solucao = $12
		WHERE id = $1`
	_, err := r.q.Exec(context.Background(), query,
		c.ID, c.Titulo, c.Descricao, c.TecnicoAtribuidoID, c.Prioridade,
		c.Status, c.Categoria, c.AnexoEvidencia, c.DataAtribuicao,
		c.DataResolucao, c.DataFechamento, c.Solucao,
	)
	if err != nil {
		return fmt.Errorf("update chamado: %w", err)
	}
	return nil
}

// List retorna chamados mais recentes primeiro, com filtros opcionais.
func (r *ChamadoRepo) List(filtro repository.ChamadoFiltro) ([]*entity.Chamado, error) {
	query := `SELECT ` + chamadoCols + ` FROM chamados WHERE 1=1`
	var args []any
	if filtro.Status != "" {
		args = append(args, filtro.Status)
		query += ` AND status = $` + strconv.Itoa(len(args))
	}
	if filtro.Prioridade != "" {
		args = append(args, filtro.Prioridade)
		query += ` AND prioridade = $` + strconv.Itoa(len(args))
	}
	if filtro.TecnicoID != "" {
		args = append(args, filtro.TecnicoID)
		query += ` AND tecnico_atribuido_id = $` + strconv.Itoa(len(args))
	}
	query += ` ORDER BY data_abertura DESC`

	rows, err := r.q.Query(context.Background(), query, args...)
	if err != nil {
		return nil, fmt.Errorf("list chamados: %w", err)
	}
	defer rows.Close()

	var chamados []*entity.Chamado
	for rows.Next() {
		var c entity.Chamado
		if err := rows.Scan(
			&c.ID, &c.NumeroChamado, &c.Titulo, &c.Descricao, &c.SolicitanteID, &c.TecnicoAtribuidoID,
			&c.Prioridade, &c.Status, &c.Categoria, &c.AnexoEvidencia, &c.DataAbertura, &c.DataAtribuicao,
			&c.DataResolucao, &c.DataFechamento, &c.Solucao,
		); err != nil {
			return nil, fmt.Errorf("scan chamado: %w", err)
		}
		chamados = append(chamados, &c)
	}
	return chamados, rows.Err()
}

// HistoricoChamadoRepo persiste o log append-only de transições.
type HistoricoChamadoRepo struct {
	q Querier
}

// NewHistoricoChamadoRepository constrói o adaptador. Passar pool ou tx (Querier).
func NewHistoricoChamadoRepository(q Querier) *HistoricoChamadoRepo {
	return &HistoricoChamadoRepo{q: q}
}

// Append insere uma entrada de histórico. Não há Update nem Delete.
func (r *HistoricoChamadoRepo) Append(h *entity.HistoricoChamado) error {
	query := `
		INSERT INTO historico_chamados (id, chamado_id, usuario_id, acao, descricao, status_anterior, status_novo, data_acao)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8)`
	_, err := r.q.Exec(context.Background(), query,
		h.ID, h.ChamadoID, h.UsuarioID, h.Acao, h.Descricao, h.StatusAnterior, h.StatusNovo, h.DataAcao,
	)
	if err != nil {
		return fmt.Errorf("append historico: %w", err)
	}
	return nil
}

// ListByChamado retorna o histórico em ordem cronológica.
func (r *HistoricoChamadoRepo) ListByChamado(chamadoID string) ([]*entity.HistoricoChamado, error) {
	query := `
		SELECT id, chamado_id, usuario_id, acao, descricao, status_anterior, status_novo, data_acao
		FROM historico_chamados WHERE chamado_id = $1 ORDER BY data_acao`
	rows, err := r.q.Query(context.Background(), query, chamadoID)
	if err != nil {
		return nil, fmt.Errorf("list historico: %w", err)
	}
	defer rows.Close()

	var historico []*entity.HistoricoChamado
	for rows.Next() {
		var h entity.HistoricoChamado
		if err := rows.Scan(
			&h.ID, &h.ChamadoID, &h.UsuarioID, &h.Acao, &h.Descricao, &h.StatusAnterior, &h.StatusNovo, &h.DataAcao,
		); err != nil {
			return nil, fmt.Errorf("scan historico: %w", err)
		}
		historico = append(historico, &h)
	}
	return historico, rows.Err()
}
