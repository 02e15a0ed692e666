package dto

import (
	"time"

	"github.com/gestaoti/gestao-ti-api/internal/domain/entity"
)

// CriarCentroCustoRequest payload de POST /centros-custo.
type CriarCentroCustoRequest struct {
	Codigo    string `json:"codigo"`
	Nome      string `json:"nome"`
	Descricao string `json:"descricao"`
}

// AtualizarCentroCustoRequest payload de PUT /centros-custo/:id.
type AtualizarCentroCustoRequest struct {
	Codigo    *string `json:"codigo"`
	Nome      *string `json:"nome"`
	Descricao *string `json:"descricao"`
	Ativo     *bool   `json:"ativo"`
}

// CentroCustoResponse representação de um centro de custo.
type CentroCustoResponse struct {
	ID          string `json:"id"`
	Codigo      string `json:"codigo"`
	Nome        string `json:"nome"`
	Descricao   string `json:"descricao,omitempty"`
	Ativo       bool   `json:"ativo"`
	DataCriacao string `json:"data_criacao"`
}

// NovoCentroCustoResponse converte a entidade.
func NovoCentroCustoResponse(cc *entity.CentroCusto) CentroCustoResponse {
	return CentroCustoResponse{
		ID:          cc.ID,
		Codigo:      cc.Codigo,
		Nome:        cc.Nome,
		Descricao:   cc.Descricao,
		Ativo:       cc.Ativo,
		DataCriacao: cc.DataCriacao.Format(time.RFC3339),
	}
}

// CriarFornecedorRequest payload de POST /fornecedores.
type CriarFornecedorRequest struct {
	Nome               string `json:"nome"`
	CNPJ               string `json:"cnpj"`
	Email              string `json:"email"`
	Telefone           string `json:"telefone"`
	Endereco           string `json:"endereco"`
	ContatoResponsavel string `json:"contato_responsavel"`
}

// AtualizarFornecedorRequest payload de PUT /fornecedores/:id.
type AtualizarFornecedorRequest struct {
	Nome               *string `json:"nome"`
	CNPJ               *string `json:"cnpj"`
	Email              *string `json:"email"`
	Telefone           *string `json:"telefone"`
	Endereco           *string `json:"endereco"`
	ContatoResponsavel *string `json:"contato_responsavel"`
	Ativo              *bool   `json:"ativo"`
}

// FornecedorResponse representação de um fornecedor.
type FornecedorResponse struct {
	ID                 string `json:"id"`
	Nome               string `json:"nome"`
	CNPJ               string `json:"cnpj,omitempty"`
	Email              string `json:"email,omitempty"`
	Telefone           string `json:"telefone,omitempty"`
	Endereco           string `json:"endereco,omitempty"`
	ContatoResponsavel string `json:"contato_responsavel,omitempty"`
	Ativo              bool   `json:"ativo"`
	DataCriacao        string `json:"data_criacao"`
}

// NovoFornecedorResponse converte a entidade.
func NovoFornecedorResponse(f *entity.Fornecedor) FornecedorResponse {
	return FornecedorResponse{
		ID:                 f.ID,
		Nome:               f.Nome,
		CNPJ:               f.CNPJ,
		Email:              f.Email,
		Telefone:           f.Telefone,
		Endereco:           f.Endereco,
		ContatoResponsavel: f.ContatoResponsavel,
		Ativo:              f.Ativo,
		DataCriacao:        f.DataCriacao.Format(time.RFC3339),
	}
}
