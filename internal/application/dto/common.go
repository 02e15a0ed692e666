package dto

import "time"

// FormatoData é o formato aceito para campos de data (sem hora) na API.
const FormatoData = "2006-01-02"

// ErrorResponse corpo de erro HTTP: {"erro": "..."}.
type ErrorResponse struct {
	Erro string `json:"erro"`
}

// MensagemResponse corpo de sucesso sem payload.
type MensagemResponse struct {
	Mensagem string `json:"mensagem"`
}

// UploadResponse resposta de POST /upload.
type UploadResponse struct {
	Arquivo string `json:"arquivo"`
	URL     string `json:"url"`
}

// ArquivoInfoResponse metadados de um arquivo enviado.
type ArquivoInfoResponse struct {
	NomeArquivo     string `json:"nome_arquivo"`
	Tamanho         int64  `json:"tamanho"`
	DataModificacao string `json:"data_modificacao"`
}

// ParseData converte "YYYY-MM-DD" em *time.Time (nil para string vazia).
func ParseData(s string) (*time.Time, error) {
	if s == "" {
		return nil, nil
	}
	t, err := time.Parse(FormatoData, s)
	if err != nil {
		return nil, err
	}
	return &t, nil
}

// Data formata *time.Time como "YYYY-MM-DD" (nil → nil no JSON).
func Data(t *time.Time) *string {
	if t == nil {
		return nil
	}
	s := t.Format(FormatoData)
	return &s
}

// Timestamp formata *time.Time como RFC3339 (nil → nil no JSON).
func Timestamp(t *time.Time) *string {
	if t == nil {
		return nil
	}
	s := t.Format(time.RFC3339)
	return &s
}
