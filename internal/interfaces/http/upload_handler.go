package http

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"
	"time"

	"github.com/gofiber/fiber/v2"
	"github.com/google/uuid"

	"github.com/gestaoti/gestao-ti-api/internal/application/dto"
)

// Extensões aceitas em POST /upload.
var extensoesUpload = map[string]bool{
	".txt": true, ".pdf": true, ".png": true, ".jpg": true, ".jpeg": true,
	".gif": true, ".doc": true, ".docx": true, ".xls": true, ".xlsx": true,
}

// UploadHandler recebe anexos e serve os arquivos guardados.
type UploadHandler struct {
	dir string
}

// NewUploadHandler constrói o handler gravando em dir.
func NewUploadHandler(dir string) *UploadHandler {
	return &UploadHandler{dir: dir}
}

// Enviar grava o arquivo do campo multipart "arquivo" com prefixo UUID.
func (h *UploadHandler) Enviar(c *fiber.Ctx) error {
	fh, err := c.FormFile("arquivo")
	if err != nil {
		return erro(c, fiber.StatusBadRequest, "arquivo não enviado")
	}
	ext := strings.ToLower(filepath.Ext(fh.Filename))
	if !extensoesUpload[ext] {
		return erro(c, fiber.StatusBadRequest, fmt.Sprintf("extensão %s não permitida", ext))
	}
	if err := os.MkdirAll(h.dir, 0o755); err != nil {
		return mapearErro(c, err)
	}
	nome := uuid.NewString() + "_" + sanitizarNome(fh.Filename)
	if err := c.SaveFile(fh, filepath.Join(h.dir, nome)); err != nil {
		return mapearErro(c, err)
	}
	return c.Status(fiber.StatusCreated).JSON(dto.UploadResponse{
		Arquivo: nome,
		URL:     "/uploads/" + nome,
	})
}

// Servir devolve um arquivo previamente enviado.
func (h *UploadHandler) Servir(c *fiber.Ctx) error {
	nome := sanitizarNome(c.Params("nome"))
	caminho := filepath.Join(h.dir, nome)
	if _, err := os.Stat(caminho); err != nil {
		return erro(c, fiber.StatusNotFound, "arquivo não encontrado")
	}
	return c.SendFile(caminho)
}

// Info retorna os metadados de um arquivo enviado.
func (h *UploadHandler) Info(c *fiber.Ctx) error {
	nome := sanitizarNome(c.Params("nome"))
	st, err := os.Stat(filepath.Join(h.dir, nome))
	if err != nil {
		return erro(c, fiber.StatusNotFound, "arquivo não encontrado")
	}
	return c.JSON(dto.ArquivoInfoResponse{
		NomeArquivo:     nome,
		Tamanho:         st.Size(),
		DataModificacao: st.ModTime().Format(time.RFC3339),
	})
}

// sanitizarNome remove separadores de caminho para impedir traversal.
func sanitizarNome(nome string) string {
	nome = filepath.Base(nome)
	nome = strings.ReplaceAll(nome, " ", "_")
	return strings.Map(func(r rune) rune {
		switch r {
		case '/', '\\', ':', '*', '?', '"', '<', '>', '|':
			return -1
		}
		return r
	}, nome)
}
