package http_test

import (
	"bytes"
	"encoding/json"
	"mime/multipart"
	"net/http"
	"os"
	"path/filepath"
	"testing"

	"github.com/gofiber/fiber/v2"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/gestaoti/gestao-ti-api/internal/application/dto"
	apphttp "github.com/gestaoti/gestao-ti-api/internal/interfaces/http"
)

// requisicaoMultipart monta um POST multipart com um único arquivo no campo dado.
func requisicaoMultipart(t *testing.T, rota, campo, nomeArquivo string, conteudo []byte) *http.Request {
	t.Helper()
	var corpo bytes.Buffer
	w := multipart.NewWriter(&corpo)
	parte, err := w.CreateFormFile(campo, nomeArquivo)
	require.NoError(t, err)
	_, err = parte.Write(conteudo)
	require.NoError(t, err)
	require.NoError(t, w.Close())

	req, err := http.NewRequest(http.MethodPost, rota, &corpo)
	require.NoError(t, err)
	req.Header.Set("Content-Type", w.FormDataContentType())
	return req
}

func buildUploadApp(t *testing.T) (*fiber.App, string) {
	t.Helper()
	dir := t.TempDir()
	h := apphttp.NewUploadHandler(dir)

	app := fiber.New()
	app.Post("/upload", h.Enviar)
	app.Get("/uploads/:nome", h.Servir)
	app.Get("/uploads/:nome/info", h.Info)
	return app, dir
}

func TestUpload_GravaComPrefixoUUID(t *testing.T) {
	app, dir := buildUploadApp(t)

	resp, err := app.Test(requisicaoMultipart(t, "/upload", "arquivo", "nota fiscal.pdf", []byte("%PDF-1.4")), -1)
	require.NoError(t, err)
	require.Equal(t, http.StatusCreated, resp.StatusCode)

	var out dto.UploadResponse
	require.NoError(t, json.NewDecoder(resp.Body).Decode(&out))
	assert.Regexp(t, `^[0-9a-f-]{36}_nota_fiscal\.pdf$`, out.Arquivo)
	assert.Equal(t, "/uploads/"+out.Arquivo, out.URL)

	_, err = os.Stat(filepath.Join(dir, out.Arquivo))
	assert.NoError(t, err)
}

func TestUpload_ExtensaoNaoPermitida(t *testing.T) {
	app, _ := buildUploadApp(t)

	resp, err := app.Test(requisicaoMultipart(t, "/upload", "arquivo", "script.sh", []byte("#!/bin/sh")), -1)
	require.NoError(t, err)
	assert.Equal(t, http.StatusBadRequest, resp.StatusCode)
}

func TestUpload_InfoRetornaMetadados(t *testing.T) {
	app, dir := buildUploadApp(t)
	conteudo := []byte("relatório mensal")
	require.NoError(t, os.WriteFile(filepath.Join(dir, "relatorio.txt"), conteudo, 0o600))

	req, err := http.NewRequest(http.MethodGet, "/uploads/relatorio.txt/info", nil)
	require.NoError(t, err)
	resp, err := app.Test(req, -1)
	require.NoError(t, err)
	require.Equal(t, http.StatusOK, resp.StatusCode)

	var info dto.ArquivoInfoResponse
	require.NoError(t, json.NewDecoder(resp.Body).Decode(&info))
	assert.Equal(t, "relatorio.txt", info.NomeArquivo)
	assert.Equal(t, int64(len(conteudo)), info.Tamanho)
	assert.NotEmpty(t, info.DataModificacao)
}

func TestUpload_InfoArquivoInexistente(t *testing.T) {
	app, _ := buildUploadApp(t)

	req, err := http.NewRequest(http.MethodGet, "/uploads/nada.txt/info", nil)
	require.NoError(t, err)
	resp, err := app.Test(req, -1)
	require.NoError(t, err)
	assert.Equal(t, http.StatusNotFound, resp.StatusCode)
}
