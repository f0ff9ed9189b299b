package handler

import (
	"errors"
	"net/http"
	"path/filepath"
	"strings"

	"github.com/vfg2006/sales-dashboard-api/internal/usecases/dashboard"
	"github.com/vfg2006/sales-dashboard-api/pkg/apiErrors"
	"github.com/vfg2006/sales-dashboard-api/pkg/log"
)

const importFormField = "file"

// ImportSales recebe um arquivo .dat de largura fixa via multipart e o envia para a API de vendas
func ImportSales(service dashboard.DashboardService, maxFileSize int64) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		logger := log.ForContext(r.Context())
		logger.Info("INIT - ImportSales")

		r.Body = http.MaxBytesReader(w, r.Body, maxFileSize)

		file, header, err := r.FormFile(importFormField)
		if err != nil {
			if isBodyTooLarge(err) {
				apiErrors.WriteError(w, apiErrors.ErrFileTooLarge, "Arquivo excede o tamanho máximo permitido", map[string]any{
					"max_bytes": maxFileSize,
				})
				return
			}

			logger.WithError(err).Warn("Arquivo ausente na requisição")
			apiErrors.WriteError(w, apiErrors.ErrMissingRequiredData, "Envie o arquivo no campo 'file'", nil)
			return
		}
		defer file.Close()

		if ext := strings.ToLower(filepath.Ext(header.Filename)); ext != ".dat" {
			logger.WithField("file_name", header.Filename).Warn("Arquivo sem extensão .dat, processando mesmo assim")
		}

		result, err := service.Import(r.Context(), header.Filename, file)
		switch {
		case err == nil:
			writeJSON(w, r, http.StatusOK, result)
		case errors.Is(err, dashboard.ErrNoValidSales):
			apiErrors.WriteError(w, apiErrors.ErrNoValidRecords, "Nenhuma venda válida encontrada no arquivo", result)
		case errors.Is(err, dashboard.ErrUploadFailed):
			apiErrors.WriteError(w, apiErrors.ErrExternalService, "Erro ao enviar vendas para a API", result)
		case errors.Is(err, dashboard.ErrInvalidFile):
			apiErrors.WriteError(w, apiErrors.ErrInvalidFormat, "Não foi possível ler o arquivo enviado", nil)
		default:
			logger.WithError(err).Error("Erro ao importar arquivo de vendas")
			apiErrors.WriteError(w, apiErrors.ErrInternalServer, "Erro ao importar arquivo de vendas", nil)
		}
	}
}

func isBodyTooLarge(err error) bool {
	var maxBytesErr *http.MaxBytesError
	if errors.As(err, &maxBytesErr) {
		return true
	}
	// alguns caminhos do leitor multipart não preservam o erro original
	return strings.Contains(err.Error(), "request body too large")
}
