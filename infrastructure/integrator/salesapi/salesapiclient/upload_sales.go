package salesapiclient

import (
	"bytes"
	"context"
	"io"
	"net/http"

	"github.com/pkg/errors"
	"github.com/vfg2006/sales-dashboard-api/internal/domain"
)

const maxErrorBodySize = 1024

func (c *SalesAPIClient) UploadSales(ctx context.Context, sales []domain.RawSale) error {
	if sales == nil {
		sales = make([]domain.RawSale, 0)
	}

	body, err := json.Marshal(sales)
	if err != nil {
		return errors.Wrap(err, "erro ao serializar vendas")
	}

	if err := c.limiter.Wait(ctx); err != nil {
		return errors.Wrap(err, "erro ao aguardar limite de requisições")
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodPost, c.uploadURL, bytes.NewReader(body))
	if err != nil {
		return errors.Wrap(err, "erro ao criar a requisição")
	}

	req.Header.Set("Content-Type", c.contentType)

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return errors.Wrap(err, "erro ao executar a requisição")
	}
	defer resp.Body.Close()

	if resp.StatusCode < http.StatusOK || resp.StatusCode >= http.StatusMultipleChoices {
		respBody, _ := io.ReadAll(io.LimitReader(resp.Body, maxErrorBodySize))
		return errors.Errorf("envio falhou com status: %s: %s", resp.Status, bytes.TrimSpace(respBody))
	}

	// Drena o corpo para permitir reuso da conexão; o conteúdo não é usado
	_, _ = io.Copy(io.Discard, resp.Body)

	return nil
}
