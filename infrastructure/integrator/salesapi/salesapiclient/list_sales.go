package salesapiclient

import (
	"context"
	"net/http"

	"github.com/pkg/errors"
)

func (c *SalesAPIClient) ListSales(ctx context.Context) (ListSalesResponse, error) {
	var response ListSalesResponse

	if err := c.limiter.Wait(ctx); err != nil {
		return response, errors.Wrap(err, "erro ao aguardar limite de requisições")
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, c.listURL, nil)
	if err != nil {
		return response, errors.Wrap(err, "erro ao criar a requisição")
	}

	req.Header.Set("Content-Type", c.contentType)
	req.Header.Set("Accept", "application/json")

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return response, errors.Wrap(err, "erro ao executar a requisição")
	}
	defer resp.Body.Close()

	if resp.StatusCode < http.StatusOK || resp.StatusCode >= http.StatusMultipleChoices {
		return response, errors.Errorf("requisição falhou com status: %s", resp.Status)
	}

	if err := json.NewDecoder(resp.Body).Decode(&response); err != nil {
		return response, errors.Wrap(err, "erro ao decodificar a resposta")
	}

	return response, nil
}
