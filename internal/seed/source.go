package seed

import (
	"context"
	_ "embed"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"time"

	"review-mine/internal/domain"
)

//go:embed seed.json
var bundled []byte

// Source entrega el dataset semilla usado en la primera carga.
type Source interface {
	Fetch(ctx context.Context) (domain.Dataset, error)
}

// Decode parsea un documento {users, posts}. No valida el esquema.
func Decode(raw []byte) (domain.Dataset, error) {
	var ds domain.Dataset
	if err := json.Unmarshal(raw, &ds); err != nil {
		return domain.Dataset{}, fmt.Errorf("decode dataset: %w", err)
	}
	return ds, nil
}

// EmbeddedSource sirve el seed compilado en el binario.
type EmbeddedSource struct{}

func NewEmbeddedSource() EmbeddedSource {
	return EmbeddedSource{}
}

func (EmbeddedSource) Fetch(_ context.Context) (domain.Dataset, error) {
	return Decode(bundled)
}

// HTTPSource hace GET contra un recurso estatico.
type HTTPSource struct {
	url    string
	client *http.Client
}

func NewHTTPSource(url string, httpClient *http.Client) *HTTPSource {
	if httpClient == nil {
		httpClient = &http.Client{Timeout: 15 * time.Second}
	}
	return &HTTPSource{url: url, client: httpClient}
}

func (s *HTTPSource) Fetch(ctx context.Context) (domain.Dataset, error) {
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, s.url, nil)
	if err != nil {
		return domain.Dataset{}, fmt.Errorf("create request: %w", err)
	}
	req.Header.Set("Accept", "application/json")

	resp, err := s.client.Do(req)
	if err != nil {
		return domain.Dataset{}, fmt.Errorf("do request: %w", err)
	}
	defer resp.Body.Close()

	body, err := io.ReadAll(resp.Body)
	if err != nil {
		return domain.Dataset{}, fmt.Errorf("read response: %w", err)
	}
	if resp.StatusCode < 200 || resp.StatusCode >= 300 {
		return domain.Dataset{}, fmt.Errorf("seed fetch failed: status=%d", resp.StatusCode)
	}
	return Decode(body)
}
