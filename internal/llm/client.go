package llm

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"net/http"
	"strings"
	"time"

	"go.uber.org/zap"
)

const (
	defaultChatBaseURL = "https://api.openai.com/v1"
	chatTimeout        = 60 * time.Second
	maxLoggedBody      = 512
)

// HTTPClient habla con cualquier endpoint /chat/completions compatible con OpenAI.
type HTTPClient struct {
	endpoint string
	apiKey   string
	model    string
	http     *http.Client
	logger   *zap.Logger
}

func NewHTTPClient(baseURL, apiKey, model string, logger *zap.Logger) *HTTPClient {
	if baseURL == "" {
		baseURL = defaultChatBaseURL
	}
	if logger == nil {
		logger = zap.NewNop()
	}
	return &HTTPClient{
		endpoint: strings.TrimRight(baseURL, "/") + "/chat/completions",
		apiKey:   apiKey,
		model:    model,
		http:     &http.Client{Timeout: chatTimeout},
		logger:   logger.Named("llm.http"),
	}
}

// Generate manda la instruccion de sistema (si hay) seguida del prompt del usuario.
func (c *HTTPClient) Generate(ctx context.Context, prompt, systemInstruction string) (string, error) {
	req, err := c.newRequest(ctx, completionRequest(c.model, prompt, systemInstruction))
	if err != nil {
		return "", err
	}

	resp, err := c.http.Do(req)
	if err != nil {
		return "", fmt.Errorf("chat completion: %w", err)
	}
	defer resp.Body.Close()

	body, err := io.ReadAll(resp.Body)
	if err != nil {
		return "", fmt.Errorf("chat completion: read body: %w", err)
	}

	if resp.StatusCode >= http.StatusBadRequest {
		c.logger.Warn("chat completion rejected",
			zap.Int("status", resp.StatusCode),
			zap.String("model", c.model),
			zap.String("body", truncate(string(body), maxLoggedBody)),
		)
		return "", fmt.Errorf("chat completion: status %d", resp.StatusCode)
	}

	return decodeCompletion(body)
}

func (c *HTTPClient) newRequest(ctx context.Context, payload chatRequest) (*http.Request, error) {
	raw, err := json.Marshal(payload)
	if err != nil {
		return nil, fmt.Errorf("chat completion: encode: %w", err)
	}
	req, err := http.NewRequestWithContext(ctx, http.MethodPost, c.endpoint, bytes.NewReader(raw))
	if err != nil {
		return nil, fmt.Errorf("chat completion: build request: %w", err)
	}
	req.Header.Set("Authorization", "Bearer "+c.apiKey)
	req.Header.Set("Content-Type", "application/json")
	return req, nil
}

func completionRequest(model, prompt, systemInstruction string) chatRequest {
	out := chatRequest{Model: model}
	if systemInstruction != "" {
		out.Messages = append(out.Messages, chatMessage{Role: "system", Content: systemInstruction})
	}
	out.Messages = append(out.Messages, chatMessage{Role: "user", Content: prompt})
	return out
}

// decodeCompletion devuelve el texto de la primera opcion; sin texto es ErrEmptyResponse.
func decodeCompletion(body []byte) (string, error) {
	var cr chatResponse
	if err := json.Unmarshal(body, &cr); err != nil {
		return "", fmt.Errorf("chat completion: decode: %w", err)
	}
	if cr.Error != nil {
		return "", errors.New("chat completion: " + cr.Error.Message)
	}
	if len(cr.Choices) == 0 || cr.Choices[0].Message.Content == "" {
		return "", ErrEmptyResponse
	}
	return cr.Choices[0].Message.Content, nil
}

func truncate(s string, n int) string {
	if len(s) <= n {
		return s
	}
	return s[:n] + "..."
}

type chatRequest struct {
	Model    string        `json:"model"`
	Messages []chatMessage `json:"messages"`
}

type chatMessage struct {
	Role    string `json:"role"`
	Content string `json:"content"`
}

type chatResponse struct {
	Choices []struct {
		Message chatMessage `json:"message"`
	} `json:"choices"`
	Error *struct {
		Message string `json:"message"`
	} `json:"error,omitempty"`
}
