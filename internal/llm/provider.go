package llm

import (
	"context"
	"errors"
)

// LLMClient define la interfaz para generar texto con un LLM.
// systemInstruction puede ir vacio.
type LLMClient interface {
	Generate(ctx context.Context, prompt, systemInstruction string) (string, error)
}

// ErrEmptyResponse se devuelve cuando el proveedor responde sin texto.
var ErrEmptyResponse = errors.New("llm empty response")

// DisabledClient siempre falla; se usa cuando no hay proveedor configurado.
type DisabledClient struct {
	Reason string
}

func (c DisabledClient) Generate(_ context.Context, _, _ string) (string, error) {
	if c.Reason == "" {
		return "", errors.New("llm client disabled")
	}
	return "", errors.New(c.Reason)
}
