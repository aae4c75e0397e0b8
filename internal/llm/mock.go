package llm

import (
	"context"
	"sync"
)

// MockClient permite tests sin llamar a un LLM real.
type MockClient struct {
	Response string
	Err      error

	mu                    sync.Mutex
	Calls                 int
	LastPrompt            string
	LastSystemInstruction string
}

func (m *MockClient) Generate(ctx context.Context, prompt, systemInstruction string) (string, error) {
	m.mu.Lock()
	m.Calls++
	m.LastPrompt = prompt
	m.LastSystemInstruction = systemInstruction
	m.mu.Unlock()
	return m.Response, m.Err
}

// CallCount es seguro entre goroutines.
func (m *MockClient) CallCount() int {
	m.mu.Lock()
	defer m.mu.Unlock()
	return m.Calls
}
