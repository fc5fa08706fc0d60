package mock

import (
	"context"
	"sync"
)

// Call: одно обращение к провайдеру, записанное моком.
type Call struct {
	APIKey string
	Action string
	Params map[string]string
}

// MockProvider отвечает заранее заданным документом и запоминает вызовы.
type MockProvider struct {
	Response  any
	Responses map[string]any
	Err       error

	mu    sync.Mutex
	calls []Call
}

func NewMockProvider() *MockProvider {
	return &MockProvider{Responses: make(map[string]any)}
}

func (m *MockProvider) Name() string {
	return "mock"
}

func (m *MockProvider) Call(ctx context.Context, apiKey, action string, params map[string]string) (any, error) {
	m.mu.Lock()
	defer m.mu.Unlock()

	copied := make(map[string]string, len(params))
	for k, v := range params {
		copied[k] = v
	}
	m.calls = append(m.calls, Call{APIKey: apiKey, Action: action, Params: copied})

	if m.Err != nil {
		return nil, m.Err
	}
	if resp, ok := m.Responses[action]; ok {
		return resp, nil
	}
	return m.Response, nil
}

func (m *MockProvider) Calls() []Call {
	m.mu.Lock()
	defer m.mu.Unlock()
	return append([]Call(nil), m.calls...)
}
