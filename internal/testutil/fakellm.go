package testutil

import (
	"context"
	"sync"

	"github.com/resonanceresearch/mentor/internal/llm"
)

// FakeLLM is a scripted llm.Client for tests. Responses are returned in
// order; once exhausted, the last one repeats. A nil script or a response
// with Err set simulates failures.
type FakeLLM struct {
	mu        sync.Mutex
	script    []FakeResponse
	callCount int
	Requests  []llm.GenerateRequest
}

// FakeResponse is one scripted reply.
type FakeResponse struct {
	Text string
	Err  error
}

// NewFakeLLM creates a FakeLLM with the given script.
func NewFakeLLM(script ...FakeResponse) *FakeLLM {
	return &FakeLLM{script: script}
}

func (f *FakeLLM) Generate(ctx context.Context, req llm.GenerateRequest) (*llm.GenerateResponse, error) {
	f.mu.Lock()
	defer f.mu.Unlock()

	f.Requests = append(f.Requests, req)
	f.callCount++

	if len(f.script) == 0 {
		return nil, llm.ErrDisabled
	}
	idx := f.callCount - 1
	if idx >= len(f.script) {
		idx = len(f.script) - 1
	}
	resp := f.script[idx]
	if resp.Err != nil {
		return nil, resp.Err
	}
	return &llm.GenerateResponse{Text: resp.Text, Model: "fake"}, nil
}

func (f *FakeLLM) Available(ctx context.Context) bool {
	f.mu.Lock()
	defer f.mu.Unlock()
	return len(f.script) > 0
}

// Calls returns how many Generate calls were made.
func (f *FakeLLM) Calls() int {
	f.mu.Lock()
	defer f.mu.Unlock()
	return f.callCount
}
