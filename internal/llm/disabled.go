package llm

import (
	"context"
	"errors"
)

// ErrDisabled indicates the LLM subsystem is switched off by configuration.
var ErrDisabled = errors.New("llm disabled; set RECAP_LLM_ENABLED=true")

// disabledClient fails every generation. Wiring it keeps the insight
// path alive for cached text when no generator is configured.
type disabledClient struct{}

// NewDisabledClient returns an LLMClient that refuses all calls.
func NewDisabledClient() LLMClient {
	return disabledClient{}
}

func (disabledClient) Generate(context.Context, GenerateRequest) (*GenerateResponse, error) {
	return nil, ErrDisabled
}

func (disabledClient) Available(context.Context) bool { return false }
