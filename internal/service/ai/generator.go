package ai

import (
	"context"
	"errors"
	"fmt"
	"strings"

	"github.com/zhouzirui/medmind/backend/internal/config"
)

var (
	ErrMissingCredential = errors.New("generation credential not configured")
	ErrUnknownProvider   = errors.New("unknown generation provider")
	ErrEmptyPrompt       = errors.New("prompt cannot be empty")
)

// Generator sends a prompt to a hosted text-generation service.
type Generator interface {
	Generate(ctx context.Context, prompt string) (Result, error)
}

// NewGenerator creates the adapter for the configured provider.
func NewGenerator(ctx context.Context, cfg config.AIConfig) (Generator, error) {
	if !cfg.HasCredential() {
		return nil, ErrMissingCredential
	}

	switch cfg.Provider {
	case config.ProviderGemini:
		gen, err := NewGeminiGenerator(ctx, cfg)
		if err != nil {
			return nil, err
		}
		return gen, nil
	case config.ProviderArk:
		chatModel, err := cfg.NewChatModel(ctx)
		if err != nil {
			return nil, fmt.Errorf("failed to create chat model: %w", err)
		}
		gen, err := NewArkGenerator(ctx, chatModel)
		if err != nil {
			return nil, err
		}
		return gen, nil
	case config.ProviderOpenAI:
		return NewOpenAIGenerator(cfg), nil
	default:
		return nil, fmt.Errorf("%w: %q", ErrUnknownProvider, cfg.Provider)
	}
}

func checkPrompt(prompt string) error {
	if strings.TrimSpace(prompt) == "" {
		return ErrEmptyPrompt
	}
	return nil
}
