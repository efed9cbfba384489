package chat

import (
	"context"
	"errors"
	"log"

	"github.com/google/uuid"

	"github.com/zhouzirui/medmind/backend/internal/config"
	"github.com/zhouzirui/medmind/backend/internal/model/chat"
	"github.com/zhouzirui/medmind/backend/internal/service/ai"
)

// Service turns a chat request into a single reply. It holds no mutable state.
type Service struct {
	prompts   *ai.PromptBuilder
	generator ai.Generator
	cfg       config.AIConfig
}

// NewService wires the prompt builder and generator. generator may be nil
// when no credential is configured or the provider could not be initialized.
func NewService(prompts *ai.PromptBuilder, generator ai.Generator, cfg config.AIConfig) *Service {
	return &Service{
		prompts:   prompts,
		generator: generator,
		cfg:       cfg,
	}
}

// Reply returns the text for req. It never fails; every failure is mapped to
// a fallback sentence by Outcome.Reply.
func (s *Service) Reply(ctx context.Context, req chat.Request) string {
	return s.Generate(ctx, req).Reply()
}

// Generate runs one generation attempt and classifies the result.
func (s *Service) Generate(ctx context.Context, req chat.Request) Outcome {
	if !s.cfg.HasCredential() {
		log.Printf("[chat] %s not configured, skipping generation", s.cfg.CredentialEnv)
		return Outcome{Kind: OutcomeMissingCredential, CredentialEnv: s.cfg.CredentialEnv}
	}

	callID := uuid.NewString()
	if s.generator == nil {
		log.Printf("[chat] call=%s provider=%s unavailable", callID, s.cfg.Provider)
		return Outcome{Kind: OutcomeServiceFailure, Err: errors.New("generator not initialized")}
	}

	prompt := s.prompts.Build(req.Message, req.Name, req.Mood)

	if s.cfg.Timeout > 0 {
		var cancel context.CancelFunc
		ctx, cancel = context.WithTimeout(ctx, s.cfg.Timeout)
		defer cancel()
	}

	result, err := s.generator.Generate(ctx, prompt)
	if err != nil {
		kind := OutcomeServiceFailure
		if errors.Is(err, context.DeadlineExceeded) {
			kind = OutcomeTimeout
		}
		log.Printf("[chat] call=%s provider=%s outcome=%s: %v", callID, s.cfg.Provider, kind, err)
		return Outcome{Kind: kind, Err: err}
	}

	log.Printf("[chat] call=%s provider=%s model=%s outcome=%s candidates=%d", callID, s.cfg.Provider, s.cfg.Model, OutcomeGenerated, len(result.Candidates))
	return Outcome{Kind: OutcomeGenerated, Result: result}
}
