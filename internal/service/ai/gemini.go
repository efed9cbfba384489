package ai

import (
	"context"
	"fmt"
	"strings"

	"google.golang.org/genai"

	"github.com/zhouzirui/medmind/backend/internal/config"
)

// GeminiGenerator calls the Gemini API through the genai SDK.
type GeminiGenerator struct {
	client  *genai.Client
	model   string
	content *genai.GenerateContentConfig
}

// NewGeminiGenerator 创建一个使用 Gemini API 的生成器。
func NewGeminiGenerator(ctx context.Context, cfg config.AIConfig) (*GeminiGenerator, error) {
	clientCfg := &genai.ClientConfig{
		APIKey:  cfg.APIKey,
		Backend: genai.BackendGeminiAPI,
	}
	if cfg.BaseURL != "" {
		clientCfg.HTTPOptions = genai.HTTPOptions{BaseURL: cfg.BaseURL}
	}

	client, err := genai.NewClient(ctx, clientCfg)
	if err != nil {
		return nil, fmt.Errorf("failed to create genai client: %w", err)
	}

	return &GeminiGenerator{
		client:  client,
		model:   cfg.Model,
		content: geminiContentConfig(cfg),
	}, nil
}

// Generate sends the prompt as a single user turn and decodes the response.
func (g *GeminiGenerator) Generate(ctx context.Context, prompt string) (Result, error) {
	if err := checkPrompt(prompt); err != nil {
		return Result{}, err
	}

	resp, err := g.client.Models.GenerateContent(ctx, g.model, genai.Text(prompt), g.content)
	if err != nil {
		return Result{}, fmt.Errorf("gemini generate content: %w", err)
	}
	return decodeGemini(resp), nil
}

func decodeGemini(resp *genai.GenerateContentResponse) Result {
	if resp == nil {
		return Result{}
	}

	result := Result{}
	// resp.Text() assumes every part of the first candidate is non-nil.
	if len(resp.Candidates) > 0 {
		result.Text = candidateText(resp.Candidates[0])
	}
	for _, candidate := range resp.Candidates {
		var parts []string
		if candidate != nil && candidate.Content != nil {
			for _, part := range candidate.Content.Parts {
				if part == nil {
					parts = append(parts, "")
					continue
				}
				parts = append(parts, part.Text)
			}
		}
		result.Candidates = append(result.Candidates, Candidate{Parts: parts})
	}
	return result
}

// candidateText joins the non-thought text parts of a candidate.
func candidateText(candidate *genai.Candidate) string {
	if candidate == nil || candidate.Content == nil {
		return ""
	}

	var b strings.Builder
	for _, part := range candidate.Content.Parts {
		if part == nil || part.Thought {
			continue
		}
		b.WriteString(part.Text)
	}
	return b.String()
}

func geminiContentConfig(cfg config.AIConfig) *genai.GenerateContentConfig {
	if cfg.Temperature == nil && cfg.TopP == nil && cfg.MaxTokens == nil {
		return nil
	}

	content := &genai.GenerateContentConfig{}
	if cfg.Temperature != nil {
		content.Temperature = genai.Ptr(float32(*cfg.Temperature))
	}
	if cfg.TopP != nil {
		content.TopP = genai.Ptr(float32(*cfg.TopP))
	}
	if cfg.MaxTokens != nil {
		content.MaxOutputTokens = int32(*cfg.MaxTokens)
	}
	return content
}
