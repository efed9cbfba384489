package ai

import (
	"context"
	"fmt"

	"github.com/cloudwego/eino/components/model"
	"github.com/cloudwego/eino/components/prompt"
	"github.com/cloudwego/eino/compose"
	"github.com/cloudwego/eino/schema"
)

// ArkGenerator runs prompts through an eino chain ending in a chat model.
type ArkGenerator struct {
	chain compose.Runnable[map[string]any, *schema.Message]
}

// NewArkGenerator compiles a single-message chain around chatModel.
func NewArkGenerator(ctx context.Context, chatModel model.BaseChatModel) (*ArkGenerator, error) {
	promptTemplate := prompt.FromMessages(
		schema.FString,
		schema.UserMessage("{prompt}"),
	)

	chain := compose.NewChain[map[string]any, *schema.Message]()
	chain.AppendChatTemplate(promptTemplate)
	chain.AppendChatModel(chatModel)

	runnable, err := chain.Compile(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to compile generation chain: %w", err)
	}

	return &ArkGenerator{chain: runnable}, nil
}

func (a *ArkGenerator) Generate(ctx context.Context, prompt string) (Result, error) {
	if err := checkPrompt(prompt); err != nil {
		return Result{}, err
	}

	message, err := a.chain.Invoke(ctx, map[string]any{"prompt": prompt})
	if err != nil {
		return Result{}, fmt.Errorf("failed to run generation chain: %w", err)
	}
	if message == nil {
		return Result{}, nil
	}
	return Result{Text: message.Content}, nil
}
