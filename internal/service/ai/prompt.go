package ai

import (
	"strings"

	"github.com/zhouzirui/medmind/backend/internal/analysis/mood"
	"github.com/zhouzirui/medmind/backend/internal/model/persona"
)

const unknownName = "Unknown"

// PromptBuilder renders single-turn prompts for a persona.
type PromptBuilder struct {
	persona persona.Persona
}

// NewPromptBuilder creates a builder bound to the given persona.
func NewPromptBuilder(p persona.Persona) *PromptBuilder {
	return &PromptBuilder{persona: p}
}

// Build composes the persona statement, the tone guidance for the mood and
// the conversation context. It never fails and has no side effects.
func (b *PromptBuilder) Build(message, name, moodValue string) string {
	displayName := strings.TrimSpace(name)
	if displayName == "" {
		displayName = unknownName
	}

	var builder strings.Builder
	builder.WriteString(b.persona.Statement)
	builder.WriteString("\n\nTone guidance: ")
	builder.WriteString(b.persona.Tones.Resolve(moodValue))
	builder.WriteString("\n\n--- Conversation Context ---\n")
	builder.WriteString("User name: ")
	builder.WriteString(displayName)
	builder.WriteString("\nCurrent mood: ")
	builder.WriteString(mood.Display(moodValue))
	builder.WriteString("\nUser message: ")
	builder.WriteString(message)
	return builder.String()
}
