package persona

import (
	_ "embed"
	"fmt"
	"strings"

	"gopkg.in/yaml.v3"

	"github.com/zhouzirui/medmind/backend/internal/analysis/mood"
)

//go:embed medmind.yaml
var medmindDocument []byte

// Persona captures the assistant's fixed safety statement and its tone table.
type Persona struct {
	ID        string
	Name      string
	Statement string
	Tones     *mood.ToneTable
}

type document struct {
	ID        string `yaml:"id"`
	Name      string `yaml:"name"`
	Statement string `yaml:"statement"`
	Tone      struct {
		Default string            `yaml:"default"`
		Moods   map[string]string `yaml:"moods"`
	} `yaml:"tone"`
}

// Parse decodes a persona document.
func Parse(data []byte) (Persona, error) {
	var doc document
	if err := yaml.Unmarshal(data, &doc); err != nil {
		return Persona{}, fmt.Errorf("decode persona: %w", err)
	}

	statement := strings.TrimSpace(doc.Statement)
	if statement == "" {
		return Persona{}, fmt.Errorf("persona %q has no statement", doc.ID)
	}

	tones, err := mood.NewToneTable(doc.Tone.Moods, doc.Tone.Default)
	if err != nil {
		return Persona{}, fmt.Errorf("persona %q: %w", doc.ID, err)
	}

	return Persona{
		ID:        doc.ID,
		Name:      doc.Name,
		Statement: statement,
		Tones:     tones,
	}, nil
}

// MedMind returns the built-in supportive assistant persona.
func MedMind() (Persona, error) {
	return Parse(medmindDocument)
}
