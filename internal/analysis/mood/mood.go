// Package mood normalizes user-reported moods and maps them to tone guidance.
package mood

import (
	"fmt"
	"strings"
)

// Label 表示可识别的心情标签。
type Label string

const (
	Sad      Label = "sad"
	Angry    Label = "angry"
	Stressed Label = "stressed"
	Happy    Label = "happy"
)

// DisplayNeutral is shown in prompts when no mood was reported.
const DisplayNeutral = "Neutral"

// Key normalizes a raw mood into a lookup key. Any string is accepted.
func Key(raw string) Label {
	return Label(strings.ToLower(strings.TrimSpace(raw)))
}

// Display returns the mood as it should appear in the prompt context.
func Display(raw string) string {
	if trimmed := strings.TrimSpace(raw); trimmed != "" {
		return trimmed
	}
	return DisplayNeutral
}

// ToneTable maps mood labels to tone instructions. It is read-only once built.
type ToneTable struct {
	tones    map[Label]string
	fallback string
}

// NewToneTable builds a table from raw mood keys. Keys are normalized with Key.
func NewToneTable(tones map[string]string, fallback string) (*ToneTable, error) {
	if strings.TrimSpace(fallback) == "" {
		return nil, fmt.Errorf("tone table requires a default tone")
	}

	table := &ToneTable{
		tones:    make(map[Label]string, len(tones)),
		fallback: fallback,
	}
	for raw, tone := range tones {
		label := Key(raw)
		if label == "" {
			return nil, fmt.Errorf("tone table contains an empty mood key")
		}
		if strings.TrimSpace(tone) == "" {
			return nil, fmt.Errorf("tone for mood %q is empty", label)
		}
		if _, dup := table.tones[label]; dup {
			return nil, fmt.Errorf("mood %q is defined more than once", label)
		}
		table.tones[label] = tone
	}
	return table, nil
}

// Resolve returns the tone for a raw mood, or the default tone when unmatched.
func (t *ToneTable) Resolve(raw string) string {
	if tone, ok := t.tones[Key(raw)]; ok {
		return tone
	}
	return t.fallback
}

// Default returns the tone used for unknown or empty moods.
func (t *ToneTable) Default() string {
	return t.fallback
}

// Len reports how many moods have a dedicated tone.
func (t *ToneTable) Len() int {
	return len(t.tones)
}
