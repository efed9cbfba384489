package persona

import (
	"strings"
	"testing"

	"github.com/zhouzirui/medmind/backend/internal/analysis/mood"
)

func TestMedMindLoadsEmbeddedDocument(t *testing.T) {
	p, err := MedMind()
	if err != nil {
		t.Fatalf("MedMind err: %v", err)
	}

	if p.Name != "MedMind" {
		t.Fatalf("unexpected name: %s", p.Name)
	}
	if !strings.HasPrefix(p.Statement, "You are MedMind, a supportive, empathetic mental health assistant. ") {
		t.Fatalf("unexpected statement: %q", p.Statement)
	}
	if !strings.HasSuffix(p.Statement, "Keep responses concise and warm.") {
		t.Fatalf("unexpected statement ending: %q", p.Statement)
	}
	if p.Tones.Len() != 4 {
		t.Fatalf("expected 4 mood tones, got %d", p.Tones.Len())
	}

	for _, label := range []mood.Label{mood.Sad, mood.Angry, mood.Stressed, mood.Happy} {
		if p.Tones.Resolve(string(label)) == p.Tones.Default() {
			t.Fatalf("mood %q resolved to the default tone", label)
		}
	}
	if p.Tones.Default() != "Use a balanced, warm, and supportive tone." {
		t.Fatalf("unexpected default tone: %q", p.Tones.Default())
	}
}

func TestParseRejectsIncompleteDocuments(t *testing.T) {
	cases := map[string]string{
		"invalid yaml": "id: [",
		"no statement": "id: x\ntone:\n  default: d\n",
		"no default":   "id: x\nstatement: s\n",
	}
	for name, doc := range cases {
		t.Run(name, func(t *testing.T) {
			if _, err := Parse([]byte(doc)); err == nil {
				t.Fatal("expected error")
			}
		})
	}
}
