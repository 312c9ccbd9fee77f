package ai

import (
	"strings"
	"testing"
)

func TestBuildPromptOrdering(t *testing.T) {
	prompt := BuildPrompt("gravity")

	if !strings.HasPrefix(prompt, "You are a concise Human Relevance Explanation Engine.") {
		t.Fatalf("prompt does not open with the instruction block")
	}
	if !strings.HasSuffix(prompt, "Respond in JSON.") {
		t.Fatalf("prompt does not end with the JSON directive")
	}

	topicIdx := strings.Index(prompt, "USER TOPIC: gravity")
	if topicIdx < 0 {
		t.Fatalf("prompt missing topic line")
	}
	guardIdx := strings.Index(prompt, "STRICT SAFETY GUARDRAILS:")
	if guardIdx < 0 || guardIdx > topicIdx {
		t.Fatalf("instruction block must precede the topic")
	}
}

func TestBuildPromptKeepsTopicVerbatim(t *testing.T) {
	tests := []struct {
		name  string
		topic string
	}{
		{"plain", "dopamine"},
		{"spaces", "  the placebo effect  "},
		{"empty", ""},
		{"punctuation", `what is "dark matter"?`},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			prompt := BuildPrompt(tc.topic)
			want := "USER TOPIC: " + tc.topic + "\n\nRespond in JSON."
			if !strings.HasSuffix(prompt, want) {
				t.Fatalf("expected prompt tail %q", want)
			}
		})
	}
}

func TestSystemInstructionPinsContract(t *testing.T) {
	required := []string{
		`"I cannot provide information on this topic due to safety guidelines."`,
		`"I cannot provide medical diagnoses. Please consult a professional."`,
		"what_it_is, human_connection, social_influence, relevant_studies, confidence_level, confidence_reason",
		`"High", "Moderate", or "Preliminary"`,
		"raw JSON",
	}

	for _, fragment := range required {
		if !strings.Contains(systemInstruction, fragment) {
			t.Fatalf("instruction missing fragment %q", fragment)
		}
	}
}
