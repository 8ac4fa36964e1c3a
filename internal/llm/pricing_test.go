package llm

import "testing"

func TestLookupCost(t *testing.T) {
	tests := []struct {
		model string
		want  *ModelCost
	}{
		{"gemini-2.0-flash", &ModelCost{0.1, 0.4}},
		{"gemini-2.0-flash-001", &ModelCost{0.1, 0.4}},
		{"google/gemini-2.0-flash-exp", &ModelCost{0.1, 0.4}},
		{"claude-haiku-4-5-20251001", &ModelCost{1, 5}},
		{"gpt-4o-mini", &ModelCost{0.15, 0.6}},
		{"mock", nil},
		{"", nil},
	}
	for _, tt := range tests {
		got := LookupCost(tt.model)
		switch {
		case tt.want == nil && got != nil:
			t.Errorf("LookupCost(%q) = %+v, want nil", tt.model, *got)
		case tt.want != nil && (got == nil || *got != *tt.want):
			t.Errorf("LookupCost(%q) = %v, want %+v", tt.model, got, *tt.want)
		}
	}
}

func TestModelCost(t *testing.T) {
	c := ModelCost{InputPerMTok: 0.1, OutputPerMTok: 0.4}
	got := c.Cost(1_000_000, 500_000)
	if got < 0.2999 || got > 0.3001 {
		t.Fatalf("Cost = %v, want 0.3", got)
	}
}
