package service

import (
	"strings"
	"testing"
)

func TestGenerateRuleSuggestions(t *testing.T) {
	parser := NewRuleParser()

	tests := []struct {
		name     string
		text     string
		wantHint string
	}{
		{"weekend input", "something about weekends", "weekdays"},
		{"holiday input", "holiday stuff", "holidays"},
		{"time input", "time of day", "9am and 5pm"},
		{"buffer input", "breaks please", "buffer"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			suggestions := parser.GenerateRuleSuggestions(tt.text)
			if len(suggestions) == 0 {
				t.Fatal("expected at least one suggestion")
			}
			found := false
			for _, s := range suggestions {
				if strings.Contains(strings.ToLower(s), tt.wantHint) {
					found = true
					break
				}
			}
			if !found {
				t.Errorf("no suggestion mentioning %q in %v", tt.wantHint, suggestions)
			}
		})
	}
}

func TestGenerateRuleSuggestionsFallback(t *testing.T) {
	parser := NewRuleParser()

	suggestions := parser.GenerateRuleSuggestions("xyzzy")
	if len(suggestions) != 3 {
		t.Errorf("fallback suggestions = %d, want the 3 generic examples", len(suggestions))
	}
}
