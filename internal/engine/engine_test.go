package engine

import "testing"

func TestParseAndSimplify(t *testing.T) {
	tests := []struct {
		name     string
		input    string
		expected string
	}{
		{"like terms", "x+2*x", `3 \cdot x`},
		{"undefined division", "1/0", "undefined"},
		{"undefined power", "0^0", "undefined"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			result, err := ParseAndSimplify(tt.input)
			if err != nil {
				t.Fatalf("ParseAndSimplify(%q) error: %v", tt.input, err)
			}
			if result != tt.expected {
				t.Errorf("ParseAndSimplify(%q) = %s, want %s", tt.input, result, tt.expected)
			}
		})
	}
}

func TestParseAndSimplifyPropagatesParseErrors(t *testing.T) {
	if _, err := ParseAndSimplify("("); err == nil {
		t.Errorf("expected a parse error for malformed input")
	}
}
