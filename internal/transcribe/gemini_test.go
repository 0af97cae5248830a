package transcribe

import (
	"testing"
)

func TestCleanJSONResponse(t *testing.T) {
	tests := []struct {
		name  string
		input string
		want  string
	}{
		{
			name:  "plain json untouched",
			input: `[{"start": 0, "end": 1, "text": "hi"}]`,
			want:  `[{"start": 0, "end": 1, "text": "hi"}]`,
		},
		{
			name:  "json code fence stripped",
			input: "```json\n[{\"start\": 0}]\n```",
			want:  `[{"start": 0}]`,
		},
		{
			name:  "bare code fence stripped",
			input: "```\n[1, 2]\n```",
			want:  `[1, 2]`,
		},
		{
			name:  "surrounding whitespace trimmed",
			input: "  \n[1]\n  ",
			want:  `[1]`,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := cleanJSONResponse(tt.input); got != tt.want {
				t.Errorf("cleanJSONResponse(%q) = %q, want %q", tt.input, got, tt.want)
			}
		})
	}
}

func TestTruncateString(t *testing.T) {
	if got := truncateString("short", 10); got != "short" {
		t.Errorf("got %q", got)
	}
	if got := truncateString("a longer string", 8); got != "a longer..." {
		t.Errorf("got %q", got)
	}
}
