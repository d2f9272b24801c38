package narrator

import "testing"

// TestSpokenText tests markdown-to-speech text reduction.
func TestSpokenText(t *testing.T) {
	tests := []struct {
		name  string
		input string
		want  string
	}{
		{
			name:  "plain text passes through",
			input: "A cache keeps copies of expensive results.",
			want:  "A cache keeps copies of expensive results.",
		},
		{
			name:  "emphasis is stripped",
			input: "This is **very** important and *subtle*.",
			want:  "This is very important and subtle.",
		},
		{
			name:  "headings keep their text",
			input: "# Caching\n\nCaches are fast.",
			want:  "Caching Caches are fast.",
		},
		{
			name:  "code blocks are dropped",
			input: "Before.\n\n```\nGET /v1/users\n```\n\nAfter.",
			want:  "Before. After.",
		},
		{
			name:  "whitespace collapses",
			input: "One   two\n\nthree.",
			want:  "One two three.",
		},
		{
			name:  "empty input",
			input: "",
			want:  "",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := SpokenText(tt.input); got != tt.want {
				t.Errorf("SpokenText(%q) = %q, want %q", tt.input, got, tt.want)
			}
		})
	}
}

// TestCountWords tests whitespace word counting.
func TestCountWords(t *testing.T) {
	tests := []struct {
		input string
		want  int
	}{
		{"", 0},
		{"   ", 0},
		{"one", 1},
		{"one two three", 3},
		{"spaced\tout\nwords here", 4},
	}

	for _, tt := range tests {
		if got := CountWords(tt.input); got != tt.want {
			t.Errorf("CountWords(%q) = %d, want %d", tt.input, got, tt.want)
		}
	}
}
