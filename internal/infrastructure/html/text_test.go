package html

import "testing"

func TestExtractText(t *testing.T) {
	tests := []struct {
		name     string
		input    string
		expected string
	}{
		{
			name:     "empty",
			input:    "",
			expected: "",
		},
		{
			name:     "plain text",
			input:    "just text",
			expected: "just text",
		},
		{
			name: "reddit body block",
			input: `<!-- SC_OFF --><div class="md"><p>We are hiring.</p><p>Apply <a href="https://example.com">here</a>.</p></div><!-- SC_ON -->` +
				` &#32; submitted by &#32; <a href="https://www.reddit.com/user/alice"> /u/alice </a>`,
			expected: "We are hiring.\n\nApply here.",
		},
		{
			name:     "link post without body",
			input:    `<table><tr><td> &#32; submitted by &#32; <a href="https://www.reddit.com/user/bob"> /u/bob </a></td></tr></table>`,
			expected: "submitted by /u/bob",
		},
		{
			name:     "list items",
			input:    `<div class="md"><ul><li>one</li><li>two</li></ul></div>`,
			expected: "one\n\ntwo",
		},
		{
			name:     "nested quote paragraph",
			input:    `<div class="md"><blockquote><p>quoted</p></blockquote></div>`,
			expected: "quoted",
		},
		{
			name:     "scripts removed",
			input:    `<div class="md"><script>alert(1)</script><p>safe</p></div>`,
			expected: "safe",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := ExtractText(tt.input)
			if err != nil {
				t.Fatalf("unexpected error: %v", err)
			}
			if got != tt.expected {
				t.Errorf("expected %q, got %q", tt.expected, got)
			}
		})
	}
}
