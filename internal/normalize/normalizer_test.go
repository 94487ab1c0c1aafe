package normalize

import "testing"

// TestNormalize verifies HTML stripping, entity decoding, and whitespace
// collapsing.
func TestNormalize(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name string
		in   string
		want string
	}{
		{
			name: "plain text passes through",
			in:   "Just a plain sentence.",
			want: "Just a plain sentence.",
		},
		{
			name: "inline tags strip without splitting words",
			in:   "A <strong>bold</strong> and <em>emphasized</em> claim.",
			want: "A bold and emphasized claim.",
		},
		{
			name: "block tags become line breaks",
			in:   "<p>First paragraph.</p><p>Second paragraph.</p>",
			want: "First paragraph.\nSecond paragraph.",
		},
		{
			name: "script content is dropped",
			in:   "<p>Visible.</p><script>var hidden = 1;</script>",
			want: "Visible.",
		},
		{
			name: "style content is dropped",
			in:   "<style>p { color: red }</style>Visible text.",
			want: "Visible text.",
		},
		{
			name: "entities decode once",
			in:   "Fish &amp; chips cost &lt;5 &quot;pounds&quot;.",
			want: `Fish & chips cost <5 "pounds".`,
		},
		{
			name: "nbsp folds into a plain space",
			in:   "non&nbsp;breaking&nbsp;space",
			want: "non breaking space",
		},
		{
			name: "whitespace runs collapse",
			in:   "too    many\t\tspaces",
			want: "too many spaces",
		},
		{
			name: "repeated blank lines collapse to one",
			in:   "first\n\n\n\n\nsecond",
			want: "first\n\nsecond",
		},
		{
			name: "unclosed tags degrade gracefully",
			in:   "<p>Broken <b>markup here",
			want: "Broken markup here",
		},
		{
			name: "empty input stays empty",
			in:   "",
			want: "",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()
			if got := Normalize(tt.in); got != tt.want {
				t.Errorf("Normalize(%q) = %q, want %q", tt.in, got, tt.want)
			}
		})
	}
}

// TestWords verifies prose tokenization.
func TestWords(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name string
		in   string
		want []string
	}{
		{
			name: "simple words",
			in:   "three simple words",
			want: []string{"three", "simple", "words"},
		},
		{
			name: "apostrophes and hyphens stay inside words",
			in:   "don't over-engineer",
			want: []string{"don't", "over-engineer"},
		},
		{
			name: "punctuation is not a word",
			in:   "wait... what?!",
			want: []string{"wait", "what"},
		},
		{
			name: "digits count as words",
			in:   "version 2 shipped",
			want: []string{"version", "2", "shipped"},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()
			got := Words(tt.in)
			if len(got) != len(tt.want) {
				t.Fatalf("Words(%q) = %v, want %v", tt.in, got, tt.want)
			}
			for i := range got {
				if got[i] != tt.want[i] {
					t.Errorf("word %d = %q, want %q", i, got[i], tt.want[i])
				}
			}
		})
	}
}

// TestParagraphs verifies blank-line paragraph splitting.
func TestParagraphs(t *testing.T) {
	t.Parallel()

	got := Paragraphs("first paragraph\n\nsecond paragraph\n\n\n")
	if len(got) != 2 {
		t.Fatalf("expected 2 paragraphs, got %d: %v", len(got), got)
	}
	if got[0] != "first paragraph" || got[1] != "second paragraph" {
		t.Errorf("unexpected paragraphs: %v", got)
	}

	if got := Paragraphs(""); len(got) != 0 {
		t.Errorf("expected no paragraphs for empty input, got %v", got)
	}
}
