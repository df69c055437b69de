package ai

import (
	"errors"
	"strings"
	"testing"
)

func TestFormatProse(t *testing.T) {
	tests := []struct {
		name string
		in   string
		want []string
	}{
		{
			name: "bold spans",
			in:   "This is **important** text",
			want: []string{"<strong>important</strong>"},
		},
		{
			name: "inline code",
			in:   "Use the `map` builtin",
			want: []string{"<code>map</code>"},
		},
		{
			name: "code fence with language",
			in:   "Example:\n```go\nfunc main() {}\n```",
			want: []string{`<pre><code class="language-go">func main() {}</code></pre>`},
		},
		{
			name: "code fence without language",
			in:   "```\nplain text\n```",
			want: []string{`<pre><code class="language-plaintext">plain text</code></pre>`},
		},
		{
			name: "bullets",
			in:   "- first\n- second",
			want: []string{"• first", "• second"},
		},
		{
			name: "newlines become breaks",
			in:   "line one\nline two",
			want: []string{"line one<br>line two"},
		},
		{
			name: "excess blank lines collapse",
			in:   "a\n\n\n\n\nb",
			want: []string{"a<br><br>b"},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := FormatProse(tt.in)
			for _, w := range tt.want {
				if !strings.Contains(got, w) {
					t.Errorf("expected output to contain %q, got %q", w, got)
				}
			}
		})
	}
}

func TestFormatProseCodeFenceOrdering(t *testing.T) {
	in := "Before\n```python\nx = 1\nprint(x)\n```\nAfter"
	got := FormatProse(in)

	if strings.Contains(got, "```") {
		t.Errorf("fence markers leaked into output: %q", got)
	}
	if !strings.Contains(got, `<pre><code class="language-python">`) {
		t.Errorf("missing pre/code wrapper: %q", got)
	}
	if !strings.Contains(got, "x = 1<br>print(x)") {
		t.Errorf("code contents missing or reordered: %q", got)
	}
}

func TestFormatProseIdempotentOnFormattedFragment(t *testing.T) {
	in := "Answer:\n\n- first point\n- second with **emphasis** and `code`"
	once := FormatProse(in)
	twice := FormatProse(once)

	if once != twice {
		t.Errorf("second pass changed formatted output:\n once: %q\ntwice: %q", once, twice)
	}
}

func TestExtractJSONArray(t *testing.T) {
	type card struct {
		Question string `json:"question"`
		Answer   string `json:"answer"`
	}

	tests := []struct {
		name    string
		in      string
		wantLen int
		wantErr bool
	}{
		{
			name:    "bare array",
			in:      `[{"question":"Q1","answer":"A1"}]`,
			wantLen: 1,
		},
		{
			name:    "fenced with preamble",
			in:      "Here you go:\n```json\n[{\"question\":\"Q1\",\"answer\":\"A1\"}]\n```",
			wantLen: 1,
		},
		{
			name:    "surrounding prose",
			in:      "Sure! Here are the cards:\n[{\"question\":\"Q1\",\"answer\":\"A1\"},{\"question\":\"Q2\",\"answer\":\"A2\"}]\nLet me know if you need more.",
			wantLen: 2,
		},
		{
			name:    "no array at all",
			in:      "I cannot help with that.",
			wantErr: true,
		},
		{
			name:    "truncated array",
			in:      `[{"question":"Q1","answer":]`,
			wantErr: true,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			var got []card
			err := ExtractJSONArray(tt.in, &got)
			if tt.wantErr {
				if err == nil {
					t.Fatal("expected error, got nil")
				}
				var pe *ParseError
				if !errors.As(err, &pe) {
					t.Fatalf("expected *ParseError, got %T", err)
				}
				return
			}
			if err != nil {
				t.Fatalf("unexpected error: %v", err)
			}
			if len(got) != tt.wantLen {
				t.Errorf("expected %d elements, got %d", tt.wantLen, len(got))
			}
		})
	}
}
