package ai

import (
	"encoding/json"
	"regexp"
	"strings"
)

var (
	multiNewline = regexp.MustCompile(`\n{3,}`)
	codeFence    = regexp.MustCompile("(?s)```(\\w+)?\\n(.*?)```")
	inlineCode   = regexp.MustCompile("`([^`]+)`")
	boldSpan     = regexp.MustCompile(`\*\*([^*]+)\*\*`)
	bulletLine   = regexp.MustCompile(`(?m)^- (.+)$`)
)

// FormatProse converts a lightweight-markdown model response into an HTML
// fragment. Code fences must be rewritten before inline code and newline
// conversion or the code contents get corrupted.
func FormatProse(raw string) string {
	formatted := strings.TrimSpace(raw)

	formatted = multiNewline.ReplaceAllString(formatted, "\n\n")

	formatted = codeFence.ReplaceAllStringFunc(formatted, func(m string) string {
		sub := codeFence.FindStringSubmatch(m)
		lang := sub[1]
		if lang == "" {
			lang = "plaintext"
		}
		return "\n<pre><code class=\"language-" + lang + "\">" + strings.TrimSpace(sub[2]) + "</code></pre>\n"
	})

	formatted = inlineCode.ReplaceAllString(formatted, "<code>$1</code>")
	formatted = boldSpan.ReplaceAllString(formatted, "<strong>$1</strong>")
	formatted = bulletLine.ReplaceAllString(formatted, "• $1")
	formatted = strings.ReplaceAll(formatted, "\n", "<br>")

	return formatted
}

// ExtractJSONArray locates the JSON array embedded in a model response and
// unmarshals it into v. Models routinely wrap the array in code fences or
// conversational text; everything before the first '[' and after the last
// ']' is discarded. Truncated or syntactically broken JSON is not
// recoverable and yields a ParseError.
func ExtractJSONArray(raw string, v any) error {
	jsonStr := strings.TrimSpace(raw)
	jsonStr = strings.ReplaceAll(jsonStr, "```json", "")
	jsonStr = strings.ReplaceAll(jsonStr, "```", "")

	start := strings.Index(jsonStr, "[")
	end := strings.LastIndex(jsonStr, "]")
	if start < 0 || end <= start {
		return &ParseError{Raw: raw}
	}

	if err := json.Unmarshal([]byte(jsonStr[start:end+1]), v); err != nil {
		return &ParseError{Raw: raw}
	}

	return nil
}
