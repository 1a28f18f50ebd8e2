// Package export formats the fixture corpus for use outside the fixture-cli
// ecosystem.
package export

import (
	"encoding/json"
	"strings"

	"github.com/luuuc/fixture-cli/internal/corpus"
)

// FormatMarkdown generates a portable markdown rendering of the corpus,
// with each fixture's metadata and content in a fenced code block.
func FormatMarkdown(fixtures []*corpus.Fixture) string {
	var b strings.Builder

	b.WriteString("# Fixture Corpus\n\n")
	b.WriteString("Static source snippets for exercising detection and extraction tools.\n\n")

	for i, f := range fixtures {
		b.WriteString("## ")
		b.WriteString(f.Filename)
		b.WriteString("\n")

		b.WriteString("**Language**: ")
		b.WriteString(f.Language)
		b.WriteString("\n\n")

		if f.Description != "" {
			b.WriteString(f.Description)
			b.WriteString("\n\n")
		}

		if len(f.Symbols) > 0 {
			b.WriteString("**Symbols**:\n")
			for _, s := range f.Symbols {
				b.WriteString("- ")
				b.WriteString(s.Name)
				b.WriteString(" (")
				b.WriteString(s.Kind)
				b.WriteString(")\n")
			}
			b.WriteString("\n")
		}

		b.WriteString("```")
		b.WriteString(fence(f.Language))
		b.WriteString("\n")
		b.WriteString(strings.TrimRight(f.Content, "\n"))
		b.WriteString("\n```\n")

		// Separator between fixtures (but not after the last one)
		if i < len(fixtures)-1 {
			b.WriteString("\n---\n\n")
		}
	}

	return b.String()
}

// FormatJSON generates an indented JSON rendering of the fixtures' metadata.
func FormatJSON(fixtures []*corpus.Fixture) ([]byte, error) {
	return json.MarshalIndent(fixtures, "", "  ")
}

// fence maps a corpus language name to a markdown code-fence label.
func fence(language string) string {
	switch language {
	case "C++":
		return "cpp"
	case "C#":
		return "csharp"
	default:
		return strings.ToLower(language)
	}
}
