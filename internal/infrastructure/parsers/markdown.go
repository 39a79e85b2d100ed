package parsers

import (
	"fmt"
	"io"
	"strings"
)

// MarkdownEncoder writes ideas as a Markdown table. It has no parser.
type MarkdownEncoder struct{}

// Encode writes a heading, a count and one table row per idea.
func (e *MarkdownEncoder) Encode(w io.Writer, ideas []RawIdea) error {
	if _, err := fmt.Fprintf(w, "# Date Ideas\n\nTotal: %d ideas\n\n", len(ideas)); err != nil {
		return err
	}

	if _, err := fmt.Fprint(w, "| Name | Liked by | Location | Tags | Cost | Max people | Cost type |\n"); err != nil {
		return err
	}
	if _, err := fmt.Fprint(w, "|------|----------|----------|------|------|------------|-----------|\n"); err != nil {
		return err
	}

	for _, idea := range ideas {
		if _, err := fmt.Fprintf(w, "| %s | %s | %s | %s | %s | %s | %s |\n",
			escapeMarkdown(idea.Name),
			escapeMarkdown(strings.Join(idea.LikedBy, ", ")),
			escapeMarkdown(strings.Join(idea.Location, ", ")),
			escapeMarkdown(strings.Join(idea.Tags, ", ")),
			formatOptionalFloat(idea.Cost),
			formatOptionalInt(idea.MaxPeople),
			idea.CostType,
		); err != nil {
			return err
		}
	}

	return nil
}

func escapeMarkdown(s string) string {
	s = strings.ReplaceAll(s, "|", "\\|")
	s = strings.ReplaceAll(s, "\n", " ")
	return s
}
