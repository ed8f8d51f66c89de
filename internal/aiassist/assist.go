package aiassist

import (
	"context"
	"fmt"
	"log/slog"
	"strings"
)

// Fixed responses. Callers can rely on these exact strings; the adapter
// never surfaces an error.
const (
	SummaryEmptyMessage = "No content provided to summarize."
	SummaryFallback     = "Could not generate summary due to an API error."
	CategoryFallback    = "Uncategorized"
)

// Assistant exposes the two assist operations over a Completer.
type Assistant struct {
	completer Completer
}

// NewAssistant creates an Assistant backed by the given completer.
func NewAssistant(c Completer) *Assistant {
	return &Assistant{completer: c}
}

// Summarize returns a concise summary of content. Empty input short-circuits
// without a remote call; any backend failure returns the fixed fallback.
func (a *Assistant) Summarize(ctx context.Context, content string) string {
	if strings.TrimSpace(content) == "" {
		return SummaryEmptyMessage
	}
	prompt := "Summarize the following document content into a concise paragraph. " +
		"Capture the main points and overall tone:\n\n---\n\n" + content
	text, err := a.completer.Complete(ctx, prompt)
	if err != nil {
		slog.Warn("summary generation failed", slog.String("error", err.Error()))
		return SummaryFallback
	}
	return text
}

// SuggestCategory returns a short category label for the given title and
// description, stripped to alphanumerics and spaces. Empty inputs return an
// empty string without a remote call; failures return "Uncategorized".
func (a *Assistant) SuggestCategory(ctx context.Context, title, description string) string {
	if strings.TrimSpace(title) == "" && strings.TrimSpace(description) == "" {
		return ""
	}
	prompt := fmt.Sprintf(`Based on the following document title and description, suggest a single, relevant category (e.g., "Finance", "Legal", "Marketing", "Technical", "HR", "Strategy"). Return only the category name.`+
		"\n\nTitle: %q\nDescription: %q", title, description)
	text, err := a.completer.Complete(ctx, prompt)
	if err != nil {
		slog.Warn("category suggestion failed", slog.String("error", err.Error()))
		return CategoryFallback
	}
	return cleanLabel(text)
}

// cleanLabel strips everything but letters, digits and spaces, then trims.
func cleanLabel(s string) string {
	var b strings.Builder
	for _, r := range s {
		switch {
		case r >= 'a' && r <= 'z', r >= 'A' && r <= 'Z', r >= '0' && r <= '9', r == ' ':
			b.WriteRune(r)
		}
	}
	return strings.TrimSpace(b.String())
}
