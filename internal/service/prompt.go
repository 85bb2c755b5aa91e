package service

import (
	"strings"

	"github.com/arvindnr/geetika/internal/domain"
)

// BuildPrompt assembles the natural-language instruction sent to the text
// provider. It is pure: identical inputs always produce the identical string.
// Context hints are appended in a fixed order, only when present and
// non-empty. An unknown content type yields an empty prompt.
func BuildPrompt(contentType, language string, context map[string]string) string {
	var sb strings.Builder

	switch contentType {
	case domain.ContentTypeLyrics:
		sb.WriteString("Write original song lyrics in " + language + ".")
		appendClause(&sb, "Theme", context["theme"])
		appendClause(&sb, "Mood", context["mood"])
		appendClause(&sb, "Topic", context["topic"])
		sb.WriteString(" Make it poetic and engaging.")
	case domain.ContentTypeDialogue:
		sb.WriteString("Write a sample dialogue in " + language + ".")
		appendClause(&sb, "Scenario", context["scenario"])
		appendClause(&sb, "Characters", context["characters"])
		appendClause(&sb, "Situation", context["situation"])
		sb.WriteString(" Make it natural and conversational.")
	}

	return sb.String()
}

func appendClause(sb *strings.Builder, label, value string) {
	if value == "" {
		return
	}
	sb.WriteString(" " + label + ": " + value + ".")
}
