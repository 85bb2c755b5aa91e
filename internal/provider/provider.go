// Package provider wraps the external text-generation API behind an adapter
// that can always answer: when no API key is configured, or any live call
// fails, it degrades to a static mock table instead of surfacing the error.
package provider

import (
	"context"
	"log/slog"
)

// textModel is the live-provider surface the adapter depends on.
type textModel interface {
	GenerateContent(ctx context.Context, prompt string) (string, error)
}

// Adapter produces generated text with graceful degradation. A nil model
// means permanent mock mode for the process lifetime; initialization is
// never retried.
type Adapter struct {
	model textModel
}

// New builds an adapter. With an empty API key the adapter runs in mock
// mode and never contacts the provider.
func New(apiKey, model string) *Adapter {
	if apiKey == "" {
		slog.Info("no provider API key configured, using mock content")
		return &Adapter{}
	}
	slog.Info("text provider initialized", "model", modelName(model))
	return &Adapter{model: NewGeminiClient(apiKey, model)}
}

// NewWithModel builds an adapter around an existing model. Tests use it to
// inject failing or scripted models.
func NewWithModel(model textModel) *Adapter {
	return &Adapter{model: model}
}

// Generate returns text for the prompt. It never fails: provider errors are
// logged and answered from the mock table.
func (a *Adapter) Generate(ctx context.Context, prompt, contentType, language string) string {
	if a.model == nil {
		return MockContent(contentType, language)
	}

	text, err := a.model.GenerateContent(ctx, prompt)
	if err != nil {
		slog.Warn("provider call failed, falling back to mock content",
			"error", err, "contentType", contentType, "language", language)
		return MockContent(contentType, language)
	}
	return text
}

func modelName(model string) string {
	if model == "" {
		return DefaultModel
	}
	return model
}
