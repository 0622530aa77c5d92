package summarizer

import (
	"context"
	"fmt"
	"strings"

	"github.com/nguyentantai21042004/standup-scribe/internal/apierr"
	"google.golang.org/genai"
)

const geminiService = "Gemini"

type generateFunc func(ctx context.Context, apiKey, model string, contents []*genai.Content, config *genai.GenerateContentConfig) (*genai.GenerateContentResponse, error)

func generateContent(ctx context.Context, apiKey, model string, contents []*genai.Content, config *genai.GenerateContentConfig) (*genai.GenerateContentResponse, error) {
	client, err := genai.NewClient(ctx, &genai.ClientConfig{
		APIKey:  apiKey,
		Backend: genai.BackendGeminiAPI,
	})
	if err != nil {
		return nil, fmt.Errorf("create client: %w", err)
	}
	return client.Models.GenerateContent(ctx, model, contents, config)
}

// Summarize calls Gemini with the rendered prompt.
// Rotates API keys on 429 / quota errors.
func (s *implGemini) Summarize(ctx context.Context, transcript string, prompt Prompt) (*Summary, error) {
	if len(s.apiKeys) == 0 {
		return nil, fmt.Errorf("no Gemini API keys configured")
	}

	ctx, cancel := context.WithTimeout(ctx, s.timeout)
	defer cancel()

	config := &genai.GenerateContentConfig{
		SystemInstruction: &genai.Content{Parts: []*genai.Part{{Text: prompt.System}}},
		Temperature:       genai.Ptr(s.temperature),
	}
	contents := genai.Text(prompt.Render(transcript))

	var lastErr error
	for range s.apiKeys {
		keyIndex := s.key()
		result, err := s.generate(ctx, s.apiKeys[keyIndex], s.model, contents, config)
		if err != nil {
			if ctx.Err() != nil {
				return nil, apierr.FromTransport(geminiService, ctx.Err())
			}
			if isQuotaError(err) {
				s.logger.Warn(ctx, "Key %d rate limited, rotating...", keyIndex+1)
				s.rotateKey()
				lastErr = err
				continue
			}
			return nil, fmt.Errorf("generate content: %w", err)
		}

		text := responseText(result)
		if text == "" {
			return nil, fmt.Errorf("empty response from Gemini")
		}

		summary := &Summary{Markdown: strings.TrimSpace(text)}
		if u := result.UsageMetadata; u != nil {
			summary.PromptTokens = int(u.PromptTokenCount)
			summary.CompletionTokens = int(u.CandidatesTokenCount)
			summary.TotalTokens = int(u.TotalTokenCount)
		}
		return summary, nil
	}

	return nil, &apierr.Error{
		Service:    geminiService,
		Code:       apierr.CodeRateLimit,
		StatusCode: 429,
		Err:        fmt.Errorf("all API keys exhausted: %w", lastErr),
	}
}

func (s *implGemini) key() int {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.currentKey
}

func (s *implGemini) rotateKey() {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.currentKey = (s.currentKey + 1) % len(s.apiKeys)
}

func isQuotaError(err error) bool {
	msg := err.Error()
	return strings.Contains(msg, "429") || strings.Contains(msg, "quota") || strings.Contains(msg, "RESOURCE_EXHAUSTED")
}

func responseText(result *genai.GenerateContentResponse) string {
	if result == nil || len(result.Candidates) == 0 || result.Candidates[0].Content == nil {
		return ""
	}
	var text strings.Builder
	for _, part := range result.Candidates[0].Content.Parts {
		if part != nil && part.Text != "" {
			text.WriteString(part.Text)
		}
	}
	return text.String()
}
