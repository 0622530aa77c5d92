package summarizer

import (
	"context"
	"errors"
	"fmt"
	"strings"

	"github.com/nguyentantai21042004/standup-scribe/internal/apierr"
	openai "github.com/sashabaranov/go-openai"
)

const openAIService = "OpenAI"

// Summarize sends the system prompt and rendered user prompt as one chat completion.
func (s *implOpenAI) Summarize(ctx context.Context, transcript string, prompt Prompt) (*Summary, error) {
	req := openai.ChatCompletionRequest{
		Model: s.model,
		Messages: []openai.ChatCompletionMessage{
			{Role: openai.ChatMessageRoleSystem, Content: prompt.System},
			{Role: openai.ChatMessageRoleUser, Content: prompt.Render(transcript)},
		},
		Temperature: s.temperature,
	}

	s.logger.Debug(ctx, "Requesting summary from %s (%d transcript chars)", s.model, len(transcript))

	resp, err := s.client.CreateChatCompletion(ctx, req)
	if err != nil {
		return nil, classifyOpenAIError(err)
	}
	if len(resp.Choices) == 0 {
		return nil, fmt.Errorf("empty response from %s", s.model)
	}

	return &Summary{
		Markdown:         strings.TrimSpace(resp.Choices[0].Message.Content),
		PromptTokens:     resp.Usage.PromptTokens,
		CompletionTokens: resp.Usage.CompletionTokens,
		TotalTokens:      resp.Usage.TotalTokens,
	}, nil
}

func classifyOpenAIError(err error) error {
	var apiErr *openai.APIError
	if errors.As(err, &apiErr) {
		if classified := apierr.Classify(openAIService, apiErr.HTTPStatusCode, []byte(apiErr.Message)); classified != nil {
			return classified
		}
	}

	var reqErr *openai.RequestError
	if errors.As(err, &reqErr) {
		body := ""
		if reqErr.Err != nil {
			body = reqErr.Err.Error()
		}
		if classified := apierr.Classify(openAIService, reqErr.HTTPStatusCode, []byte(body)); classified != nil {
			return classified
		}
	}

	if apiErr != nil || reqErr != nil {
		return fmt.Errorf("chat completion: %w", err)
	}
	return apierr.FromTransport(openAIService, err)
}
